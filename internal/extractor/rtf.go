package extractor

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// ErrMalformedRTF indicates an RTF document whose groups do not nest.
var ErrMalformedRTF = errors.New("malformed rtf")

// rtfDestinations are groups whose content is never visible text.
var rtfDestinations = map[string]bool{
	"aftncn": true, "aftnsep": true, "aftnsepc": true, "annotation": true, "atnauthor": true,
	"atndate": true, "atnicn": true, "atnid": true, "atnparent": true, "atnref": true,
	"atntime": true, "atrfend": true, "atrfstart": true, "author": true, "background": true,
	"bkmkend": true, "bkmkstart": true, "blipuid": true, "buptim": true, "category": true,
	"colorschememapping": true, "colortbl": true, "comment": true, "company": true,
	"creatim": true, "datafield": true, "datastore": true, "defchp": true, "defpap": true,
	"do": true, "doccomm": true, "docvar": true, "dptxbxtext": true, "ebcend": true,
	"ebcstart": true, "factoidname": true, "falt": true, "fchars": true, "ffdeftext": true,
	"ffentrymcr": true, "ffexitmcr": true, "ffformat": true, "ffhelptext": true, "ffl": true,
	"ffname": true, "ffstattext": true, "file": true, "filetbl": true, "fldinst": true,
	"fldtype": true, "fname": true, "fontemb": true, "fontfile": true, "fonttbl": true,
	"footer": true, "footerf": true, "footerl": true, "footerr": true, "footnote": true,
	"formfield": true, "ftncn": true, "ftnsep": true, "ftnsepc": true, "g": true,
	"generator": true, "gridtbl": true, "header": true, "headerf": true, "headerl": true,
	"headerr": true, "hl": true, "hlfr": true, "hlinkbase": true, "hlloc": true, "hlsrc": true,
	"hsv": true, "htmltag": true, "info": true, "keycode": true, "keywords": true,
	"latentstyles": true, "lchars": true, "levelnumbers": true, "leveltext": true,
	"lfolevel": true, "linkval": true, "list": true, "listlevel": true, "listname": true,
	"listoverride": true, "listoverridetable": true, "listpicture": true,
	"liststylename": true, "listtable": true, "listtext": true, "lsdlockedexcept": true,
	"mailmerge": true, "manager": true, "mmath": true, "mmathPr": true, "nesttableprops": true,
	"nextfile": true, "nonesttables": true, "objalias": true, "objclass": true,
	"objdata": true, "object": true, "objname": true, "objsect": true, "objtime": true,
	"oldcprops": true, "oldpprops": true, "oldsprops": true, "oldtprops": true,
	"oleclsid": true, "operator": true, "panose": true, "password": true,
	"passwordhash": true, "pgp": true, "pgptbl": true, "picprop": true, "pict": true,
	"pn": true, "pnseclvl": true, "pntext": true, "pntxta": true, "pntxtb": true,
	"printim": true, "private": true, "propname": true, "protend": true, "protstart": true,
	"protusertbl": true, "pxe": true, "revtbl": true, "revtim": true, "rsidtbl": true,
	"rxe": true, "shp": true, "shpgrp": true, "shpinst": true, "shppict": true,
	"shprslt": true, "shptxt": true, "sn": true, "sp": true, "staticval": true,
	"stylesheet": true, "subject": true, "sv": true, "svb": true, "tc": true,
	"template": true, "themedata": true, "title": true, "txe": true, "ud": true, "upr": true,
	"userprops": true, "wgrffmtfilter": true, "windowcaption": true,
	"writereservation": true, "writereservhash": true, "xe": true, "xform": true,
	"xmlattrname": true, "xmlattrvalue": true, "xmlclose": true, "xmlname": true,
	"xmlnstbl": true, "xmlopen": true,
}

// rtfSpecials maps symbol control words to their text.
var rtfSpecials = map[string]string{
	"par":       "\n",
	"sect":      "\n\n",
	"page":      "\n\n",
	"line":      "\n",
	"tab":       "\t",
	"emdash":    "\u2014",
	"endash":    "\u2013",
	"emspace":   "\u2003",
	"enspace":   "\u2002",
	"qmspace":   "\u2005",
	"bullet":    "\u2022",
	"lquote":    "\u2018",
	"rquote":    "\u2019",
	"ldblquote": "\u201C",
	"rdblquote": "\u201D",
	"row":       "\n",
	"cell":      "|",
	"nestcell":  "|",
}

// codePage returns the decoder for an \ansicpg value, or nil if unsupported.
func codePage(cp int) encoding.Encoding {
	switch cp {
	case 437:
		return charmap.CodePage437
	case 850:
		return charmap.CodePage850
	case 866:
		return charmap.CodePage866
	case 874:
		return charmap.Windows874
	case 932:
		return japanese.ShiftJIS
	case 936:
		return simplifiedchinese.GBK
	case 949:
		return korean.EUCKR
	case 950:
		return traditionalchinese.Big5
	case 1250:
		return charmap.Windows1250
	case 1251:
		return charmap.Windows1251
	case 1252:
		return charmap.Windows1252
	case 1253:
		return charmap.Windows1253
	case 1254:
		return charmap.Windows1254
	case 1255:
		return charmap.Windows1255
	case 1256:
		return charmap.Windows1256
	case 1257:
		return charmap.Windows1257
	case 1258:
		return charmap.Windows1258
	case 10000:
		return charmap.Macintosh
	}
	return nil
}

type rtfGroupState struct {
	ucskip    int
	ignorable bool
}

// rtfReader converts RTF markup to plain text.
type rtfReader struct {
	src       string
	pos       int
	out       strings.Builder
	pending   []byte // \'hh bytes awaiting code page decoding
	enc       encoding.Encoding
	stack     []rtfGroupState
	ucskip    int
	curskip   int
	ignorable bool
}

// RTFToText extracts the visible text of an RTF document. Hidden
// destinations (font tables, pictures, metadata, field instructions) are
// dropped, paragraph marks become newlines, and \'hh escapes are decoded with
// the document's ANSI code page (Windows-1252 when unspecified).
func RTFToText(src string) (string, error) {
	r := &rtfReader{
		src:    src,
		enc:    charmap.Windows1252,
		ucskip: 1,
	}
	if err := r.run(); err != nil {
		return "", err
	}
	return r.out.String(), nil
}

func (r *rtfReader) run() error {
	for r.pos < len(r.src) {
		c := r.src[r.pos]
		switch c {
		case '{':
			r.flush()
			r.curskip = 0
			r.stack = append(r.stack, rtfGroupState{ucskip: r.ucskip, ignorable: r.ignorable})
			r.pos++
		case '}':
			r.flush()
			r.curskip = 0
			if len(r.stack) == 0 {
				return ErrMalformedRTF
			}
			top := r.stack[len(r.stack)-1]
			r.stack = r.stack[:len(r.stack)-1]
			r.ucskip, r.ignorable = top.ucskip, top.ignorable
			r.pos++
		case '\\':
			r.control()
		case '\r', '\n':
			r.pos++
		default:
			r.flush()
			text := r.src[r.pos:]
			// Copy a whole run of plain text at once.
			n := strings.IndexAny(text, "{}\\\r\n")
			if n < 0 {
				n = len(text)
			}
			r.text(text[:n])
			r.pos += n
		}
	}
	r.flush()
	return nil
}

// control consumes one control sequence starting at a backslash.
func (r *rtfReader) control() {
	r.pos++
	if r.pos >= len(r.src) {
		return
	}
	c := r.src[r.pos]

	if c == '\'' {
		hex := r.src[r.pos+1 : min(r.pos+3, len(r.src))]
		r.pos += 1 + len(hex)
		b, err := strconv.ParseUint(hex, 16, 8)
		if err != nil {
			return
		}
		if r.curskip > 0 {
			r.curskip--
			return
		}
		if !r.ignorable {
			r.pending = append(r.pending, byte(b))
		}
		return
	}

	if !isASCIILetter(c) {
		r.flush()
		r.curskip = 0
		r.pos++
		if c == '*' {
			r.ignorable = true
			return
		}
		if r.ignorable {
			return
		}
		switch c {
		case '~':
			r.out.WriteString("\u00A0")
		case '_':
			r.out.WriteString("-")
		case '{', '}', '\\':
			r.out.WriteByte(c)
		case '\n', '\r':
			r.out.WriteString("\n")
		}
		return
	}

	start := r.pos
	for r.pos < len(r.src) && r.pos-start < 32 && isASCIILetter(r.src[r.pos]) {
		r.pos++
	}
	word := r.src[start:r.pos]

	argStart := r.pos
	if r.pos < len(r.src) && r.src[r.pos] == '-' {
		r.pos++
	}
	for r.pos < len(r.src) && r.pos-argStart < 11 && r.src[r.pos] >= '0' && r.src[r.pos] <= '9' {
		r.pos++
	}
	arg, hasArg := 0, false
	if r.pos > argStart {
		if v, err := strconv.Atoi(r.src[argStart:r.pos]); err == nil {
			arg, hasArg = v, true
		}
	}
	if r.pos < len(r.src) && r.src[r.pos] == ' ' {
		r.pos++
	}

	r.flush()
	r.curskip = 0

	switch {
	case rtfDestinations[word]:
		r.ignorable = true
	case word == "ansicpg" && hasArg:
		if enc := codePage(arg); enc != nil {
			r.enc = enc
		}
	case r.ignorable:
	case rtfSpecials[word] != "":
		r.out.WriteString(rtfSpecials[word])
	case word == "uc" && hasArg:
		r.ucskip = arg
	case word == "u" && hasArg:
		if arg < 0 {
			arg += 0x10000
		}
		r.out.WriteRune(rune(arg))
		r.curskip = r.ucskip
	}
}

// text writes literal characters, honoring the \uN fallback skip count.
func (r *rtfReader) text(s string) {
	for _, ch := range s {
		if r.curskip > 0 {
			r.curskip--
			continue
		}
		if !r.ignorable {
			r.out.WriteRune(ch)
		}
	}
}

// flush decodes buffered \'hh bytes through the active code page.
func (r *rtfReader) flush() {
	if len(r.pending) == 0 {
		return
	}
	decoded, err := r.enc.NewDecoder().Bytes(r.pending)
	if err != nil {
		decoded = charmapFallback(r.pending)
	}
	r.out.Write(decoded)
	r.pending = r.pending[:0]
}

// charmapFallback decodes bytes as Windows-1252, which maps every byte.
func charmapFallback(b []byte) []byte {
	decoded, _ := charmap.Windows1252.NewDecoder().Bytes(b)
	return decoded
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
