package extractor

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DocKind is the closed set of documentation formats.
type DocKind int

const (
	KindPlainText DocKind = iota
	KindRichText
	KindMarkup
)

func (k DocKind) String() string {
	switch k {
	case KindRichText:
		return "rich-text"
	case KindMarkup:
		return "markup"
	default:
		return "plain-text"
	}
}

// KindFor resolves the format of a documentation file from its extension.
// Unrecognized extensions are plain text.
func KindFor(path string) DocKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".rtf":
		return KindRichText
	case ".htm", ".html", ".xhtml", ".md", ".markdown":
		return KindMarkup
	default:
		return KindPlainText
	}
}

func isMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

// truncationMarker is appended to text cut at the character limit.
const truncationMarker = "..."

// bodyTag detects an explicit body element in raw markup. html.Parse always
// synthesizes a body, so the parsed tree cannot tell us whether one existed.
var bodyTag = regexp.MustCompile(`(?i)<body[\s>/]`)

// TextExtractor converts one documentation file to plain text according to
// its DocKind.
type TextExtractor struct {
	maxChars  int
	labels    []string
	fallback  string
	segmenter Segmenter
	markdown  goldmark.Markdown
}

// NewTextExtractor creates a TextExtractor. maxChars bounds markup and plain
// text output; labels are the rich-text section headers; fallback is returned
// for rich text in which no header was found.
func NewTextExtractor(maxChars int, labels []string, fallback string) *TextExtractor {
	return &TextExtractor{
		maxChars:  maxChars,
		labels:    normalizeLabels(labels),
		fallback:  fallback,
		segmenter: NewHeaderSegmenter(labels),
		markdown:  goldmark.New(),
	}
}

// Extract returns the text of a documentation file. An error means the file
// produced no text and must be left out of the record.
func (x *TextExtractor) Extract(path string, content []byte) (string, error) {
	text := decodeLenient(content)

	switch KindFor(path) {
	case KindRichText:
		return x.richText(text)
	case KindMarkup:
		if isMarkdown(path) {
			return x.markdownText(content)
		}
		return x.truncate(markupText(text, true)), nil
	default:
		return x.truncate(text), nil
	}
}

// richText converts RTF and renders the recognized sections as
// "Label: body" paragraphs.
func (x *TextExtractor) richText(src string) (string, error) {
	plain, err := RTFToText(src)
	if err != nil {
		return "", err
	}

	caser := cases.Title(language.English)
	parts := make([]string, 0, len(x.labels))
	for _, section := range x.segmenter.Segment(plain) {
		parts = append(parts, caser.String(section.Name)+": "+section.Body)
	}

	out := strings.TrimSpace(strings.Join(parts, "\n\n"))
	if out == "" {
		return x.fallback, nil
	}
	return out, nil
}

func (x *TextExtractor) markdownText(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := x.markdown.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return x.truncate(markupText(buf.String(), false)), nil
}

// truncate cuts text to maxChars characters and appends the marker.
func (x *TextExtractor) truncate(text string) string {
	if x.maxChars <= 0 || utf8.RuneCountInString(text) <= x.maxChars {
		return text
	}
	n := 0
	for i := range text {
		if n == x.maxChars {
			return text[:i] + truncationMarker
		}
		n++
	}
	return text
}

// markupText returns the text nodes of the document body, each trimmed, with
// empty nodes dropped, joined by newlines. When requireBody is set and the
// source has no body element, the raw source is returned unchanged.
func markupText(src string, requireBody bool) string {
	if requireBody && !bodyTag.MatchString(src) {
		return src
	}

	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return src
	}
	body := findElement(doc, atom.Body)
	if body == nil {
		return src
	}

	var lines []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if s := strings.TrimSpace(n.Data); s != "" {
				lines = append(lines, s)
			}
			return
		case html.ElementNode:
			if n.DataAtom == atom.Script || n.DataAtom == atom.Style || n.DataAtom == atom.Template {
				return
			}
		case html.CommentNode:
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(body)

	return strings.Join(lines, "\n")
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}
