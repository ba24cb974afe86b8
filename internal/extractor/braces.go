package extractor

// byteAt returns src[i], or 0 when i is out of range.
func byteAt(src string, i int) byte {
	if i < 0 || i >= len(src) {
		return 0
	}
	return src[i]
}

// matchBrace returns the index of the '}' that closes the '{' at open.
// Braces inside comments, string literals (regular, verbatim, raw and
// interpolated) and character literals do not count. When the block is never
// closed it returns len(src)-1 and false.
func matchBrace(src string, open int) (int, bool) {
	depth := 0
	for i := open; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '/' && byteAt(src, i+1) == '/':
			i = skipLineComment(src, i)
		case c == '/' && byteAt(src, i+1) == '*':
			i = skipBlockComment(src, i)
		case c == '\'':
			i = skipCharLiteral(src, i)
		case c == '"':
			i = skipString(src, i, false, false)
		case c == '@' || c == '$':
			if j, ok := stringPrefix(src, i); ok {
				i = j
			}
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return len(src) - 1, false
}

// stringPrefix handles the @"...", $"...", $@"..." and @$"..." forms starting
// at i. It returns the index of the closing quote when i starts such a literal.
func stringPrefix(src string, i int) (int, bool) {
	verbatim, interpolated := false, false
	j := i
	for k := 0; k < 2; k++ {
		switch byteAt(src, j) {
		case '@':
			verbatim = true
			j++
		case '$':
			interpolated = true
			// Raw interpolated strings may use several dollar signs.
			for byteAt(src, j) == '$' {
				j++
			}
		}
	}
	if byteAt(src, j) != '"' || j == i {
		return i, false
	}
	return skipString(src, j, verbatim, interpolated), true
}

func skipLineComment(src string, i int) int {
	for i < len(src) && src[i] != '\n' {
		i++
	}
	return i
}

func skipBlockComment(src string, i int) int {
	for j := i + 2; j < len(src)-1; j++ {
		if src[j] == '*' && src[j+1] == '/' {
			return j + 1
		}
	}
	return len(src) - 1
}

func skipCharLiteral(src string, i int) int {
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case '\'':
			return j
		case '\n':
			// Not a character literal after all; resume after the quote.
			return i
		}
	}
	return i
}

// skipString skips a string literal whose opening quote is at i and returns
// the index of its closing quote.
func skipString(src string, i int, verbatim, interpolated bool) int {
	if !verbatim && byteAt(src, i+1) == '"' && byteAt(src, i+2) == '"' {
		return skipRawString(src, i)
	}

	for j := i + 1; j < len(src); j++ {
		c := src[j]
		switch {
		case c == '\\' && !verbatim:
			j++
		case c == '"':
			if verbatim && byteAt(src, j+1) == '"' {
				j++
				continue
			}
			return j
		case c == '\n' && !verbatim:
			return j
		case interpolated && c == '{':
			if byteAt(src, j+1) == '{' {
				j++
				continue
			}
			end, ok := matchBrace(src, j)
			if !ok {
				return end
			}
			j = end
		case interpolated && c == '}' && byteAt(src, j+1) == '}':
			j++
		}
	}
	return len(src) - 1
}

// skipRawString skips a """-delimited literal; it ends at the first run of at
// least as many quotes as opened it.
func skipRawString(src string, i int) int {
	n := 0
	for byteAt(src, i+n) == '"' {
		n++
	}
	run := 0
	for j := i + n; j < len(src); j++ {
		if src[j] != '"' {
			run = 0
			continue
		}
		run++
		if run == n {
			// Swallow any extra quotes that belong to the closing run.
			for byteAt(src, j+1) == '"' {
				j++
			}
			return j
		}
	}
	return len(src) - 1
}
