package boundary

// lineStarts returns the byte offset of the start of every line in src,
// line 1 at index 0, used to translate a byte offset into a 1-based
// line/column pair without re-scanning from the top for every boundary.
func lineStarts(src []byte) []int {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// position converts a byte offset into a 1-based (line, column) pair
// given the precomputed line-start table.
func position(starts []int, offset int) (line, col int) {
	lo, hi := 0, len(starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if starts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1, offset - starts[lo] + 1
}

// skipLineComment advances past a "//" or "#" comment, stopping at (but
// not consuming) the terminating newline, or at end of input.
func skipLineComment(src []byte, i int) int {
	for i < len(src) && src[i] != '\n' {
		i++
	}
	return i
}

// skipBlockComment advances past a "/* ... */" comment. i must point at
// the leading '/'. Returns the index just past the closing "*/", or
// len(src) if the comment is unterminated.
func skipBlockComment(src []byte, i int) int {
	i += 2
	for i+1 < len(src) {
		if src[i] == '*' && src[i+1] == '/' {
			return i + 2
		}
		i++
	}
	return len(src)
}

// skipString advances past a single- or double-quoted string literal
// with backslash-escape support. i must point at the opening quote.
// Returns the index just past the closing quote, or len(src) if
// unterminated.
func skipString(src []byte, i int) int {
	quote := src[i]
	i++
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
			continue
		case quote:
			return i + 1
		}
		i++
	}
	return len(src)
}

// skipTemplateString advances past a backtick template string, treating
// nested "${ ... }" interpolations as balanced-brace regions so a '`'
// inside an interpolated expression doesn't prematurely close the
// template. i must point at the opening backtick.
func skipTemplateString(src []byte, i int) int {
	i++
	for i < len(src) {
		switch {
		case src[i] == '\\':
			i += 2
			continue
		case src[i] == '`':
			return i + 1
		case src[i] == '$' && i+1 < len(src) && src[i+1] == '{':
			i = skipBraceExpression(src, i+1)
			continue
		default:
			i++
		}
	}
	return len(src)
}

// skipBraceExpression advances past a balanced "{ ... }" region starting
// at the opening brace, honoring nested strings and nested braces.
func skipBraceExpression(src []byte, i int) int {
	depth := 0
	for i < len(src) {
		switch src[i] {
		case '{':
			depth++
			i++
		case '}':
			depth--
			i++
			if depth <= 0 {
				return i
			}
		case '"', '\'':
			i = skipString(src, i)
		case '`':
			i = skipTemplateString(src, i)
		default:
			i++
		}
	}
	return len(src)
}

// skipNonCode recognizes a comment or string literal starting at i for
// the construct families used across the supported languages, and
// returns (newIndex, true) if one was found. hashComments enables "#"
// line comments (Python, Ruby); templateStrings enables backtick
// templates (JS/TS).
func skipNonCode(src []byte, i int, hashComments, templateStrings bool) (int, bool) {
	if i+1 < len(src) && src[i] == '/' && src[i+1] == '/' {
		return skipLineComment(src, i), true
	}
	if i+1 < len(src) && src[i] == '/' && src[i+1] == '*' {
		return skipBlockComment(src, i), true
	}
	if hashComments && src[i] == '#' {
		return skipLineComment(src, i), true
	}
	if src[i] == '"' || src[i] == '\'' {
		return skipString(src, i), true
	}
	if templateStrings && src[i] == '`' {
		return skipTemplateString(src, i), true
	}
	return i, false
}

// windowEnd bounds a look-ahead window of at most n bytes starting at i.
func windowEnd(src []byte, i, n int) int {
	end := i + n
	if end > len(src) {
		end = len(src)
	}
	return end
}
