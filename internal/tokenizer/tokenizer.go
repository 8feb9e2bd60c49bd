package tokenizer

// twoCharOps are the two-byte operators that count as a single token. A
// trailing '=' (e.g. the third '=' in "===") is absorbed into the same
// token rather than starting a new one.
var twoCharOps = map[[2]byte]bool{
	{'=', '='}: true,
	{'!', '='}: true,
	{'<', '='}: true,
	{'>', '='}: true,
	{'&', '&'}: true,
	{'|', '|'}: true,
	{'=', '>'}: true,
	{'-', '>'}: true,
	{':', ':'}: true,
	{'+', '+'}: true,
	{'-', '-'}: true,
	{'+', '='}: true,
	{'-', '='}: true,
	{'*', '='}: true,
	{'/', '='}: true,
}

// CountTokens returns the heuristic token count of data. CountTokens of
// an empty slice is 0.
func CountTokens(data []byte) int {
	total := 0
	for i := 0; i < len(data); {
		end, tokens := nextRun(data, i)
		total += tokens
		i = end
	}
	return total
}

// FindTokenBoundary scans data from the start, accumulating token credit
// run by run, and returns the byte offset just before the run whose
// inclusion would push the running count strictly above target. If the
// whole input fits within target tokens, it returns len(data).
func FindTokenBoundary(data []byte, target int) int {
	running := 0
	for i := 0; i < len(data); {
		end, tokens := nextRun(data, i)
		if running+tokens > target {
			return i
		}
		running += tokens
		i = end
	}
	return len(data)
}

// nextRun classifies the run starting at data[i] and returns its
// exclusive end offset plus the number of tokens it contributes.
func nextRun(data []byte, i int) (end int, tokens int) {
	c := data[i]

	switch {
	case c == '\n':
		// A run of newlines is scored one token per newline, not one per
		// run, so each \n is its own single-byte run.
		return i + 1, 1

	case isSpace(c):
		j := i
		for j < len(data) && isSpace(data[j]) {
			j++
		}
		return j, 1

	case isDigit(c):
		j := scanNumeric(data, i)
		w := j - i
		return j, ceilDiv(w, 3)

	case isLetter(c):
		j := i
		for j < len(data) && (isLetter(data[j]) || isDigit(data[j])) {
			j++
		}
		w := j - i
		return j, wordTokens(w)

	case isPunct(c):
		return scanPunct(data, i)

	default:
		return i + 1, 1
	}
}

func wordTokens(w int) int {
	switch {
	case w <= 4:
		return 1
	case w <= 8:
		return 2
	case w <= 12:
		return 3
	default:
		return ceilDiv(w, 4)
	}
}

// scanNumeric extends a numeric literal from its leading digit through
// embedded '.', exponent markers, sign characters immediately following
// an exponent marker, and a hex prefix/digits.
func scanNumeric(data []byte, i int) int {
	j := i
	sawX := false
	for j < len(data) {
		c := data[j]
		switch {
		case isDigit(c):
			j++
		case c == '.':
			j++
		case c == 'x' || c == 'X':
			sawX = true
			j++
		case c == 'e' || c == 'E':
			j++
		case c == '+' || c == '-':
			if j > i && (data[j-1] == 'e' || data[j-1] == 'E') {
				j++
				continue
			}
			return j
		case sawX && isHexLetter(c):
			j++
		default:
			return j
		}
	}
	return j
}

// scanPunct scans a single punctuation token: a recognized two-byte
// operator (with any trailing '=' absorbed), or a single byte.
func scanPunct(data []byte, i int) (end int, tokens int) {
	if i+1 < len(data) {
		pair := [2]byte{data[i], data[i+1]}
		if twoCharOps[pair] {
			j := i + 2
			for j < len(data) && data[j] == '=' {
				j++
			}
			return j, 1
		}
	}
	return i + 1, 1
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexLetter(c byte) bool {
	return (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isLetter(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isPunct(c byte) bool {
	return c >= 0x21 && c <= 0x7e && !isLetter(c) && !isDigit(c)
}
