package glob

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/brightforge/codeintel/pkg/types"
)

// Pattern is a compiled glob ready for repeated matching.
type Pattern struct {
	raw string
	re  *regexp.Regexp
}

// Compile parses pattern into a Pattern. It returns types.ErrInvalidInput
// if the pattern can't be turned into a valid regular expression.
func Compile(pattern string) (*Pattern, error) {
	re, err := regexp.Compile("(?i)^" + translate(pattern) + "$")
	if err != nil {
		return nil, fmt.Errorf("glob: invalid pattern %q: %w", pattern, types.ErrInvalidInput)
	}
	return &Pattern{raw: pattern, re: re}, nil
}

// Match reports whether path satisfies the pattern. path is expected to
// use forward slashes, matching the indexer's root-relative path
// convention.
func (p *Pattern) Match(path string) bool {
	return p.re.MatchString(path)
}

// String returns the original glob text.
func (p *Pattern) String() string {
	return p.raw
}

// CompileAll compiles every pattern in patterns, stopping at the first
// failure.
func CompileAll(patterns []string) ([]*Pattern, error) {
	out := make([]*Pattern, 0, len(patterns))
	for _, p := range patterns {
		compiled, err := Compile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, compiled)
	}
	return out, nil
}

// MatchAny reports whether path matches any of patterns.
func MatchAny(patterns []*Pattern, path string) bool {
	for _, p := range patterns {
		if p.Match(path) {
			return true
		}
	}
	return false
}

// translate wraps toRegex with the two doublestar idioms the indexer's
// default exclude list relies on: a leading "**/"
// must also match a path with nothing before the literal segment (a
// directory sitting directly under the scan root, not just a nested
// one), and a trailing "/**" must also match the literal segment
// itself with nothing after it.
func translate(pattern string) string {
	prefix := ""
	if strings.HasPrefix(pattern, "**/") {
		prefix = "(?:.*/)?"
		pattern = pattern[len("**/"):]
	}
	suffix := ""
	if strings.HasSuffix(pattern, "/**") {
		suffix = "(?:/.*)?"
		pattern = pattern[:len(pattern)-len("/**")]
	}
	return prefix + toRegex(pattern) + suffix
}

// toRegex translates glob syntax into an (unanchored) regex body,
// escaping every character that isn't one of *, **, or ?.
func toRegex(pattern string) string {
	var b strings.Builder
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '*':
			if i+1 < len(runes) && runes[i+1] == '*' {
				b.WriteString(".*")
				i++
			} else {
				b.WriteString("[^/]*")
			}
		case '?':
			b.WriteString("[^/]")
		default:
			b.WriteString(regexp.QuoteMeta(string(runes[i])))
		}
	}
	return b.String()
}
