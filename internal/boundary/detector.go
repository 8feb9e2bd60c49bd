package boundary

import (
	"github.com/brightforge/codeintel/pkg/types"
)

const (
	lookaheadWindow  = 256
	docCommentMinLen = 50
)

// Detect scans source for lang and returns its sorted boundaries. Never
// panics on malformed input: whatever prefix it can recognize is
// returned.
func Detect(source []byte, lang types.Language) []types.SemanticBoundary {
	switch lang {
	case types.LanguageJavaScript:
		return scanBraceLanguage(source, braceOpts{
			hashComments: false, templateStrings: true, docComments: true,
			match: func(w []byte) (declMatch, bool) { return matchJS(w, false) },
		})
	case types.LanguageTypeScript:
		return scanBraceLanguage(source, braceOpts{
			hashComments: false, templateStrings: true, docComments: true,
			match: func(w []byte) (declMatch, bool) { return matchJS(w, true) },
		})
	case types.LanguagePython:
		return scanPython(source)
	case types.LanguageRust:
		return scanBraceLanguage(source, braceOpts{match: matchRust})
	case types.LanguageGo:
		return scanBraceLanguage(source, braceOpts{match: matchGo})
	case types.LanguageJava, types.LanguageKotlin:
		return scanBraceLanguage(source, braceOpts{match: matchJavaKotlin})
	case types.LanguageC, types.LanguageCPP, types.LanguageCSharp:
		return scanBraceLanguage(source, braceOpts{hashComments: false, match: matchCFamily})
	default:
		return scanGeneric(source)
	}
}

// pendingOpen is a declaration that has matched but whose body-opening
// "{" has not yet been seen.
type pendingOpen struct {
	kind types.ChunkKind
	name string
}

// openRegion is a declaration whose body is currently open, recorded
// with the brace depth value that represents "inside this body" so its
// matching close can be recognized.
type openRegion struct {
	kind  types.ChunkKind
	name  string
	depth int
}

type braceOpts struct {
	hashComments    bool
	templateStrings bool
	docComments     bool
	match           func(window []byte) (declMatch, bool)
}

// scanBraceLanguage implements the shared engine used by every
// brace-delimited language: skip comments/strings, match declaration
// introducers at the current position, and track brace depth to pair
// each Function/Class-like start with its structural end.
func scanBraceLanguage(src []byte, opts braceOpts) []types.SemanticBoundary {
	starts := lineStarts(src)
	var out []types.SemanticBoundary
	var pending []pendingOpen
	var stack []openRegion
	depth := 0

	emit := func(offset int, kind types.ChunkKind, name string, isStart bool, scopeDepth int) {
		line, col := position(starts, offset)
		out = append(out, types.SemanticBoundary{
			Line: line, Column: col, ByteOffset: offset,
			Kind: kind, Name: name, ScopeDepth: scopeDepth, IsStart: isStart,
		})
	}

	i := 0
	for i < len(src) {
		if j, skipped := skipNonCode(src, i, opts.hashComments, opts.templateStrings); skipped {
			if opts.docComments && j-i > docCommentMinLen && i+1 < len(src) && src[i] == '/' && src[i+1] == '*' {
				emit(i, types.KindComment, "", true, depth)
			}
			i = j
			continue
		}
		c := src[i]
		if c == '{' {
			depth++
			if len(pending) > 0 {
				p := pending[0]
				pending = pending[1:]
				stack = append(stack, openRegion{kind: p.kind, name: p.name, depth: depth})
			}
			i++
			continue
		}
		if c == '}' {
			if len(stack) > 0 && stack[len(stack)-1].depth == depth {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				emit(i, top.kind, top.name, false, depth-1)
			}
			if depth > 0 {
				depth--
			}
			i++
			continue
		}

		end := windowEnd(src, i, lookaheadWindow)
		if dm, ok := opts.match(src[i:end]); ok && dm.consumed > 0 {
			emit(i, dm.kind, dm.name, true, depth)
			if dm.wantsBody {
				pending = append(pending, pendingOpen{kind: dm.kind, name: dm.name})
			}
			i += dm.consumed
			continue
		}
		i++
	}
	return out
}

// scanPython recognizes def/class/import introducers, using leading
// whitespace (tabs counted as 4 columns) as a proxy for scope_depth. No
// end boundaries are emitted: Python's scope is indentation-delimited,
// not brace-delimited.
func scanPython(src []byte) []types.SemanticBoundary {
	starts := lineStarts(src)
	var out []types.SemanticBoundary

	i := 0
	for i < len(src) {
		if j, skipped := skipNonCode(src, i, true, false); skipped {
			i = j
			continue
		}
		atLineStart := i == 0 || src[i-1] == '\n'
		if atLineStart {
			j := i
			indent := 0
			for j < len(src) && (src[j] == ' ' || src[j] == '\t') {
				if src[j] == '\t' {
					indent += 4
				} else {
					indent++
				}
				j++
			}
			if j < len(src) {
				end := windowEnd(src, j, lookaheadWindow)
				if dm, ok := matchPython(src[j:end]); ok && dm.consumed > 0 {
					line, col := position(starts, j)
					out = append(out, types.SemanticBoundary{
						Line: line, Column: col, ByteOffset: j,
						Kind: dm.kind, Name: dm.name, ScopeDepth: indent, IsStart: true,
					})
					i = j + dm.consumed
					continue
				}
			}
			if j > i {
				i = j
				continue
			}
		}
		i++
	}
	return out
}

// scanGeneric is the fallback recognizer for languages with no dedicated
// pattern table: it emits a Block boundary on each outermost ("{"/"}")
// pair at depth 0, skipping comments and quoted strings generically.
func scanGeneric(src []byte) []types.SemanticBoundary {
	starts := lineStarts(src)
	var out []types.SemanticBoundary
	depth := 0

	i := 0
	for i < len(src) {
		if j, skipped := skipNonCode(src, i, true, true); skipped {
			i = j
			continue
		}
		switch src[i] {
		case '{':
			if depth == 0 {
				line, col := position(starts, i)
				out = append(out, types.SemanticBoundary{Line: line, Column: col, ByteOffset: i, Kind: types.KindBlock, IsStart: true})
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
			if depth == 0 {
				line, col := position(starts, i)
				out = append(out, types.SemanticBoundary{Line: line, Column: col, ByteOffset: i, Kind: types.KindBlock, IsStart: false})
			}
		}
		i++
	}
	return out
}
