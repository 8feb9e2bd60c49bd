package boundary

import (
	"regexp"

	"github.com/brightforge/codeintel/pkg/types"
)

// declMatch is the result of recognizing a declaration introducer at the
// current scan position.
type declMatch struct {
	kind        types.ChunkKind
	name        string
	consumed    int  // bytes to advance past the introducer itself
	wantsBody   bool // a following "{" opens this construct's body
}

const anonymousName = "<anonymous>"

var (
	reJSFunction = regexp.MustCompile(`^(?:export\s+)?(?:default\s+)?(?:async\s+)?function\s*\*?\s*([A-Za-z_$][A-Za-z0-9_$]*)?\s*\(`)
	reJSArrow    = regexp.MustCompile(`^(?:export\s+)?(?:const|let|var)\s+([A-Za-z_$][A-Za-z0-9_$]*)\s*(?::[^=]+)?=\s*(?:async\s*)?\(`)
	reJSClass    = regexp.MustCompile(`^(?:export\s+)?(?:default\s+)?(?:abstract\s+)?class\s+([A-Za-z_$][A-Za-z0-9_$]*)`)
	reJSImport   = regexp.MustCompile(`^import\s[^\n;]*;?`)
	reJSExport   = regexp.MustCompile(`^export\s+(?:\{[^}]*\}(?:\s*from\s*['"][^'"]*['"])?|\*\s*from\s*['"][^'"]*['"])\s*;?`)
	reTSInterface = regexp.MustCompile(`^(?:export\s+)?interface\s+([A-Za-z_$][A-Za-z0-9_$]*)`)
	reTSType      = regexp.MustCompile(`^(?:export\s+)?type\s+([A-Za-z_$][A-Za-z0-9_$]*)`)
	reTSEnum      = regexp.MustCompile(`^(?:export\s+)?(?:const\s+)?enum\s+([A-Za-z_$][A-Za-z0-9_$]*)`)

	rePyDef    = regexp.MustCompile(`^(?:async\s+)?def\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(`)
	rePyClass  = regexp.MustCompile(`^class\s+([A-Za-z_][A-Za-z0-9_]*)`)
	rePyImport = regexp.MustCompile(`^import\s+[^\n]*`)
	rePyFrom   = regexp.MustCompile(`^from\s+[A-Za-z_.][A-Za-z0-9_.]*\s+import\s+[^\n]*`)

	reRustFn     = regexp.MustCompile(`^(?:pub(?:\([^)]*\))?\s+)?(?:async\s+)?(?:unsafe\s+)?(?:extern\s+"[^"]*"\s+)?fn\s+([A-Za-z_][A-Za-z0-9_]*)`)
	reRustStruct = regexp.MustCompile(`^(?:pub(?:\([^)]*\))?\s+)?struct\s+([A-Za-z_][A-Za-z0-9_]*)`)
	reRustEnum   = regexp.MustCompile(`^(?:pub(?:\([^)]*\))?\s+)?enum\s+([A-Za-z_][A-Za-z0-9_]*)`)
	reRustTrait  = regexp.MustCompile(`^(?:pub\s+)?trait\s+([A-Za-z_][A-Za-z0-9_]*)`)
	reRustImplFor = regexp.MustCompile(`^impl(?:<[^>]*>)?\s+([A-Za-z_][A-Za-z0-9_:<>]*)\s+for\s+([A-Za-z_][A-Za-z0-9_:<>]*)`)
	reRustImpl    = regexp.MustCompile(`^impl(?:<[^>]*>)?\s+([A-Za-z_][A-Za-z0-9_:<>]*)`)
	reRustMod     = regexp.MustCompile(`^(?:pub\s+)?mod\s+([A-Za-z_][A-Za-z0-9_]*)`)
	reRustUse     = regexp.MustCompile(`^use\s+[^\n;]*;`)

	reGoFunc      = regexp.MustCompile(`^func\s*(?:\([^)]*\))?\s*([A-Za-z_][A-Za-z0-9_]*)?\s*\(`)
	reGoTypeDecl  = regexp.MustCompile(`^type\s+([A-Za-z_][A-Za-z0-9_]*)\s+(struct|interface)\s*`)
	reGoPackage   = regexp.MustCompile(`^package\s+([A-Za-z_][A-Za-z0-9_]*)`)
	reGoImport1   = regexp.MustCompile(`^import\s+"[^"]*"`)
	reGoImportBlk = regexp.MustCompile(`^import\s*\(`)

	reJavaType    = regexp.MustCompile(`^(?:(?:public|private|protected|static|final|abstract|sealed|open|data)\s+)*(class|interface|enum)\s+([A-Za-z_][A-Za-z0-9_]*)`)
	reJavaPackage = regexp.MustCompile(`^package\s+[A-Za-z_][A-Za-z0-9_.]*\s*;?`)
	reJavaImport  = regexp.MustCompile(`^import\s+[^\n;]*;?`)

	reCNamespace = regexp.MustCompile(`^namespace\s+([A-Za-z_][A-Za-z0-9_:.]*)`)
	reCType      = regexp.MustCompile(`^(?:(?:public|private|protected|static|sealed|abstract|final)\s+)*(class|struct)\s+([A-Za-z_][A-Za-z0-9_]*)`)
	reCInclude   = regexp.MustCompile(`^#include\s*[<"][^>"]*[>"]`)
)

// matchJS recognizes JavaScript (and, with typescript set, TypeScript)
// declaration introducers at the start of window.
func matchJS(window []byte, typescript bool) (declMatch, bool) {
	if typescript {
		if m := reTSInterface.FindSubmatchIndex(window); m != nil {
			return declMatch{kind: types.KindInterface, name: submatchOr(window, m, 1, ""), consumed: m[1], wantsBody: true}, true
		}
		if m := reTSEnum.FindSubmatchIndex(window); m != nil {
			return declMatch{kind: types.KindEnum, name: submatchOr(window, m, 1, ""), consumed: m[1], wantsBody: true}, true
		}
		if m := reTSType.FindSubmatchIndex(window); m != nil {
			return declMatch{kind: types.KindStruct, name: submatchOr(window, m, 1, ""), consumed: m[1], wantsBody: false}, true
		}
	}
	if m := reJSClass.FindSubmatchIndex(window); m != nil {
		return declMatch{kind: types.KindClass, name: submatchOr(window, m, 1, anonymousName), consumed: m[1], wantsBody: true}, true
	}
	if m := reJSFunction.FindSubmatchIndex(window); m != nil {
		return declMatch{kind: types.KindFunction, name: submatchOr(window, m, 1, anonymousName), consumed: m[1], wantsBody: true}, true
	}
	if m := reJSArrow.FindSubmatchIndex(window); m != nil {
		return declMatch{kind: types.KindFunction, name: submatchOr(window, m, 1, anonymousName), consumed: m[1], wantsBody: false}, true
	}
	if m := reJSExport.FindIndex(window); m != nil {
		return declMatch{kind: types.KindExport, name: "", consumed: m[1]}, true
	}
	if m := reJSImport.FindIndex(window); m != nil {
		return declMatch{kind: types.KindImport, name: "", consumed: m[1]}, true
	}
	return declMatch{}, false
}

func matchPython(window []byte) (declMatch, bool) {
	if m := rePyDef.FindSubmatchIndex(window); m != nil {
		return declMatch{kind: types.KindFunction, name: submatchOr(window, m, 1, anonymousName), consumed: m[1]}, true
	}
	if m := rePyClass.FindSubmatchIndex(window); m != nil {
		return declMatch{kind: types.KindClass, name: submatchOr(window, m, 1, anonymousName), consumed: m[1]}, true
	}
	if m := rePyFrom.FindIndex(window); m != nil {
		return declMatch{kind: types.KindImport, consumed: m[1]}, true
	}
	if m := rePyImport.FindIndex(window); m != nil {
		return declMatch{kind: types.KindImport, consumed: m[1]}, true
	}
	return declMatch{}, false
}

func matchRust(window []byte) (declMatch, bool) {
	if m := reRustTrait.FindSubmatchIndex(window); m != nil {
		return declMatch{kind: types.KindInterface, name: submatchOr(window, m, 1, anonymousName), consumed: m[1], wantsBody: true}, true
	}
	if m := reRustImplFor.FindSubmatchIndex(window); m != nil {
		name := submatchOr(window, m, 1, anonymousName) + " for " + submatchOr(window, m, 2, "")
		return declMatch{kind: types.KindClass, name: name, consumed: m[1], wantsBody: true}, true
	}
	if m := reRustImpl.FindSubmatchIndex(window); m != nil {
		return declMatch{kind: types.KindClass, name: submatchOr(window, m, 1, anonymousName), consumed: m[1], wantsBody: true}, true
	}
	if m := reRustStruct.FindSubmatchIndex(window); m != nil {
		return declMatch{kind: types.KindStruct, name: submatchOr(window, m, 1, anonymousName), consumed: m[1], wantsBody: !endsBeforeSemicolon(window, m[1])}, true
	}
	if m := reRustEnum.FindSubmatchIndex(window); m != nil {
		return declMatch{kind: types.KindEnum, name: submatchOr(window, m, 1, anonymousName), consumed: m[1], wantsBody: true}, true
	}
	if m := reRustFn.FindSubmatchIndex(window); m != nil {
		return declMatch{kind: types.KindFunction, name: submatchOr(window, m, 1, anonymousName), consumed: m[1], wantsBody: true}, true
	}
	if m := reRustMod.FindSubmatchIndex(window); m != nil {
		return declMatch{kind: types.KindModule, name: submatchOr(window, m, 1, anonymousName), consumed: m[1], wantsBody: !endsBeforeSemicolon(window, m[1])}, true
	}
	if m := reRustUse.FindIndex(window); m != nil {
		return declMatch{kind: types.KindImport, consumed: m[1]}, true
	}
	return declMatch{}, false
}

func matchGo(window []byte) (declMatch, bool) {
	if m := reGoTypeDecl.FindSubmatchIndex(window); m != nil {
		kind := types.KindStruct
		if string(window[m[4]:m[5]]) == "interface" {
			kind = types.KindInterface
		}
		return declMatch{kind: kind, name: submatchOr(window, m, 1, anonymousName), consumed: m[1], wantsBody: true}, true
	}
	if m := reGoFunc.FindSubmatchIndex(window); m != nil {
		return declMatch{kind: types.KindFunction, name: submatchOr(window, m, 1, anonymousName), consumed: m[1], wantsBody: true}, true
	}
	if m := reGoPackage.FindSubmatchIndex(window); m != nil {
		return declMatch{kind: types.KindModule, name: submatchOr(window, m, 1, ""), consumed: m[1]}, true
	}
	if m := reGoImportBlk.FindIndex(window); m != nil {
		return declMatch{kind: types.KindImport, consumed: m[1]}, true
	}
	if m := reGoImport1.FindIndex(window); m != nil {
		return declMatch{kind: types.KindImport, consumed: m[1]}, true
	}
	return declMatch{}, false
}

func matchJavaKotlin(window []byte) (declMatch, bool) {
	if m := reJavaType.FindSubmatchIndex(window); m != nil {
		kind := types.KindClass
		switch string(window[m[2]:m[3]]) {
		case "interface":
			kind = types.KindInterface
		case "enum":
			kind = types.KindEnum
		}
		return declMatch{kind: kind, name: submatchOr(window, m, 2, anonymousName), consumed: m[1], wantsBody: true}, true
	}
	if m := reJavaPackage.FindIndex(window); m != nil {
		return declMatch{kind: types.KindModule, consumed: m[1]}, true
	}
	if m := reJavaImport.FindIndex(window); m != nil {
		return declMatch{kind: types.KindImport, consumed: m[1]}, true
	}
	return declMatch{}, false
}

func matchCFamily(window []byte) (declMatch, bool) {
	if m := reCType.FindSubmatchIndex(window); m != nil {
		kind := types.KindClass
		if string(window[m[2]:m[3]]) == "struct" {
			kind = types.KindStruct
		}
		return declMatch{kind: kind, name: submatchOr(window, m, 2, anonymousName), consumed: m[1], wantsBody: true}, true
	}
	if m := reCNamespace.FindSubmatchIndex(window); m != nil {
		return declMatch{kind: types.KindModule, name: submatchOr(window, m, 1, anonymousName), consumed: m[1], wantsBody: true}, true
	}
	if m := reCInclude.FindIndex(window); m != nil {
		return declMatch{kind: types.KindImport, consumed: m[1]}, true
	}
	return declMatch{}, false
}

// submatchOr returns the text captured by submatch group g, or def if
// the group did not participate in the match.
func submatchOr(window []byte, m []int, g int, def string) string {
	lo, hi := m[2*g], m[2*g+1]
	if lo < 0 || hi < 0 {
		return def
	}
	return string(window[lo:hi])
}

// endsBeforeSemicolon reports whether, scanning forward from offset in
// window, a ';' appears before the first '{'. Used to tell a unit struct
// ("struct Unit;") or a file-level "mod foo;" from one with a body.
func endsBeforeSemicolon(window []byte, offset int) bool {
	for i := offset; i < len(window); i++ {
		switch window[i] {
		case '{':
			return false
		case ';':
			return true
		}
	}
	return false
}
