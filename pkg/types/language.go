package types

import "strings"

// Language is a closed set of source languages the boundary detector and
// chunker know how to recognize. The zero value "" is not one of the
// tags; LanguageUnknown is the explicit "unknown" tag.
type Language string

const (
	LanguageUnknown    Language = "unknown"
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
	LanguagePython     Language = "python"
	LanguageRust       Language = "rust"
	LanguageGo         Language = "go"
	LanguageJava       Language = "java"
	LanguageCPP        Language = "cpp"
	LanguageC          Language = "c"
	LanguageCSharp     Language = "csharp"
	LanguageRuby       Language = "ruby"
	LanguagePHP        Language = "php"
	LanguageSwift      Language = "swift"
	LanguageKotlin     Language = "kotlin"
)

// extensionLanguage maps a lowercase file extension (without the leading
// dot) to its Language tag.
var extensionLanguage = map[string]Language{
	"js":   LanguageJavaScript,
	"mjs":  LanguageJavaScript,
	"cjs":  LanguageJavaScript,
	"ts":   LanguageTypeScript,
	"tsx":  LanguageTypeScript,
	"mts":  LanguageTypeScript,
	"py":   LanguagePython,
	"pyw":  LanguagePython,
	"rs":   LanguageRust,
	"go":   LanguageGo,
	"java": LanguageJava,
	"cpp":  LanguageCPP,
	"cc":   LanguageCPP,
	"cxx":  LanguageCPP,
	"hpp":  LanguageCPP,
	"hxx":  LanguageCPP,
	"h":    LanguageCPP,
	"c":    LanguageC,
	"cs":   LanguageCSharp,
	"rb":   LanguageRuby,
	"php":  LanguagePHP,
	"swift": LanguageSwift,
	"kt":   LanguageKotlin,
	"kts":  LanguageKotlin,
}

// DetectLanguage derives a Language from a file path's extension. Matching
// is case-insensitive on the extension; an unrecognized or missing
// extension yields LanguageUnknown.
func DetectLanguage(path string) Language {
	ext := extensionOf(path)
	if ext == "" {
		return LanguageUnknown
	}
	if lang, ok := extensionLanguage[strings.ToLower(ext)]; ok {
		return lang
	}
	return LanguageUnknown
}

// extensionOf returns the extension of path without the leading dot,
// handling the final path component only so directory names containing
// dots don't confuse it.
func extensionOf(path string) string {
	base := path
	if idx := strings.LastIndexAny(path, "/\\"); idx >= 0 {
		base = path[idx+1:]
	}
	dot := strings.LastIndex(base, ".")
	if dot < 0 || dot == len(base)-1 {
		return ""
	}
	return base[dot+1:]
}
