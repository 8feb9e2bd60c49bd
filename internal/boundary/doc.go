// Package boundary scans source bytes for the start of interesting
// declarations (functions, classes, imports, ...) and the structural end
// of brace-delimited function/class bodies. It is not a parser: it
// recognizes constructs with anchored regular expressions applied at the
// current scan position, after skipping over comments and string/template
// literals so their contents never spuriously match a declaration
// pattern.
package boundary
