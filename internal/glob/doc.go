// Package glob compiles the include/exclude glob patterns the indexer
// accepts into anchored, case-insensitive regular expressions.
//
// The supported syntax is intentionally small: `*` matches any run of
// non-separator characters, `**` matches any run including separators,
// `?` matches exactly one non-separator character, and every other
// character is matched literally. A pattern always matches the whole
// path, not a substring of it.
package glob
