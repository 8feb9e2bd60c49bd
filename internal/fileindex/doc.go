// Package fileindex maintains a thread-safe mapping from relative path
// to FileEntry, paired with an owned merkle.Tree kept consistent with
// the map under the same lock. All reads and writes go through a single
// mutex; merkle.Tree is not itself safe for concurrent use, which is why
// FileIndex owns the only handle to it rather than letting callers touch
// the tree directly.
package fileindex
