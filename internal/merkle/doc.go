// Package merkle maintains a tree mirroring a directory structure, where
// each leaf carries a file's content hash and each internal node carries
// a deterministic fold of its sorted children's hashes.
//
// Tree is not safe for concurrent use on its own; callers that share a
// Tree across goroutines (internal/fileindex does) must serialize access
// with their own mutex, the same "interior-mutable memoization guarded
// by the caller's lock" split the rest of this module follows.
package merkle
