// Package types holds the data model shared by the boundary detector,
// tokenizer, chunker, hasher, Merkle tree, file index, and indexer. Every
// type here is handed to and returned from the engine by value; none of
// them owns a lock or a file handle.
package types
