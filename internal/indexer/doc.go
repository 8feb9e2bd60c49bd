// Package indexer walks a repository tree, content-hashes its files,
// rebuilds a Merkle tree over the result, and computes file-level diffs
// between successive scans.
//
// Scanner and Differ are independently usable: a caller typically scans
// once, keeps the resulting FileEntry list, scans again later, and feeds
// both lists to Differ.Diff to get the change set between the two scans.
// Each scan hashes every file it keeps. Renamed files are detected by
// matching content hashes across the old and new file sets rather than
// by path, so a file that moved without being edited is reported as a
// single rename instead of a delete/add pair.
package indexer
