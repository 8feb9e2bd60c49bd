// Package hasher computes xxHash64 digests of file and in-memory
// content, and fans a batch of files out across a worker pool.
//
// Two entry points cover the file case: HashFile memory-maps the file
// and hashes the mapped view in one call when it can, falling back to a
// streaming 64 KiB-buffered read when mmap isn't available. HashBytes
// hashes an in-memory buffer directly and is used for content that never
// touches disk. HashFile treats an empty file as hash 0 by convention;
// HashBytes returns the real xxHash64 of zero bytes for an empty slice,
// since an in-memory value has no "absent" state to signal.
package hasher
