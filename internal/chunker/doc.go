// Package chunker divides source bytes into an ordered sequence of
// token-bounded CodeChunks.
//
// # Basic usage
//
//	c := chunker.New()
//	result, err := c.ChunkFile("/path/to/file.go", chunker.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, chunk := range result.Chunks {
//	    fmt.Printf("chunk %d: %d tokens, lines %d-%d\n",
//	        chunk.ChunkIndex, chunk.TokenCount, chunk.Location.LineStart, chunk.Location.LineEnd)
//	}
//
// # Chunking strategy
//
// When RespectBoundaries is set, the detected boundaries partition the
// source into regions (function bodies, class bodies, module-level
// gaps); each region becomes one chunk if it fits the token budget, or a
// sliding window of overlapping chunks if it doesn't. With no boundaries
// available, or RespectBoundaries unset, the sliding window runs over
// the whole source and every undersized chunk except the final one is
// merged with the chunk after it.
//
// # Context and hashing
//
// IncludeContext attaches the enclosing function/class name and the
// most recent module name to each chunk; PreserveImports additionally
// attaches any import line not already present in the chunk's own
// content. Every chunk's Hash is the 64-bit FNV-1a digest of its
// Content.
package chunker
