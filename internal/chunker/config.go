package chunker

import "github.com/brightforge/codeintel/pkg/types"

// Config controls how Chunker partitions a source file into CodeChunks.
// The zero value is not usable directly; call DefaultConfig and override
// what the caller needs.
type Config struct {
	MaxChunkTokens    int
	MinChunkTokens    int
	OverlapTokens     int
	RespectBoundaries bool
	IncludeContext    bool
	PreserveImports   bool
	Language          types.Language // LanguageUnknown: ChunkFile auto-detects from the extension; ChunkSource uses the generic fallback
}

// DefaultConfig returns the chunker's baseline token budget: a 512-token
// ceiling, a 64-token floor below which a chunk other than the final one
// is merged with the chunk after it (applied only when no boundaries are
// used), and 50 tokens of overlap between consecutive chunks.
func DefaultConfig() Config {
	return Config{
		MaxChunkTokens:    512,
		MinChunkTokens:    64,
		OverlapTokens:     50,
		RespectBoundaries: true,
		IncludeContext:    true,
		PreserveImports:   true,
		Language:          types.LanguageUnknown,
	}
}
