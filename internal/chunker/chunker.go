package chunker

import (
	"fmt"
	"os"
	"time"

	"github.com/edsrzf/mmap-go"

	"github.com/brightforge/codeintel/internal/boundary"
	"github.com/brightforge/codeintel/internal/tokenizer"
	"github.com/brightforge/codeintel/pkg/types"
)

// Chunker splits source bytes into token-bounded, context-annotated
// CodeChunks.
type Chunker struct{}

// New returns a ready-to-use Chunker. The type carries no state; a value
// receiver would do just as well, but New matches this module's other
// component constructors.
func New() *Chunker {
	return &Chunker{}
}

// ChunkFile memory-maps path and chunks its contents, falling back to a
// buffered read when the file can't be mapped.
func (c *Chunker) ChunkFile(path string, cfg Config) (*types.ChunkResult, error) {
	source, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("Failed to open file: %w", err)
	}
	if cfg.Language == types.LanguageUnknown {
		cfg.Language = types.DetectLanguage(path)
	}
	return c.ChunkSource(source, cfg), nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		return nil, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return os.ReadFile(path)
	}
	defer func() { _ = m.Unmap() }()

	out := make([]byte, len(m))
	copy(out, m)
	return out, nil
}

// ChunkSource chunks an in-memory source buffer. It never returns an
// error: malformed or unrecognized input degrades to coarser chunks
// rather than failing.
func (c *Chunker) ChunkSource(source []byte, cfg Config) *types.ChunkResult {
	start := time.Now()
	result := &types.ChunkResult{Language: cfg.Language}
	if len(source) == 0 {
		return result
	}

	var boundaries []types.SemanticBoundary
	if cfg.RespectBoundaries {
		boundaries = boundary.Detect(source, cfg.Language)
	}

	var importLines []string
	if cfg.PreserveImports {
		importLines = collectImports(source, boundaries)
	}

	var spans []span
	var kinds []region
	if len(boundaries) > 0 {
		for _, r := range partitionRegions(len(source), boundaries) {
			content := source[r.start:r.end]
			if isWhitespaceOnly(content) {
				continue
			}
			if tokenizer.CountTokens(content) <= cfg.MaxChunkTokens {
				spans = append(spans, span{start: r.start, end: r.end})
				kinds = append(kinds, r)
				continue
			}
			for _, s := range slidingWindow(source, r.start, r.end, cfg) {
				spans = append(spans, s)
				kinds = append(kinds, r)
			}
		}
	} else {
		raw := mergeUndersizedSpans(source, slidingWindow(source, 0, len(source), cfg), cfg.MinChunkTokens)
		for _, s := range raw {
			if isWhitespaceOnly(source[s.start:s.end]) {
				continue
			}
			spans = append(spans, s)
			kinds = append(kinds, region{kind: types.KindUnknown})
		}
	}

	chunks := make([]types.CodeChunk, 0, len(spans))
	for i, s := range spans {
		content := string(source[s.start:s.end])
		lineStart, colStart := lineColAt(source, s.start)
		lineEnd, colEnd := lineColAt(source, s.end)

		chunk := types.CodeChunk{
			Content:    content,
			TokenCount: tokenizer.CountTokens(source[s.start:s.end]),
			Location: types.SourceLocation{
				LineStart:   lineStart,
				LineEnd:     lineEnd,
				ColumnStart: colStart,
				ColumnEnd:   colEnd,
				ByteOffset:  s.start,
				ByteLength:  s.end - s.start,
			},
			Kind:       kinds[i].kind,
			ChunkIndex: i,
		}
		if cfg.IncludeContext {
			chunk.Context = extractContext(boundaries, s.start)
			if kinds[i].name != "" {
				chunk.Context.ParentName = kinds[i].name
			}
			if cfg.PreserveImports {
				chunk.Context.Imports = importsOutsideChunk(importLines, content)
			}
		}
		chunk.ComputeHash()
		chunks = append(chunks, chunk)
	}

	result.Chunks = chunks
	result.Duration = time.Since(start)
	return result
}

// lineColAt returns the 1-based line and column of byte offset within
// source.
func lineColAt(source []byte, offset int) (line, col int) {
	line, col = 1, 1
	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
