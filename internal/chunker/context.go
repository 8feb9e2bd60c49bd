package chunker

import (
	"strings"

	"github.com/brightforge/codeintel/pkg/types"
)

// extractContext scans boundaries starting at or before chunkOffset: the
// Function/Class boundary with the greatest scope depth wins parent_name,
// and the most recent Module boundary wins namespace_name.
func extractContext(boundaries []types.SemanticBoundary, chunkOffset int) types.ChunkContext {
	var ctx types.ChunkContext
	bestDepth := -1
	for _, b := range boundaries {
		if !b.IsStart || b.ByteOffset > chunkOffset {
			continue
		}
		switch b.Kind {
		case types.KindFunction, types.KindClass:
			if b.ScopeDepth > bestDepth {
				bestDepth = b.ScopeDepth
				ctx.ParentName = b.Name
			}
		case types.KindModule:
			ctx.NamespaceName = b.Name
		}
	}
	return ctx
}

// collectImports returns every Import-kind boundary's source line, in the
// order the boundaries were detected, deduplicated by line content.
func collectImports(source []byte, boundaries []types.SemanticBoundary) []string {
	var lines []string
	seen := make(map[string]bool)
	for _, b := range boundaries {
		if !b.IsStart || b.Kind != types.KindImport {
			continue
		}
		line := sourceLine(source, b.ByteOffset)
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true
		lines = append(lines, line)
	}
	return lines
}

// importsOutsideChunk filters importLines down to those whose text does
// not already appear verbatim within chunkContent, so preserved imports
// never duplicate a line the chunk already carries.
func importsOutsideChunk(importLines []string, chunkContent string) []string {
	var out []string
	for _, line := range importLines {
		if strings.Contains(chunkContent, line) {
			continue
		}
		out = append(out, line)
	}
	return out
}

// sourceLine returns the full line (excluding its trailing newline)
// containing byte offset.
func sourceLine(source []byte, offset int) string {
	if offset < 0 || offset > len(source) {
		return ""
	}
	start := offset
	for start > 0 && source[start-1] != '\n' {
		start--
	}
	end := offset
	for end < len(source) && source[end] != '\n' {
		end++
	}
	return strings.TrimRight(string(source[start:end]), "\r")
}
