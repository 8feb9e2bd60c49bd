package chunker

import (
	"github.com/brightforge/codeintel/internal/tokenizer"
)

// span is a half-open byte range [start, end) within the source.
type span struct {
	start int
	end   int
}

// slidingWindow splits source[start:end) into token-bounded spans with
// overlap: find the token boundary at max_chunk_tokens, extend forward to
// the next newline so a chunk never ends mid-line, emit, then back up by
// overlap_tokens' worth of bytes (never before start) for the next
// window. That backed-up start is a byte count, not a line start, so a
// window after the first can begin mid-line.
func slidingWindow(source []byte, start, end int, cfg Config) []span {
	var spans []span
	cursor := start
	for cursor < end {
		remaining := source[cursor:end]
		boundary := tokenizer.FindTokenBoundary(remaining, cfg.MaxChunkTokens)
		chunkEnd := cursor + boundary
		chunkEnd = extendToNewline(source, chunkEnd, end)
		if chunkEnd <= cursor {
			chunkEnd = end
		}
		spans = append(spans, span{start: cursor, end: chunkEnd})
		if chunkEnd >= end {
			break
		}

		emitted := source[cursor:chunkEnd]
		overlapBytes := tokenizer.FindTokenBoundary(emitted, cfg.OverlapTokens)
		next := chunkEnd - overlapBytes
		if next < start {
			next = start
		}
		if next <= cursor {
			next = chunkEnd
		}
		cursor = next
	}
	return spans
}

// extendToNewline advances pos to just past the next '\n' at or after
// pos within [pos, limit), or returns limit if none is found.
func extendToNewline(source []byte, pos, limit int) int {
	if pos >= limit {
		return limit
	}
	for i := pos; i < limit; i++ {
		if source[i] == '\n' {
			return i + 1
		}
	}
	return limit
}

// mergeUndersizedSpans handles the no-boundaries path: any span short of
// min_chunk_tokens, other than the final one, is extended forward (merged
// with its successor) until it meets the minimum or there is nothing left
// to merge with.
func mergeUndersizedSpans(source []byte, spans []span, minTokens int) []span {
	merged := append([]span(nil), spans...)
	i := 0
	for i < len(merged)-1 {
		content := source[merged[i].start:merged[i].end]
		if tokenizer.CountTokens(content) >= minTokens {
			i++
			continue
		}
		merged[i].end = merged[i+1].end
		merged = append(merged[:i+1], merged[i+2:]...)
	}
	return merged
}
