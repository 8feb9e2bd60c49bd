package chunker

import (
	"sort"

	"github.com/brightforge/codeintel/pkg/types"
)

// region is a flat, non-overlapping byte span carrying the innermost
// construct active over that span (or KindUnknown between constructs).
type region struct {
	kind       types.ChunkKind
	name       string
	scopeDepth int
	start      int
	end        int // exclusive
}

// event is a start or end transition used to sweep the boundary list
// into flat regions.
type event struct {
	offset     int
	isStart    bool
	kind       types.ChunkKind
	name       string
	scopeDepth int
}

// partitionRegions walks boundaries in order and produces a flat,
// non-overlapping region list: every start boundary opens a region at its
// offset, every end boundary closes one at offset+1, and the gaps become
// Unknown regions.
func partitionRegions(sourceLen int, boundaries []types.SemanticBoundary) []region {
	events := make([]event, 0, len(boundaries))
	for _, b := range boundaries {
		if b.IsStart {
			events = append(events, event{offset: b.ByteOffset, isStart: true, kind: b.Kind, name: b.Name, scopeDepth: b.ScopeDepth})
		} else {
			events = append(events, event{offset: b.ByteOffset + 1, isStart: false})
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].offset != events[j].offset {
			return events[i].offset < events[j].offset
		}
		// Ends close before new starts open at the same offset, so
		// back-to-back constructs don't produce a zero-length gap.
		return !events[i].isStart && events[j].isStart
	})

	type frame struct {
		kind       types.ChunkKind
		name       string
		scopeDepth int
	}
	var stack []frame
	var regions []region
	pos := 0

	flush := func(to int) {
		if to <= pos {
			return
		}
		var f frame
		if len(stack) > 0 {
			f = stack[len(stack)-1]
		} else {
			f = frame{kind: types.KindUnknown}
		}
		regions = append(regions, region{kind: f.kind, name: f.name, scopeDepth: f.scopeDepth, start: pos, end: to})
		pos = to
	}

	for _, e := range events {
		if e.offset > sourceLen {
			break
		}
		flush(e.offset)
		if e.isStart {
			stack = append(stack, frame{kind: e.kind, name: e.name, scopeDepth: e.scopeDepth})
		} else if len(stack) > 0 {
			stack = stack[:len(stack)-1]
		}
	}
	flush(sourceLen)

	return regions
}

// isWhitespaceOnly reports whether region content is entirely
// whitespace, used to skip emitting empty filler chunks.
func isWhitespaceOnly(b []byte) bool {
	for _, c := range b {
		switch c {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			continue
		default:
			return false
		}
	}
	return true
}
