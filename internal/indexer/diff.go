package indexer

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/brightforge/codeintel/pkg/types"
)

// Differ computes file-level changes between two file lists.
type Differ struct {
	cfg Config
}

// NewDiffer returns a Differ configured with cfg.
func NewDiffer(cfg Config) *Differ {
	return &Differ{cfg: cfg.normalized()}
}

// Diff compares oldFiles against newFiles and returns their differences.
// When DetectRenames is set, paths that moved without their content
// changing are paired and reported as Renamed rather than a
// Deleted/Added pair.
func (d *Differ) Diff(oldFiles, newFiles []types.FileEntry) *types.DiffResult {
	start := time.Now()

	oldByPath := make(map[string]types.FileEntry, len(oldFiles))
	for _, f := range oldFiles {
		oldByPath[f.RelativePath] = f
	}
	newByPath := make(map[string]types.FileEntry, len(newFiles))
	for _, f := range newFiles {
		newByPath[f.RelativePath] = f
	}

	var changes []types.FileChange

	if d.cfg.DetectRenames {
		renamed := pairRenames(oldByPath, newByPath)
		changes = append(changes, renamed...)
	}

	var addedPaths, modifiedPaths []string
	for path, nf := range newByPath {
		of, existed := oldByPath[path]
		if !existed {
			addedPaths = append(addedPaths, path)
			continue
		}
		if of.ContentHash != nf.ContentHash {
			modifiedPaths = append(modifiedPaths, path)
		}
	}
	sort.Strings(addedPaths)
	sort.Strings(modifiedPaths)
	for _, p := range addedPaths {
		changes = append(changes, types.FileChange{Kind: types.ChangeAdded, Path: p, NewHash: newByPath[p].ContentHash})
	}
	for _, p := range modifiedPaths {
		changes = append(changes, types.FileChange{Kind: types.ChangeModified, Path: p, OldHash: oldByPath[p].ContentHash, NewHash: newByPath[p].ContentHash})
	}

	var deletedPaths []string
	for path := range oldByPath {
		if _, ok := newByPath[path]; !ok {
			deletedPaths = append(deletedPaths, path)
		}
	}
	sort.Strings(deletedPaths)
	for _, p := range deletedPaths {
		changes = append(changes, types.FileChange{Kind: types.ChangeDeleted, Path: p, OldHash: oldByPath[p].ContentHash})
	}

	result := &types.DiffResult{
		DiffID:   uuid.NewString(),
		Changes:  changes,
		Duration: time.Since(start),
	}
	for _, c := range changes {
		switch c.Kind {
		case types.ChangeAdded:
			result.Added++
		case types.ChangeModified:
			result.Modified++
		case types.ChangeDeleted:
			result.Deleted++
		case types.ChangeRenamed:
			result.Renamed++
		}
	}
	return result
}

// pairRenames builds hash->paths multimaps for both sides and, for each
// hash present in both, pairs old-only paths with new-only paths
// lexicographically within the bucket -- each path consumed at most
// once. Paired paths are removed from oldByPath/newByPath so later
// passes never see them again. Entries with ContentHash == 0 ("hash not
// computed") are excluded from both multimaps -- otherwise two
// unrelated zero-hash files would be paired into a bogus rename.
func pairRenames(oldByPath, newByPath map[string]types.FileEntry) []types.FileChange {
	oldByHash := make(map[uint64][]string)
	for path, f := range oldByPath {
		if f.ContentHash == 0 {
			continue
		}
		oldByHash[f.ContentHash] = append(oldByHash[f.ContentHash], path)
	}
	newByHash := make(map[uint64][]string)
	for path, f := range newByPath {
		if f.ContentHash == 0 {
			continue
		}
		newByHash[f.ContentHash] = append(newByHash[f.ContentHash], path)
	}

	var changes []types.FileChange
	for hash, oldPaths := range oldByHash {
		newPaths, ok := newByHash[hash]
		if !ok {
			continue
		}
		oldOnly := pathsNotIn(oldPaths, newByPath)
		newOnly := pathsNotIn(newPaths, oldByPath)
		sort.Strings(oldOnly)
		sort.Strings(newOnly)

		n := len(oldOnly)
		if len(newOnly) < n {
			n = len(newOnly)
		}
		for i := 0; i < n; i++ {
			changes = append(changes, types.FileChange{
				Kind:    types.ChangeRenamed,
				Path:    newOnly[i],
				OldPath: oldOnly[i],
				OldHash: hash,
				NewHash: hash,
			})
			delete(oldByPath, oldOnly[i])
			delete(newByPath, newOnly[i])
		}
	}
	sort.Slice(changes, func(i, j int) bool { return changes[i].OldPath < changes[j].OldPath })
	return changes
}

// pathsNotIn keeps only the entries of paths that are not also a key in
// other.
func pathsNotIn(paths []string, other map[string]types.FileEntry) []string {
	var out []string
	for _, p := range paths {
		if _, ok := other[p]; !ok {
			out = append(out, p)
		}
	}
	return out
}
