package indexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightforge/codeintel/pkg/types"
)

func entry(path string, hash uint64) types.FileEntry {
	return types.FileEntry{RelativePath: path, ContentHash: hash}
}

func TestDiffDetectsAddedModifiedDeleted(t *testing.T) {
	oldFiles := []types.FileEntry{entry("a.py", 1), entry("b.py", 2), entry("c.py", 3)}
	newFiles := []types.FileEntry{entry("a.py", 1), entry("b.py", 99), entry("d.py", 4)}

	d := NewDiffer(Config{DetectRenames: false})
	result := d.Diff(oldFiles, newFiles)

	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 1, result.Modified)
	assert.Equal(t, 1, result.Deleted)
	assert.Equal(t, 0, result.Renamed)
	assert.NotEmpty(t, result.DiffID)
}

// A rename (content identical, path moved) with one new file and no
// changes elsewhere: exactly one Renamed, one Added, zero Modified,
// zero Deleted.
func TestDiffPairsRenamesByContentHash(t *testing.T) {
	oldFiles := []types.FileEntry{entry("a.py", 1), entry("dir/b.py", 2)}
	newFiles := []types.FileEntry{entry("a.py", 1), entry("dir/c.py", 2), entry("new.py", 3)}

	d := NewDiffer(DefaultConfig())
	result := d.Diff(oldFiles, newFiles)

	require.Len(t, result.Changes, 2)
	assert.Equal(t, 1, result.Renamed)
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 0, result.Modified)
	assert.Equal(t, 0, result.Deleted)

	var rename *types.FileChange
	for i := range result.Changes {
		if result.Changes[i].Kind == types.ChangeRenamed {
			rename = &result.Changes[i]
		}
	}
	require.NotNil(t, rename)
	assert.Equal(t, "dir/b.py", rename.OldPath)
	assert.Equal(t, "dir/c.py", rename.Path)
	assert.Equal(t, uint64(2), rename.OldHash)
	assert.Equal(t, uint64(2), rename.NewHash)
}

// With rename detection off, the same scenario reports a plain
// Deleted/Added pair instead of a Renamed entry.
func TestDiffWithoutRenameDetectionReportsDeleteAndAdd(t *testing.T) {
	oldFiles := []types.FileEntry{entry("dir/b.py", 2)}
	newFiles := []types.FileEntry{entry("dir/c.py", 2)}

	d := NewDiffer(Config{DetectRenames: false})
	result := d.Diff(oldFiles, newFiles)

	assert.Equal(t, 0, result.Renamed)
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 1, result.Deleted)
}

// Pins the lexicographic tie-break: when a hash bucket has more than
// one old-only and new-only path, pairing is by sorted order within
// the bucket, not by encounter order.
func TestDiffRenameTieBreakIsLexicographic(t *testing.T) {
	oldFiles := []types.FileEntry{entry("z_old.py", 1), entry("a_old.py", 1)}
	newFiles := []types.FileEntry{entry("z_new.py", 1), entry("a_new.py", 1)}

	d := NewDiffer(DefaultConfig())
	result := d.Diff(oldFiles, newFiles)

	require.Len(t, result.Changes, 2)
	byOldPath := make(map[string]types.FileChange)
	for _, c := range result.Changes {
		byOldPath[c.OldPath] = c
	}
	assert.Equal(t, "a_new.py", byOldPath["a_old.py"].Path)
	assert.Equal(t, "z_new.py", byOldPath["z_old.py"].Path)
}

// Zero ContentHash means "hash not computed" (or an empty file under
// some hashers), not a real content match -- two such files on
// opposite sides of a diff must never be paired into a Renamed entry.
func TestDiffZeroHashFilesAreNotPairedAsRenames(t *testing.T) {
	oldFiles := []types.FileEntry{entry("old.py", 0)}
	newFiles := []types.FileEntry{entry("new.py", 0)}

	d := NewDiffer(DefaultConfig())
	result := d.Diff(oldFiles, newFiles)

	assert.Equal(t, 0, result.Renamed)
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 1, result.Deleted)
	require.Len(t, result.Changes, 2)
}

func TestDiffOfIdenticalListsIsEmpty(t *testing.T) {
	files := []types.FileEntry{entry("a.py", 1), entry("b.py", 2)}
	d := NewDiffer(DefaultConfig())
	result := d.Diff(files, files)
	assert.Empty(t, result.Changes)
	assert.Zero(t, result.Added+result.Modified+result.Deleted+result.Renamed)
}
