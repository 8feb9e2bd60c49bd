package fileindex

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightforge/codeintel/pkg/types"
)

func TestAddGetRemove(t *testing.T) {
	idx := New()
	idx.Add(types.FileEntry{RelativePath: "a.py", ContentHash: 1, Language: types.LanguagePython})

	e, ok := idx.Get("a.py")
	require.True(t, ok)
	assert.Equal(t, uint64(1), e.ContentHash)
	assert.True(t, idx.Contains("a.py"))
	assert.Equal(t, 1, idx.Size())

	idx.Remove("a.py")
	assert.False(t, idx.Contains("a.py"))
	assert.Equal(t, 0, idx.Size())
}

func TestGetByLanguage(t *testing.T) {
	idx := New()
	idx.Add(types.FileEntry{RelativePath: "a.py", Language: types.LanguagePython})
	idx.Add(types.FileEntry{RelativePath: "b.go", Language: types.LanguageGo})
	idx.Add(types.FileEntry{RelativePath: "c.py", Language: types.LanguagePython})

	pys := idx.GetByLanguage(types.LanguagePython)
	assert.Len(t, pys, 2)
}

func TestClearResetsMerkleHash(t *testing.T) {
	idx := New()
	idx.Add(types.FileEntry{RelativePath: "a.py", ContentHash: 1})
	assert.NotZero(t, idx.MerkleHash())

	idx.Clear()
	assert.Zero(t, idx.Size())
	assert.Zero(t, idx.MerkleHash())
}

func TestSaveLoadRoundTripsThousandEntries(t *testing.T) {
	idx := New()
	for i := 0; i < 1000; i++ {
		path := fmt.Sprintf("dir%d/file%d.go", i%20, i)
		idx.Add(types.FileEntry{
			RelativePath: path,
			ContentHash:  uint64(i*31 + 7),
			SizeBytes:    int64(i * 100),
			MtimeMs:      1_700_000_000_000 + int64(i),
			Language:     types.LanguageGo,
			IsIndexed:    i%2 == 0,
		})
	}
	wantHash := idx.MerkleHash()
	wantAll := idx.GetAll()

	dest := filepath.Join(t.TempDir(), "index.bin")
	require.NoError(t, idx.Save(dest))

	fresh := New()
	require.NoError(t, fresh.Load(dest))

	assert.Equal(t, wantHash, fresh.MerkleHash())
	assert.ElementsMatch(t, wantAll, fresh.GetAll())
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "bad.bin")
	require.NoError(t, os.WriteFile(dest, []byte("not an index"), 0o644))

	idx := New()
	idx.Add(types.FileEntry{RelativePath: "survives.go", ContentHash: 9})

	err := idx.Load(dest)
	assert.Error(t, err)
	// Failed load must not mutate existing state.
	assert.True(t, idx.Contains("survives.go"))
}

