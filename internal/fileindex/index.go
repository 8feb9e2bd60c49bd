package fileindex

import (
	"sync"

	"github.com/brightforge/codeintel/internal/merkle"
	"github.com/brightforge/codeintel/pkg/types"
)

// FileIndex is a thread-safe mapping from relative path to FileEntry,
// paired with an owned Merkle tree kept consistent with the map.
type FileIndex struct {
	mu      sync.Mutex
	entries map[string]types.FileEntry
	tree    *merkle.Tree
}

// New returns an empty FileIndex.
func New() *FileIndex {
	return &FileIndex{
		entries: make(map[string]types.FileEntry),
		tree:    merkle.New(),
	}
}

// Add inserts or replaces the entry for entry.RelativePath and updates
// the owned Merkle tree to match.
func (idx *FileIndex) Add(entry types.FileEntry) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.entries[entry.RelativePath] = entry
	idx.tree.AddFile(entry.RelativePath, entry.ContentHash)
}

// Remove deletes the entry at path, if present, and removes it from the
// Merkle tree.
func (idx *FileIndex) Remove(path string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	delete(idx.entries, path)
	idx.tree.RemoveFile(path)
}

// Get returns the entry at path and whether it was found.
func (idx *FileIndex) Get(path string) (types.FileEntry, bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	e, ok := idx.entries[path]
	return e, ok
}

// Contains reports whether path has an entry.
func (idx *FileIndex) Contains(path string) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	_, ok := idx.entries[path]
	return ok
}

// GetAll returns every entry, in no particular order.
func (idx *FileIndex) GetAll() []types.FileEntry {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	out := make([]types.FileEntry, 0, len(idx.entries))
	for _, e := range idx.entries {
		out = append(out, e)
	}
	return out
}

// GetByLanguage returns every entry whose Language matches lang.
func (idx *FileIndex) GetByLanguage(lang types.Language) []types.FileEntry {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	var out []types.FileEntry
	for _, e := range idx.entries {
		if e.Language == lang {
			out = append(out, e)
		}
	}
	return out
}

// Size returns the number of entries.
func (idx *FileIndex) Size() int {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return len(idx.entries)
}

// Clear removes every entry and resets the Merkle tree.
func (idx *FileIndex) Clear() {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.entries = make(map[string]types.FileEntry)
	idx.tree.Clear()
}

// MerkleHash returns the current root hash of the owned Merkle tree.
func (idx *FileIndex) MerkleHash() uint64 {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.tree.RootHash()
}
