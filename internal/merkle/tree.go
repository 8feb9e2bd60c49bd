package merkle

import (
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/brightforge/codeintel/pkg/types"
)

// combinePrime is the odd 64-bit constant folded into every combine step.
const combinePrime uint64 = 0x9E3779B185EBCA87

// combine folds a child hash into a running accumulator. It is not
// commutative, so children must always be combined in a fixed order
// (sorted by name) for the result to be reproducible.
func combine(h1, h2 uint64) uint64 {
	return h1 ^ (h2 + combinePrime + (h1 << 6) + (h1 >> 2))
}

const cacheSize = 512

type cachedHash struct {
	hash       uint64
	generation uint64
}

// Tree is a Merkle tree over a directory structure. The zero value is
// not usable; construct with New.
type Tree struct {
	root       *types.MerkleNode
	dirty      bool
	generation uint64
	cache      *lru.Cache[string, cachedHash]
}

// New returns an empty Tree.
func New() *Tree {
	cache, _ := lru.New[string, cachedHash](cacheSize) // cacheSize > 0, never errors
	return &Tree{
		root:  &types.MerkleNode{Children: make(map[string]*types.MerkleNode)},
		cache: cache,
	}
}

func splitPath(path string) []string {
	path = strings.ReplaceAll(path, "\\", "/")
	var out []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

// AddFile creates any missing intermediate directory nodes along path
// and sets the leaf's hash, marking the tree dirty.
func (t *Tree) AddFile(path string, hash uint64) {
	segs := splitPath(path)
	if len(segs) == 0 {
		return
	}
	node := t.root
	for _, seg := range segs[:len(segs)-1] {
		child, ok := node.Children[seg]
		if !ok || child.IsFile {
			child = &types.MerkleNode{Name: seg, Children: make(map[string]*types.MerkleNode)}
			node.Children[seg] = child
		}
		node = child
	}
	leaf := segs[len(segs)-1]
	node.Children[leaf] = &types.MerkleNode{Name: leaf, Hash: hash, IsFile: true}
	t.markDirty()
}

// RemoveFile deletes the leaf at path. Intermediate directory nodes are
// left in place even if this empties them; use Clear to reset the tree
// entirely.
func (t *Tree) RemoveFile(path string) {
	segs := splitPath(path)
	if len(segs) == 0 {
		return
	}
	node := t.root
	for _, seg := range segs[:len(segs)-1] {
		child, ok := node.Children[seg]
		if !ok {
			return
		}
		node = child
	}
	delete(node.Children, segs[len(segs)-1])
	t.markDirty()
}

// Clear resets the tree to empty.
func (t *Tree) Clear() {
	t.root = &types.MerkleNode{Children: make(map[string]*types.MerkleNode)}
	t.cache.Purge()
	t.generation = 0
	t.dirty = false
}

func (t *Tree) markDirty() {
	t.dirty = true
	t.generation++
}

// nodeAt returns the node at path, or nil if no such path exists.
func (t *Tree) nodeAt(path string) *types.MerkleNode {
	node := t.root
	for _, seg := range splitPath(path) {
		child, ok := node.Children[seg]
		if !ok {
			return nil
		}
		node = child
	}
	return node
}

// computeNodeHash recomputes node's hash bottom-up (a no-op for a file
// leaf, whose hash is already its content hash) and caches the result by
// path at the tree's current generation.
func (t *Tree) computeNodeHash(path string, node *types.MerkleNode) uint64 {
	if node.IsFile {
		return node.Hash
	}
	if cached, ok := t.cache.Get(path); ok && cached.generation == t.generation {
		node.Hash = cached.hash
		return cached.hash
	}

	names := make([]string, 0, len(node.Children))
	for name := range node.Children {
		names = append(names, name)
	}
	sort.Strings(names)

	var acc uint64
	for _, name := range names {
		childPath := name
		if path != "" {
			childPath = path + "/" + name
		}
		child := node.Children[name]
		h := t.computeNodeHash(childPath, child)
		if !child.IsFile && h == 0 {
			// A directory with no files beneath it (such as one emptied by
			// RemoveFile) hashes to 0 and is left out of the fold, so its
			// parent hashes as if that directory did not exist.
			continue
		}
		acc = combine(acc, h)
	}
	node.Hash = acc
	t.cache.Add(path, cachedHash{hash: acc, generation: t.generation})
	return acc
}

// ComputeHash recomputes and returns the hash of the subtree rooted at
// dirPath. It is undefined (returns 0) for a path with no node.
func (t *Tree) ComputeHash(dirPath string) uint64 {
	node := t.nodeAt(dirPath)
	if node == nil {
		return 0
	}
	return t.computeNodeHash(dirPath, node)
}

// RootHash returns the tree's root hash, recomputing the whole tree
// bottom-up only if a mutation has happened since the last call.
func (t *Tree) RootHash() uint64 {
	if t.dirty {
		t.root.Hash = t.computeNodeHash("", t.root)
		t.dirty = false
	}
	return t.root.Hash
}
