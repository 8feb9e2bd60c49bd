package merkle

import (
	"sort"

	"github.com/brightforge/codeintel/pkg/types"
)

// Diff walks t and other in lock-step over the union of children names
// at each level, starting from their (freshly recomputed) roots.
// Whenever two corresponding subtree hashes differ, or one side is
// missing a path the other has, the path is recorded. Directories are
// recorded before the differing children beneath them.
func (t *Tree) Diff(other *Tree) []string {
	t.RootHash()
	other.RootHash()

	var out []string
	diffNode("", t.root, other.root, &out)
	return out
}

func diffNode(path string, a, b *types.MerkleNode, out *[]string) {
	differs := hashOf(a) != hashOf(b) || (a == nil) != (b == nil)
	if !differs {
		return
	}
	if path != "" {
		*out = append(*out, path)
	}

	names := make(map[string]bool)
	if a != nil {
		for name := range a.Children {
			names[name] = true
		}
	}
	if b != nil {
		for name := range b.Children {
			names[name] = true
		}
	}
	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	for _, name := range sorted {
		var ca, cb *types.MerkleNode
		if a != nil {
			ca = a.Children[name]
		}
		if b != nil {
			cb = b.Children[name]
		}
		childPath := name
		if path != "" {
			childPath = path + "/" + name
		}
		diffNode(childPath, ca, cb, out)
	}
}

func hashOf(n *types.MerkleNode) uint64 {
	if n == nil {
		return 0
	}
	return n.Hash
}
