package merkle

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"github.com/brightforge/codeintel/pkg/types"
)

const (
	magic         uint32 = 0x4D524B4C // "MRKL"
	formatVersion uint32 = 1
)

// Serialize encodes the tree as magic "MRKL" + version 1 + a recursive
// node record for the root: (name_len u32, name bytes, hash u64,
// is_file u8, child_count u32, children...), all little-endian.
func (t *Tree) Serialize() []byte {
	t.RootHash() // freshen every node's Hash before encoding
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, magic)
	_ = binary.Write(&buf, binary.LittleEndian, formatVersion)
	writeNode(&buf, t.root)
	return buf.Bytes()
}

func writeNode(buf *bytes.Buffer, node *types.MerkleNode) {
	name := []byte(node.Name)
	_ = binary.Write(buf, binary.LittleEndian, uint32(len(name)))
	buf.Write(name)
	_ = binary.Write(buf, binary.LittleEndian, node.Hash)
	if node.IsFile {
		_ = binary.Write(buf, binary.LittleEndian, uint8(1))
		_ = binary.Write(buf, binary.LittleEndian, uint32(0))
		return
	}
	_ = binary.Write(buf, binary.LittleEndian, uint8(0))
	_ = binary.Write(buf, binary.LittleEndian, uint32(len(node.Children)))
	for _, name := range sortedKeys(node.Children) {
		writeNode(buf, node.Children[name])
	}
}

func sortedKeys(m map[string]*types.MerkleNode) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Deserialize parses the output of Serialize back into a Tree.
// types.ErrCorrupt is returned on a bad magic, version mismatch, or
// truncated payload.
func Deserialize(data []byte) (*Tree, error) {
	r := bytes.NewReader(data)

	var gotMagic, version uint32
	if err := binary.Read(r, binary.LittleEndian, &gotMagic); err != nil {
		return nil, fmt.Errorf("merkle: %w", types.ErrCorrupt)
	}
	if gotMagic != magic {
		return nil, fmt.Errorf("merkle: bad magic: %w", types.ErrCorrupt)
	}
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("merkle: %w", types.ErrCorrupt)
	}
	if version != formatVersion {
		return nil, fmt.Errorf("merkle: unsupported version %d: %w", version, types.ErrCorrupt)
	}

	root, err := readNode(r)
	if err != nil {
		return nil, err
	}

	tree := New()
	tree.root = root
	tree.dirty = false
	return tree, nil
}

func readNode(r *bytes.Reader) (*types.MerkleNode, error) {
	var nameLen uint32
	if err := binary.Read(r, binary.LittleEndian, &nameLen); err != nil {
		return nil, fmt.Errorf("merkle: %w", types.ErrCorrupt)
	}
	nameBuf := make([]byte, nameLen)
	if _, err := io.ReadFull(r, nameBuf); err != nil {
		return nil, fmt.Errorf("merkle: %w", types.ErrCorrupt)
	}

	var hash uint64
	if err := binary.Read(r, binary.LittleEndian, &hash); err != nil {
		return nil, fmt.Errorf("merkle: %w", types.ErrCorrupt)
	}
	var isFile uint8
	if err := binary.Read(r, binary.LittleEndian, &isFile); err != nil {
		return nil, fmt.Errorf("merkle: %w", types.ErrCorrupt)
	}
	var childCount uint32
	if err := binary.Read(r, binary.LittleEndian, &childCount); err != nil {
		return nil, fmt.Errorf("merkle: %w", types.ErrCorrupt)
	}

	node := &types.MerkleNode{Name: string(nameBuf), Hash: hash, IsFile: isFile != 0}
	if !node.IsFile {
		node.Children = make(map[string]*types.MerkleNode, childCount)
		for i := uint32(0); i < childCount; i++ {
			child, err := readNode(r)
			if err != nil {
				return nil, err
			}
			node.Children[child.Name] = child
		}
	}
	return node, nil
}
