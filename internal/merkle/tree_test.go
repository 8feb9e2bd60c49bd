package merkle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyTreeRootHashIsZero(t *testing.T) {
	tree := New()
	assert.Zero(t, tree.RootHash())
}

func TestAddFileThenRemoveRestoresRootHash(t *testing.T) {
	empty := New()
	emptyHash := empty.RootHash()

	tree := New()
	tree.AddFile("dir/a.py", 0x1111)
	tree.AddFile("dir/b.py", 0x2222)
	assert.NotEqual(t, emptyHash, tree.RootHash())

	tree.RemoveFile("dir/a.py")
	tree.RemoveFile("dir/b.py")

	// Directory-emptiness-after-remove: dir/ is left in place, empty, and
	// an empty directory's hash is 0 -- identical to a tree that never
	// held the file.
	assert.Equal(t, emptyHash, tree.RootHash())
}

func TestCombineIsOrderSensitive(t *testing.T) {
	a := combine(0, 0x1111)
	a = combine(a, 0x2222)

	b := combine(0, 0x2222)
	b = combine(b, 0x1111)

	assert.NotEqual(t, a, b)
}

func TestRootHashDeterministicAcrossInsertionOrder(t *testing.T) {
	t1 := New()
	t1.AddFile("a.py", 1)
	t1.AddFile("dir/b.py", 2)
	t1.AddFile("dir/c.py", 3)

	t2 := New()
	t2.AddFile("dir/c.py", 3)
	t2.AddFile("a.py", 1)
	t2.AddFile("dir/b.py", 2)

	assert.Equal(t, t1.RootHash(), t2.RootHash())
}

func TestComputeHashUnknownPathIsZero(t *testing.T) {
	tree := New()
	tree.AddFile("a.py", 42)
	assert.Zero(t, tree.ComputeHash("missing/dir"))
}

func TestDiffOfIdenticalTreesIsEmpty(t *testing.T) {
	t1 := New()
	t1.AddFile("a.py", 1)
	t1.AddFile("dir/b.py", 2)

	t2 := New()
	t2.AddFile("dir/b.py", 2)
	t2.AddFile("a.py", 1)

	assert.Empty(t, t1.Diff(t2))
}

func TestDiffDetectsChangedFileAndParentDir(t *testing.T) {
	t1 := New()
	t1.AddFile("dir/a.py", 1)
	t1.AddFile("dir/b.py", 2)

	t2 := New()
	t2.AddFile("dir/a.py", 1)
	t2.AddFile("dir/b.py", 99)

	diff := t1.Diff(t2)
	assert.Contains(t, diff, "dir")
	assert.Contains(t, diff, "dir/b.py")
	assert.NotContains(t, diff, "dir/a.py")
}

func TestDiffIsSymmetricInPathSet(t *testing.T) {
	t1 := New()
	t1.AddFile("a.py", 1)
	t1.AddFile("dir/b.py", 2)

	t2 := New()
	t2.AddFile("a.py", 1)
	t2.AddFile("dir/c.py", 2)

	forward := t1.Diff(t2)
	backward := t2.Diff(t1)

	assert.ElementsMatch(t, forward, backward)
}

func TestSerializeDeserializeRoundTripsRootHash(t *testing.T) {
	tree := New()
	tree.AddFile("a.py", 111)
	tree.AddFile("dir/b.py", 222)
	tree.AddFile("dir/sub/c.py", 333)

	want := tree.RootHash()
	data := tree.Serialize()

	restored, err := Deserialize(data)
	require.NoError(t, err)
	assert.Equal(t, want, restored.RootHash())
	assert.Equal(t, uint64(333), restored.ComputeHash("dir/sub/c.py"))
}

func TestDeserializeRejectsBadMagic(t *testing.T) {
	_, err := Deserialize([]byte{0, 1, 2, 3})
	assert.Error(t, err)
}

func TestDeserializeRejectsTruncatedPayload(t *testing.T) {
	tree := New()
	tree.AddFile("a.py", 1)
	data := tree.Serialize()

	_, err := Deserialize(data[:len(data)-3])
	assert.Error(t, err)
}
