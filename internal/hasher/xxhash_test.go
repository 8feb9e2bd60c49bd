package hasher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashBytesDeterministic(t *testing.T) {
	h1 := HashBytes([]byte("abc"))
	h2 := HashBytes([]byte("abc"))
	assert.Equal(t, h1, h2)
	assert.NotZero(t, h1)
}

func TestHashBytesEmptyIsStandardXXHash64Value(t *testing.T) {
	// Published xxHash64 test vector for zero-length input, seed 0.
	assert.Equal(t, uint64(0xef46db3751d8e999), HashBytes(nil))
}

func TestHashFileEmptyFileIsZeroByConvention(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	h, err := HashFile(path)
	require.NoError(t, err)
	assert.Zero(t, h)
}

func TestHashFileMatchesHashBytes(t *testing.T) {
	content := []byte("the quick brown fox jumps over the lazy dog")
	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	fileHash, err := HashFile(path)
	require.NoError(t, err)
	assert.Equal(t, HashBytes(content), fileHash)
}

func TestHashFileLargeContentStreamsConsistently(t *testing.T) {
	content := make([]byte, 200*1024)
	for i := range content {
		content[i] = byte(i % 251)
	}
	path := filepath.Join(t.TempDir(), "big.bin")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	h, err := HashFile(path)
	require.NoError(t, err)
	assert.Equal(t, HashBytes(content), h)
}

func TestHashFileMissingFileErrors(t *testing.T) {
	_, err := HashFile("/nonexistent/path/x")
	assert.Error(t, err)
}

func TestParallelHashPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	var want []uint64
	for i := 0; i < 37; i++ {
		p := filepath.Join(dir, "file")
		p = p + string(rune('a'+i%26)) + string(rune('0'+i/26))
		content := []byte{byte(i), byte(i * 7), byte(i * 13)}
		require.NoError(t, os.WriteFile(p, content, 0o644))
		paths = append(paths, p)
		want = append(want, HashBytes(content))
	}

	got := ParallelHash(paths, 8)
	require.Len(t, got, len(want))
	assert.Equal(t, want, got)
}

func TestParallelHashMissingFileYieldsZeroSlotWithoutAbortingBatch(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte("ok"), 0o644))

	paths := []string{good, "/nonexistent/missing.txt", good}
	got := ParallelHash(paths, 4)

	require.Len(t, got, 3)
	assert.Equal(t, HashBytes([]byte("ok")), got[0])
	assert.Zero(t, got[1])
	assert.Equal(t, HashBytes([]byte("ok")), got[2])
}

func TestParallelHashEmptyInput(t *testing.T) {
	assert.Nil(t, ParallelHash(nil, 4))
}
