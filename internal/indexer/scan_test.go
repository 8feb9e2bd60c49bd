package indexer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func TestScanFindsFilesAndComputesDistinctHashes(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "a.py", "print(1)\n")
	writeTestFile(t, root, "dir/b.py", "print(2)\n")

	s := NewScanner(DefaultConfig())
	result, err := s.Scan(root, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalFiles)
	assert.Equal(t, 1, result.TotalDirs)
	assert.NotZero(t, result.RootHash)
	assert.NotEmpty(t, result.ScanID)

	byPath := make(map[string]uint64)
	for _, f := range result.Files {
		byPath[f.RelativePath] = f.ContentHash
	}
	assert.NotEqual(t, byPath["a.py"], byPath["dir/b.py"])
}

func TestScanExcludesDefaultIgnoredDirectories(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "keep.go", "package main\n")
	writeTestFile(t, root, "node_modules/lib/index.js", "module.exports = {}\n")
	writeTestFile(t, root, ".git/HEAD", "ref: refs/heads/main\n")

	s := NewScanner(DefaultConfig())
	result, err := s.Scan(root, nil)
	require.NoError(t, err)

	var paths []string
	for _, f := range result.Files {
		paths = append(paths, f.RelativePath)
	}
	assert.Contains(t, paths, "keep.go")
	assert.NotContains(t, paths, "node_modules/lib/index.js")
	assert.NotContains(t, paths, ".git/HEAD")
}

func TestScanSkipsFilesOverMaxSize(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "small.txt", "ok")
	writeTestFile(t, root, "big.txt", string(make([]byte, 1024)))

	cfg := DefaultConfig()
	cfg.MaxFileSize = 100
	s := NewScanner(cfg)
	result, err := s.Scan(root, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalFiles)
	assert.Equal(t, 1, result.SkippedSize)
}

func TestScanInvalidRootReturnsError(t *testing.T) {
	s := NewScanner(DefaultConfig())
	_, err := s.Scan(filepath.Join(t.TempDir(), "does-not-exist"), nil)
	assert.Error(t, err)
}

func TestScanProgressCallbackReachesCompletion(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 5; i++ {
		writeTestFile(t, root, filepath.Join("files", string(rune('a'+i))+".txt"), "x")
	}

	var lastProcessed, lastTotal int
	s := NewScanner(DefaultConfig())
	_, err := s.Scan(root, func(processed, total int, _ string) {
		lastProcessed, lastTotal = processed, total
	})
	require.NoError(t, err)
	assert.Equal(t, lastTotal, lastProcessed)
	assert.Equal(t, 5, lastTotal)
}

func TestScanFollowsSymlinkedDirectoriesWhenEnabled(t *testing.T) {
	root := t.TempDir()
	realDir := t.TempDir()
	writeTestFile(t, realDir, "linked.go", "package real\n")

	link := filepath.Join(root, "linkdir")
	if err := os.Symlink(realDir, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	cfg := DefaultConfig()
	cfg.FollowSymlinks = true
	s := NewScanner(cfg)
	result, err := s.Scan(root, nil)
	require.NoError(t, err)

	var paths []string
	for _, f := range result.Files {
		paths = append(paths, f.RelativePath)
	}
	assert.Contains(t, paths, "linkdir/linked.go")
}

func TestScanSkipsSymlinkedDirectoriesByDefault(t *testing.T) {
	root := t.TempDir()
	realDir := t.TempDir()
	writeTestFile(t, realDir, "linked.go", "package real\n")

	link := filepath.Join(root, "linkdir")
	if err := os.Symlink(realDir, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	s := NewScanner(DefaultConfig())
	result, err := s.Scan(root, nil)
	require.NoError(t, err)

	for _, f := range result.Files {
		assert.NotEqual(t, "linkdir/linked.go", f.RelativePath)
	}
}

func TestScanDirEntriesReportSubtreeFileCounts(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "top/a.txt", "a")
	writeTestFile(t, root, "top/nested/b.txt", "b")

	s := NewScanner(DefaultConfig())
	result, err := s.Scan(root, nil)
	require.NoError(t, err)

	byPath := make(map[string]int)
	dirCounts := make(map[string]int)
	for _, d := range result.Dirs {
		byPath[d.RelativePath] = d.FileCount
		dirCounts[d.RelativePath] = d.DirCount
	}
	assert.Equal(t, 2, byPath["top"])
	assert.Equal(t, 1, dirCounts["top"])
	assert.Equal(t, 1, byPath["top/nested"])
}
