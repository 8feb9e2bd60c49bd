package indexer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/brightforge/codeintel/internal/glob"
	"github.com/brightforge/codeintel/internal/hasher"
	"github.com/brightforge/codeintel/internal/merkle"
	"github.com/brightforge/codeintel/pkg/types"
)

const progressEvery = 100

// ProgressFunc is invoked every progressEvery files and once more at
// completion.
type ProgressFunc func(processed, total int, currentPath string)

// Scanner walks a repository tree and builds a ScanResult.
type Scanner struct {
	cfg Config
}

// NewScanner returns a Scanner configured with cfg.
func NewScanner(cfg Config) *Scanner {
	return &Scanner{cfg: cfg.normalized()}
}

// Scan walks root, applying the configured include/exclude globs and
// max file size, hashes the surviving files, and rebuilds a Merkle tree
// from the resulting (path, hash) pairs.
func (s *Scanner) Scan(root string, progress ProgressFunc) (*types.ScanResult, error) {
	start := time.Now()

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("Invalid directory: %s: %w", root, types.ErrInvalidInput)
	}

	includes, err := glob.CompileAll(s.cfg.IncludeGlobs)
	if err != nil {
		return nil, err
	}
	excludes, err := glob.CompileAll(s.cfg.ExcludeGlobs)
	if err != nil {
		return nil, err
	}

	filePaths, dirPaths, errs, skipped := s.walk(root, excludes, includes)

	sort.Strings(filePaths)
	sort.Strings(dirPaths)

	var hashes []uint64
	if s.cfg.ComputeContentHash {
		absPaths := make([]string, len(filePaths))
		for i, rel := range filePaths {
			absPaths[i] = filepath.Join(root, rel)
		}
		hashes = hasher.ParallelHash(absPaths, s.cfg.ParallelWorkers)
	} else {
		hashes = make([]uint64, len(filePaths))
	}

	tree := merkle.New()
	files := make([]types.FileEntry, 0, len(filePaths))
	for i, rel := range filePaths {
		absPath := filepath.Join(root, rel)
		st, statErr := os.Stat(absPath)
		var size int64
		var mtimeMs int64
		if statErr == nil {
			size = st.Size()
			mtimeMs = st.ModTime().UnixMilli()
		} else {
			errs = append(errs, fmt.Sprintf("%s: %v", rel, statErr))
		}

		hash := hashes[i]
		tree.AddFile(rel, hash)

		files = append(files, types.FileEntry{
			RelativePath: rel,
			ContentHash:  hash,
			SizeBytes:    size,
			MtimeMs:      mtimeMs,
			Language:     types.DetectLanguage(rel),
			IsIndexed:    false,
		})

		if progress != nil && (i+1)%progressEvery == 0 {
			progress(i+1, len(filePaths), rel)
		}
	}
	if progress != nil {
		progress(len(filePaths), len(filePaths), "")
	}

	dirs := buildDirEntries(tree, dirPaths, filePaths)

	return &types.ScanResult{
		ScanID:      uuid.NewString(),
		RootPath:    root,
		Files:       files,
		Dirs:        dirs,
		RootHash:    tree.RootHash(),
		TotalFiles:  len(files),
		TotalDirs:   len(dirs),
		SkippedSize: skipped,
		Duration:    time.Since(start),
		Errors:      errs,
	}, nil
}

// walk recursively visits root, sorting entries into filePaths and
// dirPaths and applying excludes/includes/MaxFileSize along the way.
//
// filepath.Walk is deliberately not used here: it Lstats every entry,
// so a symlinked directory never reports IsDir() true and recursion
// into it never happens regardless of FollowSymlinks. walk resolves
// each symlink itself, recurses into the ones that point at a
// directory when FollowSymlinks is set, and tracks resolved real paths
// in visited to avoid following a symlink cycle into an infinite loop.
func (s *Scanner) walk(root string, excludes, includes []*glob.Pattern) (filePaths, dirPaths, errs []string, skipped int) {
	visited := map[string]bool{}
	if real, err := filepath.EvalSymlinks(root); err == nil {
		visited[real] = true
	}

	var walkDir func(absDir, relDir string)
	walkDir = func(absDir, relDir string) {
		entries, err := os.ReadDir(absDir)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", absDir, err))
			return
		}

		for _, entry := range entries {
			absPath := filepath.Join(absDir, entry.Name())
			rel := entry.Name()
			if relDir != "" {
				rel = relDir + "/" + rel
			}

			info, err := entry.Info()
			if err != nil {
				errs = append(errs, fmt.Sprintf("%s: %v", absPath, err))
				continue
			}

			isDir := info.IsDir()
			recurseAt := absPath

			if info.Mode()&os.ModeSymlink != 0 {
				if !s.cfg.FollowSymlinks {
					continue
				}
				target, err := filepath.EvalSymlinks(absPath)
				if err != nil {
					errs = append(errs, fmt.Sprintf("%s: %v", absPath, err))
					continue
				}
				targetInfo, err := os.Stat(target)
				if err != nil {
					errs = append(errs, fmt.Sprintf("%s: %v", absPath, err))
					continue
				}
				if targetInfo.IsDir() {
					if visited[target] {
						continue
					}
					visited[target] = true
					isDir = true
					recurseAt = target
				} else {
					info = targetInfo
					isDir = false
				}
			}

			if glob.MatchAny(excludes, rel) {
				continue
			}

			if isDir {
				dirPaths = append(dirPaths, rel)
				walkDir(recurseAt, rel)
				continue
			}

			if len(includes) > 0 && !glob.MatchAny(includes, rel) {
				continue
			}
			if info.Size() > s.cfg.MaxFileSize {
				skipped++
				continue
			}
			filePaths = append(filePaths, rel)
		}
	}

	walkDir(root, "")
	return filePaths, dirPaths, errs, skipped
}

// buildDirEntries computes each scanned directory's subtree hash and
// file count from tree.
func buildDirEntries(tree *merkle.Tree, dirPaths, filePaths []string) []types.DirEntry {
	fileCount := make(map[string]int)
	for _, f := range filePaths {
		dir := parentDir(f)
		for {
			fileCount[dir]++
			if dir == "" {
				break
			}
			dir = parentDir(dir)
		}
	}

	dirCount := make(map[string]int)
	for _, d := range dirPaths {
		parent := parentDir(d)
		dirCount[parent]++
	}

	out := make([]types.DirEntry, 0, len(dirPaths))
	for _, d := range dirPaths {
		out = append(out, types.DirEntry{
			RelativePath: d,
			MerkleHash:   tree.ComputeHash(d),
			FileCount:    fileCount[d],
			DirCount:     dirCount[d],
		})
	}
	return out
}

func parentDir(path string) string {
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return ""
	}
	return path[:idx]
}
