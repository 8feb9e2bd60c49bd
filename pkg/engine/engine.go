// Package engine exposes a single Session facade wiring the chunker,
// indexer, and on-disk file index together so a caller never has to
// construct those pieces itself.
package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/brightforge/codeintel/internal/chunker"
	"github.com/brightforge/codeintel/internal/fileindex"
	"github.com/brightforge/codeintel/internal/indexer"
	"github.com/brightforge/codeintel/pkg/types"
)

// Session owns one repository's file index and provides chunking and
// scan/diff operations against it. A Session is safe for concurrent use;
// Scan and Update never run at the same time: a call made while another
// is in progress returns ErrBusy instead of waiting.
type Session struct {
	ID string

	chunker *chunker.Chunker
	scanner *indexer.Scanner
	differ  *indexer.Differ
	index   *fileindex.FileIndex

	busy indexer.IndexLock
}

// New returns a Session configured with cfg. The zero Config is not
// usable; callers that don't need to override anything should pass
// indexer.DefaultConfig().
func New(cfg indexer.Config) *Session {
	return &Session{
		ID:      uuid.NewString(),
		chunker: chunker.New(),
		scanner: indexer.NewScanner(cfg),
		differ:  indexer.NewDiffer(cfg),
		index:   fileindex.New(),
	}
}

// ErrBusy is returned by Scan and Update when another scan is already
// in progress on this Session.
var ErrBusy = fmt.Errorf("engine: a scan is already in progress")

// Scan walks root, replaces the Session's held index with the result,
// and returns the raw ScanResult. progress may be nil.
func (s *Session) Scan(root string, progress indexer.ProgressFunc) (*types.ScanResult, error) {
	if !s.busy.TryAcquire() {
		return nil, ErrBusy
	}
	defer s.busy.Release()

	result, err := s.scanner.Scan(root, progress)
	if err != nil {
		return nil, err
	}

	s.index.Clear()
	for _, f := range result.Files {
		s.index.Add(f)
	}
	return result, nil
}

// Update rescans root and diffs the new file list against the files
// currently held in the Session's index, then replaces the held index
// with the new scan. Callers that want the diff without losing the
// prior index's content should call Snapshot before Update.
func (s *Session) Update(root string, progress indexer.ProgressFunc) (*types.DiffResult, error) {
	if !s.busy.TryAcquire() {
		return nil, ErrBusy
	}
	defer s.busy.Release()

	oldFiles := s.index.GetAll()

	result, err := s.scanner.Scan(root, progress)
	if err != nil {
		return nil, err
	}

	diff := s.differ.Diff(oldFiles, result.Files)

	s.index.Clear()
	for _, f := range result.Files {
		s.index.Add(f)
	}
	return diff, nil
}

// Snapshot returns every FileEntry currently held in the Session's
// index.
func (s *Session) Snapshot() []types.FileEntry {
	return s.index.GetAll()
}

// MerkleHash returns the root hash of the Session's held index.
func (s *Session) MerkleHash() uint64 {
	return s.index.MerkleHash()
}

// Save persists the Session's held index to path.
func (s *Session) Save(path string) error {
	return s.index.Save(path)
}

// Load replaces the Session's held index with the one persisted at
// path.
func (s *Session) Load(path string) error {
	return s.index.Load(path)
}

// ChunkFile chunks the file at path using cfg.
func (s *Session) ChunkFile(path string, cfg chunker.Config) (*types.ChunkResult, error) {
	return s.chunker.ChunkFile(path, cfg)
}

// ChunkSource chunks an in-memory buffer using cfg.
func (s *Session) ChunkSource(source []byte, cfg chunker.Config) *types.ChunkResult {
	return s.chunker.ChunkSource(source, cfg)
}
