package fileindex

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/brightforge/codeintel/internal/merkle"
	"github.com/brightforge/codeintel/pkg/types"
)

const (
	magic         uint32 = 0x4649444E // "FIDN"
	formatVersion uint32 = 1
)

// languageCodes assigns a stable byte ordinal to every Language, used
// only by the on-disk format; the ordering here is independent of
// declaration order elsewhere and must never be reassigned once shipped.
var languageCodes = []types.Language{
	types.LanguageUnknown,
	types.LanguageJavaScript,
	types.LanguageTypeScript,
	types.LanguagePython,
	types.LanguageRust,
	types.LanguageGo,
	types.LanguageJava,
	types.LanguageCPP,
	types.LanguageC,
	types.LanguageCSharp,
	types.LanguageRuby,
	types.LanguagePHP,
	types.LanguageSwift,
	types.LanguageKotlin,
}

func languageToCode(lang types.Language) uint8 {
	for i, l := range languageCodes {
		if l == lang {
			return uint8(i)
		}
	}
	return 0
}

func codeToLanguage(code uint8) types.Language {
	if int(code) < len(languageCodes) {
		return languageCodes[code]
	}
	return types.LanguageUnknown
}

// Save serializes the index to path: magic "FIDN" + version 1 +
// entry_count (u32) + for each entry (path_len u32, path bytes,
// content_hash u64, size u64, mtime u64, language u8, is_indexed u8) +
// merkle_blob_len (u32) + merkle blob, little-endian throughout.
func (idx *FileIndex) Save(path string) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, magic)
	_ = binary.Write(&buf, binary.LittleEndian, formatVersion)
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(idx.entries)))

	for _, e := range idx.entries {
		nameBytes := []byte(e.RelativePath)
		_ = binary.Write(&buf, binary.LittleEndian, uint32(len(nameBytes)))
		buf.Write(nameBytes)
		_ = binary.Write(&buf, binary.LittleEndian, e.ContentHash)
		_ = binary.Write(&buf, binary.LittleEndian, uint64(e.SizeBytes))
		_ = binary.Write(&buf, binary.LittleEndian, uint64(e.MtimeMs))
		_ = binary.Write(&buf, binary.LittleEndian, languageToCode(e.Language))
		isIndexed := uint8(0)
		if e.IsIndexed {
			isIndexed = 1
		}
		_ = binary.Write(&buf, binary.LittleEndian, isIndexed)
	}

	merkleBlob := idx.tree.Serialize()
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(merkleBlob)))
	buf.Write(merkleBlob)

	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Load replaces idx's contents with the index persisted at path.
// types.ErrCorrupt is returned on a bad magic, version mismatch, or
// truncated payload, and idx is left unmodified in that case.
func (idx *FileIndex) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	r := bytes.NewReader(data)

	var gotMagic, version uint32
	if err := binary.Read(r, binary.LittleEndian, &gotMagic); err != nil || gotMagic != magic {
		return fmt.Errorf("fileindex: bad magic: %w", types.ErrCorrupt)
	}
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil || version != formatVersion {
		return fmt.Errorf("fileindex: unsupported version: %w", types.ErrCorrupt)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return fmt.Errorf("fileindex: %w", types.ErrCorrupt)
	}

	entries := make(map[string]types.FileEntry, count)
	for i := uint32(0); i < count; i++ {
		e, err := readEntry(r)
		if err != nil {
			return err
		}
		entries[e.RelativePath] = e
	}

	var blobLen uint32
	if err := binary.Read(r, binary.LittleEndian, &blobLen); err != nil {
		return fmt.Errorf("fileindex: %w", types.ErrCorrupt)
	}
	blob := make([]byte, blobLen)
	if _, err := io.ReadFull(r, blob); err != nil {
		return fmt.Errorf("fileindex: %w", types.ErrCorrupt)
	}
	tree, err := merkle.Deserialize(blob)
	if err != nil {
		return err
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.entries = entries
	idx.tree = tree
	return nil
}

func readEntry(r *bytes.Reader) (types.FileEntry, error) {
	var pathLen uint32
	if err := binary.Read(r, binary.LittleEndian, &pathLen); err != nil {
		return types.FileEntry{}, fmt.Errorf("fileindex: %w", types.ErrCorrupt)
	}
	pathBuf := make([]byte, pathLen)
	if _, err := io.ReadFull(r, pathBuf); err != nil {
		return types.FileEntry{}, fmt.Errorf("fileindex: %w", types.ErrCorrupt)
	}

	var contentHash, size, mtime uint64
	if err := binary.Read(r, binary.LittleEndian, &contentHash); err != nil {
		return types.FileEntry{}, fmt.Errorf("fileindex: %w", types.ErrCorrupt)
	}
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return types.FileEntry{}, fmt.Errorf("fileindex: %w", types.ErrCorrupt)
	}
	if err := binary.Read(r, binary.LittleEndian, &mtime); err != nil {
		return types.FileEntry{}, fmt.Errorf("fileindex: %w", types.ErrCorrupt)
	}
	var langCode, isIndexed uint8
	if err := binary.Read(r, binary.LittleEndian, &langCode); err != nil {
		return types.FileEntry{}, fmt.Errorf("fileindex: %w", types.ErrCorrupt)
	}
	if err := binary.Read(r, binary.LittleEndian, &isIndexed); err != nil {
		return types.FileEntry{}, fmt.Errorf("fileindex: %w", types.ErrCorrupt)
	}

	return types.FileEntry{
		RelativePath: string(pathBuf),
		ContentHash:  contentHash,
		SizeBytes:    int64(size),
		MtimeMs:      int64(mtime),
		Language:     codeToLanguage(langCode),
		IsIndexed:    isIndexed != 0,
	}, nil
}
