package hasher

import (
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/edsrzf/mmap-go"
)

const streamBufSize = 64 * 1024

// HashBytes returns the xxHash64 digest of data, seed 0. Unlike
// HashFile, the empty slice is not special-cased: it returns the real
// xxHash64 value for zero bytes.
func HashBytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// HashFile returns the xxHash64 digest of the file at path. It
// memory-maps the file and hashes the mapped view in one call; if the
// file can't be mapped, it falls back to a streaming read with a 64 KiB
// buffer. An empty file returns 0 by convention.
func HashFile(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	if info.Size() == 0 {
		return 0, nil
	}

	if m, err := mmap.Map(f, mmap.RDONLY, 0); err == nil {
		defer func() { _ = m.Unmap() }()
		return xxhash.Sum64(m), nil
	}

	return streamHash(f)
}

func streamHash(r io.Reader) (uint64, error) {
	h := xxhash.New()
	buf := make([]byte, streamBufSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			_, _ = h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
	}
	return h.Sum64(), nil
}
