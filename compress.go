package vox

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Frame magics of the supported compression wrappers. Brotli streams carry
// no magic and are only selected by file extension in DecodeFile.
var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// DecodeFile reads and parses the vox file at path.
//
// Compressed payloads are unwrapped first: ".gz", ".zst", ".lz4", and ".br"
// extensions select their codec directly, and files with any other name are
// sniffed for a gzip, Zstandard, or LZ4 frame magic before being treated as
// a raw vox buffer.
func DecodeFile(path string, opts ...ReadOption) (*Document, error) {
	cfg := newReadConfig(opts)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := readAllLimited(f, cfg.limits.MaxFileSize)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(path, ".gz"):
		data, err = gzipDecompress(data, cfg.limits.MaxDecompressedSize)
	case strings.HasSuffix(path, ".zst"):
		data, err = zstdDecompress(data, cfg.limits.MaxDecompressedSize)
	case strings.HasSuffix(path, ".lz4"):
		data, err = lz4Decompress(data, cfg.limits.MaxDecompressedSize)
	case strings.HasSuffix(path, ".br"):
		data, err = brotliDecompress(data, cfg.limits.MaxDecompressedSize)
	default:
		data, err = unwrapCompressed(data, cfg.limits)
	}
	if err != nil {
		return nil, err
	}
	return decodeBytes(data, cfg)
}

// unwrapCompressed decompresses data when it starts with a recognized
// compression frame magic and returns it untouched otherwise.
func unwrapCompressed(data []byte, limits Limits) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		return gzipDecompress(data, limits.MaxDecompressedSize)
	case bytes.HasPrefix(data, zstdMagic):
		return zstdDecompress(data, limits.MaxDecompressedSize)
	case bytes.HasPrefix(data, lz4Magic):
		return lz4Decompress(data, limits.MaxDecompressedSize)
	default:
		return data, nil
	}
}

// readBounded drains r, rejecting output beyond max bytes so a hostile
// stream cannot expand into a decompression bomb.
func readBounded(r io.Reader, max uint64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, int64(max)+1))
	if err != nil {
		return nil, err
	}
	if uint64(len(b)) > max {
		return nil, fmt.Errorf("%w: decompressed payload exceeds %d bytes", ErrLimitExceeded, max)
	}
	return b, nil
}

func gzipDecompress(in []byte, max uint64) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(in))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return readBounded(zr, max)
}

func zstdDecompress(in []byte, max uint64) ([]byte, error) {
	zr, err := zstd.NewReader(bytes.NewReader(in))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return readBounded(zr, max)
}

func lz4Decompress(in []byte, max uint64) ([]byte, error) {
	return readBounded(lz4.NewReader(bytes.NewReader(in)), max)
}

func brotliDecompress(in []byte, max uint64) ([]byte, error) {
	return readBounded(brotli.NewReader(bytes.NewReader(in)), max)
}
