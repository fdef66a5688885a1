package vox

import (
	"encoding/binary"
	"fmt"
)

// chunkReader is a non-owning, bounds-checked view into an immutable byte
// buffer. Every accessor is random-access so sibling chunk decoders never
// share cursor state; each decoder receives a view sized exactly to its
// declared length.
type chunkReader struct {
	buf []byte
}

func (r chunkReader) size() int { return len(r.buf) }

// fixedString reads n ASCII bytes at off; used for the file magic and the
// 4-byte chunk tags.
func (r chunkReader) fixedString(off, n int) (string, error) {
	if err := r.check(off, n); err != nil {
		return "", err
	}
	return string(r.buf[off : off+n]), nil
}

// int32At reads a little-endian signed 32-bit integer at off.
func (r chunkReader) int32At(off int) (int32, error) {
	if err := r.check(off, 4); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(r.buf[off : off+4])), nil
}

// slice returns a sub-view of n bytes at off without copying.
func (r chunkReader) slice(off, n int) (chunkReader, error) {
	if err := r.check(off, n); err != nil {
		return chunkReader{}, err
	}
	return chunkReader{buf: r.buf[off : off+n]}, nil
}

func (r chunkReader) check(off, n int) error {
	if off < 0 || n < 0 || off+n > len(r.buf) || off+n < 0 {
		return fmt.Errorf("%w: read [%d:%d] of %d bytes", ErrTruncated, off, off+n, len(r.buf))
	}
	return nil
}

// dict decodes a length-prefixed string dictionary at off: an int32 pair
// count followed by that many (keyLen, key, valLen, val) records. It returns
// the mapping and the number of bytes consumed, so callers can keep a cursor
// aligned across a dictionary they do not otherwise interpret.
func (r chunkReader) dict(off int) (map[string]string, int, error) {
	n, err := r.int32At(off)
	if err != nil {
		return nil, 0, err
	}
	if n < 0 {
		return nil, 0, fmt.Errorf("%w: negative dictionary pair count %d", ErrInvalidChunk, n)
	}
	pos := off + 4
	m := map[string]string{}
	for i := int32(0); i < n; i++ {
		key, next, err := r.prefixedString(pos)
		if err != nil {
			return nil, 0, err
		}
		val, after, err := r.prefixedString(next)
		if err != nil {
			return nil, 0, err
		}
		m[key] = val
		pos = after
	}
	return m, pos - off, nil
}

// prefixedString reads an int32 byte count followed by that many bytes.
func (r chunkReader) prefixedString(off int) (string, int, error) {
	n, err := r.int32At(off)
	if err != nil {
		return "", 0, err
	}
	if n < 0 {
		return "", 0, fmt.Errorf("%w: negative string length %d", ErrInvalidChunk, n)
	}
	s, err := r.fixedString(off+4, int(n))
	if err != nil {
		return "", 0, err
	}
	return s, off + 4 + int(n), nil
}
