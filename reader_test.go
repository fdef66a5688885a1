package vox

import (
	"errors"
	"reflect"
	"testing"
)

func TestChunkReader_Primitives(t *testing.T) {
	r := chunkReader{buf: []byte{'V', 'O', 'X', ' ', 0x96, 0x00, 0x00, 0x00}}
	s, err := r.fixedString(0, 4)
	if err != nil || s != "VOX " {
		t.Fatalf("fixedString: %q, %v", s, err)
	}
	v, err := r.int32At(4)
	if err != nil || v != 150 {
		t.Fatalf("int32At: %d, %v", v, err)
	}
	sub, err := r.slice(4, 4)
	if err != nil || sub.size() != 4 {
		t.Fatalf("slice: %v", err)
	}
	if &sub.buf[0] != &r.buf[4] {
		t.Fatal("slice must not copy")
	}
}

func TestChunkReader_Bounds(t *testing.T) {
	r := chunkReader{buf: make([]byte, 8)}
	if _, err := r.fixedString(6, 4); !errors.Is(err, ErrTruncated) {
		t.Fatalf("fixedString overrun: %v", err)
	}
	if _, err := r.int32At(5); !errors.Is(err, ErrTruncated) {
		t.Fatalf("int32At overrun: %v", err)
	}
	if _, err := r.slice(0, 9); !errors.Is(err, ErrTruncated) {
		t.Fatalf("slice overrun: %v", err)
	}
	if _, err := r.slice(-1, 2); !errors.Is(err, ErrTruncated) {
		t.Fatalf("negative offset: %v", err)
	}
	if _, err := r.int32At(8); !errors.Is(err, ErrTruncated) {
		t.Fatalf("read at end: %v", err)
	}
}

func dictBytes(pairs [][2]string) []byte {
	b := appendInt32(nil, int32(len(pairs)))
	for _, p := range pairs {
		b = appendInt32(b, int32(len(p[0])))
		b = append(b, p[0]...)
		b = appendInt32(b, int32(len(p[1])))
		b = append(b, p[1]...)
	}
	return b
}

func TestChunkReader_Dict(t *testing.T) {
	raw := dictBytes([][2]string{{"_t", "1 0 0"}, {"_name", "root"}})
	trailer := append(append([]byte{}, raw...), 0xCA, 0xFE)
	m, n, err := chunkReader{buf: trailer}.dict(0)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(raw) {
		t.Fatalf("consumed %d bytes, want %d", n, len(raw))
	}
	want := map[string]string{"_t": "1 0 0", "_name": "root"}
	if !reflect.DeepEqual(m, want) {
		t.Fatalf("dict mismatch: %#v", m)
	}
}

func TestChunkReader_DictEmpty(t *testing.T) {
	m, n, err := chunkReader{buf: appendInt32(nil, 0)}.dict(0)
	if err != nil || n != 4 || len(m) != 0 {
		t.Fatalf("empty dict: %v %d %v", m, n, err)
	}
}

func TestChunkReader_DictErrors(t *testing.T) {
	if _, _, err := (chunkReader{buf: appendInt32(nil, -1)}).dict(0); !errors.Is(err, ErrInvalidChunk) {
		t.Fatalf("negative count: %v", err)
	}
	truncated := dictBytes([][2]string{{"_t", "1 0 0"}})
	if _, _, err := (chunkReader{buf: truncated[:len(truncated)-3]}).dict(0); !errors.Is(err, ErrTruncated) {
		t.Fatalf("truncated value: %v", err)
	}
	negLen := appendInt32(nil, 1)
	negLen = appendInt32(negLen, -5)
	if _, _, err := (chunkReader{buf: negLen}).dict(0); !errors.Is(err, ErrInvalidChunk) {
		t.Fatalf("negative key length: %v", err)
	}
}
