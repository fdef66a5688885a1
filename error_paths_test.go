package vox

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecode_MaxChunksLimit(t *testing.T) {
	var ch []byte
	for i := 0; i < 5; i++ {
		ch = append(ch, appendChunk(nil, "ZZZZ", nil)...)
	}
	b := buildFile(t, DefaultVersion, ch)
	if _, err := DecodeBytes(b); err != nil {
		t.Fatalf("within default limits: %v", err)
	}
	_, err := DecodeBytes(b, WithReadLimits(Limits{MaxChunks: 3}))
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
}

func TestDecode_MaxDepthLimit(t *testing.T) {
	// Nest unknown chunks five levels deep.
	var inner []byte
	for i := 0; i < 5; i++ {
		wrapped := appendChunkHeader(nil, "NEST", 0, int32(len(inner)))
		inner = append(wrapped, inner...)
	}
	b := buildFile(t, DefaultVersion, inner)
	if _, err := DecodeBytes(b); err != nil {
		t.Fatalf("within default limits: %v", err)
	}
	_, err := DecodeBytes(b, WithReadLimits(Limits{MaxDepth: 2}))
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
}

func TestDecode_MaxModelsLimit(t *testing.T) {
	var ch []byte
	for i := 0; i < 3; i++ {
		ch = append(ch, sizeChunk(1, 1, 1)...)
		ch = append(ch, xyziChunk([4]byte{0, 0, 0, 1})...)
	}
	_, err := DecodeBytes(buildFile(t, DefaultVersion, ch), WithReadLimits(Limits{MaxModels: 2}))
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
}

func TestDecode_MaxVoxelsLimit(t *testing.T) {
	var ch []byte
	ch = append(ch, sizeChunk(2, 2, 2)...)
	ch = append(ch, xyziChunk(
		[4]byte{0, 0, 0, 1},
		[4]byte{1, 0, 0, 1},
		[4]byte{0, 1, 0, 1},
	)...)
	_, err := DecodeBytes(buildFile(t, DefaultVersion, ch), WithReadLimits(Limits{MaxVoxelsPerModel: 2}))
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
}

func TestDecode_MaxFileSizeLimit(t *testing.T) {
	b := minimalFile(t)
	_, err := Decode(bytes.NewReader(b), WithReadLimits(Limits{MaxFileSize: 10}))
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
}

func TestLimits_ZeroValueMeansDefault(t *testing.T) {
	l := Limits{MaxChunks: 7}.withDefaults()
	d := defaultLimits()
	if l.MaxChunks != 7 {
		t.Fatalf("explicit value overridden: %d", l.MaxChunks)
	}
	if l.MaxFileSize != d.MaxFileSize || l.MaxDepth != d.MaxDepth || l.MaxModels != d.MaxModels {
		t.Fatal("zero fields should take defaults")
	}
	if l.MaxDecompressedSize != d.MaxDecompressedSize || l.MaxVoxelsPerModel != d.MaxVoxelsPerModel {
		t.Fatal("zero fields should take defaults")
	}
}
