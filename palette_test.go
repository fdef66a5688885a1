package vox

import (
	"image/color"
	"testing"
)

// Spot checks against MagicaVoxel's published default table.
func TestDefaultPalette_KnownEntries(t *testing.T) {
	p := DefaultPalette()
	cases := []struct {
		index int
		want  Color
	}{
		{0, Color{}},                                     // reserved empty slot
		{1, Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},   // white
		{2, Color{R: 0xff, G: 0xff, B: 0xcc, A: 0xff}},   // blue varies fastest
		{7, Color{R: 0xff, G: 0xcc, B: 0xff, A: 0xff}},   // then green
		{37, Color{R: 0xcc, G: 0xff, B: 0xff, A: 0xff}},  // then red
		{215, Color{R: 0x00, G: 0x00, B: 0x33, A: 0xff}}, // last cube entry, black dropped
		{216, Color{R: 0xee, G: 0x00, B: 0x00, A: 0xff}}, // red ramp
		{226, Color{R: 0x00, G: 0xee, B: 0x00, A: 0xff}}, // green ramp
		{236, Color{R: 0x00, G: 0x00, B: 0xee, A: 0xff}}, // blue ramp
		{246, Color{R: 0xee, G: 0xee, B: 0xee, A: 0xff}}, // gray ramp
		{255, Color{R: 0x11, G: 0x11, B: 0x11, A: 0xff}}, // final entry
	}
	for _, tc := range cases {
		if got := p[tc.index]; got != tc.want {
			t.Errorf("index %d: got %#v want %#v", tc.index, got, tc.want)
		}
	}
}

func TestDefaultPalette_AllOpaqueExceptZero(t *testing.T) {
	p := DefaultPalette()
	for i := 1; i < 256; i++ {
		if p[i].A != 0xff {
			t.Fatalf("index %d alpha %#x", i, p[i].A)
		}
	}
}

func TestColor_Normalized(t *testing.T) {
	r, g, b, a := Color{R: 255, G: 51, B: 0, A: 255}.Normalized()
	if r != 1 || g != 51.0/255 || b != 0 || a != 1 {
		t.Fatalf("normalized: %v %v %v %v", r, g, b, a)
	}
}

func TestColor_ImplementsColorInterface(t *testing.T) {
	var c color.Color = Color{R: 0x10, G: 0x20, B: 0x30, A: 0xff}
	r, g, b, a := c.RGBA()
	wr, wg, wb, wa := color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}.RGBA()
	if r != wr || g != wg || b != wb || a != wa {
		t.Fatalf("RGBA mismatch: %v %v %v %v", r, g, b, a)
	}
}
