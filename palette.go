package vox

import "image/color"

// Color is one palette entry, stored exactly as the 8-bit channel bytes
// appear in an RGBA chunk.
type Color struct {
	R, G, B, A uint8
}

// Normalized returns the channels mapped onto the unit interval by the exact
// 8-bit conversion x/255. This is the conversion consumers must use when
// feeding palette colors to float pipelines; treating the raw bytes as float
// magnitudes is wrong.
func (c Color) Normalized() (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// DefaultPalette returns the built-in 256-entry palette used when a file
// carries no RGBA chunk. Unlike an RGBA chunk payload, the default table is
// addressed directly: palette index i is entry i.
func DefaultPalette() ColorTable {
	return defaultPalette
}

var defaultPalette = buildDefaultPalette()

// buildDefaultPalette reproduces MagicaVoxel's published default table from
// its regular structure: entry 0 is the reserved empty slot, entries 1..215
// are the 6x6x6 color cube over {255,204,153,102,51,0} with the all-black
// combination dropped, followed by 10-step red, green, blue, and gray ramps.
func buildDefaultPalette() ColorTable {
	var t ColorTable
	cube := [6]uint8{0xff, 0xcc, 0x99, 0x66, 0x33, 0x00}
	ramp := [10]uint8{0xee, 0xdd, 0xbb, 0xaa, 0x88, 0x77, 0x55, 0x44, 0x22, 0x11}

	i := 1
	for _, r := range cube {
		for _, g := range cube {
			for _, b := range cube {
				if r == 0 && g == 0 && b == 0 {
					continue
				}
				t[i] = Color{R: r, G: g, B: b, A: 0xff}
				i++
			}
		}
	}
	for _, v := range ramp {
		t[i] = Color{R: v, A: 0xff}
		i++
	}
	for _, v := range ramp {
		t[i] = Color{G: v, A: 0xff}
		i++
	}
	for _, v := range ramp {
		t[i] = Color{B: v, A: 0xff}
		i++
	}
	for _, v := range ramp {
		t[i] = Color{R: v, G: v, B: v, A: 0xff}
		i++
	}
	return t
}
