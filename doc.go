// Package vox implements a decoder and encoder for the MagicaVoxel .vox
// voxel container format.
//
// A .vox file is a tagged, length-prefixed chunk tree holding one or more
// voxel models, a shared 256-entry color palette, and optional scene-graph
// and material metadata.
//
// # File Format Overview
//
// A file consists of (all integers little-endian):
//   - The 4-byte ASCII magic "VOX " and a 4-byte version integer
//   - One root chunk, normally MAIN, wrapping everything else as children
//
// Every chunk is a 12-byte header (4-byte ASCII tag, int32 content length,
// int32 children length) followed by its content bytes and then its children
// bytes, which are zero or more further chunks packed back to back. Models
// arrive as SIZE/XYZI chunk pairs; an RGBA chunk overrides the built-in
// default palette. Unrecognized tags are skipped so future chunk kinds do
// not break old readers.
//
// # Basic Usage
//
// To read a file:
//
//	doc, err := vox.DecodeFile("model.vox")
//	for _, m := range doc.Models {
//		for _, v := range m.Voxels {
//			c := doc.Palette[v.ColorIndex]
//			_ = c
//		}
//	}
//
// To write one:
//
//	f, _ := os.Create("out.vox")
//	defer f.Close()
//	err := vox.Encode(f, doc)
//
// Voxel coordinates are exposed in engine order: the file's Y and Z axes are
// swapped during decoding (and swapped back by Encode), so XYZI record
// (x, y, z) surfaces as Voxel{X: x, Y: z, Z: y}.
//
// # Security Considerations
//
// The package includes built-in protection against oversized allocations,
// adversarial chunk trees, and decompression bombs via configurable
// [Limits]. Decoding is a pure function over an in-memory buffer; on any
// fatal error no partial document is returned.
package vox
