package vox

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Encode writes doc to w as an uncompressed vox file.
//
// The document is validated before writing: every model must have positive
// dimensions no larger than 256 per axis (voxel coordinates are stored as
// single bytes) and every voxel must carry a color index in 1..255.
//
// The chunk layout mirrors what MagicaVoxel emits: a MAIN wrapper holding an
// optional PACK chunk, one SIZE/XYZI pair per model, and an RGBA palette
// chunk. Voxel positions are written with the same Y/Z swap Decode applies,
// so Encode followed by Decode reproduces the document exactly.
//
// Use WriteOption functions to customize behavior:
//   - WithVersion(v): override the envelope version (default 150)
//   - WithPackChunk(v): force the PACK chunk on or off
//   - WithWriteLimits(l): set custom limits
func Encode(w io.Writer, doc *Document, opts ...WriteOption) error {
	cfg := writeConfig{limits: defaultLimits(), version: DefaultVersion}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()
	if err := validateDocument(doc, cfg.limits); err != nil {
		return err
	}

	writePack := len(doc.Models) > 1
	if cfg.packSet {
		writePack = cfg.pack
	}

	var children []byte
	if writePack {
		children = appendChunk(children, TagPack, appendInt32(nil, int32(len(doc.Models))))
	}
	for i := range doc.Models {
		m := &doc.Models[i]
		size := appendInt32(appendInt32(appendInt32(nil, m.SizeX), m.SizeY), m.SizeZ)
		children = appendChunk(children, TagSize, size)

		xyzi := appendInt32(make([]byte, 0, 4+len(m.Voxels)*4), int32(len(m.Voxels)))
		for _, v := range m.Voxels {
			// Swap back into the file's native axis order.
			xyzi = append(xyzi, v.X, v.Z, v.Y, v.ColorIndex)
		}
		children = appendChunk(children, TagXYZI, xyzi)
	}
	pal := make([]byte, 0, paletteBytes)
	// Palette index i lands in stored entry i-1; the trailing entry is the
	// format's off-by-one padding.
	for i := 1; i < 256; i++ {
		c := doc.Palette[i]
		pal = append(pal, c.R, c.G, c.B, c.A)
	}
	pal = append(pal, 0, 0, 0, 0)
	children = appendChunk(children, TagRGBA, pal)

	out := make([]byte, 0, envelopeSize+chunkHeaderSize+len(children))
	out = append(out, Magic[:]...)
	out = appendInt32(out, cfg.version)
	out = appendChunkHeader(out, TagMain, 0, int32(len(children)))
	out = append(out, children...)
	_, err := w.Write(out)
	return err
}

func appendChunk(b []byte, tag string, content []byte) []byte {
	b = appendChunkHeader(b, tag, int32(len(content)), 0)
	return append(b, content...)
}

func appendChunkHeader(b []byte, tag string, contentLen, childLen int32) []byte {
	if len(tag) != 4 {
		panic(fmt.Sprintf("vox: chunk tag %q is not 4 bytes", tag))
	}
	b = append(b, tag...)
	b = appendInt32(b, contentLen)
	return appendInt32(b, childLen)
}

func appendInt32(b []byte, v int32) []byte {
	return binary.LittleEndian.AppendUint32(b, uint32(v))
}
