package vox

import (
	"fmt"
	"io"
)

// Decode reads a vox document from r.
//
// The reader is drained into memory first (the format's children-length
// fields make single-buffer random access the natural model), then parsed:
//  1. Validates the 4-byte "VOX " magic and reads the version integer
//  2. Walks the chunk tree depth-first, bounded by each declared byte length
//  3. Pairs SIZE/XYZI chunks into Models and applies any RGBA palette
//
// If the payload is wrapped in a gzip, Zstandard, or LZ4 frame it is
// transparently decompressed before parsing, bounded by
// Limits.MaxDecompressedSize. Use DecodeBytes to parse raw bytes without the
// compression sniff.
//
// Decode returns ErrBadMagic if the buffer is not a vox file, ErrTruncated
// if any read would exceed the buffer or a declared chunk length,
// ErrSizeMismatch if a declared element count is inconsistent with its
// content, ErrInvalidChunk for structural violations, and ErrLimitExceeded
// if any limit is exceeded. No partial document is ever returned: a half
// built document with unmatched SIZE/XYZI pairs would hand invalid voxel
// data to a consumer.
func Decode(r io.Reader, opts ...ReadOption) (*Document, error) {
	cfg := newReadConfig(opts)
	data, err := readAllLimited(r, cfg.limits.MaxFileSize)
	if err != nil {
		return nil, err
	}
	data, err = unwrapCompressed(data, cfg.limits)
	if err != nil {
		return nil, err
	}
	return decodeBytes(data, cfg)
}

// DecodeBytes parses a complete, uncompressed vox file held in memory.
func DecodeBytes(data []byte, opts ...ReadOption) (*Document, error) {
	return decodeBytes(data, newReadConfig(opts))
}

func newReadConfig(opts []ReadOption) readConfig {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()
	return cfg
}

func readAllLimited(r io.Reader, max int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > max {
		return nil, fmt.Errorf("%w: input exceeds %d bytes", ErrLimitExceeded, max)
	}
	return data, nil
}

// decoder accumulates the one in-progress Document across the tree walk.
// It is exclusively owned by a single decode call.
type decoder struct {
	limits Limits
	doc    *Document

	chunks     int
	nextFill   int // index of the model the next XYZI populates
	packCount  int32
	sawPack    bool
	sawPalette bool
}

func decodeBytes(data []byte, cfg readConfig) (*Document, error) {
	r := chunkReader{buf: data}
	if r.size() < len(Magic) {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncated, r.size())
	}
	magic, err := r.fixedString(0, len(Magic))
	if err != nil {
		return nil, err
	}
	if magic != string(Magic[:]) {
		return nil, fmt.Errorf("%w: %q", ErrBadMagic, magic)
	}
	if r.size() < minFileSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrTruncated, r.size(), minFileSize)
	}
	version, err := r.int32At(len(Magic))
	if err != nil {
		return nil, err
	}
	// Version is retained for diagnostics only; unknown versions are
	// accepted so future writers do not break old readers.
	d := &decoder{
		limits: cfg.limits,
		doc:    &Document{Version: version, Palette: DefaultPalette()},
	}
	if err := d.walk(r, envelopeSize, r.size(), 0); err != nil {
		return nil, err
	}
	if d.sawPack && d.packCount >= 0 && int(d.packCount) != len(d.doc.Models) {
		d.tracef("warning: PACK declared %d models, decoded %d", d.packCount, len(d.doc.Models))
	}
	if d.nextFill < len(d.doc.Models) {
		d.tracef("warning: %d model(s) have no XYZI chunk", len(d.doc.Models)-d.nextFill)
	}
	return d.doc, nil
}

// walk decodes the packed run of sibling chunks in r's [off, end) region.
// Each sibling is a 12-byte header, contentLen content bytes, then childLen
// bytes that are themselves a packed sibling run, walked one level deeper.
func (d *decoder) walk(r chunkReader, off, end, depth int) error {
	if depth > d.limits.MaxDepth {
		return fmt.Errorf("%w: chunk nesting deeper than %d", ErrLimitExceeded, d.limits.MaxDepth)
	}
	for end-off >= chunkHeaderSize {
		tag, err := r.fixedString(off, 4)
		if err != nil {
			return err
		}
		contentLen, err := r.int32At(off + 4)
		if err != nil {
			return err
		}
		childLen, err := r.int32At(off + 8)
		if err != nil {
			return err
		}
		if contentLen < 0 || childLen < 0 {
			return fmt.Errorf("%w: %s declares negative lengths", ErrInvalidChunk, tag)
		}
		d.chunks++
		if d.chunks > d.limits.MaxChunks {
			return fmt.Errorf("%w: more than %d chunks", ErrLimitExceeded, d.limits.MaxChunks)
		}
		next := off + chunkHeaderSize + int(contentLen) + int(childLen)
		if next > end {
			return fmt.Errorf("%w: %s chunk (content=%d children=%d) extends past its region",
				ErrTruncated, tag, contentLen, childLen)
		}
		d.tracef("%s: content=%d children=%d", tag, contentLen, childLen)
		content, err := r.slice(off+chunkHeaderSize, int(contentLen))
		if err != nil {
			return err
		}
		if err := d.decodeContent(tag, content); err != nil {
			return err
		}
		if err := d.walk(r, off+chunkHeaderSize+int(contentLen), next, depth+1); err != nil {
			return err
		}
		off = next
	}
	if off != end {
		d.tracef("warning: %d trailing byte(s) in children region", end-off)
	}
	return nil
}

func (d *decoder) decodeContent(tag string, content chunkReader) error {
	switch tag {
	case TagMain:
		// Root wrapper; everything of interest lives in its children.
		return nil
	case TagPack:
		return d.decodePack(content)
	case TagSize:
		return d.decodeSize(content)
	case TagXYZI:
		return d.decodeXYZI(content)
	case TagRGBA:
		return d.decodeRGBA(content)
	case TagMaterial:
		// Material id, then an attribute dictionary. Attributes are not
		// interpreted, but decoding proves the record is well formed.
		d.traceDict(tag, content, 4)
		return nil
	case TagRenderObj, TagCamera:
		d.traceDict(tag, content, 0)
		return nil
	case TagTransform, TagGroup, TagShape, TagLayer, TagNote, TagIndexMap:
		// Recognized metadata, content skipped unread.
		return nil
	default:
		// Forward compatibility: unknown tags must never abort the parse.
		d.tracef("warning: unrecognized chunk %q skipped", tag)
		return nil
	}
}

func (d *decoder) decodePack(content chunkReader) error {
	n, err := content.int32At(0)
	if err != nil {
		return err
	}
	d.sawPack = true
	d.packCount = n
	// Advisory sizing hint; population is driven by SIZE/XYZI pairs.
	if n > 0 && int(n) <= d.limits.MaxModels && d.doc.Models == nil {
		d.doc.Models = make([]Model, 0, n)
	}
	return nil
}

func (d *decoder) decodeSize(content chunkReader) error {
	sx, err := content.int32At(0)
	if err != nil {
		return err
	}
	sy, err := content.int32At(4)
	if err != nil {
		return err
	}
	sz, err := content.int32At(8)
	if err != nil {
		return err
	}
	if sx <= 0 || sy <= 0 || sz <= 0 {
		return fmt.Errorf("%w: SIZE %dx%dx%d", ErrInvalidChunk, sx, sy, sz)
	}
	if len(d.doc.Models) >= d.limits.MaxModels {
		return fmt.Errorf("%w: more than %d models", ErrLimitExceeded, d.limits.MaxModels)
	}
	d.doc.Models = append(d.doc.Models, Model{SizeX: sx, SizeY: sy, SizeZ: sz})
	return nil
}

func (d *decoder) decodeXYZI(content chunkReader) error {
	n, err := content.int32At(0)
	if err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("%w: XYZI voxel count %d", ErrSizeMismatch, n)
	}
	if int64(n)*4 > int64(content.size()-4) {
		return fmt.Errorf("%w: XYZI declares %d voxels, content holds %d bytes",
			ErrSizeMismatch, n, content.size()-4)
	}
	if int(n) > d.limits.MaxVoxelsPerModel {
		return fmt.Errorf("%w: more than %d voxels in one model", ErrLimitExceeded, d.limits.MaxVoxelsPerModel)
	}
	if d.nextFill >= len(d.doc.Models) {
		return fmt.Errorf("%w: XYZI without a preceding SIZE", ErrInvalidChunk)
	}
	model := &d.doc.Models[d.nextFill]
	d.nextFill++
	records, err := content.slice(4, int(n)*4)
	if err != nil {
		return err
	}
	model.Voxels = make([]Voxel, 0, n)
	for i := 0; i < int(n); i++ {
		rec := records.buf[i*4 : i*4+4]
		if rec[3] == 0 {
			return fmt.Errorf("%w: voxel %d uses reserved color index 0", ErrInvalidChunk, i)
		}
		// The file's Y and Z axes swap into the engine convention.
		model.Voxels = append(model.Voxels, Voxel{
			X:          rec[0],
			Y:          rec[2],
			Z:          rec[1],
			ColorIndex: rec[3],
		})
	}
	return nil
}

func (d *decoder) decodeRGBA(content chunkReader) error {
	pal, err := content.slice(0, paletteBytes)
	if err != nil {
		return err
	}
	if d.sawPalette {
		d.tracef("warning: duplicate RGBA chunk, last write wins")
	}
	d.sawPalette = true
	var t ColorTable
	// Entry i-1 of the stored table backs palette index i; the final stored
	// entry has no addressable index and is dropped.
	for i := 1; i < 256; i++ {
		o := (i - 1) * 4
		t[i] = Color{R: pal.buf[o], G: pal.buf[o+1], B: pal.buf[o+2], A: pal.buf[o+3]}
	}
	d.doc.Palette = t
	return nil
}

// traceDict records the attribute count of a dictionary-bearing metadata
// chunk. Malformed metadata is out of scope for fatal handling and only
// downgrades to a warning.
func (d *decoder) traceDict(tag string, content chunkReader, off int) {
	attrs, _, err := content.dict(off)
	if err != nil {
		d.tracef("warning: %s dictionary unreadable, content skipped", tag)
		return
	}
	d.tracef("%s: %d attribute(s)", tag, len(attrs))
}

func (d *decoder) tracef(format string, args ...any) {
	d.doc.Trace = append(d.doc.Trace, fmt.Sprintf(format, args...))
}
