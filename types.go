package vox

const (
	// DefaultVersion is the format version written by Encode. MagicaVoxel
	// itself has shipped files tagged 150 and 200; readers must accept any.
	DefaultVersion int32 = 150

	chunkHeaderSize = 12
	envelopeSize    = 8 // magic + version

	// minFileSize is the smallest buffer worth parsing: the 8-byte envelope
	// plus one chunk header.
	minFileSize = envelopeSize + chunkHeaderSize

	paletteBytes = 256 * 4
)

// Magic is the 4-byte vox file signature.
var Magic = [4]byte{'V', 'O', 'X', ' '}

// Recognized chunk tags. Any other 4-byte tag is skipped non-fatally.
const (
	TagMain = "MAIN"
	TagPack = "PACK"
	TagSize = "SIZE"
	TagXYZI = "XYZI"
	TagRGBA = "RGBA"

	// Metadata tags: accepted and traced, content not interpreted.
	TagTransform = "nTRN"
	TagGroup     = "nGRP"
	TagShape     = "nSHP"
	TagMaterial  = "MATL"
	TagLayer     = "LAYR"
	TagRenderObj = "rOBJ"
	TagCamera    = "rCAM"
	TagNote      = "NOTE"
	TagIndexMap  = "IMAP"
)

// Voxel is one occupied cell of a model grid.
//
// Coordinates are stored in engine order: the file's Z axis becomes Y and
// vice versa, so a raw record (x, y, z) decodes to X=x, Y=z, Z=y. ColorIndex
// addresses the document palette and is never 0 (0 marks empty cells in the
// format and is rejected during decoding).
type Voxel struct {
	X, Y, Z    uint8
	ColorIndex uint8
}

// Model is one voxel grid: its declared dimensions plus the sparse list of
// occupied cells in file order.
type Model struct {
	SizeX, SizeY, SizeZ int32
	Voxels              []Voxel
}

// ColorTable maps a palette index to its color. Index 0 is reserved by the
// format for "empty" and carries no meaningful color.
type ColorTable [256]Color

// Document is a logical representation of a vox file.
//
// Models appear in declaration order. Palette is either the built-in default
// table or the contents of the file's RGBA chunk. Trace holds one line per
// chunk encountered plus any non-fatal integrity warnings; it is purely
// observational and never required for correctness.
type Document struct {
	Version int32
	Models  []Model
	Palette ColorTable
	Trace   []string
}
