package vox

// Limits bounds resource use while decoding. The zero value of any field
// means "use the default".
type Limits struct {
	MaxFileSize         int64  // raw bytes read from an io.Reader
	MaxDecompressedSize uint64 // bytes after unwrapping a compressed payload
	MaxChunks           int    // total chunks walked, defensive bound against adversarial trees
	MaxDepth            int    // chunk nesting depth
	MaxModels           int
	MaxVoxelsPerModel   int
}

func defaultLimits() Limits {
	return Limits{
		MaxFileSize:         256 << 20, // 256 MiB
		MaxDecompressedSize: 256 << 20,
		MaxChunks:           10_000,
		MaxDepth:            512,
		MaxModels:           4096,
		MaxVoxelsPerModel:   16 << 20, // a full 256^3 grid
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxFileSize == 0 {
		l.MaxFileSize = d.MaxFileSize
	}
	if l.MaxDecompressedSize == 0 {
		l.MaxDecompressedSize = d.MaxDecompressedSize
	}
	if l.MaxChunks == 0 {
		l.MaxChunks = d.MaxChunks
	}
	if l.MaxDepth == 0 {
		l.MaxDepth = d.MaxDepth
	}
	if l.MaxModels == 0 {
		l.MaxModels = d.MaxModels
	}
	if l.MaxVoxelsPerModel == 0 {
		l.MaxVoxelsPerModel = d.MaxVoxelsPerModel
	}
	return l
}
