package vox

import "fmt"

// maxAxis is the largest model dimension whose voxel coordinates still fit
// the format's single-byte records.
const maxAxis = 256

func validateDocument(doc *Document, limits Limits) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrValidation)
	}
	if len(doc.Models) > limits.MaxModels {
		return fmt.Errorf("%w: %d models", ErrLimitExceeded, len(doc.Models))
	}
	for i := range doc.Models {
		m := &doc.Models[i]
		if m.SizeX <= 0 || m.SizeY <= 0 || m.SizeZ <= 0 {
			return fmt.Errorf("%w: model %d size %dx%dx%d must be positive",
				ErrValidation, i, m.SizeX, m.SizeY, m.SizeZ)
		}
		if m.SizeX > maxAxis || m.SizeY > maxAxis || m.SizeZ > maxAxis {
			return fmt.Errorf("%w: model %d size %dx%dx%d exceeds %d per axis",
				ErrValidation, i, m.SizeX, m.SizeY, m.SizeZ, maxAxis)
		}
		if len(m.Voxels) > limits.MaxVoxelsPerModel {
			return fmt.Errorf("%w: model %d has %d voxels", ErrLimitExceeded, i, len(m.Voxels))
		}
		for j, v := range m.Voxels {
			if v.ColorIndex == 0 {
				return fmt.Errorf("%w: model %d voxel %d uses reserved color index 0",
					ErrValidation, i, j)
			}
		}
	}
	return nil
}
