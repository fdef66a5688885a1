// Package main provides C-compatible exports for the vox library, intended
// for use as a native engine plugin.
// Build with: go build -buildmode=c-shared -o vox.dll
package main

/*
#include <stdlib.h>
#include <stdint.h>

// Result structure for operations that return data
typedef struct {
    char* data;
    int   data_len;
    char* error;
} VoxResult;
*/
import "C"

import (
	"encoding/json"
	"fmt"
	"unsafe"

	"github.com/logicossoftware/go-vox"
)

func main() {}

// VoxDefaultVersion returns the format version written by the encoder.
//
//export VoxDefaultVersion
func VoxDefaultVersion() C.int32_t {
	return C.int32_t(vox.DefaultVersion)
}

// VoxFreeResult frees memory allocated by other Vox functions.
// Must be called to avoid memory leaks.
//
//export VoxFreeResult
func VoxFreeResult(result C.VoxResult) {
	if result.data != nil {
		C.free(unsafe.Pointer(result.data))
	}
	if result.error != nil {
		C.free(unsafe.Pointer(result.error))
	}
}

// VoxFreeString frees a C string allocated by Go.
//
//export VoxFreeString
func VoxFreeString(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

// makeResult creates a result with data.
func makeResult(data []byte) C.VoxResult {
	var result C.VoxResult
	if len(data) > 0 {
		result.data = (*C.char)(C.CBytes(data))
		result.data_len = C.int(len(data))
	}
	return result
}

// makeError creates a result with an error message.
func makeError(err error) C.VoxResult {
	var result C.VoxResult
	result.error = C.CString(err.Error())
	return result
}

// VoxDecode parses a vox file and returns a JSON summary of the document:
// version, per-model sizes and voxel counts, and the trace lines.
// Voxel payloads are fetched separately with VoxDecodeGetVoxels.
//
// Returns VoxResult with a JSON string or an error. Call VoxFreeResult when done.
//
//export VoxDecode
func VoxDecode(data *C.char, dataLen C.int) C.VoxResult {
	doc, err := vox.DecodeBytes(C.GoBytes(unsafe.Pointer(data), dataLen))
	if err != nil {
		return makeError(err)
	}

	models := make([]map[string]any, len(doc.Models))
	for i, m := range doc.Models {
		models[i] = map[string]any{
			"sizeX":      m.SizeX,
			"sizeY":      m.SizeY,
			"sizeZ":      m.SizeZ,
			"voxelCount": len(m.Voxels),
		}
	}
	summary := map[string]any{
		"version": doc.Version,
		"models":  models,
		"trace":   doc.Trace,
	}
	jsonBytes, err := json.Marshal(summary)
	if err != nil {
		return makeError(err)
	}
	return makeResult(jsonBytes)
}

// VoxGetModelCount returns the number of models in a vox file.
// Returns -1 on error.
//
//export VoxGetModelCount
func VoxGetModelCount(data *C.char, dataLen C.int) C.int {
	doc, err := vox.DecodeBytes(C.GoBytes(unsafe.Pointer(data), dataLen))
	if err != nil {
		return -1
	}
	return C.int(len(doc.Models))
}

// VoxDecodeGetVoxels returns the voxels of one model as packed 4-byte
// (x, y, z, colorIndex) records in engine axis order.
//
// Returns VoxResult with the packed records or an error. Call VoxFreeResult
// when done.
//
//export VoxDecodeGetVoxels
func VoxDecodeGetVoxels(data *C.char, dataLen C.int, modelIndex C.int) C.VoxResult {
	doc, err := vox.DecodeBytes(C.GoBytes(unsafe.Pointer(data), dataLen))
	if err != nil {
		return makeError(err)
	}
	i := int(modelIndex)
	if i < 0 || i >= len(doc.Models) {
		return makeError(fmt.Errorf("model index %d out of range [0,%d)", i, len(doc.Models)))
	}
	voxels := doc.Models[i].Voxels
	packed := make([]byte, 0, len(voxels)*4)
	for _, v := range voxels {
		packed = append(packed, v.X, v.Y, v.Z, v.ColorIndex)
	}
	return makeResult(packed)
}

// VoxDecodeGetPalette returns the document palette as 256 packed RGBA
// quads (1024 bytes), addressed directly by color index.
//
//export VoxDecodeGetPalette
func VoxDecodeGetPalette(data *C.char, dataLen C.int) C.VoxResult {
	doc, err := vox.DecodeBytes(C.GoBytes(unsafe.Pointer(data), dataLen))
	if err != nil {
		return makeError(err)
	}
	packed := make([]byte, 0, 256*4)
	for _, c := range doc.Palette {
		packed = append(packed, c.R, c.G, c.B, c.A)
	}
	return makeResult(packed)
}

// VoxValidate parses a vox file and reports whether it is well formed.
// Returns NULL on success, or an error message string on failure.
// Call VoxFreeString on the result if non-NULL.
//
//export VoxValidate
func VoxValidate(data *C.char, dataLen C.int) *C.char {
	if _, err := vox.DecodeBytes(C.GoBytes(unsafe.Pointer(data), dataLen)); err != nil {
		return C.CString(err.Error())
	}
	return nil
}
