package vox

import "errors"

var (
	ErrBadMagic      = errors.New("vox: invalid magic")
	ErrTruncated     = errors.New("vox: truncated input")
	ErrSizeMismatch  = errors.New("vox: declared count exceeds content")
	ErrInvalidChunk  = errors.New("vox: invalid chunk")
	ErrLimitExceeded = errors.New("vox: limit exceeded")
	ErrValidation    = errors.New("vox: validation failed")
)
