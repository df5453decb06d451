package pdfproc

import "errors"

// Sentinel errors for classifying processing failures. Callers match with
// errors.Is to build precise tool responses.
var (
	ErrFileNotFound    = errors.New("file not found")
	ErrInvalidDocument = errors.New("invalid document")
	ErrPageRange       = errors.New("page range out of bounds")
)
