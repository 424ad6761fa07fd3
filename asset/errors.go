package asset

import "errors"

var (
	ErrUnsupportedKind = errors.New("unsupported asset kind")
	ErrAnchorNotFound  = errors.New("anchor not found")
	ErrInvalidBatch    = errors.New("invalid batch input")
	ErrNoTail          = errors.New("tail marker not found")
	ErrNoContainer     = errors.New("container not found")
	ErrLoadFailed      = errors.New("asset load failed")
)
