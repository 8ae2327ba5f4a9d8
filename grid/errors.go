package grid

import "errors"

// Sentinel errors. Match with errors.Is.
var (
	// ErrShortData indicates a persisted payload whose data array holds
	// fewer elements than its dimension requires.
	ErrShortData = errors.New("grid: data contains fewer items than the dimension requires")
)

// Panic messages for contract violations (programmer errors): these
// conditions would otherwise corrupt memory silently, so the offending
// operation terminates instead of reporting a recoverable error.
const (
	panicShortBuffer  = "grid: buffer has fewer items than the boundary requires"
	panicBadPitch     = "grid: pitch must be at least the boundary width"
	panicDimensionMix = "grid: dimension mismatch"
)
