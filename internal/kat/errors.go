package kat

import "errors"

// Sentinel errors for fixture parsing, wrapped with field context at each
// call site. I/O and CSV-shape errors from the underlying reader are
// wrapped verbatim rather than mapped onto these.
var (
	// ErrInvalidHex reports a field that is not valid hexadecimal.
	ErrInvalidHex = errors.New("kat: invalid hex")
	// ErrInvalidLength reports a hex field of the wrong length.
	ErrInvalidLength = errors.New("kat: invalid length")
)
