package main

import "errors"

// Sentinel errors for the CLI boundary. Block-level cipher operations are
// total once a key is installed, so every failure mode here is argument
// parsing; each sentinel maps onto one of the sysexits-style codes.
var (
	// ErrInvalidHex reports an argument that is not valid hexadecimal.
	ErrInvalidHex = errors.New("invalid hex")
	// ErrInvalidLength reports a hex argument of the wrong length.
	ErrInvalidLength = errors.New("invalid length")
	// ErrUnknownMode reports a mode argument other than enc or dec.
	ErrUnknownMode = errors.New("unknown mode")
)
