// Package cube96 is the root re-export for the Cube96 research cipher: a
// key-dependent 96-bit SPN with a Rubik-style bit-permutation diffusion
// layer. Users typically import the cipher sub-package directly; this
// package exists for callers who want a single import.
//
// WARNING: Cube96's 96-bit key is intentionally below secure margins. This
// is a research vehicle for cryptanalysis exercises, not a production
// cipher. There is no authenticated mode, no chaining mode, and no nonce
// management.
package cube96

import "github.com/stagedcube/cube96/cipher"

// Version of this Cube96 Go implementation.
const Version = "1.0.0"

// API summary:
//
// Block cipher (package cipher):
//   - cipher.New(mode) - construct a CubeCipher with Fast or Hardened dispatch
//   - (*CubeCipher).SetKey(key) - install a 12-byte key
//   - (*CubeCipher).EncryptBlock(in) / DecryptBlock(in) - single-block operations
//   - cipher.HasFastImpl() / HasHardenedImpl() / DefaultImpl
//
// Diffusion layer (package permute), S-box (package sbox), and state model
// (package bitcube) are exported for callers building their own analysis
// tooling. Differential/linear analysis kernels live in package analysis.

// Mode re-exports cipher.Mode so callers need only import this package for
// the common case.
type Mode = cipher.Mode

const (
	// Fast dispatches to table S-boxes and the branching permutation.
	Fast = cipher.Fast
	// Hardened dispatches to the constant-time S-box and permutation.
	Hardened = cipher.Hardened
)

// New constructs a CubeCipher with the given implementation mode.
func New(mode Mode) *cipher.CubeCipher {
	return cipher.New(mode)
}
