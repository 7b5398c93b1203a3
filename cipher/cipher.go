// Package cipher implements the Cube96 round engine: the SPN round
// structure (AddRoundKey -> SubBytes -> Permute, post-whitening after the
// last round), and the Fast/Hardened implementation dispatch.
package cipher

import (
	"github.com/stagedcube/cube96/bitcube"
	"github.com/stagedcube/cube96/internal/kdf"
	"github.com/stagedcube/cube96/permute"
)

const (
	// BlockBytes is the size in bytes of a Cube96 block or key.
	BlockBytes = bitcube.BlockBytes
	// KeyBytes is the size in bytes of a Cube96 key.
	KeyBytes = bitcube.KeyBytes
	// RoundCount is the number of SPN rounds.
	RoundCount = bitcube.RoundCount
)

// Mode selects the implementation dispatch for a CubeCipher: Fast uses
// table-based S-boxes and the branching bit permutation; Hardened uses the
// table-free bitsliced S-box circuit and the constant-time permutation
// application.
type Mode int

const (
	// Fast dispatches to table S-boxes and the branching permutation.
	Fast Mode = iota
	// Hardened dispatches to the constant-time S-box and permutation.
	Hardened
)

// DefaultImpl is the Mode a CubeCipher uses when constructed with the zero
// value of Mode. It is Fast unless the cube96_disable_fast or cube96_force_ct
// build tag makes the build Hardened-only.
var DefaultImpl = defaultImpl()

// CubeCipher is a keyed Cube96 instance. Once SetKey returns, a CubeCipher
// is immutable and safe to share across goroutines for concurrent
// EncryptBlock/DecryptBlock calls. SetKey itself must not be called
// concurrently with block operations; callers synchronize externally.
type CubeCipher struct {
	mode Mode

	roundKeys [RoundCount][BlockBytes]byte
	postWhite [BlockBytes]byte
	perm      [RoundCount]permute.Permutation
	invPerm   [RoundCount]permute.Permutation
}

// New constructs a CubeCipher with the given implementation mode. The
// cipher has no usable key until SetKey is called.
func New(mode Mode) *CubeCipher {
	mode = resolveMode(mode)
	return &CubeCipher{mode: mode}
}

// SetKey derives and caches all round-dependent material for key: round
// keys, post-whitening, and both the forward and inverse permutation for
// every round. SetKey is infallible and total over all 12-byte keys.
func (c *CubeCipher) SetKey(key [KeyBytes]byte) {
	logCube96("installing key, mode=%v", c.mode)
	material := kdf.DeriveMaterial(key)
	c.roundKeys = material.RoundKeys
	c.postWhite = material.PostWhitening

	for r := 0; r < RoundCount; r++ {
		fwd, inv := permute.AssembleRound(material.PermSeeds[r])
		c.perm[r] = fwd
		c.invPerm[r] = inv
		logCube96("round %d permutation assembled from seed %x", r, material.PermSeeds[r])
	}
}

// EncryptBlock encrypts in, returning the ciphertext block. It is a total
// function of (key, in) once SetKey has been called.
func (c *CubeCipher) EncryptBlock(in [BlockBytes]byte) [BlockBytes]byte {
	state := in
	for r := 0; r < RoundCount; r++ {
		xorInto(&state, &c.roundKeys[r])
		c.subBytes(&state)
		state = c.applyPerm(c.perm[r], state)
	}
	xorInto(&state, &c.postWhite)
	return state
}

// DecryptBlock decrypts in, returning the plaintext block. It reverses
// EncryptBlock exactly: XOR post-whitening, then for each round from last to
// first, apply the inverse permutation, inverse SubBytes, and XOR the round
// key.
func (c *CubeCipher) DecryptBlock(in [BlockBytes]byte) [BlockBytes]byte {
	state := in
	xorInto(&state, &c.postWhite)

	for r := RoundCount - 1; r >= 0; r-- {
		state = c.applyPerm(c.invPerm[r], state)
		c.invSubBytes(&state)
		xorInto(&state, &c.roundKeys[r])
	}
	return state
}

func xorInto(state *[BlockBytes]byte, key *[BlockBytes]byte) {
	for i := range state {
		state[i] ^= key[i]
	}
}

func (c *CubeCipher) applyPerm(p permute.Permutation, state [BlockBytes]byte) [BlockBytes]byte {
	if c.mode == Fast {
		return permute.Apply(p, state)
	}
	return permute.ApplyCT(p, state)
}
