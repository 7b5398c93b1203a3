// Package permute implements Cube96's key-driven diffusion layer: a fixed
// alphabet of 36 primitive 96-bit permutations modeling Rubik-style cube
// moves, composed deterministically from a seeded SplitMix64 stream into a
// per-round permutation, plus fast and constant-time application.
package permute

import "github.com/stagedcube/cube96/bitcube"

// Permutation aliases the bitcube type this package operates on; permSize
// mirrors bitcube.PermSize.
type Permutation = bitcube.Permutation

const permSize = bitcube.PermSize

// drawsPerRound is the number of SplitMix64 draws composed into each round's
// permutation.
const drawsPerRound = 12

// Identity returns the identity permutation: Identity()[i] == i.
func Identity() Permutation {
	var p Permutation
	for i := 0; i < permSize; i++ {
		p[i] = byte(i)
	}
	return p
}

// Compose returns "apply accum then step": Compose(accum, step)[i] =
// step[accum[i]].
func Compose(accum, step Permutation) Permutation {
	var out Permutation
	for i := 0; i < permSize; i++ {
		out[i] = step[accum[i]]
	}
	return out
}

// Invert returns the inverse of p: Invert(p)[p[i]] == i for all i.
func Invert(p Permutation) Permutation {
	var inv Permutation
	for i := 0; i < permSize; i++ {
		inv[p[i]] = byte(i)
	}
	return inv
}

// Apply maps in through p using the branching, non-constant-time traversal:
// for each source bit, read it via the layout helpers and write it at its
// destination in a zero-initialized buffer.
func Apply(p Permutation, in [bitcube.BlockBytes]byte) [bitcube.BlockBytes]byte {
	var out [bitcube.BlockBytes]byte
	for src := 0; src < permSize; src++ {
		bit := bitcube.GetBit(&in, byte(src))
		bitcube.SetBit(&out, p[src], bit)
	}
	return out
}

// ApplyCT maps in through p using a branch-free masked-merge write, so the
// traversal never branches on a bit value. The layout indices read/written
// are public (derived from the key, but treated as public once computed);
// only the bit values are secret.
func ApplyCT(p Permutation, in [bitcube.BlockBytes]byte) [bitcube.BlockBytes]byte {
	var out [bitcube.BlockBytes]byte
	for src := 0; src < permSize; src++ {
		byteIdx := bitcube.ByteIndexOfBit(byte(src))
		bitPos := bitcube.BitOffsetInByte(byte(src))
		bit := (in[byteIdx] >> bitPos) & 1

		dst := p[src]
		dstByte := bitcube.ByteIndexOfBit(dst)
		dstPos := bitcube.BitOffsetInByte(dst)
		ctWriteBit(&out, dstByte, dstPos, bit)
	}
	return out
}

// ctWriteBit sets bit bitPos of s[byteIndex] to bit using a branch-free
// masked merge, never branching on the value of bit.
func ctWriteBit(s *[bitcube.BlockBytes]byte, byteIndex, bitPos, bit byte) {
	mask := byte(1) << bitPos
	neg := byte(0) - (bit & 1)
	s[byteIndex] = (s[byteIndex] &^ mask) | (neg & mask)
}

// AssembleRound derives the forward and inverse permutation for one round
// from its 8-byte big-endian permutation seed: seed a SplitMix64 stream,
// draw 12 indices (pick = draw % len(primitives), the biased reduction the
// KATs depend on, with no rejection sampling), and fold each primitive into
// an accumulator starting from the identity.
func AssembleRound(seed [8]byte) (fwd, inv Permutation) {
	s := uint64(0)
	for _, b := range seed {
		s = s<<8 | uint64(b)
	}

	prng := NewSplitMix64(s)
	prims := Primitives()
	perm := Identity()
	for step := 0; step < drawsPerRound; step++ {
		pick := prng.Next() % uint64(len(prims))
		perm = Compose(perm, prims[pick])
	}
	return perm, Invert(perm)
}
