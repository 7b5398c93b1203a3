package cipher

import "github.com/stagedcube/cube96/sbox"

func (c *CubeCipher) subBytes(state *[BlockBytes]byte) {
	if c.mode == Fast {
		for i := range state {
			state[i] = sbox.Forward[state[i]]
		}
		return
	}
	for i := range state {
		state[i] = sbox.BitslicedForward(state[i])
	}
}

func (c *CubeCipher) invSubBytes(state *[BlockBytes]byte) {
	if c.mode == Fast {
		for i := range state {
			state[i] = sbox.Inverse[state[i]]
		}
		return
	}
	for i := range state {
		state[i] = sbox.BitslicedInverse(state[i])
	}
}
