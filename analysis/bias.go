package analysis

import (
	"github.com/stagedcube/cube96/bitcube"
	"github.com/stagedcube/cube96/internal/kdf"
	"github.com/stagedcube/cube96/internal/safe"
	"github.com/stagedcube/cube96/internal/xof"
	"github.com/stagedcube/cube96/permute"
	"github.com/stagedcube/cube96/sbox"
)

// EmpiricalLinearBias estimates the linear correlation of a partial
// encryption under key: it draws samples deterministic pseudo-random
// plaintexts from seed, partially encrypts each for rounds rounds, and
// accumulates parity(maskIn . plaintext) XOR parity(maskOut . state) as
// +1/-1. correlation is that sum divided by samples; bias is correlation/2.
func EmpiricalLinearBias(key bitcube.Block, rounds int, maskIn, maskOut bitcube.Block, samples int, seed []byte) (correlation, bias float64, err error) {
	if err := safe.CheckRounds(rounds); err != nil {
		return 0, 0, err
	}
	if err := safe.CheckSampleCount(samples); err != nil {
		return 0, 0, err
	}

	material := kdf.DeriveMaterial(key)
	var perms [bitcube.RoundCount]permute.Permutation
	for r := 0; r < bitcube.RoundCount; r++ {
		fwd, _ := permute.AssembleRound(material.PermSeeds[r])
		perms[r] = fwd
	}

	stream := xof.NewStream(seed)
	defer stream.Close()

	var accumulator int64
	var plain bitcube.Block
	for i := 0; i < samples; i++ {
		stream.FillBlock(plain[:])

		state := partialEncrypt(plain, rounds, &material, &perms)

		inParity := parityMask(plain, maskIn)
		outParity := parityMask(state, maskOut)
		if inParity == outParity {
			accumulator++
		} else {
			accumulator--
		}
	}

	correlation = float64(accumulator) / float64(samples)
	bias = correlation / 2.0
	return correlation, bias, nil
}

func partialEncrypt(input bitcube.Block, rounds int, material *kdf.DerivedMaterial, perms *[bitcube.RoundCount]permute.Permutation) bitcube.Block {
	state := input
	for r := 0; r < rounds; r++ {
		for i := range state {
			state[i] ^= material.RoundKeys[r][i]
		}
		for i := range state {
			state[i] = sbox.Forward[state[i]]
		}
		state = permute.Apply(perms[r], state)
	}
	return state
}

func parityMask(value, mask bitcube.Block) int {
	parity := 0
	for i := range value {
		parity ^= parity8(value[i] & mask[i])
	}
	return parity & 1
}
