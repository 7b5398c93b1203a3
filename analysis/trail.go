package analysis

import (
	"math"
	"sort"

	"github.com/stagedcube/cube96/bitcube"
	"github.com/stagedcube/cube96/internal/kdf"
	"github.com/stagedcube/cube96/internal/safe"
	"github.com/stagedcube/cube96/permute"
	"github.com/stagedcube/cube96/sbox"
)

// Transition is one feasible byte-difference propagation through the
// S-box: dx -> dy with weight = -log2(count/256).
type Transition struct {
	Output byte
	Weight float64
	Count  int
}

// Trail is the result of a differential-trail search: the input difference
// at each round boundary (length rounds+1, the last entry being the
// post-permutation state of the final round), the cumulative weight, and
// the implied probability 2^(-weight).
type Trail struct {
	States      []bitcube.Block
	Weight      float64
	Probability float64
}

// prepareTransitions builds, for every input byte difference dx, the list
// of feasible (dy, weight, count) transitions through the AES S-box sorted
// by ascending weight and truncated to branchLimit entries (branchLimit<=0
// means unlimited). dx=0 always maps to the single zero-weight transition
// dy=0.
func prepareTransitions(branchLimit int) [256][]Transition {
	var transitions [256][]Transition

	for dx := 0; dx < 256; dx++ {
		if dx == 0 {
			transitions[dx] = []Transition{{Output: 0, Weight: 0, Count: 256}}
			continue
		}

		var counts [256]int
		for x := 0; x < 256; x++ {
			dy := sbox.Forward[x] ^ sbox.Forward[x^dx]
			counts[dy]++
		}

		list := make([]Transition, 0, 16)
		for dy := 0; dy < 256; dy++ {
			count := counts[dy]
			if count == 0 {
				continue
			}
			prob := float64(count) / 256.0
			list = append(list, Transition{
				Output: byte(dy),
				Weight: -math.Log2(prob),
				Count:  count,
			})
		}
		sort.Slice(list, func(i, j int) bool {
			if list[i].Weight == list[j].Weight {
				return list[i].Output < list[j].Output
			}
			return list[i].Weight < list[j].Weight
		})
		if branchLimit > 0 && len(list) > branchLimit {
			list = list[:branchLimit]
		}
		transitions[dx] = list
	}
	return transitions
}

// roundPermutations derives the forward per-round permutations for key,
// without needing a full keyed CubeCipher (the trail search only ever
// propagates differences forward through SubBytes and Permute; it never
// XORs a round key, since XOR-by-a-fixed-key does not change a
// difference).
func roundPermutations(key bitcube.Block) [bitcube.RoundCount]permute.Permutation {
	material := kdf.DeriveMaterial(key)
	var perms [bitcube.RoundCount]permute.Permutation
	for r := 0; r < bitcube.RoundCount; r++ {
		fwd, _ := permute.AssembleRound(material.PermSeeds[r])
		perms[r] = fwd
	}
	return perms
}

// SearchDifferentialTrail runs a branch-and-bound DFS over rounds rounds
// (1..4) starting from inputDiff, using the permutations derived from key.
// branchLimit truncates each byte's transition list to its best-N entries
// (<=0 means unlimited; the conventional default is 8).
func SearchDifferentialTrail(key bitcube.Block, rounds, branchLimit int, inputDiff bitcube.Block) (Trail, error) {
	if err := safe.CheckRounds(rounds); err != nil {
		return Trail{}, err
	}
	limit := branchLimit
	if limit > 0 {
		if err := safe.CheckBranchLimit(limit); err != nil {
			return Trail{}, err
		}
	}

	transitions := prepareTransitions(limit)
	perms := roundPermutations(key)

	s := &searchState{
		rounds:      rounds,
		transitions: &transitions,
		perms:       &perms,
		working:     make([]bitcube.Block, rounds+1),
		bestWeight:  math.Inf(1),
	}
	s.searchRound(0, inputDiff, 0)

	if math.IsInf(s.bestWeight, 1) {
		return Trail{}, errNoTrailFound
	}
	return Trail{
		States:      s.best,
		Weight:      s.bestWeight,
		Probability: math.Pow(2, -s.bestWeight),
	}, nil
}

type searchState struct {
	rounds      int
	transitions *[256][]Transition
	perms       *[bitcube.RoundCount]permute.Permutation
	working     []bitcube.Block
	best        []bitcube.Block
	bestWeight  float64
}

func (s *searchState) searchRound(roundIdx int, input bitcube.Block, weight float64) {
	s.working[roundIdx] = input
	if roundIdx == s.rounds {
		if weight < s.bestWeight {
			s.bestWeight = weight
			s.best = append([]bitcube.Block(nil), s.working...)
		}
		return
	}

	var sbOut bitcube.Block
	s.enumerateBytes(roundIdx, input, &sbOut, 0, weight)
}

func (s *searchState) enumerateBytes(roundIdx int, input bitcube.Block, sbOut *bitcube.Block, byteIdx int, weight float64) {
	if byteIdx == bitcube.BlockBytes {
		next := permute.Apply(s.perms[roundIdx], *sbOut)
		s.searchRound(roundIdx+1, next, weight)
		return
	}

	dx := input[byteIdx]
	if dx == 0 {
		sbOut[byteIdx] = 0
		s.enumerateBytes(roundIdx, input, sbOut, byteIdx+1, weight)
		return
	}

	options := s.transitions[dx]
	for _, opt := range options {
		newWeight := weight + opt.Weight
		if newWeight >= s.bestWeight {
			continue
		}
		sbOut[byteIdx] = opt.Output
		s.enumerateBytes(roundIdx, input, sbOut, byteIdx+1, newWeight)
	}
}
