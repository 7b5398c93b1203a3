package cipher

import (
	"testing"

	"github.com/stagedcube/cube96/config"
	"github.com/stagedcube/cube96/internal/xof"
)

func keyFromByte(b byte) [KeyBytes]byte {
	var k [KeyBytes]byte
	for i := range k {
		k[i] = b + byte(i)
	}
	return k
}

// decrypt(encrypt(block)) == block for every key.
func TestRoundTrip(t *testing.T) {
	for _, seed := range []byte{0x00, 0x01, 0x42, 0xff} {
		c := New(Fast)
		c.SetKey(keyFromByte(seed))

		var block [BlockBytes]byte
		for i := range block {
			block[i] = byte(i*17 + int(seed))
		}

		ct := c.EncryptBlock(block)
		pt := c.DecryptBlock(ct)
		if pt != block {
			t.Fatalf("seed %d: DecryptBlock(EncryptBlock(p)) = %x, want %x", seed, pt, block)
		}
	}
}

// Fast and Hardened dispatch agree on every block, for encrypt and
// decrypt.
func TestFastHardenedAgree(t *testing.T) {
	key := keyFromByte(0x5a)
	fast := New(Fast)
	fast.SetKey(key)
	hardened := New(Hardened)
	hardened.SetKey(key)

	for trial := 0; trial < 64; trial++ {
		var block [BlockBytes]byte
		for i := range block {
			block[i] = byte(trial*31 + i*7)
		}

		fastCT := fast.EncryptBlock(block)
		hardenedCT := hardened.EncryptBlock(block)
		if fastCT != hardenedCT {
			t.Fatalf("trial %d: Fast.Encrypt = %x, Hardened.Encrypt = %x", trial, fastCT, hardenedCT)
		}

		fastPT := fast.DecryptBlock(fastCT)
		hardenedPT := hardened.DecryptBlock(hardenedCT)
		if fastPT != hardenedPT {
			t.Fatalf("trial %d: Fast.Decrypt = %x, Hardened.Decrypt = %x", trial, fastPT, hardenedPT)
		}
	}
}

// Average Hamming distance between encrypt(P) and encrypt(P ^ e_i)
// across all 96 single-bit flips of the plaintext lies in [40, 56].
func TestAvalanchePlaintextBitFlips(t *testing.T) {
	c := New(Fast)
	c.SetKey(keyFromByte(0x11))

	var base [BlockBytes]byte
	for i := range base {
		base[i] = byte(i * 3)
	}
	baseCT := c.EncryptBlock(base)

	total := 0
	for bit := 0; bit < BlockBytes*8; bit++ {
		flipped := base
		flipped[bit/8] ^= 1 << uint(7-bit%8)
		ct := c.EncryptBlock(flipped)
		total += hammingDistance(baseCT, ct)
	}

	avg := float64(total) / float64(BlockBytes*8)
	if avg < 40 || avg > 56 {
		t.Fatalf("average avalanche distance = %v, want in [40, 56]", avg)
	}
}

// The same avalanche bound applies to single-bit key flips.
func TestAvalancheKeyBitFlips(t *testing.T) {
	var block [BlockBytes]byte
	for i := range block {
		block[i] = byte(i * 5)
	}

	baseKey := keyFromByte(0x33)
	base := New(Fast)
	base.SetKey(baseKey)
	baseCT := base.EncryptBlock(block)

	total := 0
	for bit := 0; bit < KeyBytes*8; bit++ {
		flipped := baseKey
		flipped[bit/8] ^= 1 << uint(7-bit%8)
		c := New(Fast)
		c.SetKey(flipped)
		ct := c.EncryptBlock(block)
		total += hammingDistance(baseCT, ct)
	}

	avg := float64(total) / float64(KeyBytes*8)
	if avg < 40 || avg > 56 {
		t.Fatalf("average key-avalanche distance = %v, want in [40, 56]", avg)
	}
}

// Round-trip and dispatch-equivalence over a randomized corpus.
// CUBE96_TEST_ITERATIONS scales the corpus size; the plaintext stream is
// seeded so failures reproduce exactly.
func TestRoundTripRandomBlocks(t *testing.T) {
	iterations := int(config.TestIterations())
	if iterations > 1<<16 {
		iterations = 1 << 16
	}

	key := keyFromByte(0x77)
	fast := New(Fast)
	fast.SetKey(key)
	hardened := New(Hardened)
	hardened.SetKey(key)

	stream := xof.NewStream([]byte("cube96-roundtrip-corpus-v1"))
	defer stream.Close()

	var block [BlockBytes]byte
	for i := 0; i < iterations; i++ {
		stream.FillBlock(block[:])

		ct := fast.EncryptBlock(block)
		if hardened.EncryptBlock(block) != ct {
			t.Fatalf("iteration %d: Fast and Hardened ciphertexts differ for %x", i, block)
		}
		if pt := fast.DecryptBlock(ct); pt != block {
			t.Fatalf("iteration %d: round trip failed for %x", i, block)
		}
	}
}

func TestHasFastAndHardenedImplInDefaultBuild(t *testing.T) {
	if !HasFastImpl() {
		t.Error("HasFastImpl() = false in default build")
	}
	if !HasHardenedImpl() {
		t.Error("HasHardenedImpl() = false")
	}
}

func hammingDistance(a, b [BlockBytes]byte) int {
	dist := 0
	for i := range a {
		x := a[i] ^ b[i]
		for x != 0 {
			dist++
			x &= x - 1
		}
	}
	return dist
}
