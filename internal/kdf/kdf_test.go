package kdf

import (
	"encoding/hex"
	"testing"
)

func TestDeriveMaterialIsDeterministic(t *testing.T) {
	var key [blockBytes]byte
	for i := range key {
		key[i] = byte(i * 7)
	}

	a := DeriveMaterial(key)
	b := DeriveMaterial(key)

	if a != b {
		t.Fatalf("DeriveMaterial is not a pure function of its key input")
	}
}

func TestDeriveMaterialAvalanche(t *testing.T) {
	var key [blockBytes]byte
	for i := range key {
		key[i] = byte(i * 13)
	}
	base := DeriveMaterial(key)

	for bit := 0; bit < blockBytes*8; bit++ {
		flipped := key
		flipped[bit/8] ^= 1 << (7 - uint(bit%8))
		other := DeriveMaterial(flipped)
		if other == base {
			t.Fatalf("flipping key bit %d produced identical derived material", bit)
		}
	}
}

// seedKey is the known-answer-test key: bytes 0x00..0x0b.
func seedKey() [blockBytes]byte {
	var k [blockBytes]byte
	for i := range k {
		k[i] = byte(i)
	}
	return k
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("invalid hex fixture %q: %v", s, err)
	}
	return b
}

func TestDeriveMaterialKnownAnswerRoundKeysAndWhitening(t *testing.T) {
	material := DeriveMaterial(seedKey())

	wantRK := []string{
		"5EEA711B1A0EC8953685234E",
		"DDAA7793FB42067DF0E4DBD0",
		"ED962A80EBBC16FFDB12AF12",
		"FE4348D3C84841B6A3FD1D29",
		"E7C6B3BF6166DC868730A849",
		"49F1440F65D3983E46693CEF",
		"DB4CD58E5BC664C5B9D2C0AA",
		"7CE6E44D10896399E3F4366E",
	}
	for r, want := range wantRK {
		got := mustHex(t, want)
		if !bytesEqual(material.RoundKeys[r][:], got) {
			t.Errorf("round key %d = %x, want %s", r, material.RoundKeys[r], want)
		}
	}

	wantPost := mustHex(t, "88898D0EA524C7F27DE1E5AE")
	if !bytesEqual(material.PostWhitening[:], wantPost) {
		t.Errorf("post-whitening = %x, want %s", material.PostWhitening, "88898D0EA524C7F27DE1E5AE")
	}
}

func TestDeriveMaterialKnownAnswerPermSeeds(t *testing.T) {
	material := DeriveMaterial(seedKey())

	want := []string{
		"F1CA09AC9042F772",
		"41CAB0B7F95A09BC",
		"AA56713E55477C3E",
		"6F14385DDF479B42",
		"BACF1FCD7C9D7850",
		"C2606E6DE2D7ACCE",
		"3DAE88507AF57679",
		"19356536F4E0453F",
	}
	for r, w := range want {
		got := mustHex(t, w)
		if !bytesEqual(material.PermSeeds[r][:], got) {
			t.Errorf("perm seed %d = %x, want %s", r, material.PermSeeds[r], w)
		}
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
