package sbox

import "testing"

func TestForwardInverseAreMutualBijections(t *testing.T) {
	for x := 0; x < 256; x++ {
		y := Forward[x]
		if Inverse[y] != byte(x) {
			t.Fatalf("Inverse[Forward[%d]] = %d, want %d", x, Inverse[y], x)
		}
	}
}

func TestForwardIsAPermutation(t *testing.T) {
	var seen [256]bool
	for x := 0; x < 256; x++ {
		y := Forward[x]
		if seen[y] {
			t.Fatalf("Forward[%d]=%d duplicates an earlier output", x, y)
		}
		seen[y] = true
	}
}

func TestBitslicedMatchesTableForward(t *testing.T) {
	for x := 0; x < 256; x++ {
		got := BitslicedForward(byte(x))
		want := Forward[x]
		if got != want {
			t.Fatalf("BitslicedForward(%d) = %#02x, want %#02x", x, got, want)
		}
	}
}

func TestBitslicedMatchesTableInverse(t *testing.T) {
	for x := 0; x < 256; x++ {
		got := BitslicedInverse(byte(x))
		want := Inverse[x]
		if got != want {
			t.Fatalf("BitslicedInverse(%d) = %#02x, want %#02x", x, got, want)
		}
	}
}

func TestGfInverseIsSelfConsistent(t *testing.T) {
	// x * x^-1 == 1 for every nonzero x, where gfInverse(0) == 0 by
	// convention (matching the AES S-box treatment of zero).
	if gfInverse(0) != 0 {
		t.Fatalf("gfInverse(0) = %#02x, want 0x00", gfInverse(0))
	}
	for x := 1; x < 256; x++ {
		inv := gfInverse(byte(x))
		if got := gfMul(byte(x), inv); got != 1 {
			t.Fatalf("gfMul(%d, gfInverse(%d)) = %#02x, want 0x01", x, x, got)
		}
	}
}

func TestAffineForwardInverseRoundTrip(t *testing.T) {
	for x := 0; x < 256; x++ {
		y := affineForward(byte(x))
		if got := affineInverse(y); got != byte(x) {
			t.Fatalf("affineInverse(affineForward(%d)) = %d, want %d", x, got, x)
		}
	}
}
