//go:build cube96_rowmajor

package bitcube

// Row-major layout: bits are ordered primarily by y, then by x, then by z.
// Each logical row (4x6 = 24 bits) maps to three consecutive bytes.

// IdxOf returns the global bit index (0..95) of cube coordinate (x, y, z).
func IdxOf(x, y, z byte) byte {
	return 24*y + 6*x + z
}

// XYZOf returns the cube coordinate of global bit index idx.
func XYZOf(idx byte) (x, y, z byte) {
	z = idx % 6
	t := idx / 6
	x = t % 4
	y = t / 4
	return x, y, z
}

// ByteIndexOfBit returns the byte within a Block that holds bitIndex.
func ByteIndexOfBit(bitIndex byte) byte {
	return bitIndex / 8
}

// BitOffsetInByte returns the MSB-first bit position of bitIndex within its
// byte.
func BitOffsetInByte(bitIndex byte) byte {
	return 7 - (bitIndex % 8)
}
