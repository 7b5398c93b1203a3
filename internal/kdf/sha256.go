// Package kdf implements the key-derivation primitives Cube96's key schedule
// is built from: SHA-256, HMAC-SHA-256, and the HKDF expand phase. These are
// hand-rolled from the published constants rather than built on crypto/sha256
// because the derived material must be bit-exact to the fixed test vectors
// regardless of which standard-library hash implementation a Go toolchain
// ships; the algorithm itself is the unmodified FIPS 180-4 construction.
package kdf

import "encoding/binary"

var sha256Init = [8]uint32{
	0x6A09E667, 0xBB67AE85, 0x3C6EF372, 0xA54FF53A,
	0x510E527F, 0x9B05688C, 0x1F83D9AB, 0x5BE0CD19,
}

var sha256K = [64]uint32{
	0x428A2F98, 0x71374491, 0xB5C0FBCF, 0xE9B5DBA5, 0x3956C25B,
	0x59F111F1, 0x923F82A4, 0xAB1C5ED5, 0xD807AA98, 0x12835B01,
	0x243185BE, 0x550C7DC3, 0x72BE5D74, 0x80DEB1FE, 0x9BDC06A7,
	0xC19BF174, 0xE49B69C1, 0xEFBE4786, 0x0FC19DC6, 0x240CA1CC,
	0x2DE92C6F, 0x4A7484AA, 0x5CB0A9DC, 0x76F988DA, 0x983E5152,
	0xA831C66D, 0xB00327C8, 0xBF597FC7, 0xC6E00BF3, 0xD5A79147,
	0x06CA6351, 0x14292967, 0x27B70A85, 0x2E1B2138, 0x4D2C6DFC,
	0x53380D13, 0x650A7354, 0x766A0ABB, 0x81C2C92E, 0x92722C85,
	0xA2BFE8A1, 0xA81A664B, 0xC24B8B70, 0xC76C51A3, 0xD192E819,
	0xD6990624, 0xF40E3585, 0x106AA070, 0x19A4C116, 0x1E376C08,
	0x2748774C, 0x34B0BCB5, 0x391C0CB3, 0x4ED8AA4A, 0x5B9CCA4F,
	0x682E6FF3, 0x748F82EE, 0x78A5636F, 0x84C87814, 0x8CC70208,
	0x90BEFFFA, 0xA4506CEB, 0xBEF9A3F7, 0xC67178F2,
}

func rotr32(x uint32, r uint) uint32 {
	return (x >> r) | (x << (32 - r))
}

// sha256Ctx is a streaming SHA-256 state, mirroring the original
// buffer/bit-length bookkeeping exactly so the HMAC layer can clone an
// ipad/opad-primed context cheaply.
type sha256Ctx struct {
	h         [8]uint32
	bitLen    uint64
	buffer    [64]byte
	bufferLen int
}

func newSha256Ctx() sha256Ctx {
	return sha256Ctx{h: sha256Init}
}

func (c *sha256Ctx) compress(block *[64]byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[4*i : 4*i+4])
	}
	for i := 16; i < 64; i++ {
		s0 := rotr32(w[i-15], 7) ^ rotr32(w[i-15], 18) ^ (w[i-15] >> 3)
		s1 := rotr32(w[i-2], 17) ^ rotr32(w[i-2], 19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c2, d, e, f, g, h := c.h[0], c.h[1], c.h[2], c.h[3], c.h[4], c.h[5], c.h[6], c.h[7]

	for i := 0; i < 64; i++ {
		s1 := rotr32(e, 6) ^ rotr32(e, 11) ^ rotr32(e, 25)
		ch := (e & f) ^ (^e & g)
		temp1 := h + s1 + ch + sha256K[i] + w[i]
		s0 := rotr32(a, 2) ^ rotr32(a, 13) ^ rotr32(a, 22)
		maj := (a & b) ^ (a & c2) ^ (b & c2)
		temp2 := s0 + maj

		h = g
		g = f
		f = e
		e = d + temp1
		d = c2
		c2 = b
		b = a
		a = temp1 + temp2
	}

	c.h[0] += a
	c.h[1] += b
	c.h[2] += c2
	c.h[3] += d
	c.h[4] += e
	c.h[5] += f
	c.h[6] += g
	c.h[7] += h
}

func (c *sha256Ctx) update(data []byte) {
	c.bitLen += uint64(len(data)) * 8
	for len(data) > 0 {
		take := 64 - c.bufferLen
		if take > len(data) {
			take = len(data)
		}
		copy(c.buffer[c.bufferLen:], data[:take])
		c.bufferLen += take
		data = data[take:]
		if c.bufferLen == 64 {
			c.compress(&c.buffer)
			c.bufferLen = 0
		}
	}
}

func (c *sha256Ctx) final() [32]byte {
	c.buffer[c.bufferLen] = 0x80
	c.bufferLen++
	if c.bufferLen > 56 {
		for c.bufferLen < 64 {
			c.buffer[c.bufferLen] = 0x00
			c.bufferLen++
		}
		c.compress(&c.buffer)
		c.bufferLen = 0
	}
	for c.bufferLen < 56 {
		c.buffer[c.bufferLen] = 0x00
		c.bufferLen++
	}
	binary.BigEndian.PutUint64(c.buffer[56:64], c.bitLen)
	c.compress(&c.buffer)

	var out [32]byte
	for i := 0; i < 8; i++ {
		binary.BigEndian.PutUint32(out[4*i:4*i+4], c.h[i])
	}
	return out
}

// SHA256 computes the SHA-256 digest of data.
func SHA256(data []byte) [32]byte {
	ctx := newSha256Ctx()
	ctx.update(data)
	return ctx.final()
}
