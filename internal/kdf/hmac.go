package kdf

// hmacCtx holds a pair of SHA-256 contexts already primed with the
// ipad/opad-xored key block, so final can be called repeatedly against
// independent clones without re-deriving the key block (HKDF's expand loop
// needs exactly this: one PRK-keyed HMAC instance reused per output block).
type hmacCtx struct {
	inner sha256Ctx
	outer sha256Ctx
}

func newHmacCtx(key []byte) hmacCtx {
	var keyBlock [64]byte
	if len(key) > 64 {
		hashed := SHA256(key)
		copy(keyBlock[:], hashed[:])
	} else {
		copy(keyBlock[:], key)
	}

	var ipad, opad [64]byte
	for i := 0; i < 64; i++ {
		ipad[i] = keyBlock[i] ^ 0x36
		opad[i] = keyBlock[i] ^ 0x5C
	}

	ctx := hmacCtx{inner: newSha256Ctx(), outer: newSha256Ctx()}
	ctx.inner.update(ipad[:])
	ctx.outer.update(opad[:])
	return ctx
}

func (c hmacCtx) final(data []byte) [32]byte {
	c.inner.update(data)
	innerDigest := c.inner.final()
	c.outer.update(innerDigest[:])
	return c.outer.final()
}

// HMACSHA256 computes HMAC-SHA-256(key, data) using the standard
// ipad/opad construction with a 64-byte block; keys longer than 64 bytes are
// pre-hashed.
func HMACSHA256(key, data []byte) [32]byte {
	return newHmacCtx(key).final(data)
}
