package kdf

const (
	blockBytes = 12
	roundCount = 8
	seedBytes  = 8
	// okmLen is the total HKDF output: 8 round keys + 8 permutation seeds +
	// one post-whitening block.
	okmLen = roundCount*blockBytes + roundCount*seedBytes + blockBytes
)

// salt is the fixed 32-byte HKDF salt: the ASCII string "StagedCube's-96-HKDF-V1"
// (23 bytes) padded with zeros.
var salt = [32]byte{
	0x53, 0x74, 0x61, 0x67, 0x65, 0x64, 0x43, 0x75,
	0x62, 0x65, 0x27, 0x73, 0x2D, 0x39, 0x36, 0x2D,
	0x48, 0x4B, 0x44, 0x46, 0x2D, 0x56, 0x31, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// info is the fixed 20-byte HKDF info string, ASCII "Cube96-RK-PS-Post-v1"
// with no terminator.
var info = []byte("Cube96-RK-PS-Post-v1")

// DerivedMaterial is the full set of key-dependent material produced from a
// 12-byte key: eight round keys, eight permutation seeds, and one
// post-whitening block.
type DerivedMaterial struct {
	RoundKeys     [roundCount][blockBytes]byte
	PermSeeds     [roundCount][seedBytes]byte
	PostWhitening [blockBytes]byte
}

// DeriveMaterial expands a 12-byte key into the full DerivedMaterial via
// PRK = HMAC(salt, key) followed by HKDF-expand with the fixed info string,
// partitioning the 172-byte output as round keys, then permutation seeds,
// then the post-whitening block.
func DeriveMaterial(key [blockBytes]byte) DerivedMaterial {
	prk := HMACSHA256(salt[:], key[:])
	okm := HKDFExpand(prk[:], info, okmLen)

	var material DerivedMaterial
	offset := 0
	for r := 0; r < roundCount; r++ {
		copy(material.RoundKeys[r][:], okm[offset:offset+blockBytes])
		offset += blockBytes
	}
	for r := 0; r < roundCount; r++ {
		copy(material.PermSeeds[r][:], okm[offset:offset+seedBytes])
		offset += seedBytes
	}
	copy(material.PostWhitening[:], okm[offset:offset+blockBytes])

	return material
}
