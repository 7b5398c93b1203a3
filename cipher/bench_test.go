package cipher

import "testing"

func benchmarkEncrypt(b *testing.B, mode Mode) {
	c := New(mode)
	c.SetKey(keyFromByte(0x07))

	var block [BlockBytes]byte
	for i := range block {
		block[i] = byte(i * 29)
	}

	b.SetBytes(BlockBytes)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		block = c.EncryptBlock(block)
	}
}

func benchmarkDecrypt(b *testing.B, mode Mode) {
	c := New(mode)
	c.SetKey(keyFromByte(0x07))

	var block [BlockBytes]byte
	for i := range block {
		block[i] = byte(i * 29)
	}

	b.SetBytes(BlockBytes)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		block = c.DecryptBlock(block)
	}
}

func BenchmarkEncryptFast(b *testing.B)     { benchmarkEncrypt(b, Fast) }
func BenchmarkEncryptHardened(b *testing.B) { benchmarkEncrypt(b, Hardened) }
func BenchmarkDecryptFast(b *testing.B)     { benchmarkDecrypt(b, Fast) }
func BenchmarkDecryptHardened(b *testing.B) { benchmarkDecrypt(b, Hardened) }

func BenchmarkSetKey(b *testing.B) {
	c := New(Fast)
	key := keyFromByte(0x07)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c.SetKey(key)
	}
}
