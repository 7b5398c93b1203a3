package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stagedcube/cube96/cipher"
)

const zeroKeyHex = "000000000000000000000000"
const zeroDataHex = "000000000000000000000000"

// enc on the all-zero key/block round-trips through dec, and every
// invocation exits 0 and carries the production-safety banner.
func TestRunEncDecRoundTrip(t *testing.T) {
	var outEnc, errEnc bytes.Buffer
	code := run([]string{"enc", zeroKeyHex, zeroDataHex}, &outEnc, &errEnc)
	if code != exitOK {
		t.Fatalf("enc exit code = %d, want %d", code, exitOK)
	}
	if !strings.Contains(errEnc.String(), "NOT FOR PRODUCTION") {
		t.Fatalf("stderr = %q, want production warning", errEnc.String())
	}
	ciphertextHex := strings.TrimSpace(outEnc.String())
	if len(ciphertextHex) != 24 {
		t.Fatalf("ciphertext hex = %q, want 24 characters", ciphertextHex)
	}

	var outDec, errDec bytes.Buffer
	code = run([]string{"dec", zeroKeyHex, ciphertextHex}, &outDec, &errDec)
	if code != exitOK {
		t.Fatalf("dec exit code = %d, want %d", code, exitOK)
	}
	if got := strings.TrimSpace(outDec.String()); got != zeroDataHex {
		t.Fatalf("dec(enc(p)) = %s, want %s", got, zeroDataHex)
	}
}

// Cross-check run()'s ciphertext against the library directly, pinning the
// CLI to the same CubeCipher the analysis/kat packages use.
func TestRunMatchesLibraryDirectly(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := run([]string{"enc", zeroKeyHex, zeroDataHex}, &out, &errBuf); code != exitOK {
		t.Fatalf("run: exit code %d", code)
	}

	var key, plain [cipher.KeyBytes]byte
	c := cipher.New(cipher.DefaultImpl)
	c.SetKey(key)
	want := c.EncryptBlock(plain)

	if got := strings.TrimSpace(out.String()); got != hex.EncodeToString(want[:]) {
		t.Fatalf("run() ciphertext = %s, want %s", got, hex.EncodeToString(want[:]))
	}
}

func TestRunUsageExitCode(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := run([]string{"enc", zeroKeyHex}, &out, &errBuf)
	if code != exitUsage {
		t.Fatalf("exit code = %d, want %d", code, exitUsage)
	}
}

func TestRunHexParseExitCode(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := run([]string{"enc", "not-hex", zeroDataHex}, &out, &errBuf)
	if code != exitHexParse {
		t.Fatalf("exit code = %d, want %d", code, exitHexParse)
	}

	out.Reset()
	errBuf.Reset()
	code = run([]string{"enc", zeroKeyHex, "00"}, &out, &errBuf)
	if code != exitHexParse {
		t.Fatalf("short data exit code = %d, want %d", code, exitHexParse)
	}
}

func TestRunUnknownModeExitCode(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := run([]string{"xyz", zeroKeyHex, zeroDataHex}, &out, &errBuf)
	if code != exitUnknownMode {
		t.Fatalf("exit code = %d, want %d", code, exitUnknownMode)
	}
}

func TestParseHexBlockWrapsSentinels(t *testing.T) {
	out := make([]byte, 12)
	if err := parseHexBlock("00", out); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("short field error = %v, want ErrInvalidLength", err)
	}
	if err := parseHexBlock(strings.Repeat("zz", 12), out); !errors.Is(err, ErrInvalidHex) {
		t.Fatalf("non-hex field error = %v, want ErrInvalidHex", err)
	}
}

func TestRunIsCaseInsensitiveHex(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := run([]string{"enc", strings.ToUpper(zeroKeyHex), zeroDataHex}, &out, &errBuf)
	if code != exitOK {
		t.Fatalf("exit code = %d, want %d", code, exitOK)
	}
}
