// Package main provides the cube96 command line interface: single-block
// encrypt/decrypt over hex-encoded key/data.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/stagedcube/cube96/cipher"
)

const (
	exitOK           = 0
	exitUsage        = 64
	exitHexParse     = 65
	exitUnknownMode  = 66
	productionNotice = "cube96: research cipher — NOT FOR PRODUCTION\n"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the CLI's testable entry point: it never calls os.Exit itself, so
// tests can drive the exact exit-code contract without spawning a process.
func run(args []string, stdout, stderr io.Writer) int {
	fmt.Fprint(stderr, productionNotice)

	if len(args) != 3 {
		fmt.Fprintln(stderr, "usage: cube96 <enc|dec> <hex-key-24> <hex-data-24>")
		return exitUsage
	}

	mode := args[0]
	var key [cipher.KeyBytes]byte
	var input [cipher.BlockBytes]byte

	if err := parseHexBlock(args[1], key[:]); err != nil {
		fmt.Fprintf(stderr, "invalid key hex: %v\n", err)
		return exitHexParse
	}
	if err := parseHexBlock(args[2], input[:]); err != nil {
		fmt.Fprintf(stderr, "invalid data hex: %v\n", err)
		return exitHexParse
	}

	c := cipher.New(cipher.DefaultImpl)
	c.SetKey(key)

	var output [cipher.BlockBytes]byte
	switch mode {
	case "enc":
		output = c.EncryptBlock(input)
	case "dec":
		output = c.DecryptBlock(input)
	default:
		err := fmt.Errorf("%w: %q (want enc or dec)", ErrUnknownMode, mode)
		fmt.Fprintln(stderr, err)
		return exitUnknownMode
	}

	fmt.Fprintln(stdout, hex.EncodeToString(output[:]))
	return exitOK
}

func parseHexBlock(field string, out []byte) error {
	if len(field) != len(out)*2 {
		return fmt.Errorf("%w: expected %d hex characters, got %d", ErrInvalidLength, len(out)*2, len(field))
	}
	decoded, err := hex.DecodeString(field)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	copy(out, decoded)
	return nil
}
