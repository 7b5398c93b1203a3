// Package main provides the cube96 throughput benchmark harness: it keys a
// cipher in each available dispatch mode, encrypts a buffer of
// deterministic pseudo-random blocks, and reports MiB/s.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/stagedcube/cube96/cipher"
	"github.com/stagedcube/cube96/config"
	"github.com/stagedcube/cube96/internal/xof"
)

const (
	exitOK    = 0
	exitUsage = 64
)

// benchSeed fixes the plaintext stream so repeated runs encrypt identical
// data.
var benchSeed = []byte("cube96-bench-plaintext-v1")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the benchmark's testable entry point. The byte count defaults to
// CUBE96_BENCH_BYTES (or config.DefaultBenchBytes) and can be overridden
// with --bytes or --blocks.
func run(args []string, stdout, stderr io.Writer) int {
	totalBytes := config.BenchBytes()

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--bytes":
			if i+1 >= len(args) {
				fmt.Fprintln(stderr, "--bytes requires a value")
				return exitUsage
			}
			i++
			value, err := strconv.ParseUint(args[i], 10, 64)
			if err != nil || value == 0 {
				fmt.Fprintf(stderr, "invalid --bytes value %q\n", args[i])
				return exitUsage
			}
			totalBytes = value
		case "--blocks":
			if i+1 >= len(args) {
				fmt.Fprintln(stderr, "--blocks requires a value")
				return exitUsage
			}
			i++
			value, err := strconv.ParseUint(args[i], 10, 64)
			if err != nil || value == 0 {
				fmt.Fprintf(stderr, "invalid --blocks value %q\n", args[i])
				return exitUsage
			}
			totalBytes = value * cipher.BlockBytes
		case "--help":
			fmt.Fprintln(stdout, "usage: cube96-bench [--bytes N] [--blocks N]")
			return exitOK
		default:
			fmt.Fprintf(stderr, "unknown argument: %s\n", args[i])
			return exitUsage
		}
	}

	if totalBytes%cipher.BlockBytes != 0 {
		fmt.Fprintf(stderr, "byte count must be a positive multiple of the block size (%d)\n", cipher.BlockBytes)
		return exitUsage
	}

	if cipher.HasFastImpl() {
		runBench(cipher.Fast, "Fast", totalBytes, stdout)
	} else {
		fmt.Fprintf(stderr, "skipping Fast benchmark: %v\n", cipher.ErrFastImplDisabled)
	}
	runBench(cipher.Hardened, "Hardened", totalBytes, stdout)
	return exitOK
}

func runBench(mode cipher.Mode, name string, totalBytes uint64, w io.Writer) {
	c := cipher.New(mode)
	var key [cipher.KeyBytes]byte
	for i := range key {
		key[i] = byte(i*11 + 7)
	}
	c.SetKey(key)

	buffer := make([]byte, totalBytes)
	stream := xof.NewStream(benchSeed)
	stream.FillBlock(buffer)
	stream.Close()

	blocks := totalBytes / cipher.BlockBytes
	var in, out [cipher.BlockBytes]byte

	start := time.Now()
	for i := uint64(0); i < blocks; i++ {
		copy(in[:], buffer[i*cipher.BlockBytes:])
		out = c.EncryptBlock(in)
		copy(buffer[i*cipher.BlockBytes:], out[:])
	}
	elapsed := time.Since(start)

	mib := float64(totalBytes) / (1024.0 * 1024.0)
	mibps := mib / elapsed.Seconds()
	fmt.Fprintf(w, "%s impl: %.2f MiB/s in %v\n", name, mibps, elapsed)
}
