// Package analysis implements Cube96's differential and linear analysis
// kernels against the AES S-box and the key-driven round function: DDT/LAT
// computation, weighted differential-trail search, and empirical linear
// bias estimation.
package analysis

import (
	"fmt"
	"io"

	"github.com/stagedcube/cube96/sbox"
)

// Matrix256 is a 256x256 table of integer counts, the shape shared by both
// the DDT and the LAT.
type Matrix256 [256][256]int

// ComputeDDT builds the AES S-box's Difference Distribution Table: for each
// input difference dx and each x, it increments DDT[dx][S(x) ^ S(x^dx)].
// Row dx=0 is always (256, 0, 0, ...). uniformity is
// max{DDT[dx][dy] : dx != 0}, the differential uniformity.
func ComputeDDT() (table Matrix256, uniformity int) {
	for dx := 0; dx < 256; dx++ {
		for x := 0; x < 256; x++ {
			dy := sbox.Forward[x] ^ sbox.Forward[x^dx]
			table[dx][dy]++
		}
	}

	for dx := 1; dx < 256; dx++ {
		for dy := 0; dy < 256; dy++ {
			if table[dx][dy] > uniformity {
				uniformity = table[dx][dy]
			}
		}
	}
	return table, uniformity
}

// ComputeLAT builds the AES S-box's Linear Approximation Table:
// LAT[a][b] = sum over x of (-1)^(parity(a&x) ^ parity(b&S(x))), i.e.
// matches minus mismatches. maxBias is max{|LAT[a][b]| : a != 0, b != 0}/2,
// the largest deviation of the match count from 128 (a bias of maxBias/256).
func ComputeLAT() (table Matrix256, maxBias int) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			sum := 0
			for x := 0; x < 256; x++ {
				inParity := parity8(byte(a) & byte(x))
				outParity := parity8(byte(b) & sbox.Forward[x])
				if inParity == outParity {
					sum++
				} else {
					sum--
				}
			}
			table[a][b] = sum
		}
	}

	for a := 1; a < 256; a++ {
		for b := 1; b < 256; b++ {
			bias := table[a][b] / 2
			if bias < 0 {
				bias = -bias
			}
			if bias > maxBias {
				maxBias = bias
			}
		}
	}
	return table, maxBias
}

func parity8(x byte) int {
	x ^= x >> 4
	x ^= x >> 2
	x ^= x >> 1
	return int(x & 1)
}

// WriteMatrixCSV writes table in the "dx,0,1,...,255" header format: one
// header row naming every column, then one data row per table index
// prefixed by the row index.
func WriteMatrixCSV(w io.Writer, table *Matrix256) error {
	if _, err := io.WriteString(w, "dx"); err != nil {
		return err
	}
	for col := 0; col < 256; col++ {
		if _, err := fmt.Fprintf(w, ",%d", col); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	for row := 0; row < 256; row++ {
		if _, err := fmt.Fprintf(w, "%d", row); err != nil {
			return err
		}
		for col := 0; col < 256; col++ {
			if _, err := fmt.Fprintf(w, ",%d", table[row][col]); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
