// Package kat reads and writes Cube96's known-answer-test CSV fixtures:
// plain `name,key,plaintext,ciphertext` rows, one 24-hex-character field per
// key/plaintext/ciphertext. This package only parses and validates row
// shape; it never touches cipher logic.
package kat

import (
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/stagedcube/cube96/bitcube"
)

// Header is the exact CSV header row every Cube96 KAT file carries.
const Header = "name,key,plaintext,ciphertext"

// Case is a single named known-answer-test row.
type Case struct {
	Name       string
	Key        bitcube.Block
	Plaintext  bitcube.Block
	Ciphertext bitcube.Block
}

// Load parses every row of a Cube96 KAT CSV from r, validating the header
// and each field's hex length.
func Load(r io.Reader) ([]Case, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 4

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("kat: reading header: %w", err)
	}
	if len(header) != 4 || header[0] != "name" || header[1] != "key" || header[2] != "plaintext" || header[3] != "ciphertext" {
		return nil, fmt.Errorf("kat: unexpected header %v, want %q", header, Header)
	}

	var cases []Case
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("kat: reading row: %w", err)
		}

		c := Case{Name: row[0]}
		if err := ParseBlock(row[1], &c.Key); err != nil {
			return nil, fmt.Errorf("row %q key: %w", row[0], err)
		}
		if err := ParseBlock(row[2], &c.Plaintext); err != nil {
			return nil, fmt.Errorf("row %q plaintext: %w", row[0], err)
		}
		if err := ParseBlock(row[3], &c.Ciphertext); err != nil {
			return nil, fmt.Errorf("row %q ciphertext: %w", row[0], err)
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// Write serializes cases as a Cube96 KAT CSV, lowercase hex, to w.
func Write(w io.Writer, cases []Case) error {
	if _, err := io.WriteString(w, Header+"\n"); err != nil {
		return err
	}
	for _, c := range cases {
		line := fmt.Sprintf("%s,%s,%s,%s\n", c.Name, hex.EncodeToString(c.Key[:]), hex.EncodeToString(c.Plaintext[:]), hex.EncodeToString(c.Ciphertext[:]))
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

// ParseBlock decodes a 24-hex-character field into out, wrapping
// ErrInvalidLength or ErrInvalidHex on malformed input.
func ParseBlock(field string, out *bitcube.Block) error {
	if len(field) != bitcube.BlockBytes*2 {
		return fmt.Errorf("%w: want %d hex characters, got %d", ErrInvalidLength, bitcube.BlockBytes*2, len(field))
	}
	decoded, err := hex.DecodeString(field)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	copy(out[:], decoded)
	return nil
}
