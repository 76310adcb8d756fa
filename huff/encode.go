package huff

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"

	"github.com/hufflab/johnny/container"
)

// Compress encodes input into a self-describing .johnny container.
// The empty input is valid and yields the minimal 10-byte container.
func Compress(input []byte) ([]byte, error) {
	freqs := countFreqs(input)
	table, err := buildCodeTable(buildTree(freqs))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	cw := container.NewWriter(&buf)
	if err := cw.WriteHeader(table.entries(), uint64(len(input))); err != nil {
		return nil, err
	}

	// Pack the codewords MSB first; Close zero-pads the last byte.
	// The pad bits are never consumed at decode time because decoding
	// stops at the recorded symbol count.
	bw := bitio.NewWriter(&buf)
	for _, b := range input {
		c := table.codes[b]
		if err := bw.WriteBits(c.bits, c.n); err != nil {
			return nil, fmt.Errorf("pack payload: %w", err)
		}
	}
	if err := bw.Close(); err != nil {
		return nil, fmt.Errorf("flush payload: %w", err)
	}

	return buf.Bytes(), nil
}
