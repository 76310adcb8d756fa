package huff

import (
	"fmt"

	"github.com/hufflab/johnny/container"
)

// bitcode is one Huffman codeword: the low n bits of bits, most
// significant code bit first.
type bitcode struct {
	bits uint64
	n    uint8
}

// codeTable maps symbols to codewords. Only symbols present in the
// source alphabet have an entry.
type codeTable struct {
	codes   [256]bitcode
	present [256]bool
	size    int
}

// buildCodeTable derives the encoding table from the coding tree by
// depth-first traversal: a left edge appends bit 0, a right edge
// bit 1. A lone leaf (single-symbol alphabet) gets the synthesized
// one-bit code 0.
func buildCodeTable(root *node) (*codeTable, error) {
	t := &codeTable{}
	if root == nil {
		return t, nil
	}
	if root.leaf {
		t.set(root.symbol, bitcode{bits: 0, n: 1})
		return t, nil
	}
	if err := t.walk(root, 0, 0); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *codeTable) walk(n *node, bits uint64, depth uint8) error {
	if n.leaf {
		t.set(n.symbol, bitcode{bits: bits, n: depth})
		return nil
	}
	if depth == container.MaxCodeLen {
		return fmt.Errorf("huff: coding tree deeper than %d bits", container.MaxCodeLen)
	}
	if err := t.walk(n.left, bits<<1, depth+1); err != nil {
		return err
	}
	return t.walk(n.right, bits<<1|1, depth+1)
}

func (t *codeTable) set(sym byte, c bitcode) {
	t.codes[sym] = c
	t.present[sym] = true
	t.size++
}

// entries lists the table rows in ascending symbol order, the order
// they are serialized in.
func (t *codeTable) entries() []container.Entry {
	entries := make([]container.Entry, 0, t.size)
	for sym := 0; sym < 256; sym++ {
		if !t.present[sym] {
			continue
		}
		c := t.codes[sym]
		entries = append(entries, container.Entry{Symbol: byte(sym), Len: c.n, Bits: c.bits})
	}
	return entries
}
