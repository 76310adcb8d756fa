package huff

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"

	"github.com/hufflab/johnny/container"
)

// trieNode is one node of the decode trie rebuilt from a serialized
// code table. Bit 0 descends into children[0], bit 1 into children[1].
type trieNode struct {
	children [2]*trieNode
	symbol   byte
	leaf     bool
}

// buildTrie rebuilds the decode structure from table entries. The
// entries must form a prefix-free code; any collision is reported as
// a *container.FormatError.
func buildTrie(entries []container.Entry) (*trieNode, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	root := &trieNode{}
	for _, e := range entries {
		cur := root
		for i := int(e.Len) - 1; i >= 0; i-- {
			if cur.leaf {
				return nil, &container.FormatError{
					Reason: fmt.Sprintf("code table is not prefix-free: symbol %#02x descends through a codeword", e.Symbol),
					Offset: -1,
				}
			}
			bit := (e.Bits >> uint(i)) & 1
			if cur.children[bit] == nil {
				cur.children[bit] = &trieNode{}
			}
			cur = cur.children[bit]
		}
		if cur.leaf || cur.children[0] != nil || cur.children[1] != nil {
			return nil, &container.FormatError{
				Reason: fmt.Sprintf("code table is not prefix-free: codeword for symbol %#02x collides", e.Symbol),
				Offset: -1,
			}
		}
		cur.symbol = e.Symbol
		cur.leaf = true
	}
	return root, nil
}

// Decompress decodes a .johnny container produced by Compress and
// returns the original byte sequence. Structural corruption is
// reported as *container.FormatError; bit flips inside the payload are
// undetectable and yield wrong output silently.
func Decompress(data []byte) ([]byte, error) {
	parsed, err := container.Parse(data)
	if err != nil {
		return nil, err
	}
	if parsed.SymbolCount == 0 {
		return []byte{}, nil
	}

	trie, err := buildTrie(parsed.Entries)
	if err != nil {
		return nil, err
	}
	if trie == nil {
		return nil, &container.FormatError{
			Reason: fmt.Sprintf("symbol count %d with empty code table", parsed.SymbolCount),
			Offset: container.HeaderSize,
		}
	}

	out := make([]byte, 0, parsed.SymbolCount)
	br := bitio.NewReader(bytes.NewReader(parsed.Payload))
	cur := trie
	for uint64(len(out)) < parsed.SymbolCount {
		bit, err := br.ReadBool()
		if err != nil {
			return nil, &container.FormatError{
				Reason: fmt.Sprintf("bit stream exhausted after %d of %d symbols", len(out), parsed.SymbolCount),
				Offset: len(data),
			}
		}
		if bit {
			cur = cur.children[1]
		} else {
			cur = cur.children[0]
		}
		if cur == nil {
			// Only reachable for the synthesized single-symbol code,
			// whose trie has one edge.
			return nil, &container.FormatError{
				Reason: fmt.Sprintf("invalid codeword in payload after %d of %d symbols", len(out), parsed.SymbolCount),
				Offset: len(data),
			}
		}
		if cur.leaf {
			out = append(out, cur.symbol)
			cur = trie
		}
	}
	return out, nil
}
