package huff

import (
	"fmt"
	"io"
	"strconv"
)

// DumpTree writes a human-readable rendering of the Huffman coding
// tree built for input: internal nodes show their combined weight,
// leaves their symbol, count and codeword. Diagnostic only; the
// rendering is not part of the container format.
func DumpTree(w io.Writer, input []byte) error {
	root := buildTree(countFreqs(input))
	if root == nil {
		_, err := fmt.Fprintln(w, "(empty alphabet)")
		return err
	}
	if root.leaf {
		// Single-symbol alphabet: the codeword is synthesized.
		_, err := fmt.Fprintf(w, "%s x%d  code=0\n", symLabel(root.symbol), root.weight)
		return err
	}
	return dumpNode(w, root, "", "")
}

func dumpNode(w io.Writer, n *node, indent, code string) error {
	if n.leaf {
		_, err := fmt.Fprintf(w, "%s%s x%d  code=%s\n", indent, symLabel(n.symbol), n.weight, code)
		return err
	}
	if _, err := fmt.Fprintf(w, "%s(%d)\n", indent, n.weight); err != nil {
		return err
	}
	if err := dumpNode(w, n.left, indent+"  ", code+"0"); err != nil {
		return err
	}
	return dumpNode(w, n.right, indent+"  ", code+"1")
}

// DumpTable writes the symbol-to-codeword table built for input, one
// line per symbol in ascending symbol order.
func DumpTable(w io.Writer, input []byte) error {
	freqs := countFreqs(input)
	table, err := buildCodeTable(buildTree(freqs))
	if err != nil {
		return err
	}
	for sym := 0; sym < 256; sym++ {
		if !table.present[sym] {
			continue
		}
		c := table.codes[sym]
		if _, err := fmt.Fprintf(w, "%-6s x%-8d %s\n", symLabel(byte(sym)), freqs[sym], codeString(c)); err != nil {
			return err
		}
	}
	return nil
}

// symLabel renders a symbol as a quoted character when printable,
// hex otherwise.
func symLabel(sym byte) string {
	if sym >= 0x20 && sym < 0x7f {
		return strconv.QuoteRune(rune(sym))
	}
	return fmt.Sprintf("0x%02x", sym)
}

// codeString renders a codeword as its bit string, MSB first.
func codeString(c bitcode) string {
	buf := make([]byte, c.n)
	for i := range buf {
		buf[i] = '0' + byte(c.bits>>(c.n-1-uint8(i))&1)
	}
	return string(buf)
}
