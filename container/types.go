// Package container defines the on-disk layout of .johnny archives.
//
// A container is the single persisted artifact of a compress run and
// carries everything a decoder needs:
//
//	[0,2)             uint16, big-endian: byte offset where the
//	                  bit-packed payload begins
//	[2,10)            uint64, big-endian: number of symbols (bytes)
//	                  in the original message
//	[10,offset)       serialized code table
//	[offset,EOF)      bit-packed payload, MSB first, zero-padded to
//	                  a byte boundary
//
// Each code-table entry is self-delimiting: one byte symbol value, one
// byte code bit-length (at least 1), then ceil(len/8) bytes holding the
// code bits MSB first, left-aligned, zero-padded.
//
// There is no checksum. Bit flips inside the payload are undetectable
// and decode to silently wrong output; only structural corruption
// (truncated header, offset out of range, malformed table, payload too
// short for the declared symbol count) is detected and reported as
// *FormatError.
package container

import "fmt"

// HeaderSize is the fixed byte size of the two header fields.
const HeaderSize = 10

// MaxCodeLen is the longest representable codeword in bits. Forcing a
// deeper Huffman tree requires Fibonacci-growth frequencies whose sum
// exceeds the 64-bit symbol count, so the bound is unreachable for
// any input that fits in memory.
const MaxCodeLen = 64

// Entry is one serialized code-table row: a symbol value and its
// codeword, right-aligned in Bits with Len significant bits.
type Entry struct {
	Symbol byte
	Len    uint8
	Bits   uint64
}

// Parsed holds the decoded header fields, code table and payload of a
// container. Payload aliases the input slice; it is not copied.
type Parsed struct {
	SymbolCount uint64
	Entries     []Entry
	Payload     []byte
}

// FormatError reports a structurally malformed container. Offset is
// the byte position where parsing failed, or -1 when no single
// position applies.
type FormatError struct {
	Reason string
	Offset int
}

func (e *FormatError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("johnny: %s at offset %d", e.Reason, e.Offset)
	}
	return fmt.Sprintf("johnny: %s", e.Reason)
}
