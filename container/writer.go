package container

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Writer serializes the container header and code table to an
// io.Writer. The bit-packed payload follows the header directly, so
// callers append it to the same writer after WriteHeader returns.
type Writer struct {
	w io.Writer
}

// NewWriter creates a container writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteHeader writes the two fixed header fields followed by the
// serialized code table. The payload-offset field is computed from the
// table size, so the payload must start at the very next byte written.
func (w *Writer) WriteHeader(entries []Entry, symbolCount uint64) error {
	offset := HeaderSize
	for _, e := range entries {
		offset += entrySize(e)
	}

	var hdr [HeaderSize]byte
	binary.BigEndian.PutUint16(hdr[0:2], uint16(offset))
	binary.BigEndian.PutUint64(hdr[2:10], symbolCount)
	if _, err := w.w.Write(hdr[:]); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, e := range entries {
		if err := w.writeEntry(e); err != nil {
			return err
		}
	}
	return nil
}

// entrySize returns the serialized byte size of a table entry.
func entrySize(e Entry) int {
	return 2 + codeBytes(e.Len)
}

// codeBytes returns ceil(n/8), the bytes needed to hold an n-bit code.
func codeBytes(n uint8) int {
	return (int(n) + 7) / 8
}

func (w *Writer) writeEntry(e Entry) error {
	if e.Len == 0 || e.Len > MaxCodeLen {
		return fmt.Errorf("write table entry for symbol %#02x: invalid code length %d", e.Symbol, e.Len)
	}

	nb := codeBytes(e.Len)
	buf := make([]byte, 2+nb)
	buf[0] = e.Symbol
	buf[1] = e.Len

	// Left-align the code bits in the code bytes, MSB first.
	shifted := e.Bits << (uint(nb)*8 - uint(e.Len))
	for i := 0; i < nb; i++ {
		buf[2+i] = byte(shifted >> (uint(nb-1-i) * 8))
	}

	if _, err := w.w.Write(buf); err != nil {
		return fmt.Errorf("write table entry: %w", err)
	}
	return nil
}
