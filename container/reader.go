package container

import (
	"encoding/binary"
	"fmt"
)

// ParseOption configures Parse.
type ParseOption func(*parser)

// WithMaxDecodedSize caps the symbol count a header may declare.
// Zero (the default) means no cap. A hostile header cannot make the
// decoder allocate more than this many output bytes.
func WithMaxDecodedSize(max uint64) ParseOption {
	return func(p *parser) {
		p.maxDecoded = max
	}
}

type parser struct {
	maxDecoded uint64
}

// Parse validates and splits a container into its header fields, code
// table and payload. It returns *FormatError for any structural
// corruption it can detect; bit-level payload corruption is not
// detectable here.
func Parse(data []byte, opts ...ParseOption) (*Parsed, error) {
	var p parser
	for _, opt := range opts {
		opt(&p)
	}

	if len(data) < HeaderSize {
		return nil, &FormatError{Reason: fmt.Sprintf("truncated header: %d bytes, need %d", len(data), HeaderSize), Offset: len(data)}
	}

	offset := int(binary.BigEndian.Uint16(data[0:2]))
	count := binary.BigEndian.Uint64(data[2:10])

	if offset < HeaderSize {
		return nil, &FormatError{Reason: fmt.Sprintf("payload offset %d inside header", offset), Offset: 0}
	}
	if offset > len(data) {
		return nil, &FormatError{Reason: fmt.Sprintf("payload offset %d past end of input (%d bytes)", offset, len(data)), Offset: 0}
	}
	if p.maxDecoded != 0 && count > p.maxDecoded {
		return nil, &FormatError{Reason: fmt.Sprintf("declared symbol count %d exceeds limit %d", count, p.maxDecoded), Offset: 2}
	}

	entries, err := parseTable(data[HeaderSize:offset])
	if err != nil {
		return nil, err
	}

	payload := data[offset:]

	// Each symbol consumes at least one bit, so a payload shorter than
	// count bits can never decode fully. Catching it here keeps the
	// decoder from allocating for a count the payload cannot honor.
	if count > uint64(len(payload))*8 {
		return nil, &FormatError{Reason: fmt.Sprintf("payload of %d bytes too short for %d symbols", len(payload), count), Offset: offset}
	}

	return &Parsed{
		SymbolCount: count,
		Entries:     entries,
		Payload:     payload,
	}, nil
}

// parseTable walks the self-delimiting table entries.
func parseTable(table []byte) ([]Entry, error) {
	var entries []Entry
	var seen [256]bool

	pos := 0
	for pos < len(table) {
		at := HeaderSize + pos
		if len(table)-pos < 2 {
			return nil, &FormatError{Reason: "truncated table entry", Offset: at}
		}
		sym := table[pos]
		length := table[pos+1]
		if length == 0 {
			return nil, &FormatError{Reason: fmt.Sprintf("zero code length for symbol %#02x", sym), Offset: at + 1}
		}
		if length > MaxCodeLen {
			return nil, &FormatError{Reason: fmt.Sprintf("code length %d for symbol %#02x exceeds %d bits", length, sym, MaxCodeLen), Offset: at + 1}
		}
		if seen[sym] {
			return nil, &FormatError{Reason: fmt.Sprintf("duplicate table entry for symbol %#02x", sym), Offset: at}
		}
		seen[sym] = true

		nb := codeBytes(length)
		if len(table)-pos < 2+nb {
			return nil, &FormatError{Reason: fmt.Sprintf("truncated code bits for symbol %#02x", sym), Offset: at + 2}
		}

		var full uint64
		for i := 0; i < nb; i++ {
			full = full<<8 | uint64(table[pos+2+i])
		}
		// Code bits are left-aligned in the code bytes; right-align.
		bits := full >> (uint(nb)*8 - uint(length))

		entries = append(entries, Entry{Symbol: sym, Len: length, Bits: bits})
		pos += 2 + nb
	}

	return entries, nil
}
