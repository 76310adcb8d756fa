package huff

// countFreqs scans buf once and returns per-symbol occurrence counts.
// Symbols absent from buf have a zero count.
func countFreqs(buf []byte) *[256]uint64 {
	var freqs [256]uint64
	for _, b := range buf {
		freqs[b]++
	}
	return &freqs
}
