// Package huff implements the .johnny Huffman codec.
//
// The codec is a whole-buffer batch transform: Compress scans the
// input once for symbol frequencies, builds a Huffman coding tree with
// deterministic tie-breaking, derives a prefix-free code table, and
// packs the input through it into a self-describing container
// (see package container for the byte layout). Decompress reverses
// the transform exactly.
//
// Properties:
//   - Lossless: Decompress(Compress(b)) == b for every byte buffer,
//     including the empty one.
//   - Deterministic: the same input always produces a byte-identical
//     container. Weight ties in the tree are broken by an insertion
//     sequence number, so the tree shape is reproducible across runs.
//   - Prefix-free: no codeword is a prefix of another, which makes the
//     concatenated bit stream unambiguous.
//
// A single-symbol alphabet cannot yield a code from the tree alone
// (one leaf, no edges), so the sole symbol is assigned the one-bit
// code 0 and the pipeline stays uniform.
//
// Everything is process-local: frequency table, tree and code table
// are built fresh per call and never shared. Peak memory is O(input)
// plus O(alphabet) for the tree and tables.
package huff
