package huff

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

// TestCompressionSavings reports achieved ratios against a zstd
// baseline. Huffman coding exploits only symbol skew, so zstd (which
// also models repetition) is expected to win on structured text;
// byte-level entropy coding should still beat the raw size there and
// roughly break even on uniform random data.
func TestCompressionSavings(t *testing.T) {
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()

	rng := rand.New(rand.NewSource(42))
	random := make([]byte, 16384)
	for i := range random {
		random[i] = byte(rng.Intn(256))
	}

	english := []byte(strings.Repeat(
		"the quick brown fox jumps over the lazy dog and the dog does not mind at all ", 200))

	skewed := bytes.Repeat([]byte{0x00}, 12000)
	skewed = append(skewed, bytes.Repeat([]byte{0x01, 0x02}, 1000)...)

	for _, tc := range []struct {
		name  string
		input []byte
	}{
		{"english text", english},
		{"skewed bytes", skewed},
		{"uniform random", random},
	} {
		t.Run(tc.name, func(t *testing.T) {
			packed, err := Compress(tc.input)
			require.NoError(t, err)

			got, err := Decompress(packed)
			require.NoError(t, err)
			require.Equal(t, tc.input, got)

			zpacked := enc.EncodeAll(tc.input, nil)

			t.Logf("original: %7d bytes", len(tc.input))
			t.Logf("huffman:  %7d bytes (%5.1f%% of original)", len(packed),
				100*float64(len(packed))/float64(len(tc.input)))
			t.Logf("zstd:     %7d bytes (%5.1f%% of original)", len(zpacked),
				100*float64(len(zpacked))/float64(len(tc.input)))
		})
	}
}

func BenchmarkCompress(b *testing.B) {
	input := []byte(strings.Repeat(
		"the quick brown fox jumps over the lazy dog ", 500))
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Compress(input); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecompress(b *testing.B) {
	input := []byte(strings.Repeat(
		"the quick brown fox jumps over the lazy dog ", 500))
	packed, err := Compress(input)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decompress(packed); err != nil {
			b.Fatal(err)
		}
	}
}
