package huff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDumpTree(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, DumpTree(&sb, []byte("aaab")))
	out := sb.String()

	require.Contains(t, out, "(4)")
	require.Contains(t, out, "'a' x3  code=1")
	require.Contains(t, out, "'b' x1  code=0")
}

func TestDumpTreeSingleSymbol(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, DumpTree(&sb, []byte("zzz")))
	require.Equal(t, "'z' x3  code=0\n", sb.String())
}

func TestDumpTreeEmpty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, DumpTree(&sb, nil))
	require.Equal(t, "(empty alphabet)\n", sb.String())
}

func TestDumpTable(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, DumpTable(&sb, []byte("aaab\n")))
	out := sb.String()

	// Ascending symbol order: newline first, then 'a', then 'b'.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "0x0a"))
	require.True(t, strings.HasPrefix(lines[1], "'a'"))
	require.True(t, strings.HasPrefix(lines[2], "'b'"))
}
