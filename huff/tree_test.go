package huff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildTreeEmpty(t *testing.T) {
	var freqs [256]uint64
	require.Nil(t, buildTree(&freqs))
}

func TestBuildTreeSingleLeaf(t *testing.T) {
	var freqs [256]uint64
	freqs['k'] = 9
	root := buildTree(&freqs)
	require.NotNil(t, root)
	require.True(t, root.leaf)
	require.Equal(t, byte('k'), root.symbol)
	require.Equal(t, uint64(9), root.weight)
}

func TestBuildTreeWeights(t *testing.T) {
	// aaab: 'b' (weight 1) is popped first and becomes the left child.
	freqs := countFreqs([]byte("aaab"))
	root := buildTree(freqs)
	require.NotNil(t, root)
	require.False(t, root.leaf)
	require.Equal(t, uint64(4), root.weight)
	require.Equal(t, byte('b'), root.left.symbol)
	require.Equal(t, byte('a'), root.right.symbol)
}

func TestBuildTreeTieBreaking(t *testing.T) {
	// All weights equal: ties resolve by insertion order, which is
	// ascending symbol order for leaves. The shape must be identical
	// on every build.
	freqs := countFreqs([]byte("dcba"))

	first := buildTree(freqs)
	second := buildTree(freqs)
	require.Equal(t, flatten(first), flatten(second))

	// With four equal weights the tree is balanced and the first two
	// leaves merged are the two lowest symbols.
	require.False(t, first.leaf)
	require.Equal(t, byte('a'), first.left.left.symbol)
	require.Equal(t, byte('b'), first.left.right.symbol)
	require.Equal(t, byte('c'), first.right.left.symbol)
	require.Equal(t, byte('d'), first.right.right.symbol)
}

// flatten renders the tree shape as a preorder walk for comparison.
func flatten(n *node) []uint64 {
	if n == nil {
		return nil
	}
	if n.leaf {
		return []uint64{n.weight, uint64(n.symbol)}
	}
	out := []uint64{n.weight}
	out = append(out, flatten(n.left)...)
	return append(out, flatten(n.right)...)
}

func TestInternalNodesHaveTwoChildren(t *testing.T) {
	root := buildTree(countFreqs([]byte("abracadabra")))
	var check func(n *node)
	check = func(n *node) {
		if n.leaf {
			require.Nil(t, n.left)
			require.Nil(t, n.right)
			return
		}
		require.NotNil(t, n.left)
		require.NotNil(t, n.right)
		require.Equal(t, n.weight, n.left.weight+n.right.weight)
		check(n.left)
		check(n.right)
	}
	check(root)
}
