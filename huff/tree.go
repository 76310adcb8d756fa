package huff

import "container/heap"

// node is one element of the Huffman coding tree. A leaf carries a
// symbol; an internal node carries exactly two children and the sum of
// their weights. seq is the order the node entered the queue and
// breaks weight ties, so the tree shape is the same on every run.
type node struct {
	weight uint64
	seq    int
	symbol byte
	leaf   bool
	left   *node
	right  *node
}

// buildTree constructs the coding tree for the given frequencies by
// repeatedly merging the two lowest-weight nodes. The first node
// popped becomes the left child. Returns nil for an empty alphabet.
func buildTree(freqs *[256]uint64) *node {
	h := make(nodeHeap, 0, 256)
	seq := 0
	for sym := 0; sym < 256; sym++ {
		if freqs[sym] == 0 {
			continue
		}
		h = append(h, &node{weight: freqs[sym], seq: seq, symbol: byte(sym), leaf: true})
		seq++
	}
	if len(h) == 0 {
		return nil
	}

	heap.Init(&h)
	for len(h) > 1 {
		left := heap.Pop(&h).(*node)
		right := heap.Pop(&h).(*node)
		heap.Push(&h, &node{
			weight: left.weight + right.weight,
			seq:    seq,
			left:   left,
			right:  right,
		})
		seq++
	}
	return h[0]
}

type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *nodeHeap) Push(e any) {
	*h = append(*h, e.(*node))
}

func (h *nodeHeap) Pop() any {
	n := len(*h) - 1
	v := (*h)[n]
	*h = (*h)[:n]
	return v
}
