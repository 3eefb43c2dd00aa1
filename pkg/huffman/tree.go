package huffman

import "container/heap"

// Node is one node of the prefix tree. A leaf carries a symbol; an
// internal node carries the summed weight of its two children.
type Node struct {
	Symbol      rune
	Weight      uint64
	Left, Right *Node
}

// Leaf reports whether n has no children.
func (n *Node) Leaf() bool { return n.Left == nil && n.Right == nil }

type rankedNode struct {
	node *Node
	seq  int
}

// nodeHeap orders by weight, then by insertion sequence. Merged nodes
// get the next sequence number, so among equal weights the earliest
// inserted node is always extracted first.
type nodeHeap []rankedNode

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].node.Weight != h[j].node.Weight {
		return h[i].node.Weight < h[j].node.Weight
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(rankedNode)) }

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// BuildTree constructs the Huffman tree for t by repeatedly merging the
// two lowest-weight nodes: first extracted becomes the left child,
// second the right. Rebuilding from an identical table always yields a
// structurally identical tree.
//
// A single-symbol table produces a synthetic internal root with the lone
// leaf as its left child, so the symbol still gets a one-bit code.
// Returns nil for an empty table.
func BuildTree(t *FrequencyTable) *Node {
	if t == nil || t.Len() == 0 {
		return nil
	}

	h := make(nodeHeap, 0, t.Len())
	seq := 0
	for _, r := range t.order {
		h = append(h, rankedNode{node: &Node{Symbol: r, Weight: uint64(t.counts[r])}, seq: seq})
		seq++
	}
	heap.Init(&h)

	if h.Len() == 1 {
		leaf := heap.Pop(&h).(rankedNode).node
		return &Node{Weight: leaf.Weight, Left: leaf}
	}

	for h.Len() > 1 {
		left := heap.Pop(&h).(rankedNode).node
		right := heap.Pop(&h).(rankedNode).node
		heap.Push(&h, rankedNode{
			node: &Node{Weight: left.Weight + right.Weight, Left: left, Right: right},
			seq:  seq,
		})
		seq++
	}
	return heap.Pop(&h).(rankedNode).node
}
