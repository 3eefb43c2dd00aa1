package huffman

// Code is one symbol's bit string: the low Len bits of Bits, most
// significant first.
type Code struct {
	Bits uint64
	Len  uint8
}

// String renders the code as a string of '0' and '1' characters.
func (c Code) String() string {
	out := make([]byte, c.Len)
	for i := uint8(0); i < c.Len; i++ {
		if c.Bits&(1<<(c.Len-1-i)) != 0 {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}

// CodeTable maps each symbol to its root-to-leaf path code.
type CodeTable map[rune]Code

// BuildCodes walks the tree and assigns every leaf's symbol the path
// from the root: left appends 0, right appends 1. A nil root yields an
// empty table.
func BuildCodes(root *Node) CodeTable {
	codes := make(CodeTable)
	if root == nil {
		return codes
	}
	assignCodes(root, 0, 0, codes)
	return codes
}

func assignCodes(n *Node, bits uint64, length uint8, codes CodeTable) {
	if n.Leaf() {
		codes[n.Symbol] = Code{Bits: bits, Len: length}
		return
	}
	if n.Left != nil {
		assignCodes(n.Left, bits<<1, length+1, codes)
	}
	if n.Right != nil {
		assignCodes(n.Right, bits<<1|1, length+1, codes)
	}
}
