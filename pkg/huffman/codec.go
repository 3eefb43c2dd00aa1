package huffman

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/icza/bitio"
)

// EncodeBits packs the concatenated codes of text's symbols, in input
// order, MSB-first. It returns the packed bytes and the exact number of
// meaningful bits; the final byte is zero-padded.
func EncodeBits(text string, codes CodeTable) ([]byte, uint32, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	var bitLen uint32
	for _, r := range text {
		c, ok := codes[r]
		if !ok {
			return nil, 0, fmt.Errorf("%w: %q has no code", ErrUnknownSymbol, r)
		}
		if err := w.WriteBits(c.Bits, c.Len); err != nil {
			return nil, 0, err
		}
		bitLen += uint32(c.Len)
	}
	if err := w.Close(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), bitLen, nil
}

// DecodeBits walks the tree over exactly bitLen bits of packed: left on
// 0, right on 1, emitting a symbol and resetting to the root at each
// leaf. Padding past bitLen is never inspected; a zero pad bit is
// indistinguishable from a real 0, so termination is by count alone.
func DecodeBits(packed []byte, root *Node, bitLen uint32) (string, error) {
	if root == nil {
		return "", fmt.Errorf("%w: no tree to walk", ErrCorruptStream)
	}

	r := bitio.NewReader(bytes.NewReader(packed))
	var sb strings.Builder
	n := root
	for i := uint32(0); i < bitLen; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return "", fmt.Errorf("%w: packed bytes end at bit %d of %d", ErrCorruptStream, i, bitLen)
		}
		if bit {
			n = n.Right
		} else {
			n = n.Left
		}
		if n == nil {
			return "", fmt.Errorf("%w: walk fell off the tree at bit %d", ErrCorruptStream, i)
		}
		if n.Leaf() {
			sb.WriteRune(n.Symbol)
			n = root
		}
	}
	if n != root {
		return "", fmt.Errorf("%w: %d bits end mid-code", ErrCorruptStream, bitLen)
	}
	return sb.String(), nil
}
