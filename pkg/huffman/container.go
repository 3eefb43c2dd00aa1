package huffman

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// Artifact layout:
//
//	0..4    frequency-table byte length (u32, big-endian)
//	4..8    bit length of the packed stream (u32, big-endian)
//	8..8+L  frequency table: (codepoint u32 BE, count u32 BE) per entry,
//	        in first-appearance order
//	8+L..   packed code bytes
//
// Fixed-width binary entries round-trip any symbol, whitespace and
// control characters included; there is no separator to collide with.
const (
	headerLen = 8
	entryLen  = 8
)

// Pack serializes a frequency table, bit count, and packed bytes into
// one self-contained artifact.
func Pack(table *FrequencyTable, bitLen uint32, packed []byte) []byte {
	tableLen := table.Len() * entryLen
	out := make([]byte, headerLen, headerLen+tableLen+len(packed))
	binary.BigEndian.PutUint32(out[0:4], uint32(tableLen))
	binary.BigEndian.PutUint32(out[4:8], bitLen)

	var entry [entryLen]byte
	for _, r := range table.order {
		binary.BigEndian.PutUint32(entry[0:4], uint32(r))
		binary.BigEndian.PutUint32(entry[4:8], table.counts[r])
		out = append(out, entry[:]...)
	}
	return append(out, packed...)
}

// Unpack parses an artifact back into its frequency table, bit length,
// and packed bytes. The packed region is returned as-is: whether it
// holds enough bits for the declared bit length is a property of the
// stream, reported by the decode walk, not of the container.
func Unpack(artifact []byte) (*FrequencyTable, uint32, []byte, error) {
	if len(artifact) < headerLen {
		return nil, 0, nil, fmt.Errorf("%w: %d bytes is shorter than the header", ErrMalformedContainer, len(artifact))
	}
	tableLen := int(binary.BigEndian.Uint32(artifact[0:4]))
	bitLen := binary.BigEndian.Uint32(artifact[4:8])

	if tableLen > len(artifact)-headerLen {
		return nil, 0, nil, fmt.Errorf("%w: frequency table length %d overruns %d-byte buffer", ErrMalformedContainer, tableLen, len(artifact))
	}
	if tableLen == 0 || tableLen%entryLen != 0 {
		return nil, 0, nil, fmt.Errorf("%w: frequency table length %d is not a positive multiple of %d", ErrMalformedContainer, tableLen, entryLen)
	}

	table := &FrequencyTable{counts: make(map[rune]uint32, tableLen/entryLen)}
	for off := headerLen; off < headerLen+tableLen; off += entryLen {
		r := rune(binary.BigEndian.Uint32(artifact[off : off+4]))
		count := binary.BigEndian.Uint32(artifact[off+4 : off+8])
		if !utf8.ValidRune(r) {
			return nil, 0, nil, fmt.Errorf("%w: invalid code point %#x", ErrMalformedContainer, uint32(r))
		}
		if count == 0 {
			return nil, 0, nil, fmt.Errorf("%w: zero count for %q", ErrMalformedContainer, r)
		}
		if _, dup := table.counts[r]; dup {
			return nil, 0, nil, fmt.Errorf("%w: duplicate symbol %q", ErrMalformedContainer, r)
		}
		table.counts[r] = count
		table.order = append(table.order, r)
	}
	return table, bitLen, artifact[headerLen+tableLen:], nil
}
