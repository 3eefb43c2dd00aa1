// Package huffman implements a lossless text codec built on Huffman
// coding. Encode scans the full input, builds an optimal prefix-free
// code from the symbol frequencies, packs the coded bits, and wraps
// frequency table, bit count, and packed bytes into one self-describing
// artifact. Decode rebuilds the identical tree from the transmitted
// table and walks the bits back to the original text.
//
// All operations are pure synchronous functions; completed tables and
// trees are read-only and safe for concurrent reads.
package huffman

// EncodeResult is everything an encode produces. Artifact is the
// serialized container; the remaining fields are the read-only views a
// caller may inspect or display. Ratio is compressed size over original
// size, in bytes.
type EncodeResult struct {
	Artifact       []byte
	Table          *FrequencyTable
	Root           *Node
	Codes          CodeTable
	BitLength      uint32
	OriginalSize   int
	CompressedSize int
	Ratio          float64
}

// Encode compresses text into a self-contained artifact.
func Encode(text string) (*EncodeResult, error) {
	table, err := Analyze(text)
	if err != nil {
		return nil, err
	}
	root := BuildTree(table)
	codes := BuildCodes(root)

	packed, bitLen, err := EncodeBits(text, codes)
	if err != nil {
		return nil, err
	}
	artifact := Pack(table, bitLen, packed)

	return &EncodeResult{
		Artifact:       artifact,
		Table:          table,
		Root:           root,
		Codes:          codes,
		BitLength:      bitLen,
		OriginalSize:   len(text),
		CompressedSize: len(artifact),
		Ratio:          float64(len(artifact)) / float64(len(text)),
	}, nil
}

// Decode reverses Encode, reconstructing the original text exactly.
func Decode(artifact []byte) (string, error) {
	table, bitLen, packed, err := Unpack(artifact)
	if err != nil {
		return "", err
	}
	return DecodeBits(packed, BuildTree(table), bitLen)
}
