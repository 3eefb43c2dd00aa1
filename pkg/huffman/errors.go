package huffman

import "errors"

var (
	// ErrEmptyInput is returned when there are no symbols to encode.
	ErrEmptyInput = errors.New("empty input")
	// ErrUnknownSymbol is returned when the input contains a symbol
	// absent from the code table.
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrCorruptStream is returned when the packed bits do not align
	// with the tree transmitted alongside them.
	ErrCorruptStream = errors.New("corrupt bit stream")
	// ErrMalformedContainer is returned when an artifact's header or
	// frequency table cannot be parsed.
	ErrMalformedContainer = errors.New("malformed container")
)
