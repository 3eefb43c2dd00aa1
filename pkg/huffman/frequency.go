package huffman

import "fmt"

// FrequencyTable counts how often each symbol occurs in an input.
// It remembers the order in which symbols first appeared: the tree
// builder breaks weight ties by that order, so preserving it is what
// lets the decoder rebuild the exact same tree from a transmitted table.
type FrequencyTable struct {
	counts map[rune]uint32
	order  []rune
}

// Analyze scans text and returns its frequency table.
func Analyze(text string) (*FrequencyTable, error) {
	if len(text) == 0 {
		return nil, fmt.Errorf("%w: nothing to encode", ErrEmptyInput)
	}
	t := &FrequencyTable{counts: make(map[rune]uint32)}
	for _, r := range text {
		if _, seen := t.counts[r]; !seen {
			t.order = append(t.order, r)
		}
		t.counts[r]++
	}
	return t, nil
}

// Count returns the recorded frequency of r, zero if absent.
func (t *FrequencyTable) Count(r rune) uint32 { return t.counts[r] }

// Len returns the number of distinct symbols.
func (t *FrequencyTable) Len() int { return len(t.order) }

// Symbols returns the distinct symbols in first-appearance order.
func (t *FrequencyTable) Symbols() []rune {
	out := make([]rune, len(t.order))
	copy(out, t.order)
	return out
}

// Total returns the sum of all counts, i.e. the input length in symbols.
func (t *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, c := range t.counts {
		sum += uint64(c)
	}
	return sum
}
