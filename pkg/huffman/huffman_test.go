package huffman_test

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"huffcodec/pkg/huffman"
)

func mustEncode(t *testing.T, text string) *huffman.EncodeResult {
	t.Helper()
	res, err := huffman.Encode(text)
	if err != nil {
		t.Fatalf("Encode(%q): %v", text, err)
	}
	return res
}

func roundTrip(t *testing.T, text string) {
	t.Helper()
	res := mustEncode(t, text)
	got, err := huffman.Decode(res.Artifact)
	if err != nil {
		t.Fatalf("Decode after Encode(%q): %v", text, err)
	}
	if got != text {
		t.Errorf("round trip of %q: got %q", text, got)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"abracadabra",
		"the quick brown fox jumped over the lazy dog",
		"a",
		"ab",
		"  \t\n  \n\t",
		"héllo wörld — ünïcode ☃ text\n",
		"mississippi mississippi mississippi",
		strings.Repeat("entropy", 100),
		"\x00\x01\x02",
	}
	for _, in := range inputs {
		roundTrip(t, in)
	}
}

func TestEmptyInputRejected(t *testing.T) {
	if _, err := huffman.Encode(""); !errors.Is(err, huffman.ErrEmptyInput) {
		t.Errorf("Encode(\"\") = %v, want ErrEmptyInput", err)
	}
	if _, err := huffman.Analyze(""); !errors.Is(err, huffman.ErrEmptyInput) {
		t.Errorf("Analyze(\"\") = %v, want ErrEmptyInput", err)
	}
}

func TestAbracadabraFrequencies(t *testing.T) {
	table, err := huffman.Analyze("abracadabra")
	if err != nil {
		t.Fatal(err)
	}
	want := map[rune]uint32{'a': 5, 'b': 2, 'r': 2, 'c': 1, 'd': 1}
	if table.Len() != len(want) {
		t.Fatalf("distinct symbols = %d, want %d", table.Len(), len(want))
	}
	for r, n := range want {
		if got := table.Count(r); got != n {
			t.Errorf("Count(%q) = %d, want %d", r, got, n)
		}
	}
	if got := table.Total(); got != 11 {
		t.Errorf("Total() = %d, want 11", got)
	}
	if got := table.Symbols(); string(got) != "abrcd" {
		t.Errorf("Symbols() = %q, want first-appearance order \"abrcd\"", string(got))
	}
}

func TestSizeAccounting(t *testing.T) {
	res := mustEncode(t, "abracadabra")

	var wantBits uint32
	for _, r := range res.Table.Symbols() {
		wantBits += res.Table.Count(r) * uint32(res.Codes[r].Len)
	}
	if res.BitLength != wantBits {
		t.Errorf("BitLength = %d, want sum freq×len = %d", res.BitLength, wantBits)
	}

	_, bitLen, packed, err := huffman.Unpack(res.Artifact)
	if err != nil {
		t.Fatal(err)
	}
	if bitLen != res.BitLength {
		t.Errorf("container bitLength = %d, want %d", bitLen, res.BitLength)
	}
	if want := (int(bitLen) + 7) / 8; len(packed) != want {
		t.Errorf("packed length = %d bytes, want ceil(%d/8) = %d", len(packed), bitLen, want)
	}
	if res.CompressedSize != len(res.Artifact) {
		t.Errorf("CompressedSize = %d, want %d", res.CompressedSize, len(res.Artifact))
	}
}

func TestPrefixFreeness(t *testing.T) {
	for _, in := range []string{"abracadabra", "the quick brown fox", strings.Repeat("ab", 3) + "cdefg"} {
		res := mustEncode(t, in)
		codes := make([]string, 0, len(res.Codes))
		for _, c := range res.Codes {
			if c.Len == 0 {
				t.Errorf("input %q: empty code assigned", in)
			}
			codes = append(codes, c.String())
		}
		for i, a := range codes {
			for j, b := range codes {
				if i != j && strings.HasPrefix(b, a) {
					t.Errorf("input %q: code %s is a prefix of %s", in, a, b)
				}
			}
		}
	}
}

func TestDeterministicRebuild(t *testing.T) {
	table, err := huffman.Analyze("deterministic deterministic trees")
	if err != nil {
		t.Fatal(err)
	}
	first := huffman.BuildCodes(huffman.BuildTree(table))
	second := huffman.BuildCodes(huffman.BuildTree(table))
	if len(first) != len(second) {
		t.Fatalf("code table sizes differ: %d vs %d", len(first), len(second))
	}
	for r, c := range first {
		if second[r] != c {
			t.Errorf("code for %q differs between builds: %s vs %s", r, c, second[r])
		}
	}
}

func TestIdempotentCodeGeneration(t *testing.T) {
	root := huffman.BuildTree(mustEncode(t, "abracadabra").Table)
	first := huffman.BuildCodes(root)
	second := huffman.BuildCodes(root)
	for r, c := range first {
		if second[r] != c {
			t.Errorf("code for %q changed on second generation: %s vs %s", r, c, second[r])
		}
	}
}

func TestSingleSymbolDegenerate(t *testing.T) {
	res := mustEncode(t, "aaaa")
	if got := res.Codes['a'].String(); got != "0" {
		t.Errorf("code for sole symbol = %q, want \"0\"", got)
	}
	if res.BitLength != 4 {
		t.Errorf("BitLength = %d, want 4", res.BitLength)
	}
	got, err := huffman.Decode(res.Artifact)
	if err != nil {
		t.Fatal(err)
	}
	if got != "aaaa" {
		t.Errorf("decoded %q, want \"aaaa\"", got)
	}
}

func TestUnknownSymbol(t *testing.T) {
	res := mustEncode(t, "aabb")
	if _, _, err := huffman.EncodeBits("aacb", res.Codes); !errors.Is(err, huffman.ErrUnknownSymbol) {
		t.Errorf("EncodeBits with uncovered symbol = %v, want ErrUnknownSymbol", err)
	}
}

func TestTruncatedPackedBytes(t *testing.T) {
	res := mustEncode(t, "abracadabra")
	truncated := res.Artifact[:len(res.Artifact)-1]
	if _, err := huffman.Decode(truncated); !errors.Is(err, huffman.ErrCorruptStream) {
		t.Errorf("Decode(truncated) = %v, want ErrCorruptStream", err)
	}
}

func TestMisalignedBitCount(t *testing.T) {
	res := mustEncode(t, "abracadabra")
	// 21 bits cuts into the final "r" code, leaving the walk mid-tree.
	tampered := append([]byte(nil), res.Artifact...)
	binary.BigEndian.PutUint32(tampered[4:8], 21)
	if _, err := huffman.Decode(tampered); !errors.Is(err, huffman.ErrCorruptStream) {
		t.Errorf("Decode with misaligned bit count = %v, want ErrCorruptStream", err)
	}
}

func TestMalformedHeader(t *testing.T) {
	res := mustEncode(t, "abracadabra")

	oversize := append([]byte(nil), res.Artifact...)
	binary.BigEndian.PutUint32(oversize[0:4], uint32(len(oversize)*2))
	if _, err := huffman.Decode(oversize); !errors.Is(err, huffman.ErrMalformedContainer) {
		t.Errorf("Decode with oversized table length = %v, want ErrMalformedContainer", err)
	}

	if _, err := huffman.Decode([]byte{0, 1, 2}); !errors.Is(err, huffman.ErrMalformedContainer) {
		t.Errorf("Decode(short buffer) = %v, want ErrMalformedContainer", err)
	}

	ragged := append([]byte(nil), res.Artifact...)
	binary.BigEndian.PutUint32(ragged[0:4], 12)
	if _, err := huffman.Decode(ragged); !errors.Is(err, huffman.ErrMalformedContainer) {
		t.Errorf("Decode with ragged table length = %v, want ErrMalformedContainer", err)
	}
}

func TestContainerRejectsBadEntries(t *testing.T) {
	res := mustEncode(t, "ab")

	zeroCount := append([]byte(nil), res.Artifact...)
	binary.BigEndian.PutUint32(zeroCount[12:16], 0)
	if _, _, _, err := huffman.Unpack(zeroCount); !errors.Is(err, huffman.ErrMalformedContainer) {
		t.Errorf("Unpack with zero count = %v, want ErrMalformedContainer", err)
	}

	dup := append([]byte(nil), res.Artifact...)
	copy(dup[16:24], dup[8:16]) // second entry repeats the first symbol
	if _, _, _, err := huffman.Unpack(dup); !errors.Is(err, huffman.ErrMalformedContainer) {
		t.Errorf("Unpack with duplicate symbol = %v, want ErrMalformedContainer", err)
	}
}

func TestWhitespaceSymbolsSurviveContainer(t *testing.T) {
	res := mustEncode(t, " \t\n\t ")
	table, _, _, err := huffman.Unpack(res.Artifact)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range []rune{' ', '\t', '\n'} {
		if table.Count(r) != res.Table.Count(r) {
			t.Errorf("count for %q = %d after round trip, want %d", r, table.Count(r), res.Table.Count(r))
		}
	}
	if string(table.Symbols()) != string(res.Table.Symbols()) {
		t.Errorf("symbol order changed across the container: %q vs %q", string(table.Symbols()), string(res.Table.Symbols()))
	}
}

func TestCodeString(t *testing.T) {
	cases := []struct {
		code huffman.Code
		want string
	}{
		{huffman.Code{Bits: 0, Len: 1}, "0"},
		{huffman.Code{Bits: 1, Len: 1}, "1"},
		{huffman.Code{Bits: 0b101, Len: 3}, "101"},
		{huffman.Code{Bits: 0b0010, Len: 4}, "0010"},
	}
	for _, c := range cases {
		if got := c.code.String(); got != c.want {
			t.Errorf("Code{%b,%d}.String() = %q, want %q", c.code.Bits, c.code.Len, got, c.want)
		}
	}
}
