package main

import (
	"flag"
	"fmt"
	"os"

	"huffcodec/pkg/huffman"
)

func main() {
	flag.Parse()

	if flag.NArg() != 3 {
		fmt.Printf("usage: huffc encode|decode <archive> <file>\n")
		return
	}

	action := flag.Arg(0)
	archive := flag.Arg(1)
	file := flag.Arg(2)

	switch action {
	case "encode":
		text, err := os.ReadFile(file)
		if err != nil {
			fmt.Printf("error reading file: %s\n", err)
			return
		}
		res, err := huffman.Encode(string(text))
		if err != nil {
			fmt.Printf("error encoding: %s\n", err)
			return
		}
		if err := os.WriteFile(archive, res.Artifact, 0644); err != nil {
			fmt.Printf("error writing archive: %s\n", err)
			return
		}
		fmt.Printf("%d -> %d bytes (ratio %.3f, %d code bits)\n",
			res.OriginalSize, res.CompressedSize, res.Ratio, res.BitLength)
	case "decode":
		blob, err := os.ReadFile(archive)
		if err != nil {
			fmt.Printf("error reading archive: %s\n", err)
			return
		}
		text, err := huffman.Decode(blob)
		if err != nil {
			fmt.Printf("error decoding: %s\n", err)
			return
		}
		if err := os.WriteFile(file, []byte(text), 0644); err != nil {
			fmt.Printf("error writing file: %s\n", err)
			return
		}
		fmt.Printf("restored %d bytes\n", len(text))
	default:
		fmt.Printf("unexpected argument: %q, expected \"encode\" or \"decode\"\n", action)
	}
}
