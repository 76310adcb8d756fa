// johnny - Huffman codec CLI for .johnny files
//
// Usage:
//
//	johnny compress [options] <file>     Compress <file> into <file>.johnny
//	johnny decompress [options] <file>   Restore the original from <file>.johnny
//	johnny version                       Print version info
//
// One input file produces one output artifact per execution. The whole
// input is read into memory, transformed, and written back out; see
// package huff for the codec itself.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/hufflab/johnny/huff"
)

const version = "1.0.0"

// johnnyExt is the extension of compressed containers.
const johnnyExt = ".johnny"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]

	printTree := false
	quiet := false
	outPath := ""
	fileArg := ""
	for _, arg := range os.Args[2:] {
		switch {
		case arg == "--print-tree":
			printTree = true
		case arg == "--quiet", arg == "-q":
			quiet = true
		case strings.HasPrefix(arg, "--out="):
			outPath = strings.TrimPrefix(arg, "--out=")
		default:
			if strings.HasPrefix(arg, "-") {
				fatal("unknown option: %s", arg)
			}
			fileArg = arg
		}
	}

	switch cmd {
	case "compress":
		cmdCompress(fileArg, outPath, printTree, quiet)
	case "decompress":
		cmdDecompress(fileArg, outPath, quiet)
	case "version", "-v", "--version":
		fmt.Printf("johnny %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `johnny - Huffman codec for .johnny files

Usage:
  johnny compress [options] <file>     Compress <file> into <file>.johnny
  johnny decompress [options] <file>   Restore the original from <file>.johnny
  johnny version                       Print version info

Options:
  --print-tree   Print the coding tree and code table to stderr
  --quiet, -q    Suppress progress output
  --out=PATH     Write the result to PATH instead of the derived name

The container records its own code table and the original byte count,
so decompression needs nothing but the .johnny file.

Examples:
  johnny compress notes.txt            # writes notes.txt.johnny
  johnny decompress notes.txt.johnny   # restores notes.txt
  johnny compress --print-tree data.bin
`)
}

func cmdCompress(path, outPath string, printTree, quiet bool) {
	if path == "" {
		fatal("compress: missing input file")
	}
	input, err := os.ReadFile(path)
	if err != nil {
		fatal("read input: %v", err)
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "compressing %s (%d bytes)\n", path, len(input))
	}
	if printTree {
		fmt.Fprintln(os.Stderr, "coding tree:")
		if err := huff.DumpTree(os.Stderr, input); err != nil {
			fatal("dump tree: %v", err)
		}
		fmt.Fprintln(os.Stderr, "code table:")
		if err := huff.DumpTable(os.Stderr, input); err != nil {
			fatal("dump table: %v", err)
		}
	}

	packed, err := huff.Compress(input)
	if err != nil {
		fatal("compress: %v", err)
	}

	if outPath == "" {
		outPath = path + johnnyExt
	}
	if err := os.WriteFile(outPath, packed, 0o644); err != nil {
		fatal("write output: %v", err)
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "wrote %s (%d -> %d bytes, %.1f%%)\n",
			outPath, len(input), len(packed), ratio(len(packed), len(input)))
	}
}

func cmdDecompress(path, outPath string, quiet bool) {
	if path == "" {
		fatal("decompress: missing input file")
	}
	if outPath == "" {
		if !strings.HasSuffix(path, johnnyExt) {
			fatal("decompress: %s does not end in %s (use --out=PATH to force)", path, johnnyExt)
		}
		outPath = strings.TrimSuffix(path, johnnyExt)
	}

	packed, err := os.ReadFile(path)
	if err != nil {
		fatal("read input: %v", err)
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "decompressing %s (%d bytes)\n", path, len(packed))
	}

	output, err := huff.Decompress(packed)
	if err != nil {
		fatal("decompress: %v", err)
	}

	if err := os.WriteFile(outPath, output, 0o644); err != nil {
		fatal("write output: %v", err)
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "wrote %s (%d -> %d bytes)\n", outPath, len(packed), len(output))
	}
}

// ratio returns out as a percentage of in, guarding the empty input.
func ratio(out, in int) float64 {
	if in == 0 {
		return 100
	}
	return 100 * float64(out) / float64(in)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "johnny: "+format+"\n", args...)
	os.Exit(1)
}
