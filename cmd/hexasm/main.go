// Copyright 2026 The Hex Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command hexasm assembles HEX source into the bytecode the hexsim
// command executes.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/hexsys/hex/asm"
)

func usage() {
	fmt.Fprintf(os.Stderr, "HEX assembler\n\n")
	fmt.Fprintf(os.Stderr, "Usage: %s [options] file\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Positional arguments:\n")
	fmt.Fprintf(os.Stderr, "  file              A source file to assemble\n\n")
	fmt.Fprintf(os.Stderr, "Optional arguments:\n")
	fmt.Fprintf(os.Stderr, "  -h, --help        Display this message\n")
	fmt.Fprintf(os.Stderr, "  --tokens          Tokenise the input only\n")
	fmt.Fprintf(os.Stderr, "  --tree            Display the resolved directive listing only\n")
	fmt.Fprintf(os.Stderr, "  -o, --output file Specify a file for binary output (default a.out)\n")
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func main() {
	var (
		help    bool
		tokens  bool
		tree    bool
		outFile string
	)
	flag.BoolVar(&help, "h", false, "")
	flag.BoolVar(&help, "help", false, "")
	flag.BoolVar(&tokens, "tokens", false, "")
	flag.BoolVar(&tree, "tree", false, "")
	flag.StringVar(&outFile, "o", "a.out", "")
	flag.StringVar(&outFile, "output", "a.out", "")
	flag.Usage = usage
	flag.Parse()

	if help {
		usage()
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}
	if len(args) > 1 {
		fatal(fmt.Errorf("cannot specify more than one file"))
	}
	fileName := args[0]

	f, err := os.Open(fileName)
	if err != nil {
		fatal(err)
	}
	defer f.Close()

	if tokens && !tree {
		if err := asm.PrintTokens(f, os.Stdout); err != nil {
			fatal(err)
		}
		return
	}

	prog, err := asm.Parse(f)
	if err != nil {
		fatal(err)
	}
	if _, err := prog.Resolve(); err != nil {
		fatal(err)
	}

	if tree {
		if err := prog.PrintTree(os.Stdout); err != nil {
			fatal(err)
		}
		return
	}

	// Assemble fully into memory first: the assembler only ever writes its
	// output file after a complete, successful emission pass, never a
	// partial one.
	var buf bytes.Buffer
	if err := prog.Emit(&buf); err != nil {
		fatal(err)
	}
	if err := os.WriteFile(outFile, buf.Bytes(), 0644); err != nil {
		fatal(err)
	}
}
