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

// Command hexsim loads and executes the bytecode produced by hexasm.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/hexsys/hex/vm"
)

func usage() {
	fmt.Fprintf(os.Stderr, "HEX processor simulator\n\n")
	fmt.Fprintf(os.Stderr, "Usage: %s [options] file\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Positional arguments:\n")
	fmt.Fprintf(os.Stderr, "  file        A binary file to simulate\n\n")
	fmt.Fprintf(os.Stderr, "Optional arguments:\n")
	fmt.Fprintf(os.Stderr, "  -h, --help  Display this message\n")
	fmt.Fprintf(os.Stderr, "  -d, --dump  Dump the binary file contents\n")
	fmt.Fprintf(os.Stderr, "  -t, --trace Enable instruction tracing\n")
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func main() {
	var help, dump, trace bool
	flag.BoolVar(&help, "h", false, "")
	flag.BoolVar(&help, "help", false, "")
	flag.BoolVar(&dump, "d", false, "")
	flag.BoolVar(&dump, "dump", false, "")
	flag.BoolVar(&trace, "t", false, "")
	flag.BoolVar(&trace, "trace", false, "")
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

	memory, byteLen, err := vm.Load(args[0])
	if err != nil {
		fatal(err)
	}

	if dump {
		if err := dumpImage(memory, byteLen, os.Stdout); err != nil {
			fatal(err)
		}
		return
	}

	var opts []vm.Option
	if trace {
		opts = append(opts, vm.WithTrace(os.Stdout))
	}
	out := bufio.NewWriter(os.Stdout)
	opts = append(opts, vm.WithOutputs(out))
	defer out.Flush()

	inst := vm.New(memory, opts...)
	if err := inst.Run(); err != nil {
		out.Flush()
		fatal(err)
	}
	out.Flush()
	os.Exit(int(inst.ExitCode & 0xFF))
}
