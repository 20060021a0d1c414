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

package main

import (
	"fmt"
	"io"

	"github.com/hexsys/hex/vm"
)

// dumpImage prints the loaded image without executing it: "Read <n>
// bytes" followed by one "<word-index> <hex-word>" line for each word from
// 0 through byteLen/4 (capped at the memory size). When byteLen is a
// multiple of 4, the last line is the word just past the file's contents.
func dumpImage(memory []vm.Word, byteLen int, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Read %d bytes\n", byteLen); err != nil {
		return err
	}
	words := byteLen/4 + 1
	if words > len(memory) {
		words = len(memory)
	}
	for i := 0; i < words; i++ {
		if _, err := fmt.Fprintf(w, "%08d %08x\n", i, uint32(memory[i])); err != nil {
			return err
		}
	}
	return nil
}
