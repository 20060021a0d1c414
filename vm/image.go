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

package vm

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Load reads the binary image in fileName into a fresh MemorySizeWords-word
// memory array, byte for byte, starting at word 0 byte 0. It returns the
// memory array and the number of bytes actually read from the file.
//
// There is no header and no magic number: the file is the memory image
// verbatim, exactly as produced by the assembler's emitter. Byte b of the
// image lives at Memory[b>>2], in byte position (b&3)*8 (little-endian),
// which is also the addressing scheme Instance.Step uses when fetching
// instructions.
func Load(fileName string) (memory []Word, byteLen int, err error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, 0, errors.Wrap(err, "load")
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, 0, errors.Wrap(err, "load")
	}
	size := st.Size()
	if size > int64(MemorySizeWords)*4 {
		return nil, 0, errors.Errorf("load %s: image is %d bytes, exceeds memory capacity of %d words", fileName, size, MemorySizeWords)
	}

	memory = make([]Word, MemorySizeWords)
	r := bufio.NewReader(f)
	var buf [4]byte
	n := 0
	for word := 0; ; word++ {
		k, rerr := io.ReadFull(r, buf[:])
		for i := 0; i < k; i++ {
			memory[word] |= Word(buf[i]) << (uint(i) * 8)
		}
		n += k
		if rerr != nil {
			if rerr == io.EOF || rerr == io.ErrUnexpectedEOF {
				break
			}
			return nil, 0, errors.Wrap(rerr, "load")
		}
	}
	return memory, n, nil
}
