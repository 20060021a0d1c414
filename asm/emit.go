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

package asm

import (
	"io"

	"github.com/hexsys/hex/vm"
	"github.com/pkg/errors"
)

// Emit serializes a Resolved Program to w: a flat byte stream with no
// header and no magic number. Data directives are padded to a 4-byte
// boundary; multi-nibble instruction operands are written as a PFIX/NFIX
// prefix chain followed by the opcode-carrying byte. Resolve must have
// been called first.
func (prog *Program) Emit(w io.Writer) error {
	offset := 0
	for idx := range prog.Directives {
		d := &prog.Directives[idx]
		switch d.Kind {
		case DirData:
			if offset&3 != 0 {
				pad := 4 - (offset & 3)
				if _, err := w.Write(make([]byte, pad)); err != nil {
					return errors.Wrap(err, "emit: padding")
				}
				offset += pad
			}
			var b [4]byte
			v := uint32(d.Value)
			b[0] = byte(v)
			b[1] = byte(v >> 8)
			b[2] = byte(v >> 16)
			b[3] = byte(v >> 24)
			if _, err := w.Write(b[:]); err != nil {
				return errors.Wrap(err, "emit: data")
			}
			offset += 4
		case DirFunc, DirProc, DirLabel:
			// Zero-width markers; nothing to emit.
		case DirInstrOp:
			if err := writeByte(w, byte(vm.OpOPR)<<4|byte(d.SubOp)); err != nil {
				return err
			}
			offset++
		case DirInstrImm, DirInstrLabel:
			size := d.Size()
			if size > 1 {
				prefix := vm.OpPFIX
				if d.Value < 0 {
					prefix = vm.OpNFIX
				}
				for i := size - 1; i > 0; i-- {
					nib := byte(d.Value>>(4*uint(i))) & 0xF
					if err := writeByte(w, byte(prefix)<<4|nib); err != nil {
						return err
					}
					offset++
				}
			}
			if err := writeByte(w, byte(d.Opcode)<<4|byte(d.Value)&0xF); err != nil {
				return err
			}
			offset++
		}
	}
	return nil
}

func writeByte(w io.Writer, b byte) error {
	_, err := w.Write([]byte{b})
	return errors.Wrap(err, "emit")
}
