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
	"fmt"

	"github.com/pkg/errors"
)

// Run drives the fetch-decode-execute loop until a SyscallExit clears
// Running or a fatal runtime error occurs (an invalid opcode byte, an
// invalid OPR sub-opcode or an invalid syscall number). Out-of-range
// memory accesses panic inside Step and are recovered here into a wrapped
// error that names the PC at the point of failure.
func (i *Instance) Run() (err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "pc=%d", i.PC)
			default:
				err = errors.Errorf("pc=%d: %v", i.PC, e)
			}
		}
	}()
	i.Running = true
	for i.Running {
		if err = i.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step executes exactly one fetch-decode-execute cycle: it fetches one
// byte at PC, advances PC, folds the byte's low nibble into oreg, and
// dispatches on the byte's high nibble.
func (i *Instance) Step() error {
	b := i.fetchByte(i.PC)
	i.PC++
	i.OReg = i.OReg | Word(b&0xF)
	op := Opcode((b >> 4) & 0xF)

	if i.Trace != nil {
		i.traceStep(b, op)
	}

	switch op {
	case OpLDAM:
		i.AReg = i.Memory[i.OReg]
		i.OReg = 0
	case OpLDBM:
		i.BReg = i.Memory[i.OReg]
		i.OReg = 0
	case OpSTAM:
		i.Memory[i.OReg] = i.AReg
		i.OReg = 0
	case OpLDAC:
		i.AReg = i.OReg
		i.OReg = 0
	case OpLDBC:
		i.BReg = i.OReg
		i.OReg = 0
	case OpLDAP:
		i.AReg = i.PC + i.OReg
		i.OReg = 0
	case OpLDAI:
		i.AReg = i.Memory[(i.AReg>>2)+i.OReg]
		i.OReg = 0
	case OpLDBI:
		i.BReg = i.Memory[(i.BReg>>2)+i.OReg]
		i.OReg = 0
	case OpSTAI:
		i.Memory[(i.BReg>>2)+i.OReg] = i.AReg
		i.OReg = 0
	case OpBR:
		i.PC = i.PC + i.OReg
		i.OReg = 0
	case OpBRZ:
		if i.AReg == 0 {
			i.PC = i.PC + i.OReg
		}
		i.OReg = 0
	case OpBRN:
		if int32(i.AReg) < 0 {
			i.PC = i.PC + i.OReg
		}
		i.OReg = 0
	case OpPFIX:
		i.OReg = i.OReg << 4
	case OpNFIX:
		i.OReg = 0xFFFFFF00 | (i.OReg << 4)
	case OpOPR:
		return i.dispatchOPR()
	default:
		return errors.Errorf("invalid opcode byte %#02x at pc=%d", b, i.PC-1)
	}
	i.cycles++
	return nil
}

func (i *Instance) dispatchOPR() error {
	sub := SubOpcode(i.OReg)
	switch sub {
	case SubBRB:
		i.PC = i.BReg
		i.OReg = 0
	case SubADD:
		i.AReg = i.AReg + i.BReg
		i.OReg = 0
	case SubSUB:
		i.AReg = i.AReg - i.BReg
		i.OReg = 0
	case SubSVC:
		// OPR SVC does not clear oreg, unlike every other opcode.
		if err := i.syscall(); err != nil {
			return err
		}
	default:
		return errors.Errorf("invalid OPR sub-opcode %d at pc=%d", i.OReg, i.PC-1)
	}
	i.cycles++
	return nil
}

// fetchByte returns byte pc of the image, addressed little-endian within
// its containing word: memory[pc>>2] holds bytes pc&^3 .. (pc&^3)+3, with
// byte pc at bit position (pc&3)*8.
func (i *Instance) fetchByte(pc Word) byte {
	w := i.Memory[pc>>2]
	return byte((w >> ((pc & 3) << 3)) & 0xFF)
}

func (i *Instance) traceStep(b byte, op Opcode) {
	fmt.Fprintf(i.Trace, "%8d  %-6s %-4d areg=%-12d breg=%-12d oreg=%#010x\n",
		i.PC-1, op, b&0xF, int32(i.AReg), int32(i.BReg), i.OReg)
}
