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

// Word is the raw 32-bit value stored in a memory cell and held by every
// register. Arithmetic on it wraps modulo 2^32, matching the two's
// complement semantics the interpreter requires for ADD/SUB/PFIX/NFIX.
type Word uint32

// MemorySizeWords is the fixed size of a HEX memory image, in words.
const MemorySizeWords = 200000

// Opcode is the 4-bit value carried in the high nibble of an instruction
// byte. The assembler and the interpreter both import this table so the
// two tools can never silently disagree on the binary encoding.
type Opcode uint8

// Opcode numbering. This enumeration order is the binary contract between
// the assembler and the simulator: PFIX and NFIX sit at 0xD and 0xC
// respectively, and the emitter and decoder both use these constants when
// extending an operand (see asm.Program.Emit and vm.Instance.Step).
const (
	OpLDAM Opcode = 0
	OpLDBM Opcode = 1
	OpLDAC Opcode = 2
	OpLDBC Opcode = 3
	OpLDAP Opcode = 4
	OpLDAI Opcode = 5
	OpLDBI Opcode = 6
	OpSTAI Opcode = 7
	OpBR   Opcode = 8
	OpBRZ  Opcode = 9
	OpBRN  Opcode = 10
	OpSTAM Opcode = 11
	OpNFIX Opcode = 12
	OpPFIX Opcode = 13
	OpOPR  Opcode = 15
)

var opcodeNames = map[Opcode]string{
	OpLDAM: "LDAM",
	OpLDBM: "LDBM",
	OpLDAC: "LDAC",
	OpLDBC: "LDBC",
	OpLDAP: "LDAP",
	OpLDAI: "LDAI",
	OpLDBI: "LDBI",
	OpSTAI: "STAI",
	OpBR:   "BR",
	OpBRZ:  "BRZ",
	OpBRN:  "BRN",
	OpSTAM: "STAM",
	OpNFIX: "NFIX",
	OpPFIX: "PFIX",
	OpOPR:  "OPR",
}

// String returns the assembler mnemonic for op, or "???" for a value with
// no mnemonic, such as opcode 14, which is reserved and unassigned.
func (op Opcode) String() string {
	if s, ok := opcodeNames[op]; ok {
		return s
	}
	return "???"
}

// SubOpcode is the 4-bit value carried in the low nibble of an OPR
// instruction byte.
type SubOpcode uint8

// OPR sub-opcodes. Only these four values are legal operands to OPR; any
// other value decoded at runtime is a fatal error (see Instance.Step).
const (
	SubBRB SubOpcode = 0
	SubSVC SubOpcode = 1
	SubADD SubOpcode = 2
	SubSUB SubOpcode = 3
)

var subOpcodeNames = map[SubOpcode]string{
	SubBRB: "BRB",
	SubSVC: "SVC",
	SubADD: "ADD",
	SubSUB: "SUB",
}

func (s SubOpcode) String() string {
	if n, ok := subOpcodeNames[s]; ok {
		return n
	}
	return "???"
}

// Syscall is the value of areg at the point an OPR SVC instruction
// executes; it selects the syscall layer's behavior.
type Syscall Word

// Syscall numbers understood by the default syscall layer.
const (
	SyscallExit  Syscall = 0
	SyscallWrite Syscall = 1
	SyscallRead  Syscall = 2
)
