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
	"io"
	"os"
)

// Instance is a single HEX virtual machine: four registers, a flat memory
// and the file streams its syscall layer reads and writes.
type Instance struct {
	PC   Word
	AReg Word
	BReg Word
	OReg Word

	Memory  []Word
	Running bool

	// ExitCode is set by a SyscallExit and surfaces as the process exit
	// code once Run returns.
	ExitCode Word

	// Trace, when non-nil, receives one line per executed instruction.
	Trace io.Writer

	cycles int64

	inputs  []io.Reader
	outputs []io.Writer
}

// Option configures an Instance at construction time.
type Option func(*Instance)

// WithInputs sets the streams addressable by READ syscalls. Stream 0 is
// always stdin unless overridden here.
func WithInputs(r ...io.Reader) Option {
	return func(i *Instance) { i.inputs = r }
}

// WithOutputs sets the streams addressable by WRITE syscalls. Stream 0 is
// always stdout unless overridden here.
func WithOutputs(w ...io.Writer) Option {
	return func(i *Instance) { i.outputs = w }
}

// WithTrace enables a line-oriented instruction trace written to w. The
// trace format is illustrative only; it is not part of the bit-exact
// contract between the assembler and the simulator.
func WithTrace(w io.Writer) Option {
	return func(i *Instance) { i.Trace = w }
}

// New creates an Instance that executes out of memory, starting at PC 0.
// memory is normally the result of Load.
func New(memory []Word, opts ...Option) *Instance {
	i := &Instance{
		Memory:  memory,
		Running: true,
		inputs:  []io.Reader{os.Stdin},
		outputs: []io.Writer{os.Stdout},
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// InstructionCount returns the number of instruction cycles executed so
// far, i.e. the number of times the fetch-decode-execute loop has fired.
// A PFIX/NFIX prefix byte counts as one cycle just like any other opcode.
func (i *Instance) InstructionCount() int64 {
	return i.cycles
}
