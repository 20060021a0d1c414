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
	"fmt"

	"github.com/hexsys/hex/vm"
)

// DirectiveKind is the tag of the Directive sum type.
type DirectiveKind int

// Directive kinds, one per production of the grammar's instruction/data
// statements.
const (
	DirData DirectiveKind = iota
	DirFunc
	DirProc
	DirLabel
	DirInstrImm
	DirInstrLabel
	DirInstrOp
)

// Directive is one parsed source statement. Rather than a class hierarchy
// with runtime downcasts, every variant is a case of this single tagged
// struct; Size and HasLabelOperand switch on Kind. Which fields are
// meaningful depends on Kind:
//
//	DirData        Value is the word to emit.
//	DirFunc/DirProc Name is the marker's identifier; emits nothing.
//	DirLabel        Name is the label; Value holds its resolved byte offset
//	                once Resolve has run.
//	DirInstrImm     Opcode and Value (the immediate).
//	DirInstrLabel   Opcode and Name (the referenced label); Value holds the
//	                resolved self-relative displacement once Resolve has run.
//	DirInstrOp      SubOp, carried in the low nibble of an OPR byte.
type Directive struct {
	Kind   DirectiveKind
	Line   int
	Name   string
	Opcode vm.Opcode
	SubOp  vm.SubOpcode
	Value  int32
}

// HasLabelOperand reports whether d's operand is a label reference that
// must be resolved by Resolve before Size, and the value Emit writes, are
// meaningful.
func (d *Directive) HasLabelOperand() bool {
	return d.Kind == DirInstrLabel
}

// nibbles returns the number of 4-bit immediates required to represent v
// in the PFIX/NFIX prefix-chain encoding (§4.3 of the format). Negative
// values are measured via their bitwise complement so that the sign nibble
// (NFIX vs PFIX) comes out right.
func nibbles(v int32) int {
	if v == 0 {
		return 1
	}
	u := uint32(v)
	if v < 0 {
		u = uint32(^v)
	}
	n := 1
	for u >= 16 {
		u >>= 4
		n++
	}
	return n
}

// Size returns the number of bytes d occupies in the emitted image. For
// DirInstrImm/DirInstrLabel, this depends on the directive's current
// Value and must be recomputed every layout iteration.
func (d *Directive) Size() int {
	switch d.Kind {
	case DirData:
		return 4
	case DirFunc, DirProc, DirLabel:
		return 0
	case DirInstrOp:
		return 1
	case DirInstrImm, DirInstrLabel:
		n := nibbles(d.Value)
		if d.Value < 0 && n == 1 {
			return 2
		}
		return n
	default:
		panic(fmt.Sprintf("asm: unknown directive kind %d", d.Kind))
	}
}

// Program is an ordered list of Directives together with the index of
// each DirLabel directive, keyed by name. A map of indices (rather than
// pointers into Directives) avoids aliasing problems when Directives is
// reallocated.
type Program struct {
	Directives []Directive
	Labels     map[string]int
}
