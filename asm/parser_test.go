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
	"strings"
	"testing"

	"github.com/hexsys/hex/vm"
)

func TestParse_directiveKinds(t *testing.T) {
	src := "DATA 7\nFUNC adder\nPROC helper\nloop\nLDAC 3\nBR loop\nOPR ADD\n"
	prog, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []DirectiveKind{DirData, DirFunc, DirProc, DirLabel, DirInstrImm, DirInstrLabel, DirInstrOp}
	if len(prog.Directives) != len(want) {
		t.Fatalf("got %d directives, want %d", len(prog.Directives), len(want))
	}
	for i, k := range want {
		if prog.Directives[i].Kind != k {
			t.Errorf("directive %d: kind %d, want %d", i, prog.Directives[i].Kind, k)
		}
	}
	if prog.Directives[4].Opcode != vm.OpLDAC || prog.Directives[4].Value != 3 {
		t.Errorf("LDAC directive = %+v", prog.Directives[4])
	}
	if prog.Directives[5].Name != "loop" {
		t.Errorf("BR directive name = %q, want loop", prog.Directives[5].Name)
	}
	if prog.Directives[6].SubOp != vm.SubADD {
		t.Errorf("OPR directive sub-op = %v, want ADD", prog.Directives[6].SubOp)
	}
	if prog.Labels["loop"] != 3 {
		t.Errorf("labels[loop] = %d, want 3", prog.Labels["loop"])
	}
}

func TestParse_undefinedLabel(t *testing.T) {
	_, err := Parse(strings.NewReader("BR nowhere\n"))
	if err == nil {
		t.Fatal("expected an error for an undefined label")
	}
	pe, ok := err.(*ParserError)
	if !ok {
		t.Fatalf("err = %T, want *ParserError", err)
	}
	if pe.Line != 1 {
		t.Errorf("error line = %d, want 1", pe.Line)
	}
}

func TestParse_unexpectedOPROperand(t *testing.T) {
	_, err := Parse(strings.NewReader("OPR OPR\n"))
	if err == nil {
		t.Fatal("expected an error for OPR with an invalid operand")
	}
	if _, ok := err.(*ParserError); !ok {
		t.Fatalf("err = %T, want *ParserError", err)
	}
}

func TestParse_negativeInteger(t *testing.T) {
	prog, err := Parse(strings.NewReader("LDAC -1\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if prog.Directives[0].Value != -1 {
		t.Errorf("Value = %d, want -1", prog.Directives[0].Value)
	}
}

func TestParse_danglingMinus(t *testing.T) {
	_, err := Parse(strings.NewReader("LDAC -\n"))
	if err == nil {
		t.Fatal("expected an error for a MINUS not followed by NUMBER")
	}
}

func TestParse_unrecognisedToken(t *testing.T) {
	_, err := Parse(strings.NewReader("@\n"))
	if err == nil {
		t.Fatal("expected an error for an unrecognised token")
	}
}
