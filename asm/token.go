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

import "github.com/hexsys/hex/vm"

// TokenKind identifies the lexical class of a Token.
type TokenKind int

// Token kinds. The addressed opcodes and the OPR sub-opcode keywords are
// listed separately from the structural keywords so the parser can tell
// at a glance which keywords are legal where.
const (
	TokEOF TokenKind = iota
	TokNumber
	TokMinus
	TokIdentifier
	TokData
	TokFunc
	TokProc
	TokOPR
	// Addressed opcodes: legal at statement position, taking either a
	// label or an integer operand.
	TokLDAM
	TokLDBM
	TokSTAM
	TokLDAC
	TokLDBC
	TokLDAP
	TokLDAI
	TokLDBI
	TokSTAI
	TokBR
	TokBRZ
	TokBRN
	// Sub-opcodes: legal only as the operand of OPR.
	TokBRB
	TokSVC
	TokADD
	TokSUB
	// TokNone is returned for a character the lexer does not recognize;
	// the lexer never errors itself, it lets the parser reject it.
	TokNone
)

var tokenNames = map[TokenKind]string{
	TokEOF:        "EOF",
	TokNumber:     "NUMBER",
	TokMinus:      "MINUS",
	TokIdentifier: "IDENTIFIER",
	TokData:       "DATA",
	TokFunc:       "FUNC",
	TokProc:       "PROC",
	TokOPR:        "OPR",
	TokLDAM:       "LDAM",
	TokLDBM:       "LDBM",
	TokSTAM:       "STAM",
	TokLDAC:       "LDAC",
	TokLDBC:       "LDBC",
	TokLDAP:       "LDAP",
	TokLDAI:       "LDAI",
	TokLDBI:       "LDBI",
	TokSTAI:       "STAI",
	TokBR:         "BR",
	TokBRZ:        "BRZ",
	TokBRN:        "BRN",
	TokBRB:        "BRB",
	TokSVC:        "SVC",
	TokADD:        "ADD",
	TokSUB:        "SUB",
	TokNone:       "NONE",
}

func (k TokenKind) String() string {
	if s, ok := tokenNames[k]; ok {
		return s
	}
	return "???"
}

// keywords maps source spellings to token kinds. Anything not in this
// table that starts with a letter is an IDENTIFIER.
var keywords = map[string]TokenKind{
	"DATA": TokData,
	"FUNC": TokFunc,
	"PROC": TokProc,
	"OPR":  TokOPR,
	"LDAM": TokLDAM,
	"LDBM": TokLDBM,
	"STAM": TokSTAM,
	"LDAC": TokLDAC,
	"LDBC": TokLDBC,
	"LDAP": TokLDAP,
	"LDAI": TokLDAI,
	"LDBI": TokLDBI,
	"STAI": TokSTAI,
	"BR":   TokBR,
	"BRZ":  TokBRZ,
	"BRN":  TokBRN,
	"BRB":  TokBRB,
	"SVC":  TokSVC,
	"ADD":  TokADD,
	"SUB":  TokSUB,
}

// addressedOpcodes maps the "addressed" opcode tokens (everything that
// takes a label-or-integer operand) to their vm.Opcode value.
var addressedOpcodes = map[TokenKind]vm.Opcode{
	TokLDAM: vm.OpLDAM,
	TokLDBM: vm.OpLDBM,
	TokSTAM: vm.OpSTAM,
	TokLDAC: vm.OpLDAC,
	TokLDBC: vm.OpLDBC,
	TokLDAP: vm.OpLDAP,
	TokLDAI: vm.OpLDAI,
	TokLDBI: vm.OpLDBI,
	TokSTAI: vm.OpSTAI,
	TokBR:   vm.OpBR,
	TokBRZ:  vm.OpBRZ,
	TokBRN:  vm.OpBRN,
}

// oprSubOpcodes maps the four legal operands of OPR to their vm.SubOpcode
// value.
var oprSubOpcodes = map[TokenKind]vm.SubOpcode{
	TokBRB: vm.SubBRB,
	TokSVC: vm.SubSVC,
	TokADD: vm.SubADD,
	TokSUB: vm.SubSUB,
}

// Token is one lexical unit, with whichever of Ident/Num is relevant to
// Kind left populated.
type Token struct {
	Kind  TokenKind
	Ident string
	Num   uint32
	Line  int
}
