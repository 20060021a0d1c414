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

// Package asm assembles HEX source into the compact variable-length
// bytecode consumed by the vm package.
//
// Grammar:
//
//	program     := { label | data | instr | func | proc }
//	label       := IDENT
//	data        := "DATA" integer
//	func        := "FUNC" IDENT
//	proc        := "PROC" IDENT
//	instr       := addressed-op (IDENT | integer)
//	             | "OPR" sub-op
//	addressed-op:= LDAM|LDBM|STAM|LDAC|LDBC|LDAP|LDAI|LDBI|STAI|BR|BRZ|BRN
//	sub-op      := BRB|SVC|ADD|SUB
//	integer     := ["-"] NATURAL
//	IDENT       := ALPHA (ALPHA|DIGIT|"_")*
//	comment     := "#" .* EOL
//
// A label is declared simply by naming it on its own (no trailing colon);
// it may be referenced, before or after its declaration, by any addressed
// instruction that takes an identifier instead of an integer. There is no
// linker: a program is a single translation unit and every label it
// references must be declared somewhere within it.
//
// Because every reference is a self-relative byte displacement and every
// instruction's width depends on the magnitude of its operand, layout is
// an iterative fixpoint: label offsets and instruction widths are
// recomputed together until neither changes. See layout.go for the
// algorithm.
package asm
