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

// Package vm implements the HEX virtual machine: a flat, word-addressable
// memory, four 32-bit registers and a 16-opcode dispatch loop fed by a
// prefix-extension operand protocol.
//
// Registers:
//
//	pc    program counter, byte granular
//	areg  accumulator A
//	breg  accumulator B
//	oreg  operand register, accumulated across PFIX/NFIX prefix chains
//
// Opcodes (4-bit field in the high nibble of every instruction byte):
//
//	op   asm    arg     effect
//	--   ----   ---     ------------------------------------------------
//	0    LDAM   oreg    areg = mem[oreg]
//	1    LDBM   oreg    breg = mem[oreg]
//	2    LDAC   oreg    areg = oreg
//	3    LDBC   oreg    breg = oreg
//	4    LDAP   oreg    areg = pc + oreg
//	5    LDAI   oreg    areg = mem[(areg>>2) + oreg]
//	6    LDBI   oreg    breg = mem[(breg>>2) + oreg]
//	7    STAI   oreg    mem[(breg>>2) + oreg] = areg
//	8    BR     oreg    pc = pc + oreg
//	9    BRZ    oreg    if areg == 0: pc = pc + oreg
//	10   BRN    oreg    if areg <  0: pc = pc + oreg
//	11   STAM   oreg    mem[oreg] = areg
//	12   NFIX   oreg    oreg = 0xFFFFFF00 | (oreg << 4), no clear
//	13   PFIX   oreg    oreg = oreg << 4, no clear
//	15   OPR    sub     dispatch sub-opcode carried in oreg's low nibble
//
// OPR sub-opcodes (only legal as the operand of OPR):
//
//	0  BRB   pc = breg
//	1  SVC   dispatch a syscall selected by areg (see Syscall)
//	2  ADD   areg = areg + breg
//	3  SUB   areg = areg - breg
//
// Every opcode except PFIX, NFIX and OPR-SVC clears oreg to zero once it
// has executed. The binary encoding (PFIX/NFIX prefix chains, nibble
// counting, data alignment) is owned by the asm package; this package only
// consumes it at decode time, and both packages import the Opcode and
// SubOpcode tables from here so the two can never drift apart.
package vm
