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

import "fmt"

// ParserError is returned for any source-level problem: an unrecognized
// token at statement position, a missing NUMBER where one was expected,
// an illegal OPR operand, or an undefined label. It carries the 1-based
// source line so the CLI can report "Error: <msg> : <line>" the way the
// original assembler does.
type ParserError struct {
	Line int
	Msg  string
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("%s : %d", e.Msg, e.Line)
}

func parseErrf(line int, format string, args ...interface{}) *ParserError {
	return &ParserError{Line: line, Msg: fmt.Sprintf(format, args...)}
}
