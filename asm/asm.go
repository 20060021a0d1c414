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
	"io"
)

// Assemble reads HEX source from r, parses it, resolves label layout and
// writes the resulting bytecode to w. name identifies the source (normally
// the input file name); Assemble does not include it in the errors it
// returns.
//
// The returned error, if not nil, can safely be type-asserted to
// *ParserError for a source-level problem (bad syntax, undefined label);
// any other error is either a layout that failed to converge in Resolve or
// an I/O failure while writing to w.
func Assemble(name string, r io.Reader, w io.Writer) error {
	prog, err := Parse(r)
	if err != nil {
		return err
	}
	if _, err := prog.Resolve(); err != nil {
		return err
	}
	return prog.Emit(w)
}

// PrintTokens lexes the source read from r and writes one token per line
// to w: "IDENTIFIER <name>" or "NUMBER <value>" for the two kinds that
// carry a payload, the bare keyword name for everything else, and a
// trailing "EOF". It does not parse or assemble.
func PrintTokens(r io.Reader, w io.Writer) error {
	l := newLexer(r)
	for {
		t := l.nextToken()
		var err error
		switch t.Kind {
		case TokIdentifier:
			_, err = fmt.Fprintf(w, "IDENTIFIER %s\n", t.Ident)
		case TokNumber:
			_, err = fmt.Fprintf(w, "NUMBER %d\n", t.Num)
		case TokEOF:
			_, err = fmt.Fprintln(w, "EOF")
			return err
		default:
			_, err = fmt.Fprintln(w, t.Kind)
		}
		if err != nil {
			return err
		}
	}
}

// PrintTree resolves prog's label layout (if not already resolved) and
// writes one line per directive to w, in the form
// "<offset-hex> <directive-text> (<size> bytes)", reproducing the
// original assembler's --tree output. Alignment padding before a Data
// directive is rendered as its own informational "PADDING (<n> bytes)"
// line; the binary emitter instead folds that padding silently into the
// following Data directive's offset.
func (prog *Program) PrintTree(w io.Writer) error {
	// Resolving an already resolved program changes nothing.
	if _, err := prog.Resolve(); err != nil {
		return err
	}
	offset := 0
	for idx := range prog.Directives {
		d := &prog.Directives[idx]
		if d.Kind == DirData && offset&3 != 0 {
			pad := 4 - (offset & 3)
			if _, err := fmt.Fprintf(w, "%#08x PADDING             (%d bytes)\n", offset, pad); err != nil {
				return err
			}
			offset += pad
		}
		if _, err := fmt.Fprintf(w, "%#08x %-20s (%d bytes)\n", offset, directiveText(d), d.Size()); err != nil {
			return err
		}
		offset += d.Size()
	}
	return nil
}

func directiveText(d *Directive) string {
	switch d.Kind {
	case DirData:
		return fmt.Sprintf("DATA %d", d.Value)
	case DirFunc:
		return fmt.Sprintf("FUNC %s", d.Name)
	case DirProc:
		return fmt.Sprintf("PROC %s", d.Name)
	case DirLabel:
		return d.Name
	case DirInstrImm:
		return fmt.Sprintf("%s %d", d.Opcode, d.Value)
	case DirInstrLabel:
		return fmt.Sprintf("%s %s (%d)", d.Opcode, d.Name, d.Value)
	case DirInstrOp:
		return fmt.Sprintf("OPR %s", d.SubOp)
	default:
		return "???"
	}
}
