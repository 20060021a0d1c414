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

import "io"

// parser consumes a lexer's token stream and builds an ordered Program.
type parser struct {
	l   *lexer
	tok Token
}

func newParser(r io.Reader) *parser {
	p := &parser{l: newLexer(r)}
	p.advance()
	return p
}

func (p *parser) advance() Token {
	p.tok = p.l.nextToken()
	return p.tok
}

// parseInteger parses [MINUS] NUMBER, per the grammar. MINUS not followed
// by NUMBER is an error.
func (p *parser) parseInteger() (int32, error) {
	neg := false
	if p.tok.Kind == TokMinus {
		neg = true
		p.advance()
	}
	if p.tok.Kind != TokNumber {
		return 0, parseErrf(p.tok.Line, "expected NUMBER")
	}
	v := int32(p.tok.Num)
	p.advance()
	if neg {
		v = -v
	}
	return v, nil
}

// parseIdentifier consumes the identifier at the current position.
func (p *parser) parseIdentifier() (string, error) {
	if p.tok.Kind != TokIdentifier {
		return "", parseErrf(p.tok.Line, "expected identifier")
	}
	name := p.tok.Ident
	p.advance()
	return name, nil
}

// parseProgram parses the entire token stream into an ordered Directive
// list. It does not resolve labels; see Resolve for that.
func (p *parser) parseProgram() ([]Directive, error) {
	var program []Directive
	for p.tok.Kind != TokEOF {
		d, err := p.parseDirective()
		if err != nil {
			return nil, err
		}
		program = append(program, d)
	}
	return program, nil
}

func (p *parser) parseDirective() (Directive, error) {
	line := p.tok.Line
	switch p.tok.Kind {
	case TokData:
		p.advance()
		v, err := p.parseInteger()
		if err != nil {
			return Directive{}, err
		}
		return Directive{Kind: DirData, Line: line, Value: v}, nil
	case TokFunc:
		p.advance()
		name, err := p.parseIdentifier()
		if err != nil {
			return Directive{}, err
		}
		return Directive{Kind: DirFunc, Line: line, Name: name}, nil
	case TokProc:
		p.advance()
		name, err := p.parseIdentifier()
		if err != nil {
			return Directive{}, err
		}
		return Directive{Kind: DirProc, Line: line, Name: name}, nil
	case TokIdentifier:
		name := p.tok.Ident
		p.advance()
		return Directive{Kind: DirLabel, Line: line, Name: name}, nil
	case TokOPR:
		p.advance()
		sub, ok := oprSubOpcodes[p.tok.Kind]
		if !ok {
			return Directive{}, parseErrf(p.tok.Line, "unexpected operand to OPR: %s", p.tok.Kind)
		}
		p.advance()
		return Directive{Kind: DirInstrOp, Line: line, SubOp: sub}, nil
	default:
		if opcode, ok := addressedOpcodes[p.tok.Kind]; ok {
			p.advance()
			if p.tok.Kind == TokIdentifier {
				name := p.tok.Ident
				p.advance()
				return Directive{Kind: DirInstrLabel, Line: line, Opcode: opcode, Name: name}, nil
			}
			v, err := p.parseInteger()
			if err != nil {
				return Directive{}, err
			}
			return Directive{Kind: DirInstrImm, Line: line, Opcode: opcode, Value: v}, nil
		}
		return Directive{}, parseErrf(line, "unrecognised token %s", p.tok.Kind)
	}
}

// Parse lexes and parses the HEX source read from r into an unresolved
// Program: directives are in source order but label offsets and
// displacements have not yet been computed (see Resolve).
func Parse(r io.Reader) (*Program, error) {
	p := newParser(r)
	directives, err := p.parseProgram()
	if err != nil {
		return nil, err
	}
	labels := make(map[string]int)
	for idx := range directives {
		d := &directives[idx]
		if d.Kind == DirLabel {
			labels[d.Name] = idx
		}
	}
	for idx := range directives {
		d := &directives[idx]
		if d.Kind == DirInstrLabel {
			if _, ok := labels[d.Name]; !ok {
				return nil, parseErrf(d.Line, "undefined label %s", d.Name)
			}
		}
	}
	return &Program{Directives: directives, Labels: labels}, nil
}
