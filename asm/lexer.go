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
	"bufio"
	"io"
	"strconv"
)

const eof = -1

// lexer turns HEX source text into a stream of Tokens. It never fails on
// its own: unrecognized characters come back as TokNone, and it is the
// parser's job to reject them with a line number attached.
type lexer struct {
	r           *bufio.Reader
	last        rune
	line        int
	lastToken   Token
}

func newLexer(r io.Reader) *lexer {
	l := &lexer{r: bufio.NewReader(r), line: 1}
	l.readRune()
	return l
}

func (l *lexer) readRune() {
	c, _, err := l.r.ReadRune()
	if err != nil {
		l.last = eof
		return
	}
	l.last = c
}

func (l *lexer) currentLine() int { return l.line }

func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c rune) bool {
	return isAlpha(c) || isDigit(c) || c == '_'
}

// nextToken returns the next token in the stream. EOF is returned
// repeatedly once reached.
func (l *lexer) nextToken() Token {
	for {
		// Skip whitespace.
		for l.last == ' ' || l.last == '\t' || l.last == '\r' || l.last == '\n' {
			if l.last == '\n' {
				l.line++
			}
			l.readRune()
		}
		// Comment: '#' through end of line.
		if l.last == '#' {
			for l.last != '\n' && l.last != eof {
				l.readRune()
			}
			continue
		}
		break
	}

	line := l.line

	if l.last == eof {
		return l.emit(Token{Kind: TokEOF, Line: line})
	}

	if isAlpha(l.last) {
		ident := string(l.last)
		l.readRune()
		for isAlnum(l.last) {
			ident += string(l.last)
			l.readRune()
		}
		if kind, ok := keywords[ident]; ok {
			return l.emit(Token{Kind: kind, Ident: ident, Line: line})
		}
		return l.emit(Token{Kind: TokIdentifier, Ident: ident, Line: line})
	}

	if isDigit(l.last) {
		digits := string(l.last)
		l.readRune()
		for isDigit(l.last) {
			digits += string(l.last)
			l.readRune()
		}
		v, _ := strconv.ParseUint(digits, 10, 32)
		return l.emit(Token{Kind: TokNumber, Num: uint32(v), Line: line})
	}

	if l.last == '-' {
		l.readRune()
		return l.emit(Token{Kind: TokMinus, Line: line})
	}

	// Unrecognized character: consume it and let the parser reject it.
	l.readRune()
	return l.emit(Token{Kind: TokNone, Line: line})
}

func (l *lexer) emit(t Token) Token {
	l.lastToken = t
	return t
}
