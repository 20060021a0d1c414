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
)

func tokenKinds(t *testing.T, src string) []TokenKind {
	t.Helper()
	l := newLexer(strings.NewReader(src))
	var kinds []TokenKind
	for {
		tok := l.nextToken()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == TokEOF {
			return kinds
		}
	}
}

func TestLexer_keywordsAndIdentifiers(t *testing.T) {
	got := tokenKinds(t, "DATA 1 loop LDAC -3 OPR ADD")
	want := []TokenKind{
		TokData, TokNumber, TokIdentifier, TokLDAC, TokMinus, TokNumber,
		TokOPR, TokADD, TokEOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLexer_commentsAndWhitespace(t *testing.T) {
	src := "# a leading comment\nSTAI 4 # trailing comment\n\nBR x\n"
	got := tokenKinds(t, src)
	want := []TokenKind{TokSTAI, TokNumber, TokBR, TokIdentifier, TokEOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLexer_numberValue(t *testing.T) {
	l := newLexer(strings.NewReader("42"))
	tok := l.nextToken()
	if tok.Kind != TokNumber || tok.Num != 42 {
		t.Fatalf("got %+v, want NUMBER 42", tok)
	}
}

func TestLexer_identifierValue(t *testing.T) {
	l := newLexer(strings.NewReader("loop_2"))
	tok := l.nextToken()
	if tok.Kind != TokIdentifier || tok.Ident != "loop_2" {
		t.Fatalf("got %+v, want IDENTIFIER loop_2", tok)
	}
}

func TestLexer_lineNumbers(t *testing.T) {
	l := newLexer(strings.NewReader("DATA 1\nDATA 2\n"))
	var lines []int
	for {
		tok := l.nextToken()
		if tok.Kind == TokEOF {
			break
		}
		lines = append(lines, tok.Line)
	}
	want := []int{1, 1, 2, 2}
	if len(lines) != len(want) {
		t.Fatalf("got %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("token %d: line %d, want %d", i, lines[i], want[i])
		}
	}
}

func TestLexer_unrecognizedCharacter(t *testing.T) {
	l := newLexer(strings.NewReader("@"))
	tok := l.nextToken()
	if tok.Kind != TokNone {
		t.Fatalf("got %s, want NONE", tok.Kind)
	}
}
