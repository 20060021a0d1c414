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
	"bytes"
	"strings"
	"testing"
)

// TestEmit_encodingSpotChecks assembles three single-instruction programs
// whose encodings are pinned by the PFIX/NFIX format: a value that fits in
// one nibble needs no prefix, a value needing two nibbles gets one PFIX
// byte, and any negative value needs at least one NFIX byte even when its
// magnitude would otherwise fit in one nibble.
func TestEmit_encodingSpotChecks(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []byte
	}{
		{"LDAC 0", "LDAC 0\n", []byte{0x20}},
		{"LDAC 16", "LDAC 16\n", []byte{0xD1, 0x20}},
		{"LDAC -1", "LDAC -1\n", []byte{0xCF, 0x2F}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			prog, err := Parse(strings.NewReader(c.src))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if _, err := prog.Resolve(); err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			var buf bytes.Buffer
			if err := prog.Emit(&buf); err != nil {
				t.Fatalf("Emit: %v", err)
			}
			if !bytes.Equal(buf.Bytes(), c.want) {
				t.Errorf("got % x, want % x", buf.Bytes(), c.want)
			}
		})
	}
}

func TestEmit_dataPaddedAndLittleEndian(t *testing.T) {
	prog, err := Parse(strings.NewReader("OPR ADD\nDATA 258\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := prog.Resolve(); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	var buf bytes.Buffer
	if err := prog.Emit(&buf); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	want := []byte{0xF2, 0, 0, 0, 2, 1, 0, 0}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got % x, want % x", buf.Bytes(), want)
	}
}
