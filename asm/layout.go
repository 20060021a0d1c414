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

import "github.com/pkg/errors"

// maxLayoutIterations bounds the fixpoint loop in Resolve. The loop is
// expected to converge within a handful of passes; this is a circuit
// breaker against a pathological or buggy encoding that would
// otherwise oscillate forever, not a limit any well-formed program should
// ever approach.
const maxLayoutIterations = 1000

// instrLen returns the smallest instruction length (in nibbles/bytes)
// that is self-consistent with encoding a self-relative displacement to
// targetOffset from an instruction starting at ownOffset: the length
// must be at least as large as nibbles() of the displacement it would
// produce at that length, since growing the length can itself push the
// displacement's magnitude up past a nibble boundary.
func instrLen(targetOffset, ownOffset int32) int {
	length := int32(1)
	for length < int32(nibbles(targetOffset-ownOffset-length)) {
		length++
	}
	return int(length)
}

// Resolve iteratively assigns byte offsets to every directive and
// resolves every label reference to a self-relative displacement, until
// sizes stabilize. It returns the final image length in bytes.
//
// Each pass: data directives align the running offset up to a 4-byte
// boundary before being sized; labels capture the running offset at their
// position; label-referencing instructions recompute their displacement
// against the label's most recently captured offset (from this pass for a
// label earlier in the program, from the previous pass for a later one).
// Termination follows
// because instruction sizes only grow (never shrink) across passes in
// steady state and are bounded by 8 nibbles for any 32-bit value.
func (prog *Program) Resolve() (int, error) {
	lastTotal := -1
	total := 0
	for iter := 0; lastTotal != total; iter++ {
		if iter >= maxLayoutIterations {
			return 0, errors.Errorf("label layout failed to converge after %d iterations", iter)
		}
		lastTotal = total
		total = 0
		for idx := range prog.Directives {
			d := &prog.Directives[idx]
			if d.Kind == DirData && total&3 != 0 {
				total += 4 - (total & 3)
			}
			if d.Kind == DirLabel {
				d.Value = int32(total)
			}
			if d.HasLabelOperand() {
				target := prog.Directives[prog.Labels[d.Name]].Value
				length := instrLen(target, int32(total))
				d.Value = target - int32(total) - int32(length)
			}
			total += d.Size()
		}
	}
	return total, nil
}
