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

package vm

import (
	"io"

	"github.com/pkg/errors"
)

// syscall implements the three syscalls reachable through OPR SVC. By
// convention, word 1 of memory holds the byte address of the current
// stack frame; the frame's word index is mem[1]>>2, and WRITE/READ/EXIT
// all take their arguments relative to it.
func (i *Instance) syscall() error {
	sp := int(i.Memory[1] >> 2)
	switch Syscall(i.AReg) {
	case SyscallExit:
		i.Running = false
		if sp+2 < len(i.Memory) {
			i.ExitCode = i.Memory[sp+2]
		}
	case SyscallWrite:
		stream := int(i.Memory[sp+3])
		if stream < 0 || stream >= len(i.outputs) {
			return errors.Errorf("write: invalid output stream %d", stream)
		}
		b := byte(i.Memory[sp+2])
		if _, err := i.outputs[stream].Write([]byte{b}); err != nil {
			return errors.Wrap(err, "write")
		}
	case SyscallRead:
		stream := int(i.Memory[sp+2])
		if stream < 0 || stream >= len(i.inputs) {
			return errors.Errorf("read: invalid input stream %d", stream)
		}
		var b [1]byte
		n, err := i.inputs[stream].Read(b[:])
		if n == 0 {
			// End of stream: store 0 rather than failing the run, so
			// programs can poll for input exhaustion.
			i.Memory[sp+1] = 0
		} else {
			i.Memory[sp+1] = Word(b[0])
		}
		if err != nil && err != io.EOF {
			return errors.Wrap(err, "read")
		}
	default:
		return errors.Errorf("invalid syscall: %d", i.AReg)
	}
	return nil
}
