// Package disasm walks a byte buffer one msp430 instruction at a time and
// builds a printable listing. It is a thin consumer of msp430.Decode: the
// advance-by-size loop a caller would otherwise write inline.
package disasm

import (
	"fmt"

	"github.com/sarchlab/msp430dis/msp430"
)

// Line is one decoded instruction positioned at Offset within the buffer
// Walk was called on.
type Line struct {
	Offset      int
	Instruction *msp430.Instruction
	Bytes       []byte
}

// String renders a Line the way an objdump-style listing would: the byte
// offset, the raw encoded bytes, and the decoded mnemonic.
func (l Line) String() string {
	return fmt.Sprintf("%6d:\t% x\t%s", l.Offset, l.Bytes, l.Instruction)
}

// Walk decodes data from front to back, stopping at the first decode error
// or once fewer than two bytes remain. It returns every line decoded before
// the error, plus the error itself (nil on a clean run to end of buffer).
//
// A short trailing fragment (0 or 1 leftover bytes) is not an error: it is
// the common case of disassembling a buffer whose length isn't known to be
// instruction-aligned in advance.
func Walk(data []byte) ([]Line, error) {
	var lines []Line
	offset := 0

	for len(data[offset:]) >= 2 {
		inst, err := msp430.Decode(data[offset:])
		if err != nil {
			return lines, fmt.Errorf("disasm: at offset %d: %w", offset, err)
		}

		size := inst.Size()
		lines = append(lines, Line{
			Offset:      offset,
			Instruction: inst,
			Bytes:       data[offset : offset+size],
		})
		offset += size
	}

	return lines, nil
}
