package msp430

import "encoding/binary"

// Decode reads a single MSP430 instruction from the head of data. It
// returns the decoded instruction and never mutates or retains data; the
// caller advances by the returned Instruction.Size() to continue decoding
// a stream. Decode performs no I/O and allocates no state beyond the
// returned value.
func Decode(data []byte) (*Instruction, error) {
	if len(data) < 2 {
		return nil, ErrMissingInstruction
	}

	word := binary.LittleEndian.Uint16(data[:2])
	tail := data[2:]

	switch (word >> 13) & 0b111 {
	case 0b000:
		return decodeSingleOperand(word, tail)
	case 0b001:
		return decodeJump(word), nil
	default:
		return decodeTwoOperand(word, tail)
	}
}

func decodeSingleOperand(word uint16, tail []byte) (*Instruction, error) {
	opcode := (word >> 7) & 0b111
	widthBit := uint8((word >> 6) & 1)
	as := uint8((word >> 4) & 0b11)
	reg := uint8(word & 0b1111)

	// Reti ignores the source fields entirely: the bits in positions 0..6
	// may be anything in conforming input.
	if opcode == 6 {
		return &Instruction{Op: OpReti, Format: FormatSingleOperand}, nil
	}

	src, _, err := parseSource(reg, as, tail)
	if err != nil {
		return nil, err
	}

	inst := &Instruction{Format: FormatSingleOperand, Source: src}
	width := OperandWidth(widthBit)

	switch opcode {
	case 0:
		inst.Op = OpRrc
		inst.Width, inst.HasWidth = width, true
	case 1:
		inst.Op = OpSwpb
	case 2:
		inst.Op = OpRra
		inst.Width, inst.HasWidth = width, true
	case 3:
		inst.Op = OpSxt
	case 4:
		inst.Op = OpPush
		inst.Width, inst.HasWidth = width, true
	case 5:
		inst.Op = OpCall
	default:
		return nil, &InvalidOpcodeError{Opcode: uint8(opcode)}
	}

	return inst, nil
}

var jumpConditions = [8]Op{OpJnz, OpJz, OpJlo, OpJc, OpJn, OpJge, OpJl, OpJmp}

func decodeJump(word uint16) *Instruction {
	cond := (word >> 10) & 0b111
	offset := signExtend10(word & 0x03FF)

	return &Instruction{Op: jumpConditions[cond], Format: FormatJump, JumpOffset: offset}
}

// signExtend10 sign-extends a 10-bit offset field to a full i16 using
// two's complement, by shifting the field into the top of a 16-bit lane
// and arithmetic-shifting it back down. This is the reading the vendor
// manual specifies; the source repository's own one's-complement helper
// is deliberately not reproduced here.
func signExtend10(raw uint16) int16 {
	return int16(raw<<6) >> 6
}

func decodeTwoOperand(word uint16, tail []byte) (*Instruction, error) {
	opcode := (word >> 12) & 0b1111
	srcReg := uint8((word >> 8) & 0b1111)
	ad := uint8((word >> 7) & 1)
	widthBit := uint8((word >> 6) & 1)
	as := uint8((word >> 4) & 0b11)
	dstReg := uint8(word & 0b1111)

	src, tail2, err := parseSource(srcReg, as, tail)
	if err != nil {
		return nil, err
	}

	dst, err := parseDestination(dstReg, ad, tail2)
	if err != nil {
		return nil, err
	}

	inst := &Instruction{
		Format:      FormatTwoOperand,
		Source:      src,
		Destination: dst,
		Width:       OperandWidth(widthBit),
		HasWidth:    true,
	}

	switch opcode {
	case 4:
		inst.Op = OpMov
	case 5:
		inst.Op = OpAdd
	case 6:
		inst.Op = OpAddc
	case 7:
		inst.Op = OpSubc
	case 8:
		inst.Op = OpSub
	case 9:
		inst.Op = OpCmp
	case 10:
		inst.Op = OpDadd
	case 11:
		inst.Op = OpBit
	case 12:
		inst.Op = OpBic
	case 13:
		inst.Op = OpBis
	case 14:
		inst.Op = OpXor
	case 15:
		inst.Op = OpAnd
	default:
		// opcode 0..3 cannot occur here because the top three bits of
		// word would have dispatched to single-operand or jump form
		// first; kept defensively.
		return nil, &InvalidOpcodeError{Opcode: uint8(opcode)}
	}

	if alias := recognizeEmulated(inst); alias != nil {
		return alias, nil
	}
	return inst, nil
}
