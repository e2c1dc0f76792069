// Package msp430 decodes MSP430 16-bit machine code into structured,
// printable instructions. It reads a single instruction from the head of a
// little-endian byte buffer, validates the encoding, recognizes emulated
// (aliased) mnemonics, and reports the instruction's encoded size. It does
// not assemble, link, resolve symbols, or model instruction execution.
package msp430

import "fmt"

// OperandKind identifies which of the eight MSP430 addressing modes an
// Operand represents.
type OperandKind uint8

// The eight MSP430 addressing modes.
const (
	KindRegisterDirect OperandKind = iota
	KindIndexed
	KindRegisterIndirect
	KindRegisterIndirectAutoIncrement
	KindSymbolic
	KindImmediate
	KindAbsolute
	KindConstant
)

// Operand is a source or destination operand produced by parseSource or
// parseDestination. Which fields are meaningful depends on Kind:
//
//	RegisterDirect                  Register
//	Indexed                         Register, Displacement
//	RegisterIndirect                Register
//	RegisterIndirectAutoIncrement   Register
//	Symbolic                        Displacement
//	Immediate                       Imm
//	Absolute                        Imm
//	Constant                        Const
//
// Operand values are comparable with ==; the emulation recognizer relies on
// this for its src-equals-dst checks.
type Operand struct {
	Kind         OperandKind
	Register     uint8
	Displacement int16
	Imm          uint16
	Const        int8
}

// Size reports the number of extension-word bytes this operand consumes: 2
// for Indexed, Symbolic, Immediate, and Absolute, 0 otherwise.
func (o Operand) Size() int {
	switch o.Kind {
	case KindIndexed, KindSymbolic, KindImmediate, KindAbsolute:
		return 2
	default:
		return 0
	}
}

func (o Operand) String() string {
	switch o.Kind {
	case KindRegisterDirect:
		return registerName(o.Register)
	case KindIndexed:
		return fmt.Sprintf("%s(%s)", signedHex(int32(o.Displacement)), registerName(o.Register))
	case KindRegisterIndirect:
		return "@" + registerName(o.Register)
	case KindRegisterIndirectAutoIncrement:
		return "@" + registerName(o.Register) + "+"
	case KindSymbolic:
		return fmt.Sprintf("#%s(pc)", signedHex(int32(o.Displacement)))
	case KindImmediate:
		return fmt.Sprintf("#%#x", o.Imm)
	case KindAbsolute:
		return fmt.Sprintf("&%#x", o.Imm)
	case KindConstant:
		return fmt.Sprintf("#%s", signedHex(int32(o.Const)))
	default:
		return "?"
	}
}

// registerName renders a register number using its conventional MSP430
// name: r0 is the program counter, r1 the stack pointer, r2 the status
// register (also CG1), r3 the second constant generator (CG2).
func registerName(r uint8) string {
	switch r {
	case 0:
		return "pc"
	case 1:
		return "sp"
	case 2:
		return "sr"
	case 3:
		return "cg"
	default:
		return fmt.Sprintf("r%d", r)
	}
}

// signedHex renders v as "0xK" or "-0xK", computing the magnitude in a
// wider signed type so that the minimum representable value never
// overflows on negation.
func signedHex(v int32) string {
	if v < 0 {
		return fmt.Sprintf("-%#x", -v)
	}
	return fmt.Sprintf("%#x", v)
}

// OperandWidth selects whether an instruction operates on a word (16 bits)
// or a byte (8 bits). It is decoded from bit 6 of the instruction word for
// width-bearing mnemonics only.
type OperandWidth uint8

// The two operand widths. Word is zero so a zero-valued OperandWidth
// defaults to word-sized, matching bit 6 == 0.
const (
	Word OperandWidth = iota
	Byte
)

func (w OperandWidth) suffix() string {
	if w == Byte {
		return ".b"
	}
	return ""
}
