package msp430

import "fmt"

// Op identifies an MSP430 mnemonic, including the emulated aliases.
type Op uint8

// Recognized mnemonics, grouped by the format that produces them.
const (
	OpUnknown Op = iota

	// Single-operand format.
	OpRrc
	OpSwpb
	OpRra
	OpSxt
	OpPush
	OpCall
	OpReti

	// Conditional jump format.
	OpJnz
	OpJz
	OpJlo
	OpJc
	OpJn
	OpJge
	OpJl
	OpJmp

	// Two-operand format.
	OpMov
	OpAdd
	OpAddc
	OpSubc
	OpSub
	OpCmp
	OpDadd
	OpBit
	OpBic
	OpBis
	OpXor
	OpAnd

	// Emulated aliases, recognized only from a decoded two-operand
	// instruction.
	OpAdc
	OpBr
	OpClr
	OpClrc
	OpClrn
	OpClrz
	OpDadc
	OpDec
	OpDecd
	OpDint
	OpEint
	OpInc
	OpIncd
	OpInv
	OpNop
	OpPop
	OpRet
	OpRla
	OpRlc
	OpSbc
	OpSetc
	OpSetn
	OpSetz
	OpTst
)

var mnemonics = map[Op]string{
	OpRrc:  "rrc",
	OpSwpb: "swpb",
	OpRra:  "rra",
	OpSxt:  "sxt",
	OpPush: "push",
	OpCall: "call",
	OpReti: "reti",

	OpJnz: "jnz",
	OpJz:  "jz",
	OpJlo: "jlo",
	OpJc:  "jc",
	OpJn:  "jn",
	OpJge: "jge",
	OpJl:  "jl",
	OpJmp: "jmp",

	OpMov:  "mov",
	OpAdd:  "add",
	OpAddc: "addc",
	OpSubc: "subc",
	OpSub:  "sub",
	OpCmp:  "cmp",
	OpDadd: "dadd",
	OpBit:  "bit",
	OpBic:  "bic",
	OpBis:  "bis",
	OpXor:  "xor",
	OpAnd:  "and",

	OpAdc:  "adc",
	OpBr:   "br",
	OpClr:  "clr",
	OpClrc: "clrc",
	OpClrn: "clrn",
	OpClrz: "clrz",
	OpDadc: "dadc",
	OpDec:  "dec",
	OpDecd: "decd",
	OpDint: "dint",
	OpEint: "eint",
	OpInc:  "inc",
	OpIncd: "incd",
	OpInv:  "inv",
	OpNop:  "nop",
	OpPop:  "pop",
	OpRet:  "ret",
	OpRla:  "rla",
	OpRlc:  "rlc",
	OpSbc:  "sbc",
	OpSetc: "setc",
	OpSetn: "setn",
	OpSetz: "setz",
	OpTst:  "tst",
}

// Format identifies which of the three encoded forms (or the emulated
// recognizer) produced an Instruction.
type Format uint8

const (
	FormatUnknown Format = iota
	FormatSingleOperand
	FormatJump
	FormatTwoOperand
	FormatEmulated
)

// Instruction is a decoded MSP430 instruction. Which fields are meaningful
// depends on Format:
//
//	FormatSingleOperand   Source (absent for Reti), Width/HasWidth for
//	                      Rrc/Rra/Push
//	FormatJump            JumpOffset
//	FormatTwoOperand      Source, Destination, Width (always set)
//	FormatEmulated        Operand/HasOperand, Width/HasWidth, Original
//
// Instructions are immutable after construction: a decoder builds one and
// hands ownership to its caller.
type Instruction struct {
	Op     Op
	Format Format

	// Source is populated for FormatSingleOperand (all ops but Reti) and
	// FormatTwoOperand.
	Source Operand

	// Destination is populated for FormatTwoOperand.
	Destination Operand

	// JumpOffset is populated for FormatJump: a signed count of 16-bit
	// words, sign-extended from the encoded 10-bit field.
	JumpOffset int16

	// Width and HasWidth describe the operand width for mnemonics that
	// carry one: Rrc/Rra/Push among the single-operand forms, every
	// two-operand instruction, and the emulated aliases that preserve
	// their original's width.
	Width    OperandWidth
	HasWidth bool

	// Operand and HasOperand hold the single retained operand of an
	// emulated alias. For most aliases this is the original destination;
	// for Br it is the original source. Aliases with neither a
	// destination nor a width (Nop, Ret, Clrc, Clrn, Clrz, Dint, Setc,
	// Setn, Setz, Eint) leave HasOperand false.
	Operand    Operand
	HasOperand bool

	// Original is set for FormatEmulated and points at the two-operand
	// instruction the alias was derived from, so that Size() can report
	// the original encoded length: emulation never changes byte length.
	Original *Instruction
}

// Size returns the number of bytes this instruction occupies in the
// encoded buffer it was decoded from. It is always one of 2, 4, or 6.
func (i *Instruction) Size() int {
	switch i.Format {
	case FormatJump:
		return 2
	case FormatSingleOperand:
		if i.Op == OpReti {
			return 2
		}
		return 2 + i.Source.Size()
	case FormatTwoOperand:
		return 2 + i.Source.Size() + i.Destination.Size()
	case FormatEmulated:
		return i.Original.Size()
	default:
		return 0
	}
}

// String renders the canonical single-line disassembly form: mnemonic,
// optional width suffix, and operands in AT&T-derived MSP430 syntax.
func (i *Instruction) String() string {
	mnem := mnemonics[i.Op]

	switch i.Format {
	case FormatJump:
		return fmt.Sprintf("%s #%s", mnem, signedHex(int32(i.JumpOffset)))
	case FormatSingleOperand:
		if i.Op == OpReti {
			return mnem
		}
		return fmt.Sprintf("%s%s %s", mnem, i.widthSuffix(), i.Source)
	case FormatTwoOperand:
		return fmt.Sprintf("%s%s %s, %s", mnem, i.widthSuffix(), i.Source, i.Destination)
	case FormatEmulated:
		if !i.HasOperand {
			return mnem
		}
		return fmt.Sprintf("%s%s %s", mnem, i.widthSuffix(), i.Operand)
	default:
		return mnem
	}
}

func (i *Instruction) widthSuffix() string {
	if !i.HasWidth {
		return ""
	}
	return i.Width.suffix()
}
