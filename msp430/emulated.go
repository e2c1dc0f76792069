package msp430

// recognizeEmulated checks a freshly decoded two-operand instruction
// for a recognized emulated mnemonic and returns the alias it rewrites
// to, or nil if none applies. Cases within an opcode group are checked
// in a fixed order; the first match wins.
func recognizeEmulated(i *Instruction) *Instruction {
	switch i.Op {
	case OpMov:
		return recognizeMov(i)
	case OpAdd:
		return recognizeAdd(i)
	case OpAddc:
		return recognizeAddc(i)
	case OpSubc:
		return recognizeSubc(i)
	case OpSub:
		return recognizeSub(i)
	case OpCmp:
		return recognizeCmp(i)
	case OpDadd:
		return recognizeDadd(i)
	case OpBic:
		return recognizeBic(i)
	case OpBis:
		return recognizeBis(i)
	case OpXor:
		return recognizeXor(i)
	default:
		// Bit and And never emulate.
		return nil
	}
}

func recognizeMov(i *Instruction) *Instruction {
	switch {
	case isConstant(i.Source, 0) && isRegisterDirect(i.Destination, 3):
		return withNoOperand(OpNop, i)
	case (isConstant(i.Source, 0) || isImmediate(i.Source, 0)) && i.Destination.Kind == KindRegisterDirect:
		return withDestination(OpClr, i.Destination, false, 0, i)
	case isAutoIncrement(i.Source, 1) && isRegisterDirect(i.Destination, 0):
		return withNoOperand(OpRet, i)
	case isAutoIncrement(i.Source, 1):
		return withDestination(OpPop, i.Destination, true, i.Width, i)
	case isRegisterDirect(i.Destination, 0):
		return withDestination(OpBr, i.Source, false, 0, i)
	default:
		return nil
	}
}

func recognizeAdd(i *Instruction) *Instruction {
	switch {
	case isConstant(i.Source, 1):
		return withDestination(OpInc, i.Destination, false, 0, i)
	case isConstant(i.Source, 2):
		return withDestination(OpIncd, i.Destination, false, 0, i)
	case i.Source == i.Destination:
		return withDestination(OpRla, i.Destination, true, i.Width, i)
	default:
		return nil
	}
}

func recognizeAddc(i *Instruction) *Instruction {
	switch {
	case isConstant(i.Source, 0):
		return withDestination(OpAdc, i.Destination, true, i.Width, i)
	case i.Source == i.Destination:
		return withDestination(OpRlc, i.Destination, true, i.Width, i)
	default:
		return nil
	}
}

func recognizeSubc(i *Instruction) *Instruction {
	if isConstant(i.Source, 0) {
		return withDestination(OpSbc, i.Destination, true, i.Width, i)
	}
	return nil
}

func recognizeSub(i *Instruction) *Instruction {
	switch {
	case isConstant(i.Source, 1):
		return withDestination(OpDec, i.Destination, true, i.Width, i)
	case isConstant(i.Source, 2):
		return withDestination(OpDecd, i.Destination, true, i.Width, i)
	default:
		return nil
	}
}

func recognizeCmp(i *Instruction) *Instruction {
	if isConstant(i.Source, 0) {
		return withDestination(OpTst, i.Destination, true, i.Width, i)
	}
	return nil
}

func recognizeDadd(i *Instruction) *Instruction {
	if isConstant(i.Source, 0) {
		return withDestination(OpDadc, i.Destination, true, i.Width, i)
	}
	return nil
}

func recognizeBic(i *Instruction) *Instruction {
	if !isRegisterDirect(i.Destination, 2) {
		return nil
	}
	switch {
	case isConstant(i.Source, 1):
		return withNoOperand(OpClrc, i)
	case isConstant(i.Source, 2):
		return withNoOperand(OpClrn, i)
	case isConstant(i.Source, 4):
		return withNoOperand(OpClrz, i)
	case isConstant(i.Source, 8):
		return withNoOperand(OpDint, i)
	default:
		return nil
	}
}

func recognizeBis(i *Instruction) *Instruction {
	if !isRegisterDirect(i.Destination, 2) {
		return nil
	}
	switch {
	case isConstant(i.Source, 1):
		return withNoOperand(OpSetc, i)
	case isConstant(i.Source, 2):
		return withNoOperand(OpSetz, i)
	case isConstant(i.Source, 4):
		return withNoOperand(OpSetn, i)
	case isConstant(i.Source, 8):
		return withNoOperand(OpEint, i)
	default:
		return nil
	}
}

func recognizeXor(i *Instruction) *Instruction {
	if isConstant(i.Source, -1) {
		return withDestination(OpInv, i.Destination, true, i.Width, i)
	}
	return nil
}

func isConstant(o Operand, v int8) bool {
	return o.Kind == KindConstant && o.Const == v
}

func isImmediate(o Operand, v uint16) bool {
	return o.Kind == KindImmediate && o.Imm == v
}

func isRegisterDirect(o Operand, reg uint8) bool {
	return o.Kind == KindRegisterDirect && o.Register == reg
}

func isAutoIncrement(o Operand, reg uint8) bool {
	return o.Kind == KindRegisterIndirectAutoIncrement && o.Register == reg
}

// withDestination builds an emulated alias carrying a single operand
// (named for its common case, the original destination; Br passes its
// source here instead).
func withDestination(op Op, operand Operand, hasWidth bool, width OperandWidth, original *Instruction) *Instruction {
	return &Instruction{
		Op:         op,
		Format:     FormatEmulated,
		Operand:    operand,
		HasOperand: true,
		Width:      width,
		HasWidth:   hasWidth,
		Original:   original,
	}
}

// withNoOperand builds an emulated alias with neither an operand nor a
// width (Nop, Ret, Clrc/Clrn/Clrz/Dint, Setc/Setz/Setn/Eint).
func withNoOperand(op Op, original *Instruction) *Instruction {
	return &Instruction{Op: op, Format: FormatEmulated, Original: original}
}
