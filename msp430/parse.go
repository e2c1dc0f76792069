package msp430

import "encoding/binary"

// takeWord consumes the leading little-endian 16-bit word of tail, if one
// is available.
func takeWord(tail []byte) (uint16, []byte, bool) {
	if len(tail) < 2 {
		return 0, tail, false
	}
	return binary.LittleEndian.Uint16(tail[:2]), tail[2:], true
}

// parseSource decodes the AS field of a source operand together with its
// register number, consuming a trailing extension word from tail when the
// combination requires one. It implements the full addressing-mode
// table, including the register-controlled special cases for SR/CG1 (r2) and CG2
// (r3).
func parseSource(register uint8, as uint8, tail []byte) (Operand, []byte, error) {
	switch as {
	case 0:
		switch register {
		case 3:
			return Operand{Kind: KindConstant, Const: 0}, tail, nil
		case 0, 1, 2, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15:
			return Operand{Kind: KindRegisterDirect, Register: register}, tail, nil
		default:
			return Operand{}, tail, &InvalidSourceError{AS: as, Register: register}
		}
	case 1:
		switch register {
		case 0:
			word, rest, ok := takeWord(tail)
			if !ok {
				return Operand{}, tail, ErrMissingSource
			}
			return Operand{Kind: KindSymbolic, Displacement: int16(word)}, rest, nil
		case 2:
			word, rest, ok := takeWord(tail)
			if !ok {
				return Operand{}, tail, ErrMissingSource
			}
			return Operand{Kind: KindAbsolute, Imm: word}, rest, nil
		case 3:
			return Operand{Kind: KindConstant, Const: 1}, tail, nil
		case 1, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15:
			word, rest, ok := takeWord(tail)
			if !ok {
				return Operand{}, tail, ErrMissingSource
			}
			return Operand{Kind: KindIndexed, Register: register, Displacement: int16(word)}, rest, nil
		default:
			return Operand{}, tail, &InvalidSourceError{AS: as, Register: register}
		}
	case 2:
		switch register {
		case 2:
			return Operand{Kind: KindConstant, Const: 4}, tail, nil
		case 3:
			return Operand{Kind: KindConstant, Const: 2}, tail, nil
		case 0, 1, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15:
			return Operand{Kind: KindRegisterIndirect, Register: register}, tail, nil
		default:
			return Operand{}, tail, &InvalidSourceError{AS: as, Register: register}
		}
	case 3:
		switch register {
		case 0:
			word, rest, ok := takeWord(tail)
			if !ok {
				return Operand{}, tail, ErrMissingSource
			}
			return Operand{Kind: KindImmediate, Imm: word}, rest, nil
		case 2:
			return Operand{Kind: KindConstant, Const: 8}, tail, nil
		case 3:
			return Operand{Kind: KindConstant, Const: -1}, tail, nil
		case 1, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15:
			return Operand{Kind: KindRegisterIndirectAutoIncrement, Register: register}, tail, nil
		default:
			return Operand{}, tail, &InvalidSourceError{AS: as, Register: register}
		}
	default:
		// Unreachable: as is always a 2-bit field, but kept for the same
		// defensive reason the original decoder keeps a catch-all arm.
		return Operand{}, tail, &InvalidSourceError{AS: as, Register: register}
	}
}

// parseDestination decodes the one-bit AD field of a destination operand
// together with its register number. Destinations never use
// the constant generators, so AD=0 simply yields RegisterDirect for every
// register including r2 and r3.
func parseDestination(register uint8, ad uint8, tail []byte) (Operand, error) {
	switch ad {
	case 0:
		return Operand{Kind: KindRegisterDirect, Register: register}, nil
	case 1:
		word, _, ok := takeWord(tail)
		if !ok {
			return Operand{}, ErrMissingDestination
		}
		switch register {
		case 0:
			return Operand{Kind: KindSymbolic, Displacement: int16(word)}, nil
		case 2:
			return Operand{Kind: KindAbsolute, Imm: word}, nil
		case 1, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15:
			return Operand{Kind: KindIndexed, Register: register, Displacement: int16(word)}, nil
		default:
			return Operand{}, &InvalidDestinationError{AD: ad, Register: register}
		}
	default:
		// Unreachable: ad is always a 1-bit field.
		return Operand{}, &InvalidDestinationError{AD: ad, Register: register}
	}
}
