package msp430

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cases that carry no offending fields.
var (
	// ErrMissingInstruction is returned when fewer than two bytes are
	// available to load the first instruction word.
	ErrMissingInstruction = errors.New("msp430: missing instruction: fewer than 2 bytes available")

	// ErrMissingSource is returned when a source addressing mode requires
	// an extension word but fewer than two bytes remain.
	ErrMissingSource = errors.New("msp430: missing source: addressing mode requires an extension word")

	// ErrMissingDestination is returned when a destination addressing
	// mode requires an extension word but fewer than two bytes remain.
	ErrMissingDestination = errors.New("msp430: missing destination: addressing mode requires an extension word")
)

// InvalidSourceError reports a (AS, register) combination that the source
// addressing table in §4.1 does not cover.
type InvalidSourceError struct {
	AS       uint8
	Register uint8
}

func (e *InvalidSourceError) Error() string {
	return fmt.Sprintf("msp430: invalid source operand: as=%d register=%d", e.AS, e.Register)
}

// InvalidDestinationError reports a (AD, register) combination that the
// destination addressing table in §4.1 does not cover.
type InvalidDestinationError struct {
	AD       uint8
	Register uint8
}

func (e *InvalidDestinationError) Error() string {
	return fmt.Sprintf("msp430: invalid destination operand: ad=%d register=%d", e.AD, e.Register)
}

// InvalidOpcodeError reports a single- or two-operand opcode outside the
// recognized set, notably single-operand opcode 7.
type InvalidOpcodeError struct {
	Opcode uint8
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("msp430: invalid opcode: %d", e.Opcode)
}

// InvalidJumpConditionError reports a conditional-jump condition outside
// 0..7. It is unreachable given a 3-bit condition field, but is kept for
// completeness and forward compatibility.
type InvalidJumpConditionError struct {
	Condition uint8
}

func (e *InvalidJumpConditionError) Error() string {
	return fmt.Sprintf("msp430: invalid jump condition: %d", e.Condition)
}
