package synacor

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidOpcode is returned when the fetched opcode is not one of the
// 22 defined instructions.
type InvalidOpcode struct {
	Value uint16
	PC    uint16
}

func (e *InvalidOpcode) Error() string {
	return fmt.Sprintf("invalid opcode %d (%s) at pc=%d", e.Value, opName(e.Value), e.PC)
}

// InvalidOperand is returned when a read-operand cell encodes a raw
// value outside 0..=32775.
type InvalidOperand struct {
	Raw uint16
	PC  uint16
}

func (e *InvalidOperand) Error() string {
	return fmt.Sprintf("invalid operand %d at pc=%d", e.Raw, e.PC)
}

// InvalidWriteTarget is returned when a write-operand cell does not
// encode a register (32768..=32775).
type InvalidWriteTarget struct {
	Raw uint16
	PC  uint16
}

func (e *InvalidWriteTarget) Error() string {
	return fmt.Sprintf("invalid write target %d at pc=%d", e.Raw, e.PC)
}

// InvalidAddress is returned when an address-operand resolves to a
// value of 32768 or greater.
type InvalidAddress struct {
	Value uint16
	PC    uint16
}

func (e *InvalidAddress) Error() string {
	return fmt.Sprintf("invalid address %d at pc=%d", e.Value, e.PC)
}

// StackUnderflow is returned when POP executes against an empty stack.
type StackUnderflow struct {
	PC uint16
}

func (e *StackUnderflow) Error() string {
	return fmt.Sprintf("pop from empty stack at pc=%d", e.PC)
}

// DivideByZero is returned when MOD executes with a zero divisor.
type DivideByZero struct {
	PC uint16
}

func (e *DivideByZero) Error() string {
	return fmt.Sprintf("division by zero at pc=%d", e.PC)
}

// InputFailure is returned when IN cannot obtain a byte from the input
// source, whether due to end-of-file or an underlying I/O error.
type InputFailure struct {
	PC    uint16
	cause error
}

func (e *InputFailure) Error() string {
	return fmt.Sprintf("input failure at pc=%d: %v", e.PC, e.cause)
}

func (e *InputFailure) Unwrap() error { return e.cause }

// OutputFailure is returned when the output sink fails to accept an
// OUT byte or to flush buffered output (before IN, or when Run
// finishes). The architecture does not define this condition,
// but a real terminal transport can fail, and silently dropping the
// byte would hide the failure from the caller.
type OutputFailure struct {
	PC    uint16
	cause error
}

func (e *OutputFailure) Error() string {
	return fmt.Sprintf("output failure at pc=%d: %v", e.PC, e.cause)
}

func (e *OutputFailure) Unwrap() error { return e.cause }

// LoadError is returned when the byte source backing Load fails before
// the program is fully read.
type LoadError struct {
	cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error: %v", e.cause)
}

func (e *LoadError) Unwrap() error { return e.cause }

func newInputFailure(pc uint16, cause error) *InputFailure {
	return &InputFailure{PC: pc, cause: errors.Wrap(cause, "read byte")}
}

func newOutputFailure(pc uint16, cause error) *OutputFailure {
	return &OutputFailure{PC: pc, cause: errors.Wrap(cause, "write byte")}
}

func newLoadError(cause error) *LoadError {
	return &LoadError{cause: errors.Wrap(cause, "read program bytes")}
}
