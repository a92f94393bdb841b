package chip8

import "errors"

// Fatal machine conditions. The stack faults terminate the run loop; the ROM
// size error is reported at load time, before execution begins.
var (
	// ErrStackOverflow is returned when a call instruction executes with
	// the call stack already at capacity.
	ErrStackOverflow = errors.New("call stack full")

	// ErrStackUnderflow is returned when a return instruction executes
	// with an empty call stack.
	ErrStackUnderflow = errors.New("call stack empty")

	// ErrROMTooLarge is returned when a program does not fit in the
	// memory above the reserved area.
	ErrROMTooLarge = errors.New("program too large for memory")
)
