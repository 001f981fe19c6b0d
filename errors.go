package respb

import (
	"errors"
	"fmt"
)

// ErrIncomplete is returned by ParseOne when the buffer ends mid-frame. The caller
// should acquire more bytes and retry from the same offset; the offset is never
// advanced when this error is returned.
var ErrIncomplete = errors.New("respb: incomplete frame")

// ErrTooManyArgs is declared for a strict parsing mode that rejects frames
// whose count_u16_then field exceeds MaxArgs, rather than the current
// behaviour of parsing and silently dropping the excess (see
// ParsedCommand.appendArg). No code path returns it yet.
var ErrTooManyArgs = errors.New("respb: argument count exceeds cap")

// ErrInsufficientCapacity is returned by the Frame Writer when the destination
// buffer is too small to hold the serialized frame.
var ErrInsufficientCapacity = errors.New("respb: insufficient output capacity")

// UnknownOpcodeError is returned when a 16-bit opcode has no assigned grammar.
type UnknownOpcodeError struct {
	Opcode Opcode
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("respb: unknown opcode 0x%04X", uint16(e.Opcode))
}

// OversizedStringError is returned when a length-prefixed field's declared length
// exceeds the configured cap for that field kind.
type OversizedStringError struct {
	Length uint32
	Max    uint32
}

func (e *OversizedStringError) Error() string {
	return fmt.Sprintf("respb: string length %d exceeds cap %d", e.Length, e.Max)
}

// IsIncomplete reports whether err indicates a truncated frame.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrIncomplete)
}

// IsUnknownOpcode reports whether err indicates an opcode with no assigned grammar.
func IsUnknownOpcode(err error) bool {
	var target *UnknownOpcodeError
	return errors.As(err, &target)
}
