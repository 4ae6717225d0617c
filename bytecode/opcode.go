package bytecode

import (
	"errors"
	"fmt"
)

// Opcode tags each instruction in the compiled byte stream.
type Opcode byte

const (
	// OpNone was opcode 0x00 in an earlier revision of this format and is
	// retired: a Root that optimizes down to node.None now compiles to a
	// zero-length byte stream instead of an explicit no-op instruction, so
	// the renderer never needs to recognize it. 0x00 is reserved and must
	// never be reassigned, so that bytecode compiled against either
	// revision fails closed (ErrUnknownOpcode) rather than silently
	// misinterpreting the stream.
	_ Opcode = 0x00

	// OpLiteral is followed by a u32 byte length and that many literal
	// bytes, written verbatim to output.
	OpLiteral Opcode = 0x01
	// OpTagOpen is followed by a u8 name length + name bytes, a u8
	// modifier count, and that many (u8 name length + name, u32 value
	// length + value) pairs.
	OpTagOpen Opcode = 0x02
	// OpTagClose is followed by a u8 name length + name bytes, echoing the
	// name written by the matching OpTagOpen.
	OpTagClose Opcode = 0x03
	// OpContextValue is followed by a u8 path segment count and that many
	// u8 length + UTF-8 key pairs.
	OpContextValue Opcode = 0x04
	// OpListCount is followed by a u8 count of child nodes in the list;
	// each child's own instruction encoding immediately follows, back to
	// back, count times.
	OpListCount Opcode = 0x05
)

// InternalCompilerError is the umbrella sentinel every error surfaced by
// this package wraps, so callers can errors.Is(err, bytecode.
// InternalCompilerError) without naming the specific cause.
var InternalCompilerError = errors.New("bytecode: internal compiler error")

// ErrUnknownOpcode is returned by the reader when it encounters a byte it
// does not recognize as an Opcode.
var ErrUnknownOpcode = fmt.Errorf("%w: unknown opcode", InternalCompilerError)

// ErrTruncatedRead is returned when the byte stream ends before an
// instruction's declared length has been fully consumed.
var ErrTruncatedRead = fmt.Errorf("%w: truncated read", InternalCompilerError)

// ErrCountMismatch is returned when the stream's structure does not pair
// up: a closing tag that does not match its opening tag, or a node.Lazy
// that reached Write without being resolved by the optimizer.
var ErrCountMismatch = fmt.Errorf("%w: count mismatch", InternalCompilerError)

// ErrIntegerRead is returned when a fixed-width integer cannot be read in
// full from the remaining bytes.
var ErrIntegerRead = fmt.Errorf("%w: integer read failed", InternalCompilerError)

// ErrTooManyModifiers is returned by Write when a single Tag carries more
// than 255 modifiers — the format's modifier count field is a single byte.
// The teacher's source silently truncated comparable overflow; this format
// fails the compile instead, per the redesign flagged in the original
// specification.
var ErrTooManyModifiers = fmt.Errorf("%w: tag has more than 255 modifiers", InternalCompilerError)

// ErrTooManyPathSegments is returned by Write when a ContextValue's path
// has more than 255 segments — the format's segment count field is a
// single byte.
var ErrTooManyPathSegments = fmt.Errorf("%w: context value has more than 255 path segments", InternalCompilerError)

// ErrTooManyChildren is returned by Write when a single List carries more
// than 255 children — the format's child count field is a single byte.
var ErrTooManyChildren = fmt.Errorf("%w: list has more than 255 children", InternalCompilerError)

// ErrNameTooLong is returned by Write when a tag or modifier name exceeds
// 255 bytes — the format's name length fields are a single byte.
var ErrNameTooLong = fmt.Errorf("%w: name exceeds 255 bytes", InternalCompilerError)
