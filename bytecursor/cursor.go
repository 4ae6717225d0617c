// Package bytecursor provides a bounds-checked, non-owning reader over a
// compiled bytecode stream. ReadBytes returns a slice into the caller-
// supplied backing array, valid for as long as that array is kept alive,
// without copying. ReadName and ExpectName copy the name they read into a
// new string, which allocates for names longer than one byte.
package bytecursor

import (
	"encoding/binary"
	"fmt"

	"github.com/jpl-au/templ/bytecode"
)

// Cursor walks a byte slice from front to back. It carries no allocation
// of its own; render.Render constructs one on the stack per call so that
// concurrent renders of the same CompiledTemplate never share mutable
// state.
type Cursor struct {
	data []byte
	pos  int
}

// New returns a Cursor positioned at the start of data. data is not
// copied; the caller must not mutate it while the Cursor is in use.
func New(data []byte) Cursor {
	return Cursor{data: data}
}

// Done reports whether the cursor has consumed the entire backing slice.
func (c Cursor) Done() bool {
	return c.pos >= len(c.data)
}

// ReadByte consumes and returns the next byte.
func (c *Cursor) ReadByte() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, bytecode.ErrTruncatedRead
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// ReadOpcode consumes the next byte as a bytecode.Opcode.
func (c *Cursor) ReadOpcode() (bytecode.Opcode, error) {
	b, err := c.ReadByte()
	return bytecode.Opcode(b), err
}

// PeekOpcode reports the next byte as a bytecode.Opcode without consuming
// it. It lets a reader decide whether an optional instruction — such as a
// tag's content, which is absent entirely when compiled from node.None —
// is present before committing to read one.
func (c *Cursor) PeekOpcode() (bytecode.Opcode, error) {
	if c.pos >= len(c.data) {
		return 0, bytecode.ErrTruncatedRead
	}
	return bytecode.Opcode(c.data[c.pos]), nil
}

// ReadU32 consumes the next four bytes as a little-endian uint32.
func (c *Cursor) ReadU32() (uint32, error) {
	if c.pos+4 > len(c.data) {
		return 0, bytecode.ErrIntegerRead
	}
	v := binary.LittleEndian.Uint32(c.data[c.pos : c.pos+4])
	c.pos += 4
	return v, nil
}

// ReadBytes consumes and returns the next n bytes as a slice into the
// cursor's backing array.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.data) {
		return nil, bytecode.ErrTruncatedRead
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadName reads a single-byte length followed by that many bytes, as
// written by the bytecode writer for tag/modifier names and context path
// segments.
func (c *Cursor) ReadName() (string, error) {
	n, err := c.ReadByte()
	if err != nil {
		return "", err
	}
	b, err := c.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ExpectName reads a name and verifies it equals want, returning
// bytecode.ErrCountMismatch wrapped with both values if it does not. It is
// used to validate an OpTagClose name against its matching OpTagOpen.
func (c *Cursor) ExpectName(want string) error {
	got, err := c.ReadName()
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("closing tag %q does not match opening tag %q: %w", got, want, bytecode.ErrCountMismatch)
	}
	return nil
}
