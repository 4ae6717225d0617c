package bytecode

import (
	"encoding/binary"
	"fmt"

	"github.com/jpl-au/templ/node"
)

// Write compiles an already-optimized tree into its binary instruction
// encoding. The caller is responsible for running n through optimize.
// Optimize first — Write treats a node.Lazy it encounters as a programmer
// error (ErrCountMismatch-wrapped, since it means the optimizer pass was
// skipped) rather than resolving it itself, so that lazy resolution always
// happens exactly once, at the point the rest of the pipeline expects.
func Write(n node.Node) ([]byte, error) {
	w := &writer{buf: make([]byte, 0, 256)}
	if err := w.writeNode(n); err != nil {
		return nil, err
	}
	return w.buf, nil
}

type writer struct {
	buf []byte
}

func (w *writer) writeByte(b byte) {
	w.buf = append(w.buf, b)
}

func (w *writer) writeU32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

func (w *writer) writeBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// writeName writes a single-byte length followed by s's bytes. name
// arguments (tag names, modifier names, context path segments) are bounded
// to 255 bytes by the format.
func (w *writer) writeName(s string) error {
	if len(s) > 255 {
		return fmt.Errorf("%s: %w", s, ErrNameTooLong)
	}
	w.writeByte(byte(len(s)))
	w.writeBytes([]byte(s))
	return nil
}

func (w *writer) writeNode(n node.Node) error {
	switch v := n.(type) {
	case nil:
		return nil
	case node.None:
		return nil
	case node.Literal:
		w.writeByte(byte(OpLiteral))
		w.writeU32(uint32(len(v)))
		w.writeBytes([]byte(v))
		return nil
	case node.List:
		return w.writeList(v)
	case *node.Tag:
		return w.writeTag(v)
	case node.ContextValue:
		return w.writeContextValue(v)
	case node.Lazy:
		return fmt.Errorf("unresolved node.Lazy reached the writer: %w", ErrCountMismatch)
	default:
		return fmt.Errorf("unrecognized node type %T: %w", v, ErrUnknownOpcode)
	}
}

func (w *writer) writeList(l node.List) error {
	if len(l) > 255 {
		return fmt.Errorf("%d children: %w", len(l), ErrTooManyChildren)
	}
	w.writeByte(byte(OpListCount))
	w.writeByte(byte(len(l)))
	for _, child := range l {
		if err := w.writeNode(child); err != nil {
			return err
		}
	}
	return nil
}

func (w *writer) writeTag(t *node.Tag) error {
	if len(t.Modifiers) > 255 {
		return fmt.Errorf("%s: %w", t.Name, ErrTooManyModifiers)
	}
	w.writeByte(byte(OpTagOpen))
	if err := w.writeName(t.Name); err != nil {
		return err
	}
	w.writeByte(byte(len(t.Modifiers)))
	for _, m := range t.Modifiers {
		if err := w.writeName(m.Name); err != nil {
			return err
		}
		w.writeU32(uint32(len(m.Value)))
		w.writeBytes([]byte(m.Value))
	}
	if err := w.writeNode(t.Content); err != nil {
		return err
	}
	w.writeByte(byte(OpTagClose))
	return w.writeName(t.Name)
}

func (w *writer) writeContextValue(c node.ContextValue) error {
	if len(c.Path) > 255 {
		return fmt.Errorf("%w", ErrTooManyPathSegments)
	}
	w.writeByte(byte(OpContextValue))
	w.writeByte(byte(len(c.Path)))
	for _, segment := range c.Path {
		if err := w.writeName(segment); err != nil {
			return err
		}
	}
	return nil
}
