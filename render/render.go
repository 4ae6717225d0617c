// Package render walks a compiled bytecode stream and writes the HTML it
// describes into a caller-supplied buffer. Literal and list instructions
// render without allocating. Tag instructions allocate a string for each
// tag and modifier name they read (bytecursor.Cursor.ReadName copies), and
// a context value allocates a copy of the resolved value's bytes. The
// remaining allocations are the occasional append growth on the output
// slice, which AdaptiveSizer (package templ) exists to minimize by
// pre-sizing that slice from previous renders of the same template.
// Nothing is escaped: literals, attribute values and context values are
// written verbatim.
package render

import (
	"fmt"

	"github.com/jpl-au/templ/bytecode"
	"github.com/jpl-au/templ/bytecursor"
	"github.com/jpl-au/templ/node"
)

// Render walks the compiled instruction stream in data, appending the HTML
// it describes to *out, and resolving any node.ContextValue instruction
// against ctx. ctx may be nil if data is known to contain no
// node.ContextValue instructions (e.g. CompiledTemplate.Static() is true).
func Render(data []byte, out *[]byte, ctx *node.TemplateContext) error {
	cur := bytecursor.New(data)
	for !cur.Done() {
		if err := renderOne(&cur, out, ctx); err != nil {
			return err
		}
	}
	return nil
}

func renderOne(cur *bytecursor.Cursor, out *[]byte, ctx *node.TemplateContext) error {
	op, err := cur.ReadOpcode()
	if err != nil {
		return err
	}
	switch op {
	case bytecode.OpLiteral:
		return renderLiteral(cur, out)
	case bytecode.OpTagOpen:
		return renderTag(cur, out, ctx)
	case bytecode.OpContextValue:
		return renderContextValue(cur, out, ctx)
	case bytecode.OpListCount:
		return renderList(cur, out, ctx)
	default:
		return fmt.Errorf("opcode 0x%02x: %w", byte(op), bytecode.ErrUnknownOpcode)
	}
}

func renderLiteral(cur *bytecursor.Cursor, out *[]byte) error {
	n, err := cur.ReadU32()
	if err != nil {
		return err
	}
	b, err := cur.ReadBytes(int(n))
	if err != nil {
		return err
	}
	*out = append(*out, b...)
	return nil
}

func renderTag(cur *bytecursor.Cursor, out *[]byte, ctx *node.TemplateContext) error {
	name, err := cur.ReadName()
	if err != nil {
		return err
	}
	modCount, err := cur.ReadByte()
	if err != nil {
		return err
	}

	*out = append(*out, '<')
	*out = append(*out, name...)
	for i := byte(0); i < modCount; i++ {
		modName, err := cur.ReadName()
		if err != nil {
			return err
		}
		valLen, err := cur.ReadU32()
		if err != nil {
			return err
		}
		val, err := cur.ReadBytes(int(valLen))
		if err != nil {
			return err
		}
		*out = append(*out, ' ')
		*out = append(*out, modName...)
		*out = append(*out, '=', '"')
		*out = append(*out, val...)
		*out = append(*out, '"')
	}
	*out = append(*out, '>')

	// A tag's content is written only when it compiles to at least one
	// instruction — node.None contributes zero bytes, so the next byte
	// here may already be the OpTagClose for this tag.
	if peeked, err := cur.PeekOpcode(); err != nil {
		return err
	} else if peeked != bytecode.OpTagClose {
		if err := renderOne(cur, out, ctx); err != nil {
			return err
		}
	}

	closeOp, err := cur.ReadOpcode()
	if err != nil {
		return err
	}
	if closeOp != bytecode.OpTagClose {
		return fmt.Errorf("expected OpTagClose for %q, got opcode 0x%02x: %w", name, byte(closeOp), bytecode.ErrCountMismatch)
	}
	if err := cur.ExpectName(name); err != nil {
		return err
	}

	*out = append(*out, '<', '/')
	*out = append(*out, name...)
	*out = append(*out, '>')
	return nil
}

func renderContextValue(cur *bytecursor.Cursor, out *[]byte, ctx *node.TemplateContext) error {
	segmentCount, err := cur.ReadByte()
	if err != nil {
		return err
	}
	var first string
	for i := byte(0); i < segmentCount; i++ {
		segment, err := cur.ReadName()
		if err != nil {
			return err
		}
		if i == 0 {
			first = segment
		}
	}
	if segmentCount == 0 || ctx == nil {
		return nil
	}
	*out = append(*out, ctx.Get(first).Bytes()...)
	return nil
}

func renderList(cur *bytecursor.Cursor, out *[]byte, ctx *node.TemplateContext) error {
	count, err := cur.ReadByte()
	if err != nil {
		return err
	}
	for i := byte(0); i < count; i++ {
		if err := renderOne(cur, out, ctx); err != nil {
			return err
		}
	}
	return nil
}
