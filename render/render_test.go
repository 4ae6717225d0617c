package render

import (
	"errors"
	"testing"

	"github.com/jpl-au/templ/bytecode"
	"github.com/jpl-au/templ/node"
)

func compile(t *testing.T, n node.Node) []byte {
	t.Helper()
	code, err := bytecode.Write(n)
	if err != nil {
		t.Fatalf("bytecode.Write returned error: %v", err)
	}
	return code
}

// TestRenderLiteral verifies the simplest path: a literal renders as its
// raw bytes.
func TestRenderLiteral(t *testing.T) {
	code := compile(t, node.Literal("hello"))

	var out []byte
	if err := Render(code, &out, nil); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if string(out) != "hello" {
		t.Errorf("got %q, want %q", out, "hello")
	}
}

// TestRenderTagWithModifiers verifies a tag renders its open tag with
// space-separated key="value" modifiers, its content, then a matching
// close tag.
func TestRenderTagWithModifiers(t *testing.T) {
	tag := &node.Tag{
		Name:      "a",
		Modifiers: []node.Attribute{{Name: "href", Value: "/x"}},
		Content:   node.Literal("click"),
	}
	code := compile(t, tag)

	var out []byte
	if err := Render(code, &out, nil); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	want := `<a href="/x">click</a>`
	if string(out) != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

// TestRenderTagWithNoContent verifies a tag compiled from node.None content
// (an empty element such as a childless head) renders its open and close
// tags back to back, since None contributes zero instructions to the
// stream rather than an explicit empty-content marker.
func TestRenderTagWithNoContent(t *testing.T) {
	tag := &node.Tag{Name: "head", Content: node.None{}}
	code := compile(t, tag)

	var out []byte
	if err := Render(code, &out, nil); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	want := `<head></head>`
	if string(out) != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

// TestRenderList verifies a list renders each child in order with no
// separator between them.
func TestRenderList(t *testing.T) {
	code := compile(t, node.List{node.Literal("a"), node.Literal("b"), node.Literal("c")})

	var out []byte
	if err := Render(code, &out, nil); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if string(out) != "abc" {
		t.Errorf("got %q, want %q", out, "abc")
	}
}

// TestRenderContextValue verifies a ContextValue resolves the first path
// segment from the supplied TemplateContext.
func TestRenderContextValue(t *testing.T) {
	code := compile(t, node.ContextValue{Path: []string{"name"}})

	ctx := node.NewTemplateContext()
	ctx.Set("name", node.String("Alice"))

	var out []byte
	if err := Render(code, &out, ctx); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if string(out) != "Alice" {
		t.Errorf("got %q, want %q", out, "Alice")
	}
}

// TestRenderContextValueMissingKey verifies that a key absent from the
// context resolves to nothing, rather than erroring or writing a
// placeholder.
func TestRenderContextValueMissingKey(t *testing.T) {
	code := compile(t, node.ContextValue{Path: []string{"missing"}})

	var out []byte
	if err := Render(code, &out, node.NewTemplateContext()); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("missing key should render nothing, got %q", out)
	}
}

// TestRenderAppendsWithoutTruncating verifies Render appends to whatever
// *out already contains, so multiple renders can share one buffer.
func TestRenderAppendsWithoutTruncating(t *testing.T) {
	code := compile(t, node.Literal("!"))

	out := []byte("hi")
	if err := Render(code, &out, nil); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if string(out) != "hi!" {
		t.Errorf("got %q, want %q", out, "hi!")
	}
}

// TestRenderUnknownOpcode verifies a corrupted byte stream is rejected
// rather than misinterpreted.
func TestRenderUnknownOpcode(t *testing.T) {
	var out []byte
	err := Render([]byte{0xff}, &out, nil)
	if !errors.Is(err, bytecode.ErrUnknownOpcode) {
		t.Errorf("expected ErrUnknownOpcode, got %v", err)
	}
}

// TestRenderMismatchedCloseTag verifies that a stream whose OpTagClose
// name doesn't match its OpTagOpen is rejected, instead of emitting an
// incorrect close tag.
func TestRenderMismatchedCloseTag(t *testing.T) {
	// Hand-build a stream: OpTagOpen "a" / 0 modifiers / OpLiteral "x" /
	// OpTagClose "b" — the writer would never produce this, but the
	// renderer must still defend against a malformed or hand-rolled stream.
	var code []byte
	code = append(code, byte(bytecode.OpTagOpen), 1, 'a', 0)
	code = append(code, byte(bytecode.OpLiteral), 1, 0, 0, 0, 'x')
	code = append(code, byte(bytecode.OpTagClose), 1, 'b')

	var out []byte
	err := Render(code, &out, nil)
	if !errors.Is(err, bytecode.ErrCountMismatch) {
		t.Errorf("expected ErrCountMismatch, got %v", err)
	}
}
