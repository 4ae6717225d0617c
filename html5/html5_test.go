package html5

import (
	"testing"

	"github.com/jpl-au/templ/node"
)

// nodesEqual compares two node.Node trees structurally for the shapes this
// package's tests need (Literal, *Tag, None).
func nodesEqual(t *testing.T, got, want node.Node) {
	t.Helper()
	switch w := want.(type) {
	case node.Literal:
		g, ok := got.(node.Literal)
		if !ok || g != w {
			t.Errorf("got %#v, want %#v", got, want)
		}
	case node.None:
		if _, ok := got.(node.None); !ok {
			t.Errorf("got %#v, want node.None{}", got)
		}
	case *node.Tag:
		g, ok := got.(*node.Tag)
		if !ok {
			t.Fatalf("got %#v, want *node.Tag", got)
		}
		if g.Name != w.Name {
			t.Errorf("got tag name %q, want %q", g.Name, w.Name)
		}
		nodesEqual(t, g.Content, w.Content)
	default:
		t.Fatalf("unsupported want type %T", want)
	}
}

// TestRootDegradesToContent verifies that Root has no wrapping tag of its
// own — it is a pure fragment, matching the teacher's html.Fragment.
func TestRootDegradesToContent(t *testing.T) {
	root := NewRoot(NewHead(), NewBody())
	if _, ok := root.Node().(node.List); !ok {
		t.Errorf("got %#v, want node.List of Head and Body", root.Node())
	}
}

// TestTagChaining verifies that chained Class and Href calls accumulate
// modifiers in the order called.
func TestTagChaining(t *testing.T) {
	a := NewA(TextIn[BodyTag]("link")).Class("btn").Href("/go")

	tag, ok := a.Node().(*node.Tag)
	if !ok {
		t.Fatalf("got %#v, want *node.Tag", a.Node())
	}
	want := []node.Attribute{{Name: "class", Value: "btn"}, {Name: "href", Value: "/go"}}
	if len(tag.Modifiers) != len(want) {
		t.Fatalf("got %d modifiers, want %d", len(tag.Modifiers), len(want))
	}
	for i := range want {
		if tag.Modifiers[i] != want[i] {
			t.Errorf("modifier %d: got %#v, want %#v", i, tag.Modifiers[i], want[i])
		}
	}
}

// TestTagChainingDoesNotMutateOriginal verifies that calling a modifier
// method on a built element leaves the original value's modifier list
// unchanged, since element values are passed by value throughout this
// package.
func TestTagChainingDoesNotMutateOriginal(t *testing.T) {
	base := NewP(TextIn[BodyTag]("text"))
	withClass := base.Class("highlight")

	baseTag := base.Node().(*node.Tag)
	withClassTag := withClass.Node().(*node.Tag)

	if len(baseTag.Modifiers) != 0 {
		t.Errorf("base element should be unaffected by chaining, got %d modifiers", len(baseTag.Modifiers))
	}
	if len(withClassTag.Modifiers) != 1 {
		t.Errorf("chained element should carry the added modifier, got %d modifiers", len(withClassTag.Modifiers))
	}
}

// TestOptionalWhenTrue verifies that Some/When-true resolve to the wrapped
// child.
func TestOptionalWhenTrue(t *testing.T) {
	opt := When[BodyTag](true, TextIn[BodyTag]("shown"))
	nodesEqual(t, opt.Node(), node.Literal("shown"))
}

// TestOptionalWhenFalse verifies that an absent Optional resolves to
// node.None{}.
func TestOptionalWhenFalse(t *testing.T) {
	opt := When[BodyTag](false, TextIn[BodyTag]("hidden"))
	nodesEqual(t, opt.Node(), node.None{})
}

// TestConditionalBranches verifies that Condition/True/False pick the
// correct branch based on the boolean evaluated when Condition was
// called — both branches share the same parent tag.
func TestConditionalBranches(t *testing.T) {
	whenTrue := Condition[BodyTag](true).
		True(TextIn[BodyTag]("yes")).
		False(TextIn[BodyTag]("no"))
	nodesEqual(t, whenTrue.Node(), node.Literal("yes"))

	whenFalse := Condition[BodyTag](false).
		True(TextIn[BodyTag]("yes")).
		False(TextIn[BodyTag]("no"))
	nodesEqual(t, whenFalse.Node(), node.Literal("no"))
}

// TestGroupFlattensChildren verifies that Group produces a node.List of
// its children in order, with no wrapping tag.
func TestGroupFlattensChildren(t *testing.T) {
	group := NewGroup[BodyTag](TextIn[BodyTag]("a"), TextIn[BodyTag]("b"))
	list, ok := group.Node().(node.List)
	if !ok {
		t.Fatalf("got %#v, want node.List", group.Node())
	}
	if len(list) != 2 {
		t.Fatalf("got %d elements, want 2", len(list))
	}
}

// TestDeferResolvesThunkLazily verifies that Defer's Node() wraps its
// thunk in a node.Lazy rather than calling it immediately — resolution is
// the optimizer's job.
func TestDeferResolvesThunkLazily(t *testing.T) {
	called := false
	d := Defer[BodyTag]{Thunk: func() Child[BodyTag] {
		called = true
		return TextIn[BodyTag]("late")
	}}

	n := d.Node()
	if called {
		t.Error("Defer.Node() should not invoke its thunk eagerly")
	}

	lazy, ok := n.(node.Lazy)
	if !ok {
		t.Fatalf("got %#v, want node.Lazy", n)
	}
	resolved := lazy.Thunk()
	if !called {
		t.Error("thunk should run when the node.Lazy's Thunk is invoked")
	}
	if resolved != node.Literal("late") {
		t.Errorf("got %#v, want %#v", resolved, node.Literal("late"))
	}
}
