// Package html5 is the typed builder DSL: a small fixed set of HTML5
// elements, each constrained at compile time to the parent tags that may
// contain it. Every builder function returns a node.Node (or a type that
// converts to one via .Node()), so the tree produced here is exactly the
// tree the optimize, bytecode and render packages operate on — there is no
// separate "virtual DOM" representation to bridge.
//
// Void elements (<br>, <img>, <hr>, ...) are intentionally not defined; see
// the package-level discussion in doc.go for why, and how to add one.
package html5

import "github.com/jpl-au/templ/node"

// RootTag, HeadTag and BodyTag are phantom parent markers. They carry no
// fields and are never instantiated; their only purpose is to appear as the
// type argument to Child[Parent], so that html5.Child[BodyTag] and
// html5.Child[HeadTag] are distinct, non-interchangeable constraints even
// though both describe "a node.Node with a parent".
type RootTag struct{}
type HeadTag struct{}
type BodyTag struct{}

// Child is satisfied by anything that may appear as content of Parent. The
// Parent type parameter only has teeth because childOf takes it as an
// argument: without Parent appearing in the method signature, Child[Head]
// and Child[Body] would both be satisfied by any childOf(any)-shaped type
// and the constraint would enforce nothing. childOf is unexported, so only
// types declared in this package can ever implement Child[Parent] — the
// same sealing trick package node uses for Node, applied one level up so
// the builder DSL's parent/child rules are also closed.
//
// Child deliberately does not embed node.Node: an unexported method
// declared on a type outside package node (isNode) does not satisfy an
// interface declared in package node, even with an identical spelling —
// Go resolves unexported method identity by package. Node() is this
// package's own conversion method instead, called explicitly wherever a
// node.Node is required.
type Child[Parent any] interface {
	childOf(Parent)
	Node() node.Node
}

// element is the shared representation behind every concrete tag type
// (Head, Body, Title, P, A). Parent is a phantom type parameter:
// it never appears in a field, only in the childOf method below, which is
// exactly what makes Child[Parent] discriminate by Parent.
type element[Parent any] struct {
	name      string
	modifiers []node.Attribute
	content   node.Node
}

func (element[Parent]) childOf(Parent) {}

// Node converts e to the node.Node the rest of the pipeline understands.
func (e element[Parent]) Node() node.Node {
	return &node.Tag{Name: e.name, Modifiers: e.modifiers, Content: e.content}
}

// withModifier returns a copy of e with m appended to its modifier list.
// Builder methods like Class/ID/Data chain through this so the original
// value returned by NewP/NewA/NewHead/... is never mutated.
func (e element[Parent]) withModifier(m node.Attribute) element[Parent] {
	mods := make([]node.Attribute, len(e.modifiers), len(e.modifiers)+1)
	copy(mods, e.modifiers)
	mods = append(mods, m)
	e.modifiers = mods
	return e
}

// Class appends a class="..." modifier.
func (e element[Parent]) Class(value string) element[Parent] {
	return e.withModifier(node.Attribute{Name: "class", Value: value})
}

// ID appends an id="..." modifier.
func (e element[Parent]) ID(value string) element[Parent] {
	return e.withModifier(node.Attribute{Name: "id", Value: value})
}

// Data appends a data-key="value" modifier.
func (e element[Parent]) Data(key, value string) element[Parent] {
	return e.withModifier(node.Attribute{Name: "data-" + key, Value: value})
}

// Text[Parent] is a leaf node.Literal typed to a specific parent, so it can
// be used anywhere a Child[Parent] is expected (e.g. directly inside
// Group[Parent]).
type Text[Parent any] struct {
	value string
}

func (Text[Parent]) childOf(Parent) {}

// Node converts t to the underlying node.Literal.
func (t Text[Parent]) Node() node.Node { return node.Literal(t.value) }

// TextIn builds a Text[Parent] wrapping value.
func TextIn[Parent any](value string) Text[Parent] {
	return Text[Parent]{value: value}
}

// toNode flattens a list of this package's builder values into the
// node.Node tree the optimizer and bytecode writer operate on.
func toNode[Parent any](children []Child[Parent]) node.Node {
	if len(children) == 0 {
		return node.None{}
	}
	if len(children) == 1 {
		return children[0].Node()
	}
	list := make(node.List, len(children))
	for i, c := range children {
		list[i] = c.Node()
	}
	return list
}
