package html5

import "github.com/jpl-au/templ/node"

// A is <a>...</a>, valid only as a child of Body.
type A = element[BodyTag]

// NewA builds an A from its children, in order.
func NewA(children ...Child[BodyTag]) A {
	return A{name: "a", content: toNode(children)}
}

// Href appends an href="..." modifier.
func (e element[Parent]) Href(value string) element[Parent] {
	return e.withModifier(node.Attribute{Name: "href", Value: value})
}
