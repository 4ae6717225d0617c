package html5

import "github.com/jpl-au/templ/node"

// Group[Parent] is a typed node.List: an ordered run of same-parent
// children with no wrapping tag of its own. It is the builder surface for
// loop-generated content (e.g. one Child[BodyTag] per row of some caller
// side collection), grounded on the teacher's node.FuncNodes helper.
type Group[Parent any] struct {
	children []Child[Parent]
}

// NewGroup builds a Group[Parent] from children, in order.
func NewGroup[Parent any](children ...Child[Parent]) Group[Parent] {
	return Group[Parent]{children: children}
}

func (Group[Parent]) childOf(Parent) {}

// Node converts g to a node.List.
func (g Group[Parent]) Node() node.Node {
	return toNode(g.children)
}
