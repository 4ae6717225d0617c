package html5

import "github.com/jpl-au/templ/node"

// Root is a document fragment: it has no parent and emits no wrapping tag
// of its own, matching the teacher's html.Fragment. A Root typically
// contains exactly a Head and a Body, but nothing enforces that beyond
// convention — Root accepts any Child[RootTag].
type Root struct {
	content node.Node
}

// NewRoot builds a Root from its children, in order.
func NewRoot(children ...Child[RootTag]) Root {
	return Root{content: toNode(children)}
}

// Node converts r to the node.Node the rest of the pipeline understands. A
// fragment has no tag of its own, so it degrades directly to its content.
func (r Root) Node() node.Node { return r.content }
