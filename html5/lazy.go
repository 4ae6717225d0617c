package html5

import "github.com/jpl-au/templ/node"

// Defer[Parent] postpones building its child until optimization time. It
// exists for builder call sites that need to refer to content not yet
// constructed at the point Defer is created — e.g. a recursive component,
// or content that depends on state only available once the rest of the
// surrounding tree literal has been evaluated. Defer is resolved exactly
// once: Thunk is invoked during optimize.Optimize and never again.
type Defer[Parent any] struct {
	Thunk func() Child[Parent]
}

func (Defer[Parent]) childOf(Parent) {}

// Node converts d to a node.Lazy wrapping its thunk.
func (d Defer[Parent]) Node() node.Node {
	return node.Lazy{Thunk: func() node.Node { return d.Thunk().Node() }}
}
