package html5

import "github.com/jpl-au/templ/node"

// Optional[Parent] resolves to its wrapped child, or to nothing at all when
// Present is false. It is the builder-level equivalent of node.None —
// useful for "render this element only if some condition holds" without
// the caller having to branch on node.Node directly.
type Optional[Parent any] struct {
	present bool
	inner   Child[Parent]
}

func (Optional[Parent]) childOf(Parent) {}

// Node resolves o to its inner node, or node.None{} if absent.
func (o Optional[Parent]) Node() node.Node {
	if !o.present {
		return node.None{}
	}
	return o.inner.Node()
}

// Some wraps child as a present Optional[Parent].
func Some[Parent any](child Child[Parent]) Optional[Parent] {
	return Optional[Parent]{present: true, inner: child}
}

// NoneOf returns an absent Optional[Parent].
func NoneOf[Parent any]() Optional[Parent] {
	return Optional[Parent]{}
}

// When returns child wrapped in a present Optional[Parent] if cond is true,
// or an absent one otherwise.
func When[Parent any](cond bool, child Child[Parent]) Optional[Parent] {
	if !cond {
		return NoneOf[Parent]()
	}
	return Some(child)
}
