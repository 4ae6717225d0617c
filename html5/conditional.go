package html5

import "github.com/jpl-au/templ/node"

// Conditional[Parent] picks between two branches at tree-construction time,
// both constrained to the same parent tag. It is grounded on the teacher's
// node.Condition(...).True(...).False(...) builder chain.
type Conditional[Parent any] struct {
	cond      bool
	whenTrue  Child[Parent]
	whenFalse Child[Parent]
}

// Condition starts a Conditional[Parent] evaluated on cond.
func Condition[Parent any](cond bool) Conditional[Parent] {
	return Conditional[Parent]{cond: cond}
}

// True sets the branch used when cond is true.
func (c Conditional[Parent]) True(child Child[Parent]) Conditional[Parent] {
	c.whenTrue = child
	return c
}

// False sets the branch used when cond is false.
func (c Conditional[Parent]) False(child Child[Parent]) Conditional[Parent] {
	c.whenFalse = child
	return c
}

func (Conditional[Parent]) childOf(Parent) {}

// Node resolves c to whichever branch its condition selects. An unset
// branch resolves to node.None{}.
func (c Conditional[Parent]) Node() node.Node {
	branch := c.whenFalse
	if c.cond {
		branch = c.whenTrue
	}
	if branch == nil {
		return node.None{}
	}
	return branch.Node()
}
