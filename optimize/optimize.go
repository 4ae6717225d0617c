// Package optimize folds a node.Node tree into an equivalent tree with
// fewer nodes: adjacent literals are merged, nested lists are flattened,
// and single-element or empty lists collapse to their sole child or to
// node.None. It is the one stage in the pipeline allowed to call a
// node.Lazy's thunk — by the time bytecode.Write sees a tree, no Lazy node
// may remain in it.
package optimize

import (
	"strings"

	"github.com/jpl-au/templ/node"
)

// Optimize returns a tree equivalent to n with every rewrite rule applied:
// no two adjacent node.List elements are both node.Literal, no node.List
// contains a nested node.List or a node.None, an empty node.List becomes
// node.None{}, and a single-element node.List collapses to that element.
// Optimize is idempotent: Optimize(Optimize(n)) produces byte-identical
// output to Optimize(n).
//
// The second return value reports whether the optimized tree is static — it
// contains no node.ContextValue anywhere in its subtree, so rendering it
// never needs to consult a TemplateContext.
func Optimize(n node.Node) (node.Node, bool) {
	return optimizeNode(n)
}

// optimizeNode returns the optimized form of n along with whether n is
// "static" — contains no node.ContextValue anywhere in its subtree once
// every node.Lazy in it has been resolved. Static subtrees are exactly those the renderer can, in
// principle, emit without consulting a TemplateContext; CompiledTemplate
// uses this at the root to decide whether a render needs a context at all.
func optimizeNode(n node.Node) (node.Node, bool) {
	switch v := n.(type) {
	case nil:
		return node.None{}, true
	case node.None:
		return node.None{}, true
	case node.Literal:
		return v, true
	case node.List:
		return optimizeList(v)
	case *node.Tag:
		return optimizeTag(v)
	case node.ContextValue:
		return v, false
	case node.Lazy:
		return optimizeNode(v.Thunk())
	default:
		return v, true
	}
}

// optimizeTag optimizes t's content in place. When that content folds down
// to a single node.Literal, the whole tag folds with it into one
// node.Literal holding the tag's literal HTML text — a tag's open and close
// markup and its modifiers are themselves static text, so a tag wrapping
// nothing but static content is, as a whole, static content. This is what
// lets an entirely-literal tree compile to a single OpLiteral instruction
// instead of an OpTagOpen/OpTagClose pair around one. A tag whose content
// does not fold to a Literal (e.g. it contains a ContextValue, or is
// node.None) is returned as a new *node.Tag — tags are never mutated in
// place, since callers may hold other references into the same
// pre-optimization tree.
func optimizeTag(t *node.Tag) (node.Node, bool) {
	content, static := optimizeNode(t.Content)
	if body, ok := content.(node.Literal); ok {
		return node.Literal(foldedTagLiteral(t.Name, t.Modifiers, string(body))), static
	}
	return &node.Tag{Name: t.Name, Modifiers: t.Modifiers, Content: content}, static
}

// foldedTagLiteral renders name, modifiers and body as the literal HTML text
// a *node.Tag with that shape would produce at render time — open tag with
// space-separated key="value" modifiers, body, matching close tag.
func foldedTagLiteral(name string, modifiers []node.Attribute, body string) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name)
	for _, m := range modifiers {
		b.WriteByte(' ')
		b.WriteString(m.Name)
		b.WriteString(`="`)
		b.WriteString(m.Value)
		b.WriteByte('"')
	}
	b.WriteByte('>')
	b.WriteString(body)
	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')
	return b.String()
}

// optimizeList applies every list-level rewrite rule: each element is
// optimized first, nested node.List results are spliced in place
// (flattening), node.None elements are dropped, and adjacent node.Literal
// runs are merged into one. The result then collapses per the rules
// documented on Optimize.
func optimizeList(l node.List) (node.Node, bool) {
	flat := make(node.List, 0, len(l))
	static := true
	for _, child := range l {
		optimized, childStatic := optimizeNode(child)
		static = static && childStatic
		flat = appendFlattened(flat, optimized)
	}
	merged := mergeAdjacentLiterals(flat)
	switch len(merged) {
	case 0:
		return node.None{}, true
	case 1:
		return merged[0], static
	default:
		return merged, static
	}
}

// appendFlattened appends n to list, splicing n's own elements in place if
// n is itself a node.List (already optimized, so it carries no further
// nested lists or None elements), and dropping n entirely if it is
// node.None.
func appendFlattened(list node.List, n node.Node) node.List {
	switch v := n.(type) {
	case node.None:
		return list
	case node.List:
		return append(list, v...)
	default:
		return append(list, n)
	}
}

// mergeAdjacentLiterals collapses every run of consecutive node.Literal
// elements in list into a single node.Literal, preserving the order and
// position of all other elements.
func mergeAdjacentLiterals(list node.List) node.List {
	out := make(node.List, 0, len(list))
	for _, n := range list {
		lit, isLiteral := n.(node.Literal)
		if !isLiteral {
			out = append(out, n)
			continue
		}
		if len(out) > 0 {
			if prev, ok := out[len(out)-1].(node.Literal); ok {
				out[len(out)-1] = prev + lit
				continue
			}
		}
		out = append(out, lit)
	}
	return out
}
