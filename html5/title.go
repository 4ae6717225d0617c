package html5

import "github.com/jpl-au/templ/node"

// Title is <title>...</title>, valid only as a child of Head.
type Title = element[HeadTag]

// NewTitle builds a Title wrapping a single literal text value.
func NewTitle(text string) Title {
	return Title{name: "title", content: node.Literal(text)}
}
