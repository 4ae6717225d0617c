package html5

// Head is <head>...</head>, valid only as a child of Root.
type Head = element[RootTag]

// NewHead builds a Head from its children, in order.
func NewHead(children ...Child[HeadTag]) Head {
	return Head{name: "head", content: toNode(children)}
}
