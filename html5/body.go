package html5

// Body is <body>...</body>, valid only as a child of Root.
type Body = element[RootTag]

// NewBody builds a Body from its children, in order.
func NewBody(children ...Child[BodyTag]) Body {
	return Body{name: "body", content: toNode(children)}
}

// AnyBodyTag is the type-erased view used where any element valid as a
// direct child of Body is accepted, independent of its concrete builder
// type (P, A, Text[BodyTag], Group[BodyTag], ...).
type AnyBodyTag = Child[BodyTag]
