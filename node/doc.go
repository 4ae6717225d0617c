// Package node's Literal, Attribute.Value and ContextValue content are all
// written to output verbatim. This repository performs no HTML escaping of
// any kind (spec non-goal): callers are responsible for ensuring any
// dynamic content placed in a TemplateContext, and any literal text passed
// to the builder DSL in package html5, is already safe for the position it
// will occupy in the document.
package node
