// Package templ compiles a node.Node tree into a compact binary
// instruction stream and renders that stream into HTML bytes with minimal
// allocation.
//
// Construction and rendering are intentionally separate phases: build a
// tree with the typed builder DSL in package html5 (or by hand with
// package node), Compile it once, and Render it as many times as needed —
// each Render call is independent and safe to run from multiple
// goroutines concurrently against the same CompiledTemplate.
//
// Memory Management Warning:
// CompileNamed's global registry grows without bound as new names are
// used. It never shrinks on its own. If names are derived from dynamic
// data (e.g. a per-request identifier), call ResetCompiled(name) once the
// template is no longer needed, or ResetCompiled() to clear the whole
// registry.
package templ

import (
	"errors"

	"github.com/jpl-au/templ/bytecode"
	"github.com/jpl-au/templ/node"
	"github.com/jpl-au/templ/optimize"
	"github.com/jpl-au/templ/render"
)

// ErrNilTemplate is returned by Render when called with a nil
// *CompiledTemplate.
var ErrNilTemplate = errors.New("templ: render of nil *CompiledTemplate")

// CompiledTemplate owns an immutable compiled instruction stream. It is
// safe for concurrent use: Render never changes the instruction stream and
// only reads the context; the one piece of template state it updates is
// its AdaptiveSizer's statistics, which the sizer synchronizes itself.
type CompiledTemplate struct {
	code   []byte
	static bool
	sizer  *AdaptiveSizer
}

// SizerCfg configures a CompiledTemplate's adaptive output-buffer sizing.
type SizerCfg struct {
	Max          int // samples before establishing baseline
	Variance     int // threshold percentage for detecting size changes
	GrowthFactor int // multiplier percentage for average size
}

// CompileOption customizes a Compile call.
type CompileOption func(*compileOptions)

type compileOptions struct {
	sizerCfg *SizerCfg
}

// WithSizing overrides the default adaptive buffer-sizing parameters used
// to pre-size each Render call's output buffer.
func WithSizing(cfg SizerCfg) CompileOption {
	return func(o *compileOptions) { o.sizerCfg = &cfg }
}

// Template is satisfied by any type whose Body describes the tree to
// compile. CompileTyped exists so a template can be a named Go type rather
// than a bare node.Node. CompileTyped calls Body on T's zero value, so any
// fields T declares are unset when Body runs.
type Template interface {
	Body() node.Node
}

// Compile optimizes root and writes it to an immutable bytecode stream.
// The returned CompiledTemplate can be rendered any number of times.
func Compile(root node.Node, opts ...CompileOption) (*CompiledTemplate, error) {
	var o compileOptions
	for _, opt := range opts {
		opt(&o)
	}

	optimized, static := optimize.Optimize(root)
	code, err := bytecode.Write(optimized)
	if err != nil {
		return nil, err
	}

	sizer := NewAdaptiveSizer()
	if o.sizerCfg != nil {
		sizer.Configure(o.sizerCfg.Max, o.sizerCfg.Variance, o.sizerCfg.GrowthFactor)
	}

	return &CompiledTemplate{code: code, static: static, sizer: sizer}, nil
}

// CompileTyped compiles the Body of a zero-value T. It exists for
// templates expressed as named Go types rather than as bare trees built
// inline at the call site.
func CompileTyped[T Template](opts ...CompileOption) (*CompiledTemplate, error) {
	var t T
	return Compile(t.Body(), opts...)
}

// Static reports whether tmpl's tree contains no node.ContextValue — if
// true, Render never needs a non-nil *node.TemplateContext.
func (tmpl *CompiledTemplate) Static() bool {
	return tmpl.static
}

// Render appends tmpl's HTML to *out, resolving any node.ContextValue
// instruction against ctx. ctx may be nil if tmpl.Static() is true.
//
// Render pre-grows *out using tmpl's adaptive size hint, then feeds the
// actual bytes written back into that hint so later calls size the buffer
// more accurately; see AdaptiveSizer.
func Render(tmpl *CompiledTemplate, out *[]byte, ctx *node.TemplateContext) error {
	if tmpl == nil {
		return ErrNilTemplate
	}

	before := len(*out)
	if hint := tmpl.sizer.GetBaseline(); hint > 0 {
		grow(out, hint)
	}

	if err := render.Render(tmpl.code, out, ctx); err != nil {
		return err
	}

	tmpl.sizer.UpdateStats(len(*out) - before)
	return nil
}

// RenderString is a convenience wrapper around Render that returns a fresh
// string instead of appending to a caller-supplied buffer.
func RenderString(tmpl *CompiledTemplate, ctx *node.TemplateContext) (string, error) {
	var buf []byte
	if err := Render(tmpl, &buf, ctx); err != nil {
		return "", err
	}
	return string(buf), nil
}

// grow ensures *out has at least extra bytes of spare capacity beyond its
// current length, without changing its length.
func grow(out *[]byte, extra int) {
	if cap(*out)-len(*out) >= extra {
		return
	}
	grown := make([]byte, len(*out), len(*out)+extra)
	copy(grown, *out)
	*out = grown
}
