package templ

import (
	"sync"

	"github.com/jpl-au/templ/node"
)

// compiled is the global registry backing CompileNamed. It is unbounded:
// see the package doc's memory management warning.
var compiled sync.Map

// CompileNamed looks up a CompiledTemplate by name in a global registry,
// compiling it with build on first use and caching the result for every
// subsequent call with the same name. Once a name is cached, build is not
// invoked again for it; concurrent first calls with the same name may each
// run build, and all of them return the single result that was stored.
// Unlike Compile, CompileNamed is for trees whose shape never
// changes between calls; dynamic content belongs in a TemplateContext
// supplied to Render, not in build's closure.
func CompileNamed(name string, build func() node.Node, opts ...CompileOption) (*CompiledTemplate, error) {
	if val, ok := compiled.Load(name); ok {
		entry := val.(*namedEntry) //nolint:forcetypeassert // type guaranteed by Store below
		return entry.tmpl, entry.err
	}

	tmpl, err := Compile(build(), opts...)
	val, _ := compiled.LoadOrStore(name, &namedEntry{tmpl: tmpl, err: err})
	entry := val.(*namedEntry) //nolint:forcetypeassert // type guaranteed by Store above
	return entry.tmpl, entry.err
}

type namedEntry struct {
	tmpl *CompiledTemplate
	err  error
}

// ResetCompiled removes named templates from the global registry, so the
// next CompileNamed call with that name rebuilds and recompiles it. Call
// with no arguments to clear every entry.
func ResetCompiled(names ...string) {
	if len(names) == 0 {
		compiled.Range(func(key, _ any) bool {
			compiled.Delete(key)
			return true
		})
		return
	}
	for _, name := range names {
		compiled.Delete(name)
	}
}
