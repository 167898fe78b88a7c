// -----------------------------------------------------------------------
// Tool Registry - ordered dispatch of Executions to family recognizers
// -----------------------------------------------------------------------

package semantic

import (
	"github.com/ternarybob/agnosco/internal/models"
)

// Registry is a fixed, ordered sequence of recognizers established at
// startup. Ordering is a priority and part of the contract: the first tool
// whose name matcher succeeds owns the Execution exclusively, with no
// fallback to a later tool even when its parse fails. Registries are
// immutable after construction and safe for unlimited concurrent use.
type Registry struct {
	tools []Tool
}

// Options configure DefaultRegistry.
type Options struct {
	// Tools restricts and re-orders the registered families by name. Empty
	// keeps the documented default order.
	Tools []string
	// ExtraCompilers are additional program names (from configuration or the
	// CC/CXX/FC environment variables) recognized as GCC-syntax compilers.
	ExtraCompilers []string
}

// NewRegistry builds a registry over an explicit ordered tool list.
func NewRegistry(tools ...Tool) *Registry {
	return &Registry{tools: tools}
}

// DefaultRegistry builds the standard registry. The priority order is a
// stable, documented contract, not an accident of construction:
//
//  1. wrapper  - ccache/distcc/sccache must unwrap before any compiler match
//  2. mpi      - launcher aliases are narrower than the compiler patterns
//  3. crayftn  - fixed alias set (ftn, crayftn)
//  4. cuda     - fixed alias set (nvcc)
//  5. intel    - fixed alias set (icc, icx, ifort, ...)
//  6. gfortran - versioned/cross-prefixed pattern
//  7. clang    - versioned/cross-prefixed pattern
//  8. gcc      - broadest pattern, always last
func DefaultRegistry(opts Options) *Registry {
	compilers := []Tool{
		NewMpiTool(nil),
		NewCrayFtnTool(nil),
		NewCudaTool(nil),
		NewIntelTool(nil),
		NewGfortranTool(nil),
		NewClangTool(nil),
		NewGccTool(opts.ExtraCompilers),
	}
	ordered := append([]Tool{NewWrapperTool(compilers)}, compilers...)

	if len(opts.Tools) == 0 {
		return NewRegistry(ordered...)
	}

	byName := make(map[string]Tool, len(ordered))
	for _, t := range ordered {
		byName[t.Name()] = t
	}
	var selected []Tool
	for _, name := range opts.Tools {
		if t, ok := byName[name]; ok {
			selected = append(selected, t)
		}
	}
	return NewRegistry(selected...)
}

// Tools returns the registered recognizers in priority order.
func (r *Registry) Tools() []Tool {
	return r.tools
}

// Match finds the first recognizer claiming the program name. Pure function
// of the program path; used by callers that memoize dispatch.
func (r *Registry) Match(program string) (Tool, bool) {
	for _, t := range r.tools {
		if t.Matches(program) {
			return t, true
		}
	}
	return nil, false
}

// Recognize dispatches one Execution: first name match commits, then the
// committed tool's parse decides the outcome. No recognizer claiming the
// program yields NotApplicable with no attempted parse.
func (r *Registry) Recognize(exec models.Execution) Result {
	tool, ok := r.Match(exec.Program)
	if !ok {
		return NotApplicable()
	}
	return tool.Recognize(exec)
}
