// -----------------------------------------------------------------------
// Wrapper recognizer - compiler caches and distributed-build launchers
// -----------------------------------------------------------------------

package semantic

import (
	"strings"

	"github.com/ternarybob/agnosco/internal/models"
)

// wrapperTool recognizes compiler-cache and distribution wrappers (ccache,
// distcc, sccache). The wrapped compiler invocation is unwrapped and
// re-dispatched against the registered compiler recognizers, so the produced
// entries replay the real compiler without the wrapper.
type wrapperTool struct {
	matcher *nameMatcher
	// inner recognizers for the wrapped invocation, in registry priority
	// order. Assigned once at registry construction.
	inner []Tool
}

// NewWrapperTool builds the wrapper recognizer. The inner recognizers are the
// compiler tools the wrapped invocation is re-dispatched against.
func NewWrapperTool(inner []Tool) Tool {
	return &wrapperTool{
		matcher: newNameMatcher([]string{"ccache", "distcc", "sccache"}),
		inner:   inner,
	}
}

func (t *wrapperTool) Name() string { return "wrapper" }

func (t *wrapperTool) Matches(program string) bool {
	return t.matcher.matches(program)
}

func (t *wrapperTool) Recognize(exec models.Execution) Result {
	// Bare wrapper invocations and wrapper-option invocations (ccache -s,
	// distcc --version) are maintenance queries, never compilations.
	if len(exec.Arguments) == 0 || strings.HasPrefix(exec.Arguments[0], "-") {
		return QueryOnly()
	}

	inner := models.Execution{
		Program:     exec.Arguments[0],
		Arguments:   exec.Arguments[1:],
		WorkingDir:  exec.WorkingDir,
		Environment: exec.Environment,
	}

	// Wrappers stack (ccache distcc gcc ...).
	if t.Matches(inner.Program) {
		return t.Recognize(inner)
	}
	for _, tool := range t.inner {
		if tool.Matches(inner.Program) {
			return tool.Recognize(inner)
		}
	}
	return NotApplicable()
}
