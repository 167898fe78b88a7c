// -----------------------------------------------------------------------
// Tool contract - one recognizer per compiler family
// -----------------------------------------------------------------------

package semantic

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ternarybob/agnosco/internal/models"
)

// Kind is the exhaustive outcome of recognizing one Execution. Every caller
// must handle every variant; there is no implicit fallthrough.
type Kind int

const (
	// KindRecognized means the Execution produced one or more entries.
	KindRecognized Kind = iota
	// KindNotApplicable means no recognizer claimed the program, or the
	// claimed invocation is a non-compilation (pure link, positional-only).
	KindNotApplicable
	// KindQueryOnly means a recognized family's version/help/no-op query.
	KindQueryOnly
	// KindParseError means a recognized family could not classify the
	// argument combination.
	KindParseError
)

func (k Kind) String() string {
	switch k {
	case KindRecognized:
		return "recognized"
	case KindNotApplicable:
		return "not-applicable"
	case KindQueryOnly:
		return "query-only"
	case KindParseError:
		return "parse-error"
	default:
		return "unknown"
	}
}

// Result is the outcome of one recognition. Entries is populated only for
// KindRecognized; Err only for KindParseError.
type Result struct {
	Kind    Kind
	Entries []models.CompileCommand
	Err     *ParseError
}

// Recognized wraps entries in a successful result.
func Recognized(entries ...models.CompileCommand) Result {
	return Result{Kind: KindRecognized, Entries: entries}
}

// NotApplicable is the dropped-without-warning outcome.
func NotApplicable() Result {
	return Result{Kind: KindNotApplicable}
}

// QueryOnly is the version/help query outcome.
func QueryOnly() Result {
	return Result{Kind: KindQueryOnly}
}

// Errored wraps a parse failure.
func Errored(err *ParseError) Result {
	return Result{Kind: KindParseError, Err: err}
}

// ParseError carries enough context to diagnose a failed classification
// without re-parsing: the program, the full argument vector, and the specific
// token that triggered the failure.
type ParseError struct {
	Program   string
	Arguments []string
	Token     string
	Reason    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s (token %q, args %v)", e.Program, e.Reason, e.Token, e.Arguments)
}

// Tool recognizes and parses invocations for one compiler/toolchain family.
// Implementations are stateless beyond their immutable flag tables and are
// safe for unlimited concurrent use.
type Tool interface {
	// Name identifies the family in configuration and logs.
	Name() string
	// Matches reports whether the invoked program belongs to this family.
	// Pure comparison of the executable name against the family's alias set;
	// a true return commits the Execution to this tool.
	Matches(program string) bool
	// Recognize parses the Execution against the family's flag table.
	Recognize(exec models.Execution) Result
}

// executableName reduces a program path to the name recognizers match on:
// basename with any Windows executable suffix removed.
func executableName(program string) string {
	base := filepath.Base(program)
	if ext := filepath.Ext(base); strings.EqualFold(ext, ".exe") {
		base = base[:len(base)-len(ext)]
	}
	return base
}

// nameMatcher pairs a fixed alias set with optional patterns for versioned
// (gcc-12) and cross-prefixed (arm-linux-gnueabi-gcc) spellings.
type nameMatcher struct {
	exact    map[string]struct{}
	patterns []*regexp.Regexp
	extra    map[string]struct{}
}

func newNameMatcher(aliases []string, patterns ...string) *nameMatcher {
	m := &nameMatcher{exact: make(map[string]struct{}, len(aliases))}
	for _, a := range aliases {
		m.exact[a] = struct{}{}
	}
	for _, p := range patterns {
		m.patterns = append(m.patterns, regexp.MustCompile(p))
	}
	return m
}

// withExtra returns a copy that additionally answers to operator-supplied
// compiler names (config extra_compilers, CC/CXX/FC basenames).
func (m *nameMatcher) withExtra(names []string) *nameMatcher {
	if len(names) == 0 {
		return m
	}
	clone := &nameMatcher{exact: m.exact, patterns: m.patterns,
		extra: make(map[string]struct{}, len(names))}
	for _, n := range names {
		clone.extra[executableName(n)] = struct{}{}
	}
	return clone
}

func (m *nameMatcher) matches(program string) bool {
	name := executableName(program)
	if _, ok := m.exact[name]; ok {
		return true
	}
	if m.extra != nil {
		if _, ok := m.extra[name]; ok {
			return true
		}
	}
	for _, p := range m.patterns {
		if p.MatchString(name) {
			return true
		}
	}
	return false
}
