// -----------------------------------------------------------------------
// Argument parsing - shared scan and classification over a family table
// -----------------------------------------------------------------------

package semantic

import (
	"path/filepath"
	"strings"

	"github.com/ternarybob/agnosco/internal/models"
)

// argument is one classified unit of the original vector: a flag with its
// consumed value token(s), a source file, or an opaque positional.
type argument struct {
	// tokens are the original token(s), order and spelling preserved.
	tokens   []string
	category FlagCategory
	// name is the canonical flag spelling; empty for positionals.
	name string
	// value is the flag value or the source path.
	value string
}

// scanArguments tokenizes the vector in order against the family table.
// Dash-prefixed tokens absent from the table become pass-through arguments;
// non-flag tokens become sources when their extension is known, opaque
// positionals otherwise. The only failure is a one-value flag at the end of
// the vector with nothing left to consume.
func scanArguments(table *FlagsByName, sources SuffixSet, exec models.Execution) ([]argument, *ParseError) {
	args := make([]argument, 0, len(exec.Arguments))
	for i := 0; i < len(exec.Arguments); i++ {
		token := exec.Arguments[i]

		if !strings.HasPrefix(token, "-") || token == "-" {
			cat := CategoryIgnored
			value := ""
			if sources.Contains(token) {
				cat = CategoryInput
				value = token
			}
			args = append(args, argument{tokens: []string{token}, category: cat, value: value})
			continue
		}

		m, ok := table.Lookup(token)
		if !ok {
			args = append(args, argument{tokens: []string{token}, category: CategoryPassThrough})
			continue
		}

		arg := argument{tokens: []string{token}, category: m.def.Category, name: m.name, value: m.value}
		if m.needsSeparate {
			if i+1 >= len(exec.Arguments) {
				return nil, &ParseError{
					Program:   exec.Program,
					Arguments: exec.Arguments,
					Token:     token,
					Reason:    "flag expects a value but the argument vector ended",
				}
			}
			i++
			arg.value = exec.Arguments[i]
			arg.tokens = append(arg.tokens, exec.Arguments[i])
		}
		args = append(args, arg)
	}
	return args, nil
}

// firstOf returns the first argument of the category, if any.
func firstOf(args []argument, cat FlagCategory) (argument, bool) {
	for _, a := range args {
		if a.category == cat {
			return a, true
		}
	}
	return argument{}, false
}

// classify runs the family-independent decision procedure over a scanned
// vector and fans out into one entry per recognized source file.
//
// Decision order: query flags win outright; zero sources is a parse error
// when a compile-only flag demanded compilation and a silent drop otherwise;
// preprocess-only flags classify the pass unless a compile-only flag
// overrides; everything else is a compile.
func classify(table *FlagsByName, sources SuffixSet, exec models.Execution) Result {
	args, perr := scanArguments(table, sources, exec)
	if perr != nil {
		return Errored(perr)
	}

	if _, ok := firstOf(args, CategoryQuery); ok {
		return QueryOnly()
	}

	var srcs []string
	for _, a := range args {
		if a.category == CategoryInput {
			srcs = append(srcs, a.value)
		}
	}

	compileOnly, hasCompileOnly := firstOf(args, CategoryCompileOnly)
	if len(srcs) == 0 {
		if hasCompileOnly {
			return Errored(&ParseError{
				Program:   exec.Program,
				Arguments: exec.Arguments,
				Token:     compileOnly.tokens[0],
				Reason:    "compilation requested but no source files found",
			})
		}
		// Pure link or positional-only invocation; dropped without warning.
		return NotApplicable()
	}

	pass := models.PassCompile
	if _, preprocess := firstOf(args, CategoryPreprocessorOnly); preprocess && !hasCompileOnly {
		pass = models.PassPreprocess
	}

	output := ""
	if out, ok := firstOf(args, CategoryOutput); ok && len(srcs) == 1 {
		// An explicit output applies only when it is unambiguous; with
		// multiple sources the serializer derives outputs per source.
		output = resolvePath(out.value, exec.WorkingDir)
	}

	replay := make([]string, 0, len(exec.Arguments)+1)
	replay = append(replay, exec.Program)
	for _, a := range args {
		replay = append(replay, a.tokens...)
	}

	entries := make([]models.CompileCommand, 0, len(srcs))
	for _, src := range srcs {
		entries = append(entries, models.CompileCommand{
			Directory: exec.WorkingDir,
			File:      resolvePath(src, exec.WorkingDir),
			Output:    output,
			Arguments: replay,
			Pass:      pass,
		})
	}
	return Recognized(entries...)
}

// resolvePath anchors a relative path at the working directory. Absolute
// paths pass through verbatim; nothing is checked against the filesystem.
func resolvePath(path, dir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
