// -----------------------------------------------------------------------
// CompileCommand - one compilation database entry
// -----------------------------------------------------------------------

package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Pass tells compilation entries from preprocess-only entries apart. Never
// serialized; the serializer filters on it before writing.
type Pass string

const (
	PassCompile    Pass = "compile"
	PassPreprocess Pass = "preprocess"
)

// CompileCommand is one entry of the compilation database: a single source
// file with the argument vector that compiles it.
type CompileCommand struct {
	// Directory is the working directory the arguments are relative to.
	Directory string `json:"directory" validate:"required"`
	// File is the compiled source, anchored at Directory when relative.
	File string `json:"file" validate:"required"`
	// Output is the produced artifact when one is unambiguous.
	Output string `json:"output,omitempty"`
	// Arguments is the replayable vector: program first, then every original
	// token in order.
	Arguments []string `json:"arguments" validate:"required,min=1"`

	Pass Pass `json:"-"`
}

var validate = validator.New()

// Validate checks the entry is complete enough to be replayed.
func (c *CompileCommand) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid compile command: %w", err)
	}
	return nil
}

// CommandLine flattens the arguments into one shell-quoted string for the
// "command" database format.
func (c *CompileCommand) CommandLine() string {
	quoted := make([]string, len(c.Arguments))
	for i, arg := range c.Arguments {
		quoted[i] = shellQuote(arg)
	}
	return strings.Join(quoted, " ")
}

// shellQuote wraps an argument in double quotes when it contains characters
// the shell would otherwise interpret.
func shellQuote(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, " \t\"'\\$`") {
		return arg
	}
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(arg); i++ {
		switch arg[i] {
		case '"', '\\', '$', '`':
			b.WriteByte('\\')
		}
		b.WriteByte(arg[i])
	}
	b.WriteByte('"')
	return b.String()
}
