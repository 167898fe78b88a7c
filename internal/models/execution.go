// -----------------------------------------------------------------------
// Execution - one captured process invocation
// -----------------------------------------------------------------------

package models

import "time"

// Execution is one captured process invocation as seen by the intercept
// layer. It is a value type: recognizers receive it by value and never
// mutate it.
type Execution struct {
	// Program is the executed path or name, exactly as invoked.
	Program string `json:"program"`
	// Arguments is the argument vector excluding the program itself (argv[1:]).
	Arguments []string `json:"arguments"`
	// WorkingDir is the absolute working directory at execution time.
	WorkingDir string `json:"working_dir"`
	// Environment is the environment at execution time. Carried for
	// completeness; classification never reads it.
	Environment map[string]string `json:"environment,omitempty"`
}

// ExecutionEvent is a stored Execution with capture metadata.
type ExecutionEvent struct {
	ID          string            `json:"id" badgerhold:"key"`
	PID         int               `json:"pid,omitempty"`
	Program     string            `json:"program" validate:"required"`
	Arguments   []string          `json:"arguments"`
	WorkingDir  string            `json:"working_dir" validate:"required"`
	Environment map[string]string `json:"environment,omitempty"`
	CapturedAt  time.Time         `json:"captured_at,omitempty"`
}

// Execution strips the capture metadata down to the value the recognition
// core consumes.
func (e *ExecutionEvent) Execution() Execution {
	return Execution{
		Program:     e.Program,
		Arguments:   e.Arguments,
		WorkingDir:  e.WorkingDir,
		Environment: e.Environment,
	}
}
