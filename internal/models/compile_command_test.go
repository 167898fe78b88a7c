package models

import (
	"testing"
)

func TestCompileCommand_CommandLine(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "plain arguments",
			args: []string{"gcc", "-c", "-O2", "main.c"},
			want: "gcc -c -O2 main.c",
		},
		{
			name: "argument with spaces",
			args: []string{"gcc", "-c", "my file.c"},
			want: `gcc -c "my file.c"`,
		},
		{
			name: "macro with quotes",
			args: []string{"gcc", "-c", `-DNAME="app"`, "main.c"},
			want: `gcc -c "-DNAME=\"app\"" main.c`,
		},
		{
			name: "dollar stays literal",
			args: []string{"gcc", "-c", "-DDIR=$HOME", "main.c"},
			want: `gcc -c "-DDIR=\$HOME" main.c`,
		},
		{
			name: "empty argument survives",
			args: []string{"gcc", "-c", "", "main.c"},
			want: `gcc -c "" main.c`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := CompileCommand{Arguments: tt.args}
			if got := cmd.CommandLine(); got != tt.want {
				t.Errorf("CommandLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompileCommand_Validate(t *testing.T) {
	valid := CompileCommand{
		Directory: "/build",
		File:      "/build/main.c",
		Arguments: []string{"gcc", "-c", "main.c"},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid command rejected: %v", err)
	}

	missing := CompileCommand{File: "/build/main.c"}
	if err := missing.Validate(); err == nil {
		t.Errorf("command without directory and arguments accepted")
	}
}

func TestExecutionEvent_Execution(t *testing.T) {
	event := ExecutionEvent{
		ID:          "evt_1",
		PID:         42,
		Program:     "gcc",
		Arguments:   []string{"-c", "main.c"},
		WorkingDir:  "/build",
		Environment: map[string]string{"PATH": "/usr/bin"},
	}

	exec := event.Execution()
	if exec.Program != "gcc" || exec.WorkingDir != "/build" {
		t.Errorf("Execution() lost fields: %+v", exec)
	}
	if len(exec.Arguments) != 2 {
		t.Errorf("arguments = %v", exec.Arguments)
	}
	if exec.Environment["PATH"] != "/usr/bin" {
		t.Errorf("environment not carried")
	}
}
