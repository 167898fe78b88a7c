package semantic

import (
	"testing"

	"github.com/ternarybob/agnosco/internal/models"
)

func TestGccTool_Matches(t *testing.T) {
	tool := NewGccTool(nil)

	tests := []struct {
		program string
		want    bool
	}{
		{"gcc", true},
		{"cc", true},
		{"g++", true},
		{"c++", true},
		{"/usr/bin/gcc", true},
		{"gcc-12", true},
		{"g++-10.2", true},
		{"arm-linux-gnueabi-gcc", true},
		{"x86_64-w64-mingw32-g++", true},
		{"gcc.exe", true},
		{"GCC.EXE", false}, // names are case-sensitive, only the suffix is not
		{"clang", false},
		{"gfortran", false},
		{"ld", false},
		{"gcov", false},
		{"gccgo", false},
	}

	for _, tt := range tests {
		t.Run(tt.program, func(t *testing.T) {
			if got := tool.Matches(tt.program); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.program, got, tt.want)
			}
		})
	}
}

func TestGccTool_Queries(t *testing.T) {
	tool := NewGccTool(nil)

	queries := [][]string{
		{"--version"},
		{"--help"},
		{"-dumpmachine"},
		{"-dumpversion"},
		{"-print-search-dirs"},
		{"-###", "-c", "main.c"},
	}
	for _, args := range queries {
		result := tool.Recognize(models.Execution{Program: "gcc", Arguments: args, WorkingDir: "/build"})
		if result.Kind != KindQueryOnly {
			t.Errorf("gcc %v kind = %v, want query-only", args, result.Kind)
		}
	}

	// -v alone is verbose, not a query; with no sources it is a plain drop.
	result := tool.Recognize(models.Execution{Program: "gcc", Arguments: []string{"-v"}, WorkingDir: "/build"})
	if result.Kind != KindNotApplicable {
		t.Errorf("gcc -v kind = %v, want not-applicable", result.Kind)
	}
}

func TestGccTool_CompileAndLinkInvocation(t *testing.T) {
	tool := NewGccTool(nil)

	// Without -c the driver compiles and links; it still compiles main.c.
	result := tool.Recognize(models.Execution{
		Program:    "gcc",
		Arguments:  []string{"-o", "prog", "main.c", "-lm"},
		WorkingDir: "/build",
	})
	if result.Kind != KindRecognized {
		t.Fatalf("kind = %v, want recognized", result.Kind)
	}
	entry := result.Entries[0]
	if entry.File != "/build/main.c" {
		t.Errorf("file = %q, want /build/main.c", entry.File)
	}
	if entry.Output != "/build/prog" {
		t.Errorf("output = %q, want /build/prog", entry.Output)
	}
}

func TestGccTool_AssemblerAndObjcSources(t *testing.T) {
	tool := NewGccTool(nil)

	result := tool.Recognize(models.Execution{
		Program:    "gcc",
		Arguments:  []string{"-c", "start.S", "view.m"},
		WorkingDir: "/build",
	})
	if result.Kind != KindRecognized {
		t.Fatalf("kind = %v, want recognized", result.Kind)
	}
	if len(result.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(result.Entries))
	}
}
