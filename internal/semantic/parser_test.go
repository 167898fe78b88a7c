package semantic

import (
	"reflect"
	"testing"

	"github.com/ternarybob/agnosco/internal/models"
)

func gccExec(dir string, args ...string) models.Execution {
	return models.Execution{Program: "/usr/bin/gcc", Arguments: args, WorkingDir: dir}
}

func TestClassify_SingleCompile(t *testing.T) {
	result := classify(gccFlags, ccFamilySources, gccExec("/build", "-c", "-O2", "-Iinclude", "main.c"))

	if result.Kind != KindRecognized {
		t.Fatalf("kind = %v, want recognized", result.Kind)
	}
	if len(result.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(result.Entries))
	}
	entry := result.Entries[0]
	if entry.Directory != "/build" {
		t.Errorf("directory = %q, want /build", entry.Directory)
	}
	if entry.File != "/build/main.c" {
		t.Errorf("file = %q, want /build/main.c", entry.File)
	}
	want := []string{"/usr/bin/gcc", "-c", "-O2", "-Iinclude", "main.c"}
	if !reflect.DeepEqual(entry.Arguments, want) {
		t.Errorf("arguments = %v, want %v", entry.Arguments, want)
	}
	if entry.Pass != models.PassCompile {
		t.Errorf("pass = %v, want compile", entry.Pass)
	}
}

func TestClassify_MultipleSourcesFanOut(t *testing.T) {
	result := classify(gccFlags, ccFamilySources, gccExec("/build", "-c", "a.c", "b.c", "c.c"))

	if result.Kind != KindRecognized {
		t.Fatalf("kind = %v, want recognized", result.Kind)
	}
	if len(result.Entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(result.Entries))
	}
	wantFiles := []string{"/build/a.c", "/build/b.c", "/build/c.c"}
	wantArgs := []string{"/usr/bin/gcc", "-c", "a.c", "b.c", "c.c"}
	for i, entry := range result.Entries {
		if entry.File != wantFiles[i] {
			t.Errorf("entry %d file = %q, want %q", i, entry.File, wantFiles[i])
		}
		// Every entry replays the full original vector.
		if !reflect.DeepEqual(entry.Arguments, wantArgs) {
			t.Errorf("entry %d arguments = %v, want %v", i, entry.Arguments, wantArgs)
		}
	}
}

func TestClassify_OutputResolution(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantOutput string
	}{
		{name: "separate output", args: []string{"-c", "-o", "main.o", "main.c"}, wantOutput: "/build/main.o"},
		{name: "concatenated output", args: []string{"-c", "-omain.o", "main.c"}, wantOutput: "/build/main.o"},
		{name: "absolute output stays verbatim", args: []string{"-c", "-o", "/out/main.o", "main.c"}, wantOutput: "/out/main.o"},
		{name: "no output flag", args: []string{"-c", "main.c"}, wantOutput: ""},
		{name: "ambiguous with two sources", args: []string{"-c", "-o", "all.o", "a.c", "b.c"}, wantOutput: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classify(gccFlags, ccFamilySources, gccExec("/build", tt.args...))
			if result.Kind != KindRecognized {
				t.Fatalf("kind = %v, want recognized", result.Kind)
			}
			if got := result.Entries[0].Output; got != tt.wantOutput {
				t.Errorf("output = %q, want %q", got, tt.wantOutput)
			}
		})
	}
}

func TestClassify_QueryWinsOutright(t *testing.T) {
	// The query outcome wins even when sources and compile flags are present.
	result := classify(gccFlags, ccFamilySources, gccExec("/build", "-c", "main.c", "--version"))
	if result.Kind != KindQueryOnly {
		t.Errorf("kind = %v, want query-only", result.Kind)
	}
}

func TestClassify_PureLinkIsNotApplicable(t *testing.T) {
	result := classify(gccFlags, ccFamilySources, gccExec("/build", "a.o", "b.o", "-o", "prog", "-lm"))
	if result.Kind != KindNotApplicable {
		t.Errorf("kind = %v, want not-applicable", result.Kind)
	}
}

func TestClassify_CompileOnlyWithoutSourcesIsParseError(t *testing.T) {
	result := classify(gccFlags, ccFamilySources, gccExec("/build", "-c", "-O2"))
	if result.Kind != KindParseError {
		t.Fatalf("kind = %v, want parse-error", result.Kind)
	}
	if result.Err.Token != "-c" {
		t.Errorf("error token = %q, want -c", result.Err.Token)
	}
}

func TestClassify_TruncatedValueFlagIsParseError(t *testing.T) {
	result := classify(gccFlags, ccFamilySources, gccExec("/build", "-c", "main.c", "-o"))
	if result.Kind != KindParseError {
		t.Fatalf("kind = %v, want parse-error", result.Kind)
	}
	if result.Err.Token != "-o" {
		t.Errorf("error token = %q, want -o", result.Err.Token)
	}
}

func TestClassify_PreprocessorPass(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantPass models.Pass
	}{
		{name: "explicit -E", args: []string{"-E", "main.c"}, wantPass: models.PassPreprocess},
		{name: "dependency -M", args: []string{"-M", "main.c"}, wantPass: models.PassPreprocess},
		{name: "compile-only overrides -E", args: []string{"-E", "-c", "main.c"}, wantPass: models.PassCompile},
		{name: "-MD is a side effect, not a pass", args: []string{"-c", "-MD", "main.c"}, wantPass: models.PassCompile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classify(gccFlags, ccFamilySources, gccExec("/build", tt.args...))
			if result.Kind != KindRecognized {
				t.Fatalf("kind = %v, want recognized", result.Kind)
			}
			if result.Entries[0].Pass != tt.wantPass {
				t.Errorf("pass = %v, want %v", result.Entries[0].Pass, tt.wantPass)
			}
		})
	}
}

func TestClassify_UnknownFlagsPassThrough(t *testing.T) {
	// Unknown dash tokens never fail the parse and are replayed verbatim.
	result := classify(gccFlags, ccFamilySources,
		gccExec("/build", "-c", "--some-site-flag", "-q99", "main.c"))
	if result.Kind != KindRecognized {
		t.Fatalf("kind = %v, want recognized", result.Kind)
	}
	want := []string{"/usr/bin/gcc", "-c", "--some-site-flag", "-q99", "main.c"}
	if !reflect.DeepEqual(result.Entries[0].Arguments, want) {
		t.Errorf("arguments = %v, want %v", result.Entries[0].Arguments, want)
	}
}

func TestClassify_SeparateValueNeverBecomesSource(t *testing.T) {
	// legacy.c here is the value of -MF, not an input.
	result := classify(gccFlags, ccFamilySources,
		gccExec("/build", "-c", "-MF", "legacy.c", "main.c"))
	if result.Kind != KindRecognized {
		t.Fatalf("kind = %v, want recognized", result.Kind)
	}
	if len(result.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(result.Entries))
	}
	if result.Entries[0].File != "/build/main.c" {
		t.Errorf("file = %q, want /build/main.c", result.Entries[0].File)
	}
}

func TestClassify_AbsoluteSourceStaysVerbatim(t *testing.T) {
	result := classify(gccFlags, ccFamilySources, gccExec("/build", "-c", "/src/lib/util.c"))
	if result.Kind != KindRecognized {
		t.Fatalf("kind = %v, want recognized", result.Kind)
	}
	if result.Entries[0].File != "/src/lib/util.c" {
		t.Errorf("file = %q, want /src/lib/util.c", result.Entries[0].File)
	}
}
