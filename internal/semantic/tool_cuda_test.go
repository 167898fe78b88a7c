package semantic

import (
	"reflect"
	"testing"

	"github.com/ternarybob/agnosco/internal/models"
)

func TestCudaTool_Compile(t *testing.T) {
	tool := NewCudaTool(nil)

	result := tool.Recognize(models.Execution{
		Program:    "nvcc",
		Arguments:  []string{"-dc", "-arch", "sm_80", "-Xcompiler", "-Wall", "kernel.cu"},
		WorkingDir: "/build",
	})
	if result.Kind != KindRecognized {
		t.Fatalf("kind = %v, want recognized", result.Kind)
	}
	entry := result.Entries[0]
	if entry.File != "/build/kernel.cu" {
		t.Errorf("file = %q, want /build/kernel.cu", entry.File)
	}
	// The sm_80 and -Wall value tokens must not be eaten or reordered.
	want := []string{"nvcc", "-dc", "-arch", "sm_80", "-Xcompiler", "-Wall", "kernel.cu"}
	if !reflect.DeepEqual(entry.Arguments, want) {
		t.Errorf("arguments = %v, want %v", entry.Arguments, want)
	}
}

func TestCudaTool_HostSources(t *testing.T) {
	tool := NewCudaTool(nil)

	// nvcc compiles plain C++ host files too.
	result := tool.Recognize(models.Execution{
		Program:    "nvcc",
		Arguments:  []string{"-c", "host.cpp"},
		WorkingDir: "/build",
	})
	if result.Kind != KindRecognized {
		t.Fatalf("kind = %v, want recognized", result.Kind)
	}
}

func TestCudaTool_Queries(t *testing.T) {
	tool := NewCudaTool(nil)

	for _, args := range [][]string{{"--version"}, {"-V"}, {"--list-gpu-arch"}} {
		result := tool.Recognize(models.Execution{Program: "nvcc", Arguments: args, WorkingDir: "/build"})
		if result.Kind != KindQueryOnly {
			t.Errorf("nvcc %v kind = %v, want query-only", args, result.Kind)
		}
	}
}

func TestMpiTool_ShowmeIsQuery(t *testing.T) {
	tool := NewMpiTool(nil)

	result := tool.Recognize(models.Execution{
		Program:    "mpicc",
		Arguments:  []string{"-showme:compile"},
		WorkingDir: "/build",
	})
	if result.Kind != KindQueryOnly {
		t.Errorf("kind = %v, want query-only", result.Kind)
	}
}

func TestMpiTool_Compile(t *testing.T) {
	tool := NewMpiTool(nil)

	result := tool.Recognize(models.Execution{
		Program:    "mpifort",
		Arguments:  []string{"-c", "halo.f90"},
		WorkingDir: "/build",
	})
	if result.Kind != KindRecognized {
		t.Fatalf("kind = %v, want recognized", result.Kind)
	}
	if result.Entries[0].File != "/build/halo.f90" {
		t.Errorf("file = %q, want /build/halo.f90", result.Entries[0].File)
	}
}
