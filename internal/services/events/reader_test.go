package events

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/agnosco/internal/models"
)

func collect(t *testing.T, source *FileSource) []models.ExecutionEvent {
	t.Helper()
	var events []models.ExecutionEvent
	err := source.Each(context.Background(), func(event models.ExecutionEvent) error {
		events = append(events, event)
		return nil
	})
	require.NoError(t, err)
	return events
}

func TestFileSource_JSONArray(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
  {"program": "gcc", "arguments": ["-c", "a.c"], "working_dir": "/build"},
  {"program": "ld", "arguments": ["a.o"], "working_dir": "/build"}
]`), 0644))

	events := collect(t, NewFileSource(path, arbor.NewLogger()))
	require.Len(t, events, 2)
	assert.Equal(t, "gcc", events[0].Program)
	assert.Equal(t, []string{"-c", "a.c"}, events[0].Arguments)
	assert.Equal(t, "/build", events[0].WorkingDir)
	assert.Equal(t, "ld", events[1].Program)
}

func TestFileSource_JSONL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(
		`{"program": "gcc", "arguments": ["-c", "a.c"], "working_dir": "/build"}`+"\n"+
			"\n"+ // blank lines are fine
			`not json at all`+"\n"+
			`{"program": "ftn", "arguments": ["-c", "b.f90"], "working_dir": "/build"}`+"\n"), 0644))

	events := collect(t, NewFileSource(path, arbor.NewLogger()))
	// The undecodable line is skipped, not fatal.
	require.Len(t, events, 2)
	assert.Equal(t, "gcc", events[0].Program)
	assert.Equal(t, "ftn", events[1].Program)
}

func TestFileSource_SpoolDirectory(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
	}
	write("0002.json", `{"program": "ld", "arguments": [], "working_dir": "/build"}`)
	write("0001.json", `{"program": "gcc", "arguments": ["-c", "a.c"], "working_dir": "/build"}`)
	write("0003.json", `broken`)

	events := collect(t, NewFileSource(dir, arbor.NewLogger()))
	require.Len(t, events, 2)
	// Name order, with the broken entry skipped.
	assert.Equal(t, "gcc", events[0].Program)
	assert.Equal(t, "ld", events[1].Program)
}

func TestFileSource_MissingPath(t *testing.T) {
	source := NewFileSource("/nonexistent/events.json", arbor.NewLogger())
	err := source.Each(context.Background(), func(models.ExecutionEvent) error { return nil })
	assert.Error(t, err)
}

func TestFileSource_CallbackErrorStopsIteration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
  {"program": "gcc", "arguments": [], "working_dir": "/build"},
  {"program": "gcc", "arguments": [], "working_dir": "/build"}
]`), 0644))

	boom := errors.New("boom")
	seen := 0
	err := NewFileSource(path, arbor.NewLogger()).Each(context.Background(), func(models.ExecutionEvent) error {
		seen++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, seen)
}

func TestFileSource_ContextCancellation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
  {"program": "gcc", "arguments": [], "working_dir": "/build"}
]`), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewFileSource(path, arbor.NewLogger()).Each(ctx, func(models.ExecutionEvent) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
