// -----------------------------------------------------------------------
// Compilation database writer - compile_commands.json serialization
// -----------------------------------------------------------------------

package compdb

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/agnosco/internal/models"
)

// Format selects how each entry carries its command line.
type Format string

const (
	// FormatArguments emits the argv vector under "arguments".
	FormatArguments Format = "arguments"
	// FormatCommand emits a shell-quoted string under "command".
	FormatCommand Format = "command"
)

// Options controls entry serialization.
type Options struct {
	Format        Format
	IncludeOutput bool
}

// entry is the on-disk shape of one compilation database record.
type entry struct {
	Directory string   `json:"directory"`
	File      string   `json:"file"`
	Output    string   `json:"output,omitempty"`
	Arguments []string `json:"arguments,omitempty"`
	Command   string   `json:"command,omitempty"`
}

// Writer serializes compile commands into a compilation database file.
type Writer struct {
	options Options
	logger  arbor.ILogger
}

// NewWriter creates a writer with the given serialization options.
func NewWriter(options Options, logger arbor.ILogger) *Writer {
	if options.Format == "" {
		options.Format = FormatArguments
	}
	return &Writer{options: options, logger: logger}
}

// Marshal renders the commands as a JSON compilation database document.
func (w *Writer) Marshal(commands []models.CompileCommand) ([]byte, error) {
	entries := make([]entry, 0, len(commands))
	for _, cmd := range commands {
		e := entry{
			Directory: cmd.Directory,
			File:      cmd.File,
		}
		if w.options.IncludeOutput {
			e.Output = cmd.Output
		}
		switch w.options.Format {
		case FormatCommand:
			e.Command = cmd.CommandLine()
		default:
			e.Arguments = cmd.Arguments
		}
		entries = append(entries, e)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal compilation database: %w", err)
	}
	return append(data, '\n'), nil
}

// Write renders the commands and replaces the file at path atomically.
func (w *Writer) Write(path string, commands []models.CompileCommand) error {
	data, err := w.Marshal(commands)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".compile_commands-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write compilation database: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close compilation database: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	w.logger.Info().Str("path", path).Int("entries", len(commands)).Msg("Wrote compilation database")
	return nil
}
