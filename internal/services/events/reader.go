// -----------------------------------------------------------------------
// Event readers - captured execution events from files and spool dirs
// -----------------------------------------------------------------------

package events

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/agnosco/internal/interfaces"
	"github.com/ternarybob/agnosco/internal/models"
)

// maxEventLine bounds a single JSONL record; build argument vectors can be
// very long (response-file expansions).
const maxEventLine = 16 * 1024 * 1024

// FileSource reads execution events from a filesystem path: a JSON array
// file, a JSONL stream, or a spool directory holding one JSON file per
// event (the intercept layer's native output). Unreadable individual
// records are skipped with a debug log; they never fail the whole read.
type FileSource struct {
	path   string
	logger arbor.ILogger
}

// NewFileSource creates a file-backed event source for the path.
func NewFileSource(path string, logger arbor.ILogger) *FileSource {
	return &FileSource{path: path, logger: logger}
}

// Each iterates every readable event at the path in capture order.
func (s *FileSource) Each(ctx context.Context, fn func(models.ExecutionEvent) error) error {
	info, err := os.Stat(s.path)
	if err != nil {
		return fmt.Errorf("failed to open events path %s: %w", s.path, err)
	}
	if info.IsDir() {
		return s.eachSpool(ctx, fn)
	}
	return s.eachFile(ctx, fn)
}

// eachSpool walks a spool directory of one-JSON-file-per-event. Entries are
// visited in name order so repeated scans see a stable sequence.
func (s *FileSource) eachSpool(ctx context.Context, fn func(models.ExecutionEvent) error) error {
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return fmt.Errorf("failed to read spool directory %s: %w", s.path, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		path := filepath.Join(s.path, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			s.logger.Debug().Err(err).Str("file", path).Msg("Skipping unreadable spool entry")
			continue
		}
		var event models.ExecutionEvent
		if err := json.Unmarshal(data, &event); err != nil {
			s.logger.Debug().Err(err).Str("file", path).Msg("Skipping undecodable spool entry")
			continue
		}
		if err := fn(event); err != nil {
			return err
		}
	}
	return nil
}

// eachFile reads a JSON array file or a JSONL stream, detected by the first
// non-whitespace byte.
func (s *FileSource) eachFile(ctx context.Context, fn func(models.ExecutionEvent) error) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read events file %s: %w", s.path, err)
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var events []models.ExecutionEvent
		if err := json.Unmarshal(data, &events); err != nil {
			return fmt.Errorf("failed to decode events file %s: %w", s.path, err)
		}
		for _, event := range events {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(event); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), maxEventLine)
	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return err
		}
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var event models.ExecutionEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			s.logger.Debug().Err(err).Str("file", s.path).Int("line", line).Msg("Skipping undecodable event line")
			continue
		}
		if err := fn(event); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to scan events file %s: %w", s.path, err)
	}
	return nil
}

// StoreSource adapts the badger-backed event storage into an event source.
type StoreSource struct {
	storage interfaces.EventStorage
}

// NewStoreSource creates an event source over the persistent store.
func NewStoreSource(storage interfaces.EventStorage) *StoreSource {
	return &StoreSource{storage: storage}
}

// Each iterates every stored event in capture order.
func (s *StoreSource) Each(ctx context.Context, fn func(models.ExecutionEvent) error) error {
	events, err := s.storage.List(ctx)
	if err != nil {
		return err
	}
	for _, event := range events {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(*event); err != nil {
			return err
		}
	}
	return nil
}
