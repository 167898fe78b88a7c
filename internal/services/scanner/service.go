// -----------------------------------------------------------------------
// Scanner service - drives recognition over an event source
// -----------------------------------------------------------------------

package scanner

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/agnosco/internal/interfaces"
	"github.com/ternarybob/agnosco/internal/models"
	"github.com/ternarybob/agnosco/internal/semantic"
)

// toolCacheSize bounds the program-path memoization table. Builds invoke a
// handful of distinct compiler paths, so even large traces stay far below
// this.
const toolCacheSize = 1024

// Stats counts what a scan saw and produced.
type Stats struct {
	Events            int
	Recognized        int
	Entries           int
	NotApplicable     int
	QueryOnly         int
	ParseErrors       int
	PreprocessDropped int
}

// Service runs every event from a source through the tool registry and
// collects the resulting compile commands.
type Service struct {
	registry       *semantic.Registry
	logger         arbor.ILogger
	keepPreprocess bool

	// tools memoizes program path to matched tool; a miss (no tool claims
	// the path) is cached as a nil entry.
	tools *lru.Cache[string, semantic.Tool]
}

// NewService creates a scanner over the registry. When keepPreprocess is
// false, preprocessor-pass entries are dropped from the output.
func NewService(registry *semantic.Registry, keepPreprocess bool, logger arbor.ILogger) *Service {
	cache, _ := lru.New[string, semantic.Tool](toolCacheSize)
	return &Service{
		registry:       registry,
		logger:         logger,
		keepPreprocess: keepPreprocess,
		tools:          cache,
	}
}

// Scan classifies every event from the source and returns the compile
// commands of all recognized compiler invocations, in event order.
func (s *Service) Scan(ctx context.Context, source interfaces.EventSource) ([]models.CompileCommand, Stats, error) {
	var entries []models.CompileCommand
	var stats Stats

	err := source.Each(ctx, func(event models.ExecutionEvent) error {
		stats.Events++

		exec := event.Execution()
		tool, ok := s.matchTool(exec.Program)
		if !ok {
			stats.NotApplicable++
			return nil
		}

		result := tool.Recognize(exec)
		switch result.Kind {
		case semantic.KindRecognized:
			stats.Recognized++
			for _, entry := range result.Entries {
				if entry.Pass == models.PassPreprocess && !s.keepPreprocess {
					stats.PreprocessDropped++
					continue
				}
				entries = append(entries, entry)
				stats.Entries++
			}
		case semantic.KindQueryOnly:
			stats.QueryOnly++
		case semantic.KindNotApplicable:
			stats.NotApplicable++
		case semantic.KindParseError:
			stats.ParseErrors++
			s.logger.Warn().
				Str("program", exec.Program).
				Str("error", result.Err.Error()).
				Msg("Failed to parse compiler invocation")
		}
		return nil
	})
	if err != nil {
		return nil, stats, err
	}

	s.logger.Info().
		Int("events", stats.Events).
		Int("recognized", stats.Recognized).
		Int("entries", stats.Entries).
		Int("parse_errors", stats.ParseErrors).
		Msg("Scan complete")
	return entries, stats, nil
}

// matchTool resolves the tool claiming a program path, memoized per path.
func (s *Service) matchTool(program string) (semantic.Tool, bool) {
	if tool, ok := s.tools.Get(program); ok {
		return tool, tool != nil
	}
	tool, ok := s.registry.Match(program)
	if !ok {
		s.tools.Add(program, nil)
		return nil, false
	}
	s.tools.Add(program, tool)
	return tool, true
}
