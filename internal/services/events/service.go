// -----------------------------------------------------------------------
// Events service - import and inspect captured execution events
// -----------------------------------------------------------------------

package events

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/agnosco/internal/interfaces"
	"github.com/ternarybob/agnosco/internal/models"
)

// Service manages the persistent event store: importing captured events
// from files and listing or clearing what is held.
type Service struct {
	storage interfaces.EventStorage
	logger  arbor.ILogger
}

// NewService creates an events service over the given storage.
func NewService(storage interfaces.EventStorage, logger arbor.ILogger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Import reads every event at the path (file or spool directory) and saves
// it into the store. Returns the number of events imported.
func (s *Service) Import(ctx context.Context, path string) (int, error) {
	source := NewFileSource(path, s.logger)

	count := 0
	err := source.Each(ctx, func(event models.ExecutionEvent) error {
		if err := s.storage.Save(ctx, &event); err != nil {
			return fmt.Errorf("failed to save event: %w", err)
		}
		count++
		return nil
	})
	if err != nil {
		return count, err
	}

	s.logger.Info().Int("count", count).Str("path", path).Msg("Imported execution events")
	return count, nil
}

// List returns all stored events in capture order.
func (s *Service) List(ctx context.Context) ([]*models.ExecutionEvent, error) {
	return s.storage.List(ctx)
}

// Count returns the number of stored events.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.storage.Count(ctx)
}

// Clear removes all stored events.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.storage.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear events: %w", err)
	}
	s.logger.Info().Msg("Cleared stored execution events")
	return nil
}
