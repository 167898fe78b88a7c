package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/timshannon/badgerhold/v4"

	"github.com/ternarybob/agnosco/internal/common"
	"github.com/ternarybob/agnosco/internal/interfaces"
	"github.com/ternarybob/agnosco/internal/models"
)

// EventStorage implements the interfaces.EventStorage interface for Badger
type EventStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewEventStorage creates a new EventStorage instance
func NewEventStorage(db *BadgerDB, logger arbor.ILogger) interfaces.EventStorage {
	return &EventStorage{
		db:     db,
		logger: logger,
	}
}

// Save inserts an execution event, assigning an ID and capture time when the
// intercept layer did not.
func (s *EventStorage) Save(ctx context.Context, event *models.ExecutionEvent) error {
	if event.ID == "" {
		event.ID = common.NewEventID()
	}
	if event.CapturedAt.IsZero() {
		event.CapturedAt = time.Now()
	}

	if err := s.db.Store().Upsert(event.ID, event); err != nil {
		return fmt.Errorf("failed to save execution event: %w", err)
	}
	return nil
}

// Get retrieves an execution event by ID
func (s *EventStorage) Get(ctx context.Context, id string) (*models.ExecutionEvent, error) {
	var event models.ExecutionEvent
	err := s.db.Store().Get(id, &event)
	if err == badgerhold.ErrNotFound {
		return nil, interfaces.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get execution event: %w", err)
	}
	return &event, nil
}

// List returns all execution events ordered by capture time
func (s *EventStorage) List(ctx context.Context) ([]*models.ExecutionEvent, error) {
	var events []*models.ExecutionEvent
	err := s.db.Store().Find(&events, (&badgerhold.Query{}).SortBy("CapturedAt"))
	if err != nil {
		return nil, fmt.Errorf("failed to list execution events: %w", err)
	}
	return events, nil
}

// Count returns the number of stored execution events
func (s *EventStorage) Count(ctx context.Context) (int, error) {
	count, err := s.db.Store().Count(&models.ExecutionEvent{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count execution events: %w", err)
	}
	return int(count), nil
}

// Clear removes all stored execution events
func (s *EventStorage) Clear(ctx context.Context) error {
	if err := s.db.Store().DeleteMatching(&models.ExecutionEvent{}, nil); err != nil {
		return fmt.Errorf("failed to clear execution events: %w", err)
	}
	return nil
}
