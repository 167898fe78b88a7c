package interfaces

import (
	"context"
	"errors"

	"github.com/ternarybob/agnosco/internal/models"
)

// ErrEventNotFound is returned when an execution event ID is not in the store.
var ErrEventNotFound = errors.New("execution event not found")

// EventStorage persists captured execution events. The intercept layer writes
// them; the scanner reads them back for recognition.
type EventStorage interface {
	Save(ctx context.Context, event *models.ExecutionEvent) error
	Get(ctx context.Context, id string) (*models.ExecutionEvent, error)
	List(ctx context.Context) ([]*models.ExecutionEvent, error)
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}

// StorageManager owns the database connection and hands out typed storage.
type StorageManager interface {
	EventStorage() EventStorage
	Close() error
}
