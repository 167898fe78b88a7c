package interfaces

import (
	"context"

	"github.com/ternarybob/agnosco/internal/models"
)

// EventSource streams captured execution events into the scanner. Sources are
// file readers, spool-directory walkers, or the badger-backed store; the
// scanner does not care which.
type EventSource interface {
	// Each invokes fn for every event in capture order. A non-nil error from
	// fn stops the iteration and is returned; source-level read errors on
	// individual records are skipped by the implementation, never surfaced
	// per record.
	Each(ctx context.Context, fn func(models.ExecutionEvent) error) error
}
