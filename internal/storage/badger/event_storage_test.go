package badger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/agnosco/internal/common"
	"github.com/ternarybob/agnosco/internal/interfaces"
	"github.com/ternarybob/agnosco/internal/models"
)

func setupStorage(t *testing.T) interfaces.EventStorage {
	t.Helper()

	manager, err := NewManager(arbor.NewLogger(), &common.BadgerConfig{Path: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { manager.Close() })

	return manager.EventStorage()
}

func TestEventStorage_SaveAssignsIdentity(t *testing.T) {
	storage := setupStorage(t)
	ctx := context.Background()

	event := &models.ExecutionEvent{
		Program:    "gcc",
		Arguments:  []string{"-c", "main.c"},
		WorkingDir: "/build",
	}
	require.NoError(t, storage.Save(ctx, event))

	assert.NotEmpty(t, event.ID)
	assert.False(t, event.CapturedAt.IsZero())

	loaded, err := storage.Get(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "gcc", loaded.Program)
	assert.Equal(t, []string{"-c", "main.c"}, loaded.Arguments)
	assert.Equal(t, "/build", loaded.WorkingDir)
}

func TestEventStorage_GetMissing(t *testing.T) {
	storage := setupStorage(t)

	_, err := storage.Get(context.Background(), "evt_missing")
	assert.ErrorIs(t, err, interfaces.ErrEventNotFound)
}

func TestEventStorage_ListOrderedByCapture(t *testing.T) {
	storage := setupStorage(t)
	ctx := context.Background()

	base := time.Now()
	for i, program := range []string{"ld", "gcc", "ftn"} {
		require.NoError(t, storage.Save(ctx, &models.ExecutionEvent{
			Program:    program,
			WorkingDir: "/build",
			CapturedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	events, err := storage.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "ld", events[0].Program)
	assert.Equal(t, "gcc", events[1].Program)
	assert.Equal(t, "ftn", events[2].Program)
}

func TestEventStorage_CountAndClear(t *testing.T) {
	storage := setupStorage(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, storage.Save(ctx, &models.ExecutionEvent{
			Program:    "gcc",
			WorkingDir: "/build",
		}))
	}

	count, err := storage.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	require.NoError(t, storage.Clear(ctx))

	count, err = storage.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
