// -----------------------------------------------------------------------
// Events command - manage the persistent event store
// -----------------------------------------------------------------------

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ternarybob/agnosco/internal/interfaces"
	"github.com/ternarybob/agnosco/internal/services/events"
	"github.com/ternarybob/agnosco/internal/storage/badger"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Manage the captured execution event store",
}

var eventsImportCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import events from a JSON file, JSONL stream, or spool directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEventStore(func(ctx context.Context, svc *events.Service) error {
			count, err := svc.Import(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d events\n", count)
			return nil
		})
	},
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored events",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEventStore(func(ctx context.Context, svc *events.Service) error {
			stored, err := svc.List(ctx)
			if err != nil {
				return err
			}
			for _, event := range stored {
				fmt.Printf("%s  pid=%d  %s  %v\n",
					event.ID, event.PID, event.Program, event.Arguments)
			}
			fmt.Printf("%d events\n", len(stored))
			return nil
		})
	},
}

var eventsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored events",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEventStore(func(ctx context.Context, svc *events.Service) error {
			return svc.Clear(ctx)
		})
	},
}

func init() {
	eventsCmd.AddCommand(eventsImportCmd)
	eventsCmd.AddCommand(eventsListCmd)
	eventsCmd.AddCommand(eventsClearCmd)
}

// withEventStore opens the badger store, runs fn with an events service,
// and closes the store.
func withEventStore(fn func(context.Context, *events.Service) error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	manager, err := badger.NewManager(logger, &config.Storage.Badger)
	if err != nil {
		return fmt.Errorf("failed to open event store: %w", err)
	}
	defer manager.Close()

	var storage interfaces.EventStorage = manager.EventStorage()
	return fn(ctx, events.NewService(storage, logger))
}
