// -----------------------------------------------------------------------
// Scan command - classify events and write the compilation database
// -----------------------------------------------------------------------

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ternarybob/agnosco/internal/common"
	"github.com/ternarybob/agnosco/internal/interfaces"
	"github.com/ternarybob/agnosco/internal/semantic"
	"github.com/ternarybob/agnosco/internal/services/compdb"
	"github.com/ternarybob/agnosco/internal/services/events"
	"github.com/ternarybob/agnosco/internal/services/scanner"
	"github.com/ternarybob/agnosco/internal/storage/badger"
)

var scanDryRun bool

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Classify captured executions and write compile_commands.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScan()
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanDryRun, "dry-run", false,
		"Classify and report counts without writing the database")
}

func runScan() error {
	common.PrintBanner(common.GetVersion())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := semantic.DefaultRegistry(semantic.Options{
		Tools:          config.Semantic.Tools,
		ExtraCompilers: config.Semantic.ExtraCompilers,
	})

	var source interfaces.EventSource
	if config.Input.UseStore {
		manager, err := badger.NewManager(logger, &config.Storage.Badger)
		if err != nil {
			return fmt.Errorf("failed to open event store: %w", err)
		}
		defer manager.Close()
		source = events.NewStoreSource(manager.EventStorage())
	} else {
		source = events.NewFileSource(config.Input.Events, logger)
	}

	svc := scanner.NewService(registry, config.Semantic.KeepPreprocess, logger)
	commands, stats, err := svc.Scan(ctx, source)
	if err != nil {
		return err
	}

	if scanDryRun {
		fmt.Printf("events=%d recognized=%d entries=%d query=%d skipped=%d parse_errors=%d\n",
			stats.Events, stats.Recognized, stats.Entries,
			stats.QueryOnly, stats.NotApplicable, stats.ParseErrors)
		return nil
	}

	writer := compdb.NewWriter(compdb.Options{
		Format:        compdb.Format(config.Output.Format),
		IncludeOutput: config.Output.IncludeOutput,
	}, logger)
	if err := writer.Write(config.Output.Path, commands); err != nil {
		return err
	}

	fmt.Printf("Wrote %d entries to %s (%d events scanned)\n",
		stats.Entries, config.Output.Path, stats.Events)
	return nil
}
