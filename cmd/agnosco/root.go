// -----------------------------------------------------------------------
// Root command - config loading, logging, shared state
// -----------------------------------------------------------------------

package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/agnosco/internal/common"
)

var (
	// Command-line flags
	configFiles []string
	eventsFlag  string
	outputFlag  string

	// Global state set up by the persistent pre-run
	config *common.Config
	logger arbor.ILogger
)

var rootCmd = &cobra.Command{
	Use:   "agnosco",
	Short: "Agnosco - compilation database builder",
	Long: `Agnosco classifies captured build-tool executions and emits the
compiler invocations among them as a JSON compilation database
(compile_commands.json).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

func init() {
	rootCmd.Version = common.GetFullVersion()
	rootCmd.PersistentFlags().StringArrayVarP(&configFiles, "config", "c", nil,
		"Configuration file path (repeatable, later files override earlier ones)")
	rootCmd.PersistentFlags().StringVar(&eventsFlag, "events", "",
		"Execution events path (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "",
		"Compilation database path (overrides config)")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the CLI. Errors are logged before being returned so cobra's
// own printing stays silenced.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if logger != nil {
			logger.Error().Err(err).Msg("Command failed")
		} else {
			rootCmd.PrintErrln("Error:", err)
		}
	}
	return err
}

// setup performs the startup sequence (REQUIRED ORDER):
// 1. Load .env if present
// 2. Load config (defaults -> file1 -> file2 -> ... -> env)
// 3. Apply CLI overrides (highest priority)
// 4. Initialize logger
func setup() error {
	_ = godotenv.Load()

	// Auto-discover config file if not specified
	if len(configFiles) == 0 {
		if _, err := os.Stat("agnosco.toml"); err == nil {
			configFiles = append(configFiles, "agnosco.toml")
		}
	}

	var err error
	config, err = common.LoadFromFiles(configFiles...)
	if err != nil {
		return err
	}

	common.ApplyFlagOverrides(config, eventsFlag, outputFlag)

	logger = common.InitLogger(config)
	common.InstallCrashHandler("")
	return nil
}
