// -----------------------------------------------------------------------
// Config command - print the resolved configuration
// -----------------------------------------------------------------------

package main

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration as TOML",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := toml.Marshal(config)
		if err != nil {
			return fmt.Errorf("failed to render configuration: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}
