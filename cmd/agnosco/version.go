// -----------------------------------------------------------------------
// Version command
// -----------------------------------------------------------------------

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ternarybob/agnosco/internal/common"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Agnosco %s\n", common.GetFullVersion())
	},
}
