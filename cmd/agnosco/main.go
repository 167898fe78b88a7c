// -----------------------------------------------------------------------
// agnosco - build a compilation database from captured executions
// -----------------------------------------------------------------------

package main

import (
	"fmt"
	"os"

	"github.com/ternarybob/agnosco/internal/common"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			path := common.WriteCrashFile(r, common.GetAllGoroutineStacks())
			fmt.Fprintf(os.Stderr, "fatal: %v (crash report: %s)\n", r, path)
			os.Exit(2)
		}
	}()

	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
