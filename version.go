package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set via -ldflags at build time
var version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "contentscore %s\n", version)
	},
}
