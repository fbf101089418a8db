package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "jugglefest",
	Short: "Assign jugglers to circuits by preference and skill fit",
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init attaches the subcommands
func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(generateCmd)
}
