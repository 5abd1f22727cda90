package main

import (
	cobra "github.com/spf13/cobra"
)

// Execute builds the command tree and runs it.
func Execute() error {
	rootCmd := &cobra.Command{
		Use:          "sunmon",
		Short:        "sunmon samples a PV panel and reports aggregates to a cloud hub",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newPortsCommand())
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd.Execute()
}
