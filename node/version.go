// Version is set during compile time via ldflags,
// ie. go build -ldflags "-X 'main.binVersion=1.2.3'"
package main

import (
	"fmt"

	cobra "github.com/spf13/cobra"
)

var binVersion = "dev"

// newVersionCommand creates a version sub-command which prints the
// application version.
func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the application's version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Version: %s\n", binVersion)
			return nil
		},
	}
}
