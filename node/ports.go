package main

import (
	"fmt"

	cobra "github.com/spf13/cobra"

	"github.com/itohio/sunmon/pkg/gateway"
)

// newPortsCommand creates the ports sub-command which lists serial ports
// the gateway module may be attached to.
func newPortsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List available serial ports",
		RunE: func(cmd *cobra.Command, args []string) error {
			ports, err := gateway.Ports()
			if err != nil {
				return err
			}
			if len(ports) == 0 {
				fmt.Println("no serial ports found")
				return nil
			}
			for _, p := range ports {
				fmt.Println(p.Name)
			}
			return nil
		},
	}
}
