package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <dependency>",
		Short: "Download locked outputs from the binary cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Fetch(cmd.Context(), args[0])
		},
	}
}
