package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newShellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell <dependency>",
		Short: "Enter the dev shell of a dependency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printOnly, err := cmd.Flags().GetBool("print-env")
			if err != nil {
				return err
			}
			if printOnly {
				env, err := c.app.PrintEnv(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				for _, kv := range env {
					fmt.Fprintln(cmd.OutOrStdout(), kv)
				}
				return nil
			}
			return c.app.Shell(cmd.Context(), args[0])
		},
	}
	cmd.Flags().Bool("print-env", false, "Print the shell environment instead of entering it")
	return cmd
}
