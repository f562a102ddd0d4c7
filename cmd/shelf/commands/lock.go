package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newLockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Resolve all declared packages and write the lockfile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			watch, err := cmd.Flags().GetBool("watch")
			if err != nil {
				return err
			}
			if watch {
				return c.app.LockWatch(cmd.Context())
			}
			return c.app.Lock(cmd.Context())
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Re-lock whenever a fragment changes")
	return cmd
}
