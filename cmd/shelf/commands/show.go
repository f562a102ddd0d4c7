package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/shelf/internal/core/domain"
)

func (c *CLI) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <dependency>",
		Short: "Show one dependency declaration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := c.app.Show(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name: %s\n", spec.Name)
			printRefs(out, "buildInputs", spec.BuildInputs)
			printRefs(out, "nativeBuildInputs", spec.NativeBuildInputs)
			fmt.Fprintf(out, "devShell: %s\n", domain.GenerateShellID(spec.DevShell()))
			return nil
		},
	}
}

func printRefs(out io.Writer, label string, refs []domain.PackageRef) {
	fmt.Fprintf(out, "%s:\n", label)
	for _, ref := range refs {
		fmt.Fprintf(out, "  - %s\n", ref)
	}
}
