// Package commands implements the CLI commands for the shelf tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/shelf/internal/app"
	"go.trai.ch/shelf/internal/build"
	"go.trai.ch/shelf/internal/core/domain"
)

// CLI represents the command line interface for shelf.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "shelf",
		Short:         "A registry for native build dependencies and dev shells",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.PersistentFlags().StringP("deps-dir", "d", domain.FragmentsDirName,
		"Directory holding dependency fragments")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		dir, err := cmd.Flags().GetString("deps-dir")
		if err != nil {
			return err
		}
		a.SetFragmentsDir(dir)
		return nil
	}

	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newLockCmd())
	rootCmd.AddCommand(c.newShellCmd())
	rootCmd.AddCommand(c.newFetchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut redirects command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}
