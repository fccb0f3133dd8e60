// Package commands implements the CLI commands for jplaunch.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.velt.ch/jplaunch/internal/app"
	"go.velt.ch/jplaunch/internal/build"
)

// CLI represents the command line interface for jplaunch.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	verbose func(bool)
}

// Application represents the application logic interface.
type Application interface {
	Launch(ctx context.Context, opts app.LaunchOptions) error
}

// Option configures the CLI.
type Option func(*CLI)

// WithVerboseToggle wires the --verbose flag to the given callback.
func WithVerboseToggle(toggle func(bool)) Option {
	return func(c *CLI) {
		c.verbose = toggle
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "jplaunch",
		Short:         "Discover and execute JUnit Platform tests for build tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug output")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.verbose == nil {
			return
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		c.verbose(verbose)
	}

	rootCmd.AddCommand(c.newLaunchCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
