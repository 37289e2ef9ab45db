// Package commands implements the CLI commands for roam.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/roam/internal/app"
	"go.trai.ch/roam/internal/build"
	"go.trai.ch/roam/internal/core/domain"
)

// CLI represents the command line interface for roam.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	ResolveConfig(path string, overrides app.ConfigOverrides) (domain.Config, error)
	Serve(ctx context.Context, cfg domain.Config) error
	AddEdge(ctx context.Context, source, from, to string) (domain.MutationResult, error)
	RemoveEdge(ctx context.Context, source, from, to string) (domain.MutationResult, error)
	Fingerprint(ctx context.Context, source string) (app.FingerprintReport, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "roam",
		Short:         "Serve a live, deduplicated mirror of a map's walk connections",
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

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the config file (default "+domain.DefaultConfigFile+" if present)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newEdgeCmd())
	rootCmd.AddCommand(c.newFingerprintCmd())
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

// resolveConfig loads the config named by --config with overrides applied.
func (c *CLI) resolveConfig(cmd *cobra.Command, overrides app.ConfigOverrides) (domain.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return c.app.ResolveConfig(path, overrides)
}

func stringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func boolFlag(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}
