package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/roam/internal/app"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the connection snapshot and follow the source file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overrides := app.ConfigOverrides{
				Listen:  stringFlag(cmd, "listen"),
				Source:  stringFlag(cmd, "source"),
				Player:  stringFlag(cmd, "player"),
				Public:  stringFlag(cmd, "public"),
				LogJSON: boolFlag(cmd, "json"),
				Trace:   boolFlag(cmd, "trace"),
			}
			if cmd.Flags().Changed("debounce") {
				d, _ := cmd.Flags().GetDuration("debounce")
				overrides.Debounce = &d
			}

			cfg, err := c.resolveConfig(cmd, overrides)
			if err != nil {
				return err
			}
			return c.app.Serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringP("listen", "l", "", "Address to listen on (default :3000)")
	cmd.Flags().StringP("source", "s", "", "Path to the connections document")
	cmd.Flags().StringP("player", "p", "", "Path to the player position file")
	cmd.Flags().String("public", "", "Directory of static UI assets")
	cmd.Flags().Duration("debounce", 0, "Quiet period before reloading a changed file (default 100ms)")
	cmd.Flags().Bool("json", false, "Write logs as JSON")
	cmd.Flags().Bool("trace", false, "Export trace spans to stderr")
	return cmd
}
