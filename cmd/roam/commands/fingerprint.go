package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/roam/internal/app"
	"go.trai.ch/roam/internal/ui/style"
)

func (c *CLI) newFingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the content fingerprint of the source document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.resolveConfig(cmd, app.ConfigOverrides{Source: stringFlag(cmd, "source")})
			if err != nil {
				return err
			}

			report, err := c.app.Fingerprint(cmd.Context(), cfg.Source)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			row := func(label string, value any) {
				_, _ = fmt.Fprintf(out, "%s %s\n", style.Label.Render(fmt.Sprintf("%-12s", label)), style.Value.Render(fmt.Sprint(value)))
			}
			row("fingerprint", report.Fingerprint)
			row("connections", report.Connections)
			row("locations", report.Locations)
			if report.Skipped > 0 {
				row("skipped", report.Skipped)
			}
			return nil
		},
	}
	cmd.Flags().StringP("source", "s", "", "Path to the connections document")
	return cmd
}
