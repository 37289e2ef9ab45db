package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/roam/internal/app"
	"go.trai.ch/roam/internal/core/domain"
	"go.trai.ch/roam/internal/ui/style"
)

type mutateFunc func(ctx context.Context, source, from, to string) (domain.MutationResult, error)

func (c *CLI) newEdgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edge",
		Short: "Add or remove walk connections in the source document",
	}
	cmd.PersistentFlags().StringP("source", "s", "", "Path to the connections document")

	cmd.AddCommand(c.newEdgeMutationCmd("add", "Add a walk connection between two locations", c.app.AddEdge))
	cmd.AddCommand(c.newEdgeMutationCmd("remove", "Remove the walk connection between two locations", c.app.RemoveEdge))
	return cmd
}

func (c *CLI) newEdgeMutationCmd(name, short string, mutate mutateFunc) *cobra.Command {
	return &cobra.Command{
		Use:   name + " FROM TO",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.resolveConfig(cmd, app.ConfigOverrides{Source: stringFlag(cmd, "source")})
			if err != nil {
				return err
			}

			result, err := mutate(cmd.Context(), cfg.Source, args[0], args[1])
			if err != nil {
				return err
			}

			icon := style.Muted.Render(style.Dot)
			if result.Outcome.Changed() {
				icon = style.Success.Render(style.Check)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s %s %s\n",
				icon, result.Outcome.Message(), args[0], style.Muted.Render("↔"), args[1])
			return nil
		},
	}
}
