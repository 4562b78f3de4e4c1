package commands

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/codesuggest/internal/app"
	"github.com/doeshing/codesuggest/internal/infrastructure/cli/helpers"
)

// NewAnalyzeCommand creates the analyze command
func NewAnalyzeCommand(container *app.Container) *cobra.Command {
	var (
		flags   bufferFlags
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Show the scope, intent and symbols detected at a cursor position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := analyze(cmd, container, args[0], flags)
			if err != nil {
				return err
			}
			if jsonOut {
				return helpers.WriteJSON(cmd.OutOrStdout(), ctx)
			}
			helpers.RenderContext(cmd.OutOrStdout(), ctx)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the context as JSON")
	return cmd
}
