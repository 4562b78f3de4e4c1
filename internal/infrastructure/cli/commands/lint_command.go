package commands

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/codesuggest/internal/app"
	"github.com/doeshing/codesuggest/internal/infrastructure/cli/helpers"
)

// NewLintCommand creates the lint command
func NewLintCommand(container *app.Container) *cobra.Command {
	var (
		language string
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "lint FILE",
		Short: "Report best-practice advisories for a whole file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := analyze(cmd, container, args[0], bufferFlags{line: 1, column: DefaultColumn, language: language})
			if err != nil {
				return err
			}
			advisories, err := container.Engine.BestPractices(ctx)
			if err != nil {
				return err
			}
			if jsonOut {
				return helpers.WriteJSON(cmd.OutOrStdout(), advisories)
			}
			helpers.RenderAdvisories(cmd.OutOrStdout(), args[0], advisories)
			return nil
		},
	}

	cmd.Flags().StringVar(&language, "language", "", "Language id (default from file extension)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print advisories as JSON")
	return cmd
}
