package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/codesuggest/internal/infrastructure/cli/helpers"
	"github.com/doeshing/codesuggest/internal/version"
)

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show codesuggest build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displayVersion(cmd.OutOrStdout(), version.Current(), jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print build information as JSON")
	return cmd
}

func displayVersion(out io.Writer, info version.Info, jsonOut bool) error {
	if jsonOut {
		return helpers.WriteJSON(out, info)
	}
	helpers.RenderVersion(out, info)
	return nil
}
