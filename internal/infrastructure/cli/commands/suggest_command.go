package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/codesuggest/internal/app"
	"github.com/doeshing/codesuggest/internal/domain"
	"github.com/doeshing/codesuggest/internal/infrastructure/cli/helpers"
)

// NewSuggestCommand creates the suggest command
func NewSuggestCommand(container *app.Container) *cobra.Command {
	var (
		flags     bufferFlags
		jsonOut   bool
		showStats bool
	)

	cmd := &cobra.Command{
		Use:   "suggest FILE",
		Short: "Rank code suggestions for a cursor position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := analyze(cmd, container, args[0], flags)
			if err != nil {
				return err
			}
			suggestions := container.Engine.GenerateSuggestions(ctx)
			return displaySuggestions(cmd.OutOrStdout(), suggestions, container.Engine.Stats(), jsonOut, showStats)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print suggestions as JSON")
	cmd.Flags().BoolVar(&showStats, "stats", false, "Print engine cache and history counters")
	return cmd
}

type suggestOutput struct {
	Suggestions []domain.CodeSuggestion `json:"suggestions"`
	Stats       *domain.EngineStats     `json:"stats,omitempty"`
}

// displaySuggestions prints the ranked list in the requested format
func displaySuggestions(out io.Writer, suggestions []domain.CodeSuggestion, stats domain.EngineStats, jsonOut, showStats bool) error {
	if jsonOut {
		payload := suggestOutput{Suggestions: suggestions}
		if showStats {
			payload.Stats = &stats
		}
		return helpers.WriteJSON(out, payload)
	}
	helpers.RenderSuggestions(out, suggestions)
	if showStats {
		fmt.Fprintln(out)
		helpers.RenderStats(out, stats)
	}
	return nil
}
