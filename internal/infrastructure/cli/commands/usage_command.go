package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/codesuggest/internal/app"
	"github.com/doeshing/codesuggest/internal/domain"
	"github.com/doeshing/codesuggest/internal/infrastructure/cli/helpers"
	"github.com/doeshing/codesuggest/internal/ports"
)

// NewUsageCommand creates the usage command with all subcommands
func NewUsageCommand(container *app.Container) *cobra.Command {
	usageCmd := &cobra.Command{
		Use:   "usage",
		Short: "Inspect and record accepted suggestions",
	}

	usageCmd.AddCommand(
		newUsageListCommand(container),
		newUsageClearCommand(container),
		newUsageAcceptCommand(container),
	)

	return usageCmd
}

// newUsageListCommand creates the 'usage list' subcommand
func newUsageListCommand(container *app.Container) *cobra.Command {
	var (
		limit    int
		language string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recently accepted suggestions",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := usageStore(container)
			if err != nil {
				return err
			}
			records, err := store.Records(limit, language)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), MsgNoUsageRecorded)
				return nil
			}
			helpers.RenderUsage(cmd.OutOrStdout(), records)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", domain.DefaultUsageListLimit, "Max entries to show")
	cmd.Flags().StringVar(&language, "language", "", "Only show this language")
	return cmd
}

// newUsageClearCommand creates the 'usage clear' subcommand
func newUsageClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded acceptances",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := usageStore(container)
			if err != nil {
				return err
			}
			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), MsgUsageCleared)
			return nil
		},
	}
}

// newUsageAcceptCommand creates the 'usage accept' subcommand. It regenerates
// the suggestions for the position and records the one matching --id.
func newUsageAcceptCommand(container *app.Container) *cobra.Command {
	var (
		flags bufferFlags
		id    string
	)

	cmd := &cobra.Command{
		Use:   "accept FILE",
		Short: "Record that a suggestion was accepted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" {
				return errors.New(ErrSuggestionIDRequired)
			}
			if _, err := usageStore(container); err != nil {
				return err
			}
			ctx, err := analyze(cmd, container, args[0], flags)
			if err != nil {
				return err
			}
			for _, s := range container.Engine.GenerateSuggestions(ctx) {
				if s.ID != id {
					continue
				}
				if err := container.Engine.RecordAcceptance(s); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s\n", s.ID)
				return nil
			}
			return fmt.Errorf("suggestion %s not offered at %s:%d", id, args[0], flags.line)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&id, "id", "", "Suggestion id to record")
	return cmd
}

func usageStore(container *app.Container) (ports.UsageRepository, error) {
	if container.UsageStore == nil {
		return nil, errors.New(ErrUsageStoreUnavailable)
	}
	return container.UsageStore, nil
}
