package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/codesuggest/internal/app"
	"github.com/doeshing/codesuggest/internal/infrastructure/cli/helpers"
)

// NewLanguagesCommand creates the languages command with enable/disable subcommands
func NewLanguagesCommand(container *app.Container) *cobra.Command {
	languagesCmd := &cobra.Command{
		Use:   "languages",
		Short: "List and toggle language providers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listLanguages(cmd.OutOrStdout(), container)
		},
	}

	languagesCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List registered language providers",
			RunE: func(cmd *cobra.Command, args []string) error {
				return listLanguages(cmd.OutOrStdout(), container)
			},
		},
		&cobra.Command{
			Use:   "enable <language>",
			Short: "Enable a built-in language provider",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return toggleLanguage(cmd.Context(), cmd.OutOrStdout(), container, args[0], true)
			},
		},
		&cobra.Command{
			Use:   "disable <language>",
			Short: "Disable a language provider",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return toggleLanguage(cmd.Context(), cmd.OutOrStdout(), container, args[0], false)
			},
		},
	)

	return languagesCmd
}

// listLanguages prints each registered provider with its extensions
func listLanguages(out io.Writer, container *app.Container) error {
	if container.Engine == nil {
		return errors.New(ErrEngineUnavailable)
	}
	for _, language := range container.Engine.Languages() {
		fmt.Fprintf(out, "%-12s %s\n", language, strings.Join(container.Engine.Extensions(language), " "))
	}
	return nil
}

// toggleLanguage updates providers.enabled and persists the config
func toggleLanguage(ctx context.Context, out io.Writer, container *app.Container, language string, enable bool) error {
	if container.ConfigProvider == nil {
		return errors.New(ErrConfigLoaderUnavailable)
	}
	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return err
	}
	language = strings.ToLower(strings.TrimSpace(language))
	msg := MsgLanguageEnabled
	if enable {
		err = cfg.EnableProvider(language)
	} else {
		err = cfg.DisableProvider(language)
		msg = MsgLanguageDisabled
	}
	if err != nil {
		return err
	}
	if err := helpers.SaveConfigWithValidation(container, cfg); err != nil {
		return err
	}
	fmt.Fprintf(out, msg, language)
	return nil
}
