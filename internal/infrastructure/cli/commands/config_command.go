package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/codesuggest/internal/app"
	configapp "github.com/doeshing/codesuggest/internal/application/config"
	"github.com/doeshing/codesuggest/internal/infrastructure/cli/helpers"
	configinfra "github.com/doeshing/codesuggest/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with all subcommands
func NewConfigCommand(container *app.Container) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit codesuggest configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfiguration(cmd.Context(), cmd.OutOrStdout(), container)
		},
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show full configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return showConfiguration(cmd.Context(), cmd.OutOrStdout(), container)
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			RunE: func(cmd *cobra.Command, args []string) error {
				if container.ConfigLoader == nil {
					return errors.New(ErrConfigLoaderUnavailable)
				}
				fmt.Fprintln(cmd.OutOrStdout(), container.ConfigLoader.Path())
				return nil
			},
		},
		&cobra.Command{
			Use:   "validate",
			Short: "Validate the configuration file",
			RunE: func(cmd *cobra.Command, args []string) error {
				return validateConfiguration(cmd.Context(), cmd.OutOrStdout(), container)
			},
		},
		&cobra.Command{
			Use:   "diff",
			Short: "Show differences from the default configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return diffConfiguration(cmd.Context(), cmd.OutOrStdout(), container)
			},
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print one configuration value (e.g. engine.max_results)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return getConfigurationValue(cmd.Context(), cmd.OutOrStdout(), container, args[0])
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Set a configuration value (value accepts YAML syntax)",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return setConfigurationValue(cmd.Context(), cmd.OutOrStdout(), container, args[0], strings.Join(args[1:], " "))
			},
		},
		&cobra.Command{
			Use:   "edit",
			Short: "Edit the configuration file in $EDITOR",
			RunE: func(cmd *cobra.Command, args []string) error {
				return editConfiguration(cmd, container)
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Restore the default configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return resetConfiguration(cmd.OutOrStdout(), container)
			},
		},
	)

	return configCmd
}

// showConfiguration prints the loaded configuration as YAML
func showConfiguration(ctx context.Context, out io.Writer, container *app.Container) error {
	if container.ConfigProvider == nil {
		return errors.New(ErrConfigLoaderUnavailable)
	}
	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return err
	}
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(raw)
	return err
}

// validateConfiguration loads and checks the configuration
func validateConfiguration(ctx context.Context, out io.Writer, container *app.Container) error {
	if container.ConfigProvider == nil {
		return errors.New(ErrConfigLoaderUnavailable)
	}
	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return err
	}
	if err := configapp.Validate(cfg); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}
	fmt.Fprintln(out, MsgConfigurationValid)
	return nil
}

// diffConfiguration compares the loaded configuration with the embedded default
func diffConfiguration(ctx context.Context, out io.Writer, container *app.Container) error {
	if container.ConfigProvider == nil {
		return errors.New(ErrConfigLoaderUnavailable)
	}
	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return err
	}
	defaults, err := configinfra.Default()
	if err != nil {
		return err
	}
	diff := cmp.Diff(defaults, cfg)
	if diff == "" {
		fmt.Fprintln(out, MsgNoDifferencesFromDefault)
		return nil
	}
	fmt.Fprintln(out, "Differences (-default +current):")
	fmt.Fprint(out, diff)
	return nil
}

// getConfigurationValue prints the value at a dotted key path as YAML
func getConfigurationValue(ctx context.Context, out io.Writer, container *app.Container, key string) error {
	if container.ConfigProvider == nil {
		return errors.New(ErrConfigLoaderUnavailable)
	}
	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return err
	}
	value, err := helpers.LookupConfigValue(cfg, key)
	if err != nil {
		return err
	}
	raw, err := yaml.Marshal(value)
	if err != nil {
		return err
	}
	_, err = out.Write(raw)
	return err
}

// setConfigurationValue updates one key, validates and saves the file
func setConfigurationValue(ctx context.Context, out io.Writer, container *app.Container, key, value string) error {
	if container.ConfigProvider == nil {
		return errors.New(ErrConfigLoaderUnavailable)
	}
	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return err
	}
	updated, err := helpers.SetConfigValue(cfg, key, value)
	if err != nil {
		return err
	}
	if err := helpers.SaveConfigWithValidation(container, updated); err != nil {
		return err
	}
	fmt.Fprintf(out, MsgConfigValueUpdated, key)
	return nil
}

// editConfiguration opens the config file in $EDITOR and validates the result
func editConfiguration(cmd *cobra.Command, container *app.Container) error {
	loader, err := helpers.GetConfigLoader(container)
	if err != nil {
		return err
	}
	editor := os.Getenv(EnvEditor)
	if editor == "" {
		editor = DefaultEditor
	}
	run := exec.CommandContext(cmd.Context(), editor, loader.Path())
	run.Stdin = cmd.InOrStdin()
	run.Stdout = cmd.OutOrStdout()
	run.Stderr = cmd.ErrOrStderr()
	if err := run.Run(); err != nil {
		return fmt.Errorf("run editor %s: %w", editor, err)
	}
	return validateConfiguration(cmd.Context(), cmd.OutOrStdout(), container)
}

// resetConfiguration restores the embedded default and prints it
func resetConfiguration(out io.Writer, container *app.Container) error {
	loader, err := helpers.GetConfigLoader(container)
	if err != nil {
		return err
	}
	cfg, err := loader.Reset()
	if err != nil {
		return fmt.Errorf("reset configuration: %w", err)
	}
	container.Config = cfg
	fmt.Fprintf(out, MsgConfigurationReset, loader.Path())
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(raw)
	return err
}
