package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/codesuggest/internal/app"
	"github.com/doeshing/codesuggest/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. The container is built after flag
// parsing so --config and --verbose apply.
func NewRootCmd(ctx context.Context, opts Options) *cobra.Command {
	var (
		configPath string
		verbose    bool
	)
	container := &app.Container{}

	root := &cobra.Command{
		Use:   "codesuggest",
		Short: "Contextual code suggestions for the buffer you are editing",
		Long:  "codesuggest classifies the code around a cursor and ranks snippet, completion and best-practice suggestions for it.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsContainer(cmd) {
				return nil
			}
			built, err := app.BuildContainer(ctx, app.Options{
				ConfigPath: configPath,
				Verbose:    verbose || opts.Verbose,
			})
			if err != nil {
				return err
			}
			*container = *built
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.codesuggest/config.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		commands.NewSuggestCommand(container),
		commands.NewAnalyzeCommand(container),
		commands.NewLintCommand(container),
		commands.NewLanguagesCommand(container),
		commands.NewUsageCommand(container),
		commands.NewConfigCommand(container),
		commands.NewDoctorCommand(container),
		commands.NewVersionCommand(),
	)
	return root
}

func needsContainer(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion":
		return false
	}
	return true
}
