package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/codesuggest/internal/app"
	"github.com/doeshing/codesuggest/internal/domain"
)

// bufferFlags locate the cursor inside a file.
type bufferFlags struct {
	line     int
	column   int
	language string
}

func (f *bufferFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.line, "line", "l", 0, "Cursor line (1-based)")
	cmd.Flags().IntVarP(&f.column, "column", "c", DefaultColumn, "Cursor column in runes (0-based, default end of line)")
	cmd.Flags().StringVar(&f.language, "language", "", "Language id (default from file extension)")
}

// analyze reads the buffer and runs it through the engine's analyzer, which
// also records the context in the session history.
func analyze(cmd *cobra.Command, container *app.Container, path string, flags bufferFlags) (domain.CodeContext, error) {
	if container.Engine == nil || container.Collector == nil {
		return domain.CodeContext{}, errors.New(ErrEngineUnavailable)
	}
	if flags.line < 1 {
		return domain.CodeContext{}, errors.New(ErrLineRequired)
	}
	state, err := container.Collector.Collect(cmd.Context(), domain.CollectRequest{
		Path:     path,
		Line:     flags.line,
		Column:   flags.column,
		Language: flags.language,
	})
	if err != nil {
		return domain.CodeContext{}, fmt.Errorf("collect %s: %w", path, err)
	}
	return container.Engine.AnalyzeContext(state), nil
}
