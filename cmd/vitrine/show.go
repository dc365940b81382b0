package main

import (
	"fmt"

	"github.com/spf13/cobra"

	vitrineerrors "github.com/alexisbeaulieu97/vitrine/pkg/errors"
)

type showOptions struct {
	width int
}

func newShowCmd(app *AppContext) *cobra.Command {
	opts := showOptions{}

	cmd := &cobra.Command{
		Use:       "show COMPONENT",
		Short:     "Print one component",
		Args:      cobra.ExactArgs(1),
		ValidArgs: showcaseNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 0, "Render width (default: terminal width)")

	return cmd
}

func runShow(cmd *cobra.Command, app *AppContext, name string, opts showOptions) error {
	entry, ok := findShowcase(name)
	if !ok {
		return vitrineerrors.NewLookupError("component", name, showcaseNames())
	}

	width := opts.width
	if width <= 0 {
		width = terminalWidth(cmd.OutOrStdout())
	}

	app.Logger.WithFields(map[string]any{"component": name, "width": width}).Debug("rendering component")
	_, err := fmt.Fprintln(cmd.OutOrStdout(), entry.render(app.RenderContext(width), app.Config.Locale))
	return err
}
