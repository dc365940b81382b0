package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vitrine/internal/docs"
)

func newDocsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "docs [PAGE]",
		Short:     "Render the documentation of a page",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: docs.Pages(),
		RunE: func(cmd *cobra.Command, args []string) error {
			page := docs.Overview
			if len(args) == 1 {
				page = args[0]
			}
			return runDocs(cmd, app, page)
		},
	}

	return cmd
}

func runDocs(cmd *cobra.Command, app *AppContext, page string) error {
	renderer, err := docs.NewRenderer(docs.Options{
		Style: app.Config.Docs.Style,
		Wrap:  app.Config.Docs.Wrap,
	})
	if err != nil {
		return err
	}

	out, err := renderer.Render(page)
	if err != nil {
		return err
	}

	app.Logger.WithFields(map[string]any{"page": page}).Debug("rendered docs")
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
