package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vitrine/internal/logger"
	"github.com/alexisbeaulieu97/vitrine/internal/tui/gallery"
)

// errNotTerminal is returned when the gallery is started without a terminal.
var errNotTerminal = errors.New("the gallery needs an interactive terminal; try 'vitrine show' instead")

type galleryOptions struct {
	page string
}

func newGalleryCmd(app *AppContext) *cobra.Command {
	opts := galleryOptions{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse the components interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.page, "page", "", "Page to open first")

	return cmd
}

func runGallery(cmd *cobra.Command, app *AppContext, opts galleryOptions) error {
	cfg := app.Config
	page := opts.page
	if page == "" {
		page = cfg.StartPage
	}

	tuiLog := logger.Nop()
	if cfg.Log.File != "" {
		fileLog, closer, err := logger.OpenFile(cfg.Log.File, cfg.Log.Level)
		if err != nil {
			return err
		}
		defer closer.Close()
		tuiLog = fileLog
	}

	m, err := gallery.NewModel(gallery.Options{
		Theme:       app.Theme,
		StartPage:   page,
		SidebarOpen: cfg.SidebarOpen(),
		Locale:      cfg.Locale,
		Logger:      tuiLog,
	})
	if err != nil {
		return err
	}

	if !isTerminal(cmd.OutOrStdout()) {
		return errNotTerminal
	}

	app.Logger.WithFields(map[string]any{"page": m.ActiveID()}).Debug("launching gallery")
	program := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := program.Run(); err != nil {
		app.Logger.Error(err, "gallery execution failed")
		return fmt.Errorf("failed to run gallery: %w", err)
	}

	app.Logger.Debug("gallery closed")
	return nil
}
