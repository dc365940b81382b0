package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vitrine/internal/config"
	"github.com/alexisbeaulieu97/vitrine/internal/logger"
	"github.com/alexisbeaulieu97/vitrine/internal/ui/components"
	vitrineerrors "github.com/alexisbeaulieu97/vitrine/pkg/errors"
)

// AppContext bundles what every command needs once flags are parsed.
type AppContext struct {
	Config *config.Config
	Theme  components.Theme
	Logger *logger.Logger
}

// load reads the configuration, applies flag overrides and builds the
// command logger.
func (a *AppContext) load(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if flags.theme != "" {
		cfg.Theme = flags.theme
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}

	theme, ok := components.ThemeByName(cfg.Theme)
	if !ok {
		return vitrineerrors.NewLookupError("theme", cfg.Theme, components.ThemeNames())
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	a.Config = cfg
	a.Theme = theme
	a.Logger = log.WithFields(map[string]any{"command": commandName(cmd)})
	return nil
}

// RenderContext is the context used for one-shot rendering at width.
func (a *AppContext) RenderContext(width int) components.RenderContext {
	return components.DefaultContext().WithTheme(a.Theme).WithParentWidth(width)
}

// commandName is the command path without the binary name.
func commandName(cmd *cobra.Command) string {
	path := strings.Fields(cmd.CommandPath())
	if len(path) <= 1 {
		return "root"
	}
	return strings.Join(path[1:], " ")
}
