package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	theme      string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "vitrine",
		Short:         "vitrine is a themed terminal component kit and gallery",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd, app, galleryOptions{})
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file (default $XDG_CONFIG_HOME/vitrine/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Theme name (light or dark)")

	cmd.AddCommand(newGalleryCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
