package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vitrine/internal/tui/demos"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(app *AppContext) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List gallery pages and components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type listEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description"`
}

type listJSONPayload struct {
	Pages      []listEntry `json:"pages"`
	Components []listEntry `json:"components"`
}

func runList(cmd *cobra.Command, app *AppContext, opts *listOptions) error {
	payload := listJSONPayload{}
	for _, page := range demos.All(demos.Options{Locale: app.Config.Locale}) {
		payload.Pages = append(payload.Pages, listEntry{ID: page.ID(), Title: page.Title(), Description: page.Description()})
	}
	for _, entry := range catalog {
		payload.Components = append(payload.Components, listEntry{ID: entry.Name, Description: entry.Description})
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "PAGE\tTITLE\tDESCRIPTION")
	for _, page := range payload.Pages {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", page.ID, page.Title, page.Description)
	}
	fmt.Fprintln(writer, "\t\t")
	fmt.Fprintln(writer, "COMPONENT\t\tDESCRIPTION")
	for _, entry := range payload.Components {
		fmt.Fprintf(writer, "%s\t\t%s\n", entry.ID, entry.Description)
	}
	return writer.Flush()
}
