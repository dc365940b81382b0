// Package docs renders the embedded markdown documentation for each
// gallery page.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"

	vitrineerrors "github.com/alexisbeaulieu97/vitrine/pkg/errors"
)

//go:embed pages/*.md
var pagesFS embed.FS

// Overview is the page shown when no page is named.
const Overview = "overview"

// Defaults match the config package defaults.
const (
	DefaultStyle = "dark"
	DefaultWrap  = 80
)

// Pages returns every documented page id, sorted.
func Pages() []string {
	entries, _ := fs.ReadDir(pagesFS, "pages")
	pages := make([]string, 0, len(entries))
	for _, entry := range entries {
		pages = append(pages, strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())))
	}
	slices.Sort(pages)
	return pages
}

// Source returns the raw markdown of page.
func Source(page string) (string, error) {
	if page == "" {
		page = Overview
	}
	data, err := pagesFS.ReadFile(path.Join("pages", page+".md"))
	if err != nil {
		return "", vitrineerrors.NewLookupError("docs page", page, Pages())
	}
	return string(data), nil
}

// Options configures a Renderer.
type Options struct {
	// Style is a glamour standard style name.
	Style string
	// Wrap is the word wrap column.
	Wrap int
}

// Renderer turns page markdown into styled terminal text.
type Renderer struct {
	term *glamour.TermRenderer
}

// NewRenderer builds a renderer. Zero options take the defaults.
func NewRenderer(opts Options) (*Renderer, error) {
	if opts.Style == "" {
		opts.Style = DefaultStyle
	}
	if opts.Wrap <= 0 {
		opts.Wrap = DefaultWrap
	}

	term, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(opts.Style),
		glamour.WithWordWrap(opts.Wrap),
	)
	if err != nil {
		return nil, fmt.Errorf("docs renderer: %w", err)
	}
	return &Renderer{term: term}, nil
}

// Render renders page.
func (r *Renderer) Render(page string) (string, error) {
	source, err := Source(page)
	if err != nil {
		return "", err
	}
	out, err := r.term.Render(source)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", page, err)
	}
	return out, nil
}
