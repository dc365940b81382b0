// Package gallery is the root bubbletea model of the interactive gallery.
//
// The model owns the single sidebar provider of its render tree and routes
// between the demo pages. Keys that the gallery does not bind go to the
// active page.
package gallery

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vitrine/internal/logger"
	"github.com/alexisbeaulieu97/vitrine/internal/tui/demos"
	"github.com/alexisbeaulieu97/vitrine/internal/ui/components"
	"github.com/alexisbeaulieu97/vitrine/internal/ui/sidebar"
	vitrineerrors "github.com/alexisbeaulieu97/vitrine/pkg/errors"
)

// Minimum terminal size the gallery lays out for.
const (
	MinWidth  = 60
	MinHeight = 16
)

// Options configures a gallery Model.
type Options struct {
	// Theme defaults to the light theme.
	Theme components.Theme
	// StartPage is a page id. Empty starts on the first page.
	StartPage   string
	SidebarOpen bool
	// Pages defaults to demos.All.
	Pages  []demos.Demo
	Locale string
	Logger *logger.Logger
}

// Model is the gallery.
type Model struct {
	pages   []demos.Demo
	active  int
	sidebar *sidebar.Provider
	theme   components.Theme

	keys     keyMap
	help     help.Model
	showHelp bool

	width  int
	height int

	log *logger.Logger
}

// NewModel creates the gallery. It fails when StartPage names no page.
func NewModel(opts Options) (Model, error) {
	pages := opts.Pages
	if len(pages) == 0 {
		pages = demos.All(demos.Options{Locale: opts.Locale})
	}
	theme := opts.Theme
	if theme.Name == "" {
		theme = components.DefaultTheme()
	}
	theme = theme.Normalize()

	m := Model{
		pages:   slices.Clone(pages),
		sidebar: sidebar.NewProvider(opts.SidebarOpen),
		theme:   theme,
		keys:    defaultKeyMap(),
		help:    help.New(),
		log:     opts.Logger,
	}

	if opts.StartPage != "" {
		index := m.indexOf(opts.StartPage)
		if index < 0 {
			return Model{}, vitrineerrors.NewLookupError("page", opts.StartPage, m.PageIDs())
		}
		m.active = index
	}

	log := m.log
	m.sidebar.OnChange(func(open bool) {
		log.WithFields(map[string]any{"open": open}).Debug("sidebar toggled")
	})

	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.ActivePage().Init()
}

// PageIDs returns the page ids in navigation order.
func (m Model) PageIDs() []string {
	ids := make([]string, len(m.pages))
	for i, page := range m.pages {
		ids[i] = page.ID()
	}
	return ids
}

// ActivePage returns the page currently shown.
func (m Model) ActivePage() demos.Demo {
	return m.pages[m.active]
}

// ActiveID returns the id of the page currently shown.
func (m Model) ActiveID() string {
	return m.ActivePage().ID()
}

// SidebarOpen reports whether the sidebar is expanded.
func (m Model) SidebarOpen() bool {
	return m.sidebar.Open()
}

// HelpExpanded reports whether the full key help is shown.
func (m Model) HelpExpanded() bool {
	return m.showHelp
}

// TooSmall reports whether the terminal is below the minimum size.
func (m Model) TooSmall() bool {
	return m.width < MinWidth || m.height < MinHeight
}

// SelectPage shows the page with the given id. Unknown ids leave the model
// unchanged.
func (m Model) SelectPage(id string) Model {
	index := m.indexOf(id)
	if index < 0 || index == m.active {
		return m
	}
	m.active = index
	m.log.WithFields(map[string]any{"page": id}).Debug("page changed")
	return m
}

// NextPage moves to the following page, wrapping at the end.
func (m Model) NextPage() Model {
	return m.SelectPage(m.pages[(m.active+1)%len(m.pages)].ID())
}

// PrevPage moves to the preceding page, wrapping at the start.
func (m Model) PrevPage() Model {
	return m.SelectPage(m.pages[(m.active-1+len(m.pages))%len(m.pages)].ID())
}

// ToggleSidebar flips the sidebar provider.
func (m Model) ToggleSidebar() Model {
	m.sidebar.Toggle()
	return m
}

func (m Model) indexOf(id string) int {
	return slices.IndexFunc(m.pages, func(page demos.Demo) bool { return page.ID() == id })
}

// renderContext is the context handed to every component in the tree.
func (m Model) renderContext() components.RenderContext {
	return components.DefaultContext().
		WithTheme(m.theme).
		WithSidebar(m.sidebar.State()).
		WithParentWidth(m.width)
}
