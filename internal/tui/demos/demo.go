// Package demos holds the interactive component demos shown by the gallery.
//
// Each demo is a bubbletea model that owns one piece of local state and
// changes it only through named transition methods (Open, SelectTab,
// Increment, ...). Key handling in Update maps keys onto those transitions.
// Demos are values: transitions return the updated demo.
package demos

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vitrine/internal/ui/components"
)

// Demo is a gallery page.
type Demo interface {
	tea.Model
	help.KeyMap

	// ID is the stable page id used in config and on the command line.
	ID() string
	// Title and Description feed the page header.
	Title() string
	Description() string
	// ViewWithContext renders the page body.
	ViewWithContext(ctx components.RenderContext) string
}

var (
	_ Demo = ModalDemo{}
	_ Demo = TabsDemo{}
	_ Demo = ProgressDemo{}
	_ Demo = CalendarDemo{}
	_ Demo = AvatarDemo{}
	_ Demo = TooltipDemo{}
)

// Options configures the demo set.
type Options struct {
	// Locale formats dates in the calendar demo.
	Locale string
}

// All returns one instance of every demo in gallery order.
func All(opts Options) []Demo {
	return []Demo{
		NewModalDemo(),
		NewTabsDemo(),
		NewProgressDemo(),
		NewCalendarDemo(opts.Locale, today()),
		NewAvatarDemo(),
		NewTooltipDemo(),
	}
}

// IDs returns the ids of every demo in gallery order.
func IDs() []string {
	all := All(Options{})
	ids := make([]string, len(all))
	for i, demo := range all {
		ids[i] = demo.ID()
	}
	return ids
}
