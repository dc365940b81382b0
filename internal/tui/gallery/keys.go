package gallery

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the gallery-wide bindings. Every other key goes to the
// active page.
type keyMap struct {
	NextPage      key.Binding
	PrevPage      key.Binding
	ToggleSidebar key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextPage:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page")),
		PrevPage:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous page")),
		ToggleSidebar: key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "toggle sidebar")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// pageHelp merges the active page's bindings with the gallery's own.
type pageHelp struct {
	page   help.KeyMap
	global keyMap
}

func (h pageHelp) ShortHelp() []key.Binding {
	bindings := append([]key.Binding{}, h.page.ShortHelp()...)
	return append(bindings, h.global.NextPage, h.global.Help, h.global.Quit)
}

func (h pageHelp) FullHelp() [][]key.Binding {
	groups := append([][]key.Binding{}, h.page.FullHelp()...)
	return append(groups, []key.Binding{
		h.global.NextPage,
		h.global.PrevPage,
		h.global.ToggleSidebar,
		h.global.Help,
		h.global.Quit,
	})
}
