package gallery

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vitrine/internal/tui/demos"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		wasSmall := m.width > 0 && m.TooSmall()
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.TooSmall() && !wasSmall {
			m.log.WithFields(map[string]any{"width": m.width, "height": m.height}).Warn("terminal too small")
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case SelectPageMsg:
		return m.SelectPage(msg.ID), nil

	case ToggleSidebarMsg:
		return m.ToggleSidebar(), nil
	}

	return m.updatePage(msg)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextPage):
		return m.NextPage(), nil
	case key.Matches(msg, m.keys.PrevPage):
		return m.PrevPage(), nil
	case key.Matches(msg, m.keys.ToggleSidebar):
		return m.ToggleSidebar(), nil
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}
	return m.updatePage(msg)
}

// updatePage forwards msg to the active page.
func (m Model) updatePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.ActivePage().Update(msg)
	page, ok := next.(demos.Demo)
	if !ok {
		return m, cmd
	}
	m.pages = slices.Clone(m.pages)
	m.pages[m.active] = page
	return m, cmd
}
