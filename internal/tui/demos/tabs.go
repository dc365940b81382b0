package demos

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vitrine/internal/ui/components"
)

type tabsKeys struct {
	Prev key.Binding
	Next key.Binding
	Jump key.Binding
}

// TabsDemo switches between three panels. Its only state is the active
// tab id.
type TabsDemo struct {
	activeTab string
	items     []components.TabItem
	keys      tabsKeys
}

// NewTabsDemo creates the demo with the first tab active.
func NewTabsDemo() TabsDemo {
	items := []components.TabItem{
		{ID: "account", Label: "Account", Content: components.NewText("Manage the account name and e-mail address.")},
		{ID: "password", Label: "Password", Content: components.NewText("Change the password used to sign in.")},
		{ID: "notifications", Label: "Notifications", Content: components.NewText("Choose which events send a notification.")},
	}
	return TabsDemo{
		activeTab: items[0].ID,
		items:     items,
		keys: tabsKeys{
			Prev: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous tab")),
			Next: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next tab")),
			Jump: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump to tab")),
		},
	}
}

func (d TabsDemo) ID() string    { return "tabs" }
func (d TabsDemo) Title() string { return "Tabs" }
func (d TabsDemo) Description() string {
	return "One panel at a time, exactly one tab marked active."
}

// ActiveTab returns the id of the active tab.
func (d TabsDemo) ActiveTab() string {
	return d.activeTab
}

// SelectTab makes id the active tab. Unknown ids leave the demo unchanged.
func (d TabsDemo) SelectTab(id string) TabsDemo {
	next := d
	d.tabs(func(selected string) { next.activeTab = selected }).Select(id)
	return next
}

func (d TabsDemo) tabs(onChange func(string)) *components.Tabs {
	return components.NewTabs(components.TabsProps{
		Tabs:        d.items,
		ActiveTab:   d.activeTab,
		OnTabChange: onChange,
	})
}

// Init implements tea.Model.
func (d TabsDemo) Init() tea.Cmd { return nil }

// Update maps arrow and digit keys onto SelectTab.
func (d TabsDemo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	tabs := d.tabs(nil)
	switch {
	case key.Matches(keyMsg, d.keys.Prev):
		return d.SelectTab(tabs.Neighbor(-1)), nil
	case key.Matches(keyMsg, d.keys.Next):
		return d.SelectTab(tabs.Neighbor(1)), nil
	case key.Matches(keyMsg, d.keys.Jump):
		if id, ok := tabs.IDAt(int(keyMsg.Runes[0] - '1')); ok {
			return d.SelectTab(id), nil
		}
	}
	return d, nil
}

// View renders the demo with the default context.
func (d TabsDemo) View() string {
	return d.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the tab strip and active panel.
func (d TabsDemo) ViewWithContext(ctx components.RenderContext) string {
	return d.tabs(nil).ViewWithContext(ctx)
}

// ShortHelp implements help.KeyMap.
func (d TabsDemo) ShortHelp() []key.Binding {
	return []key.Binding{d.keys.Prev, d.keys.Next, d.keys.Jump}
}

// FullHelp implements help.KeyMap.
func (d TabsDemo) FullHelp() [][]key.Binding {
	return [][]key.Binding{d.ShortHelp()}
}
