package demos

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vitrine/internal/ui/components"
)

// TooltipText is the tip shown under the anchor button.
const TooltipText = "Saves without closing the editor"

type tooltipKeys struct {
	Toggle key.Binding
	Hide   key.Binding
}

// TooltipDemo shows a tip under a button. Its only state is whether the
// tip is visible.
type TooltipDemo struct {
	visible bool
	keys    tooltipKeys
}

// NewTooltipDemo creates the demo with the tip hidden.
func NewTooltipDemo() TooltipDemo {
	return TooltipDemo{
		keys: tooltipKeys{
			Toggle: key.NewBinding(key.WithKeys("t", "enter"), key.WithHelp("t", "toggle tooltip")),
			Hide:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "hide tooltip")),
		},
	}
}

func (d TooltipDemo) ID() string    { return "tooltip" }
func (d TooltipDemo) Title() string { return "Tooltip" }
func (d TooltipDemo) Description() string {
	return "A hint attached to a control, shown on demand."
}

// Show makes the tip visible.
func (d TooltipDemo) Show() TooltipDemo {
	d.visible = true
	return d
}

// Hide hides the tip.
func (d TooltipDemo) Hide() TooltipDemo {
	d.visible = false
	return d
}

// Visible reports whether the tip is shown.
func (d TooltipDemo) Visible() bool {
	return d.visible
}

// Init implements tea.Model.
func (d TooltipDemo) Init() tea.Cmd { return nil }

// Update toggles the tip and hides it on esc.
func (d TooltipDemo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch {
	case key.Matches(keyMsg, d.keys.Toggle):
		if d.visible {
			return d.Hide(), nil
		}
		return d.Show(), nil
	case key.Matches(keyMsg, d.keys.Hide):
		return d.Hide(), nil
	}
	return d, nil
}

// View renders the demo with the default context.
func (d TooltipDemo) View() string {
	return d.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the anchor button and its tip.
func (d TooltipDemo) ViewWithContext(ctx components.RenderContext) string {
	return components.NewTooltip(
		components.TooltipProps{Text: TooltipText, Visible: d.visible},
		components.SecondaryButton("Save").WithFocused(d.visible),
	).ViewWithContext(ctx)
}

// ShortHelp implements help.KeyMap.
func (d TooltipDemo) ShortHelp() []key.Binding {
	return []key.Binding{d.keys.Toggle, d.keys.Hide}
}

// FullHelp implements help.KeyMap.
func (d TooltipDemo) FullHelp() [][]key.Binding {
	return [][]key.Binding{d.ShortHelp()}
}
