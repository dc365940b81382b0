package demos

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/vitrine/internal/ui/components"
)

type modalKeys struct {
	Open  key.Binding
	Close key.Binding
}

// ModalDemo shows a button that opens a modal dialog. Its only state is
// whether the modal is open.
type ModalDemo struct {
	open bool
	keys modalKeys
}

// NewModalDemo creates the demo with the modal closed.
func NewModalDemo() ModalDemo {
	return ModalDemo{
		keys: modalKeys{
			Open:  key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter", "open modal")),
			Close: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close modal")),
		},
	}
}

func (d ModalDemo) ID() string    { return "modal" }
func (d ModalDemo) Title() string { return "Modal" }
func (d ModalDemo) Description() string {
	return "A dialog drawn over the page, dismissed through its close affordance."
}

// Open shows the modal. Opening an open modal keeps it open.
func (d ModalDemo) Open() ModalDemo {
	d.open = true
	return d
}

// Close hides the modal.
func (d ModalDemo) Close() ModalDemo {
	d.open = false
	return d
}

// IsOpen reports whether the modal is shown.
func (d ModalDemo) IsOpen() bool {
	return d.open
}

// Init implements tea.Model.
func (d ModalDemo) Init() tea.Cmd { return nil }

// Update maps the open key to the button and esc to the modal's close
// affordance.
func (d ModalDemo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch {
	case key.Matches(keyMsg, d.keys.Open) && !d.open:
		return d.Open(), nil
	case key.Matches(keyMsg, d.keys.Close):
		next := d
		d.modal(func() { next = next.Close() }).Close()
		return next, nil
	}
	return d, nil
}

func (d ModalDemo) modal(onClose func()) *components.Modal {
	return components.NewModal(
		components.ModalProps{Open: d.open, OnClose: onClose, Title: "Confirm"},
		components.NewText("This dialog sits above the page."),
		components.MutedText("Nothing changes until it is closed."),
	)
}

// View renders the demo with the default context.
func (d ModalDemo) View() string {
	return d.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the open button and, when open, the modal over it.
func (d ModalDemo) ViewWithContext(ctx components.RenderContext) string {
	base := components.VStack(
		components.PrimaryButton("Open Modal").WithFocused(!d.open).WithDisabled(d.open),
		components.MutedText("Press enter to open."),
	).WithGap(1).ViewWithContext(ctx)

	box := d.modal(nil).ViewWithContext(ctx)
	if box == "" {
		return base
	}

	width := max(lipgloss.Width(base), lipgloss.Width(box), ctx.AvailableWidth(0))
	height := max(lipgloss.Height(base), lipgloss.Height(box)+2)
	return components.Overlay(base, box, width, height)
}

// ShortHelp implements help.KeyMap.
func (d ModalDemo) ShortHelp() []key.Binding {
	if d.open {
		return []key.Binding{d.keys.Close}
	}
	return []key.Binding{d.keys.Open}
}

// FullHelp implements help.KeyMap.
func (d ModalDemo) FullHelp() [][]key.Binding {
	return [][]key.Binding{{d.keys.Open, d.keys.Close}}
}
