package demos

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vitrine/internal/ui/components"
)

const (
	progressInitial = 40
	progressStep    = 10
	progressMin     = 0
	progressMax     = 100
)

type progressKeys struct {
	Decrement key.Binding
	Increment key.Binding
}

// ProgressDemo drives a progress bar with two buttons. Its only state is
// the progress value, always within [0, 100].
type ProgressDemo struct {
	progress int
	keys     progressKeys
}

// NewProgressDemo creates the demo at 40%.
func NewProgressDemo() ProgressDemo {
	return ProgressDemo{
		progress: progressInitial,
		keys: progressKeys{
			Decrement: key.NewBinding(key.WithKeys("-", "left"), key.WithHelp("-", "decrease")),
			Increment: key.NewBinding(key.WithKeys("+", "=", "right"), key.WithHelp("+", "increase")),
		},
	}
}

func (d ProgressDemo) ID() string    { return "progress" }
func (d ProgressDemo) Title() string { return "Progress" }
func (d ProgressDemo) Description() string {
	return "A clamped progress bar stepped in tens."
}

// Progress returns the current value.
func (d ProgressDemo) Progress() int {
	return d.progress
}

// Decrement lowers progress by one step, stopping at 0.
func (d ProgressDemo) Decrement() ProgressDemo {
	d.progress = max(progressMin, d.progress-progressStep)
	return d
}

// Increment raises progress by one step, stopping at 100.
func (d ProgressDemo) Increment() ProgressDemo {
	d.progress = min(progressMax, d.progress+progressStep)
	return d
}

// CanDecrement reports whether the decrement button is enabled.
func (d ProgressDemo) CanDecrement() bool {
	return d.progress > progressMin
}

// CanIncrement reports whether the increment button is enabled.
func (d ProgressDemo) CanIncrement() bool {
	return d.progress < progressMax
}

// Init implements tea.Model.
func (d ProgressDemo) Init() tea.Cmd { return nil }

// Update maps the step keys onto Decrement and Increment.
func (d ProgressDemo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch {
	case key.Matches(keyMsg, d.keys.Decrement):
		return d.Decrement(), nil
	case key.Matches(keyMsg, d.keys.Increment):
		return d.Increment(), nil
	}
	return d, nil
}

// View renders the demo with the default context.
func (d ProgressDemo) View() string {
	return d.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the bar above its controls.
func (d ProgressDemo) ViewWithContext(ctx components.RenderContext) string {
	bar := components.NewProgressBar(components.ProgressProps{
		Value: float64(d.progress),
		Max:   progressMax,
	})
	controls := components.HStack(
		components.SecondaryButton("−").WithDisabled(!d.CanDecrement()),
		components.SecondaryButton("+").WithDisabled(!d.CanIncrement()),
		components.MutedText(fmt.Sprintf("%d of %d", d.progress, progressMax)),
	).WithGap(1)

	return components.VStack(bar, controls).WithGap(1).ViewWithContext(ctx)
}

// ShortHelp implements help.KeyMap.
func (d ProgressDemo) ShortHelp() []key.Binding {
	return []key.Binding{d.keys.Decrement, d.keys.Increment}
}

// FullHelp implements help.KeyMap.
func (d ProgressDemo) FullHelp() [][]key.Binding {
	return [][]key.Binding{d.ShortHelp()}
}
