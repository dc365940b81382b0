package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const defaultProgressWidth = 30

// ProgressProps configures a ProgressBar. Both fields are required.
type ProgressProps struct {
	Value float64
	Max   float64
}

// Ratio returns Value/Max clamped to [0, 1]. A non-positive Max yields 0.
func (p ProgressProps) Ratio() float64 {
	if p.Max <= 0 || math.IsNaN(p.Value) {
		return 0
	}
	return math.Max(0, math.Min(1, p.Value/p.Max))
}

// Percent returns the clamped ratio as a whole percentage.
func (p ProgressProps) Percent() int {
	return int(math.Round(p.Ratio() * 100))
}

// ProgressBar renders a gradient bar followed by its percentage.
type ProgressBar struct {
	BaseComponent
	props ProgressProps
	width int
}

// NewProgressBar creates a progress bar from props.
func NewProgressBar(props ProgressProps) *ProgressBar {
	return &ProgressBar{
		BaseComponent: NewBaseComponent(),
		props:         props,
	}
}

// View renders the progress bar.
func (p *ProgressBar) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the progress bar. The bar takes the explicit
// width, else the available width minus the label, else a default.
func (p *ProgressBar) ViewWithContext(ctx RenderContext) string {
	label := lipgloss.NewStyle().Bold(true).Width(4).Align(lipgloss.Right).
		Render(fmt.Sprintf("%d%%", p.props.Percent()))

	width := p.width
	if width <= 0 {
		width = ctx.AvailableWidth(defaultProgressWidth+1+lipgloss.Width(label)) - 1 - lipgloss.Width(label)
	}
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = max(width, 1)

	return p.ComputeStyle(ctx.Theme).Render(
		lipgloss.JoinHorizontal(lipgloss.Left, bar.ViewAs(p.props.Ratio()), " ", label),
	)
}

// WithWidth sets an explicit bar width, excluding the label.
func (p *ProgressBar) WithWidth(width int) *ProgressBar {
	p.width = width
	return p
}

// WithAppliers applies theme-based style modifiers.
func (p *ProgressBar) WithAppliers(appliers ...StyleFunc) *ProgressBar {
	p.AddAppliers(appliers...)
	return p
}

// Props returns the progress configuration.
func (p *ProgressBar) Props() ProgressProps {
	return p.props
}
