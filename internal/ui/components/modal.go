package components

import (
	"strings"

	"github.com/alexisbeaulieu97/vitrine/internal/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ModalCloseHint is the close affordance printed at the foot of a modal.
const ModalCloseHint = "esc: close"

// ModalProps configures a Modal. Open and OnClose are required.
type ModalProps struct {
	Open    bool
	OnClose func()
	Title   string
}

// Modal is a bordered dialog. It renders nothing while closed and does
// not own its open state: the owner flips Open in response to OnClose.
type Modal struct {
	BaseComponent
	props    ModalProps
	children []ui.Renderable
}

// NewModal creates a modal.
func NewModal(props ModalProps, children ...ui.Renderable) *Modal {
	return &Modal{
		BaseComponent: NewBaseComponent(),
		props:         props,
		children:      children,
	}
}

// IsOpen reports whether the modal is shown.
func (m *Modal) IsOpen() bool {
	return m.props.Open
}

// Close activates the close affordance. It calls OnClose and reports true
// only while the modal is open.
func (m *Modal) Close() bool {
	if !m.props.Open {
		return false
	}
	if m.props.OnClose != nil {
		m.props.OnClose()
	}
	return true
}

// View renders the modal.
func (m *Modal) View() string {
	return m.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the modal box, or "" when closed.
func (m *Modal) ViewWithContext(ctx RenderContext) string {
	if !m.props.Open {
		return ""
	}

	rows := make([]ui.Renderable, 0, len(m.children)+3)
	if m.props.Title != "" {
		rows = append(rows, TitleText(m.props.Title))
	}
	rows = append(rows, m.children...)
	rows = append(rows, VerticalSpacer(1), MutedText(ModalCloseHint))

	box := NewContainer(rows...).
		WithBorder(lipgloss.RoundedBorder()).
		WithBorderColor("primary").
		WithPadding(SymmetricSpacing(PaddingValue(ctx.Theme, SpacingSizeExtraSmall), PaddingValue(ctx.Theme, SpacingSizeMedium))).
		WithStyle(m.style)
	if m.strategy != nil {
		box.WithAppliers(m.strategy.Apply)
	}
	return box.ViewWithContext(ctx)
}

// Children returns the modal content.
func (m *Modal) Children() []ui.Renderable {
	return m.children
}

// Props returns the modal configuration.
func (m *Modal) Props() ModalProps {
	return m.props
}

// WithAppliers applies theme-based style modifiers to the box.
func (m *Modal) WithAppliers(appliers ...StyleFunc) *Modal {
	m.AddAppliers(appliers...)
	return m
}

// Overlay draws box centred over base within a width x height canvas. Cells
// of base outside the box stay visible.
func Overlay(base, box string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	baseLines := canvasLines(base, height)
	if box == "" {
		return strings.Join(baseLines, "\n")
	}

	boxLines := strings.Split(box, "\n")
	boxWidth := min(lipgloss.Width(box), width)
	top := max(0, (height-len(boxLines))/2)
	left := max(0, (width-boxWidth)/2)

	for i, line := range boxLines {
		row := top + i
		if row >= height {
			break
		}
		under := padCells(baseLines[row], width)
		baseLines[row] = ansi.Truncate(under, left, "") +
			padCells(ansi.Truncate(line, boxWidth, ""), boxWidth) +
			ansi.TruncateLeft(under, left+boxWidth, "")
	}
	return strings.Join(baseLines, "\n")
}

func canvasLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func padCells(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
