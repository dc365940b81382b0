package components

import (
	"github.com/alexisbeaulieu97/vitrine/internal/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const topbarClass = "topbar"

// Sidebar toggle glyphs shown by the topbar.
const (
	SidebarToggleOpen   = "«"
	SidebarToggleClosed = "☰"
)

// TopbarProps configures a Topbar. Every field is optional.
type TopbarProps struct {
	Title string
	Attrs ui.Attrs
}

// Topbar is a single full-width row: the sidebar toggle and title on the
// left, children on the right. The toggle only appears when a sidebar
// provider is mounted in the render context.
type Topbar struct {
	BaseComponent
	props    TopbarProps
	children []ui.Renderable
}

// NewTopbar creates a topbar.
func NewTopbar(props TopbarProps, children ...ui.Renderable) *Topbar {
	return &Topbar{
		BaseComponent: NewBaseComponent(),
		props:         props,
		children:      children,
	}
}

// SidebarToggle returns the toggle glyph for the given sidebar state.
func SidebarToggle(open bool) string {
	if open {
		return SidebarToggleOpen
	}
	return SidebarToggleClosed
}

// View renders the topbar.
func (t *Topbar) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the topbar filling the available width.
func (t *Topbar) ViewWithContext(ctx RenderContext) string {
	style := applyClasses(t.ComputeStyle(ctx.Theme), ctx.Theme, t.Attrs())
	width := max(0, ctx.AvailableWidth(0)-style.GetHorizontalFrameSize())

	childCtx := ctx.WithConstraints(Unconstrained()).WithParentWidth(0)
	actions := make([]ui.Renderable, 0, len(t.children))
	for _, child := range t.children {
		if view := renderChild(child, childCtx); view != "" {
			actions = append(actions, rendered(view))
		}
	}
	right := HStack(actions...).WithGap(1).View()

	var left string
	if ctx.Sidebar != nil {
		left = lipgloss.NewStyle().Bold(true).Render(SidebarToggle(ctx.Sidebar.Open()))
		if t.props.Title != "" {
			left += " "
		}
	}
	if t.props.Title != "" {
		title := TitleText(t.props.Title).ViewWithContext(ctx)
		if width > 0 {
			room := width - ansi.StringWidth(left) - lipgloss.Width(right) - 1
			if ansi.StringWidth(title) > room {
				title = ansi.Truncate(title, max(room, 1), "…")
			}
		}
		left += title
	}

	align := MainSpaceBetween
	if left == "" {
		align = MainEnd
	}
	row := HStack(rendered(left), rendered(right)).
		WithMainAlign(align).
		WithGap(1)
	rowCtx := ctx.WithConstraints(Unconstrained())
	if width > 0 {
		rowCtx = ctx.WithConstraints(WithMaxWidth(width))
	}
	return style.Render(row.ViewWithContext(rowCtx))
}

// Attrs returns the resolved attributes: the topbar class followed by caller
// classes, plus caller attributes.
func (t *Topbar) Attrs() ui.Attrs {
	return ui.MergeAttrs(ui.Attrs{ui.ClassKey: topbarClass}, t.props.Attrs)
}

// Children returns the child renderables.
func (t *Topbar) Children() []ui.Renderable {
	return t.children
}

// Props returns the topbar configuration.
func (t *Topbar) Props() TopbarProps {
	return t.props
}

// WithStyle sets the topbar style.
func (t *Topbar) WithStyle(style lipgloss.Style) *Topbar {
	t.SetStyle(style)
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Topbar) WithAppliers(appliers ...StyleFunc) *Topbar {
	t.AddAppliers(appliers...)
	return t
}
