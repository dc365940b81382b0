package components

import (
	"github.com/alexisbeaulieu97/vitrine/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

const pageHeaderClass = "page-header"

// PageHeaderProps configures a PageHeader. Every field is optional; an
// empty Title or Subtitle leaves its row out entirely.
type PageHeaderProps struct {
	Title    string
	Subtitle string
	Attrs    ui.Attrs
}

// PageHeader is the heading block at the top of a page: a title, a
// subtitle and any children stacked beneath them.
type PageHeader struct {
	BaseComponent
	props    PageHeaderProps
	children []ui.Renderable
}

// NewPageHeader creates a page header.
func NewPageHeader(props PageHeaderProps, children ...ui.Renderable) *PageHeader {
	return &PageHeader{
		BaseComponent: NewBaseComponent(),
		props:         props,
		children:      children,
	}
}

// View renders the page header.
func (h *PageHeader) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the page header with the given context.
func (h *PageHeader) ViewWithContext(ctx RenderContext) string {
	style := applyClasses(h.ComputeStyle(ctx.Theme), ctx.Theme, h.Attrs())

	rows := make([]ui.Renderable, 0, len(h.children)+2)
	if h.props.Title != "" {
		rows = append(rows, TitleText(h.props.Title))
	}
	if h.props.Subtitle != "" {
		rows = append(rows, SubtitleText(h.props.Subtitle))
	}
	rows = append(rows, h.children...)

	inner := ctx
	if ctx.Constraints.MaxWidth > 0 {
		limits := ctx.Constraints
		limits.MaxWidth = max(0, limits.MaxWidth-style.GetHorizontalFrameSize())
		inner = ctx.WithConstraints(limits)
	}
	return style.Render(VStack(rows...).ViewWithContext(inner))
}

// Attrs returns the resolved attributes: the page-header class followed by
// caller classes, plus caller attributes.
func (h *PageHeader) Attrs() ui.Attrs {
	return ui.MergeAttrs(ui.Attrs{ui.ClassKey: pageHeaderClass}, h.props.Attrs)
}

// Children returns the child renderables.
func (h *PageHeader) Children() []ui.Renderable {
	return h.children
}

// Add appends children below the title block.
func (h *PageHeader) Add(children ...ui.Renderable) *PageHeader {
	h.children = append(h.children, children...)
	return h
}

// Props returns the page header configuration.
func (h *PageHeader) Props() PageHeaderProps {
	return h.props
}

// WithStyle sets the page header style.
func (h *PageHeader) WithStyle(style lipgloss.Style) *PageHeader {
	h.SetStyle(style)
	return h
}

// WithAppliers applies theme-based style modifiers.
func (h *PageHeader) WithAppliers(appliers ...StyleFunc) *PageHeader {
	h.AddAppliers(appliers...)
	return h
}
