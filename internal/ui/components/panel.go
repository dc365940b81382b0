package components

import (
	"github.com/alexisbeaulieu97/vitrine/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Panel groups content into a section on the surface colour. Header and
// footer are kept apart from the children and separated by rules.
type Panel struct {
	*Container
	header ui.Renderable
	footer ui.Renderable
}

// NewPanel creates a new panel with default styling.
func NewPanel(children ...ui.Renderable) *Panel {
	container := NewContainer(children...).
		WithPadding(HorizontalSpacing(1))
	container.WithAppliers(Background(PaletteSurface))

	return &Panel{Container: container}
}

// View renders the panel.
func (p *Panel) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the panel with layout context.
func (p *Panel) ViewWithContext(ctx RenderContext) string {
	style, inner := p.frame(ctx)

	rule := func() ui.Renderable { return NewDivider(DividerProps{Margin: DividerMarginNone}) }
	sections := make([]ui.Renderable, 0, len(p.Children())+4)
	if p.header != nil {
		sections = append(sections, p.header, rule())
	}
	sections = append(sections, p.Children()...)
	if p.footer != nil {
		sections = append(sections, rule(), p.footer)
	}
	return style.Render(VStack(sections...).ViewWithContext(inner))
}

// WithHeader sets the panel header, replacing any previous one.
func (p *Panel) WithHeader(header ui.Renderable) *Panel {
	p.header = header
	return p
}

// WithFooter sets the panel footer, replacing any previous one.
func (p *Panel) WithFooter(footer ui.Renderable) *Panel {
	p.footer = footer
	return p
}

// WithTitle sets a title text header.
func (p *Panel) WithTitle(title string) *Panel {
	return p.WithHeader(TitleText(title))
}

// WithBorder adds a border to the panel.
func (p *Panel) WithBorder(border lipgloss.Border) *Panel {
	p.Container.WithBorder(border)
	return p
}

// Header returns the panel header, or nil.
func (p *Panel) Header() ui.Renderable {
	return p.header
}

// AsContainer returns the underlying container.
func (p *Panel) AsContainer() *Container {
	return p.Container
}
