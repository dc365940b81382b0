package components

import (
	"github.com/alexisbeaulieu97/vitrine/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Card is a rounded, bordered container with an optional title and footer.
type Card struct {
	*Container
	title  string
	footer ui.Renderable
}

// NewCard creates a new card with default card styling.
func NewCard(children ...ui.Renderable) *Card {
	container := NewContainer(children...).
		WithBorder(lipgloss.RoundedBorder()).
		WithPadding(HorizontalSpacing(1))
	container.WithAppliers(CardBaseStyle()...)

	return &Card{Container: container}
}

// ViewWithContext renders the title, the children and the footer inside
// the card frame.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	style, inner := c.frame(ctx)

	sections := make([]ui.Renderable, 0, len(c.Children())+3)
	if c.title != "" {
		sections = append(sections, TitleText(c.title))
	}
	sections = append(sections, c.Children()...)
	if c.footer != nil {
		sections = append(sections, NewDivider(DividerProps{Margin: DividerMarginNone}), c.footer)
	}
	return style.Render(VStack(sections...).ViewWithContext(inner))
}

// View renders the card.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// WithTitle sets the card title.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithFooter sets the card footer, rendered below a rule.
func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.footer = footer
	return c
}

// Title returns the card title.
func (c *Card) Title() string {
	return c.title
}

// AsContainer returns the underlying container.
func (c *Card) AsContainer() *Container {
	return c.Container
}
