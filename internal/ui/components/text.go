package components

import (
	"github.com/alexisbeaulieu97/vitrine/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Text renders a run of styled text. It carries pass-through attributes so
// a piece of text can be tagged and located in a tree.
type Text struct {
	BaseComponent
	content string
	attrs   ui.Attrs
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with its styling.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given theme context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	style := applyClasses(t.ComputeStyle(ctx.Theme), ctx.Theme, t.attrs)
	return style.Render(t.content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// SetContent updates the text content.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithAttrs merges attrs into the text's attributes.
func (t *Text) WithAttrs(attrs ui.Attrs) *Text {
	t.attrs = ui.MergeAttrs(t.attrs, attrs)
	return t
}

// Attrs returns the text's pass-through attributes.
func (t *Text) Attrs() ui.Attrs {
	return t.attrs
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// WithStrategy sets a custom styling strategy.
func (t *Text) WithStrategy(strategy StyleStrategy) *Text {
	t.SetStrategy(strategy)
	return t
}

// EmphasisText creates bold body text.
func EmphasisText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantEmphasis))
}

// CodeText creates code-styled text.
func CodeText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantCode))
}

// TitleText creates title text.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantTitle))
}

// SubtitleText creates subtitle text.
func SubtitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantSubtitle))
}

// MutedText creates de-emphasised text.
func MutedText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantMuted))
}
