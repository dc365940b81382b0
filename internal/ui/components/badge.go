package components

import (
	"github.com/charmbracelet/lipgloss"
)

// BadgeProps configures a Badge. Both fields are required.
//
// Color is a palette slot name ("primary", "danger", ...) or a literal
// terminal colour such as "#ff8800" or "205".
type BadgeProps struct {
	Label string
	Color string
}

// Badge is a small coloured label.
type Badge struct {
	BaseComponent
	props BadgeProps
}

// NewBadge creates a badge from props.
func NewBadge(props BadgeProps) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		props:         props,
	}
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.props.Label)
}

func (b *Badge) computeStyle(theme Theme) lipgloss.Style {
	cs, _ := ResolveColour(theme, b.props.Color)
	style := b.style.Inherit(
		lipgloss.NewStyle().
			Background(cs.Base).
			Foreground(cs.OnBase).
			Bold(true),
	)
	// Inherit skips padding, so the default is set directly.
	if style.GetHorizontalPadding() == 0 {
		style = style.Padding(0, PaddingValue(theme, SpacingSizeExtraSmall))
	}
	if b.strategy != nil {
		style = b.strategy.Apply(style, theme)
	}
	return style
}

// WithColor replaces the badge colour.
func (b *Badge) WithColor(color string) *Badge {
	b.props.Color = color
	return b
}

// WithStyle sets the badge style. Properties set here win over the colour.
func (b *Badge) WithStyle(style lipgloss.Style) *Badge {
	b.SetStyle(style)
	return b
}

// WithAppliers applies theme-based style modifiers after the colour.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Props returns the badge configuration.
func (b *Badge) Props() BadgeProps {
	return b.props
}

// Text returns the badge label.
func (b *Badge) Text() string {
	return b.props.Label
}

// SetText updates the badge label.
func (b *Badge) SetText(text string) *Badge {
	b.props.Label = text
	return b
}

// PrimaryBadge creates a primary badge.
func PrimaryBadge(text string) *Badge {
	return NewBadge(BadgeProps{Label: text, Color: "primary"})
}

// SecondaryBadge creates a secondary badge.
func SecondaryBadge(text string) *Badge {
	return NewBadge(BadgeProps{Label: text, Color: "secondary"})
}

// SuccessBadge creates a success badge.
func SuccessBadge(text string) *Badge {
	return NewBadge(BadgeProps{Label: text, Color: "success"})
}

// WarningBadge creates a warning badge.
func WarningBadge(text string) *Badge {
	return NewBadge(BadgeProps{Label: text, Color: "warning"})
}

// ErrorBadge creates an error badge.
func ErrorBadge(text string) *Badge {
	return NewBadge(BadgeProps{Label: text, Color: "danger"})
}

// InfoBadge creates an info badge.
func InfoBadge(text string) *Badge {
	return NewBadge(BadgeProps{Label: text, Color: "info"})
}
