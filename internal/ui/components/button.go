package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Button renders a pressable label. Pressing is handled by the owning
// model; the button only shows whether it is focused or disabled.
type Button struct {
	BaseComponent
	label    string
	variant  ButtonVariant
	disabled bool
	focused  bool
}

// NewButton creates a primary button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.label)
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme)

	// Disabled buttons lose their variant colour.
	variant := b.variant
	if b.disabled {
		variant = ButtonVariantMuted
	}
	if strategy := theme.Variants.Get(variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}

	if b.disabled {
		style = style.Faint(true)
	}
	if b.focused && !b.disabled {
		style = style.Bold(true).Underline(true)
	}
	return style
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithFocused marks the button as the one the keyboard acts on.
func (b *Button) WithFocused(focused bool) *Button {
	b.focused = focused
	return b
}

// WithStyle sets the button style.
func (b *Button) WithStyle(style lipgloss.Style) *Button {
	b.SetStyle(style)
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// IsDisabled reports whether the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}

// IsFocused reports whether the button is focused.
func (b *Button) IsFocused() bool {
	return b.focused
}

// PrimaryButton creates a primary button.
func PrimaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantPrimary)
}

// SecondaryButton creates a secondary button.
func SecondaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantSecondary)
}

// ErrorButton creates a danger button.
func ErrorButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantError)
}

// MutedButton creates a neutral button.
func MutedButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantMuted)
}
