package components

import (
	"github.com/alexisbeaulieu97/vitrine/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

var alertIcons = map[AlertVariant]string{
	AlertVariantSuccess: "✓",
	AlertVariantWarning: "⚠",
	AlertVariantError:   "✗",
	AlertVariantInfo:    "ℹ",
}

// Alert is a bordered notice with an icon, an optional title and a message.
type Alert struct {
	BaseComponent
	message string
	icon    string
	variant AlertVariant
	title   string
}

// NewAlert creates an info alert with the given message.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
		variant:       AlertVariantInfo,
		icon:          alertIcons[AlertVariantInfo],
	}
}

// View renders the alert.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert with the provided render context.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	children := make([]ui.Renderable, 0, 2)
	if a.title != "" {
		children = append(children, EmphasisText(a.title))
	}
	children = append(children, NewText(a.icon+" "+a.message))

	box := NewContainer(children...).
		WithPadding(HorizontalSpacing(1)).
		WithBorder(lipgloss.NormalBorder()).
		WithStyle(a.style)

	variant := a.variant
	box.WithAppliers(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if strategy := theme.Variants.Get(variant); strategy != nil {
			base = strategy.Apply(base, theme)
		}
		return base
	})
	// The frame picks the border colour after appliers run, so the
	// variant colour is passed by name.
	box.WithBorderColor(alertColourName(variant))
	if a.strategy != nil {
		box.WithAppliers(a.strategy.Apply)
	}

	return box.ViewWithContext(ctx)
}

func alertColourName(variant AlertVariant) string {
	switch variant {
	case AlertVariantSuccess:
		return "success"
	case AlertVariantWarning:
		return "warning"
	case AlertVariantError:
		return "danger"
	default:
		return "info"
	}
}

// WithVariant sets the alert variant and its default icon.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	if icon, ok := alertIcons[variant]; ok {
		a.icon = icon
	}
	return a
}

// WithIcon sets a custom icon.
func (a *Alert) WithIcon(icon string) *Alert {
	a.icon = icon
	return a
}

// WithTitle adds a title to the alert.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithStyle sets the alert style.
func (a *Alert) WithStyle(style lipgloss.Style) *Alert {
	a.SetStyle(style)
	return a
}

// WithAppliers applies theme-based style modifiers.
func (a *Alert) WithAppliers(appliers ...StyleFunc) *Alert {
	a.AddAppliers(appliers...)
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}

// Variant returns the alert variant.
func (a *Alert) Variant() AlertVariant {
	return a.variant
}

// SetMessage updates the alert message.
func (a *Alert) SetMessage(message string) *Alert {
	a.message = message
	return a
}

// SuccessAlert creates a success alert.
func SuccessAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantSuccess)
}

// WarningAlert creates a warning alert.
func WarningAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantWarning)
}

// ErrorAlert creates an error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantError)
}

// InfoAlert creates an info alert.
func InfoAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantInfo)
}
