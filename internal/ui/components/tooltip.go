package components

import (
	"github.com/alexisbeaulieu97/vitrine/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// TooltipProps configures a Tooltip.
type TooltipProps struct {
	Text    string
	Visible bool
}

// Tooltip renders its anchor and, while visible, a small tip beneath it.
type Tooltip struct {
	BaseComponent
	props  TooltipProps
	anchor ui.Renderable
}

// NewTooltip creates a tooltip for anchor.
func NewTooltip(props TooltipProps, anchor ui.Renderable) *Tooltip {
	return &Tooltip{
		BaseComponent: NewBaseComponent(),
		props:         props,
		anchor:        anchor,
	}
}

// View renders the tooltip.
func (t *Tooltip) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the anchor and the tip when visible.
func (t *Tooltip) ViewWithContext(ctx RenderContext) string {
	anchor := renderChild(t.anchor, ctx)
	if !t.props.Visible || t.props.Text == "" {
		return anchor
	}

	tip := t.tipStyle(ctx.Theme).Render(t.props.Text)
	pointer := lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Neutral.Base).Render("▲")
	indent := max(0, min(lipgloss.Width(anchor), lipgloss.Width(tip))/2)

	return lipgloss.JoinVertical(lipgloss.Left,
		anchor,
		HorizontalSpacer(indent).View()+pointer,
		tip,
	)
}

func (t *Tooltip) tipStyle(theme Theme) lipgloss.Style {
	style := Background(PaletteNeutral)(t.ComputeStyle(theme), theme)
	return style.Padding(0, PaddingValue(theme, SpacingSizeExtraSmall))
}

// Children returns the anchor.
func (t *Tooltip) Children() []ui.Renderable {
	if t.anchor == nil {
		return nil
	}
	return []ui.Renderable{t.anchor}
}

// Props returns the tooltip configuration.
func (t *Tooltip) Props() TooltipProps {
	return t.props
}
