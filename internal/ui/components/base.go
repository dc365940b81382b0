package components

import (
	"github.com/alexisbeaulieu97/vitrine/internal/ui"
	"github.com/alexisbeaulieu97/vitrine/internal/ui/sidebar"
	"github.com/charmbracelet/lipgloss"
)

// BaseComponent holds the raw style and the strategy that themes it.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy defines how styling is applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc transforms a lipgloss.Style using data from a Theme.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the style for this component under theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetStrategy replaces the style strategy.
func (b *BaseComponent) SetStrategy(strategy StyleStrategy) {
	b.strategy = strategy
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends appliers after the existing strategy. A custom
// strategy is wrapped so it still runs first.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		newFuncs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(newFuncs, existing.funcs)
		newFuncs = append(newFuncs, appliers...)
		b.strategy = CompositeStrategy{funcs: newFuncs}
	} else {
		currentStrategy := b.strategy
		wrapper := func(base lipgloss.Style, theme Theme) lipgloss.Style {
			if currentStrategy != nil {
				base = currentStrategy.Apply(base, theme)
			}
			for _, applier := range appliers {
				base = applier(base, theme)
			}
			return base
		}
		b.strategy = NewCompositeStrategy(wrapper)
	}
}

// Spacing represents spacing (padding or margin) around a component.
// Uses CSS box model ordering: Top, Right, Bottom, Left (clockwise from top).
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// HorizontalSpacing creates spacing on left and right sides only.
func HorizontalSpacing(size int) Spacing {
	return Spacing{Top: 0, Right: size, Bottom: 0, Left: size}
}

// SymmetricSpacing creates spacing with different horizontal and vertical values.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// IsZero returns true if all spacing values are zero.
func (s Spacing) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}

// Horizontal returns the total horizontal spacing (left + right).
func (s Spacing) Horizontal() int {
	return s.Left + s.Right
}

// Vertical returns the total vertical spacing (top + bottom).
func (s Spacing) Vertical() int {
	return s.Top + s.Bottom
}

// Constraints defines sizing constraints for layout calculations.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{
		MinWidth:  0,
		MaxWidth:  -1, // -1 means unlimited
		MinHeight: 0,
		MaxHeight: -1,
	}
}

// WithWidth creates constraints with a fixed width.
func WithWidth(width int) Constraints {
	return Constraints{
		MinWidth:  width,
		MaxWidth:  width,
		MinHeight: 0,
		MaxHeight: -1,
	}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{
		MinWidth:  0,
		MaxWidth:  maxWidth,
		MinHeight: 0,
		MaxHeight: -1,
	}
}

// Constrain applies the constraints to a given size. Maximums of zero or
// less do not limit.
func (c Constraints) Constrain(width, height int) (int, int) {
	w := width
	h := height

	if c.MinWidth > 0 && w < c.MinWidth {
		w = c.MinWidth
	}
	if c.MaxWidth > 0 && w > c.MaxWidth {
		w = c.MaxWidth
	}
	if c.MinHeight > 0 && h < c.MinHeight {
		h = c.MinHeight
	}
	if c.MaxHeight > 0 && h > c.MaxHeight {
		h = c.MaxHeight
	}

	return w, h
}

// HasWidth returns true if there's a width constraint.
func (c Constraints) HasWidth() bool {
	return c.MinWidth > 0 || c.MaxWidth >= 0
}

// RenderContext carries the theme, layout limits and ambient UI state into
// every ViewWithContext call. Sidebar is nil when no provider is mounted.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
	ParentWidth int
	Sidebar     sidebar.State
}

// DefaultContext returns a render context with the default theme and no constraints.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
	}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// WithParentWidth returns a new context with the given parent width.
func (r RenderContext) WithParentWidth(width int) RenderContext {
	r.ParentWidth = width
	return r
}

// WithSidebar returns a new context exposing state to descendants.
func (r RenderContext) WithSidebar(state sidebar.State) RenderContext {
	r.Sidebar = state
	return r
}

// AvailableWidth returns the width a full-row component should fill:
// the maximum width constraint, then the parent width, then fallback.
func (r RenderContext) AvailableWidth(fallback int) int {
	if r.Constraints.MaxWidth > 0 {
		return r.Constraints.MaxWidth
	}
	if r.ParentWidth > 0 {
		return r.ParentWidth
	}
	return fallback
}

// ContextualRenderable is a component that can receive layout context.
// This is an advanced interface; most components only need Renderable.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// MainAxisAlignment specifies how children are aligned along the main axis.
type MainAxisAlignment int

const (
	MainStart MainAxisAlignment = iota
	MainCenter
	MainEnd
	MainSpaceBetween
	MainSpaceAround
	MainSpaceEvenly
)

// CrossAxisAlignment specifies how children are aligned along the cross axis.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
	CrossStretch
)

// renderChild renders child with ctx when it accepts a context.
func renderChild(child ui.Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}

// applyClasses resolves the class list in attrs through the theme registry.
func applyClasses(style lipgloss.Style, theme Theme, attrs ui.Attrs) lipgloss.Style {
	classes := attrs.Classes()
	if len(classes) == 0 {
		return style
	}
	return theme.Classes.Resolve(classes)(style, theme)
}

// rendered wraps an already rendered string as a leaf.
type rendered string

func (r rendered) View() string { return string(r) }
