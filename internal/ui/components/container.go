package components

import (
	"github.com/alexisbeaulieu97/vitrine/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Container is a box around a stack of children. It carries pass-through
// attributes, so a container can be located in a rendered tree by a data
// attribute and styled by class tokens.
type Container struct {
	BaseComponent
	layout      *Stack
	attrs       ui.Attrs
	border      lipgloss.Border
	borderColor string
	padding     Spacing
	margin      Spacing
}

// NewContainer creates a container laying children out vertically.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		layout:        VStack(children...),
	}
}

// View renders the container and its children.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the container with layout context.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	style, inner := c.frame(ctx)
	var content string
	if len(c.layout.Children()) > 0 {
		content = c.layout.ViewWithContext(inner)
	}
	return style.Render(content)
}

// frame resolves the container's own style and the context its content
// renders in, which sees only the width left inside the frame.
func (c *Container) frame(ctx RenderContext) (lipgloss.Style, RenderContext) {
	style := applyClasses(c.ComputeStyle(ctx.Theme), ctx.Theme, c.attrs)

	if c.border.Top != "" {
		style = style.BorderStyle(c.border)
		if c.borderColor != "" {
			cs, _ := ResolveColour(ctx.Theme, c.borderColor)
			style = style.BorderForeground(cs.Base)
		} else {
			style = style.BorderForeground(ctx.Theme.Borders.Color)
		}
	}
	if !c.padding.IsZero() {
		style = style.Padding(c.padding.Top, c.padding.Right, c.padding.Bottom, c.padding.Left)
	}
	if !c.margin.IsZero() {
		style = style.Margin(c.margin.Top, c.margin.Right, c.margin.Bottom, c.margin.Left)
	}

	frameW, frameH := style.GetHorizontalFrameSize(), style.GetVerticalFrameSize()
	limits := ctx.Constraints
	if limits.MaxWidth > 0 {
		limits.MaxWidth = max(0, limits.MaxWidth-frameW)
	}
	if limits.MinWidth > 0 {
		limits.MinWidth = max(0, limits.MinWidth-frameW)
	}
	if limits.MinHeight > 0 {
		limits.MinHeight = max(0, limits.MinHeight-frameH)
	}
	inner := ctx.WithConstraints(limits)
	if ctx.ParentWidth > 0 {
		inner.ParentWidth = max(0, ctx.ParentWidth-frameW)
	}
	return style, inner
}

// WithAttrs merges attrs into the container's attributes. Class lists are
// concatenated; other keys are replaced.
func (c *Container) WithAttrs(attrs ui.Attrs) *Container {
	c.attrs = ui.MergeAttrs(c.attrs, attrs)
	return c
}

// Attrs returns the container's pass-through attributes.
func (c *Container) Attrs() ui.Attrs {
	return c.attrs
}

// WithBorder sets the border style.
func (c *Container) WithBorder(border lipgloss.Border) *Container {
	c.border = border
	return c
}

// WithBorderColor sets the border colour by slot name or literal.
// Empty uses the theme's border colour.
func (c *Container) WithBorderColor(color string) *Container {
	c.borderColor = color
	return c
}

// WithPadding sets the padding.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithMargin sets the margin.
func (c *Container) WithMargin(margin Spacing) *Container {
	c.margin = margin
	return c
}

// WithStyle sets the container style.
func (c *Container) WithStyle(style lipgloss.Style) *Container {
	c.SetStyle(style)
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.AddAppliers(appliers...)
	return c
}

// WithDirection sets the layout direction.
func (c *Container) WithDirection(dir Direction) *Container {
	c.layout.WithDirection(dir)
	return c
}

// WithGap sets the gap between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// WithCrossAlign sets the cross-axis alignment.
func (c *Container) WithCrossAlign(align CrossAxisAlignment) *Container {
	c.layout.WithCrossAlign(align)
	return c
}

// Add appends children to the container.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.layout.Add(children...)
	return c
}

// Children returns the child renderables.
func (c *Container) Children() []ui.Renderable {
	return c.layout.Children()
}

// Layout returns the internal stack layout.
func (c *Container) Layout() *Stack {
	return c.layout
}

// SetChildren replaces all children in the container.
func (c *Container) SetChildren(children []ui.Renderable) *Container {
	c.layout.SetChildren(children)
	return c
}
