package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DividerMargin names the blank space left above and below a divider.
type DividerMargin string

const (
	DividerMarginNone   DividerMargin = "none"
	DividerMarginSmall  DividerMargin = "sm"
	DividerMarginMedium DividerMargin = "md"
	DividerMarginLarge  DividerMargin = "lg"
)

// dividerMarginRows is the number of blank rows on each side per margin level.
var dividerMarginRows = map[DividerMargin]int{
	DividerMarginNone:   0,
	DividerMarginSmall:  1,
	DividerMarginMedium: 2,
	DividerMarginLarge:  3,
}

const defaultDividerWidth = 40

// DividerProps configures a Divider. Every field is optional.
type DividerProps struct {
	// Margin defaults to DividerMarginMedium. Unknown values fall back to it.
	Margin DividerMargin
	// Color defaults to the theme's border colour.
	Color string
	// Thickness is the number of rule rows, default 1.
	Thickness int
}

func (p DividerProps) resolved() DividerProps {
	if _, ok := dividerMarginRows[p.Margin]; !ok {
		p.Margin = DividerMarginMedium
	}
	if p.Thickness < 1 {
		p.Thickness = 1
	}
	return p
}

// MarginRows returns the blank rows above and below for the resolved margin.
func (p DividerProps) MarginRows() int {
	return dividerMarginRows[p.resolved().Margin]
}

// Divider renders a faint horizontal rule.
type Divider struct {
	BaseComponent
	props DividerProps
	char  string
	width int
}

// NewDivider creates a divider from props.
func NewDivider(props DividerProps) *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		props:         props,
		char:          "─",
	}
}

// HorizontalDivider creates a divider with default props.
func HorizontalDivider() *Divider {
	return NewDivider(DividerProps{})
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider with layout context.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	props := d.props.resolved()

	width := d.width
	if width <= 0 && ctx.Constraints.HasWidth() {
		if ctx.Constraints.MaxWidth >= 0 {
			width = ctx.Constraints.MaxWidth
		} else if ctx.Constraints.MinWidth > 0 {
			width = ctx.Constraints.MinWidth
		}
	}
	if width <= 0 && ctx.ParentWidth > 0 {
		width = ctx.ParentWidth
	}
	if width <= 0 {
		width = defaultDividerWidth
	}

	style := d.ruleStyle(ctx.Theme)
	rule := style.Render(strings.Repeat(d.char, width))

	margin := dividerMarginRows[props.Margin]
	rows := make([]string, 0, 2*margin+props.Thickness)
	for i := 0; i < margin; i++ {
		rows = append(rows, "")
	}
	for i := 0; i < props.Thickness; i++ {
		rows = append(rows, rule)
	}
	for i := 0; i < margin; i++ {
		rows = append(rows, "")
	}

	return strings.Join(rows, "\n")
}

// ruleStyle colours the rule and fixes it faint; caller appliers cannot
// lift the faintness.
func (d *Divider) ruleStyle(theme Theme) lipgloss.Style {
	style := d.ComputeStyle(theme)
	if d.props.Color == "" {
		style = style.Foreground(theme.Borders.Color)
	} else {
		cs, _ := ResolveColour(theme, d.props.Color)
		style = style.Foreground(cs.Base)
	}
	return style.Faint(true)
}

// WithChar sets the character used for the rule.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets an explicit width for the divider.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithStyle sets the divider style.
func (d *Divider) WithStyle(style lipgloss.Style) *Divider {
	d.SetStyle(style)
	return d
}

// WithAppliers applies theme-based style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.SetAppliers(appliers...)
	return d
}

// Props returns the divider configuration as given.
func (d *Divider) Props() DividerProps {
	return d.props
}

// Width returns the explicit divider width, 0 when automatic.
func (d *Divider) Width() int {
	return d.width
}

// DashedDivider creates a dashed divider.
func DashedDivider(props DividerProps) *Divider {
	return NewDivider(props).WithChar("-")
}

// DottedDivider creates a dotted divider.
func DottedDivider(props DividerProps) *Divider {
	return NewDivider(props).WithChar("·")
}

// DoubleDivider creates a double-line divider.
func DoubleDivider(props DividerProps) *Divider {
	return NewDivider(props).WithChar("═")
}
