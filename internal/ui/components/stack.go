package components

import (
	"strings"

	"github.com/alexisbeaulieu97/vitrine/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children along one axis.
//
// Horizontal stacks distribute free space according to the main-axis
// alignment when the context carries a width; vertical stacks only align
// children on the cross axis.
type Stack struct {
	BaseComponent
	children    []ui.Renderable
	direction   Direction
	gap         int
	mainAlign   MainAxisAlignment
	crossAlign  CrossAxisAlignment
	constraints Constraints
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		mainAlign:     MainStart,
		crossAlign:    CrossStart,
		constraints:   Unconstrained(),
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with layout context.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	limits := s.mergeConstraints(ctx.Constraints)
	childCtx := ctx.WithConstraints(s.childConstraints(limits))

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := renderChild(child, childCtx); view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx.Theme)
	if len(views) == 0 {
		return style.Render("")
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = s.joinHorizontal(views, limits.MaxWidth-style.GetHorizontalFrameSize())
	} else {
		content = s.joinVertical(views)
	}

	content = fillMinimum(content, limits, style)
	if limits.MaxWidth > 0 {
		style = style.MaxWidth(limits.MaxWidth)
	}
	if limits.MaxHeight > 0 {
		style = style.MaxHeight(limits.MaxHeight)
	}
	return style.Render(content)
}

// fillMinimum pads content so that, once framed by style, it reaches the
// minimum size in limits. Larger content is left to the maximums.
func fillMinimum(content string, limits Constraints, style lipgloss.Style) string {
	if limits.MinWidth <= 0 && limits.MinHeight <= 0 {
		return content
	}
	frameW, frameH := style.GetHorizontalFrameSize(), style.GetVerticalFrameSize()
	width, height := limits.Constrain(lipgloss.Width(content)+frameW, lipgloss.Height(content)+frameH)
	return lipgloss.Place(max(0, width-frameW), max(0, height-frameH), lipgloss.Left, lipgloss.Top, content)
}

// mergeConstraints keeps the tighter of the stack's own and the parent's limits.
func (s *Stack) mergeConstraints(parent Constraints) Constraints {
	result := parent
	if s.constraints.MaxWidth > 0 && (result.MaxWidth <= 0 || s.constraints.MaxWidth < result.MaxWidth) {
		result.MaxWidth = s.constraints.MaxWidth
	}
	if s.constraints.MaxHeight > 0 && (result.MaxHeight <= 0 || s.constraints.MaxHeight < result.MaxHeight) {
		result.MaxHeight = s.constraints.MaxHeight
	}
	if s.constraints.MinWidth > result.MinWidth {
		result.MinWidth = s.constraints.MinWidth
	}
	if s.constraints.MinHeight > result.MinHeight {
		result.MinHeight = s.constraints.MinHeight
	}
	return result
}

// childConstraints lifts minimums so children size to their content.
// Horizontal children share the width left over after gaps.
func (s *Stack) childConstraints(limits Constraints) Constraints {
	child := limits
	child.MinWidth = 0
	child.MinHeight = 0
	if s.direction == DirectionHorizontal {
		// Children of a row are laid out by the row itself.
		child.MaxWidth = -1
	}
	return child
}

func (s *Stack) joinVertical(views []string) string {
	pos := s.crossAlign.toLipglossPosition()
	if s.gap <= 0 {
		return lipgloss.JoinVertical(pos, views...)
	}
	spacer := strings.Repeat("\n", s.gap-1)
	joined := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			joined = append(joined, spacer)
		}
		joined = append(joined, view)
	}
	return lipgloss.JoinVertical(pos, joined...)
}

// joinHorizontal places views in a row. When width is positive the free
// space left after gaps is spread according to the main-axis alignment.
func (s *Stack) joinHorizontal(views []string, width int) string {
	gaps := mainAxisGaps(s.mainAlign, views, s.gap, width)
	row := make([]string, 0, len(views)*2+1)
	for i, view := range views {
		if gaps[i] > 0 {
			row = append(row, strings.Repeat(" ", gaps[i]))
		}
		row = append(row, view)
	}
	if tail := gaps[len(views)]; tail > 0 {
		row = append(row, strings.Repeat(" ", tail))
	}
	return lipgloss.JoinHorizontal(s.crossAlign.toLipglossPosition(), row...)
}

// mainAxisGaps returns len(views)+1 gap widths: before each view and after
// the last.
func mainAxisGaps(align MainAxisAlignment, views []string, gap, width int) []int {
	n := len(views)
	gaps := make([]int, n+1)
	for i := 1; i < n; i++ {
		gaps[i] = gap
	}
	if width <= 0 {
		return gaps
	}

	used := gap * (n - 1)
	for _, view := range views {
		used += lipgloss.Width(view)
	}
	free := width - used
	if free <= 0 {
		return gaps
	}

	switch align {
	case MainEnd:
		gaps[0] = free
	case MainCenter:
		gaps[0] = free / 2
		gaps[n] = free - free/2
	case MainSpaceBetween:
		if n == 1 {
			gaps[n] = free
			break
		}
		spreadGaps(gaps[1:n], free)
	case MainSpaceAround:
		// Edges get half the share of an inner gap.
		share := free / (2 * n)
		gaps[0], gaps[n] = share, share
		spreadGaps(gaps[1:n], free-2*share)
	case MainSpaceEvenly:
		spreadGaps(gaps, free)
	default:
		gaps[n] = free
	}
	return gaps
}

// spreadGaps adds free to slots as evenly as possible, leftmost first.
func spreadGaps(slots []int, free int) {
	if len(slots) == 0 {
		return
	}
	share, rest := free/len(slots), free%len(slots)
	for i := range slots {
		slots[i] += share
		if i < rest {
			slots[i]++
		}
	}
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children: blank rows for vertical
// stacks, columns for horizontal ones.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithMainAlign sets the main axis alignment.
func (s *Stack) WithMainAlign(align MainAxisAlignment) *Stack {
	s.mainAlign = align
	return s
}

// WithCrossAlign sets the cross axis alignment.
func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.crossAlign = align
	return s
}

// WithStyle sets the stack style.
func (s *Stack) WithStyle(style lipgloss.Style) *Stack {
	s.SetStyle(style)
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// WithConstraints sets sizing constraints.
func (s *Stack) WithConstraints(constraints Constraints) *Stack {
	s.constraints = constraints
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}

// SetChildren replaces all children in the stack.
func (s *Stack) SetChildren(children []ui.Renderable) *Stack {
	s.children = children
	return s
}

func (c CrossAxisAlignment) toLipglossPosition() lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
