package components

import (
	"strings"
)

// Fill is the spacer width that takes whatever width the context offers.
const Fill = -1

// Spacer renders blank space.
type Spacer struct {
	width  int
	height int
}

// NewSpacer creates a spacer with the given dimensions. A width of Fill
// stretches to the available width.
func NewSpacer(width, height int) *Spacer {
	return &Spacer{width: width, height: height}
}

// HorizontalSpacer creates a one-row spacer.
func HorizontalSpacer(width int) *Spacer {
	return NewSpacer(width, 1)
}

// VerticalSpacer creates a zero-width spacer of height rows.
func VerticalSpacer(height int) *Spacer {
	return NewSpacer(0, height)
}

// View renders the spacer; Fill collapses to zero width.
func (s *Spacer) View() string {
	return s.render(max(s.width, 0))
}

// ViewWithContext renders the spacer, resolving Fill from ctx.
func (s *Spacer) ViewWithContext(ctx RenderContext) string {
	width := s.width
	if width == Fill {
		width = ctx.AvailableWidth(0)
	}
	return s.render(max(width, 0))
}

func (s *Spacer) render(width int) string {
	height := max(s.height, 0)
	if width == 0 && height == 0 {
		return ""
	}
	if height <= 1 {
		return strings.Repeat(" ", width)
	}
	rows := make([]string, height)
	for i := range rows {
		rows[i] = strings.Repeat(" ", width)
	}
	return strings.Join(rows, "\n")
}

// Width returns the spacer width.
func (s *Spacer) Width() int {
	return s.width
}

// Height returns the spacer height.
func (s *Spacer) Height() int {
	return s.height
}

// WithWidth sets the spacer width.
func (s *Spacer) WithWidth(width int) *Spacer {
	s.width = width
	return s
}

// WithHeight sets the spacer height.
func (s *Spacer) WithHeight(height int) *Spacer {
	s.height = height
	return s
}
