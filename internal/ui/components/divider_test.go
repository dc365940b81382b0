package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDividerDefaults(t *testing.T) {
	t.Parallel()

	lines := strings.Split(NewDivider(DividerProps{}).WithWidth(10).View(), "\n")

	require.Len(t, lines, 5)
	assert.Equal(t, []string{"", ""}, lines[:2])
	assert.Equal(t, strings.Repeat("─", 10), ansi.Strip(lines[2]))
	assert.Equal(t, []string{"", ""}, lines[3:])
}

func TestDividerMargins(t *testing.T) {
	t.Parallel()

	cases := []struct {
		margin DividerMargin
		rows   int
	}{
		{DividerMarginNone, 0},
		{DividerMarginSmall, 1},
		{DividerMarginMedium, 2},
		{DividerMarginLarge, 3},
		{"", 2},
		{"xl", 2},
	}

	for _, tc := range cases {
		t.Run(string(tc.margin), func(t *testing.T) {
			t.Parallel()
			props := DividerProps{Margin: tc.margin}
			assert.Equal(t, tc.rows, props.MarginRows())

			lines := strings.Split(NewDivider(props).WithWidth(4).View(), "\n")
			assert.Len(t, lines, 2*tc.rows+1)
		})
	}
}

func TestDividerThickness(t *testing.T) {
	t.Parallel()

	out := NewDivider(DividerProps{Margin: DividerMarginNone, Thickness: 3}).WithWidth(5).View()
	lines := strings.Split(ansi.Strip(out), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, "─────", line)
	}
}

func TestDividerRuleIsAlwaysFaint(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()

	plain := NewDivider(DividerProps{})
	assert.True(t, plain.ruleStyle(theme).GetFaint())
	assert.Equal(t, theme.Borders.Color, plain.ruleStyle(theme).GetForeground())

	coloured := NewDivider(DividerProps{Color: "danger"})
	assert.True(t, coloured.ruleStyle(theme).GetFaint())
	assert.Equal(t, theme.Palette.Danger.Base, coloured.ruleStyle(theme).GetForeground())
}

func TestDividerWidthResolution(t *testing.T) {
	t.Parallel()

	width := func(d *Divider, ctx RenderContext) int {
		lines := strings.Split(ansi.Strip(d.ViewWithContext(ctx)), "\n")
		return ansi.StringWidth(lines[0])
	}
	flat := DividerProps{Margin: DividerMarginNone}

	assert.Equal(t, 40, width(NewDivider(flat), DefaultContext()))
	assert.Equal(t, 12, width(NewDivider(flat), DefaultContext().WithParentWidth(12)))
	assert.Equal(t, 8, width(NewDivider(flat), DefaultContext().WithConstraints(WithMaxWidth(8)).WithParentWidth(12)))
	assert.Equal(t, 3, width(NewDivider(flat).WithWidth(3), DefaultContext().WithParentWidth(12)))
}

func TestDividerChar(t *testing.T) {
	t.Parallel()

	out := DottedDivider(DividerProps{Margin: DividerMarginNone}).WithWidth(3).View()
	assert.Equal(t, "···", ansi.Strip(out))
}
