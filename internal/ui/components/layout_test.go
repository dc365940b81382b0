package components

import (
	"strings"
	"testing"

	"github.com/alexisbeaulieu97/vitrine/internal/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainerAttrs(t *testing.T) {
	t.Parallel()

	c := NewContainer(NewText("x")).
		WithAttrs(ui.Attrs{ui.ClassKey: "bold", "id": "a"}).
		WithAttrs(ui.Attrs{ui.ClassKey: "faint", "id": "b"})

	assert.Equal(t, []string{"bold", "faint"}, c.Attrs().Classes())
	assert.Equal(t, "b", c.Attrs()["id"])

	style, _ := c.frame(DefaultContext())
	assert.True(t, style.GetBold())
	assert.True(t, style.GetFaint())
}

func TestContainerFrameNarrowsChildren(t *testing.T) {
	t.Parallel()

	c := NewContainer(HorizontalDivider().WithChar("=")).
		WithBorder(lipgloss.NormalBorder()).
		WithPadding(HorizontalSpacing(1))

	out := ansi.Strip(c.ViewWithContext(DefaultContext().WithConstraints(WithMaxWidth(20))))
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 20, ansi.StringWidth(line))
	}
	assert.Contains(t, out, strings.Repeat("=", 16))
}

func TestPanelFixedWidth(t *testing.T) {
	t.Parallel()

	out := NewPanel(NewText("x")).WithTitle("Nav").
		ViewWithContext(DefaultContext().WithConstraints(WithWidth(20)))
	for _, line := range strings.Split(ansi.Strip(out), "\n") {
		assert.Equal(t, 20, ansi.StringWidth(line))
	}
}

func TestCard(t *testing.T) {
	t.Parallel()

	card := NewCard(NewText("body")).WithTitle("Title").WithFooter(NewText("foot"))
	lines := plainLines(card.View())

	require.GreaterOrEqual(t, len(lines), 6)
	assert.True(t, strings.HasPrefix(lines[0], "╭"))
	assert.Contains(t, lines[1], "Title")
	assert.Contains(t, lines[2], "body")
	assert.Contains(t, lines[3], "─")
	assert.Contains(t, lines[4], "foot")
	assert.Equal(t, "Title", card.Title())
	assert.Len(t, card.Children(), 1)
}

func TestPanelHeaderIsReplaced(t *testing.T) {
	t.Parallel()

	panel := NewPanel(NewText("body")).WithTitle("One").WithTitle("Two")
	out := ansi.Strip(panel.View())

	assert.NotContains(t, out, "One")
	assert.Contains(t, out, "Two")
	assert.Equal(t, 1, strings.Count(out, "body"))
	assert.NotNil(t, panel.Header())
}

func TestAlertVariants(t *testing.T) {
	t.Parallel()

	cases := []struct {
		alert *Alert
		icon  string
	}{
		{SuccessAlert("done"), "✓"},
		{WarningAlert("careful"), "⚠"},
		{ErrorAlert("failed"), "✗"},
		{InfoAlert("note"), "ℹ"},
	}

	for _, tc := range cases {
		t.Run(tc.alert.Message(), func(t *testing.T) {
			t.Parallel()
			out := ansi.Strip(tc.alert.WithTitle("Heads up").View())
			assert.Contains(t, out, tc.icon+" "+tc.alert.Message())
			assert.Contains(t, out, "Heads up")
		})
	}
}

func TestButtonStates(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()

	disabled := PrimaryButton("go").WithDisabled(true).WithFocused(true).computeStyle(theme)
	assert.True(t, disabled.GetFaint())
	assert.False(t, disabled.GetUnderline())
	assert.Equal(t, theme.Palette.Neutral.Base, disabled.GetBackground())

	focused := PrimaryButton("go").WithFocused(true).computeStyle(theme)
	assert.True(t, focused.GetUnderline())
	assert.Equal(t, theme.Palette.Primary.Base, focused.GetBackground())

	assert.Equal(t, " go ", ansi.Strip(PrimaryButton("go").View()))
}

func TestSpacer(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "   ", HorizontalSpacer(3).View())
	assert.Equal(t, "\n", VerticalSpacer(2).View())
	assert.Empty(t, NewSpacer(0, 0).View())
	assert.Empty(t, HorizontalSpacer(Fill).View())
	assert.Equal(t, "     ", HorizontalSpacer(Fill).ViewWithContext(DefaultContext().WithParentWidth(5)))
}

func TestTextClasses(t *testing.T) {
	t.Parallel()

	text := NewText("hi").WithAttrs(ui.Attrs{ui.ClassKey: "italic", "data-role": "note"})
	assert.Equal(t, "hi", ansi.Strip(text.View()))
	assert.Len(t, ui.FindByAttrValue(NewContainer(text), "data-role", "note"), 1)
}
