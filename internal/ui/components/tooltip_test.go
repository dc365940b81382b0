package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTooltip(t *testing.T) {
	t.Parallel()

	anchor := NewText("Hover me")

	t.Run("hidden renders only the anchor", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(NewTooltip(TooltipProps{Text: "Hi"}, anchor).View())
		assert.Equal(t, "Hover me", out)
	})

	t.Run("visible renders the tip beneath", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(NewTooltip(TooltipProps{Text: "Hi", Visible: true}, anchor).View())
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "Hover me", strings.TrimRight(lines[0], " "))
		assert.Contains(t, lines[1], "▲")
		assert.Equal(t, " Hi", strings.TrimRight(lines[2], " "))
	})

	t.Run("visible without text stays hidden", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(NewTooltip(TooltipProps{Visible: true}, anchor).View())
		assert.Equal(t, "Hover me", out)
	})

	t.Run("anchor is a child", func(t *testing.T) {
		t.Parallel()
		assert.Len(t, NewTooltip(TooltipProps{}, anchor).Children(), 1)
		assert.Empty(t, NewTooltip(TooltipProps{}, nil).Children())
	})
}
