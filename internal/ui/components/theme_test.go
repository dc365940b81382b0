package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveColour(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()

	t.Run("slot names resolve through the palette", func(t *testing.T) {
		t.Parallel()
		cs, ok := ResolveColour(theme, "Danger")
		require.True(t, ok)
		assert.Equal(t, theme.Palette.Danger, cs)
	})

	t.Run("literals become the base colour", func(t *testing.T) {
		t.Parallel()
		cs, ok := ResolveColour(theme, "#ff8800")
		require.False(t, ok)
		assert.Equal(t, lipgloss.AdaptiveColor{Light: "#ff8800", Dark: "#ff8800"}, cs.Base)
		assert.Equal(t, theme.Palette.Surface.OnBase, cs.OnBase)
	})

	t.Run("empty falls back to neutral", func(t *testing.T) {
		t.Parallel()
		cs, ok := ResolveColour(theme, "  ")
		require.False(t, ok)
		assert.Equal(t, theme.Palette.Neutral, cs)
	})
}

func TestClassRegistryResolvesInOrder(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	registry := NewClassRegistry()
	registry.Register("red", func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Foreground(lipgloss.Color("1")) })
	registry.Register("blue", func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Foreground(lipgloss.Color("4")) })

	style := registry.Resolve([]string{"red", "unknown", "blue"})(lipgloss.NewStyle(), theme)
	assert.Equal(t, lipgloss.Color("4"), style.GetForeground())

	style = registry.Resolve([]string{"blue", "red"})(lipgloss.NewStyle(), theme)
	assert.Equal(t, lipgloss.Color("1"), style.GetForeground())

	assert.True(t, registry.Has("red"))
	assert.False(t, registry.Has("unknown"))
}

func TestNilClassRegistryIsInert(t *testing.T) {
	t.Parallel()

	var registry *ClassRegistry
	base := lipgloss.NewStyle().Bold(true)
	got := registry.Resolve([]string{"faint"})(base, Theme{})
	assert.True(t, got.GetBold())
	assert.False(t, got.GetFaint())
}

func TestDefaultClasses(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	for _, class := range []string{"topbar", "page-header", "bold", "faint", "primary", "bg-danger"} {
		assert.True(t, theme.Classes.Has(class), class)
	}
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want string
		ok   bool
	}{
		{name: "", want: "light", ok: true},
		{name: "light", want: "light", ok: true},
		{name: " Dark ", want: "dark", ok: true},
		{name: "solarized", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			theme, ok := ThemeByName(tc.name)
			require.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, theme.Name)
		})
	}
}

func TestNormalizeFillsDefaults(t *testing.T) {
	t.Parallel()

	theme := Theme{Palette: DefaultTheme().Palette}.Normalize()

	assert.Equal(t, theme.Palette.Neutral.Muted, theme.Borders.Color)
	assert.NotNil(t, theme.Variants)
	assert.NotNil(t, theme.Classes)
	assert.Equal(t, 2, PaddingValue(theme, SpacingSizeMedium))
	assert.Equal(t, 0, MarginValue(theme, SpacingSizeNone))
}

func TestSpacingLookupOutOfRangeUsesMedium(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	assert.Equal(t, PaddingValue(theme, SpacingSizeMedium), PaddingValue(theme, SpacingSize(99)))
}

func TestSpacingAppliers(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	base := lipgloss.NewStyle()

	all := Padding(SpacingSizeMedium)(base, theme)
	assert.Equal(t, 2, all.GetPaddingTop())
	assert.Equal(t, 2, all.GetPaddingLeft())

	x := PaddingX(SpacingSizeLarge)(base, theme)
	assert.Equal(t, 3, x.GetPaddingRight())
	assert.Equal(t, 0, x.GetPaddingTop())

	y := PaddingY(SpacingSizeSmall)(base, theme)
	assert.Equal(t, 1, y.GetPaddingBottom())
	assert.Equal(t, 0, y.GetPaddingLeft())

	assert.Equal(t, 4, Margin(SpacingSizeExtraLarge)(base, theme).GetMarginLeft())
	my := MarginY(SpacingSizeMedium)(base, theme)
	assert.Equal(t, 2, my.GetMarginTop())
	assert.Equal(t, 0, my.GetMarginRight())
}
