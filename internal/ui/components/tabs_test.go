package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTabs() []TabItem {
	return []TabItem{
		{ID: "overview", Label: "Overview", Content: NewText("overview body")},
		{ID: "usage", Label: "Usage", Content: NewText("usage body")},
		{ID: "api", Label: "API", Content: NewText("api body")},
	}
}

func TestTabsMarksExactlyOneActive(t *testing.T) {
	t.Parallel()

	cases := []struct {
		active string
		want   string
		body   string
	}{
		{active: "overview", want: "Overview", body: "overview body"},
		{active: "usage", want: "Usage", body: "usage body"},
		{active: "api", want: "API", body: "api body"},
		{active: "missing", want: "Overview", body: "overview body"},
	}

	for _, tc := range cases {
		t.Run(tc.active, func(t *testing.T) {
			t.Parallel()
			out := ansi.Strip(NewTabs(TabsProps{Tabs: sampleTabs(), ActiveTab: tc.active}).View())

			assert.Equal(t, 1, strings.Count(out, TabMarkerActive))
			assert.Equal(t, 2, strings.Count(out, TabMarkerInactive))
			assert.Contains(t, out, TabMarkerActive+" "+tc.want)
			assert.Contains(t, out, tc.body)
			for _, tab := range sampleTabs() {
				if tab.Label != tc.want {
					assert.NotContains(t, out, tab.ID+" body")
				}
			}
		})
	}
}

func TestTabsSelect(t *testing.T) {
	t.Parallel()

	var calls []string
	tabs := NewTabs(TabsProps{
		Tabs:        sampleTabs(),
		ActiveTab:   "overview",
		OnTabChange: func(id string) { calls = append(calls, id) },
	})

	require.True(t, tabs.Select("api"))
	require.False(t, tabs.Select("nope"))
	assert.Equal(t, []string{"api"}, calls)
	assert.Equal(t, "overview", tabs.ActiveID())
}

func TestTabsNavigation(t *testing.T) {
	t.Parallel()

	tabs := NewTabs(TabsProps{Tabs: sampleTabs(), ActiveTab: "overview"})

	assert.Equal(t, "usage", tabs.Neighbor(1))
	assert.Equal(t, "api", tabs.Neighbor(-1))
	assert.Equal(t, "overview", tabs.Neighbor(3))

	id, ok := tabs.IDAt(2)
	assert.True(t, ok)
	assert.Equal(t, "api", id)

	_, ok = tabs.IDAt(3)
	assert.False(t, ok)
}

func TestTabsEmpty(t *testing.T) {
	t.Parallel()

	tabs := NewTabs(TabsProps{})
	assert.Equal(t, -1, tabs.ActiveIndex())
	assert.Equal(t, "", tabs.ActiveID())
	assert.Equal(t, "", tabs.Neighbor(1))
	assert.Empty(t, tabs.View())
}
