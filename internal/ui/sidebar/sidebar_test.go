package sidebar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProviderTransitions(t *testing.T) {
	t.Parallel()

	p := NewProvider(true)
	require.True(t, p.Open())

	require.False(t, p.Toggle())
	require.False(t, p.Open())

	p.SetOpen(true)
	require.True(t, p.Open())
}

func TestStateTracksProvider(t *testing.T) {
	t.Parallel()

	p := NewProvider(false)
	state := p.State()
	require.False(t, state.Open())

	p.Toggle()
	require.True(t, state.Open(), "state is a live view of the provider")

	_, isProvider := state.(*Provider)
	require.False(t, isProvider, "state must not expose the mutable provider")
}

func TestOnChangeFiresOnlyOnChange(t *testing.T) {
	t.Parallel()

	p := NewProvider(false)
	var seen []bool
	p.OnChange(func(open bool) { seen = append(seen, open) })

	p.SetOpen(false)
	p.SetOpen(true)
	p.Toggle()

	require.Equal(t, []bool{true, false}, seen)
}

func TestNilProvider(t *testing.T) {
	t.Parallel()

	var p *Provider
	require.Nil(t, p.State())
	require.False(t, p.Open())
	require.False(t, p.Toggle())
	p.SetOpen(true)
	p.OnChange(func(bool) {})
}
