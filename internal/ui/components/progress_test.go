package components

import (
	"math"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressRatio(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		props   ProgressProps
		ratio   float64
		percent int
	}{
		{name: "partial", props: ProgressProps{Value: 40, Max: 100}, ratio: 0.4, percent: 40},
		{name: "full", props: ProgressProps{Value: 100, Max: 100}, ratio: 1, percent: 100},
		{name: "above max clamps", props: ProgressProps{Value: 150, Max: 100}, ratio: 1, percent: 100},
		{name: "negative clamps", props: ProgressProps{Value: -5, Max: 100}, ratio: 0, percent: 0},
		{name: "zero max", props: ProgressProps{Value: 5, Max: 0}, ratio: 0, percent: 0},
		{name: "negative max", props: ProgressProps{Value: 5, Max: -1}, ratio: 0, percent: 0},
		{name: "nan value", props: ProgressProps{Value: math.NaN(), Max: 10}, ratio: 0, percent: 0},
		{name: "rounds", props: ProgressProps{Value: 1, Max: 3}, ratio: 1.0 / 3, percent: 33},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tc.ratio, tc.props.Ratio(), 1e-9)
			assert.Equal(t, tc.percent, tc.props.Percent())
		})
	}
}

func TestProgressBarView(t *testing.T) {
	t.Parallel()

	t.Run("renders the percentage label", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(NewProgressBar(ProgressProps{Value: 40, Max: 100}).View())
		require.Contains(t, out, "40%")
	})

	t.Run("explicit width sets the bar", func(t *testing.T) {
		t.Parallel()
		out := NewProgressBar(ProgressProps{Value: 1, Max: 2}).WithWidth(10).View()
		// bar, one space, four-cell label
		assert.Equal(t, 15, ansi.StringWidth(ansi.Strip(out)))
	})

	t.Run("fills the available width", func(t *testing.T) {
		t.Parallel()
		ctx := DefaultContext().WithParentWidth(50)
		out := NewProgressBar(ProgressProps{Value: 1, Max: 2}).ViewWithContext(ctx)
		assert.Equal(t, 50, ansi.StringWidth(ansi.Strip(out)))
	})

	t.Run("zero max renders zero percent", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(NewProgressBar(ProgressProps{Value: 3, Max: 0}).View())
		assert.Contains(t, out, "0%")
	})
}
