package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestMainAxisGaps(t *testing.T) {
	t.Parallel()

	views := []string{"ab", "cd"}

	cases := []struct {
		name  string
		align MainAxisAlignment
		width int
		want  []int
	}{
		{name: "no width keeps the gap only", align: MainSpaceBetween, width: 0, want: []int{0, 1, 0}},
		{name: "start puts free space last", align: MainStart, width: 10, want: []int{0, 1, 5}},
		{name: "end puts free space first", align: MainEnd, width: 10, want: []int{5, 1, 0}},
		{name: "center splits the edges", align: MainCenter, width: 10, want: []int{2, 1, 3}},
		{name: "space between fills the inner gap", align: MainSpaceBetween, width: 10, want: []int{0, 6, 0}},
		{name: "space evenly", align: MainSpaceEvenly, width: 10, want: []int{2, 3, 1}},
		{name: "space around", align: MainSpaceAround, width: 10, want: []int{1, 4, 1}},
		{name: "overflow leaves gaps alone", align: MainEnd, width: 3, want: []int{0, 1, 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, mainAxisGaps(tc.align, views, 1, tc.width))
		})
	}
}

func TestHStackSpaceBetween(t *testing.T) {
	t.Parallel()

	out := HStack(NewText("left"), NewText("right")).
		WithMainAlign(MainSpaceBetween).
		ViewWithContext(DefaultContext().WithConstraints(WithMaxWidth(20)))

	plain := ansi.Strip(out)
	assert.Equal(t, 20, ansi.StringWidth(plain))
	assert.True(t, strings.HasPrefix(plain, "left"))
	assert.True(t, strings.HasSuffix(plain, "right"))
}

func TestVStackGapAddsBlankRows(t *testing.T) {
	t.Parallel()

	out := VStack(NewText("a"), NewText("b")).WithGap(2).View()
	lines := strings.Split(ansi.Strip(out), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "a", strings.TrimSpace(lines[0]))
	assert.Equal(t, "b", strings.TrimSpace(lines[3]))
}

func TestStackSkipsEmptyChildren(t *testing.T) {
	t.Parallel()

	out := VStack(NewText("a"), nil, NewModal(ModalProps{}), NewText("b")).View()
	assert.Equal(t, "a\nb", ansi.Strip(out))
}

func TestStackFillsMinimumSize(t *testing.T) {
	t.Parallel()

	limits := Constraints{MinWidth: 8, MaxWidth: -1, MinHeight: 3, MaxHeight: -1}
	out := VStack(NewText("ab")).WithConstraints(limits).View()

	lines := strings.Split(ansi.Strip(out), "\n")
	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, 8, ansi.StringWidth(line))
	}
	assert.Equal(t, "ab", strings.TrimSpace(lines[0]))
}

func TestStackFixedWidthFromContext(t *testing.T) {
	t.Parallel()

	out := VStack(NewText("a"), NewText("bcd")).ViewWithContext(DefaultContext().WithConstraints(WithWidth(6)))
	for _, line := range strings.Split(ansi.Strip(out), "\n") {
		assert.Equal(t, 6, ansi.StringWidth(line))
	}
}

func TestConstraintsConstrain(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		limits        Constraints
		width, height int
		wantW, wantH  int
	}{
		{name: "unconstrained", limits: Unconstrained(), width: 5, height: 2, wantW: 5, wantH: 2},
		{name: "grows to minimum", limits: WithWidth(10), width: 5, height: 2, wantW: 10, wantH: 2},
		{name: "shrinks to maximum", limits: WithMaxWidth(4), width: 5, height: 2, wantW: 4, wantH: 2},
		{name: "height limits", limits: Constraints{MaxWidth: -1, MinHeight: 3, MaxHeight: 4}, width: 1, height: 9, wantW: 1, wantH: 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			w, h := tc.limits.Constrain(tc.width, tc.height)
			assert.Equal(t, tc.wantW, w)
			assert.Equal(t, tc.wantH, h)
		})
	}
}
