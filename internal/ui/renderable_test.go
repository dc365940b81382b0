package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type node struct {
	text     string
	attrs    Attrs
	children []Renderable
}

func (n node) View() string {
	parts := []string{n.text}
	for _, c := range n.children {
		parts = append(parts, c.View())
	}
	return strings.Join(parts, "")
}

func (n node) Children() []Renderable { return n.children }
func (n node) Attrs() Attrs           { return n.attrs }

type leaf string

func (l leaf) View() string { return string(l) }

func TestFindByAttr(t *testing.T) {
	t.Parallel()

	marked := node{text: "X", attrs: Attrs{"data-marker": ""}}
	tree := node{
		attrs: Attrs{"role": "banner"},
		children: []Renderable{
			leaf("title"),
			node{children: []Renderable{marked}},
		},
	}

	found := FindByAttr(tree, "data-marker")
	require.Len(t, found, 1)
	require.Equal(t, "X", found[0].View())

	require.Len(t, FindByAttrValue(tree, "role", "banner"), 1)
	require.Empty(t, FindByAttrValue(tree, "role", "nav"))
}

func TestWalkSkipsChildrenWhenAsked(t *testing.T) {
	t.Parallel()

	tree := node{text: "root", children: []Renderable{node{text: "child", children: []Renderable{leaf("grandchild")}}}}

	var visited []string
	Walk(tree, func(r Renderable) bool {
		if n, ok := r.(node); ok {
			visited = append(visited, n.text)
			return n.text == "root"
		}
		visited = append(visited, r.View())
		return true
	})

	require.Equal(t, []string{"root", "child"}, visited)
}

func TestWalkNilRoot(t *testing.T) {
	t.Parallel()

	called := false
	Walk(nil, func(Renderable) bool { called = true; return true })
	require.False(t, called)
}
