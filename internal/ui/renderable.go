// Package ui defines the contracts shared by every component in the kit:
// anything that renders, anything that has children, and anything that
// carries pass-through attributes.
package ui

// Renderable is the minimal contract for a component: it renders itself to a string.
type Renderable interface {
	View() string
}

// Parent is implemented by components that hold child renderables.
type Parent interface {
	Children() []Renderable
}

// Attributed is implemented by components that forward caller attributes.
type Attributed interface {
	Attrs() Attrs
}

// Walk visits root and its descendants depth-first, parents before children.
// Returning false from fn skips the children of the visited node.
func Walk(root Renderable, fn func(Renderable) bool) {
	if root == nil {
		return
	}
	if !fn(root) {
		return
	}
	parent, ok := root.(Parent)
	if !ok {
		return
	}
	for _, child := range parent.Children() {
		Walk(child, fn)
	}
}

// FindByAttr returns every node under root (root included) carrying the attribute key.
func FindByAttr(root Renderable, key string) []Renderable {
	var found []Renderable
	Walk(root, func(node Renderable) bool {
		if attributed, ok := node.(Attributed); ok && attributed.Attrs().Has(key) {
			found = append(found, node)
		}
		return true
	})
	return found
}

// FindByAttrValue returns every node under root whose attribute key equals value.
func FindByAttrValue(root Renderable, key, value string) []Renderable {
	var found []Renderable
	Walk(root, func(node Renderable) bool {
		if attributed, ok := node.(Attributed); ok {
			if v, present := attributed.Attrs().Get(key); present && v == value {
				found = append(found, node)
			}
		}
		return true
	})
	return found
}
