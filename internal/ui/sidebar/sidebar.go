// Package sidebar holds the ambient open/closed state of a render tree's sidebar.
//
// A Provider is the single owner of the value. Components never receive the
// Provider itself; they receive a State, which can only be read.
package sidebar

// State is the read-only view handed to descendants.
type State interface {
	Open() bool
}

// Provider owns the sidebar state for one render tree.
type Provider struct {
	open      bool
	listeners []func(open bool)
}

// NewProvider creates a provider with the given initial state.
func NewProvider(open bool) *Provider {
	return &Provider{open: open}
}

// Open reports whether the sidebar is expanded.
func (p *Provider) Open() bool {
	if p == nil {
		return false
	}
	return p.open
}

// SetOpen replaces the state and notifies listeners when it changes.
func (p *Provider) SetOpen(open bool) {
	if p == nil || p.open == open {
		return
	}
	p.open = open
	for _, fn := range p.listeners {
		fn(open)
	}
}

// Toggle flips the state and returns the new value.
func (p *Provider) Toggle() bool {
	if p == nil {
		return false
	}
	p.SetOpen(!p.open)
	return p.open
}

// OnChange registers fn to run after every state change.
func (p *Provider) OnChange(fn func(open bool)) {
	if p == nil || fn == nil {
		return
	}
	p.listeners = append(p.listeners, fn)
}

// State returns a read-only view of the provider. A nil provider yields a nil State.
func (p *Provider) State() State {
	if p == nil {
		return nil
	}
	return view{p: p}
}

type view struct {
	p *Provider
}

func (v view) Open() bool {
	return v.p.open
}
