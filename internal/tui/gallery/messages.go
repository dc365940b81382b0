package gallery

// SelectPageMsg switches the gallery to the page with the given id.
// Unknown ids are ignored.
type SelectPageMsg struct {
	ID string
}

// ToggleSidebarMsg flips the sidebar.
type ToggleSidebarMsg struct{}
