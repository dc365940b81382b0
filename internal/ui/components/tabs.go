package components

import (
	"github.com/alexisbeaulieu97/vitrine/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Tab strip markers.
const (
	TabMarkerActive   = "●"
	TabMarkerInactive = "○"
)

// TabItem is one tab: a stable id, the strip label and the panel content.
type TabItem struct {
	ID      string
	Label   string
	Content ui.Renderable
}

// TabsProps configures Tabs. All fields are required.
type TabsProps struct {
	Tabs        []TabItem
	ActiveTab   string
	OnTabChange func(id string)
}

// Tabs renders a tab strip and the content of the active tab. Tabs holds
// no selection state of its own: the owner passes ActiveTab and learns
// about selections through OnTabChange.
type Tabs struct {
	BaseComponent
	props TabsProps
}

// NewTabs creates tabs from props.
func NewTabs(props TabsProps) *Tabs {
	return &Tabs{
		BaseComponent: NewBaseComponent(),
		props:         props,
	}
}

// ActiveIndex returns the position of the active tab. An ActiveTab that
// names no tab resolves to the first tab; -1 means there are no tabs.
func (t *Tabs) ActiveIndex() int {
	if len(t.props.Tabs) == 0 {
		return -1
	}
	for i, tab := range t.props.Tabs {
		if tab.ID == t.props.ActiveTab {
			return i
		}
	}
	return 0
}

// ActiveID returns the id of the tab rendered as active.
func (t *Tabs) ActiveID() string {
	i := t.ActiveIndex()
	if i < 0 {
		return ""
	}
	return t.props.Tabs[i].ID
}

// Has reports whether id names a tab.
func (t *Tabs) Has(id string) bool {
	for _, tab := range t.props.Tabs {
		if tab.ID == id {
			return true
		}
	}
	return false
}

// Select reports a selection of id through OnTabChange. Unknown ids are
// ignored and report false.
func (t *Tabs) Select(id string) bool {
	if !t.Has(id) {
		return false
	}
	if t.props.OnTabChange != nil {
		t.props.OnTabChange(id)
	}
	return true
}

// IDAt returns the id of the tab at index.
func (t *Tabs) IDAt(index int) (string, bool) {
	if index < 0 || index >= len(t.props.Tabs) {
		return "", false
	}
	return t.props.Tabs[index].ID, true
}

// Neighbor returns the id offset tabs away from the active one, wrapping
// around both ends.
func (t *Tabs) Neighbor(offset int) string {
	n := len(t.props.Tabs)
	if n == 0 {
		return ""
	}
	i := ((t.ActiveIndex()+offset)%n + n) % n
	return t.props.Tabs[i].ID
}

// View renders the tabs.
func (t *Tabs) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the strip, a rule and the active panel.
func (t *Tabs) ViewWithContext(ctx RenderContext) string {
	active := t.ActiveIndex()
	if active < 0 {
		return ""
	}

	labels := make([]ui.Renderable, 0, len(t.props.Tabs))
	for i, tab := range t.props.Tabs {
		labels = append(labels, rendered(tabLabelStyle(ctx.Theme, i == active).Render(tabLabel(tab, i == active))))
	}
	strip := HStack(labels...).WithGap(1).View()

	rule := NewDivider(DividerProps{Margin: DividerMarginNone}).WithWidth(lipgloss.Width(strip))
	if w := ctx.AvailableWidth(0); w > 0 {
		rule.WithWidth(w)
	}

	rows := []ui.Renderable{rendered(strip), rule}
	if content := t.props.Tabs[active].Content; content != nil {
		rows = append(rows, content)
	}
	return t.ComputeStyle(ctx.Theme).Render(VStack(rows...).ViewWithContext(ctx))
}

func tabLabel(tab TabItem, active bool) string {
	marker := TabMarkerInactive
	if active {
		marker = TabMarkerActive
	}
	return marker + " " + tab.Label
}

func tabLabelStyle(theme Theme, active bool) lipgloss.Style {
	style := lipgloss.NewStyle().Padding(0, PaddingValue(theme, SpacingSizeExtraSmall))
	if active {
		return Background(PalettePrimary)(style, theme).Bold(true)
	}
	return style.Inherit(TypographyStyle(theme, TypographyVariantMuted))
}

// Props returns the tabs configuration.
func (t *Tabs) Props() TabsProps {
	return t.props
}
