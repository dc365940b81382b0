package gallery

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/vitrine/internal/ui"
	"github.com/alexisbeaulieu97/vitrine/internal/ui/components"
)

const (
	// AppTitle is shown in the topbar.
	AppTitle = "vitrine"
	// NavTitle heads the sidebar.
	NavTitle = "Components"

	navWidth  = 20
	navMarker = "›"
)

// block adapts pre-rendered text to ui.Renderable.
type block string

func (b block) View() string { return string(b) }

// View renders the current model state.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	ctx := m.renderContext()
	if m.TooSmall() {
		return m.renderTooSmall(ctx)
	}

	body := m.renderPage(ctx)
	if m.SidebarOpen() {
		pageCtx := ctx.WithParentWidth(max(0, m.width-navWidth-1))
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderNav(ctx),
			" ",
			m.renderPage(pageCtx),
		)
	}

	return components.VStack(
		block(m.renderTopbar(ctx)),
		block(body),
		block(m.renderFooter()),
	).WithGap(1).ViewWithContext(ctx)
}

func (m Model) renderTopbar(ctx components.RenderContext) string {
	position := components.MutedText(fmt.Sprintf("%d/%d", m.active+1, len(m.pages)))
	theme := components.NewBadge(components.BadgeProps{Label: m.theme.Name, Color: "secondary"})
	return components.NewTopbar(components.TopbarProps{Title: AppTitle}, theme, position).
		ViewWithContext(ctx)
}

func (m Model) renderNav(ctx components.RenderContext) string {
	items := make([]ui.Renderable, 0, len(m.pages))
	for i, page := range m.pages {
		if i == m.active {
			items = append(items, components.NewText(navMarker+" "+page.Title()).
				WithAttrs(ui.Attrs{ui.ClassKey: "primary bold"}))
			continue
		}
		items = append(items, components.MutedText("  "+page.Title()))
	}

	navCtx := ctx.WithConstraints(components.WithWidth(navWidth)).WithParentWidth(navWidth)
	return components.NewPanel(items...).WithTitle(NavTitle).ViewWithContext(navCtx)
}

func (m Model) renderPage(ctx components.RenderContext) string {
	page := m.ActivePage()
	header := components.NewPageHeader(components.PageHeaderProps{
		Title:    page.Title(),
		Subtitle: page.Description(),
	})
	return components.VStack(
		header,
		block(page.ViewWithContext(ctx)),
	).ViewWithContext(ctx)
}

func (m Model) renderFooter() string {
	keys := pageHelp{page: m.ActivePage(), global: m.keys}
	if m.showHelp {
		return m.help.FullHelpView(keys.FullHelp())
	}
	return m.help.ShortHelpView(keys.ShortHelp())
}

func (m Model) renderTooSmall(ctx components.RenderContext) string {
	msg := fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
		m.width, m.height, MinWidth, MinHeight)
	return components.WarningAlert(msg).
		ViewWithContext(ctx.WithConstraints(components.WithMaxWidth(m.width)))
}
