package main

import (
	"slices"
	"time"

	"github.com/alexisbeaulieu97/vitrine/internal/tui/demos"
	"github.com/alexisbeaulieu97/vitrine/internal/ui/components"
	"github.com/alexisbeaulieu97/vitrine/internal/ui/sidebar"
)

// showcase renders one component for 'vitrine show'.
type showcase struct {
	Name        string
	Description string
	render      func(ctx components.RenderContext, locale string) string
}

var catalog = []showcase{
	{
		Name:        "badge",
		Description: "Inline label on a palette colour",
		render: func(ctx components.RenderContext, _ string) string {
			return components.HStack(
				components.NewBadge(components.BadgeProps{Label: "New", Color: "primary"}),
				components.NewBadge(components.BadgeProps{Label: "Stable", Color: "success"}),
				components.NewBadge(components.BadgeProps{Label: "Beta", Color: "warning"}),
				components.NewBadge(components.BadgeProps{Label: "Removed", Color: "error"}),
			).WithGap(1).ViewWithContext(ctx)
		},
	},
	{
		Name:        "divider",
		Description: "Horizontal rule with vertical margin",
		render: func(ctx components.RenderContext, _ string) string {
			return components.NewDivider(components.DividerProps{}).ViewWithContext(ctx)
		},
	},
	{
		Name:        "page-header",
		Description: "Page title, subtitle and actions",
		render: func(ctx components.RenderContext, _ string) string {
			return components.NewPageHeader(
				components.PageHeaderProps{Title: "Settings", Subtitle: "Manage your account"},
				components.NewBadge(components.BadgeProps{Label: "Saved", Color: "success"}),
			).ViewWithContext(ctx)
		},
	},
	{
		Name:        "topbar",
		Description: "Full-width bar with the sidebar toggle",
		render: func(ctx components.RenderContext, _ string) string {
			ctx = ctx.WithSidebar(sidebar.NewProvider(true).State())
			return components.NewTopbar(
				components.TopbarProps{Title: "vitrine"},
				components.NewBadge(components.BadgeProps{Label: ctx.Theme.Name, Color: "secondary"}),
			).ViewWithContext(ctx)
		},
	},
	{
		Name:        "tabs",
		Description: "One panel at a time",
		render: func(ctx components.RenderContext, _ string) string {
			return demos.NewTabsDemo().ViewWithContext(ctx)
		},
	},
	{
		Name:        "progress",
		Description: "Clamped progress bar",
		render: func(ctx components.RenderContext, _ string) string {
			return components.NewProgressBar(components.ProgressProps{Value: 40, Max: 100}).ViewWithContext(ctx)
		},
	},
	{
		Name:        "modal",
		Description: "Dialog with a close affordance",
		render: func(ctx components.RenderContext, _ string) string {
			return components.NewModal(
				components.ModalProps{Open: true, Title: "Confirm"},
				components.NewText("This dialog sits above the page."),
			).ViewWithContext(ctx)
		},
	},
	{
		Name:        "calendar",
		Description: "Month grid with a selected day",
		render: func(ctx components.RenderContext, locale string) string {
			today := time.Now()
			return components.NewCalendar(components.CalendarProps{
				Cursor:   today,
				Selected: &today,
				Locale:   locale,
			}).ViewWithContext(ctx)
		},
	},
	{
		Name:        "avatar",
		Description: "Initials on a colour from the name",
		render: func(ctx components.RenderContext, _ string) string {
			return demos.NewAvatarDemo().ViewWithContext(ctx)
		},
	},
	{
		Name:        "tooltip",
		Description: "Hint under an anchor",
		render: func(ctx components.RenderContext, _ string) string {
			return components.NewTooltip(
				components.TooltipProps{Text: demos.TooltipText, Visible: true},
				components.SecondaryButton("Save"),
			).ViewWithContext(ctx)
		},
	},
}

// showcaseNames returns every catalog name in catalog order.
func showcaseNames() []string {
	names := make([]string, len(catalog))
	for i, entry := range catalog {
		names[i] = entry.Name
	}
	return names
}

func findShowcase(name string) (showcase, bool) {
	index := slices.IndexFunc(catalog, func(entry showcase) bool { return entry.Name == name })
	if index < 0 {
		return showcase{}, false
	}
	return catalog[index], true
}

