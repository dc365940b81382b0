// Package vitrine is the public entry point of the component kit.
//
// It re-exports the primitive, structural and composite components with
// their props, plus the theme and render context they share. Everything
// else under internal/ is an implementation detail.
package vitrine

import (
	"github.com/alexisbeaulieu97/vitrine/internal/ui"
	"github.com/alexisbeaulieu97/vitrine/internal/ui/components"
)

// Shared rendering surface.
type (
	Renderable    = ui.Renderable
	Attrs         = ui.Attrs
	Theme         = components.Theme
	RenderContext = components.RenderContext
)

var (
	DefaultTheme   = components.DefaultTheme
	DarkTheme      = components.DarkTheme
	DefaultContext = components.DefaultContext
)

// Primitives.
type (
	Badge         = components.Badge
	BadgeProps    = components.BadgeProps
	Divider       = components.Divider
	DividerProps  = components.DividerProps
	DividerMargin = components.DividerMargin
	Avatar        = components.Avatar
	AvatarProps   = components.AvatarProps
	AvatarSize    = components.AvatarSize
)

const (
	DividerMarginNone   = components.DividerMarginNone
	DividerMarginSmall  = components.DividerMarginSmall
	DividerMarginMedium = components.DividerMarginMedium
	DividerMarginLarge  = components.DividerMarginLarge

	AvatarSizeSmall  = components.AvatarSizeSmall
	AvatarSizeMedium = components.AvatarSizeMedium
	AvatarSizeLarge  = components.AvatarSizeLarge
)

var (
	NewBadge   = components.NewBadge
	NewDivider = components.NewDivider
	NewAvatar  = components.NewAvatar
)

// Structural components.
type (
	Topbar          = components.Topbar
	TopbarProps     = components.TopbarProps
	PageHeader      = components.PageHeader
	PageHeaderProps = components.PageHeaderProps
)

var (
	NewTopbar     = components.NewTopbar
	NewPageHeader = components.NewPageHeader
)

// Composites.
type (
	Tabs          = components.Tabs
	TabsProps     = components.TabsProps
	TabItem       = components.TabItem
	ProgressBar   = components.ProgressBar
	ProgressProps = components.ProgressProps
	Modal         = components.Modal
	ModalProps    = components.ModalProps
	Calendar      = components.Calendar
	CalendarProps = components.CalendarProps
	Tooltip       = components.Tooltip
	TooltipProps  = components.TooltipProps
)

var (
	NewTabs        = components.NewTabs
	NewProgressBar = components.NewProgressBar
	NewModal       = components.NewModal
	NewCalendar    = components.NewCalendar
	NewTooltip     = components.NewTooltip
)
