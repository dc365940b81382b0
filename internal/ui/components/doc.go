// Package components provides a theme-aware component kit for terminal
// applications, rendered with lipgloss.
//
// # Overview
//
// Every component is a value configured once, either through a props
// struct (BadgeProps, DividerProps, TabsProps, ...) or fluent With* calls,
// and rendered to a string. Rendering is pure: the same configuration and
// RenderContext always produce the same output.
//
// # Theme System
//
// Themes are immutable and travel through RenderContext:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	output := component.ViewWithContext(ctx)
//
// View() renders with DefaultContext.
//
// A theme carries a semantic Palette, raw colour families, border set and
// border colour, spacing scales in terminal cells, typography presets, a
// variant registry and a class registry.
//
// # Components
//
// Primitives:
//   - Badge: a coloured label; Color is a palette slot name or literal colour
//   - Divider: a faint rule with none/sm/md/lg blank rows around it
//   - Avatar: initials on a colour block
//   - Text, Spacer, Button
//
// Layout:
//   - Stack: rows or columns with gaps and main-axis distribution
//   - Container, Card, Panel, Alert
//
// Structural:
//   - PageHeader: title, subtitle and children
//   - Topbar: a full-width row with a sidebar toggle when a sidebar is mounted
//
// Composites:
//   - Tabs, ProgressBar, Modal, Calendar, Tooltip
//
// # Attributes and Classes
//
// Structural components and Container accept ui.Attrs. The "class" entry
// is a space-separated list of tokens looked up in Theme.Classes and applied
// left to right, so a later token overrides an earlier one. PageHeader and
// Topbar always start the list with their own class:
//
//	header := NewPageHeader(PageHeaderProps{
//		Title: "Settings",
//		Attrs: ui.Attrs{"class": "bold", "data-testid": "settings"},
//	})
//
// # Style Modifiers
//
// Components accept theme-aware style functions through WithAppliers:
//
//	card := NewCard().WithAppliers(
//		Background(PalettePrimary),
//		Padding(SpacingSizeLarge),
//		Border(BorderVariantRounded),
//	)
//
// Available modifiers:
//   - Background(slot), Foreground(slot)
//   - Border(variant), BorderColour()
//   - Padding/PaddingX/PaddingY(size), Margin/MarginY(size)
//   - Typography(variant)
//
// # Ambient Sidebar State
//
// RenderContext.Sidebar exposes a read-only sidebar.State. It is nil when no
// provider is mounted, and components that react to it degrade to their
// plain rendering.
package components
