package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const paletteShadeCount = 10

// PaletteShades represents a Tailwind-style colour scale from lightest (50) to darkest (900).
type PaletteShades struct {
	colors [paletteShadeCount]lipgloss.Color
}

// NewPaletteShades creates a shade scale from colours ordered lightest to darkest.
func NewPaletteShades(colors ...lipgloss.Color) PaletteShades {
	var shades PaletteShades
	for i := 0; i < paletteShadeCount && i < len(colors); i++ {
		shades.colors[i] = colors[i]
	}
	return shades
}

// Color returns the colour at the given shade, or "" when out of range.
func (ps PaletteShades) Color(shade PaletteShade) lipgloss.Color {
	index := int(shade)
	if index < 0 || index >= paletteShadeCount {
		return ""
	}
	return ps.colors[index]
}

// ColorPalette groups the raw colour families.
type ColorPalette struct {
	Slate  PaletteShades
	Blue   PaletteShades
	Green  PaletteShades
	Red    PaletteShades
	Yellow PaletteShades
	Purple PaletteShades
	Cyan   PaletteShades
}

// Shades returns the scale for family, falling back to slate.
func (cp ColorPalette) Shades(family PaletteFamily) PaletteShades {
	switch family {
	case PaletteBlue:
		return cp.Blue
	case PaletteGreen:
		return cp.Green
	case PaletteRed:
		return cp.Red
	case PaletteYellow:
		return cp.Yellow
	case PalettePurple:
		return cp.Purple
	case PaletteCyan:
		return cp.Cyan
	default:
		return cp.Slate
	}
}

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
)

const spacingSizeCount = int(SpacingSizeExtraLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct spacing scales, in terminal cells, for padding and margin.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantBody
	TypographyVariantCode
	TypographyVariantEmphasis
	TypographyVariantMuted
)

// PaletteFamily names a raw colour family.
type PaletteFamily int

const (
	PaletteSlate PaletteFamily = iota
	PaletteBlue
	PaletteGreen
	PaletteRed
	PaletteYellow
	PalettePurple
	PaletteCyan
)

// avatarFamilies are the families avatars rotate through when no colour is given.
var avatarFamilies = []PaletteFamily{PaletteBlue, PaletteGreen, PalettePurple, PaletteCyan, PaletteYellow, PaletteRed}

// PaletteShade indexes a PaletteShades scale.
type PaletteShade int

const (
	PaletteShade50 PaletteShade = iota
	PaletteShade100
	PaletteShade200
	PaletteShade300
	PaletteShade400
	PaletteShade500
	PaletteShade600
	PaletteShade700
	PaletteShade800
	PaletteShade900
)

// BorderVariant selects a border from the theme.
type BorderVariant int

const (
	BorderVariantNormal BorderVariant = iota
	BorderVariantThick
	BorderVariantRounded
	BorderVariantDouble
)

// ButtonVariant selects a button style.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantSuccess
	ButtonVariantError
	ButtonVariantWarning
	ButtonVariantInfo
	ButtonVariantMuted
)

// AlertVariant selects an alert style.
type AlertVariant int

const (
	AlertVariantSuccess AlertVariant = iota
	AlertVariantError
	AlertVariantWarning
	AlertVariantInfo
)

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// BorderSet groups reusable border definitions and the colour dividers and
// frames use when nothing else is specified.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
	Color   lipgloss.AdaptiveColor
}

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
}

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// ClassRegistry maps class tokens to style appliers. Class lists are resolved
// left to right, so a later token overrides properties set by an earlier one.
// Unknown tokens are ignored.
type ClassRegistry struct {
	classes map[string]StyleFunc
}

// NewClassRegistry creates an empty class registry.
func NewClassRegistry() *ClassRegistry {
	return &ClassRegistry{classes: make(map[string]StyleFunc)}
}

// Register binds a class token to one or more appliers.
func (cr *ClassRegistry) Register(class string, appliers ...StyleFunc) {
	cr.classes[class] = func(base lipgloss.Style, theme Theme) lipgloss.Style {
		for _, fn := range appliers {
			base = fn(base, theme)
		}
		return base
	}
}

// Has reports whether class is registered.
func (cr *ClassRegistry) Has(class string) bool {
	if cr == nil {
		return false
	}
	_, ok := cr.classes[class]
	return ok
}

// Resolve folds the given class list into a single applier.
func (cr *ClassRegistry) Resolve(classes []string) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if cr == nil {
			return base
		}
		for _, class := range classes {
			if fn, ok := cr.classes[class]; ok {
				base = fn(base, theme)
			}
		}
		return base
	}
}

// Theme represents an immutable styling theme for components.
type Theme struct {
	Name       string
	Palette    Palette
	Colors     ColorPalette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Variants   *VariantRegistry
	Classes    *ClassRegistry
}

// Normalize returns a theme with every unset table filled with defaults.
func (t Theme) Normalize() Theme {
	t.Spacing = normalizeSpacingConfig(t.Spacing)
	if t.Borders.Color.Light == "" && t.Borders.Color.Dark == "" {
		t.Borders.Color = t.Palette.Neutral.Muted
	}
	if t.Variants == nil {
		t.Variants = defaultVariants()
	}
	if t.Classes == nil {
		t.Classes = defaultClasses()
	}
	return t
}

func normalizeSpacingConfig(cfg SpacingConfig) SpacingConfig {
	if spacingTableIsZero(cfg.Padding) {
		cfg.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(cfg.Margin) {
		cfg.Margin = defaultSpacingTable()
	}
	return cfg
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      1,
		SpacingSizeMedium:     2,
		SpacingSizeLarge:      3,
		SpacingSizeExtraLarge: 4,
	}
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// DefaultTheme returns the light theme.
func DefaultTheme() Theme {
	palette := Palette{
		Primary:   ColourSet{Base: ac("#3b82f6", "#60a5fa"), OnBase: ac("#f8fafc", "#0b1120"), Muted: ac("#2563eb", "#1d4ed8"), Contrast: ac("#facc15", "#ca8a04")},
		Secondary: ColourSet{Base: ac("#a855f7", "#c084fc"), OnBase: ac("#f8fafc", "#1f2937"), Muted: ac("#7c3aed", "#6b21a8"), Contrast: ac("#f472b6", "#f472b6")},
		Surface:   ColourSet{Base: ac("#f9fafb", "#111827"), OnBase: ac("#111827", "#f9fafb"), Muted: ac("#e2e8f0", "#1f2937"), Contrast: ac("#3b82f6", "#60a5fa")},
		Success:   ColourSet{Base: ac("#22c55e", "#4ade80"), OnBase: ac("#052e16", "#022c22"), Muted: ac("#16a34a", "#15803d"), Contrast: ac("#f8fafc", "#f8fafc")},
		Warning:   ColourSet{Base: ac("#eab308", "#facc15"), OnBase: ac("#422006", "#422006"), Muted: ac("#ca8a04", "#a16207"), Contrast: ac("#111827", "#111827")},
		Danger:    ColourSet{Base: ac("#ef4444", "#f87171"), OnBase: ac("#fef2f2", "#450a0a"), Muted: ac("#dc2626", "#b91c1c"), Contrast: ac("#f8fafc", "#f8fafc")},
		Info:      ColourSet{Base: ac("#06b6d4", "#22d3ee"), OnBase: ac("#083344", "#04121a"), Muted: ac("#0891b2", "#0e7490"), Contrast: ac("#f8fafc", "#f8fafc")},
		Neutral:   ColourSet{Base: ac("#64748b", "#94a3b8"), OnBase: ac("#f1f5f9", "#0f172a"), Muted: ac("#cbd5e1", "#334155"), Contrast: ac("#f8fafc", "#f8fafc")},
	}

	theme := Theme{
		Name:    "light",
		Palette: palette,
		Colors:  defaultColorFamilies(),
		Borders: BorderSet{
			None:    lipgloss.Border{},
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
			Double:  lipgloss.DoubleBorder(),
			Color:   palette.Neutral.Muted,
		},
		Spacing: SpacingConfig{
			Padding: defaultSpacingTable(),
			Margin:  defaultSpacingTable(),
		},
		Typography: defaultTypography(palette),
		Variants:   defaultVariants(),
		Classes:    defaultClasses(),
	}

	return theme.Normalize()
}

// DarkTheme returns the dark theme. It shares variants and classes with the
// light theme; only colours and typography differ.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "dark"

	theme.Palette.Surface = ColourSet{
		Base:     ac("#111827", "#0b1120"),
		OnBase:   ac("#f9fafb", "#e5e7eb"),
		Muted:    ac("#1f2937", "#111827"),
		Contrast: ac("#3b82f6", "#60a5fa"),
	}
	theme.Palette.Neutral = ColourSet{
		Base:     ac("#475569", "#334155"),
		OnBase:   ac("#e5e7eb", "#cbd5f5"),
		Muted:    ac("#374151", "#1f2937"),
		Contrast: ac("#f8fafc", "#f8fafc"),
	}
	theme.Borders.Color = theme.Palette.Neutral.Base
	theme.Typography = defaultTypography(theme.Palette)

	return theme.Normalize()
}

// ThemeNames lists the built-in themes in display order.
func ThemeNames() []string {
	return []string{"light", "dark"}
}

// ThemeByName returns the built-in theme called name.
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "light", "default":
		return DefaultTheme(), true
	case "dark":
		return DarkTheme(), true
	default:
		return Theme{}, false
	}
}

func defaultColorFamilies() ColorPalette {
	shades := func(hex ...string) PaletteShades {
		colors := make([]lipgloss.Color, len(hex))
		for i, h := range hex {
			colors[i] = lipgloss.Color(h)
		}
		return NewPaletteShades(colors...)
	}

	return ColorPalette{
		Slate:  shades("#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a"),
		Blue:   shades("#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a"),
		Green:  shades("#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d"),
		Red:    shades("#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d"),
		Yellow: shades("#fefce8", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12"),
		Purple: shades("#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7", "#9333ea", "#7c3aed", "#6b21a8", "#581c87"),
		Cyan:   shades("#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee", "#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63"),
	}
}

func defaultVariants() *VariantRegistry {
	registry := NewVariantRegistry()
	registerButtonVariants(registry)
	registerAlertVariants(registry)
	return registry
}

func registerButtonVariants(registry *VariantRegistry) {
	slots := map[ButtonVariant]PaletteSlot{
		ButtonVariantPrimary:   PalettePrimary,
		ButtonVariantSecondary: PaletteSecondary,
		ButtonVariantSuccess:   PaletteSuccess,
		ButtonVariantError:     PaletteDanger,
		ButtonVariantWarning:   PaletteWarning,
		ButtonVariantInfo:      PaletteInfo,
		ButtonVariantMuted:     PaletteNeutral,
	}
	for variant, slot := range slots {
		registry.Register(variant, NewCompositeStrategy(
			Background(slot),
			PaddingX(SpacingSizeSmall),
		))
	}
}

func registerAlertVariants(registry *VariantRegistry) {
	registry.Register(AlertVariantSuccess, NewCompositeStrategy(Foreground(PaletteSuccess)))
	registry.Register(AlertVariantWarning, NewCompositeStrategy(Foreground(PaletteWarning)))
	registry.Register(AlertVariantError, NewCompositeStrategy(Foreground(PaletteDanger)))
	registry.Register(AlertVariantInfo, NewCompositeStrategy(Foreground(PaletteInfo)))
}

func defaultClasses() *ClassRegistry {
	cr := NewClassRegistry()

	cr.Register("bold", func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Bold(true) })
	cr.Register("faint", func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Faint(true) })
	cr.Register("italic", func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Italic(true) })
	cr.Register("underline", func(s lipgloss.Style, _ Theme) lipgloss.Style { return s.Underline(true) })
	cr.Register("rounded", Border(BorderVariantRounded), BorderColour())
	cr.Register("px-1", PaddingX(SpacingSizeExtraSmall))
	cr.Register("px-2", PaddingX(SpacingSizeMedium))
	cr.Register("py-1", PaddingY(SpacingSizeExtraSmall))
	cr.Register("mb-1", func(s lipgloss.Style, t Theme) lipgloss.Style {
		return s.MarginBottom(MarginValue(t, SpacingSizeExtraSmall))
	})

	for name, slot := range paletteSlotsByName {
		cr.Register(name, Foreground(slot))
		cr.Register("bg-"+name, Background(slot))
	}

	cr.Register("topbar", Background(PaletteSurface), PaddingX(SpacingSizeExtraSmall))
	cr.Register("page-header", func(s lipgloss.Style, t Theme) lipgloss.Style {
		return s.MarginBottom(MarginValue(t, SpacingSizeExtraSmall))
	})

	return cr
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Foreground(p.Secondary.Muted).Faint(true),
		Body:     base,
		Code:     base.Foreground(p.Secondary.Base).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: base.Bold(true),
		Muted:    base.Foreground(p.Neutral.Base),
	}
}

// PaletteColor returns the colour for a given family and shade.
func PaletteColor(theme Theme, family PaletteFamily, shade PaletteShade) (lipgloss.Color, bool) {
	color := theme.Colors.Shades(family).Color(shade)
	if color == "" {
		return "", false
	}
	return color, true
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.None
	}
}

// PaddingValue returns the padding value for the given size.
func PaddingValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Padding, size)
}

// MarginValue returns the margin value for the given size.
func MarginValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Margin, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantBody:
		return typo.Body
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantMuted:
		return typo.Muted
	default:
		return typo.Base
	}
}

// ColourSet represents a semantic colour set:
//
//   - Base: the background or brand colour
//   - OnBase: text colour that contrasts with Base
//   - Muted: a desaturated Base for subtle accents
//   - Contrast: an accent that stands out against Base
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

// Predefined semantic palette slots.
var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

var paletteSlotsByName = map[string]PaletteSlot{
	"primary":   PalettePrimary,
	"secondary": PaletteSecondary,
	"surface":   PaletteSurface,
	"success":   PaletteSuccess,
	"warning":   PaletteWarning,
	"danger":    PaletteDanger,
	"info":      PaletteInfo,
	"neutral":   PaletteNeutral,
}

// ResolveColour turns a colour name into a colour set. Semantic slot names
// ("primary", "danger", ...) resolve through the palette and report true.
// Anything else is taken as a literal terminal colour ("#ff8800", "205")
// paired with the surface text colour. An empty name resolves to neutral.
func ResolveColour(theme Theme, name string) (ColourSet, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return theme.Palette.Neutral, false
	}
	if slot, ok := paletteSlotsByName[key]; ok {
		return slot(theme.Palette), true
	}
	literal := ac(name, name)
	return ColourSet{
		Base:     literal,
		OnBase:   theme.Palette.Surface.OnBase,
		Muted:    literal,
		Contrast: theme.Palette.Surface.Contrast,
	}, false
}

// Background applies a semantic background colour and its matching foreground.
//
// Example:
//
//	card := NewCard().WithAppliers(Background(PalettePrimary))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without touching the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// BorderColour colours the border with the theme's border colour.
func BorderColour() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(theme.Borders.Color)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// Padding pads every side with the theme's padding for size.
func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(PaddingValue(theme, size))
	}
}

// PaddingX pads the left and right sides.
func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := PaddingValue(theme, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

// PaddingY pads the top and bottom sides.
func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := PaddingValue(theme, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

// Margin sets every margin to the theme's margin for size.
func Margin(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Margin(MarginValue(theme, size))
	}
}

// MarginY sets the top and bottom margins.
func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := MarginValue(theme, size)
		return base.MarginTop(value).MarginBottom(value)
	}
}

// Typography applies typography styling.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

// CardBaseStyle is the applier bundle shared by cards.
func CardBaseStyle() []StyleFunc {
	return []StyleFunc{
		Border(BorderVariantRounded),
		BorderColour(),
		Padding(SpacingSizeExtraSmall),
	}
}

// TextPalette creates a style with a foreground colour from a specific palette shade.
func TextPalette(theme Theme, family PaletteFamily, shade PaletteShade) lipgloss.Style {
	if color, ok := PaletteColor(theme, family, shade); ok {
		return lipgloss.NewStyle().Foreground(color)
	}
	return lipgloss.NewStyle()
}
