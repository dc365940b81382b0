package components

import (
	"hash/fnv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// AvatarSize selects how much room an avatar takes.
type AvatarSize string

const (
	AvatarSizeSmall  AvatarSize = "sm"
	AvatarSizeMedium AvatarSize = "md"
	AvatarSizeLarge  AvatarSize = "lg"
)

// avatarPadding is the horizontal and vertical padding per size.
var avatarPadding = map[AvatarSize][2]int{
	AvatarSizeSmall:  {0, 0},
	AvatarSizeMedium: {1, 0},
	AvatarSizeLarge:  {2, 1},
}

// AvatarProps configures an Avatar. Every field is optional.
type AvatarProps struct {
	Name string
	// Color is a slot name or literal. Empty picks a colour family from
	// the name so the same name always gets the same colour.
	Color string
	// Size defaults to AvatarSizeMedium.
	Size AvatarSize
}

func (p AvatarProps) resolved() AvatarProps {
	if _, ok := avatarPadding[p.Size]; !ok {
		p.Size = AvatarSizeMedium
	}
	return p
}

// Avatar renders a person's initials on a coloured block.
type Avatar struct {
	BaseComponent
	props AvatarProps
}

// NewAvatar creates an avatar from props.
func NewAvatar(props AvatarProps) *Avatar {
	return &Avatar{
		BaseComponent: NewBaseComponent(),
		props:         props,
	}
}

// Initials returns up to two upper-case initials of name, or "?" when name
// has no letters to take.
func Initials(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return "?"
	}
	first := firstRune(words[0])
	if len(words) == 1 {
		return string(first)
	}
	return string(first) + string(firstRune(words[len(words)-1]))
}

func firstRune(word string) rune {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.ToUpper(r)
}

// View renders the avatar.
func (a *Avatar) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the avatar with the given theme context.
func (a *Avatar) ViewWithContext(ctx RenderContext) string {
	props := a.props.resolved()
	pad := avatarPadding[props.Size]

	style := a.ComputeStyle(ctx.Theme).
		Bold(true).
		Padding(pad[1], pad[0]).
		Foreground(ctx.Theme.Palette.Primary.OnBase)
	if props.Color != "" {
		cs, _ := ResolveColour(ctx.Theme, props.Color)
		style = style.Background(cs.Base).Foreground(cs.OnBase)
	} else if colour, ok := PaletteColor(ctx.Theme, avatarFamily(props.Name), PaletteShade600); ok {
		style = style.Background(colour)
	}
	return style.Render(Initials(props.Name))
}

// avatarFamily hashes name onto one of the avatar colour families.
func avatarFamily(name string) PaletteFamily {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(name))))
	return avatarFamilies[h.Sum32()%uint32(len(avatarFamilies))]
}

// Props returns the avatar configuration.
func (a *Avatar) Props() AvatarProps {
	return a.props
}

// WithStyle sets the avatar style.
func (a *Avatar) WithStyle(style lipgloss.Style) *Avatar {
	a.SetStyle(style)
	return a
}
