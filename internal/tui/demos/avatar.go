package demos

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vitrine/internal/ui/components"
)

// avatarPeople are the names shown in every size row.
var avatarPeople = []string{"Ada Lovelace", "Grace Hopper", "Linus", ""}

var avatarSizes = []components.AvatarSize{
	components.AvatarSizeSmall,
	components.AvatarSizeMedium,
	components.AvatarSizeLarge,
}

// AvatarDemo lists avatars in every size. It has no state.
type AvatarDemo struct{}

// NewAvatarDemo creates the demo.
func NewAvatarDemo() AvatarDemo {
	return AvatarDemo{}
}

func (d AvatarDemo) ID() string    { return "avatar" }
func (d AvatarDemo) Title() string { return "Avatar" }
func (d AvatarDemo) Description() string {
	return "Initials on a colour picked from the name, in three sizes."
}

// Init implements tea.Model.
func (d AvatarDemo) Init() tea.Cmd { return nil }

// Update ignores every message.
func (d AvatarDemo) Update(tea.Msg) (tea.Model, tea.Cmd) { return d, nil }

// View renders the demo with the default context.
func (d AvatarDemo) View() string {
	return d.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders one row per size.
func (d AvatarDemo) ViewWithContext(ctx components.RenderContext) string {
	rows := components.VStack().WithGap(1)
	for _, size := range avatarSizes {
		row := components.HStack(components.MutedText(string(size))).
			WithGap(2).
			WithCrossAlign(components.CrossCenter)
		for _, name := range avatarPeople {
			row.Add(components.NewAvatar(components.AvatarProps{Name: name, Size: size}))
		}
		rows.Add(row)
	}
	return rows.ViewWithContext(ctx)
}

// ShortHelp implements help.KeyMap.
func (d AvatarDemo) ShortHelp() []key.Binding { return nil }

// FullHelp implements help.KeyMap.
func (d AvatarDemo) FullHelp() [][]key.Binding { return nil }
