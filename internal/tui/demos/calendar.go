package demos

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vitrine/internal/ui/components"
)

// NoDateSelected is shown until a date has been picked.
const NoDateSelected = "No date selected"

// today is swapped in tests.
var today = func() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

type calendarKeys struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Select    key.Binding
}

// CalendarDemo picks a date from a month grid. Its state is the selected
// date, absent until the first selection. The cursor is navigation only.
type CalendarDemo struct {
	selected *time.Time
	cursor   time.Time
	locale   string
	keys     calendarKeys
}

// NewCalendarDemo creates the demo with the cursor on start and nothing
// selected. Dates are formatted for locale.
func NewCalendarDemo(locale string, start time.Time) CalendarDemo {
	if locale == "" {
		locale = components.DefaultLocale
	}
	return CalendarDemo{
		cursor: start,
		locale: locale,
		keys: calendarKeys{
			Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "previous day")),
			Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next day")),
			Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "previous week")),
			Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "next week")),
			PrevMonth: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous month")),
			NextMonth: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next month")),
			Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		},
	}
}

func (d CalendarDemo) ID() string    { return "calendar" }
func (d CalendarDemo) Title() string { return "Calendar" }
func (d CalendarDemo) Description() string {
	return "A month grid with a keyboard cursor and a single selected date."
}

// SelectDate records d as the selected date.
func (d CalendarDemo) SelectDate(date time.Time) CalendarDemo {
	d.selected = &date
	return d
}

// Selected returns the selected date and whether one has been picked.
func (d CalendarDemo) Selected() (time.Time, bool) {
	if d.selected == nil {
		return time.Time{}, false
	}
	return *d.selected, true
}

// Cursor returns the keyboard cursor date.
func (d CalendarDemo) Cursor() time.Time {
	return d.cursor
}

// DisplayText is the status line under the calendar.
func (d CalendarDemo) DisplayText() string {
	if d.selected == nil {
		return NoDateSelected
	}
	return "Selected: " + components.FormatDate(*d.selected, d.locale)
}

// MoveCursor shifts the cursor by the given number of days.
func (d CalendarDemo) MoveCursor(days int) CalendarDemo {
	d.cursor = d.cursor.AddDate(0, 0, days)
	return d
}

// MoveMonth shifts the cursor by whole months, keeping the day where the
// target month allows it.
func (d CalendarDemo) MoveMonth(months int) CalendarDemo {
	first := components.FirstOfMonth(d.cursor).AddDate(0, months, 0)
	last := first.AddDate(0, 1, -1).Day()
	d.cursor = first.AddDate(0, 0, min(d.cursor.Day(), last)-1)
	return d
}

// Init implements tea.Model.
func (d CalendarDemo) Init() tea.Cmd { return nil }

// Update moves the cursor and selects the cursor date on enter or space.
func (d CalendarDemo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch {
	case key.Matches(keyMsg, d.keys.Left):
		return d.MoveCursor(-1), nil
	case key.Matches(keyMsg, d.keys.Right):
		return d.MoveCursor(1), nil
	case key.Matches(keyMsg, d.keys.Up):
		return d.MoveCursor(-7), nil
	case key.Matches(keyMsg, d.keys.Down):
		return d.MoveCursor(7), nil
	case key.Matches(keyMsg, d.keys.PrevMonth):
		return d.MoveMonth(-1), nil
	case key.Matches(keyMsg, d.keys.NextMonth):
		return d.MoveMonth(1), nil
	case key.Matches(keyMsg, d.keys.Select):
		return d.SelectDate(d.cursor), nil
	}
	return d, nil
}

// View renders the demo with the default context.
func (d CalendarDemo) View() string {
	return d.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the month and the selection status.
func (d CalendarDemo) ViewWithContext(ctx components.RenderContext) string {
	calendar := components.NewCalendar(components.CalendarProps{
		Month:    d.cursor,
		Cursor:   d.cursor,
		Selected: d.selected,
		Locale:   d.locale,
	})
	return components.VStack(calendar, components.EmphasisText(d.DisplayText())).
		WithGap(1).
		ViewWithContext(ctx)
}

// ShortHelp implements help.KeyMap.
func (d CalendarDemo) ShortHelp() []key.Binding {
	return []key.Binding{d.keys.Left, d.keys.Right, d.keys.PrevMonth, d.keys.NextMonth, d.keys.Select}
}

// FullHelp implements help.KeyMap.
func (d CalendarDemo) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{d.keys.Left, d.keys.Right, d.keys.Up, d.keys.Down},
		{d.keys.PrevMonth, d.keys.NextMonth, d.keys.Select},
	}
}
