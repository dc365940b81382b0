package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// CalendarProps configures a Calendar.
type CalendarProps struct {
	// Month is any time within the month to show. Zero shows the cursor's month.
	Month time.Time
	// Cursor is the keyboard position; zero places it on the first of Month.
	Cursor time.Time
	// Selected is the chosen day, nil when nothing is selected.
	Selected *time.Time
	// Locale is a BCP 47 tag naming the month and weekdays, default
	// DefaultLocale.
	Locale string
}

func (p CalendarProps) resolved() CalendarProps {
	if p.Month.IsZero() {
		p.Month = p.Cursor
	}
	if p.Month.IsZero() {
		p.Month = time.Now()
	}
	p.Month = FirstOfMonth(p.Month)
	if p.Cursor.IsZero() {
		p.Cursor = p.Month
	}
	if p.Locale == "" {
		p.Locale = DefaultLocale
	}
	return p
}

// FirstOfMonth returns midnight on the first day of t's month, in t's location.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Calendar renders a month grid with weeks starting on Sunday.
type Calendar struct {
	BaseComponent
	props CalendarProps
}

// NewCalendar creates a calendar from props.
func NewCalendar(props CalendarProps) *Calendar {
	return &Calendar{
		BaseComponent: NewBaseComponent(),
		props:         props,
	}
}

// Weeks returns the month as rows of seven days, Sunday first. Days outside
// the month are zero.
func (c *Calendar) Weeks() [][7]int {
	month := c.props.resolved().Month
	lead := int(month.Weekday())
	days := month.AddDate(0, 1, -1).Day()

	var weeks [][7]int
	var week [7]int
	col := lead
	for day := 1; day <= days; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// View renders the calendar.
func (c *Calendar) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the month title, weekday header and day grid.
func (c *Calendar) ViewWithContext(ctx RenderContext) string {
	props := c.props.resolved()
	theme := ctx.Theme

	cell := lipgloss.NewStyle().Width(3).Align(lipgloss.Right)
	muted := cell.Inherit(TypographyStyle(theme, TypographyVariantMuted))
	selected := Background(PalettePrimary)(cell, theme).Bold(true)
	cursor := cell.Reverse(true)

	rows := make([]string, 0, 8)
	title := TitleText(MonthTitle(props.Month, props.Locale)).ViewWithContext(ctx)
	rows = append(rows, lipgloss.PlaceHorizontal(7*3, lipgloss.Center, title))

	weekdays := WeekdayNames(props.Locale)
	header := make([]string, len(weekdays))
	for i, day := range weekdays {
		header[i] = muted.Render(day)
	}
	rows = append(rows, strings.Join(header, ""))

	for _, week := range c.Weeks() {
		cells := make([]string, 7)
		for i, day := range week {
			if day == 0 {
				cells[i] = cell.Render("")
				continue
			}
			date := time.Date(props.Month.Year(), props.Month.Month(), day, 0, 0, 0, 0, props.Month.Location())
			label := fmt.Sprintf("%d", day)
			switch {
			case props.Selected != nil && SameDay(*props.Selected, date):
				cells[i] = selected.Render(label)
			case SameDay(props.Cursor, date):
				cells[i] = cursor.Render(label)
			default:
				cells[i] = cell.Render(label)
			}
		}
		rows = append(rows, strings.Join(cells, ""))
	}

	return c.ComputeStyle(theme).Render(strings.Join(rows, "\n"))
}

// Props returns the calendar configuration.
func (c *Calendar) Props() CalendarProps {
	return c.props
}
