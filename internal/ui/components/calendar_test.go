package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalendarWeeksStartOnSunday(t *testing.T) {
	t.Parallel()

	// October 2026 starts on a Thursday and has 31 days.
	weeks := NewCalendar(CalendarProps{Month: day(2026, time.October, 15)}).Weeks()

	require.Len(t, weeks, 5)
	assert.Equal(t, [7]int{0, 0, 0, 0, 1, 2, 3}, weeks[0])
	assert.Equal(t, [7]int{4, 5, 6, 7, 8, 9, 10}, weeks[1])
	assert.Equal(t, [7]int{25, 26, 27, 28, 29, 30, 31}, weeks[4])
}

func TestCalendarWeeksFullFirstRow(t *testing.T) {
	t.Parallel()

	// February 2026 starts on a Sunday and fills exactly four rows.
	weeks := NewCalendar(CalendarProps{Month: day(2026, time.February, 1)}).Weeks()
	require.Len(t, weeks, 4)
	assert.Equal(t, [7]int{1, 2, 3, 4, 5, 6, 7}, weeks[0])
	assert.Equal(t, [7]int{22, 23, 24, 25, 26, 27, 28}, weeks[3])
}

func TestCalendarView(t *testing.T) {
	t.Parallel()

	selected := day(2026, time.October, 19)
	out := ansi.Strip(NewCalendar(CalendarProps{
		Month:    day(2026, time.October, 1),
		Cursor:   day(2026, time.October, 2),
		Selected: &selected,
	}).View())

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "October 2026")
	assert.Equal(t, "Su Mo Tu We Th Fr Sa", strings.TrimSpace(strings.Join(strings.Fields(lines[1]), " ")))
	assert.Contains(t, lines[2], " 1")
	assert.Contains(t, out, "31")
}

func TestCalendarResolvesMissingMonthFromCursor(t *testing.T) {
	t.Parallel()

	props := CalendarProps{Cursor: day(2026, time.March, 9)}.resolved()
	assert.Equal(t, day(2026, time.March, 1), props.Month)
	assert.Equal(t, DefaultLocale, props.Locale)
}

func TestSameDay(t *testing.T) {
	t.Parallel()

	assert.True(t, SameDay(day(2026, time.May, 4), day(2026, time.May, 4).Add(23*time.Hour)))
	assert.False(t, SameDay(day(2026, time.May, 4), day(2026, time.May, 5)))
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	date := day(2026, time.March, 9)

	cases := []struct {
		locale string
		want   string
	}{
		{locale: "en-US", want: "3/9/2026"},
		{locale: "", want: "3/9/2026"},
		{locale: "not a tag!", want: "3/9/2026"},
		{locale: "en-GB", want: "09/03/2026"},
		{locale: "de-DE", want: "9.3.2026"},
		{locale: "fr", want: "09/03/2026"},
		{locale: "ja-JP", want: "2026/3/9"},
		{locale: "es-ES", want: "9/3/2026"},
	}

	for _, tc := range cases {
		t.Run(tc.locale, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, FormatDate(date, tc.locale))
		})
	}
}

func TestMonthTitleAndWeekdays(t *testing.T) {
	t.Parallel()

	month := day(2026, time.October, 1)

	cases := []struct {
		locale  string
		title   string
		weekday string
	}{
		{locale: "en-US", title: "October 2026", weekday: "Su"},
		{locale: "not a tag!", title: "October 2026", weekday: "Su"},
		{locale: "de-DE", title: "Oktober 2026", weekday: "So"},
		{locale: "fr-FR", title: "octobre 2026", weekday: "di"},
		{locale: "es", title: "octubre de 2026", weekday: "do"},
		{locale: "ja-JP", title: "2026年10月", weekday: "日"},
	}

	for _, tc := range cases {
		t.Run(tc.locale, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.title, MonthTitle(month, tc.locale))
			weekdays := WeekdayNames(tc.locale)
			assert.Len(t, weekdays, 7)
			assert.Equal(t, tc.weekday, weekdays[0])
		})
	}
}

func TestCalendarUsesLocale(t *testing.T) {
	t.Parallel()

	out := ansi.Strip(NewCalendar(CalendarProps{Month: day(2026, time.October, 1), Locale: "de-DE"}).View())
	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], "Oktober 2026")
	assert.Equal(t, "So Mo Di Mi Do Fr Sa", strings.Join(strings.Fields(lines[1]), " "))
}
