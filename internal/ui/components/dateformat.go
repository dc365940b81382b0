package components

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// DefaultLocale is used when no locale is configured or it cannot be parsed.
const DefaultLocale = "en-US"

// dateLocale holds the date text of one supported locale. titleFormat takes
// the month name and the year as indexed fmt arguments.
type dateLocale struct {
	tag         language.Tag
	layout      string
	titleFormat string
	months      [12]string
	weekdays    [7]string
}

var (
	englishMonths = [12]string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}
	englishWeekdays = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
)

// dateLocales lists the supported locales. The first entry is the fallback.
var dateLocales = []dateLocale{
	{
		tag: language.AmericanEnglish, layout: "1/2/2006", titleFormat: "%[1]s %[2]d",
		months: englishMonths, weekdays: englishWeekdays,
	},
	{
		tag: language.BritishEnglish, layout: "02/01/2006", titleFormat: "%[1]s %[2]d",
		months: englishMonths, weekdays: englishWeekdays,
	},
	{
		tag: language.German, layout: "2.1.2006", titleFormat: "%[1]s %[2]d",
		months: [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember"},
		weekdays: [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	},
	{
		tag: language.French, layout: "02/01/2006", titleFormat: "%[1]s %[2]d",
		months: [12]string{"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		weekdays: [7]string{"di", "lu", "ma", "me", "je", "ve", "sa"},
	},
	{
		tag: language.Japanese, layout: "2006/1/2", titleFormat: "%[2]d年%[1]s",
		months: [12]string{"1月", "2月", "3月", "4月", "5月", "6月",
			"7月", "8月", "9月", "10月", "11月", "12月"},
		weekdays: [7]string{"日", "月", "火", "水", "木", "金", "土"},
	},
	{
		tag: language.Spanish, layout: "2/1/2006", titleFormat: "%[1]s de %[2]d",
		months: [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		weekdays: [7]string{"do", "lu", "ma", "mi", "ju", "vi", "sá"},
	},
}

var dateMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(dateLocales))
	for i, entry := range dateLocales {
		tags[i] = entry.tag
	}
	return language.NewMatcher(tags)
}()

// lookupDateLocale matches a BCP 47 locale to the closest supported one.
func lookupDateLocale(locale string) dateLocale {
	tag, err := language.Parse(locale)
	if err != nil {
		return dateLocales[0]
	}
	_, index, confidence := dateMatcher.Match(tag)
	if confidence == language.No {
		return dateLocales[0]
	}
	return dateLocales[index]
}

// DateLayout returns the short date layout for a BCP 47 locale, matched to
// the closest supported locale.
func DateLayout(locale string) string {
	return lookupDateLocale(locale).layout
}

// FormatDate formats t as a short date for locale.
func FormatDate(t time.Time, locale string) string {
	return t.Format(DateLayout(locale))
}

// MonthTitle names the month and year of t for locale.
func MonthTitle(t time.Time, locale string) string {
	entry := lookupDateLocale(locale)
	return fmt.Sprintf(entry.titleFormat, entry.months[t.Month()-1], t.Year())
}

// WeekdayNames returns short weekday names for locale, Sunday first.
func WeekdayNames(locale string) []string {
	weekdays := lookupDateLocale(locale).weekdays
	return weekdays[:]
}
