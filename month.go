package charts

import (
	"math"

	"golang.org/x/text/language"
)

var supportedLocales = []language.Tag{
	language.English,
	language.French,
	language.Spanish,
	language.Arabic,
}

var localeMatcher = language.NewMatcher(supportedLocales)

var monthNames = [][12]string{
	{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	{"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو", "يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر"},
}

var monthShorts = [][12]string{
	{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
	{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
	{"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو", "يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر"},
}

// MonthName returns the full name of the month at index (0 for January) in
// the given locale. Unknown locales fall back to English.
func MonthName(index int, locale string) string {
	return monthIn(monthNames, index, locale)
}

func MonthShort(index int, locale string) string {
	return monthIn(monthShorts, index, locale)
}

// MonthFormatter formats tick values as short month names.
func MonthFormatter(locale string) Formatter {
	return func(f float64) string {
		return MonthShort(int(math.Round(f)), locale)
	}
}

func monthIn(table [][12]string, index int, locale string) string {
	if index < 0 || index >= 12 {
		return ""
	}
	return table[matchLocale(locale)][index]
}

func matchLocale(locale string) int {
	tag, err := language.Parse(locale)
	if err != nil {
		return 0
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return 0
	}
	return idx
}

func localeTag(locale string) language.Tag {
	return supportedLocales[matchLocale(locale)]
}
