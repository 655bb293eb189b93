package i18n

import (
	"strings"
	"time"
)

// Locale selects both the UI language and the date/time formatting rules.
type Locale string

const (
	TR Locale = "tr"
	EN Locale = "en"
)

// Default is used when no locale is stored or the stored value is invalid.
const Default = TR

// Parse accepts "tr" or "en" (case-insensitive). The bool is false for any
// other input, in which case Default is returned.
func Parse(s string) (Locale, bool) {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case TR:
		return TR, true
	case EN:
		return EN, true
	}
	return Default, false
}

func (l Locale) String() string {
	return string(l)
}

// Rules is the formatting table for one locale.
type Rules struct {
	ClockLayout   string // Go layout for time-of-day
	DateLayout    string // Go layout for a long date, month/day names substituted
	Months        [12]string
	WeekdaysShort [7]string // Monday first
	WeekdaysLong  [7]string // Monday first
	Strings       map[Key]string
}

var rules = map[Locale]Rules{
	TR: {
		ClockLayout: "15:04",
		DateLayout:  "2 January 2006",
		Months: [12]string{
			"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
			"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
		},
		WeekdaysShort: [7]string{"Pzt", "Sal", "Çar", "Per", "Cum", "Cmt", "Paz"},
		WeekdaysLong: [7]string{
			"Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi", "Pazar",
		},
		Strings: trStrings,
	},
	EN: {
		ClockLayout: "3:04 PM",
		DateLayout:  "January 2, 2006",
		Months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		WeekdaysShort: [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		WeekdaysLong: [7]string{
			"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
		},
		Strings: enStrings,
	},
}

// For returns the rules for l, falling back to Default for unknown locales.
func For(l Locale) Rules {
	if r, ok := rules[l]; ok {
		return r
	}
	return rules[Default]
}

// T looks up a translated string. Unknown keys are returned verbatim so tag
// names without a translation still render.
func T(l Locale, key Key) string {
	if s, ok := For(l).Strings[key]; ok {
		return s
	}
	return string(key)
}

// WeekdayIndex maps a time.Weekday onto a Monday-first index (0..6).
func WeekdayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
