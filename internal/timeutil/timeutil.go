package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"calnotes/internal/i18n"
)

// DateKey is the layout used to key notes by calendar day.
const DateKey = "2006-01-02"

// StartOfDay truncates t to local midnight of its calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b share year, month and day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// FormatClock renders the time-of-day of t: 24-hour "HH:mm" for tr,
// 12-hour "h:mm AM/PM" for en.
func FormatClock(t time.Time, locale i18n.Locale) string {
	return t.Format(i18n.For(locale).ClockLayout)
}

// FormatDate renders a long date with month names from the locale table.
func FormatDate(t time.Time, locale i18n.Locale) string {
	r := i18n.For(locale)
	s := t.Format(r.DateLayout)
	return strings.Replace(s, t.Month().String(), r.Months[t.Month()-1], 1)
}

// FormatDateTime renders "<date> <clock>".
func FormatDateTime(t time.Time, locale i18n.Locale) string {
	return FormatDate(t, locale) + " " + FormatClock(t, locale)
}

// FormatMonthTitle renders a month heading such as "Temmuz 2025".
func FormatMonthTitle(t time.Time, locale i18n.Locale) string {
	return MonthName(t.Month(), locale) + " " + strconv.Itoa(t.Year())
}

// MonthName returns the localized month name.
func MonthName(m time.Month, locale i18n.Locale) string {
	return i18n.For(locale).Months[m-1]
}

// WeekdayShort returns the abbreviated localized weekday name.
func WeekdayShort(d time.Weekday, locale i18n.Locale) string {
	return i18n.For(locale).WeekdaysShort[i18n.WeekdayIndex(d)]
}

// WeekdayLong returns the full localized weekday name.
func WeekdayLong(d time.Weekday, locale i18n.Locale) string {
	return i18n.For(locale).WeekdaysLong[i18n.WeekdayIndex(d)]
}

// Hours enumerates "00".."23".
func Hours() []string {
	hours := make([]string, 24)
	for i := range hours {
		hours[i] = fmt.Sprintf("%02d", i)
	}
	return hours
}

// Minutes enumerates minute marks in steps of step, starting at "00".
// A step outside 1..60 is treated as 5.
func Minutes(step int) []string {
	if step <= 0 || step > 60 {
		step = 5
	}
	var minutes []string
	for m := 0; m < 60; m += step {
		minutes = append(minutes, fmt.Sprintf("%02d", m))
	}
	return minutes
}

// ParseClock parses "HH:mm" (24-hour).
func ParseClock(s string) (int, int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid time %q: expected HH:mm", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h, m, nil
}

// Combine places the clock value onto the calendar day of date.
func Combine(date time.Time, clock string) (time.Time, error) {
	h, m, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location()), nil
}

// ParseDate parses "YYYY-MM-DD" in the local zone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateKey, strings.TrimSpace(s), time.Local)
}

// At places the clock of now, rounded down to step minutes, onto day.
func At(day, now time.Time, step int) time.Time {
	if step <= 0 {
		step = 1
	}
	now = now.Local()
	return time.Date(day.Year(), day.Month(), day.Day(), now.Hour(), now.Minute()-now.Minute()%step, 0, 0, time.Local)
}

// ParseReminder accepts a clock on the note's day, a full local date-time
// ("YYYY-MM-DD HH:mm"), a lead time before the note such as "15m", or "none".
// Empty and "none" mean no reminder.
func ParseReminder(s string, date time.Time) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return nil, nil
	}
	if lead, err := time.ParseDuration(s); err == nil {
		r := date.Add(-lead)
		return &r, nil
	}
	if t, err := time.ParseInLocation(DateKey+" 15:04", s, time.Local); err == nil {
		return &t, nil
	}
	t, err := Combine(date, s)
	if err != nil {
		return nil, fmt.Errorf("invalid reminder %q", s)
	}
	return &t, nil
}
