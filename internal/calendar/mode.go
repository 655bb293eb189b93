package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Mode is the calendar granularity used for navigation.
type Mode int

const (
	MonthMode Mode = iota
	WeekMode
	DayMode
)

func (m Mode) String() string {
	switch m {
	case MonthMode:
		return "month"
	case WeekMode:
		return "week"
	case DayMode:
		return "day"
	default:
		return ""
	}
}

// ParseMode accepts month, week or day.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "month", "":
		return MonthMode, nil
	case "week":
		return WeekMode, nil
	case "day":
		return DayMode, nil
	default:
		return MonthMode, fmt.Errorf("unknown calendar mode %q", s)
	}
}

// Next advances date by one period of m.
func (m Mode) Next(date time.Time) time.Time {
	return m.shift(date, 1)
}

// Prev moves date back one period of m.
func (m Mode) Prev(date time.Time) time.Time {
	return m.shift(date, -1)
}

func (m Mode) shift(date time.Time, n int) time.Time {
	switch m {
	case WeekMode:
		return date.AddDate(0, 0, 7*n)
	case DayMode:
		return date.AddDate(0, 0, n)
	default:
		return AddMonths(date, n)
	}
}

// AddMonths moves date by n months, clamping the day to the length of the
// target month so Jan 31 + 1 month is the last day of February.
func AddMonths(date time.Time, n int) time.Time {
	first := time.Date(date.Year(), date.Month()+time.Month(n), 1,
		date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
	lastDay := first.AddDate(0, 1, -1).Day()
	day := date.Day()
	if day > lastDay {
		day = lastDay
	}
	return first.AddDate(0, 0, day-1)
}
