package calendar

import (
	"time"

	"calnotes/internal/timeutil"
)

// DateRange represents a range of dates for querying. End is the last
// instant included.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Days returns the number of calendar days covered.
func (r DateRange) Days() int {
	n := 0
	for d := timeutil.StartOfDay(r.Start); !d.After(r.End); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}

// DayRange returns a DateRange for a single day
func DayRange(date time.Time) DateRange {
	start := timeutil.StartOfDay(date)
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return DateRange{Start: start, End: end}
}

// WeekRange returns a DateRange for the week containing the given date (Mon-Sun)
func WeekRange(date time.Time) DateRange {
	start := mondayOnOrBefore(date)
	end := start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return DateRange{Start: start, End: end}
}

// MonthRange returns a DateRange for the entire month containing the given date
func MonthRange(date time.Time) DateRange {
	start := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return DateRange{Start: start, End: end}
}

// GridRange returns the span rendered by a month grid: the Monday on or
// before the first of the month through the Sunday on or after its last day.
func GridRange(date time.Time) DateRange {
	month := MonthRange(date)
	start := mondayOnOrBefore(month.Start)
	last := timeutil.StartOfDay(month.End)
	end := sundayOnOrAfter(last).AddDate(0, 0, 1).Add(-time.Nanosecond)
	return DateRange{Start: start, End: end}
}

func mondayOnOrBefore(date time.Time) time.Time {
	day := timeutil.StartOfDay(date)
	// Monday=0 ... Sunday=6
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func sundayOnOrAfter(date time.Time) time.Time {
	day := timeutil.StartOfDay(date)
	offset := (7 - int(day.Weekday())) % 7
	return day.AddDate(0, 0, offset)
}
