package calendar

import (
	"time"

	"calnotes/internal/notes"
	"calnotes/internal/query"
	"calnotes/internal/timeutil"
)

// Day is one cell of a calendar view.
type Day struct {
	Date           time.Time
	IsCurrentMonth bool
	IsToday        bool
	IsSelected     bool
	Notes          []notes.Note
}

// Week is seven days, Monday first.
type Week [7]Day

// Month is the full-week grid covering one month.
type Month struct {
	Month time.Month
	Year  int
	Weeks []Week
}

// MonthIndex returns the month as 0-11.
func (m Month) MonthIndex() int {
	return int(m.Month) - 1
}

// Days flattens the grid.
func (m Month) Days() []Day {
	days := make([]Day, 0, len(m.Weeks)*7)
	for _, w := range m.Weeks {
		days = append(days, w[:]...)
	}
	return days
}

// Select marks the cell matching date, clearing any previous selection.
func (m *Month) Select(date time.Time) {
	for wi := range m.Weeks {
		for di := range m.Weeks[wi] {
			d := &m.Weeks[wi][di]
			d.IsSelected = timeutil.SameDay(d.Date, date)
		}
	}
}

// Find returns the position of date in the grid.
func (m Month) Find(date time.Time) (week, day int, ok bool) {
	for wi, w := range m.Weeks {
		for di, d := range w {
			if timeutil.SameDay(d.Date, date) {
				return wi, di, true
			}
		}
	}
	return 0, 0, false
}

// GroupByDate indexes notes by the local calendar day of their Date, keyed
// with timeutil.DateKey. Each bucket keeps input order.
func GroupByDate(list []notes.Note) map[string][]notes.Note {
	byDate := make(map[string][]notes.Note)
	for _, n := range list {
		key := n.Date.Format(timeutil.DateKey)
		byDate[key] = append(byDate[key], n)
	}
	return byDate
}

// BuildMonthGrid lays out the month containing ref as whole Monday-first
// weeks. The time of day of ref is ignored; now decides IsToday.
func BuildMonthGrid(ref time.Time, list []notes.Note, now time.Time) Month {
	byDate := GroupByDate(list)
	grid := GridRange(ref)

	m := Month{Month: ref.Month(), Year: ref.Year()}
	day := grid.Start
	for !day.After(grid.End) {
		var w Week
		for i := range w {
			w[i] = newDay(day, ref, now, byDate)
			day = day.AddDate(0, 0, 1)
		}
		m.Weeks = append(m.Weeks, w)
	}
	return m
}

// BuildWeek lays out the Monday-first week containing ref. IsCurrentMonth is
// relative to the month of ref.
func BuildWeek(ref time.Time, list []notes.Note, now time.Time) Week {
	byDate := GroupByDate(list)
	day := WeekRange(ref).Start

	var w Week
	for i := range w {
		w[i] = newDay(day, ref, now, byDate)
		day = day.AddDate(0, 0, 1)
	}
	return w
}

// HourSlot holds the notes of one hour of a day.
type HourSlot struct {
	Hour  int
	Notes []notes.Note
}

// Schedule is a single day split into 24 hour slots.
type Schedule struct {
	Day   Day
	Hours [24]HourSlot
}

// BuildDay buckets the notes of ref's day by hour.
func BuildDay(ref time.Time, list []notes.Note, now time.Time) Schedule {
	s := Schedule{Day: newDay(timeutil.StartOfDay(ref), ref, now, GroupByDate(list))}
	for h := range s.Hours {
		s.Hours[h] = HourSlot{Hour: h, Notes: query.NotesForHour(s.Day.Notes, h)}
	}
	return s
}

func newDay(day, ref, now time.Time, byDate map[string][]notes.Note) Day {
	return Day{
		Date:           day,
		IsCurrentMonth: day.Year() == ref.Year() && day.Month() == ref.Month(),
		IsToday:        timeutil.SameDay(day, now),
		Notes:          byDate[day.Format(timeutil.DateKey)],
	}
}
