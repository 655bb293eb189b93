package calendar

import (
	"testing"
	"time"

	"calnotes/internal/notes"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func noteAt(id string, t time.Time) notes.Note {
	return notes.Note{ID: id, Title: id, Date: t}
}

func TestDayRange(t *testing.T) {
	dr := DayRange(date(2026, 2, 6).Add(15 * time.Hour))
	if dr.Start.Day() != 6 || dr.Start.Month() != 2 || dr.Start.Hour() != 0 {
		t.Errorf("expected start Feb 6 00:00, got %v", dr.Start)
	}
	if dr.End.Day() != 6 || dr.End.Month() != 2 {
		t.Errorf("expected end Feb 6, got %v", dr.End)
	}
	if dr.Days() != 1 {
		t.Errorf("expected 1 day, got %d", dr.Days())
	}
}

func TestWeekRange(t *testing.T) {
	// Feb 6, 2026 is a Friday
	dr := WeekRange(date(2026, 2, 6))
	if dr.Start.Weekday() != time.Monday {
		t.Errorf("expected start on Monday, got %v", dr.Start.Weekday())
	}
	if dr.Start.Day() != 2 {
		t.Errorf("expected start Feb 2, got Feb %d", dr.Start.Day())
	}
	if dr.End.Day() != 8 {
		t.Errorf("expected end Feb 8, got Feb %d", dr.End.Day())
	}

	// Sunday belongs to the week that started the Monday before
	dr = WeekRange(date(2026, 2, 8))
	if dr.Start.Day() != 2 {
		t.Errorf("expected Sunday Feb 8 to start on Feb 2, got Feb %d", dr.Start.Day())
	}
}

func TestMonthRange(t *testing.T) {
	dr := MonthRange(date(2026, 2, 15))
	if dr.Start.Day() != 1 {
		t.Errorf("expected start Feb 1, got %v", dr.Start)
	}
	if dr.End.Month() != 2 || dr.End.Day() != 28 {
		t.Errorf("expected end Feb 28, got %v", dr.End)
	}
}

func TestBuildMonthGrid_July2025(t *testing.T) {
	ref := time.Date(2025, time.July, 15, 13, 45, 0, 0, time.Local)
	m := BuildMonthGrid(ref, nil, ref)

	if m.Month != time.July || m.MonthIndex() != 6 || m.Year != 2025 {
		t.Fatalf("expected July (6) 2025, got %v (%d) %d", m.Month, m.MonthIndex(), m.Year)
	}

	days := m.Days()
	first, last := days[0].Date, days[len(days)-1].Date
	if !first.Equal(date(2025, time.June, 30)) {
		t.Errorf("expected grid to start Mon Jun 30 2025, got %v", first)
	}
	if !last.Equal(date(2025, time.August, 3)) {
		t.Errorf("expected grid to end Sun Aug 3 2025, got %v", last)
	}
	if len(m.Weeks) != 5 {
		t.Errorf("expected 5 weeks, got %d", len(m.Weeks))
	}

	for _, d := range days {
		inJuly := d.Date.Month() == time.July
		if d.IsCurrentMonth != inJuly {
			t.Errorf("%s: IsCurrentMonth=%v", d.Date.Format("2006-01-02"), d.IsCurrentMonth)
		}
		if d.IsToday != (d.Date.Day() == 15 && inJuly) {
			t.Errorf("%s: IsToday=%v", d.Date.Format("2006-01-02"), d.IsToday)
		}
		if d.IsSelected {
			t.Errorf("%s: selection should default to false", d.Date.Format("2006-01-02"))
		}
	}
}

func TestBuildMonthGrid_AllMonthsAreWeekAligned(t *testing.T) {
	now := date(2025, time.July, 15)
	for year := 2023; year <= 2028; year++ {
		for month := time.January; month <= time.December; month++ {
			m := BuildMonthGrid(date(year, month, 10), nil, now)
			days := m.Days()

			if len(days)%7 != 0 {
				t.Fatalf("%d-%02d: %d days is not week aligned", year, month, len(days))
			}
			if days[0].Date.Weekday() != time.Monday {
				t.Errorf("%d-%02d: first day is %v", year, month, days[0].Date.Weekday())
			}
			if days[len(days)-1].Date.Weekday() != time.Sunday {
				t.Errorf("%d-%02d: last day is %v", year, month, days[len(days)-1].Date.Weekday())
			}

			// no gaps and the whole month is covered
			inMonth := 0
			for i, d := range days {
				if i > 0 && !d.Date.Equal(days[i-1].Date.AddDate(0, 0, 1)) {
					t.Fatalf("%d-%02d: gap after %v", year, month, days[i-1].Date)
				}
				if d.IsCurrentMonth {
					inMonth++
				}
			}
			if want := MonthRange(date(year, month, 1)).Days(); inMonth != want {
				t.Errorf("%d-%02d: expected %d current-month days, got %d", year, month, want, inMonth)
			}
		}
	}
}

func TestBuildMonthGrid_PlacesNotesBySameDay(t *testing.T) {
	list := []notes.Note{
		noteAt("late", time.Date(2025, time.July, 15, 23, 59, 0, 0, time.Local)),
		noteAt("early", time.Date(2025, time.July, 15, 0, 1, 0, 0, time.Local)),
		noteAt("overflow", time.Date(2025, time.August, 2, 12, 0, 0, 0, time.Local)),
		noteAt("outside", time.Date(2025, time.September, 1, 12, 0, 0, 0, time.Local)),
	}
	m := BuildMonthGrid(date(2025, time.July, 1), list, date(2025, time.July, 1))

	wi, di, ok := m.Find(date(2025, time.July, 15))
	if !ok {
		t.Fatal("July 15 not in grid")
	}
	got := m.Weeks[wi][di].Notes
	if len(got) != 2 || got[0].ID != "late" || got[1].ID != "early" {
		t.Errorf("expected [late early] in stored order, got %v", got)
	}

	wi, di, _ = m.Find(date(2025, time.August, 2))
	if n := m.Weeks[wi][di].Notes; len(n) != 1 || n[0].ID != "overflow" {
		t.Errorf("expected overflow note on Aug 2, got %v", n)
	}

	total := 0
	for _, d := range m.Days() {
		total += len(d.Notes)
	}
	if total != 3 {
		t.Errorf("expected 3 placed notes, got %d", total)
	}
}

func TestMonth_Select(t *testing.T) {
	m := BuildMonthGrid(date(2025, time.July, 1), nil, date(2025, time.July, 1))
	m.Select(date(2025, time.July, 4))
	m.Select(date(2025, time.July, 9))

	selected := 0
	for _, d := range m.Days() {
		if d.IsSelected {
			selected++
			if d.Date.Day() != 9 {
				t.Errorf("unexpected selection %v", d.Date)
			}
		}
	}
	if selected != 1 {
		t.Errorf("expected exactly 1 selected day, got %d", selected)
	}
}

func TestBuildWeek(t *testing.T) {
	// Thu Jul 31 2025: the week spans into August
	w := BuildWeek(date(2025, time.July, 31), []notes.Note{noteAt("aug1", date(2025, time.August, 1).Add(8*time.Hour))}, date(2025, time.July, 31))

	if !w[0].Date.Equal(date(2025, time.July, 28)) || !w[6].Date.Equal(date(2025, time.August, 3)) {
		t.Errorf("expected Jul 28 - Aug 3, got %v - %v", w[0].Date, w[6].Date)
	}
	if !w[3].IsToday || !w[3].IsCurrentMonth {
		t.Errorf("expected Jul 31 to be today and in month, got %+v", w[3])
	}
	if w[4].IsCurrentMonth || len(w[4].Notes) != 1 {
		t.Errorf("expected Aug 1 outside month with 1 note, got %+v", w[4])
	}
}

func TestBuildDay_HourSlots(t *testing.T) {
	day := date(2025, time.July, 15)
	list := []notes.Note{
		noteAt("nine", day.Add(9*time.Hour)),
		noteAt("nine-thirty", day.Add(9*time.Hour+30*time.Minute)),
		noteAt("fourteen", day.Add(14*time.Hour)),
		noteAt("tomorrow", day.AddDate(0, 0, 1).Add(9*time.Hour)),
	}
	s := BuildDay(day.Add(20*time.Hour), list, day)

	if !s.Day.IsToday {
		t.Error("expected day to be today")
	}
	if len(s.Day.Notes) != 3 {
		t.Errorf("expected 3 notes on the day, got %d", len(s.Day.Notes))
	}
	for h, slot := range s.Hours {
		if slot.Hour != h {
			t.Errorf("slot %d has hour %d", h, slot.Hour)
		}
	}
	if len(s.Hours[9].Notes) != 2 || len(s.Hours[14].Notes) != 1 || len(s.Hours[10].Notes) != 0 {
		t.Errorf("unexpected hour buckets: 9=%d 14=%d 10=%d", len(s.Hours[9].Notes), len(s.Hours[14].Notes), len(s.Hours[10].Notes))
	}
}

func TestGroupByDate(t *testing.T) {
	list := []notes.Note{
		noteAt("a", date(2025, time.July, 1).Add(time.Hour)),
		noteAt("b", date(2025, time.July, 2)),
		noteAt("c", date(2025, time.July, 1).Add(20*time.Hour)),
	}
	g := GroupByDate(list)
	if len(g) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(g))
	}
	if got := g["2025-07-01"]; len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("unexpected bucket for Jul 1: %v", got)
	}
}

func TestQueryAgenda(t *testing.T) {
	list := []notes.Note{
		noteAt("t1", date(2026, 2, 2).Add(9*time.Hour)),
		noteAt("t2", date(2026, 2, 5).Add(9*time.Hour)),
		noteAt("t3", date(2026, 2, 8).Add(9*time.Hour)),
		noteAt("t4", date(2026, 2, 10).Add(9*time.Hour)), // out of range
	}
	list[1].IsCompleted = true

	buckets := QueryAgenda(list, WeekRange(date(2026, 2, 6)))

	if len(buckets) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(buckets))
	}
	for i := 0; i < len(buckets)-1; i++ {
		if !buckets[i].Date.Before(buckets[i+1].Date) {
			t.Errorf("buckets not in chronological order: %v >= %v", buckets[i].Date, buckets[i+1].Date)
		}
	}
	if len(buckets[1].Completed) != 1 || len(buckets[1].Notes) != 0 {
		t.Errorf("expected completed note separated, got %+v", buckets[1])
	}
	if buckets[1].TotalCount() != 1 || len(buckets[1].AllItems()) != 1 {
		t.Errorf("unexpected totals for %+v", buckets[1])
	}
}

func TestMode_Navigation(t *testing.T) {
	jan31 := date(2025, time.January, 31)

	if got := MonthMode.Next(jan31); !got.Equal(date(2025, time.February, 28)) {
		t.Errorf("Jan 31 + 1 month: expected Feb 28, got %v", got)
	}
	if got := MonthMode.Prev(date(2025, time.March, 31)); !got.Equal(date(2025, time.February, 28)) {
		t.Errorf("Mar 31 - 1 month: expected Feb 28, got %v", got)
	}
	if got := MonthMode.Next(date(2025, time.December, 15)); !got.Equal(date(2026, time.January, 15)) {
		t.Errorf("Dec 15 + 1 month: expected Jan 15 2026, got %v", got)
	}
	if got := WeekMode.Next(jan31); !got.Equal(date(2025, time.February, 7)) {
		t.Errorf("week next: got %v", got)
	}
	if got := DayMode.Prev(date(2025, time.March, 1)); !got.Equal(date(2025, time.February, 28)) {
		t.Errorf("day prev: got %v", got)
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"month": MonthMode, "WEEK": WeekMode, " day ": DayMode, "": MonthMode} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseMode("year"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
