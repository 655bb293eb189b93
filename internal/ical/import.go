package ical

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"calnotes/internal/calendar"
	"calnotes/internal/logs"
	"calnotes/internal/notes"

	ics "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"
)

const (
	utcLayout   = "20060102T150405Z"
	localLayout = "20060102T150405"
	dateLayout  = "20060102"

	// maxOccurrences caps the expansion of a single recurring event.
	maxOccurrences = 1000
)

// Import reads a VCALENDAR and returns one draft per event occurrence.
// Recurring events are expanded with their RRULE and EXDATEs inside window;
// with a zero window only their first occurrence is imported. Single events
// outside a non-zero window are skipped. Events that cannot be read are
// logged and skipped.
func Import(r io.Reader, window calendar.DateRange) ([]notes.Draft, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parse calendar: %w", err)
	}

	var drafts []notes.Draft
	for _, ve := range cal.Events() {
		ev, err := parseEvent(ve)
		if err != nil {
			logs.Logger.Warn("skipping unreadable event", "uid", ve.Id(), "err", err)
			continue
		}
		occ, err := occurrences(ev, window)
		if err != nil {
			logs.Logger.Warn("skipping event with bad recurrence", "uid", ve.Id(), "err", err)
			continue
		}
		for _, start := range occ {
			drafts = append(drafts, ev.draftAt(start))
		}
	}

	logs.Logger.Info("calendar import parsed", "events", len(cal.Events()), "notes", len(drafts))
	return drafts, nil
}

type event struct {
	summary     string
	description string
	start       time.Time
	tags        []string
	color       string
	pinned      bool
	completed   bool
	rrule       string
	exdates     []time.Time
	// reminder relative to start, so recurring occurrences keep it
	reminder *time.Duration
}

func (e event) draftAt(start time.Time) notes.Draft {
	d := notes.Draft{
		Title:       e.summary,
		Content:     e.description,
		Date:        start,
		Tags:        append([]string{}, e.tags...),
		Color:       e.color,
		IsPinned:    e.pinned,
		IsCompleted: e.completed,
	}
	if e.reminder != nil {
		r := start.Add(*e.reminder)
		d.Reminder = &r
	}
	return d
}

func parseEvent(ve *ics.VEvent) (event, error) {
	var ev event

	start, err := startOf(ve)
	if err != nil {
		return ev, err
	}
	ev.start = start

	if p := ve.GetProperty(ics.ComponentPropertySummary); p != nil {
		ev.summary = strings.TrimSpace(p.Value)
	}
	if ev.summary == "" {
		ev.summary = "Untitled"
	}
	ev.description = description(ve)

	seen := make(map[string]bool)
	for _, p := range ve.GetProperties(ics.ComponentPropertyCategories) {
		for _, tag := range strings.Split(p.Value, ",") {
			tag = strings.TrimSpace(tag)
			if tag != "" && !seen[tag] {
				seen[tag] = true
				ev.tags = append(ev.tags, tag)
			}
		}
	}

	if p := ve.GetProperty(propColor); p != nil && hexColor.MatchString(p.Value) {
		ev.color = p.Value
	}
	ev.pinned = isTrue(ve.GetProperty(propPinned))
	ev.completed = isTrue(ve.GetProperty(propCompleted))

	if p := ve.GetProperty(ics.ComponentPropertyRrule); p != nil {
		ev.rrule = p.Value
	}
	for _, p := range ve.GetProperties(ics.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			if t, err := parseTime(part); err == nil {
				ev.exdates = append(ev.exdates, t)
			}
		}
	}

	for _, c := range ve.Components {
		alarm, ok := c.(*ics.VAlarm)
		if !ok {
			continue
		}
		if offset, ok := triggerOffset(alarm, start); ok {
			ev.reminder = &offset
			break
		}
	}

	return ev, nil
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func isTrue(p *ics.IANAProperty) bool {
	return p != nil && strings.EqualFold(strings.TrimSpace(p.Value), "TRUE")
}

func startOf(ve *ics.VEvent) (time.Time, error) {
	p := ve.GetProperty(ics.ComponentPropertyDtStart)
	if p == nil {
		return time.Time{}, errors.New("missing DTSTART")
	}
	// all-day values have no time part
	if !strings.Contains(p.Value, "T") {
		return parseTime(p.Value)
	}
	start, err := ve.GetStartAt()
	if err != nil {
		return time.Time{}, err
	}
	return start.Local(), nil
}

// parseTime handles the three basic DATE and DATE-TIME forms.
func parseTime(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return time.Time{}, errors.New("empty time value")
	case strings.HasSuffix(v, "Z"):
		t, err := time.Parse(utcLayout, v)
		return t.Local(), err
	case strings.Contains(v, "T"):
		return time.ParseInLocation(localLayout, v, time.Local)
	default:
		return time.ParseInLocation(dateLayout, v, time.Local)
	}
}

// triggerOffset returns the alarm time relative to start. Absolute
// DATE-TIME triggers and duration triggers relative to the start are
// supported; triggers relative to the end are ignored.
func triggerOffset(alarm *ics.VAlarm, start time.Time) (time.Duration, bool) {
	p := alarm.GetProperty(ics.ComponentPropertyTrigger)
	if p == nil {
		return 0, false
	}
	if vals := p.ICalParameters["VALUE"]; len(vals) > 0 && strings.EqualFold(vals[0], "DATE-TIME") {
		t, err := parseTime(p.Value)
		if err != nil {
			return 0, false
		}
		return t.Sub(start), true
	}
	if rel := p.ICalParameters["RELATED"]; len(rel) > 0 && strings.EqualFold(rel[0], "END") {
		return 0, false
	}
	d, err := parseDuration(p.Value)
	if err != nil {
		return 0, false
	}
	return d, true
}

var durationPattern = regexp.MustCompile(`^([+-])?P(?:(\d+)W)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// parseDuration parses an RFC 5545 dur-value such as -PT15M or P1DT2H.
func parseDuration(s string) (time.Duration, error) {
	m := durationPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil || s == "P" || strings.HasSuffix(s, "T") {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	units := []time.Duration{7 * 24 * time.Hour, 24 * time.Hour, time.Hour, time.Minute, time.Second}
	var d time.Duration
	for i, unit := range units {
		if m[i+2] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+2])
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		d += time.Duration(n) * unit
	}
	if m[1] == "-" {
		d = -d
	}
	return d, nil
}

func occurrences(ev event, window calendar.DateRange) ([]time.Time, error) {
	bounded := !window.Start.IsZero() || !window.End.IsZero()

	if ev.rrule == "" {
		if bounded && !window.Contains(ev.start) {
			return nil, nil
		}
		return []time.Time{ev.start}, nil
	}

	r, err := rrule.StrToRRule(ev.rrule)
	if err != nil {
		return nil, err
	}
	r.DTStart(ev.start)

	var set rrule.Set
	set.RRule(r)
	for _, ex := range ev.exdates {
		set.ExDate(ex.In(ev.start.Location()))
	}

	if !bounded {
		if first := set.After(ev.start, true); !first.IsZero() {
			return []time.Time{first}, nil
		}
		return nil, nil
	}

	times := set.Between(window.Start, window.End, true)
	if len(times) > maxOccurrences {
		logs.Logger.Warn("truncating recurring event", "summary", ev.summary, "cap", maxOccurrences)
		times = times[:maxOccurrences]
	}
	return times, nil
}
