package ical

import (
	"io"
	"time"

	"calnotes/internal/notes"

	ics "github.com/arran4/golang-ical"
)

const (
	prodID = "-//calnotes//calnotes//EN"

	propColor     = ics.ComponentProperty("COLOR")
	propPinned    = ics.ComponentProperty("X-CALNOTES-PINNED")
	propCompleted = ics.ComponentProperty("X-CALNOTES-COMPLETED")

	uidSuffix = "@calnotes"
)

// Export writes list as a VCALENDAR with one VEVENT per note. Tags become
// CATEGORIES, the reminder becomes a DISPLAY VALARM with an absolute trigger.
func Export(w io.Writer, list []notes.Note, now time.Time) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(prodID)

	for _, n := range list {
		ev := cal.AddEvent(n.ID + uidSuffix)
		ev.SetDtStampTime(now)
		ev.SetCreatedTime(n.CreatedAt)
		ev.SetModifiedAt(n.UpdatedAt)
		ev.SetStartAt(n.Date)
		ev.SetSummary(n.Title)
		if n.Content != "" {
			ev.SetDescription(n.Content)
		}
		for _, tag := range n.Tags {
			ev.AddProperty(ics.ComponentPropertyCategories, tag)
		}
		if n.Color != "" {
			ev.SetProperty(propColor, n.Color)
		}
		if n.IsPinned {
			ev.SetProperty(propPinned, "TRUE")
		}
		if n.IsCompleted {
			ev.SetProperty(propCompleted, "TRUE")
		}
		if n.Reminder != nil {
			alarm := ev.AddAlarm()
			alarm.SetAction(ics.ActionDisplay)
			alarm.SetProperty(ics.ComponentPropertyDescription, n.Title)
			alarm.SetProperty(ics.ComponentPropertyTrigger, n.Reminder.UTC().Format(utcLayout),
				&ics.KeyValues{Key: "VALUE", Value: []string{"DATE-TIME"}})
		}
	}

	return cal.SerializeTo(w)
}
