package remind

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"calnotes/internal/logs"
	"calnotes/internal/notes"

	"github.com/robfig/cron/v3"
)

// DefaultSchedule checks reminders once a minute.
const DefaultSchedule = "@every 1m"

// Due returns the pending notes whose reminder fell in (since, now], earliest
// reminder first.
func Due(list []notes.Note, now, since time.Time) []notes.Note {
	var due []notes.Note
	for _, n := range list {
		if n.Reminder == nil || n.IsCompleted {
			continue
		}
		if n.Reminder.After(since) && !n.Reminder.After(now) {
			due = append(due, n)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].Reminder.Before(*due[j].Reminder)
	})
	return due
}

// Source supplies the notes to check. *notes.Store satisfies it.
type Source interface {
	List() []notes.Note
}

// Watcher runs Due on a cron schedule and hands every non-empty result to a
// callback. Each reminder is reported once: the window starts where the
// previous check ended.
type Watcher struct {
	src    Source
	notify func([]notes.Note)
	now    func() time.Time
	cron   *cron.Cron

	mu   sync.Mutex
	last time.Time
}

// NewWatcher validates schedule (standard five-field cron or a descriptor
// such as "@every 1m"). The first window starts at the time of creation.
func NewWatcher(src Source, schedule string, notify func([]notes.Note)) (*Watcher, error) {
	return newWatcher(src, schedule, notify, time.Now)
}

func newWatcher(src Source, schedule string, notify func([]notes.Note), now func() time.Time) (*Watcher, error) {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	w := &Watcher{
		src:    src,
		notify: notify,
		now:    now,
		last:   now(),
		cron:   cron.New(),
	}
	if _, err := w.cron.AddFunc(schedule, func() { w.Check() }); err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", schedule, err)
	}
	return w, nil
}

// Check reports the reminders due since the previous check.
func (w *Watcher) Check() []notes.Note {
	w.mu.Lock()
	now := w.now()
	since := w.last
	w.last = now
	w.mu.Unlock()

	due := Due(w.src.List(), now, since)
	if len(due) > 0 {
		logs.Logger.Info("reminders due", "count", len(due))
		if w.notify != nil {
			w.notify(due)
		}
	}
	return due
}

// Run checks on schedule until ctx is done, then waits for a running check
// to finish.
func (w *Watcher) Run(ctx context.Context) error {
	w.cron.Start()
	<-ctx.Done()
	<-w.cron.Stop().Done()
	return ctx.Err()
}
