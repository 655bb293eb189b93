package notes

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"calnotes/internal/logs"
	"calnotes/internal/timeutil"

	"github.com/oklog/ulid/v2"
)

// EventType names the kind of mutation reported to Options.OnChange.
type EventType int

const (
	Added EventType = iota
	Updated
	Deleted
)

func (t EventType) String() string {
	switch t {
	case Added:
		return "added"
	case Updated:
		return "updated"
	case Deleted:
		return "deleted"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// Event describes a mutation that has been saved.
type Event struct {
	Type EventType
	Note Note
}

// Options configure a Store. The zero value is usable.
type Options struct {
	// Strict makes Update, Delete and the toggles return *NotFoundError
	// for unknown ids. When false they are no-ops.
	Strict bool
	// Now defaults to time.Now.
	Now func() time.Time
	// IDs defaults to ULIDs.
	IDs func() string
	// OnChange is called after every successful save, outside the lock.
	OnChange func(Event)
}

// Store owns the canonical note collection. Every mutation builds the next
// collection, saves it, and only then makes it visible, so a failed save
// leaves both memory and storage at the previous state.
type Store struct {
	mu      sync.RWMutex
	notes   []Note
	persist Persistence
	opts    Options
}

// Open loads the collection from p. Missing data seeds and saves the welcome
// note. Data that fails to decode is logged and replaced by the welcome note
// in memory only; the stored value is left for inspection until the next
// mutation overwrites it.
func Open(p Persistence, opts Options) (*Store, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.IDs == nil {
		opts.IDs = func() string { return ulid.Make().String() }
	}
	s := &Store{persist: p, opts: opts}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces the in-memory collection with the persisted one.
func (s *Store) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, found, err := s.persist.Load()
	if err != nil {
		return fmt.Errorf("load notes: %w", err)
	}

	if !found {
		seed := []Note{Welcome(s.opts.IDs(), s.opts.Now())}
		if err := s.save(seed); err != nil {
			return err
		}
		s.notes = seed
		logs.Logger.Info("seeded empty note store")
		return nil
	}

	list, err := Decode(data)
	if err != nil {
		logs.Logger.Error("failed to parse saved notes, using welcome note", "err", err)
		s.notes = []Note{Welcome(s.opts.IDs(), s.opts.Now())}
		return nil
	}

	s.notes = list
	logs.Logger.Debug("loaded notes", "count", len(list))
	return nil
}

func (s *Store) save(list []Note) error {
	data, err := Encode(list)
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}
	if err := s.persist.Save(data); err != nil {
		return fmt.Errorf("save notes: %w", err)
	}
	return nil
}

func (s *Store) emit(t EventType, n Note) {
	if s.opts.OnChange != nil {
		s.opts.OnChange(Event{Type: t, Note: n.Clone()})
	}
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.notes, func(n Note) bool { return n.ID == id })
}

func (s *Store) notFound(id string) error {
	if s.opts.Strict {
		return &NotFoundError{ID: id}
	}
	logs.Logger.Debug("ignoring mutation of unknown note", "id", id)
	return nil
}

// Add validates d and appends a new note with a fresh id and
// CreatedAt == UpdatedAt == now.
func (s *Store) Add(d Draft) (Note, error) {
	d = d.Normalize()
	if err := Validate(d); err != nil {
		return Note{}, err
	}

	s.mu.Lock()
	now := s.opts.Now()
	n := Note{ID: s.opts.IDs(), CreatedAt: now, UpdatedAt: now}
	if s.indexOf(n.ID) >= 0 {
		s.mu.Unlock()
		return Note{}, fmt.Errorf("duplicate note id %s", n.ID)
	}
	n.apply(d)

	next := append(slices.Clone(s.notes), n)
	if err := s.save(next); err != nil {
		s.mu.Unlock()
		return Note{}, err
	}
	s.notes = next
	s.mu.Unlock()

	logs.Logger.Info("note added", "id", n.ID, "title", n.Title)
	s.emit(Added, n)
	return n.Clone(), nil
}

// Update replaces every field of the stored note with id n.ID except the id
// and CreatedAt, and moves UpdatedAt strictly forward. With a lenient store
// an unknown id returns the zero Note and nil.
func (s *Store) Update(n Note) (Note, error) {
	d := n.Draft().Normalize()
	if err := Validate(d); err != nil {
		return Note{}, err
	}
	return s.mutate(n.ID, func(cur *Note) { cur.apply(d) })
}

// TogglePin flips IsPinned through a full update.
func (s *Store) TogglePin(id string) (Note, error) {
	return s.mutate(id, func(cur *Note) { cur.IsPinned = !cur.IsPinned })
}

// ToggleComplete flips IsCompleted through a full update.
func (s *Store) ToggleComplete(id string) (Note, error) {
	return s.mutate(id, func(cur *Note) { cur.IsCompleted = !cur.IsCompleted })
}

func (s *Store) mutate(id string, change func(*Note)) (Note, error) {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return Note{}, s.notFound(id)
	}

	prev := s.notes[i]
	cur := prev.Clone()
	change(&cur)
	cur.ID = prev.ID
	cur.CreatedAt = prev.CreatedAt
	cur.UpdatedAt = s.opts.Now()
	if !cur.UpdatedAt.After(prev.UpdatedAt) {
		cur.UpdatedAt = prev.UpdatedAt.Add(time.Millisecond)
	}

	next := slices.Clone(s.notes)
	next[i] = cur
	if err := s.save(next); err != nil {
		s.mu.Unlock()
		return Note{}, err
	}
	s.notes = next
	s.mu.Unlock()

	logs.Logger.Info("note updated", "id", cur.ID)
	s.emit(Updated, cur)
	return cur.Clone(), nil
}

// Delete removes the note with id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return s.notFound(id)
	}

	removed := s.notes[i]
	next := slices.Delete(slices.Clone(s.notes), i, i+1)
	if err := s.save(next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.notes = next
	s.mu.Unlock()

	logs.Logger.Info("note deleted", "id", id)
	s.emit(Deleted, removed)
	return nil
}

// Get returns a copy of the note with id.
func (s *Store) Get(id string) (Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return Note{}, &NotFoundError{ID: id}
	}
	return s.notes[i].Clone(), nil
}

// List returns a copy of the collection in stored order.
func (s *Store) List() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(func(Note) bool { return true })
}

// Len returns the number of notes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// NotesOnDate returns the notes whose Date falls on the same local calendar
// day as date, in stored order.
func (s *Store) NotesOnDate(date time.Time) []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(func(n Note) bool { return timeutil.SameDay(n.Date, date) })
}

// NotesInRange returns the notes with start <= Date < end, in stored order.
func (s *Store) NotesInRange(start, end time.Time) []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(func(n Note) bool {
		return !n.Date.Before(start) && n.Date.Before(end)
	})
}

// Tags returns every distinct tag in first-seen order.
func (s *Store) Tags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tags []string
	seen := make(map[string]bool)
	for _, n := range s.notes {
		for _, t := range n.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags
}

func (s *Store) filter(keep func(Note) bool) []Note {
	out := make([]Note, 0, len(s.notes))
	for _, n := range s.notes {
		if keep(n) {
			out = append(out, n.Clone())
		}
	}
	return out
}

// IsNotFound reports whether err came from an unknown note id.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
