package notes

import (
	"slices"
	"time"
)

// DefaultColor is applied to notes saved without a color.
const DefaultColor = "#3498db"

// ColorOption is a named entry of the note color palette.
type ColorOption struct {
	Name  string
	Value string
}

// Palette lists the colors offered by the editor, in display order.
var Palette = []ColorOption{
	{Name: "Blue", Value: "#3498db"},
	{Name: "Green", Value: "#2ecc71"},
	{Name: "Purple", Value: "#9b59b6"},
	{Name: "Orange", Value: "#e67e22"},
	{Name: "Red", Value: "#e74c3c"},
	{Name: "Yellow", Value: "#f1c40f"},
	{Name: "Gray", Value: "#95a5a6"},
	{Name: "Pink", Value: "#D946EF"},
	{Name: "Teal", Value: "#0D9488"},
}

// TagOptions are the suggested tags shown by the editor.
var TagOptions = []string{"work", "personal", "important", "meeting", "reminder", "idea", "task"}

// Note is a user-authored record anchored to a date and time.
type Note struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Date        time.Time  `json:"date"`
	Tags        []string   `json:"tags"`
	Color       string     `json:"color"`
	Reminder    *time.Time `json:"reminder"`
	IsPinned    bool       `json:"isPinned"`
	IsCompleted bool       `json:"isCompleted"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Draft holds the caller-supplied fields of a note. The store assigns the id
// and timestamps.
type Draft struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Content     string     `json:"content" validate:"max=20000"`
	Date        time.Time  `json:"date" validate:"required"`
	Tags        []string   `json:"tags" validate:"unique,dive,required,max=40"`
	Color       string     `json:"color" validate:"omitempty,hexcolor"`
	Reminder    *time.Time `json:"reminder"`
	IsPinned    bool       `json:"isPinned"`
	IsCompleted bool       `json:"isCompleted"`
}

// Draft returns the mutable fields of n, deep-copied.
func (n Note) Draft() Draft {
	return Draft{
		Title:       n.Title,
		Content:     n.Content,
		Date:        n.Date,
		Tags:        slices.Clone(n.Tags),
		Color:       n.Color,
		Reminder:    cloneTime(n.Reminder),
		IsPinned:    n.IsPinned,
		IsCompleted: n.IsCompleted,
	}
}

// Clone returns a deep copy of n so callers cannot alias store state.
func (n Note) Clone() Note {
	c := n
	c.Tags = slices.Clone(n.Tags)
	c.Reminder = cloneTime(n.Reminder)
	return c
}

// HasTag reports whether n carries tag.
func (n Note) HasTag(tag string) bool {
	return slices.Contains(n.Tags, tag)
}

// apply copies the draft's fields onto n, leaving id and timestamps alone.
func (n *Note) apply(d Draft) {
	n.Title = d.Title
	n.Content = d.Content
	n.Date = d.Date
	n.Tags = slices.Clone(d.Tags)
	n.Color = d.Color
	n.Reminder = cloneTime(d.Reminder)
	n.IsPinned = d.IsPinned
	n.IsCompleted = d.IsCompleted
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
