package notes

import "time"

// Welcome is the note a fresh or unreadable store starts with.
func Welcome(id string, now time.Time) Note {
	return Note{
		ID:        id,
		Title:     "Welcome to Calendar Notes",
		Content:   "This is a sample note to get you started.",
		Date:      now,
		Tags:      []string{"welcome"},
		Color:     DefaultColor,
		IsPinned:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
