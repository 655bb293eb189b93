package query

import (
	"sort"
	"strings"

	"calnotes/internal/notes"

	"github.com/sahilm/fuzzy"
)

// NotesForHour keeps the notes whose Date falls in hour (0-23) of the local
// day, preserving input order.
func NotesForHour(list []notes.Note, hour int) []notes.Note {
	return filter(list, func(n notes.Note) bool {
		return n.Date.Local().Hour() == hour
	})
}

// SortForList returns a copy of list ordered pinned first, then by Date
// descending. Ties keep their input order.
func SortForList(list []notes.Note) []notes.Note {
	sorted := make([]notes.Note, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.IsPinned != b.IsPinned {
			return a.IsPinned
		}
		return a.Date.After(b.Date)
	})
	return sorted
}

// WithTag keeps the notes carrying tag.
func WithTag(list []notes.Note, tag string) []notes.Note {
	return filter(list, func(n notes.Note) bool { return n.HasTag(tag) })
}

// Completed keeps completed notes.
func Completed(list []notes.Note) []notes.Note {
	return filter(list, func(n notes.Note) bool { return n.IsCompleted })
}

// Pending keeps notes that are not completed.
func Pending(list []notes.Note) []notes.Note {
	return filter(list, func(n notes.Note) bool { return !n.IsCompleted })
}

// Search fuzzy-matches q against title, tags and content. Results are ordered
// best match first; an empty query returns list unchanged.
func Search(list []notes.Note, q string) []notes.Note {
	q = strings.TrimSpace(q)
	if q == "" {
		return list
	}

	haystack := make([]string, len(list))
	for i, n := range list {
		haystack[i] = strings.ToLower(n.Title + " " + strings.Join(n.Tags, " ") + " " + n.Content)
	}

	matches := fuzzy.Find(strings.ToLower(q), haystack)
	result := make([]notes.Note, 0, len(matches))
	for _, m := range matches {
		result = append(result, list[m.Index])
	}
	return result
}

func filter(list []notes.Note, keep func(notes.Note) bool) []notes.Note {
	var out []notes.Note
	for _, n := range list {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}
