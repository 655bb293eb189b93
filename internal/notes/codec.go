package notes

import (
	"encoding/json"
	"fmt"
)

// Encode serializes the collection. Timestamps are written as RFC 3339 text
// and an absent reminder as null.
func Encode(list []Note) ([]byte, error) {
	if list == nil {
		list = []Note{}
	}
	return json.Marshal(list)
}

// Decode parses a serialized collection and rehydrates every timestamp into
// the local zone so calendar-day comparisons use local days. Any parse
// failure is reported as ErrCorruptData.
func Decode(data []byte) ([]Note, error) {
	var list []Note
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	for i := range list {
		n := &list[i]
		if n.ID == "" {
			return nil, fmt.Errorf("%w: note %d has no id", ErrCorruptData, i)
		}
		if n.Date.IsZero() {
			return nil, fmt.Errorf("%w: note %s has no date", ErrCorruptData, n.ID)
		}
		n.Date = n.Date.Local()
		n.CreatedAt = n.CreatedAt.Local()
		n.UpdatedAt = n.UpdatedAt.Local()
		if n.Reminder != nil {
			r := n.Reminder.Local()
			n.Reminder = &r
		}
		if n.Color == "" {
			n.Color = DefaultColor
		}
		if n.Tags == nil {
			n.Tags = []string{}
		}
	}
	return list, nil
}
