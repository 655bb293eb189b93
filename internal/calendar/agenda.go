package calendar

import (
	"sort"
	"time"

	"calnotes/internal/notes"
	"calnotes/internal/query"
	"calnotes/internal/timeutil"
)

// DateBucket groups the notes of one day for list views.
type DateBucket struct {
	Date      time.Time
	Notes     []notes.Note
	Completed []notes.Note
}

// AllItems returns pending notes first, then completed ones.
func (b DateBucket) AllItems() []notes.Note {
	items := make([]notes.Note, 0, len(b.Notes)+len(b.Completed))
	items = append(items, b.Notes...)
	items = append(items, b.Completed...)
	return items
}

// TotalCount returns the total number of notes in the bucket (including completed)
func (b DateBucket) TotalCount() int {
	return len(b.Notes) + len(b.Completed)
}

// QueryAgenda buckets the notes inside dateRange by day. Buckets are in
// chronological order and each bucket is in list order (pinned first, newest
// first).
func QueryAgenda(list []notes.Note, dateRange DateRange) []DateBucket {
	bucketMap := make(map[string]*DateBucket)

	for _, n := range query.SortForList(list) {
		if !dateRange.Contains(n.Date) {
			continue
		}
		bucket := getOrCreateBucket(bucketMap, n.Date)
		if n.IsCompleted {
			bucket.Completed = append(bucket.Completed, n)
		} else {
			bucket.Notes = append(bucket.Notes, n)
		}
	}

	buckets := make([]DateBucket, 0, len(bucketMap))
	for _, bucket := range bucketMap {
		buckets = append(buckets, *bucket)
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date.Before(buckets[j].Date)
	})

	return buckets
}

func getOrCreateBucket(bucketMap map[string]*DateBucket, date time.Time) *DateBucket {
	key := date.Format(timeutil.DateKey)
	if bucket, ok := bucketMap[key]; ok {
		return bucket
	}
	bucket := &DateBucket{Date: timeutil.StartOfDay(date)}
	bucketMap[key] = bucket
	return bucket
}
