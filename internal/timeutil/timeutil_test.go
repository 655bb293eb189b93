package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calnotes/internal/i18n"
)

func TestFormatClock(t *testing.T) {
	afternoon := time.Date(2025, 7, 15, 14, 5, 0, 0, time.Local)
	morning := time.Date(2025, 7, 15, 9, 30, 0, 0, time.Local)

	assert.Equal(t, "14:05", FormatClock(afternoon, i18n.TR))
	assert.Equal(t, "09:30", FormatClock(morning, i18n.TR))
	assert.Equal(t, "2:05 PM", FormatClock(afternoon, i18n.EN))
	assert.Equal(t, "9:30 AM", FormatClock(morning, i18n.EN))
}

func TestFormatClock_UnknownLocaleUsesDefault(t *testing.T) {
	ts := time.Date(2025, 7, 15, 14, 5, 0, 0, time.Local)
	assert.Equal(t, "14:05", FormatClock(ts, i18n.Locale("fr")))
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2025, 7, 15, 14, 5, 0, 0, time.Local)
	assert.Equal(t, "15 Temmuz 2025", FormatDate(ts, i18n.TR))
	assert.Equal(t, "July 15, 2025", FormatDate(ts, i18n.EN))
	assert.Equal(t, "July 15, 2025 2:05 PM", FormatDateTime(ts, i18n.EN))
}

func TestFormatMonthTitle(t *testing.T) {
	ts := time.Date(2025, 8, 1, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "Ağustos 2025", FormatMonthTitle(ts, i18n.TR))
	assert.Equal(t, "August 2025", FormatMonthTitle(ts, i18n.EN))
}

func TestWeekdayNamesAreMondayFirst(t *testing.T) {
	assert.Equal(t, "Mon", WeekdayShort(time.Monday, i18n.EN))
	assert.Equal(t, "Sun", WeekdayShort(time.Sunday, i18n.EN))
	assert.Equal(t, "Pazar", WeekdayLong(time.Sunday, i18n.TR))
}

func TestHoursAndMinutes(t *testing.T) {
	hours := Hours()
	require.Len(t, hours, 24)
	assert.Equal(t, "00", hours[0])
	assert.Equal(t, "23", hours[23])

	minutes := Minutes(15)
	assert.Equal(t, []string{"00", "15", "30", "45"}, minutes)
	assert.Len(t, Minutes(0), 12)
}

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock("07:45")
	require.NoError(t, err)
	assert.Equal(t, 7, h)
	assert.Equal(t, 45, m)

	for _, bad := range []string{"", "7", "24:00", "12:60", "ab:cd"} {
		_, _, err := ParseClock(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestCombine(t *testing.T) {
	day := time.Date(2025, 7, 15, 23, 59, 0, 0, time.Local)
	got, err := Combine(day, "12:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 15, 12, 0, 0, 0, time.Local), got)
}

func TestSameDayAndStartOfDay(t *testing.T) {
	a := time.Date(2025, 7, 15, 0, 0, 1, 0, time.Local)
	b := time.Date(2025, 7, 15, 23, 59, 59, 0, time.Local)
	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, b.AddDate(0, 0, 1)))
	assert.Equal(t, time.Date(2025, 7, 15, 0, 0, 0, 0, time.Local), StartOfDay(b))
}

func TestAt(t *testing.T) {
	day := time.Date(2025, 7, 15, 0, 0, 0, 0, time.Local)
	now := time.Date(2025, 7, 20, 10, 47, 31, 0, time.Local)

	assert.Equal(t, time.Date(2025, 7, 15, 10, 45, 0, 0, time.Local), At(day, now, 15))
	assert.Equal(t, time.Date(2025, 7, 15, 10, 47, 0, 0, time.Local), At(day, now, 0))
}

func TestParseReminder(t *testing.T) {
	date := time.Date(2025, time.July, 15, 9, 0, 0, 0, time.Local)

	r, err := ParseReminder("none", date)
	require.NoError(t, err)
	assert.Nil(t, r)

	r, err = ParseReminder("30m", date)
	require.NoError(t, err)
	assert.Equal(t, date.Add(-30*time.Minute), *r)

	r, err = ParseReminder("08:15", date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.July, 15, 8, 15, 0, 0, time.Local), *r)

	r, err = ParseReminder("2025-07-14 20:00", date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.July, 14, 20, 0, 0, 0, time.Local), *r)

	_, err = ParseReminder("tomorrow", date)
	assert.Error(t, err)
}
