package notes

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_ReminderRoundTrip(t *testing.T) {
	reminder := time.Date(2025, time.July, 15, 8, 30, 0, 0, time.Local)
	in := []Note{
		{ID: "a", Title: "no reminder", Date: july15, Tags: []string{}, Color: DefaultColor, CreatedAt: july15, UpdatedAt: july15},
		{ID: "b", Title: "reminder", Date: july15, Tags: []string{"work"}, Color: "#e74c3c", Reminder: &reminder, CreatedAt: july15, UpdatedAt: july15},
	}

	data, err := Encode(in)
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Nil(t, raw[0]["reminder"])
	assert.Contains(t, raw[0], "reminder", "absent reminder is written as null")
	assert.IsType(t, "", raw[1]["date"])

	out, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Nil(t, out[0].Reminder)
	require.NotNil(t, out[1].Reminder)
	assert.True(t, reminder.Equal(*out[1].Reminder))
	assert.True(t, july15.Equal(out[1].Date))
	assert.Equal(t, time.Local, out[1].Date.Location())
}

func TestEncode_NilIsEmptyArray(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestDecode_FillsDefaults(t *testing.T) {
	out, err := Decode([]byte(`[{"id":"x","title":"t","date":"2025-07-15T09:00:00Z","createdAt":"2025-07-15T09:00:00Z","updatedAt":"2025-07-15T09:00:00Z"}]`))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, DefaultColor, out[0].Color)
	assert.NotNil(t, out[0].Tags)
	assert.Nil(t, out[0].Reminder)
}

func TestDecode_Corrupt(t *testing.T) {
	tests := map[string]string{
		"not json":     `{oops`,
		"not an array": `{"id":"x"}`,
		"bad date":     `[{"id":"x","date":"yesterday"}]`,
		"missing id":   `[{"title":"t","date":"2025-07-15T09:00:00Z"}]`,
		"missing date": `[{"id":"x","title":"t"}]`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(data))
			assert.ErrorIs(t, err, ErrCorruptData)
		})
	}
}
