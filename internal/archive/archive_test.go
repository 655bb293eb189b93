package archive

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"calnotes/internal/notes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Team Sync: Q3!":   "team-sync-q3",
		"  spaced   out  ": "spaced-out",
		"snake_case_title": "snake-case-title",
		"Toplantı notları": "toplantı-notları",
		"!!!":              "note",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slug(in), in)
	}
}

func TestWriteNote_ReadNote_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	date := time.Date(2025, time.July, 15, 14, 30, 0, 0, time.Local)
	reminder := date.Add(-time.Hour)
	n := notes.Note{
		ID:        "01J",
		Title:     "Team Sync",
		Content:   "- agenda\n- notes",
		Date:      date,
		Tags:      []string{"work", "meeting"},
		Color:     "#9b59b6",
		Reminder:  &reminder,
		IsPinned:  true,
		CreatedAt: date,
		UpdatedAt: date,
	}

	path, err := WriteNote(dir, n)
	require.NoError(t, err)
	assert.Equal(t, "2025-07-15-team-sync.md", filepath.Base(path))

	d, err := ReadNote(path)
	require.NoError(t, err)
	assert.Equal(t, "Team Sync", d.Title)
	assert.Equal(t, "- agenda\n- notes", d.Content)
	assert.True(t, date.Equal(d.Date))
	assert.Equal(t, []string{"work", "meeting"}, d.Tags)
	assert.Equal(t, "#9b59b6", d.Color)
	assert.True(t, d.IsPinned)
	require.NotNil(t, d.Reminder)
	assert.True(t, reminder.Equal(*d.Reminder))

	second, err := WriteNote(dir, n)
	require.NoError(t, err)
	assert.Equal(t, "2025-07-15-team-sync-2.md", filepath.Base(second))
}

func TestReadNote_FallsBackToFilename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "2025-07-20-weekly_review.md")
	require.NoError(t, os.WriteFile(path, []byte("Just a body.\n"), 0644))

	d, err := ReadNote(path)
	require.NoError(t, err)
	assert.Equal(t, "weekly review", d.Title)
	assert.Equal(t, "Just a body.", d.Content)
	assert.Equal(t, 20, d.Date.Day())
	assert.Equal(t, time.July, d.Date.Month())
}

func TestReadNote_FrontmatterTitleWins(t *testing.T) {
	content := "---\ntitle: From Frontmatter\ndate: 2025-07-21\n---\n\n# Heading\n\nbody\n"
	d, err := parseNote("whatever.md", []byte(content))
	require.NoError(t, err)
	assert.Equal(t, "From Frontmatter", d.Title)
	assert.Contains(t, d.Content, "# Heading")
}

func TestReadNote_NoDate(t *testing.T) {
	_, err := parseNote("ideas.md", []byte("# Ideas\n"))
	assert.ErrorIs(t, err, ErrNoDate)
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	write := func(rel, content string) {
		p := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	write("2025-07-02-b.md", "# Second\n")
	write("2025-07-01-a.md", "# First\n")
	write("nested/2025-07-03-c.md", "# Third\n")
	write(".hidden/2025-07-04-d.md", "# Hidden\n")
	write("undated.md", "# Skipped\n")
	write("notes.txt", "not markdown")

	drafts, err := ScanDir(dir)
	require.NoError(t, err)

	var titles []string
	for _, d := range drafts {
		titles = append(titles, d.Title)
	}
	assert.Equal(t, []string{"First", "Second", "Third"}, titles)
}
