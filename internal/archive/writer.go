package archive

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"calnotes/internal/notes"

	"gopkg.in/yaml.v3"
)

type frontmatter struct {
	ID        string   `yaml:"id,omitempty"`
	Title     string   `yaml:"title,omitempty"`
	Date      string   `yaml:"date"`
	Tags      []string `yaml:"tags,omitempty"`
	Color     string   `yaml:"color,omitempty"`
	Reminder  string   `yaml:"reminder,omitempty"`
	Pinned    bool     `yaml:"pinned,omitempty"`
	Completed bool     `yaml:"completed,omitempty"`
	Created   string   `yaml:"created,omitempty"`
	Updated   string   `yaml:"updated,omitempty"`
}

// Render formats a note as markdown with YAML frontmatter and the title as
// the leading H1.
func Render(n notes.Note) ([]byte, error) {
	fm := frontmatter{
		ID:        n.ID,
		Date:      n.Date.Format(time.RFC3339),
		Tags:      n.Tags,
		Color:     n.Color,
		Pinned:    n.IsPinned,
		Completed: n.IsCompleted,
	}
	if n.Reminder != nil {
		fm.Reminder = n.Reminder.Format(time.RFC3339)
	}
	if !n.CreatedAt.IsZero() {
		fm.Created = n.CreatedAt.Format(time.RFC3339)
	}
	if !n.UpdatedAt.IsZero() {
		fm.Updated = n.UpdatedAt.Format(time.RFC3339)
	}

	yamlBytes, err := yaml.Marshal(fm)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(yamlBytes)
	buf.WriteString("---\n\n")
	buf.WriteString("# " + n.Title + "\n")
	if n.Content != "" {
		buf.WriteString("\n" + n.Content)
		if !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
			buf.WriteString("\n")
		}
	}
	return buf.Bytes(), nil
}

// WriteNote writes n into dir as YYYY-MM-DD-slug.md, never overwriting an
// existing file. It returns the path written.
func WriteNote(dir string, n notes.Note) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create archive dir: %w", err)
	}
	data, err := Render(n)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", n.ID, err)
	}
	path := filepath.Join(dir, UniqueFilename(Filename(n), dir))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// WriteAll archives every note in list and returns the paths written.
func WriteAll(dir string, list []notes.Note) ([]string, error) {
	paths := make([]string, 0, len(list))
	for _, n := range list {
		p, err := WriteNote(dir, n)
		if err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}
