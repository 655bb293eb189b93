package archive

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"calnotes/internal/logs"
	"calnotes/internal/notes"
	"calnotes/internal/timeutil"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// ErrNoDate is returned for a markdown file with neither a frontmatter date
// nor a date in its filename.
var ErrNoDate = errors.New("note has no date")

// ReadNote parses a markdown file as a draft. The date comes from the
// frontmatter or else the filename; the title from the frontmatter, the
// first H1, or else the filename.
func ReadNote(path string) (notes.Draft, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return notes.Draft{}, err
	}
	return parseNote(filepath.Base(path), content)
}

func parseNote(filename string, content []byte) (notes.Draft, error) {
	fm, body := splitFrontmatter(content)

	var d notes.Draft
	d.Date = parseTime(fm.Date)
	if d.Date.IsZero() {
		if match := datePattern.FindString(filename); match != "" {
			d.Date, _ = timeutil.ParseDate(match)
		}
	}
	if d.Date.IsZero() {
		return notes.Draft{}, fmt.Errorf("%s: %w", filename, ErrNoDate)
	}

	heading, rest := leadingHeading(body)
	switch {
	case fm.Title != "":
		d.Title = fm.Title
	case heading != "":
		d.Title = heading
	default:
		d.Title = extractTitle(body)
		if d.Title == "" {
			d.Title = titleFromFilename(filename)
		}
	}
	if heading != "" && heading == d.Title {
		body = rest
	}

	d.Content = strings.TrimSpace(body)
	d.Tags = fm.Tags
	if d.Tags == nil {
		d.Tags = []string{}
	}
	d.Color = fm.Color
	d.IsPinned = fm.Pinned
	d.IsCompleted = fm.Completed
	if r := parseTime(fm.Reminder); !r.IsZero() {
		d.Reminder = &r
	}
	return d, nil
}

func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Local()
	}
	if t, err := timeutil.ParseDate(s); err == nil {
		return t
	}
	return time.Time{}
}

// splitFrontmatter extracts optional YAML frontmatter. Content without a
// closed frontmatter block, or with invalid YAML, is returned whole as body.
func splitFrontmatter(content []byte) (frontmatter, string) {
	lines := bytes.Split(content, []byte("\n"))
	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return frontmatter{}, string(content)
	}

	var fmEnd int
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			fmEnd = i
			break
		}
	}
	if fmEnd == 0 {
		return frontmatter{}, string(content)
	}

	var fm frontmatter
	if err := yaml.Unmarshal(bytes.Join(lines[1:fmEnd], []byte("\n")), &fm); err != nil {
		return frontmatter{}, string(content)
	}
	return fm, string(bytes.Join(lines[fmEnd+1:], []byte("\n")))
}

// leadingHeading returns the text of an H1 on the first non-blank line and
// the body after it.
func leadingHeading(body string) (string, string) {
	trimmed := strings.TrimLeft(body, "\n\r\t ")
	line, rest, _ := strings.Cut(trimmed, "\n")
	if !strings.HasPrefix(line, "# ") {
		return "", body
	}
	return strings.TrimSpace(strings.TrimPrefix(line, "# ")), rest
}

func extractTitle(markdown string) string {
	source := []byte(markdown)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var title string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindHeading {
			heading := n.(*ast.Heading)
			if heading.Level == 1 {
				title = string(n.Text(source))
				return ast.WalkStop, nil
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(title)
}

// ScanDir reads every .md file under dir, skipping hidden directories.
// Files that cannot be parsed are logged and skipped. Drafts are returned
// in path order.
func ScanDir(dir string) ([]notes.Draft, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if path != dir && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".md") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	drafts := make([]notes.Draft, 0, len(paths))
	for _, p := range paths {
		d, err := ReadNote(p)
		if err != nil {
			logs.Logger.Warn("skipping markdown note", "path", p, "err", err)
			continue
		}
		drafts = append(drafts, d)
	}
	return drafts, nil
}
