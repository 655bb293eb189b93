package archive

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"calnotes/internal/notes"
	"calnotes/internal/timeutil"
)

var (
	datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	multiDash   = regexp.MustCompile(`-+`)
)

// Slug converts a title to lowercase kebab-case
// "Team Sync: Q3!" -> "team-sync-q3"
func Slug(title string) string {
	s := strings.ToLower(title)

	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")

	var result strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			result.WriteRune(r)
		}
	}
	s = multiDash.ReplaceAllString(result.String(), "-")
	s = strings.Trim(s, "-")

	if s == "" {
		s = "note"
	}
	return s
}

// Filename is the base name, without extension, for a note: its date
// followed by the slug of its title.
func Filename(n notes.Note) string {
	return n.Date.Format(timeutil.DateKey) + "-" + Slug(n.Title)
}

// UniqueFilename finds a unique filename in the given directory
// If base.md exists, tries base-2.md, base-3.md, etc.
func UniqueFilename(base, dir string) string {
	candidate := base + ".md"
	if !fileExists(filepath.Join(dir, candidate)) {
		return candidate
	}
	for i := 2; ; i++ {
		candidate = base + "-" + strconv.Itoa(i) + ".md"
		if !fileExists(filepath.Join(dir, candidate)) {
			return candidate
		}
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func titleFromFilename(filename string) string {
	name := strings.TrimSuffix(filename, ".md")

	// Strip leading date pattern (e.g. "2025-07-15-")
	if loc := datePattern.FindStringIndex(name); loc != nil {
		after := strings.TrimPrefix(name[loc[1]:], "-")
		if after != "" {
			name = after
		}
	}

	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")

	if strings.TrimSpace(name) == "" {
		return "Note"
	}
	return name
}
