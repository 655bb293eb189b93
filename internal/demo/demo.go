package demo

import (
	"strings"
	"time"

	"calnotes/internal/notes"
	"calnotes/internal/timeutil"

	"github.com/brianvoe/gofakeit/v6"
)

// Generator produces plausible notes for trying the app out.
type Generator struct {
	f *gofakeit.Faker
}

// New returns a generator; equal seeds give equal output.
func New(seed int64) *Generator {
	return &Generator{f: gofakeit.New(seed)}
}

// Drafts returns n drafts dated within spreadDays days either side of
// around, at quarter-hour times between 08:00 and 20:45.
func (g *Generator) Drafts(n int, around time.Time, spreadDays int) []notes.Draft {
	drafts := make([]notes.Draft, n)
	for i := range drafts {
		drafts[i] = g.Draft(around, spreadDays)
	}
	return drafts
}

// Draft returns a single generated draft.
func (g *Generator) Draft(around time.Time, spreadDays int) notes.Draft {
	day := timeutil.StartOfDay(around).AddDate(0, 0, g.f.Number(-spreadDays, spreadDays))
	date := day.Add(time.Duration(g.f.Number(8, 20))*time.Hour + time.Duration(g.f.Number(0, 3)*15)*time.Minute)

	d := notes.Draft{
		Title:       strings.TrimSuffix(g.f.Sentence(g.f.Number(2, 5)), "."),
		Content:     g.f.Paragraph(1, g.f.Number(1, 3), 12, "\n\n"),
		Date:        date,
		Tags:        g.tags(),
		Color:       g.color(),
		IsPinned:    g.chance(10),
		IsCompleted: g.chance(20),
	}
	if g.chance(30) {
		r := date.Add(-time.Duration(g.f.RandomInt([]int{10, 15, 30, 60})) * time.Minute)
		d.Reminder = &r
	}
	return d
}

func (g *Generator) chance(percent int) bool {
	return g.f.Number(1, 100) <= percent
}

func (g *Generator) color() string {
	if g.chance(10) {
		return g.f.HexColor()
	}
	return notes.Palette[g.f.Number(0, len(notes.Palette)-1)].Value
}

func (g *Generator) tags() []string {
	count := g.f.Number(0, 2)
	tags := make([]string, 0, count)
	seen := make(map[string]bool)
	for len(tags) < count {
		tag := notes.TagOptions[g.f.Number(0, len(notes.TagOptions)-1)]
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	return tags
}
