package shared

import "strings"

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// CenterContent pads content with blank lines so it sits vertically centered
// in height rows. Content taller than height is returned as is.
func CenterContent(content string, height int) string {
	return CenterWithBottomHints(content, "", height)
}

// CenterWithBottomHints centers content like CenterContent and pins hints to
// the last rows.
func CenterWithBottomHints(content, hints string, height int) string {
	body := splitLines(content)
	foot := splitLines(hints)

	gap := height - len(body) - len(foot)
	if gap <= 0 {
		return strings.Join(append(body, foot...), "\n")
	}

	top := gap / 2
	lines := make([]string, top, height)
	lines = append(lines, body...)
	lines = append(lines, make([]string, gap-top)...)
	lines = append(lines, foot...)
	return strings.Join(lines, "\n")
}
