package ical

import (
	"html"
	"regexp"
	"strings"

	ics "github.com/arran4/golang-ical"
	"github.com/microcosm-cc/bluemonday"
)

const propAltDesc ics.ComponentProperty = "X-ALT-DESC"

// plain removes all markup. Policies are safe for concurrent use once built.
var plain = func() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	p.AddSpaceWhenStrippingTag(true)
	return p
}()

// markup matches the tags calendar servers put into descriptions. A bare
// "a<b" or "List<String>" is left alone.
var markup = regexp.MustCompile(`(?i)</?(?:a|b|br|div|em|font|i|li|ol|p|span|strong|u|ul)(?:\s[^<>]*=[^<>]*)?\s*/?>`)

var lineBreak = regexp.MustCompile(`(?i)<br\s*/?>|</(?:div|li|p)>`)

// description returns the event's plain-text description. An HTML
// X-ALT-DESC is used when DESCRIPTION is missing, and a DESCRIPTION that
// carries HTML tags is converted to text.
func description(ve *ics.VEvent) string {
	if p := ve.GetProperty(ics.ComponentPropertyDescription); p != nil && strings.TrimSpace(p.Value) != "" {
		return htmlText(p.Value)
	}
	p := ve.GetProperty(propAltDesc)
	if p == nil {
		return ""
	}
	if ft := p.ICalParameters["FMTTYPE"]; len(ft) > 0 && !strings.EqualFold(ft[0], "text/html") {
		return p.Value
	}
	return stripHTML(p.Value)
}

func htmlText(s string) string {
	if !markup.MatchString(s) {
		return s
	}
	return stripHTML(s)
}

func stripHTML(s string) string {
	s = lineBreak.ReplaceAllString(s, "$0\n")
	lines := strings.Split(html.UnescapeString(plain.Sanitize(s)), "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
