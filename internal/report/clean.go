package report

import (
	"regexp"
	"strings"
)

// Citation and markup artifacts that grounded generation tends to leave in
// string fields. Stripped before a validated report is returned.
var (
	reCodeFence    = regexp.MustCompile("```[\\s\\S]*?```")
	reSupTag       = regexp.MustCompile(`(?i)<sup[^>]*>[\s\S]*?</sup>`)
	reHTMLTag      = regexp.MustCompile(`<[^>]+>`)
	reBracketCite  = regexp.MustCompile(`\[\d+\]`)
	reFootnote     = regexp.MustCompile(`\[\^[^\]]+\]`)
	reCiteTemplate = regexp.MustCompile(`(?i)\{\{cite\|[^}]+\}\}`)
	reCaretMarker  = regexp.MustCompile(`\^\d+\^`)
	reParenCite    = regexp.MustCompile(`\(\d+\)`)
	reExcessSpace  = regexp.MustCompile(`\s{2,}`)
)

// CleanText strips code fences, HTML, and inline citation markers from a
// string and collapses excessive whitespace.
func CleanText(input string) string {
	if input == "" {
		return ""
	}
	s := input
	s = reCodeFence.ReplaceAllString(s, "")
	s = reSupTag.ReplaceAllString(s, "")
	s = reHTMLTag.ReplaceAllString(s, "")
	s = reBracketCite.ReplaceAllString(s, "")
	s = reFootnote.ReplaceAllString(s, "")
	s = reCiteTemplate.ReplaceAllString(s, "")
	s = reCaretMarker.ReplaceAllString(s, "")
	s = reParenCite.ReplaceAllString(s, "")
	s = reExcessSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// CleanCandidate applies CleanText to every string leaf of a report
// candidate, in place. Keys are left untouched.
func CleanCandidate(candidate map[string]any) {
	for key, value := range candidate {
		candidate[key] = cleanValue(value)
	}
}

func cleanValue(v any) any {
	switch val := v.(type) {
	case string:
		return CleanText(val)
	case map[string]any:
		CleanCandidate(val)
		return val
	case []any:
		for i, item := range val {
			val[i] = cleanValue(item)
		}
		return val
	default:
		return v
	}
}
