package post

import (
	"regexp"
	"strings"
)

var (
	boldMarkerRe   = regexp.MustCompile(`\*\*`)
	italicMarkerRe = regexp.MustCompile(`\*`)
	headerRe       = regexp.MustCompile(`#{1,6}\s`)
	codeFenceRe    = regexp.MustCompile("`{1,3}")
	separatorRe    = regexp.MustCompile(`---`)
	listMarkerRe   = regexp.MustCompile(`(?m)^(\s*[-+*]\s)+`)
)

// CleanContent strips markdown formatting from generated post text so the
// final post is plain social-media copy. Applying it twice yields the same
// result as once.
func CleanContent(text string) string {
	if text == "" {
		return ""
	}
	text = boldMarkerRe.ReplaceAllString(text, "")
	text = italicMarkerRe.ReplaceAllString(text, "")
	text = headerRe.ReplaceAllString(text, "")
	text = codeFenceRe.ReplaceAllString(text, "")
	text = separatorRe.ReplaceAllString(text, "")
	text = listMarkerRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
