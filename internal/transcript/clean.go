package transcript

import (
	"regexp"
	"strings"
)

var (
	reInlineTag   = regexp.MustCompile(`<[^>]*>`)
	reCueFragment = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}(/\d+-\d+)?`)
)

// cleanText strips voice-tag closers, remaining inline markup and embedded
// cue-identifier fragments, then collapses whitespace.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, "</v>", "")
	s = reInlineTag.ReplaceAllString(s, "")
	s = reCueFragment.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}
