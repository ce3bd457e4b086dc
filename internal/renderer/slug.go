package renderer

import (
	"regexp"
	"strings"
)

var (
	slugStrip   = regexp.MustCompile(`[^\w\s-]`)
	slugSpaces  = regexp.MustCompile(`\s+`)
	slugHyphens = regexp.MustCompile(`-+`)
)

// Slugify approximates GitHub's heading anchor behavior for ASCII headings:
// lowercase, punctuation dropped ("net.exe" becomes "netexe"), whitespace
// runs collapse to a single hyphen. TOC links and section headings must go
// through the same rule or the intra-document links break.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return s
}
