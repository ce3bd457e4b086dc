package renderer

import (
	"html"
	"strings"
)

// escapeInline trims a value for inline Markdown use.
func escapeInline(s string) string {
	return strings.TrimSpace(s)
}

// escapeTable escapes a value for a table cell. Backslashes are HTML-escaped
// so Windows paths survive Markdown rendering, matching the upstream docs.
func escapeTable(s string) string {
	return strings.ReplaceAll(html.EscapeString(strings.TrimSpace(s)), `\`, "&#92;")
}

// displayPlatform renders a platform tag the way the upstream docs do:
// first letter upper-cased, with macOS as the one special case.
func displayPlatform(p string) string {
	p = strings.TrimSpace(p)
	if strings.EqualFold(p, "macos") {
		return "macOS"
	}
	if p == "" {
		return p
	}
	return strings.ToUpper(p[:1]) + p[1:]
}

// displayPlatforms joins platform tags into the Supported Platforms line,
// keeping the listed order and any listed duplicates.
func displayPlatforms(platforms []string) string {
	parts := make([]string, 0, len(platforms))
	for _, p := range platforms {
		parts = append(parts, displayPlatform(p))
	}
	return strings.Join(parts, ", ")
}
