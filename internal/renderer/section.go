package renderer

import (
	"fmt"
	"strings"

	"github.com/frherrer/atomic-docgen/internal/domain"
)

// RenderSection renders one normalized test into its Markdown section and
// the anchor the table of contents will point at. Every optional field is
// independently omittable; only the heading and the attack fence are
// guaranteed to appear.
func RenderSection(v domain.TestView) domain.Section {
	heading := fmt.Sprintf("Atomic Test #%d - %s", v.Ordinal, escapeInline(v.Name))

	var lines []string
	add := func(l string) { lines = append(lines, l) }

	add("## " + heading)

	if desc := escapeInline(v.Description); desc != "" {
		add(desc)
		add("")
	}
	if len(v.SupportedPlatforms) > 0 {
		add(fmt.Sprintf("**Supported Platforms:** %s", displayPlatforms(v.SupportedPlatforms)))
		add("")
	}
	if guid := escapeInline(v.AutoGeneratedGUID); guid != "" {
		add(fmt.Sprintf("**auto_generated_guid:** %s", guid))
		add("")
	}
	// The upstream docs leave a wide gap before the inputs table.
	add("")
	add("")
	add("")
	add("")

	if len(v.Inputs) > 0 {
		add("#### Inputs:")
		add("| Name | Description | Default | Type |")
		add("|------|-------------|---------|------|")
		for _, arg := range v.Inputs {
			add(fmt.Sprintf("| %s | %s | %s | %s |",
				escapeInline(arg.Name),
				escapeInline(arg.Description),
				escapeTable(arg.Default),
				escapeInline(arg.Type)))
		}
		add("")
		add("")
	}

	if name := escapeInline(v.ExecutorName); name != "" {
		elev := ""
		if v.ElevationRequired {
			elev = "  Elevation Required (e.g. root or admin) "
		}
		add(fmt.Sprintf("#### Attack Commands: Run with `%s`!%s", name, elev))
	} else {
		add("#### Attack Commands:")
	}
	add("")

	add("```" + v.FenceLang)
	if cmd := escapeInline(v.Command); cmd != "" {
		add(cmd)
	}
	add("```")
	add("")

	if v.HasCleanup {
		add("#### Cleanup Commands:")
		add("```" + v.FenceLang)
		if cleanup := escapeInline(v.CleanupCommand); cleanup != "" {
			add(cleanup)
		}
		add("```")
		add("")
		add("")
	}

	return domain.Section{
		Ordinal: v.Ordinal,
		Heading: heading,
		Anchor:  Slugify(heading),
		Body:    strings.Join(lines, "\n"),
	}
}
