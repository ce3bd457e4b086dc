package renderer

import (
	"fmt"
	"strings"

	"github.com/frherrer/atomic-docgen/internal/domain"
)

const attackBaseURL = "https://attack.mitre.org/techniques"

// RenderDocument assembles the full Markdown document for a technique:
// title, optional ATT&CK description block, table of contents, then every
// test section in source order. Sections are rendered first so their
// anchors exist before the TOC referencing them is emitted.
func RenderDocument(tech *domain.Technique, views []domain.TestView, attackDesc string) string {
	// Pass 1: render bodies and collect anchors.
	sections := make([]domain.Section, 0, len(views))
	for _, v := range views {
		sections = append(sections, RenderSection(v))
	}

	// Pass 2: assemble title, TOC, bodies.
	var lines []string
	add := func(l string) { lines = append(lines, l) }

	add(fmt.Sprintf("# %s - %s", escapeInline(tech.ID), escapeInline(tech.DisplayName)))

	if desc := strings.TrimSpace(attackDesc); desc != "" {
		add(fmt.Sprintf("## [Description from ATT&CK](%s/%s)", attackBaseURL, escapeInline(tech.ID)))
		add("<blockquote>")
		add("")
		add(desc)
		add("")
		add("</blockquote>")
		add("")
	}

	add("## Atomic Tests")
	add("")
	for _, s := range sections {
		add(fmt.Sprintf("- [%s](#%s)", s.Heading, s.Anchor))
		add("")
	}
	add("")
	add("<br/>")
	add("")

	for _, s := range sections {
		add(s.Body)
		add("")
		add("<br/>")
		add("<br/>")
		add("")
	}

	add("<br/>")

	return strings.TrimRight(strings.Join(lines, "\n"), " \t\n") + "\n"
}
