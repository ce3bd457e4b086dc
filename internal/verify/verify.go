package verify

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/frherrer/atomic-docgen/internal/domain"
	"github.com/frherrer/atomic-docgen/internal/renderer"
)

// Report holds the intra-document link analysis of a rendered Markdown
// document.
type Report struct {
	Headings   []string // heading texts in document order
	Anchors    map[string]bool
	Links      []string // link targets that start with "#", the "#" stripped
	Unresolved []string // links with no matching heading anchor
}

// Ok reports whether every intra-document link resolves to a heading.
func (r *Report) Ok() bool {
	return len(r.Unresolved) == 0
}

// Anchors parses rendered Markdown and checks that every intra-document
// link target matches the anchor of some heading, using the same slug rule
// the renderer uses to build the table of contents.
func Anchors(content []byte) (*Report, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(content))

	report := &Report{Anchors: make(map[string]bool)}

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			heading := extractText(node, content)
			report.Headings = append(report.Headings, heading)
			report.Anchors[renderer.Slugify(heading)] = true
		case *ast.Link:
			dest := string(node.Destination)
			if strings.HasPrefix(dest, "#") {
				report.Links = append(report.Links, strings.TrimPrefix(dest, "#"))
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, domain.NewError("render", "", "failed to walk rendered markdown", err)
	}

	for _, link := range report.Links {
		if !report.Anchors[link] {
			report.Unresolved = append(report.Unresolved, link)
		}
	}
	return report, nil
}

// extractText gets the text content of a heading node.
func extractText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
		}
	}
	return buf.String()
}
