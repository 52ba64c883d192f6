// Package markdown extracts page facts from markdown bodies using goldmark.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Outline holds what the metadata pipeline needs from a markdown body.
type Outline struct {
	Title   string // text of the first level-one heading
	Summary string // text of the first paragraph
}

// Parse reads body (frontmatter already removed) and returns its outline.
func Parse(body []byte) Outline {
	root := goldmark.New().Parser().Parse(text.NewReader(body))

	var out Outline
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Heading:
			if node.Level == 1 && out.Title == "" {
				out.Title = plainText(node, body)
			}
			return gmast.WalkSkipChildren, nil
		case *gmast.Paragraph:
			if out.Summary == "" {
				out.Summary = plainText(node, body)
			}
			return gmast.WalkSkipChildren, nil
		}
		if out.Title != "" && out.Summary != "" {
			return gmast.WalkStop, nil
		}
		return gmast.WalkContinue, nil
	})
	return out
}

// Title returns the first level-one heading of body, or "".
func Title(body []byte) string {
	return Parse(body).Title
}

func plainText(n gmast.Node, src []byte) string {
	var b strings.Builder
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *gmast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *gmast.String:
			b.Write(t.Value)
		case *gmast.AutoLink:
			b.Write(t.URL(src))
			return gmast.WalkSkipChildren, nil
		}
		return gmast.WalkContinue, nil
	})
	return strings.Join(strings.Fields(b.String()), " ")
}
