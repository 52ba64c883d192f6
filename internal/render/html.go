package render

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/DavideDaniel/research/internal/seo"
)

// TagNode converts a head tag into an HTML element node. Script bodies
// become raw text, with "</" escaped so the body cannot close the element.
func TagNode(t seo.Tag) *html.Node {
	name := string(t.Kind)
	n := &html.Node{Type: html.ElementNode, Data: name, DataAtom: atom.Lookup([]byte(name))}
	for _, a := range t.OrderedAttrs() {
		n.Attr = append(n.Attr, html.Attribute{Key: a.Key, Val: a.Value})
	}
	if t.Kind == seo.TagScript && t.Content != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: strings.ReplaceAll(t.Content, "</", `<\/`)})
	}
	return n
}

// RenderTags renders tags as HTML, one element per line.
func RenderTags(tags []seo.Tag) (string, error) {
	var buf bytes.Buffer
	for i, t := range tags {
		if i > 0 {
			buf.WriteByte('\n')
		}
		if err := html.Render(&buf, TagNode(t)); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
