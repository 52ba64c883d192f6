package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestHeadFromFrontMatter(t *testing.T) {
	src := `
head:
  - [meta, {name: author, content: Davide Daniel}]
  - kind: link
    attrs: {rel: alternate, href: /research/feed.xml}
  - [script, {type: module}, "console.log(1)"]
  - [style, {}]
  - just a string
`
	var fm map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(src), &fm))

	tags := HeadFromFrontMatter(fm["head"])
	require.Len(t, tags, 3)
	assert.Equal(t, NameMeta("author", "Davide Daniel"), tags[0])
	assert.Equal(t, LinkTag("alternate", "/research/feed.xml"), tags[1])
	assert.Equal(t, Tag{Kind: TagScript, Attrs: map[string]string{"type": "module"}, Content: "console.log(1)"}, tags[2])
}

func TestHeadFromFrontMatter_NotASequence(t *testing.T) {
	assert.Nil(t, HeadFromFrontMatter("meta"))
	assert.Nil(t, HeadFromFrontMatter(nil))
}

func TestPage_Description(t *testing.T) {
	assert.Equal(t, "", (&Page{}).Description())
	assert.Equal(t, "", (&Page{FrontMatter: map[string]any{"description": 3}}).Description())
	assert.Equal(t, "X", (&Page{FrontMatter: map[string]any{"description": " X "}}).Description())
}

func TestTag_OrderedAttrs(t *testing.T) {
	tag := Tag{Kind: TagMeta, Attrs: map[string]string{"content": "c", "property": "og:title", "data-x": "1"}}
	assert.Equal(t, []Attr{{"property", "og:title"}, {"content", "c"}, {"data-x", "1"}}, tag.OrderedAttrs())
}
