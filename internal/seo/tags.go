package seo

import "sort"

// TagKind is the element name of a head tag.
type TagKind string

const (
	TagMeta   TagKind = "meta"
	TagLink   TagKind = "link"
	TagScript TagKind = "script"
)

// Tag describes one element appended to a page's <head>.
//
// Tags are values; callers must not mutate Attrs after construction.
type Tag struct {
	Kind    TagKind           `json:"kind" yaml:"kind"`
	Attrs   map[string]string `json:"attrs" yaml:"attrs"`
	Content string            `json:"content,omitempty" yaml:"content,omitempty"`
}

// Attr is a single attribute in render order.
type Attr struct {
	Key   string
	Value string
}

// attrOrder puts the identifying attribute first so rendered tags read naturally.
var attrOrder = map[string]int{
	"rel":      0,
	"property": 0,
	"name":     0,
	"type":     0,
	"href":     1,
	"content":  1,
}

// OrderedAttrs returns the attributes with identifying keys first, then the
// rest alphabetically.
func (t Tag) OrderedAttrs() []Attr {
	out := make([]Attr, 0, len(t.Attrs))
	for k, v := range t.Attrs {
		out = append(out, Attr{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		ri, iok := attrOrder[out[i].Key]
		rj, jok := attrOrder[out[j].Key]
		if !iok {
			ri = len(attrOrder)
		}
		if !jok {
			rj = len(attrOrder)
		}
		if ri != rj {
			return ri < rj
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Attr returns the value of attribute key.
func (t Tag) Attr(key string) string {
	return t.Attrs[key]
}

// LinkTag builds a <link> tag.
func LinkTag(rel, href string) Tag {
	return Tag{Kind: TagLink, Attrs: map[string]string{"rel": rel, "href": href}}
}

// PropertyMeta builds <meta property=... content=...>, the Open Graph form.
func PropertyMeta(property, content string) Tag {
	return Tag{Kind: TagMeta, Attrs: map[string]string{"property": property, "content": content}}
}

// NameMeta builds <meta name=... content=...>.
func NameMeta(name, content string) Tag {
	return Tag{Kind: TagMeta, Attrs: map[string]string{"name": name, "content": content}}
}

// ScriptTag builds a <script> tag with the given type and body.
func ScriptTag(typ, content string) Tag {
	return Tag{Kind: TagScript, Attrs: map[string]string{"type": typ}, Content: content}
}
