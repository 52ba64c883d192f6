package seo

import (
	"fmt"
	"strings"
)

// Page is the per-page descriptor handed to the metadata injector.
type Page struct {
	RelativePath string         // slash separated, relative to the content root
	Title        string         // empty when the page has no title
	FrontMatter  map[string]any // parsed frontmatter; may be nil
	Head         []Tag          // head sequence, extended append-only
}

// Description returns the trimmed frontmatter description, or "".
func (p *Page) Description() string {
	if p.FrontMatter == nil {
		return ""
	}
	d, _ := p.FrontMatter["description"].(string)
	return strings.TrimSpace(d)
}

// HeadFromFrontMatter converts a frontmatter "head" value into tags.
//
// Two shapes are accepted: the tuple form used by VitePress
// ([meta, {name: author, content: X}]) and the mapping form
// ({kind: meta, attrs: {...}, content: ...}). Unrecognised entries are skipped.
func HeadFromFrontMatter(v any) []Tag {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	tags := make([]Tag, 0, len(items))
	for _, item := range items {
		switch entry := item.(type) {
		case []any:
			if t, ok := tagFromTuple(entry); ok {
				tags = append(tags, t)
			}
		case map[string]any:
			if t, ok := tagFromMapping(entry); ok {
				tags = append(tags, t)
			}
		}
	}
	return tags
}

func tagFromTuple(entry []any) (Tag, bool) {
	if len(entry) < 2 {
		return Tag{}, false
	}
	kind, ok := parseTagKind(entry[0])
	if !ok {
		return Tag{}, false
	}
	t := Tag{Kind: kind, Attrs: stringMap(entry[1])}
	if len(entry) > 2 {
		t.Content = fmt.Sprint(entry[2])
	}
	return t, true
}

func tagFromMapping(entry map[string]any) (Tag, bool) {
	kind, ok := parseTagKind(entry["kind"])
	if !ok {
		return Tag{}, false
	}
	t := Tag{Kind: kind, Attrs: stringMap(entry["attrs"])}
	if c, ok := entry["content"].(string); ok {
		t.Content = c
	}
	return t, true
}

func parseTagKind(v any) (TagKind, bool) {
	s, _ := v.(string)
	switch k := TagKind(strings.ToLower(strings.TrimSpace(s))); k {
	case TagMeta, TagLink, TagScript:
		return k, true
	}
	return "", false
}

func stringMap(v any) map[string]string {
	out := map[string]string{}
	switch m := v.(type) {
	case map[string]any:
		for k, val := range m {
			out[k] = fmt.Sprint(val)
		}
	case map[string]string:
		for k, val := range m {
			out[k] = val
		}
	}
	return out
}
