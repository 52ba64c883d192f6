// Package frontmatter splits and parses YAML frontmatter in markdown sources.
package frontmatter

import (
	"bytes"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter is returned when a document opens a frontmatter
// block with --- but never closes it.
var ErrMissingClosingDelimiter = errors.New("frontmatter opening delimiter found but closing delimiter is missing")

const delimiter = "---"

// Document is a markdown source split into its parts.
type Document struct {
	Raw    []byte         // frontmatter bytes without delimiters
	Fields map[string]any // parsed frontmatter; never nil
	Body   []byte
	Had    bool // the source carried a frontmatter block
}

// Split separates `---` delimited frontmatter from the body. Both LF and CRLF
// line endings are accepted. A document without an opening delimiter is all body.
func Split(content []byte) (raw, body []byte, had bool, err error) {
	nl := newline(content)
	open := []byte(delimiter + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}
	rest := content[len(open):]

	if bytes.HasPrefix(rest, open) {
		return []byte{}, rest[len(open):], true, nil
	}
	if idx := bytes.Index(rest, []byte(nl+delimiter+nl)); idx >= 0 {
		return rest[:idx+len(nl)], rest[idx+len(nl)+len(delimiter)+len(nl):], true, nil
	}
	// Closing delimiter on the last line without a trailing newline.
	if bytes.HasSuffix(rest, []byte(nl+delimiter)) {
		return rest[:len(rest)-len(delimiter)], []byte{}, true, nil
	}
	return nil, nil, false, ErrMissingClosingDelimiter
}

// Parse splits content and decodes its frontmatter.
func Parse(content []byte) (Document, error) {
	raw, body, had, err := Split(content)
	if err != nil {
		return Document{}, err
	}
	fields, err := ParseYAML(raw)
	if err != nil {
		return Document{}, err
	}
	return Document{Raw: raw, Fields: fields, Body: body, Had: had}, nil
}

// ParseYAML decodes raw frontmatter into a map. Empty input yields an empty map.
func ParseYAML(raw []byte) (map[string]any, error) {
	fields := map[string]any{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return fields, nil
	}
	if err := yaml.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

// String returns the trimmed string value of key, or "".
func String(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return strings.TrimSpace(s)
}

func newline(content []byte) string {
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
