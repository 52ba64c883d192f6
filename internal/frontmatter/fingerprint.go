package frontmatter

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/inful/mdfp"
	"gopkg.in/yaml.v3"
)

// volatileKeys do not contribute to a page's content fingerprint.
var volatileKeys = map[string]struct{}{
	mdfp.FingerprintField: {},
	"lastmod":             {},
	"lastUpdated":         {},
}

// Fingerprint returns the mdfp content fingerprint of a page. Fields are
// serialized with sorted keys so map order never changes the result.
func Fingerprint(fields map[string]any, body []byte) (string, error) {
	stable := make(map[string]any, len(fields))
	for k, v := range fields {
		if _, skip := volatileKeys[k]; !skip {
			stable[k] = v
		}
	}

	fm := ""
	if len(stable) > 0 {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(sortedNode(stable)); err != nil {
			return "", fmt.Errorf("serialize frontmatter: %w", err)
		}
		if err := enc.Close(); err != nil {
			return "", fmt.Errorf("serialize frontmatter: %w", err)
		}
		fm = strings.TrimSuffix(buf.String(), "\n")
	}
	return mdfp.CalculateFingerprintFromParts(fm, string(body)), nil
}

func sortedNode(v any) *yaml.Node {
	switch vv := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(vv))
		for k := range vv {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		n := &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range keys {
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, sortedNode(vv[k]))
		}
		return n
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range vv {
			n.Content = append(n.Content, sortedNode(item))
		}
		return n
	default:
		var n yaml.Node
		if err := n.Encode(v); err != nil {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: fmt.Sprint(v)}
		}
		return &n
	}
}
