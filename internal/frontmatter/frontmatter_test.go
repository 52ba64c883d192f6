package frontmatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantRaw  string
		wantBody string
		wantHad  bool
	}{
		{"no frontmatter", "# Title\n\nHello\n", "", "# Title\n\nHello\n", false},
		{"yaml block", "---\ntitle: X\n---\n# Title\n", "title: X\n", "# Title\n", true},
		{"crlf", "---\r\ntitle: X\r\n---\r\n# Title\r\n", "title: X\r\n", "# Title\r\n", true},
		{"empty block", "---\n---\nbody\n", "", "body\n", true},
		{"closing at eof", "---\ntitle: X\n---", "title: X\n", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, body, had, err := Split([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.wantHad, had)
			assert.Equal(t, tt.wantRaw, string(raw))
			assert.Equal(t, tt.wantBody, string(body))
		})
	}
}

func TestSplit_MissingClosingDelimiter(t *testing.T) {
	_, _, had, err := Split([]byte("---\ntitle: X\n# Title\n"))
	require.Error(t, err)
	assert.False(t, had)
	assert.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestParse(t *testing.T) {
	doc, err := Parse([]byte("---\ntitle: Overview\ndescription: \"  X  \"\nhead:\n  - [meta, {name: robots, content: index}]\n---\nBody\n"))
	require.NoError(t, err)

	assert.True(t, doc.Had)
	assert.Equal(t, "Overview", String(doc.Fields, "title"))
	assert.Equal(t, "X", String(doc.Fields, "description"))
	assert.Len(t, doc.Fields["head"], 1)
	assert.Equal(t, "Body\n", string(doc.Body))
}

func TestParse_NoFrontmatterGivesEmptyFields(t *testing.T) {
	doc, err := Parse([]byte("# Only body\n"))
	require.NoError(t, err)
	assert.False(t, doc.Had)
	assert.NotNil(t, doc.Fields)
	assert.Empty(t, doc.Fields)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("---\ntitle: [unclosed\n---\nbody\n"))
	require.Error(t, err)
}

func TestString_NonString(t *testing.T) {
	assert.Equal(t, "", String(map[string]any{"title": 3}, "title"))
	assert.Equal(t, "", String(nil, "title"))
}
