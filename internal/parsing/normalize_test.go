package parsing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain JSON untouched", `{"title": "Engineer"}`, `{"title": "Engineer"}`},
		{"fenced with language tag", "```json\n{\"title\": \"Engineer\"}\n```", `{"title": "Engineer"}`},
		{"fenced without language tag", "```\n{\"title\": \"Engineer\"}\n```", `{"title": "Engineer"}`},
		{"surrounding whitespace", "  ```json\n{\"a\": 1}\n```  ", `{"a": 1}`},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripCodeFences(tt.input))
		})
	}
}

func TestNormalizeLineEndings(t *testing.T) {
	assert.Equal(t, "a\nb\nc", NormalizeLineEndings("a\r\nb\rc"))
}

func TestStripNonASCII(t *testing.T) {
	assert.Equal(t, `{"title": "Engineer"}`, StripNonASCII("{\"title\": \"Engineer \"}"))
	assert.Equal(t, "keep\nnewlines\tand tabs", StripNonASCII("keep\nnewlines\tand tabs"))
	assert.Equal(t, "caf ", StripNonASCII("café …"))
}

func TestReplaceSmartPunctuation(t *testing.T) {
	input := "“quoted” – ‘single’ — done…"
	assert.Equal(t, `"quoted" - 'single' - done...`, ReplaceSmartPunctuation(input))
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b\nc d", CollapseWhitespace("a  \t b\nc   d"))
}

func TestEscapeLoneBackslashes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lone backslash doubled", `path\to`, `path\\to`},
		{"valid escape preserved", `line\nbreak`, `line\nbreak`},
		{"quote escape preserved", `say \"hi\"`, `say \"hi\"`},
		{"unicode escape preserved", `é`, `é`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeLoneBackslashes(tt.input))
		})
	}
}

func TestNormalizeResponse_FirstPassHandlesFences(t *testing.T) {
	raw := "```json\n{\"title\": \"Engineer\"}\n```"

	out, ok := NormalizeResponse(raw, DefaultPasses())
	require.True(t, ok)
	assert.Equal(t, `{"title": "Engineer"}`, out)
}

func TestNormalizeResponse_SecondPassHandlesSmartQuotes(t *testing.T) {
	// The first pass strips the smart quotes outright, leaving invalid
	// JSON; the second pass rewrites them as ASCII quotes instead.
	raw := "```json\n{“title”: “Engineer”}\n```"

	out, ok := NormalizeResponse(raw, DefaultPasses())
	require.True(t, ok)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "Engineer", decoded["title"])
}

func TestNormalizeResponse_AllPassesExhausted(t *testing.T) {
	_, ok := NormalizeResponse("this is not JSON at all", DefaultPasses())
	assert.False(t, ok)
}

func TestNormalizeResponse_ValidJSONPassesThrough(t *testing.T) {
	out, ok := NormalizeResponse(`{"a": [1, 2, 3]}`, DefaultPasses())
	require.True(t, ok)
	assert.Equal(t, `{"a": [1, 2, 3]}`, out)
}
