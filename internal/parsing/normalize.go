package parsing

import (
	"encoding/json"
	"regexp"
	"strings"
)

// A NormalizationPass is one independent attempt at turning a mangled
// provider response into decodable JSON. Passes are applied to the raw
// response in order until one yields valid JSON or the list is exhausted.
type NormalizationPass struct {
	Name  string
	Apply func(string) string
}

// DefaultPasses returns the repair passes in escalation order. The first
// pass handles the common cases (markdown fences, CRLF, stray non-ASCII
// bytes); the second is more aggressive, rewriting smart punctuation and
// whitespace that the first pass would have discarded outright.
func DefaultPasses() []NormalizationPass {
	return []NormalizationPass{
		{
			Name: "strip-fences-ascii",
			Apply: func(s string) string {
				s = StripCodeFences(s)
				s = NormalizeLineEndings(s)
				return StripNonASCII(s)
			},
		},
		{
			Name: "smart-punctuation",
			Apply: func(s string) string {
				s = StripCodeFences(s)
				s = NormalizeLineEndings(s)
				s = ReplaceSmartPunctuation(s)
				s = CollapseWhitespace(s)
				return EscapeLoneBackslashes(s)
			},
		},
	}
}

// NormalizeResponse runs the passes over the raw provider response and
// returns the first candidate that is valid JSON. The boolean reports
// whether any pass succeeded.
func NormalizeResponse(raw string, passes []NormalizationPass) (string, bool) {
	for _, pass := range passes {
		candidate := strings.TrimSpace(pass.Apply(raw))
		if json.Valid([]byte(candidate)) {
			return candidate, true
		}
	}
	return "", false
}

// StripCodeFences removes markdown code block wrappers. Providers wrap JSON
// in ```json ... ``` blocks even when instructed not to.
func StripCodeFences(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip a language identifier on the opening fence line.
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := strings.TrimSpace(text[:idx])
			if len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	return text
}

// NormalizeLineEndings converts CRLF and bare CR to LF.
func NormalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// StripNonASCII drops every byte outside the printable ASCII range except
// newlines and tabs.
func StripNonASCII(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if r < 128 && (r >= 32 || r == '\n' || r == '\t') {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// smartPunctuation maps typographic characters providers emit to their
// ASCII equivalents.
var smartPunctuation = strings.NewReplacer(
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"–", "-", // en dash
	"—", "-", // em dash
	"…", "...", // ellipsis
	" ", " ", // non-breaking space
)

// ReplaceSmartPunctuation rewrites smart quotes, dashes, and related
// typographic characters as plain ASCII.
func ReplaceSmartPunctuation(text string) string {
	return smartPunctuation.Replace(text)
}

var whitespaceRun = regexp.MustCompile(`[ \t]+`)

// CollapseWhitespace reduces runs of spaces and tabs to a single space.
func CollapseWhitespace(text string) string {
	return whitespaceRun.ReplaceAllString(text, " ")
}

var loneBackslash = regexp.MustCompile(`\\([^"\\/bfnrtu])`)

// EscapeLoneBackslashes doubles backslashes that do not start a valid JSON
// escape sequence.
func EscapeLoneBackslashes(text string) string {
	return loneBackslash.ReplaceAllString(text, `\\$1`)
}
