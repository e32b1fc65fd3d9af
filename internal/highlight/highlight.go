// Package highlight applies terminal syntax highlighting to snapshot lines.
//
// Highlighting is a pure text -> styled-text pass applied per rendered line,
// after diffing: diff equality is always computed on unhighlighted text.
package highlight

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// DefaultTheme is used when no theme is configured.
const DefaultTheme = "dracula"

// formatter emits ANSI 256-color escapes, which every terminal we target
// understands.
const formatter = "terminal256"

// Line highlights one line of code for the given chroma language and theme.
// It is total: if highlighting fails, the input text is returned unstyled.
// The trailing newline handling of the input is preserved.
func Line(text, language, theme string) string {
	if language == "" {
		return text
	}
	if theme == "" {
		theme = DefaultTheme
	}

	var buf bytes.Buffer
	if err := quick.Highlight(&buf, text, language, formatter, theme); err != nil {
		return text
	}
	// chroma appends a newline the input didn't have; keep the two in sync.
	out := buf.String()
	if !strings.HasSuffix(text, "\n") {
		out = strings.TrimSuffix(out, "\n")
	}
	return out
}
