// Package textline splits snapshot text into lines and joins them back.
//
// Splitting is total and is the inverse of Join: Join(Split(text)) == text
// for any input. A trailing '\n' at end-of-text yields a final empty Line by
// convention; callers that don't want it must normalize their input first.
package textline

import "strings"

// defaultEOL is the EOL ('\n').
//
// This constant exists because the design may change to allow configurable EOLs (maybe Windows needs "\r\n"), and this provides a nice hook to find callsites.
const defaultEOL = "\n"

// Line is one line of snapshot text, without its trailing boundary.
type Line struct {
	Text   string
	Number int // 1-based position within the snapshot that produced it.
}

// Split splits text on '\n' boundaries into numbered Lines. It never fails:
// any input (including "") yields at least one Line. Line texts never contain
// '\n'.
func Split(text string) []Line {
	parts := strings.Split(text, defaultEOL)
	lines := make([]Line, len(parts))
	for i, p := range parts {
		lines[i] = Line{Text: p, Number: i + 1}
	}
	return lines
}

// Join is the inverse of Split. It ignores Line numbers and joins texts with
// the line boundary.
func Join(lines []Line) string {
	texts := make([]string, len(lines))
	for i, ln := range lines {
		texts[i] = ln.Text
	}
	return strings.Join(texts, defaultEOL)
}
