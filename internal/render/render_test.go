package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codescroll/codescroll/internal/timeline"
)

func buildFrames(t *testing.T, texts ...string) []timeline.Frame {
	t.Helper()
	snaps := make([]timeline.Snapshot, len(texts))
	for i, text := range texts {
		snaps[i] = timeline.MakeSnapshot("f", i, text)
	}
	frames, err := timeline.Build(snaps)
	require.NoError(t, err)
	return frames
}

func TestFrame_Prefixes(t *testing.T) {
	frames := buildFrames(t, "a\nb\nc", "a\nx\nc")

	out := Frame(frames[1], Options{})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)

	require.Contains(t, lines[0], " ")
	require.Contains(t, lines[0], "a")
	require.Contains(t, lines[1], "-")
	require.Contains(t, lines[1], "b")
	require.Contains(t, lines[2], "+")
	require.Contains(t, lines[2], "x")
	require.Contains(t, lines[3], "c")
}

func TestFrame_LineNumbers(t *testing.T) {
	frames := buildFrames(t, "a\nb\nc")

	out := Frame(frames[0], Options{})
	require.Contains(t, out, "1│")
	require.Contains(t, out, "2│")
	require.Contains(t, out, "3│")
}

func TestFrame_CollapseFoldsQuietRuns(t *testing.T) {
	old := "a\nb\nc\nd\ne\nf\ng\nh"
	new := "a\nb\nc\nd\ne\nf\ng\nh\nnew"
	frames := buildFrames(t, old, new)

	out := Frame(frames[1], Options{Collapse: true, Context: 1})
	require.Contains(t, out, "unchanged lines")
	// The line adjacent to the change is context and must stay visible.
	require.Contains(t, out, "8│")
	require.Contains(t, out, "new")
	// Deep-in-the-run lines are folded away (line 4 is "d").
	require.NotContains(t, out, "4│")
}

func TestFrame_NoCollapseShowsEverything(t *testing.T) {
	frames := buildFrames(t, "a\nb\nc\nd\ne\nf\ng\nh")

	out := Frame(frames[0], Options{Collapse: false})
	for _, want := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		require.Contains(t, out, want)
	}
	require.NotContains(t, out, "unchanged lines")
}

func TestFrame_ShortRunsNotFolded(t *testing.T) {
	// Folding a short run would replace one or two lines with a marker line;
	// those stay expanded.
	frames := buildFrames(t, "a\nb\nc", "a\nb\nc")

	out := Frame(frames[1], Options{Collapse: true, Context: 1})
	require.NotContains(t, out, "unchanged lines")
}

func TestGroup_Headers(t *testing.T) {
	g := timeline.GroupTimeline{Group: "app.js", Frames: buildFrames(t, "v1", "v2")}

	out := Group(g, Options{})
	require.Contains(t, out, "app.js (1/2):")
	require.Contains(t, out, "app.js (2/2):")
}

func TestFrame_WidthTruncation(t *testing.T) {
	frames := buildFrames(t, strings.Repeat("x", 200))

	out := Frame(frames[0], Options{Width: 20})
	for _, line := range strings.Split(out, "\n") {
		require.LessOrEqual(t, len([]rune(stripANSI(line))), 21)
	}
}

// stripANSI removes SGR escape sequences so width assertions see only cells.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
