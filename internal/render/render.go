// Package render paints timeline frames as ANSI text for terminals.
//
// Added lines are prefixed "+", removed lines "-", unchanged lines " ",
// mirroring unified-diff presentation. Runs of collapsible unchanged lines
// are folded to an elision marker, keeping a configurable amount of context
// at each edge. The output is for human eyes, not a machine-readable diff.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/codescroll/codescroll/internal/highlight"
	"github.com/codescroll/codescroll/internal/linediff"
	"github.com/codescroll/codescroll/internal/timeline"
)

var (
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("114"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("217"))
	elisionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true)
	gutterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
)

// Options controls frame rendering.
type Options struct {
	Language string // chroma language for unchanged lines; "" disables highlighting
	Theme    string // chroma theme; "" uses the default
	Collapse bool   // fold collapsible unchanged runs
	Context  int    // unchanged lines kept visible at each edge of a folded run
	Width    int    // truncate rendered lines to this cell width; 0 disables
}

// Frame renders one frame, line by line.
func Frame(f timeline.Frame, opts Options) string {
	var out []string
	states := f.States

	for i := 0; i < len(states); {
		if opts.Collapse {
			if n := foldableRun(states, i, opts.Context); n > 0 {
				for j := i; j < i+opts.Context; j++ {
					out = append(out, renderState(states[j], opts))
				}
				out = append(out, elisionStyle.Render(fmt.Sprintf("  ⋯ %d unchanged lines", n)))
				tail := i + runLen(states, i) - opts.Context
				for j := tail; j < i+runLen(states, i); j++ {
					out = append(out, renderState(states[j], opts))
				}
				i += runLen(states, i)
				continue
			}
		}
		out = append(out, renderState(states[i], opts))
		i++
	}

	return strings.Join(out, "\n")
}

// Group renders every frame of a group, each under a header naming the group
// and the frame's position in the sequence.
func Group(g timeline.GroupTimeline, opts Options) string {
	var out []string
	for i, f := range g.Frames {
		out = append(out, headerStyle.Render(fmt.Sprintf("%s (%d/%d):", g.Group, i+1, len(g.Frames))))
		out = append(out, Frame(f, opts))
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}

// runLen is the length of the collapsible run starting at i (0 if states[i]
// is not collapsible).
func runLen(states []timeline.State, i int) int {
	n := 0
	for i+n < len(states) && states[i+n].Collapsible {
		n++
	}
	return n
}

// foldableRun reports how many lines the collapsible run starting at i would
// fold after keeping context lines at each edge. Runs that would fold fewer
// than two lines are left unfolded: a one-line elision marker saves nothing.
func foldableRun(states []timeline.State, i, context int) int {
	run := runLen(states, i)
	folded := run - 2*context
	if folded < 2 {
		return 0
	}
	return folded
}

func renderState(s timeline.State, opts Options) string {
	switch s.Kind {
	case linediff.Added:
		return clip("+"+gutter(s.Number)+s.Text, opts.Width, addedStyle)
	case linediff.Removed:
		return clip("-"+gutter(s.Number)+s.Text, opts.Width, removedStyle)
	default:
		text := s.Text
		if opts.Language != "" {
			text = highlight.Line(text, opts.Language, opts.Theme)
		}
		// Gutter styled separately so the highlighted text keeps its colors.
		prefix := " " + gutterStyle.Render(gutter(s.Number))
		if opts.Width > 0 && opts.Language == "" {
			return prefix + runewidth.Truncate(text, max(opts.Width-gutterWidth-1, 1), "…")
		}
		return prefix + text
	}
}

// gutterWidth is the cell width of the line-number column.
const gutterWidth = 4

func gutter(number int) string {
	return fmt.Sprintf("%3d│", number)
}

// clip truncates raw text to width and applies style to the whole line.
func clip(text string, width int, style lipgloss.Style) string {
	if width > 0 {
		text = runewidth.Truncate(text, width, "…")
	}
	return style.Render(text)
}
