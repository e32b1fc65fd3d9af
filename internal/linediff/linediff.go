// Package linediff computes line-level diffs between two snapshots of a code
// block.
//
// Representation: Compute returns an ordered slice of LineStates that cover
// the whole diff. Lines are atomic tokens; two lines are equal iff their text
// is byte-for-byte identical. The Unchanged entries, read in order, form the
// longest common subsequence of the two inputs, so the Added+Removed count is
// minimal.
//
// Invariants:
//   - concat(Unchanged+Added texts, in order) == current text
//   - concat(Unchanged+Removed texts, in order) == previous text
//   - Added/Unchanged line numbers increase by exactly 1 per non-Removed
//     entry, starting at 1; Removed entries carry the number the line held in
//     the previous snapshot.
//
// Tie-break: when multiple minimal edit scripts exist, all Removed lines of a
// hunk are emitted before its Added lines, matching conventional unified-diff
// presentation. The output is deterministic for identical inputs.
package linediff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/codescroll/codescroll/internal/textline"
)

// Kind classifies a line of a pairwise snapshot diff.
type Kind int

// Classifications from previous snapshot to current snapshot.
const (
	Unchanged Kind = iota
	Added
	Removed
)

func (k Kind) String() string {
	switch k {
	case Unchanged:
		return "unchanged"
	case Added:
		return "added"
	case Removed:
		return "removed"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// LineState is one output line of a diff: its classification, its text, and
// its line number (current snapshot for Added/Unchanged, previous snapshot
// for Removed).
type LineState struct {
	Kind   Kind
	Text   string
	Number int
}

// Compute diffs previous to current, returning the ordered LineStates.
//
// It never fails: empty previous means all of current is Added, empty current
// means all of previous is Removed, and identical inputs yield all Unchanged.
func Compute(previous, current []textline.Line) []LineState {
	dmp := diffmatchpatch.New()

	// Diff based on lines. Each line is canonicalized to text+"\n" before
	// encoding so a final line without a trailing boundary still compares
	// equal to the same text mid-sequence.
	rOld, rNew, lineArray := dmp.DiffLinesToRunes(encode(previous), encode(current))
	lineDiffs := dmp.DiffMainRunes(rOld, rNew, false)
	lineDiffs = dmp.DiffCleanupMerge(lineDiffs)

	// Decode rune-string back to slice of original line texts using the lineArray mapping.
	decode := func(s string) []string {
		if s == "" {
			return nil
		}
		out := make([]string, 0, len(s))
		for _, r := range s {
			idx := int(r)
			if idx >= 0 && idx < len(lineArray) {
				out = append(out, strings.TrimSuffix(lineArray[idx], "\n"))
			}
		}
		return out
	}

	var states []LineState
	var dels []string
	var ins []string
	nextPrev := 1 // next line number in previous
	nextCur := 1  // next line number in current

	flush := func() {
		for _, text := range dels {
			states = append(states, LineState{Kind: Removed, Text: text, Number: nextPrev})
			nextPrev++
		}
		for _, text := range ins {
			states = append(states, LineState{Kind: Added, Text: text, Number: nextCur})
			nextCur++
		}
		dels = nil
		ins = nil
	}

	for _, d := range lineDiffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			for _, text := range decode(d.Text) {
				states = append(states, LineState{Kind: Unchanged, Text: text, Number: nextCur})
				nextPrev++
				nextCur++
			}
		case diffmatchpatch.DiffDelete:
			dels = append(dels, decode(d.Text)...)
		case diffmatchpatch.DiffInsert:
			ins = append(ins, decode(d.Text)...)
		}
	}
	flush()

	if err := validate(previous, current, states); err != nil {
		panic(fmt.Errorf("linediff.Compute: validate failed with %v", err))
	}

	return states
}

// encode joins lines into the canonical form consumed by the rune encoder:
// every line, including the last, carries a trailing '\n'.
func encode(lines []textline.Line) string {
	var b strings.Builder
	for _, ln := range lines {
		b.WriteString(ln.Text)
		b.WriteByte('\n')
	}
	return b.String()
}
