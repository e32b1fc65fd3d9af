// Package timeline turns the ordered snapshots of a code block into a
// replayable sequence of diff frames for progress-driven rendering.
//
// A Frame is one snapshot's line-level diff against its predecessor (the
// first snapshot's frame is all-Added). Frames are immutable once returned:
// renderers may query them repeatedly and cheaply as the scroll progress
// changes; no re-diff is ever triggered by a progress change.
package timeline

import (
	"errors"
	"fmt"

	"github.com/zeebo/xxh3"

	"github.com/codescroll/codescroll/internal/linediff"
	"github.com/codescroll/codescroll/internal/textline"
)

var (
	// ErrEmptyGroup reports a group with zero snapshots.
	ErrEmptyGroup = errors.New("timeline: group has no snapshots")

	// ErrMismatchedAnchor reports an anchor list whose length does not equal
	// the group's snapshot count. Frames are still usable without offsets.
	ErrMismatchedAnchor = errors.New("timeline: anchor count does not match snapshot count")
)

// Snapshot is one version of a code block's text, keyed by the composite
// (Group, Index) rather than a concatenated string (identifiers may contain
// any separator character).
type Snapshot struct {
	Group string
	Index int
	Lines []textline.Line
}

// MakeSnapshot tokenizes raw text into a Snapshot.
func MakeSnapshot(group string, index int, text string) Snapshot {
	return Snapshot{Group: group, Index: index, Lines: textline.Split(text)}
}

// State is one line of a Frame: its diff classification plus the derived
// collapse mark. Collapsible is true iff the line is unchanged and neither
// neighbor (when present) is added or removed, i.e. it has no adjacent
// change and is eligible for visual folding.
type State struct {
	linediff.LineState
	Collapsible bool
}

// Frame is the ordered diff of one snapshot against its predecessor, plus an
// optional vertical offset hint assigned from the snapshot's anchor.
type Frame struct {
	States []State

	// Offset vertically centers the frame on its anchor. It is a rendering
	// hint only; it never affects diff results. Valid iff HasOffset.
	Offset    float64
	HasOffset bool
}

// Height is the frame's rendered height in line units.
func (f Frame) Height() int {
	return len(f.States)
}

// pairKey identifies a memoized pairwise diff by the content hashes of the
// two compared snapshots.
type pairKey struct {
	prev uint64
	cur  uint64
}

// Builder builds timelines. The zero value is not usable; use NewBuilder.
//
// A Builder memoizes pairwise diff results keyed by snapshot content hashes,
// so re-parsing a document re-diffs only changed snapshot pairs. Memoization
// never changes observable results. Builders are not safe for concurrent use;
// independent call sites should use independent Builders (the package-level
// Build and Parse construct a fresh one per call).
type Builder struct {
	cache map[pairKey][]linediff.LineState
	last  []GroupTimeline
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{cache: make(map[pairKey][]linediff.LineState)}
}

// Build builds one frame per snapshot, in snapshot order. Frame 0 wraps the
// first snapshot's lines as all-Added; frame i diffs snapshots i-1 and i.
// Collapse marks are computed for every state. An empty snapshot list fails
// with ErrEmptyGroup; nothing else can fail.
func (b *Builder) Build(snapshots []Snapshot) ([]Frame, error) {
	if len(snapshots) == 0 {
		return nil, ErrEmptyGroup
	}

	frames := make([]Frame, 0, len(snapshots))
	frames = append(frames, liftStates(firstFrameStates(snapshots[0])))
	for i := 1; i < len(snapshots); i++ {
		frames = append(frames, liftStates(b.diff(snapshots[i-1], snapshots[i])))
	}

	for i := range frames {
		markCollapsible(frames[i].States)
	}
	return frames, nil
}

// Build is the package-level form of Builder.Build, without memoization
// across calls.
func Build(snapshots []Snapshot) ([]Frame, error) {
	return NewBuilder().Build(snapshots)
}

// ApplyAnchors assigns each frame its vertical offset hint: the frame's
// anchor position minus half its rendered height, so the frame is centered
// on its anchor. anchors must hold one position per frame, in frame order;
// a mismatched count fails with ErrMismatchedAnchor and leaves the frames
// untouched (they remain valid without offsets).
func ApplyAnchors(frames []Frame, anchors []float64, lineHeight float64) error {
	if len(anchors) != len(frames) {
		return fmt.Errorf("%w: %d anchors for %d frames", ErrMismatchedAnchor, len(anchors), len(frames))
	}
	for i := range frames {
		frames[i].Offset = anchors[i] - float64(frames[i].Height())*lineHeight/2
		frames[i].HasOffset = true
	}
	return nil
}

func (b *Builder) diff(prev, cur Snapshot) []linediff.LineState {
	key := pairKey{prev: hashLines(prev.Lines), cur: hashLines(cur.Lines)}
	if states, ok := b.cache[key]; ok {
		return states
	}
	states := linediff.Compute(prev.Lines, cur.Lines)
	b.cache[key] = states
	return states
}

// firstFrameStates wraps a snapshot's lines as all-Added.
func firstFrameStates(snap Snapshot) []linediff.LineState {
	states := make([]linediff.LineState, len(snap.Lines))
	for i, ln := range snap.Lines {
		states[i] = linediff.LineState{Kind: linediff.Added, Text: ln.Text, Number: ln.Number}
	}
	return states
}

func liftStates(states []linediff.LineState) Frame {
	out := make([]State, len(states))
	for i, s := range states {
		out[i] = State{LineState: s}
	}
	return Frame{States: out}
}

func markCollapsible(states []State) {
	changed := func(i int) bool {
		return states[i].Kind == linediff.Added || states[i].Kind == linediff.Removed
	}
	for i := range states {
		if changed(i) {
			continue
		}
		if i > 0 && changed(i-1) {
			continue
		}
		if i < len(states)-1 && changed(i+1) {
			continue
		}
		states[i].Collapsible = true
	}
}

func hashLines(lines []textline.Line) uint64 {
	return xxh3.HashString(textline.Join(lines))
}
