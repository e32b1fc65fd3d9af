package timeline

// Source is one snapshot occurrence as extracted from the surrounding
// document: the group it belongs to, its raw text, and the document position
// of its anchor.
type Source struct {
	Group  string
	Text   string
	Anchor float64
}

// GroupTimeline is the ordered frame list for one group. Err records that
// group's failure, if any; a failed group never aborts its siblings.
type GroupTimeline struct {
	Group  string
	Frames []Frame
	Err    error
}

// BuildGroup builds one group's timeline from raw snapshot texts and their
// anchors. An empty texts list yields Err == ErrEmptyGroup and no frames.
// A mismatched anchor count yields the frames with Err == ErrMismatchedAnchor
// and no offsets assigned.
func (b *Builder) BuildGroup(group string, texts []string, anchors []float64, lineHeight float64) GroupTimeline {
	snapshots := make([]Snapshot, len(texts))
	for i, text := range texts {
		snapshots[i] = MakeSnapshot(group, i, text)
	}

	frames, err := b.Build(snapshots)
	if err != nil {
		return GroupTimeline{Group: group, Err: err}
	}
	if err := ApplyAnchors(frames, anchors, lineHeight); err != nil {
		return GroupTimeline{Group: group, Frames: frames, Err: err}
	}
	return GroupTimeline{Group: group, Frames: frames}
}

// Parse groups sources by identifier (in first-appearance order, snapshots in
// document order within each group) and builds every group's timeline. Errors
// stay on their own GroupTimeline. The result replaces the Builder's previous
// timeline wholesale; no incremental update is attempted.
func (b *Builder) Parse(sources []Source, lineHeight float64) []GroupTimeline {
	var order []string
	texts := make(map[string][]string)
	anchors := make(map[string][]float64)
	for _, src := range sources {
		if _, seen := texts[src.Group]; !seen {
			order = append(order, src.Group)
		}
		texts[src.Group] = append(texts[src.Group], src.Text)
		anchors[src.Group] = append(anchors[src.Group], src.Anchor)
	}

	groups := make([]GroupTimeline, 0, len(order))
	for _, group := range order {
		groups = append(groups, b.BuildGroup(group, texts[group], anchors[group], lineHeight))
	}

	b.last = groups
	return groups
}

// Last returns the most recently parsed timeline, or nil if Parse has not
// been called.
func (b *Builder) Last() []GroupTimeline {
	return b.last
}

// Parse is the package-level form of Builder.Parse, without memoization
// across calls.
func Parse(sources []Source, lineHeight float64) []GroupTimeline {
	return NewBuilder().Parse(sources, lineHeight)
}
