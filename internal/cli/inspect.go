package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codescroll/codescroll/internal/timeline"
)

// JSON shapes for inspect output. The core types stay plain; serialization is
// a CLI concern.
type inspectGroup struct {
	Group  string         `json:"group"`
	Error  string         `json:"error,omitempty"`
	Frames []inspectFrame `json:"frames,omitempty"`
}

type inspectFrame struct {
	Offset *float64       `json:"offset,omitempty"`
	Lines  []inspectState `json:"lines"`
}

type inspectState struct {
	Kind        string `json:"kind"`
	Text        string `json:"text"`
	Number      int    `json:"number,omitempty"`
	Collapsible bool   `json:"collapsible,omitempty"`
}

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <story.md>",
		Short: "Dump a story's timelines as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := effectiveConfig(cmd)
			if err != nil {
				return err
			}

			groups, _, err := loadStory(args[0], cfg.LineHeight)
			if err != nil {
				return err
			}

			out := make([]inspectGroup, 0, len(groups))
			for _, g := range groups {
				out = append(out, toInspectGroup(g))
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				return fmt.Errorf("cli: encode timelines: %w", err)
			}
			return nil
		},
	}
}

func toInspectGroup(g timeline.GroupTimeline) inspectGroup {
	ig := inspectGroup{Group: g.Group}
	if g.Err != nil {
		ig.Error = g.Err.Error()
	}
	for _, f := range g.Frames {
		frame := inspectFrame{}
		if f.HasOffset {
			offset := f.Offset
			frame.Offset = &offset
		}
		for _, s := range f.States {
			frame.Lines = append(frame.Lines, inspectState{
				Kind:        s.Kind.String(),
				Text:        s.Text,
				Number:      s.Number,
				Collapsible: s.Collapsible,
			})
		}
		ig.Frames = append(ig.Frames, frame)
	}
	return ig
}
