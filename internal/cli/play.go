package cli

import (
	"github.com/spf13/cobra"

	"github.com/codescroll/codescroll/internal/player"
	"github.com/codescroll/codescroll/internal/render"
)

func newPlayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play <story.md>",
		Short: "Play a story interactively, scrolling through each group's diffs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := effectiveConfig(cmd)
			if err != nil {
				return err
			}

			groups, languages, err := loadStory(args[0], cfg.LineHeight)
			if err != nil {
				return err
			}

			return player.Run(groups, player.Options{
				Render: render.Options{
					Theme:    cfg.Theme,
					Collapse: cfg.Collapse,
					Context:  cfg.Context,
				},
				Languages: languages,
			})
		},
	}
}
