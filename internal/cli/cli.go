// Package cli is the codescroll command-line surface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codescroll/codescroll/internal/config"
	"github.com/codescroll/codescroll/internal/highlight"
	"github.com/codescroll/codescroll/internal/simplelogger"
	"github.com/codescroll/codescroll/internal/story"
	"github.com/codescroll/codescroll/internal/timeline"
)

// flags shared by all subcommands.
var (
	flagTheme    string
	flagContext  int
	flagCollapse bool
)

// NewRootCommand builds the codescroll command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "codescroll",
		Short: "Play code-diff stories in the terminal",
		Long: `codescroll renders markdown "story" documents whose named code fences
evolve over the document. Each later fence of the same name is shown as a
line-level diff against the previous one, driven by scrolling.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagTheme, "theme", config.Default.Theme, "chroma highlighting theme")
	root.PersistentFlags().IntVar(&flagContext, "context", config.Default.Context, "unchanged lines kept visible around changes")
	root.PersistentFlags().BoolVar(&flagCollapse, "collapse", config.Default.Collapse, "fold quiet unchanged runs")

	root.AddCommand(newPlayCommand())
	root.AddCommand(newRenderCommand())
	root.AddCommand(newInspectCommand())
	return root
}

// Execute runs the CLI and returns any command error.
func Execute() error {
	return NewRootCommand().Execute()
}

// effectiveConfig merges the config file/environment with explicit flag
// overrides. A flag the user set wins over the file; an untouched flag yields
// to it.
func effectiveConfig(cmd *cobra.Command) (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cli: getwd: %w", err)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = flagTheme
	}
	if cmd.Flags().Changed("context") {
		cfg.Context = flagContext
	}
	if cmd.Flags().Changed("collapse") {
		cfg.Collapse = flagCollapse
	}
	return cfg, nil
}

// loadStory reads and parses a story document and builds every group's
// timeline. It also resolves each group's highlighting language from its
// first occurrence.
func loadStory(path string, lineHeight float64) ([]timeline.GroupTimeline, map[string]string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cli: read story: %w", err)
	}

	blocks, err := story.Parse(src)
	if err != nil {
		return nil, nil, err
	}
	simplelogger.Log("cli: parsed %s: %d snapshot blocks", path, len(blocks))

	sources := make([]timeline.Source, len(blocks))
	languages := make(map[string]string)
	for i, b := range blocks {
		sources[i] = timeline.Source{
			Group:  b.Group,
			Text:   b.SnapshotText(),
			Anchor: float64(b.AnchorLine),
		}
		if _, ok := languages[b.Group]; !ok {
			languages[b.Group] = highlight.LanguageFor(b.Language, b.Group)
		}
	}

	return timeline.Parse(sources, lineHeight), languages, nil
}
