package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/codescroll/codescroll/internal/render"
)

func newRenderCommand() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "render <story.md>",
		Short: "Print every group's frame sequence as a static diff dump",
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
			if len(groups) == 0 {
				return fmt.Errorf("cli: %s has no named code fences", args[0])
			}

			if width == 0 {
				width = terminalWidth()
			}

			failed := 0
			for _, g := range groups {
				if g.Err != nil {
					// A bad group is reported and skipped; its siblings still render.
					color.Red("%s: %v", g.Group, g.Err)
					failed++
					continue
				}
				out := render.Group(g, render.Options{
					Language: languages[g.Group],
					Theme:    cfg.Theme,
					Collapse: cfg.Collapse,
					Context:  cfg.Context,
					Width:    width,
				})
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			if failed == len(groups) {
				return fmt.Errorf("cli: every group in %s failed", args[0])
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "output width in cells (0 = detect)")
	return cmd
}

// terminalWidth returns the stdout terminal width, or 0 (no truncation) when
// stdout is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}
