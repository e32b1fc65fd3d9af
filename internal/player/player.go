// Package player is the interactive, scroll-driven presentation of a story's
// timelines.
//
// Scrolling drives a scalar progress value from 0 to 1 across the focused
// group's frames; crossing a frame boundary transitions the view to the next
// snapshot's diff. Progress changes only select among prebuilt frames - no
// re-diff ever happens while scrubbing.
package player

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/codescroll/codescroll/internal/highlight"
	"github.com/codescroll/codescroll/internal/render"
	"github.com/codescroll/codescroll/internal/simplelogger"
	"github.com/codescroll/codescroll/internal/timeline"
)

// mouseWheelScrollSteps is the number of progress steps to advance per wheel
// "click".
const mouseWheelScrollSteps = 3

// stepsPerFrame is how many scroll steps it takes to cross one frame.
const stepsPerFrame = 4

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Options configures the player.
type Options struct {
	Render    render.Options
	Languages map[string]string // group -> chroma language
}

type model struct {
	groups []timeline.GroupTimeline
	opts   Options

	group    int     // index of the focused group
	progress float64 // scroll progress through the focused group, in [0, 1]

	vp     viewport.Model
	bar    progress.Model
	width  int
	height int
	ready  bool
}

// New returns a Bubble Tea model that plays the given timelines.
func New(groups []timeline.GroupTimeline, opts Options) tea.Model {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40
	return &model{groups: groups, opts: opts, bar: bar}
}

// Run plays the timelines until the user quits.
func Run(groups []timeline.GroupTimeline, opts Options) error {
	if len(groups) == 0 {
		return fmt.Errorf("player: story has no snapshot groups")
	}
	simplelogger.Log("player: starting with %d groups", len(groups))
	p := tea.NewProgram(New(groups, opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = min(msg.Width-4, 60)
		bodyHeight := max(msg.Height-4, 1)
		if !m.ready {
			m.vp = viewport.New(msg.Width, bodyHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = bodyHeight
		}
		m.refresh()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "down", "right", " ":
			m.step(1)
		case "up", "left":
			m.step(-1)
		case "pgdown":
			m.step(stepsPerFrame)
		case "pgup":
			m.step(-stepsPerFrame)
		case "home":
			m.progress = 0
			m.refresh()
		case "end":
			m.progress = 1
			m.refresh()
		case "tab":
			m.focusGroup(m.group + 1)
		case "shift+tab":
			m.focusGroup(m.group - 1)
		case "j":
			m.vp.LineDown(1)
		case "k":
			m.vp.LineUp(1)
		}

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelDown:
			m.step(mouseWheelScrollSteps)
		case tea.MouseButtonWheelUp:
			m.step(-mouseWheelScrollSteps)
		}
	}

	return m, nil
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}
	g := m.current()

	title := titleStyle.Render(fmt.Sprintf("%s  [group %d/%d]", g.Group, m.group+1, len(m.groups)))
	if g.Err != nil {
		return title + "\n" + errStyle.Render(g.Err.Error()) + "\n" +
			statusStyle.Render("tab: next group  q: quit")
	}

	status := statusStyle.Render(fmt.Sprintf(
		"frame %d/%d  ·  scroll: ↑/↓/wheel  frames: pgup/pgdn  groups: tab  quit: q",
		m.frameIndex()+1, len(g.Frames)))

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(m.progress))
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(status)
	return b.String()
}

func (m *model) current() timeline.GroupTimeline {
	return m.groups[m.group]
}

// frameIndex maps the continuous progress value onto a frame of the focused
// group: the timeline is divided evenly, and progress 1 pins the last frame.
func (m *model) frameIndex() int {
	n := len(m.current().Frames)
	if n == 0 {
		return 0
	}
	idx := int(m.progress * float64(n))
	return min(idx, n-1)
}

func (m *model) step(steps int) {
	n := len(m.current().Frames)
	if n == 0 {
		return
	}
	delta := float64(steps) / float64(n*stepsPerFrame)
	m.progress = clamp(m.progress+delta, 0, 1)
	m.refresh()
}

func (m *model) focusGroup(i int) {
	n := len(m.groups)
	m.group = ((i % n) + n) % n
	m.progress = 0
	m.refresh()
}

// refresh repaints the viewport for the active frame. Frames are prebuilt;
// this only re-renders text.
func (m *model) refresh() {
	if !m.ready {
		return
	}
	g := m.current()
	if g.Err != nil || len(g.Frames) == 0 {
		m.vp.SetContent("")
		return
	}
	opts := m.opts.Render
	opts.Width = m.width
	if lang, ok := m.opts.Languages[g.Group]; ok {
		opts.Language = lang
	} else if opts.Language == "" {
		opts.Language = highlight.LanguageFor("", g.Group)
	}
	m.vp.SetContent(render.Frame(g.Frames[m.frameIndex()], opts))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
