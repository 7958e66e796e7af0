// Package welcome is the start screen. It checks off what the game found
// (mini-games, pictures, sounds, videos) one line at a time, then waits for
// a key.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mymath/mymath/internal/router"
	"github.com/mymath/mymath/internal/screen"
	"github.com/mymath/mymath/internal/ui/theme"
)

// lineInterval is the pause between two checklist lines.
const lineInterval = 300 * time.Millisecond

type revealMsg struct{}

// WelcomeScreen shows the startup check before the home screen.
type WelcomeScreen struct {
	inventory    Inventory
	lines        []CheckLine
	shown        int
	homeFactory  func() screen.Screen
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with homeFactory's screen
// on the first key press.
func New(inventory Inventory, homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		inventory:   inventory,
		lines:       inventory.Lines(),
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return revealNext()
}

func revealNext() tea.Cmd {
	return tea.Tick(lineInterval, func(time.Time) tea.Msg {
		return revealMsg{}
	})
}

// Ready reports whether every checklist line is visible.
func (w *WelcomeScreen) Ready() bool {
	return w.shown >= len(w.lines)
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case revealMsg:
		if w.Ready() {
			return w, nil
		}
		w.shown++
		if w.Ready() {
			return w, nil
		}
		return w, revealNext()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	home := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	tagline := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render("Let's count together!")

	sections := []string{RenderBanner(w.inventory.Title, width), "", tagline, "", w.renderChecklist()}
	if w.Ready() {
		sections = append(sections, "", theme.Hint.Render("press any key to play"))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (w *WelcomeScreen) renderChecklist() string {
	ok := lipgloss.NewStyle().Foreground(theme.Success)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	text := lipgloss.NewStyle().Foreground(theme.Text)

	rows := make([]string, 0, len(w.lines))
	for i, l := range w.lines {
		if i >= w.shown {
			// Keep the height fixed while lines appear.
			rows = append(rows, "")
			continue
		}
		if l.OK {
			rows = append(rows, ok.Render("✓ ")+text.Render(l.Text))
		} else {
			rows = append(rows, dim.Render("· "+l.Text))
		}
	}
	return lipgloss.NewStyle().Align(lipgloss.Left).Render(strings.Join(rows, "\n"))
}
