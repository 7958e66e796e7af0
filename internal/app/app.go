// Package app is the root Bubble Tea model: it owns the screen router and
// draws the header and footer around the active screen.
package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mymath/mymath/internal/router"
	"github.com/mymath/mymath/internal/screen"
	"github.com/mymath/mymath/internal/ui/layout"
)

// Options configures the root model.
type Options struct {
	// Title is shown on the left of the header.
	Title string

	// AltScreen runs the program in the terminal's alternate screen.
	AltScreen bool

	// Start, when set, is pushed on top of the root screen at startup.
	Start screen.Screen
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	start     screen.Screen
	title     string
	altScreen bool
	width     int
	height    int
}

// New creates an AppModel with root at the bottom of the screen stack.
func New(root screen.Screen, opts Options) AppModel {
	return AppModel{
		router:    router.New(root),
		start:     opts.Start,
		title:     opts.Title,
		altScreen: opts.AltScreen,
	}
}

func (m AppModel) Init() tea.Cmd {
	cmd := m.router.Init()
	if m.start != nil {
		cmd = tea.Batch(cmd, m.router.Push(m.start))
	}
	return cmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = m.altScreen
	return v
}

// render draws the header, the active screen and the footer.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	var status layout.Status
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(m.title, title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		return append(hp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and closes every screen when it ends.
func Run(m AppModel) error {
	defer m.router.CloseAll()

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
