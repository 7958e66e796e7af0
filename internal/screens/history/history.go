package history

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mymath/mymath/internal/round"
	"github.com/mymath/mymath/internal/router"
	"github.com/mymath/mymath/internal/screen"
	"github.com/mymath/mymath/internal/store"
	"github.com/mymath/mymath/internal/ui/components"
	"github.com/mymath/mymath/internal/ui/layout"
	"github.com/mymath/mymath/internal/ui/theme"
)

// Limit is the number of sessions the screen loads.
const Limit = 50

type historyLoadedMsg struct {
	Sessions []store.SessionRecord
	Outcomes map[string][]store.OutcomeEventData // sessionID → rounds
	Err      error
}

// HistoryScreen displays past sessions and their rounds.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionRecord
	outcomes  map[string][]store.OutcomeEventData
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := repo.QuerySessions(ctx, store.QueryOpts{Limit: Limit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		outcomes := make(map[string][]store.OutcomeEventData, len(sessions))
		for _, sess := range sessions {
			rounds, err := repo.QueryOutcomes(ctx, sess.SessionID)
			if err != nil {
				continue
			}
			outcomes[sess.SessionID] = rounds
		}
		return historyLoadedMsg{Sessions: sessions, Outcomes: outcomes}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.outcomes = msg.Outcomes
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, components.Keys.Back):
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case key.Matches(msg, components.Keys.Up):
			if s.selected > 0 {
				s.selected--
			}
		case key.Matches(msg, components.Keys.Down):
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case key.Matches(msg, components.Keys.Select):
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No games yet. Let's play!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			s.renderRow(i, sess)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderRounds(sess.SessionID, width))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderRow(i int, sess store.SessionRecord) string {
	prefix := "  "
	if i == s.selected {
		prefix = "> "
	}

	mode := sess.Mode
	if m, err := round.ParseMode(sess.Mode); err == nil {
		mode = m.Title()
	}

	mins := int(sess.EndedAt.Sub(sess.StartedAt).Minutes())
	secs := int(sess.EndedAt.Sub(sess.StartedAt).Seconds()) % 60

	videoStr := ""
	if sess.VideoPath != "" {
		videoStr = "  🎬"
	}

	line := fmt.Sprintf("%s%s  %-8s  %d:%02d  %d/%d correct  %.0f%%%s",
		prefix, sess.EndedAt.Local().Format("Jan 02, 2006 15:04"), mode,
		mins, secs, sess.Correct, sess.Rounds, sess.Accuracy()*100, videoStr)

	style := lipgloss.NewStyle().Foreground(theme.Text)
	if i == s.selected {
		style = style.Foreground(theme.Primary).Bold(true)
	}
	return style.Render(line)
}

func (s *HistoryScreen) renderRounds(sessionID string, width int) string {
	rounds := s.outcomes[sessionID]
	if len(rounds) == 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("    No rounds recorded")) + "\n"
	}

	var b strings.Builder
	for _, r := range rounds {
		o := r.Outcome()
		style := theme.Correct
		if !o.IsCorrect {
			style = theme.Incorrect
		}
		line := fmt.Sprintf("    %2d. %s", o.Round, o.Review())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}
