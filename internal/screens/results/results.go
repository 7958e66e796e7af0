package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mymath/mymath/internal/router"
	"github.com/mymath/mymath/internal/screen"
	"github.com/mymath/mymath/internal/session"
	"github.com/mymath/mymath/internal/ui/components"
	"github.com/mymath/mymath/internal/ui/layout"
	"github.com/mymath/mymath/internal/ui/theme"
)

const (
	reviewColumns = 5
	buttonWidth   = 18
)

// ResultsScreen shows the score of a finished session and what to do next.
type ResultsScreen struct {
	summary *session.Summary
	menu    components.Menu
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. playAgain builds a fresh game of the same kind.
func New(summary *session.Summary, playAgain func() screen.Screen) *ResultsScreen {
	items := []components.MenuItem{
		{Label: "PLAY AGAIN", Disabled: playAgain == nil, Action: func() tea.Cmd {
			next := playAgain()
			return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}},
		{Label: "MAIN MENU", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	return &ResultsScreen{
		summary: summary,
		menu:    components.NewMenu(items),
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Main menu"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render("All done!"))

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Success).
		Bold(true).
		Render(fmt.Sprintf("✅ %d / %d", sum.TotalCorrect, sum.TotalRounds)))

	bar := components.NewProgressBar("", sum.Accuracy, true, min(cw, 40))
	sections = append(sections, bar.View())

	if reviews := renderReviews(sum.Reviews); reviews != "" {
		sections = append(sections, reviews)
	}

	if banner := rewardBanner(sum); banner != "" {
		sections = append(sections, banner)
	}

	sections = append(sections, components.ArcadeMenu(s.menu.Labels(), s.menu.Selected, buttonWidth, cw))

	spaced := make([]string, 0, len(sections)*2)
	for i, sec := range sections {
		if i > 0 {
			spaced = append(spaced, "")
		}
		spaced = append(spaced, sec)
	}
	content := lipgloss.JoinVertical(lipgloss.Center, spaced...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderReviews lays the review entries out in rows of five, green for
// correct rounds and red for wrong ones.
func renderReviews(reviews []string) string {
	if len(reviews) == 0 {
		return ""
	}
	var rows []string
	for start := 0; start < len(reviews); start += reviewColumns {
		end := min(start+reviewColumns, len(reviews))
		cells := make([]string, 0, end-start)
		for _, r := range reviews[start:end] {
			style := theme.Correct
			if strings.HasSuffix(r, "✗") {
				style = theme.Incorrect
			}
			cells = append(cells, style.PaddingRight(3).Render(r))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func rewardBanner(sum *session.Summary) string {
	switch {
	case sum.VideoPath != "":
		return lipgloss.NewStyle().
			Foreground(theme.ArcadeCyan).
			Bold(true).
			Render("🎬 Bonus video! Well done!")
	case sum.RewardEligible:
		return lipgloss.NewStyle().
			Foreground(theme.ArcadeCyan).
			Render("★ Super job!")
	}
	return ""
}
