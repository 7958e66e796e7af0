package results

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mymath/mymath/internal/router"
	"github.com/mymath/mymath/internal/screen"
	"github.com/mymath/mymath/internal/session"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "game" }
func (s *stubScreen) Title() string                          { return "Game" }

func testSummary() *session.Summary {
	return &session.Summary{
		Mode:         "addition",
		Duration:     2 * time.Minute,
		TotalRounds:  3,
		TotalCorrect: 2,
		TotalWrong:   1,
		Accuracy:     2.0 / 3.0,
		Reviews:      []string{"3 + 4 = 7 ✓", "2 + 2 = 4 ✓", "1 + 5 = 6, picked 5 ✗"},
	}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestResultsScreen_Title(t *testing.T) {
	s := New(testSummary(), nil)
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestResultsScreen_Display(t *testing.T) {
	s := New(testSummary(), nil)
	view := s.View(100, 30)
	for _, want := range []string{"2 / 3", "3 + 4 = 7 ✓", "picked 5 ✗", "MAIN MENU"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "Bonus video") {
		t.Error("no reward banner expected")
	}
}

func TestResultsScreen_RewardBanner(t *testing.T) {
	sum := testSummary()
	sum.RewardEligible = true
	sum.VideoPath = "/videos/dance.mp4"
	view := New(sum, nil).View(100, 30)
	if !strings.Contains(view, "Bonus video") {
		t.Error("expected reward banner")
	}
}

func TestResultsScreen_PlayAgainReplaces(t *testing.T) {
	calls := 0
	s := New(testSummary(), func() screen.Screen {
		calls++
		return &stubScreen{}
	})

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen == nil || calls != 1 {
		t.Errorf("expected one new game screen, got %d calls", calls)
	}
}

func TestResultsScreen_MainMenuPops(t *testing.T) {
	s := New(testSummary(), nil)
	if s.menu.Selected != 1 {
		t.Fatalf("play again is disabled, expected MAIN MENU selected, got %d", s.menu.Selected)
	}
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestResultsScreen_KeyHints(t *testing.T) {
	if hints := New(testSummary(), nil).KeyHints(); len(hints) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(hints))
	}
}
