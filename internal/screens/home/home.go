package home

import (
	"context"
	"log"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/mymath/mymath/internal/round"
	"github.com/mymath/mymath/internal/router"
	"github.com/mymath/mymath/internal/screen"
	"github.com/mymath/mymath/internal/screens/game"
	"github.com/mymath/mymath/internal/screens/history"
	"github.com/mymath/mymath/internal/store"
	"github.com/mymath/mymath/internal/ui/components"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	title         string
	menu          components.Menu
	sessionCount  int
	videoCount    int
	mascotVariant MascotVariant
	mascotBadge   string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. eventRepo may be nil, in which case history
// is unavailable and no stats are shown.
func New(gameDeps game.Deps, eventRepo store.EventRepo) *HomeScreen {
	if gameDeps.Logger == nil {
		gameDeps.Logger = log.Default()
	}

	var sessionCount, videoCount int
	var last *store.SessionRecord

	if eventRepo != nil {
		ctx := context.Background()
		if sessions, err := eventRepo.QuerySessions(ctx, store.QueryOpts{}); err == nil {
			sessionCount = len(sessions)
			if len(sessions) > 0 {
				last = &sessions[0]
			}
		} else {
			gameDeps.Logger.Printf("home: load sessions: %v", err)
		}
		if n, err := eventRepo.RewardCount(ctx); err == nil {
			videoCount = n
		}
	}

	play := func(mode round.Mode) func() tea.Cmd {
		return func() tea.Cmd {
			s := game.New(mode, gameDeps)
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}
	}

	items := []components.MenuItem{
		{Label: "COUNTING", Action: play(round.Counting)},
		{Label: "ADDITION", Action: play(round.Addition)},
		{Label: "HISTORY", Disabled: eventRepo == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	mascotVariant, mascotBadge := mascotFor(last)

	title := gameDeps.Config.Title
	if title == "" {
		title = "MyMath"
	}

	return &HomeScreen{
		title:         title,
		menu:          components.NewMenu(items),
		sessionCount:  sessionCount,
		videoCount:    videoCount,
		mascotVariant: mascotVariant,
		mascotBadge:   mascotBadge,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(h.title, cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, h.mascotBadge, cw))
	}
	sections = append(sections, renderStatsBar(h.sessionCount, h.videoCount, cw, compact))

	disabled := make(map[int]bool)
	for i, item := range h.menu.Items {
		if item.Disabled {
			disabled[i] = true
		}
	}
	if compact {
		sections = append(sections, renderArcadeMenuCompact(h.menu.Labels(), h.menu.Selected, cw, disabled))
	} else {
		sections = append(sections, renderArcadeMenu(h.menu.Labels(), h.menu.Selected, cw, disabled))
	}

	content := strings.Join(sections, "\n\n")
	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
