// Package game is the screen that plays one counting or addition session.
// It drives a round.Engine: delays become tea.Tick commands and the engine's
// presenter callbacks update what is drawn.
package game

import (
	"context"
	"log"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mymath/mymath/internal/config"
	"github.com/mymath/mymath/internal/reward"
	"github.com/mymath/mymath/internal/round"
	"github.com/mymath/mymath/internal/router"
	"github.com/mymath/mymath/internal/screen"
	"github.com/mymath/mymath/internal/screens/results"
	"github.com/mymath/mymath/internal/session"
	"github.com/mymath/mymath/internal/store"
	"github.com/mymath/mymath/internal/ui/components"
	"github.com/mymath/mymath/internal/ui/layout"
)

// VideoPlayer starts a reward video.
type VideoPlayer interface {
	Play(path string) error
}

// Deps are the collaborators of a game screen. Everything but Config is optional.
type Deps struct {
	Config    config.Config
	Assets    round.AssetSource
	Sound     round.SoundPlayer
	Video     VideoPlayer
	Rewards   *reward.Service
	EventRepo store.EventRepo
	Rand      *rand.Rand
	Logger    *log.Logger
}

// GameScreen plays one session and hands over to the results screen.
type GameScreen struct {
	deps   Deps
	mode   round.Mode
	engine *round.Engine

	// pending collects the delays the engine asked for during one Update.
	pending []tea.Cmd
	started time.Time

	current  round.Round
	revealed bool
	answers  components.AnswerRow
	track    components.RoundTrack
	last     *round.Scored
	score    int
	finished bool
	errMsg   string
}

var (
	_ screen.Screen          = (*GameScreen)(nil)
	_ screen.KeyHintProvider = (*GameScreen)(nil)
	_ screen.StatusProvider  = (*GameScreen)(nil)
	_ screen.Closer          = (*GameScreen)(nil)
	_ round.Scheduler        = (*GameScreen)(nil)
	_ round.Presenter        = (*GameScreen)(nil)
)

// New creates a game screen for mode. Invalid settings are shown as an
// error on screen.
func New(mode round.Mode, deps Deps) *GameScreen {
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	g := &GameScreen{
		deps:    deps,
		mode:    mode,
		answers: components.NewAnswerRow(),
		track:   components.NewRoundTrack(deps.Config.Game.Rounds),
	}

	engine, err := round.New(round.SettingsFromConfig(deps.Config), mode, round.Deps{
		Scheduler: g,
		Presenter: g,
		Assets:    deps.Assets,
		Sound:     deps.Sound,
		Rand:      deps.Rand,
		Logger:    deps.Logger,
	})
	if err != nil {
		deps.Logger.Printf("game: %v", err)
		g.errMsg = err.Error()
		return g
	}
	g.engine = engine
	return g
}

func (g *GameScreen) Init() tea.Cmd {
	if g.engine == nil {
		return nil
	}
	g.started = time.Now()
	if err := g.engine.Start(); err != nil {
		g.deps.Logger.Printf("game: %v", err)
		return nil
	}
	g.track.Current = g.engine.RoundIndex()
	return g.flush()
}

func (g *GameScreen) Title() string {
	return g.mode.Title()
}

func (g *GameScreen) KeyHints() []layout.KeyHint {
	if g.errMsg != "" {
		return []layout.KeyHint{
			{Key: "any key", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "1 2 3", Description: "Answer"},
		{Key: "←→", Description: "Move"},
		{Key: "Enter", Description: "Choose"},
		{Key: "Esc", Description: "Menu"},
	}
}

func (g *GameScreen) Status() layout.Status {
	if g.engine == nil {
		return layout.Status{}
	}
	return layout.Status{
		Round:  g.engine.RoundIndex(),
		Rounds: g.engine.Settings().Rounds,
		Score:  g.score,
	}
}

func (g *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case roundTickMsg:
		return g.handleTick(msg)

	case components.AnswerChosenMsg:
		if g.engine == nil {
			return g, nil
		}
		// Rejections are logged by the engine.
		_ = g.engine.SubmitIndex(msg.Index)
		return g, g.flush()

	case sessionSavedMsg:
		if g.engine == nil || msg.SessionID != g.engine.SessionID() {
			return g, nil
		}
		return g, g.showResults(msg.Summary)

	case tea.KeyMsg:
		if g.errMsg != "" {
			return g, func() tea.Msg { return router.PopScreenMsg{} }
		}
		var cmd tea.Cmd
		g.answers, cmd = g.answers.Update(msg)
		return g, cmd
	}
	return g, nil
}

func (g *GameScreen) handleTick(msg roundTickMsg) (screen.Screen, tea.Cmd) {
	if g.engine == nil || !g.engine.Handle(msg.Tick) {
		return g, nil
	}
	if g.engine.State() == round.AwaitingReveal {
		// A new round started: clear the previous one while it waits.
		g.revealed = false
		g.last = nil
		g.answers = components.NewAnswerRow()
		g.track.Current = g.engine.RoundIndex()
	}
	return g, g.flush()
}

// Close abandons a running session so its pending ticks go stale.
func (g *GameScreen) Close() {
	if g.engine != nil {
		g.engine.Abandon()
	}
}

// Schedule implements round.Scheduler with a tea.Tick per request.
func (g *GameScreen) Schedule(after time.Duration, t round.Tick) {
	g.pending = append(g.pending, tea.Tick(after, func(time.Time) tea.Msg {
		return roundTickMsg{Tick: t}
	}))
}

func (g *GameScreen) flush() tea.Cmd {
	cmds := g.pending
	g.pending = nil
	return tea.Batch(cmds...)
}

func (g *GameScreen) OnGroupsReady(r round.Round) {
	g.current = r
	g.revealed = true
	g.track.Current = r.Index
}

func (g *GameScreen) OnOptionsReady(options [3]int, _ int) {
	g.answers = g.answers.Show(options)
}

func (g *GameScreen) OnRoundScored(s round.Scored) {
	g.answers = g.answers.Lock(s.CorrectIndex, s.ChosenIndex)
	g.track = g.track.Mark(s.Outcome.Round, s.Outcome.IsCorrect)
	if s.Outcome.IsCorrect {
		g.score++
	}
	g.last = &s
}

func (g *GameScreen) OnSessionComplete(h session.History, eligible bool) {
	g.finished = true
	g.track.Current = 0
	g.pending = append(g.pending, g.save(h, eligible))
}

// save stores the finished session, hands out the reward video when the
// session earned one and reports the summary.
func (g *GameScreen) save(h session.History, eligible bool) tea.Cmd {
	deps := g.deps
	id := g.engine.SessionID()
	mode := g.mode.String()
	started := g.started
	ended := time.Now()

	return func() tea.Msg {
		ctx := context.Background()

		if deps.EventRepo != nil {
			err := deps.EventRepo.AppendSessionEvent(ctx, store.SessionEventData{
				SessionID:      id,
				Mode:           mode,
				StartedAt:      started,
				EndedAt:        ended,
				Rounds:         h.Len(),
				Correct:        h.CorrectCount(),
				RewardEligible: eligible,
				Outcomes:       store.OutcomeEvents(h.Outcomes()),
			})
			if err != nil {
				deps.Logger.Printf("game: save session %s: %v", id, err)
			}
		}

		summary := session.BuildSummary(mode, h, ended.Sub(started), eligible)
		if eligible && deps.Rewards != nil {
			if award := deps.Rewards.AwardVideo(ctx, id); award != nil {
				summary.VideoPath = award.VideoPath
				if deps.Video != nil {
					if err := deps.Video.Play(award.VideoPath); err != nil {
						deps.Logger.Printf("game: play %s: %v", award.VideoPath, err)
					}
				}
			}
		}
		return sessionSavedMsg{SessionID: id, Summary: summary}
	}
}

func (g *GameScreen) showResults(summary *session.Summary) tea.Cmd {
	mode, deps := g.mode, g.deps
	next := results.New(summary, func() screen.Screen {
		return New(mode, deps)
	})
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}
