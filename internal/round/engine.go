// Package round runs one mini-game session: it builds each round, paces the
// reveal of items and answers through an injected scheduler, scores answers
// and decides the reward when the last round is done.
package round

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/mymath/mymath/internal/config"
	"github.com/mymath/mymath/internal/distractor"
	"github.com/mymath/mymath/internal/grouping"
	"github.com/mymath/mymath/internal/reward"
	"github.com/mymath/mymath/internal/session"
)

var (
	// ErrInvalidSubmission wraps every rejected Submit.
	ErrInvalidSubmission = errors.New("invalid answer submission")

	// ErrNotAwaitingAnswer means Submit was called outside AwaitingAnswer.
	ErrNotAwaitingAnswer = errors.New("not awaiting an answer")

	// ErrNotAnOption means the submitted value is not one of the offered answers.
	ErrNotAnOption = errors.New("value is not one of the options")

	// ErrInvalidSettings is returned by New for settings a mode cannot run with.
	ErrInvalidSettings = errors.New("invalid round settings")

	// ErrAlreadyStarted is returned by Start on an engine that left Idle.
	ErrAlreadyStarted = errors.New("session already started")
)

// State is the engine's position in the round lifecycle.
type State int

const (
	Idle State = iota
	AwaitingReveal
	AwaitingOptions
	AwaitingAnswer
	Scoring
	Complete
	Abandoned
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingReveal:
		return "awaiting-reveal"
	case AwaitingOptions:
		return "awaiting-options"
	case AwaitingAnswer:
		return "awaiting-answer"
	case Scoring:
		return "scoring"
	case Complete:
		return "complete"
	case Abandoned:
		return "abandoned"
	}
	return "unknown"
}

// Settings are the numbers a session runs with. They are copied into the
// engine and never change during a session.
type Settings struct {
	MaxNumber int
	Rounds    int
	MinCount  int
	MaxCount  int

	RevealDelay    time.Duration
	OptionsDelay   time.Duration
	NextRoundDelay time.Duration

	SoundEnabled bool
	Reward       reward.Policy
}

// SettingsFromConfig extracts the engine settings from the loaded config.
func SettingsFromConfig(cfg config.Config) Settings {
	return Settings{
		MaxNumber:      cfg.Game.MaxNumber,
		Rounds:         cfg.Game.Rounds,
		MinCount:       cfg.Counting.MinCount,
		MaxCount:       cfg.Counting.MaxCount,
		RevealDelay:    cfg.Game.RevealDelay(),
		OptionsDelay:   cfg.Game.OptionsDelay(),
		NextRoundDelay: cfg.Game.NextRoundDelay(),
		SoundEnabled:   cfg.Sound.Enabled,
		Reward: reward.Policy{
			MinRounds: cfg.Video.MinRounds,
			MaxWrong:  cfg.Video.MaxWrong,
		},
	}
}

func (s Settings) validate(mode Mode) error {
	if s.Rounds < 1 {
		return fmt.Errorf("%w: rounds must be at least 1, got %d", ErrInvalidSettings, s.Rounds)
	}
	switch mode {
	case Counting:
		if s.MinCount < 1 || s.MaxCount < s.MinCount {
			return fmt.Errorf("%w: counting range [%d, %d]", ErrInvalidSettings, s.MinCount, s.MaxCount)
		}
	case Addition:
		if s.MaxNumber < 2 {
			return fmt.Errorf("%w: addition needs max number of at least 2, got %d", ErrInvalidSettings, s.MaxNumber)
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
	return nil
}

// Deps are the engine's collaborators. Scheduler and Presenter are required.
type Deps struct {
	Scheduler Scheduler
	Presenter Presenter
	Assets    AssetSource
	Sound     SoundPlayer
	Rand      *rand.Rand
	Logger    *log.Logger

	// SessionID defaults to a random UUID.
	SessionID string
}

// Engine is the round state machine for one session. It is not safe for
// concurrent use; every call is expected on the UI goroutine.
type Engine struct {
	settings  Settings
	mode      Mode
	sessionID string

	scheduler Scheduler
	presenter Presenter
	assets    AssetSource
	sound     SoundPlayer
	rng       *rand.Rand
	logger    *log.Logger

	state   State
	round   int
	spec    Spec
	groups  []int
	image   string
	answers distractor.AnswerSet
	history session.History
}

// New creates an Idle engine.
func New(settings Settings, mode Mode, deps Deps) (*Engine, error) {
	if err := settings.validate(mode); err != nil {
		return nil, err
	}
	if deps.Scheduler == nil || deps.Presenter == nil {
		return nil, errors.New("round: scheduler and presenter are required")
	}

	e := &Engine{
		settings:  settings,
		mode:      mode,
		sessionID: deps.SessionID,
		scheduler: deps.Scheduler,
		presenter: deps.Presenter,
		assets:    deps.Assets,
		sound:     deps.Sound,
		rng:       deps.Rand,
		logger:    deps.Logger,
	}
	if e.sessionID == "" {
		e.sessionID = uuid.NewString()
	}
	if e.assets == nil {
		e.assets = noAssets{}
	}
	if e.sound == nil {
		e.sound = silent{}
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.logger == nil {
		e.logger = log.Default()
	}
	return e, nil
}

// Start begins round 1.
func (e *Engine) Start() error {
	if e.state != Idle {
		return fmt.Errorf("%w: state %s", ErrAlreadyStarted, e.state)
	}
	e.beginRound(1)
	return nil
}

// Handle applies a scheduled tick. It returns false, changing nothing, when
// the tick is stale: another session, another round, or a phase the engine
// is not waiting for.
func (e *Engine) Handle(t Tick) bool {
	if t.Session != e.sessionID || t.Round != e.round {
		return false
	}

	switch {
	case t.Phase == PhaseReveal && e.state == AwaitingReveal:
		e.reveal()
	case t.Phase == PhaseOptions && e.state == AwaitingOptions:
		e.state = AwaitingAnswer
		e.presenter.OnOptionsReady(e.answers.Values, e.answers.CorrectIndex)
	case t.Phase == PhaseAdvance && e.state == Scoring:
		if e.round < e.settings.Rounds {
			e.beginRound(e.round + 1)
		} else {
			e.complete()
		}
	default:
		return false
	}
	return true
}

// Submit scores value as the answer to the current round. Rejected
// submissions are logged and leave the engine unchanged.
func (e *Engine) Submit(value int) error {
	if e.state != AwaitingAnswer {
		e.logger.Printf("round: ignoring answer %d in state %s", value, e.state)
		return fmt.Errorf("%w: %w (state %s)", ErrInvalidSubmission, ErrNotAwaitingAnswer, e.state)
	}
	chosen := e.answers.IndexOf(value)
	if chosen < 0 {
		e.logger.Printf("round: ignoring answer %d, options are %v", value, e.answers.Values)
		return fmt.Errorf("%w: %w (%d)", ErrInvalidSubmission, ErrNotAnOption, value)
	}

	outcome := session.Outcome{
		Round:     e.round,
		Correct:   e.spec.Count,
		Chosen:    value,
		IsCorrect: value == e.spec.Count,
	}
	if e.mode == Addition {
		outcome.OperandA = e.spec.OperandA
		outcome.OperandB = e.spec.OperandB
	}
	e.history.Append(outcome)
	e.state = Scoring

	e.presenter.OnRoundScored(Scored{
		Outcome:      outcome,
		Options:      e.answers.Values,
		CorrectIndex: e.answers.CorrectIndex,
		ChosenIndex:  chosen,
	})
	if outcome.IsCorrect {
		e.cheer()
	}

	e.schedule(e.settings.NextRoundDelay, PhaseAdvance)
	return nil
}

// SubmitIndex submits the option at position i.
func (e *Engine) SubmitIndex(i int) error {
	if e.state != AwaitingAnswer {
		e.logger.Printf("round: ignoring answer position %d in state %s", i, e.state)
		return fmt.Errorf("%w: %w (state %s)", ErrInvalidSubmission, ErrNotAwaitingAnswer, e.state)
	}
	if i < 0 || i >= len(e.answers.Values) {
		e.logger.Printf("round: ignoring answer position %d", i)
		return fmt.Errorf("%w: %w (position %d)", ErrInvalidSubmission, ErrNotAnOption, i)
	}
	return e.Submit(e.answers.Values[i])
}

// Abandon ends the session early. Pending ticks become stale.
func (e *Engine) Abandon() {
	if e.state == Complete {
		return
	}
	e.state = Abandoned
}

func (e *Engine) State() State       { return e.state }
func (e *Engine) Mode() Mode         { return e.mode }
func (e *Engine) SessionID() string  { return e.sessionID }
func (e *Engine) Settings() Settings { return e.settings }
func (e *Engine) RoundIndex() int    { return e.round }
func (e *Engine) Spec() Spec         { return e.spec }
func (e *Engine) Groups() []int      { return append([]int(nil), e.groups...) }
func (e *Engine) Image() string      { return e.image }
func (e *Engine) Answers() [3]int    { return e.answers.Values }

// History returns a copy of the answers so far.
func (e *Engine) History() session.History {
	return e.history.Snapshot()
}

func (e *Engine) beginRound(n int) {
	e.round = n
	e.spec = e.sample()
	e.groups = grouping.Groups(e.spec.Count)
	e.image = e.pick(e.assets.Images())
	e.answers = distractor.AnswerSet{}
	e.state = AwaitingReveal
	e.schedule(e.settings.RevealDelay, PhaseReveal)
}

func (e *Engine) reveal() {
	lo, hi := distractor.CountingClamps()
	if e.mode == Addition {
		lo, hi = distractor.AdditionClamps(e.settings.MaxNumber)
	}
	answers, err := distractor.Options(e.rng, e.spec.Count, lo, hi)
	if err != nil {
		// Unreachable with validated settings.
		e.logger.Printf("round: build options for %d: %v", e.spec.Count, err)
		e.state = Abandoned
		return
	}
	e.answers = answers
	e.state = AwaitingOptions

	e.presenter.OnGroupsReady(Round{
		Index:  e.round,
		Total:  e.settings.Rounds,
		Spec:   e.spec,
		Groups: e.Groups(),
		Image:  e.image,
	})
	e.schedule(e.settings.OptionsDelay, PhaseOptions)
}

func (e *Engine) complete() {
	e.state = Complete
	eligible := e.settings.Reward.Eligible(e.history)
	e.presenter.OnSessionComplete(e.history.Snapshot(), eligible)
}

func (e *Engine) cheer() {
	if !e.settings.SoundEnabled {
		return
	}
	path := e.pick(e.assets.Sounds())
	if path == "" {
		return
	}
	if err := e.sound.Play(path); err != nil {
		e.logger.Printf("round: play %s: %v", path, err)
	}
}

func (e *Engine) sample() Spec {
	switch e.mode {
	case Addition:
		count := 2 + e.rng.Intn(e.settings.MaxNumber-1)
		a := 1 + e.rng.Intn(count-1)
		return Spec{Mode: Addition, Count: count, OperandA: a, OperandB: count - a}
	default:
		span := e.settings.MaxCount - e.settings.MinCount + 1
		return Spec{Mode: Counting, Count: e.settings.MinCount + e.rng.Intn(span)}
	}
}

func (e *Engine) pick(paths []string) string {
	if len(paths) == 0 {
		return ""
	}
	return paths[e.rng.Intn(len(paths))]
}

func (e *Engine) schedule(after time.Duration, phase Phase) {
	e.scheduler.Schedule(after, Tick{Session: e.sessionID, Round: e.round, Phase: phase})
}
