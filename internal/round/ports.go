package round

import (
	"time"

	"github.com/mymath/mymath/internal/session"
)

// Phase identifies which timed step a Tick drives.
type Phase int

const (
	PhaseReveal  Phase = iota // show the items
	PhaseOptions              // make the answers interactive
	PhaseAdvance              // move to the next round or finish
)

func (p Phase) String() string {
	switch p {
	case PhaseReveal:
		return "reveal"
	case PhaseOptions:
		return "options"
	case PhaseAdvance:
		return "advance"
	}
	return "unknown"
}

// Tick is the immutable token carried by a scheduled callback. The engine
// ignores ticks whose session, round or phase no longer match.
type Tick struct {
	Session string
	Round   int
	Phase   Phase
}

// Scheduler delivers t back to Engine.Handle after the delay.
type Scheduler interface {
	Schedule(after time.Duration, t Tick)
}

// Round is what the presenter draws when the items appear.
type Round struct {
	Index  int // 1-based
	Total  int
	Spec   Spec
	Groups []int

	// Image is the picture to repeat, empty to draw shapes instead.
	Image string
}

// Scored is the result of one answer.
type Scored struct {
	Outcome      session.Outcome
	Options      [3]int
	CorrectIndex int
	ChosenIndex  int
}

// Presenter receives the engine's events. All calls happen on the caller's
// goroutine, inside Start, Handle or Submit.
type Presenter interface {
	OnGroupsReady(r Round)
	OnOptionsReady(options [3]int, correctIndex int)
	OnRoundScored(s Scored)
	OnSessionComplete(h session.History, rewardEligible bool)
}

// AssetSource lists available media files. Empty lists are normal.
type AssetSource interface {
	Images() []string
	Sounds() []string
	Videos() []string
}

// SoundPlayer plays a file without blocking.
type SoundPlayer interface {
	Play(path string) error
}

type noAssets struct{}

func (noAssets) Images() []string { return nil }
func (noAssets) Sounds() []string { return nil }
func (noAssets) Videos() []string { return nil }

type silent struct{}

func (silent) Play(string) error { return nil }
