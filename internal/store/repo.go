package store

import (
	"context"
	"time"

	"github.com/mymath/mymath/internal/session"
)

// QueryOpts configures session queries.
type QueryOpts struct {
	Limit int    // max results (0 = unlimited)
	Mode  string // filter by mode ("" = all)
}

// OutcomeEventData captures one answered round.
type OutcomeEventData struct {
	Round         int
	CorrectAnswer int
	ChosenAnswer  int
	IsCorrect     bool
	OperandA      int
	OperandB      int
}

// OutcomeEvents converts a session's outcomes for storage.
func OutcomeEvents(outcomes []session.Outcome) []OutcomeEventData {
	out := make([]OutcomeEventData, len(outcomes))
	for i, o := range outcomes {
		out[i] = OutcomeEventData{
			Round:         o.Round,
			CorrectAnswer: o.Correct,
			ChosenAnswer:  o.Chosen,
			IsCorrect:     o.IsCorrect,
			OperandA:      o.OperandA,
			OperandB:      o.OperandB,
		}
	}
	return out
}

// Outcome converts a stored round back to a session outcome.
func (o OutcomeEventData) Outcome() session.Outcome {
	return session.Outcome{
		Round:     o.Round,
		Correct:   o.CorrectAnswer,
		Chosen:    o.ChosenAnswer,
		IsCorrect: o.IsCorrect,
		OperandA:  o.OperandA,
		OperandB:  o.OperandB,
	}
}

// SessionEventData captures a finished session and its rounds.
type SessionEventData struct {
	SessionID      string
	Mode           string
	StartedAt      time.Time
	EndedAt        time.Time
	Rounds         int
	Correct        int
	RewardEligible bool
	Outcomes       []OutcomeEventData
}

// RewardEventData captures a bonus video shown after a session.
type RewardEventData struct {
	SessionID string
	VideoPath string
	AwardedAt time.Time
}

// SessionRecord is a stored session as read back for history views.
type SessionRecord struct {
	SessionID      string
	Mode           string
	StartedAt      time.Time
	EndedAt        time.Time
	Rounds         int
	Correct        int
	RewardEligible bool

	// VideoPath is the rewarded video, empty if none was shown.
	VideoPath string
}

// Accuracy is the fraction of correct rounds.
func (r SessionRecord) Accuracy() float64 {
	if r.Rounds == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Rounds)
}

// EventRepo provides append and query access to session events.
type EventRepo interface {
	// AppendSessionEvent stores a finished session with all its outcomes.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendRewardEvent records a rewarded video.
	AppendRewardEvent(ctx context.Context, data RewardEventData) error

	// QuerySessions returns stored sessions, most recent first.
	QuerySessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error)

	// QueryOutcomes returns the rounds of one session in round order.
	QueryOutcomes(ctx context.Context, sessionID string) ([]OutcomeEventData, error)

	// RewardCount returns how many videos have been rewarded in total.
	RewardCount(ctx context.Context) (int, error)
}
