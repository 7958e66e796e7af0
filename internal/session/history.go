// Package session holds the per-session log of answered rounds.
package session

import "fmt"

// Outcome is one answered round. It is created when the child answers and
// never changes afterwards.
type Outcome struct {
	// Round is the 1-based round number.
	Round int

	// Correct is the expected answer.
	Correct int

	// Chosen is the answer the child picked.
	Chosen int

	IsCorrect bool

	// OperandA and OperandB are set for addition rounds only.
	OperandA int
	OperandB int
}

// HasOperands reports whether the outcome came from an addition round.
func (o Outcome) HasOperands() bool {
	return o.OperandA > 0 && o.OperandB > 0
}

// Review renders the outcome as a one-line review entry.
func (o Outcome) Review() string {
	mark := "✓"
	if !o.IsCorrect {
		mark = "✗"
	}
	if o.HasOperands() {
		if o.IsCorrect {
			return fmt.Sprintf("%d + %d = %d %s", o.OperandA, o.OperandB, o.Correct, mark)
		}
		return fmt.Sprintf("%d + %d = %d, picked %d %s", o.OperandA, o.OperandB, o.Correct, o.Chosen, mark)
	}
	if o.IsCorrect {
		return fmt.Sprintf("%d %s", o.Correct, mark)
	}
	return fmt.Sprintf("%d → %d %s", o.Correct, o.Chosen, mark)
}

// History is the ordered, append-only log of a session's outcomes.
// The zero value is ready to use.
type History struct {
	outcomes []Outcome
}

// Append adds an outcome at the end.
func (h *History) Append(o Outcome) {
	h.outcomes = append(h.outcomes, o)
}

// Outcomes returns a copy of the outcomes in insertion order.
func (h History) Outcomes() []Outcome {
	out := make([]Outcome, len(h.outcomes))
	copy(out, h.outcomes)
	return out
}

// Len is the number of answered rounds.
func (h History) Len() int {
	return len(h.outcomes)
}

// CorrectCount is the number of correct answers.
func (h History) CorrectCount() int {
	n := 0
	for _, o := range h.outcomes {
		if o.IsCorrect {
			n++
		}
	}
	return n
}

// Wrong is the number of incorrect answers.
func (h History) Wrong() int {
	return h.Len() - h.CorrectCount()
}

// Score is the fraction of correct answers, 0 for an empty history.
func (h History) Score() float64 {
	if len(h.outcomes) == 0 {
		return 0
	}
	return float64(h.CorrectCount()) / float64(len(h.outcomes))
}

// Snapshot returns an independent copy of the history.
func (h History) Snapshot() History {
	return History{outcomes: h.Outcomes()}
}

// FromOutcomes builds a history from stored outcomes.
func FromOutcomes(outcomes []Outcome) History {
	h := History{outcomes: make([]Outcome, len(outcomes))}
	copy(h.outcomes, outcomes)
	return h
}
