// Package reward decides whether a finished session earns the bonus video
// and picks which video to show.
package reward

import "github.com/mymath/mymath/internal/session"

// Policy holds the reward thresholds.
type Policy struct {
	MinRounds int
	MaxWrong  int
}

// Eligible reports whether the history has at least MinRounds outcomes and
// at most MaxWrong incorrect ones.
func (p Policy) Eligible(h session.History) bool {
	return h.Len() >= p.MinRounds && h.Wrong() <= p.MaxWrong
}
