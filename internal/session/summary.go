package session

import "time"

// Summary holds the data displayed on the results screen.
type Summary struct {
	Mode           string
	Duration       time.Duration
	TotalRounds    int
	TotalCorrect   int
	TotalWrong     int
	Accuracy       float64
	Reviews        []string
	RewardEligible bool
	VideoPath      string
}

// BuildSummary creates a Summary from a finished session's history.
func BuildSummary(mode string, h History, elapsed time.Duration, eligible bool) *Summary {
	outcomes := h.Outcomes()
	reviews := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		reviews = append(reviews, o.Review())
	}

	return &Summary{
		Mode:           mode,
		Duration:       elapsed,
		TotalRounds:    h.Len(),
		TotalCorrect:   h.CorrectCount(),
		TotalWrong:     h.Wrong(),
		Accuracy:       h.Score(),
		Reviews:        reviews,
		RewardEligible: eligible,
	}
}
