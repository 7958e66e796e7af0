package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mymath/mymath/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	filledStr := theme.ProgressFilled.Render(strings.Repeat(" ", filled))
	emptyStr := theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}

// RoundMark is the state of one box in a RoundTrack.
type RoundMark int

const (
	MarkPending RoundMark = iota
	MarkCorrect
	MarkWrong
)

// RoundTrack draws one box per round of a session.
type RoundTrack struct {
	Marks   []RoundMark
	Current int // 1-based, 0 for none
}

// NewRoundTrack creates a track of total pending rounds.
func NewRoundTrack(total int) RoundTrack {
	if total < 0 {
		total = 0
	}
	return RoundTrack{Marks: make([]RoundMark, total)}
}

// Mark records the result of round n (1-based). Out-of-range rounds are ignored.
func (t RoundTrack) Mark(n int, correct bool) RoundTrack {
	if n < 1 || n > len(t.Marks) {
		return t
	}
	marks := append([]RoundMark(nil), t.Marks...)
	if correct {
		marks[n-1] = MarkCorrect
	} else {
		marks[n-1] = MarkWrong
	}
	t.Marks = marks
	return t
}

// View renders the boxes separated by single spaces.
func (t RoundTrack) View() string {
	boxes := make([]string, len(t.Marks))
	for i, m := range t.Marks {
		switch {
		case m == MarkCorrect:
			boxes[i] = theme.RoundCorrect.Render("■")
		case m == MarkWrong:
			boxes[i] = theme.RoundWrong.Render("■")
		case i+1 == t.Current:
			boxes[i] = theme.RoundCurrent.Render("□")
		default:
			boxes[i] = theme.RoundPending.Render("□")
		}
	}
	return strings.Join(boxes, " ")
}
