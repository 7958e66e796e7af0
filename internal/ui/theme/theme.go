package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, bright enough for a small child on a big screen
var (
	Primary      = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary    = lipgloss.Color("#14B8A6") // Teal
	Accent       = lipgloss.Color("#F97316") // Orange
	Success      = lipgloss.Color("#22C55E") // Green
	Error        = lipgloss.Color("#F43F5E") // Rose
	Text         = lipgloss.Color("#F8FAFC") // White
	TextDim      = lipgloss.Color("#94A3B8") // Slate
	BgDark       = lipgloss.Color("#0F172A") // Deep Navy
	BgCard       = lipgloss.Color("#1E293B") // Dark Slate
	Border       = lipgloss.Color("#334155") // Slate
	ArcadeYellow = lipgloss.Color("#FACC15") // Marquee Yellow
	ArcadeCyan   = lipgloss.Color("#22D3EE") // Marquee Cyan
)

// ShapeColors are cycled per group when a round has no picture to show.
var ShapeColors = []color.Color{
	lipgloss.Color("#EF4444"),
	lipgloss.Color("#3B82F6"),
	lipgloss.Color("#22C55E"),
	lipgloss.Color("#FACC15"),
	lipgloss.Color("#A855F7"),
}

// ShapeColor returns the color for group i.
func ShapeColor(i int) color.Color {
	if i < 0 {
		i = -i
	}
	return ShapeColors[i%len(ShapeColors)]
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Question = lipgloss.NewStyle().
			Foreground(ArcadeYellow).
			Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	RoundPending = lipgloss.NewStyle().
			Foreground(Border)

	RoundCorrect = lipgloss.NewStyle().
			Foreground(Success)

	RoundWrong = lipgloss.NewStyle().
			Foreground(Error)

	RoundCurrent = lipgloss.NewStyle().
			Foreground(ArcadeYellow)

	AnswerIdle = lipgloss.NewStyle().
			Foreground(Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Align(lipgloss.Center).
			Bold(true)

	AnswerFocused = AnswerIdle.
			Foreground(BgDark).
			Background(ArcadeYellow).
			BorderForeground(ArcadeYellow)

	AnswerCorrect = AnswerIdle.
			Foreground(BgDark).
			Background(Success).
			BorderForeground(Success)

	AnswerWrong = AnswerIdle.
			Foreground(BgDark).
			Background(Error).
			BorderForeground(Error)

	AnswerDim = AnswerIdle.
			Foreground(TextDim).
			Bold(false)
)
