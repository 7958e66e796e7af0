package components

import (
	"strconv"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mymath/mymath/internal/ui/theme"
)

// AnswerChosenMsg is emitted when the child picks one of the three answers.
type AnswerChosenMsg struct {
	Index int
}

const answerWidth = 9

// AnswerRow shows three numeric answer buttons side by side. It starts
// hidden; Show makes it selectable and Lock freezes it with the result.
type AnswerRow struct {
	Options      [3]int
	Focus        int
	Visible      bool
	Locked       bool
	CorrectIndex int
	ChosenIndex  int
}

// NewAnswerRow creates a hidden answer row.
func NewAnswerRow() AnswerRow {
	return AnswerRow{ChosenIndex: -1, CorrectIndex: -1}
}

// Show makes the options selectable with focus on the first one.
func (a AnswerRow) Show(options [3]int) AnswerRow {
	return AnswerRow{
		Options:      options,
		Visible:      true,
		CorrectIndex: -1,
		ChosenIndex:  -1,
	}
}

// Lock freezes the row and highlights the correct and chosen answers.
func (a AnswerRow) Lock(correctIndex, chosenIndex int) AnswerRow {
	a.Visible = true
	a.Locked = true
	a.CorrectIndex = correctIndex
	a.ChosenIndex = chosenIndex
	return a
}

// Selectable reports whether key presses choose answers.
func (a AnswerRow) Selectable() bool {
	return a.Visible && !a.Locked
}

// Update handles focus movement and answer selection.
func (a AnswerRow) Update(msg tea.Msg) (AnswerRow, tea.Cmd) {
	if !a.Selectable() {
		return a, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	if i, ok := Keys.AnswerIndex(kmsg); ok {
		a.Focus = i
		return a, chosen(i)
	}

	switch {
	case key.Matches(kmsg, Keys.Left):
		if a.Focus > 0 {
			a.Focus--
		}
	case key.Matches(kmsg, Keys.Right):
		if a.Focus < len(a.Options)-1 {
			a.Focus++
		}
	case key.Matches(kmsg, Keys.Select):
		return a, chosen(a.Focus)
	}
	return a, nil
}

func chosen(i int) tea.Cmd {
	return func() tea.Msg { return AnswerChosenMsg{Index: i} }
}

// View renders the row, or blank lines of the same height while hidden.
func (a AnswerRow) View() string {
	if !a.Visible {
		return "\n\n"
	}
	buttons := make([]string, 0, len(a.Options)*2)
	for i, v := range a.Options {
		if i > 0 {
			buttons = append(buttons, "   ")
		}
		buttons = append(buttons, a.style(i).Width(answerWidth).Render(strconv.Itoa(v)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
}

func (a AnswerRow) style(i int) lipgloss.Style {
	if !a.Locked {
		if i == a.Focus {
			return theme.AnswerFocused
		}
		return theme.AnswerIdle
	}
	switch i {
	case a.CorrectIndex:
		return theme.AnswerCorrect
	case a.ChosenIndex:
		return theme.AnswerWrong
	}
	return theme.AnswerDim
}
