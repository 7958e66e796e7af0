package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// KeyMap holds every binding the game screens react to.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Back    key.Binding
	Answers [3]key.Binding
}

// Keys is the shared key map.
var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "right"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("enter", "choose"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Answers: [3]key.Binding{
		key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "first")),
		key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "second")),
		key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "third")),
	},
}

// AnswerIndex reports which answer position a number key picks.
func (k KeyMap) AnswerIndex(msg tea.KeyMsg) (int, bool) {
	for i, b := range k.Answers {
		if key.Matches(msg, b) {
			return i, true
		}
	}
	return 0, false
}
