package round

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for names that are not a mini-game.
var ErrUnknownMode = errors.New("unknown game mode")

// Mode selects the mini-game.
type Mode int

const (
	Counting Mode = iota // count the items on screen
	Addition             // add two groups of items
)

// Modes lists every mode in menu order.
var Modes = []Mode{Counting, Addition}

func (m Mode) String() string {
	switch m {
	case Counting:
		return "counting"
	case Addition:
		return "addition"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Title is the human-facing name of the mode.
func (m Mode) Title() string {
	switch m {
	case Counting:
		return "Counting"
	case Addition:
		return "Addition"
	}
	return m.String()
}

// ParseMode parses a mode name, case insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "counting", "count":
		return Counting, nil
	case "addition", "add":
		return Addition, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Spec is the problem for one round. For addition rounds OperandA and
// OperandB are both at least 1 and sum to Count.
type Spec struct {
	Mode     Mode
	Count    int
	OperandA int
	OperandB int
}

// Question renders the spec the way it is asked on screen. Counting never
// shows the number.
func (s Spec) Question() string {
	if s.Mode == Addition {
		return fmt.Sprintf("%d + %d = ?", s.OperandA, s.OperandB)
	}
	return "How many?"
}
