package game

import (
	"github.com/mymath/mymath/internal/round"
	"github.com/mymath/mymath/internal/session"
)

// roundTickMsg delivers a delay requested by the engine.
type roundTickMsg struct {
	Tick round.Tick
}

// sessionSavedMsg is sent once a finished session has been stored and its
// reward, if any, handed out. SessionID ties it to the engine that finished.
type sessionSavedMsg struct {
	SessionID string
	Summary   *session.Summary
}
