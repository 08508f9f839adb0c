package player

import (
	"errors"
	"ironclad/game"
)

var (
	ErrNoCandidates    = errors.New("no candidate moves")
	ErrScriptExhausted = errors.New("script has no moves left")
)

// Agent is a decision source the engine can seat at the board.
type Agent interface {
	game.Chooser
	Name() string
}
