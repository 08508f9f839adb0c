package player

import (
	"fmt"
	"ironclad/game"
)

// ScriptedAgent replays a fixed sequence of moves, one per turn.
type ScriptedAgent struct {
	moves []game.Move
	next  int
}

func NewScriptedAgent(moves ...game.Move) *ScriptedAgent {
	return &ScriptedAgent{moves: moves}
}

func (a *ScriptedAgent) Name() string { return "scripted" }

// Remaining returns how many moves are left to play.
func (a *ScriptedAgent) Remaining() int {
	return len(a.moves) - a.next
}

func (a *ScriptedAgent) ChooseMove(player game.PlayerID, view *game.Game, candidates game.Candidates) (game.Move, error) {
	if a.next >= len(a.moves) {
		return nil, fmt.Errorf("%s on turn %d: %w", player, view.Turn(), ErrScriptExhausted)
	}
	move := a.moves[a.next]
	a.next++
	return move, nil
}
