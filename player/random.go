package player

import (
	"ironclad/game"

	"golang.org/x/exp/rand"
)

// RandomAgent picks uniformly among every candidate move.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) Name() string { return "random" }

func (a *RandomAgent) ChooseMove(player game.PlayerID, view *game.Game, candidates game.Candidates) (game.Move, error) {
	moves := candidates.All()
	if len(moves) == 0 {
		return nil, ErrNoCandidates
	}
	return moves[a.rng.Intn(len(moves))], nil
}
