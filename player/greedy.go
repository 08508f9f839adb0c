package player

import (
	"fmt"
	"ironclad/game"
	"math"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

const DefaultSamples = 8

type Option func(a *GreedyAgent)

// WithEvaluate sets the heuristic used to score positions.
func WithEvaluate(evaluate game.Evaluate) Option {
	return func(a *GreedyAgent) {
		a.evaluate = evaluate
	}
}

// WithSamples sets how many times a fire is rolled out to estimate its value.
func WithSamples(samples int) Option {
	return func(a *GreedyAgent) {
		a.samples = max(1, samples)
	}
}

// WithTemperature makes the agent sample moves in proportion to their score
// instead of always taking the best one. Lower is greedier.
func WithTemperature(temperature float64) Option {
	return func(a *GreedyAgent) {
		a.temperature = temperature
	}
}

func WithSeed(seed uint64) Option {
	return func(a *GreedyAgent) {
		a.rng = rand.New(rand.NewSource(seed))
	}
}

// GreedyAgent looks one move ahead: every candidate is played on a clone of
// the game and the resulting position is scored by an evaluation heuristic.
type GreedyAgent struct {
	name        string
	evaluate    game.Evaluate
	samples     int
	temperature float64
	rng         *rand.Rand
}

func NewGreedyAgent(name string, options ...Option) *GreedyAgent {
	a := &GreedyAgent{ // Default values
		name:     name,
		evaluate: game.EvaluateProgress,
		samples:  DefaultSamples,
		rng:      rand.New(rand.NewSource(1)),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *GreedyAgent) Name() string { return a.name }

func (a *GreedyAgent) ChooseMove(player game.PlayerID, view *game.Game, candidates game.Candidates) (game.Move, error) {
	moves := candidates.All()
	if len(moves) == 0 {
		return nil, ErrNoCandidates
	}

	scores := make([]float64, len(moves))
	for i, move := range moves {
		score, err := a.score(view, player, move)
		if err != nil {
			return nil, fmt.Errorf("cannot score %s: %w", move, err)
		}
		scores[i] = score
	}

	if a.temperature <= 0 {
		return moves[findMax(scores)], nil
	}
	policy := adjustTemperature(scores, a.temperature)
	return moves[sample(policy, a.rng.Float64())], nil
}

// score averages the evaluation of the positions move leads to. Fires are
// rolled out several times, each on a clone with its own dice.
func (a *GreedyAgent) score(view *game.Game, player game.PlayerID, move game.Move) (float64, error) {
	rollouts := 1
	if move.IsStochastic() {
		rollouts = a.samples
	}

	total := 0.0
	for i := 0; i < rollouts; i++ {
		clone := view.Clone()
		if err := clone.ApplyMove(player, move); err != nil {
			return 0, err
		}
		clone.CheckWinner()
		total += a.evaluate(clone, player)
	}
	return total / float64(rollouts), nil
}

// findMax returns the index of the first best score.
func findMax(scores []float64) int {
	return slices.Index(scores, slices.Max(scores))
}

// adjustTemperature turns scores in [-1, 1] into move probabilities.
func adjustTemperature(scores []float64, temperature float64) []float64 {
	exponent := 1.0 / temperature
	sum := 0.0
	policy := make([]float64, len(scores))
	for i, score := range scores {
		prob := math.Pow((score+1)/2, exponent)
		sum += prob
		policy[i] = prob
	}
	// Normalize
	for i := range policy {
		if sum == 0 {
			policy[i] = 1 / float64(len(policy))
		} else {
			policy[i] /= sum
		}
	}
	return policy
}

// sample picks an index from policy using a uniform draw in [0, 1).
func sample(policy []float64, draw float64) int {
	cumulative := 0.0
	for i, prob := range policy {
		cumulative += prob
		if draw < cumulative {
			return i
		}
	}
	return len(policy) - 1 // Fallback in case of rounding errors
}
