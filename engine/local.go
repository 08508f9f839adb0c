package engine

import (
	"fmt"
	"ironclad/experiments/metrics"
	"ironclad/game"
	"ironclad/meta"
	"ironclad/player"
	"ironclad/utils"
	"time"

	"github.com/rs/zerolog/log"
)

var _ Runner = (*Engine)(nil)

// Engine seats one agent per player and drives a game to its end.
type Engine struct {
	Game      *game.Game
	Agents    []player.Agent // Agents[0] plays PlayerA
	MaxTurns  int
	collector metrics.Collector
	updates   [][]Update
}

// Update is a move as seen by the player who made it.
type Update struct {
	Move game.Move
	Hash uint64 // Board hash after the move
}

type Option func(e *Engine)

func WithMaxTurns(maxTurns int) Option {
	return func(e *Engine) {
		e.MaxTurns = maxTurns
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(e *Engine) {
		e.collector = collector
	}
}

func LocalEngine(g *game.Game, agents []player.Agent, options ...Option) *Engine {
	if len(agents) != len(game.Players) {
		panic("number of players does not match number of agents")
	}

	e := &Engine{ // Default values
		Game:      g,
		Agents:    agents,
		MaxTurns:  meta.MAX_TURNS,
		collector: metrics.NewCollector(),
		updates:   make([][]Update, len(agents)),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Updates returns the moves player has made so far.
func (e *Engine) Updates(player game.PlayerID) []Update {
	return e.updates[agentIndex(player)]
}

// Run executes the entire game loop until a winner is found or MaxTurns turns
// have been played.
func (e *Engine) Run() (game.PlayerID, metrics.GameMetric, []metrics.MoveMetric, error) {
	startTime := time.Now()
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.Game.Current()),
		StartTime:      startTime,
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.Game.Current())

	for !e.Game.IsOver() && e.Game.Turn() < e.MaxTurns {
		current := e.Game.Current()
		step := e.Game.Turn() + 1

		chose := false
		move, err := e.Game.Step(game.ChooserFunc(func(p game.PlayerID, view *game.Game, candidates game.Candidates) (game.Move, error) {
			chose = true
			e.collector.Start(step, p, candidates)
			return e.choose(p, view, candidates)
		}))
		if err != nil {
			return game.NoPlayer, gameMetric, moveMetrics, fmt.Errorf("turn %d: %w", step, err)
		}
		if !chose {
			e.collector.Start(step, current, game.Candidates{})
			log.Debug().Msgf("turn %d: %s has no moves and passes", step, current)
		} else {
			log.Debug().Msgf("turn %d: %s played %s", step, current, move)
			idx := agentIndex(current)
			e.updates[idx] = append(e.updates[idx], Update{Move: move, Hash: e.Game.Board.Hash()})
		}
		moveMetrics = append(moveMetrics, e.collector.Complete(move))
	}

	endTime := time.Now()
	gameMetric.Winner = e.Game.Winner().String()
	gameMetric.Reason = e.Game.Reason().String()
	gameMetric.EndTime = endTime
	gameMetric.Duration = endTime.Sub(startTime)
	gameMetric.TotalMoves = e.Game.Turn()

	if e.Game.IsOver() {
		log.Info().Msgf("%s won by %s after %d turns", e.Game.Winner(), e.Game.Reason(), e.Game.Turn())
	} else {
		log.Info().Msgf("stopped after %d turns (no winner yet)", e.Game.Turn())
	}

	return e.Game.Winner(), gameMetric, moveMetrics, nil
}

// choose asks the seated agent for a move. A move that is not one of the
// candidates is replaced by the first candidate.
func (e *Engine) choose(p game.PlayerID, view *game.Game, candidates game.Candidates) (game.Move, error) {
	agent := e.Agents[agentIndex(p)]
	move, err := agent.ChooseMove(p, view, candidates)
	if err != nil {
		return nil, fmt.Errorf("%s agent: %w", agent.Name(), err)
	}

	all := candidates.All()
	if utils.FindIndex(all, move) < 0 {
		log.Warn().Msgf("%s agent returned %v for %s which is not a candidate, playing %s instead", agent.Name(), move, p, all[0])
		e.collector.SetFallback(true)
		return all[0], nil
	}
	return move, nil
}

func agentIndex(p game.PlayerID) int {
	if p == game.PlayerB {
		return 1
	}
	return 0
}
