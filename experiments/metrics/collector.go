package metrics

import (
	"ironclad/game"
	"time"
)

type MoveMetric struct {
	Step       int
	Player     int // game.PlayerID
	Move       string
	Kind       string
	Candidates int
	Stochastic bool
	Fallback   bool // The agent's move was replaced by the first candidate
	Duration   time.Duration
}

type GameMetric struct {
	StartingPlayer int    // game.PlayerID
	Winner         string // game.PlayerID, NoPlayer on a draw by turn cap
	Reason         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(step int, player game.PlayerID, candidates game.Candidates)
	SetFallback(value bool)
	Complete(move game.Move) MoveMetric
}

type collector struct {
	step       int
	player     game.PlayerID
	candidates int
	startTime  time.Time
	fallback   bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(step int, player game.PlayerID, candidates game.Candidates) {
	m.startTime = time.Now()
	m.step = step
	m.player = player
	m.candidates = candidates.Len()
	m.fallback = false
}

func (m *collector) SetFallback(value bool) {
	m.fallback = value
}

// Complete closes the metric for the move being timed. A nil move is a pass.
func (m *collector) Complete(move game.Move) MoveMetric {
	metric := MoveMetric{
		Step:       m.step,
		Player:     int(m.player),
		Kind:       Kind(move),
		Candidates: m.candidates,
		Fallback:   m.fallback,
		Duration:   time.Since(m.startTime),
	}
	if move != nil {
		metric.Move = move.String()
		metric.Stochastic = move.IsStochastic()
	}
	return metric
}

// Kind names the kind of a move for reporting.
func Kind(move game.Move) string {
	switch move.(type) {
	case game.MoveChecker:
		return "move"
	case game.FireChecker:
		return "fire"
	case game.PlaceStone:
		return "place"
	case game.SlideStone:
		return "slide"
	case nil:
		return "pass"
	default:
		return "unknown"
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(step int, player game.PlayerID, candidates game.Candidates) {}
func (m *dummyCollector) SetFallback(value bool)                                           {}
func (m *dummyCollector) Complete(move game.Move) MoveMetric                               { return MoveMetric{} }
