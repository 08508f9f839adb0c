package game

import (
	"fmt"
)

type Status int

const (
	InProgress Status = iota
	Decided
)

func (s Status) String() string {
	if s == Decided {
		return "decided"
	}
	return "in progress"
}

// WinReason names the condition that decided a game.
type WinReason int

const (
	NoReason WinReason = iota
	Breakthrough
	Circularity
	Connection
)

func (r WinReason) String() string {
	switch r {
	case Breakthrough:
		return "breakthrough"
	case Circularity:
		return "circularity"
	case Connection:
		return "connection"
	default:
		return "none"
	}
}

// Game holds the board, both players and whose turn it is.
type Game struct {
	Board     *Board
	players   [2]*Player
	histories [2]history
	current   PlayerID
	turn      int
	status    Status
	winner    PlayerID
	reason    WinReason
	LastMove  Move // The last move applied
}

// NewGame creates a game with player A to move. Board options are passed
// through to NewBoard.
func NewGame(maxStones int, options ...Option) *Game {
	return &Game{
		Board: NewBoard(options...),
		players: [2]*Player{
			NewPlayer(PlayerA, maxStones),
			NewPlayer(PlayerB, maxStones),
		},
		current: PlayerA,
		status:  InProgress,
	}
}

// Clone returns an independent copy of the game, including its dice.
func (g *Game) Clone() *Game {
	pa, pb := *g.players[0], *g.players[1]
	return &Game{
		Board:     g.Board.Clone(),
		players:   [2]*Player{&pa, &pb},
		histories: g.histories, // Records are never mutated once pushed
		current:   g.current,
		turn:      g.turn,
		status:    g.status,
		winner:    g.winner,
		reason:    g.reason,
		LastMove:  g.LastMove,
	}
}

// Reset puts the game back to its opening position.
func (g *Game) Reset() {
	g.Board.Reset()
	for i := range g.players {
		g.players[i].Reset()
		g.histories[i].clear()
	}
	g.current = PlayerA
	g.turn = 0
	g.status = InProgress
	g.winner = NoPlayer
	g.reason = NoReason
	g.LastMove = nil
}

func (g *Game) Current() PlayerID { return g.current }
func (g *Game) Turn() int         { return g.turn }
func (g *Game) Status() Status    { return g.status }
func (g *Game) Winner() PlayerID  { return g.winner }
func (g *Game) Reason() WinReason { return g.reason }
func (g *Game) IsOver() bool      { return g.status == Decided }

func (g *Game) Stones(p PlayerID) int {
	if pl := g.Player(p); pl != nil {
		return pl.Stones
	}
	return 0
}

// Player returns the inventory of p, or nil for NoPlayer.
func (g *Game) Player(p PlayerID) *Player {
	switch p {
	case PlayerA:
		return g.players[0]
	case PlayerB:
		return g.players[1]
	default:
		return nil
	}
}

func (g *Game) historyOf(p PlayerID) *history {
	if p == PlayerB {
		return &g.histories[1]
	}
	return &g.histories[0]
}

// LegalMoves returns every move available to player.
func (g *Game) LegalMoves(player PlayerID) Candidates {
	return Candidates{
		CheckerMoves:    g.checkerMoves(player),
		CheckerFires:    g.checkerFires(player),
		StonePlacements: g.stonePlacements(player),
		StoneSlides:     g.stoneSlides(player),
	}
}

func (g *Game) checkerMoves(player PlayerID) []Move {
	var moves []Move
	for _, from := range g.Board.CheckersFor(player) {
		for _, to := range g.Board.CellNeighbors(from) {
			if g.Board.checkers[g.Board.cellIndex(to)].IsEmpty() {
				moves = append(moves, MoveChecker{From: from, To: to})
			}
		}
	}
	return moves
}

func (g *Game) checkerFires(player PlayerID) []Move {
	var moves []Move
	for _, target := range g.Board.CheckersFor(player.Opponent()) {
		if n, err := g.Board.CanFireCheckerAt(target); err == nil && n > 0 {
			moves = append(moves, FireChecker{Target: target})
		}
	}
	return moves
}

func (g *Game) stonePlacements(player PlayerID) []Move {
	if g.Stones(player) <= 0 {
		return nil
	}
	var moves []Move
	for _, node := range g.Board.StonesFor(NoPlayer) {
		if !g.Board.touchesChecker(node) {
			moves = append(moves, PlaceStone{Target: node})
		}
	}
	return moves
}

func (g *Game) stoneSlides(player PlayerID) []Move {
	var moves []Move
	for _, from := range g.Board.StonesFor(player) {
		for _, dir := range Directions {
			if g.Board.freeNode(from.Add(dir.Unit()), from) {
				moves = append(moves, SlideStone{From: from, Dir: dir})
			}
		}
	}
	return moves
}

// ApplyMove plays move for player on the board. A failed move leaves the game
// untouched.
func (g *Game) ApplyMove(player PlayerID, move Move) error {
	if g.status == Decided {
		return ErrGameOver
	}
	if g.Player(player) == nil {
		return fmt.Errorf("%w: unknown player %s", ErrIllegalMove, player)
	}

	rec := &record{move: move}
	var err error
	switch m := move.(type) {
	case MoveChecker:
		err = g.Board.MoveChecker(m.From, m.To)
	case FireChecker:
		_, err = g.Board.FireCheckerAt(m.Target)
	case PlaceStone:
		err = g.Board.PlaceStoneAt(m.Target, NewStone(player))
		if err == nil {
			g.Player(player).TakeStone()
		}
	case SlideStone:
		rec.landing, err = g.Board.SlideStone(m.From, m.Dir)
	default:
		err = fmt.Errorf("%w: unsupported move %T", ErrIllegalMove, move)
	}
	if err != nil {
		return err
	}

	g.historyOf(player).push(rec)
	g.LastMove = move
	return nil
}

// CheckWinner runs the win conditions in order (breakthrough, circularity,
// connection) and records the first winner found.
func (g *Game) CheckWinner() PlayerID {
	if g.status == Decided {
		return g.winner
	}
	checks := []struct {
		reason WinReason
		check  func() PlayerID
	}{
		{Breakthrough, g.breakthroughWinner},
		{Circularity, g.circularityWinner},
		{Connection, g.connectionWinner},
	}
	for _, c := range checks {
		if winner := c.check(); winner != NoPlayer {
			g.status = Decided
			g.winner = winner
			g.reason = c.reason
			return winner
		}
	}
	return NoPlayer
}

// Step plays one turn: the current player's chooser picks from the legal
// moves, the move is applied and the turn passes. A player without any legal
// move passes. The returned move is nil on a pass.
func (g *Game) Step(chooser Chooser) (Move, error) {
	if g.status == Decided {
		return nil, ErrGameOver
	}
	player := g.current
	candidates := g.LegalMoves(player)
	if candidates.Len() == 0 {
		g.advance()
		return nil, nil
	}

	move, err := chooser.ChooseMove(player, g, candidates)
	if err != nil {
		return nil, fmt.Errorf("cannot choose move for %s: %w", player, err)
	}
	if move == nil {
		return nil, fmt.Errorf("%w: %s chose no move", ErrIllegalMove, player)
	}
	if err := g.ApplyMove(player, move); err != nil {
		return move, fmt.Errorf("%w: %s played %s: %w", ErrIllegalMove, player, move, err)
	}

	g.CheckWinner()
	g.advance()
	return move, nil
}

func (g *Game) advance() {
	g.turn++
	if g.status == InProgress {
		g.current = g.current.Opponent()
	}
}

// Play alternates turns between a and b until someone wins or maxTurns turns
// have been played. A non-positive maxTurns plays until a win.
func (g *Game) Play(a, b Chooser, maxTurns int) (PlayerID, error) {
	choosers := map[PlayerID]Chooser{PlayerA: a, PlayerB: b}
	for g.status == InProgress && (maxTurns <= 0 || g.turn < maxTurns) {
		if _, err := g.Step(choosers[g.current]); err != nil {
			return NoPlayer, err
		}
	}
	return g.winner, nil
}
