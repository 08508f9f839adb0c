package game

// Move is one of MoveChecker, FireChecker, PlaceStone or SlideStone.
type Move interface {
	IsStochastic() bool
	String() string
	move()
}

// Candidates holds every legal move for one player, grouped by kind.
type Candidates struct {
	CheckerMoves    []Move
	CheckerFires    []Move
	StonePlacements []Move
	StoneSlides     []Move
}

// All returns the union of the four lists.
func (c Candidates) All() []Move {
	all := make([]Move, 0, c.Len())
	all = append(all, c.CheckerMoves...)
	all = append(all, c.CheckerFires...)
	all = append(all, c.StonePlacements...)
	all = append(all, c.StoneSlides...)
	return all
}

func (c Candidates) Len() int {
	return len(c.CheckerMoves) + len(c.CheckerFires) + len(c.StonePlacements) + len(c.StoneSlides)
}

// Chooser picks the move a player makes. The game is passed for inspection
// only and must not be mutated. The returned move should be one of the
// candidates; anything else is applied as-is and may be rejected by the board.
type Chooser interface {
	ChooseMove(player PlayerID, view *Game, candidates Candidates) (Move, error)
}

// Evaluates the game to a score between -1 and 1 indicating how favorable the
// position is for player.
type Evaluate func(g *Game, player PlayerID) float64

// ChooserFunc adapts a plain function to a Chooser.
type ChooserFunc func(player PlayerID, view *Game, candidates Candidates) (Move, error)

func (f ChooserFunc) ChooseMove(player PlayerID, view *Game, candidates Candidates) (Move, error) {
	return f(player, view, candidates)
}
