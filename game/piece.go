package game

import "fmt"

// PlayerID identifies the owner of a piece. NoPlayer marks an empty square.
type PlayerID int

const (
	NoPlayer PlayerID = iota
	PlayerA
	PlayerB
)

// Players lists both sides in turn order.
var Players = []PlayerID{PlayerA, PlayerB}

func (p PlayerID) Opponent() PlayerID {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return NoPlayer
	}
}

func (p PlayerID) String() string {
	switch p {
	case PlayerA:
		return "PlayerA"
	case PlayerB:
		return "PlayerB"
	case NoPlayer:
		return "NoPlayer"
	default:
		return fmt.Sprintf("Player(%d)", int(p))
	}
}

// MaxHeight is the tallest a checker stack can be.
const MaxHeight = 3

// Checker is a stack of one to three checkers sitting on a cell.
type Checker struct {
	Owner  PlayerID
	Height int
}

func NewChecker(owner PlayerID, height int) Checker {
	if owner == NoPlayer || height <= 0 {
		return Checker{}
	}
	return Checker{Owner: owner, Height: min(height, MaxHeight)}
}

func (c Checker) IsEmpty() bool {
	return c.Owner == NoPlayer
}

// Stone sits on an intersection node.
type Stone struct {
	Owner PlayerID
}

func NewStone(owner PlayerID) Stone {
	return Stone{Owner: owner}
}

func (s Stone) IsEmpty() bool {
	return s.Owner == NoPlayer
}
