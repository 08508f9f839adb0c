package game

import "errors"

var (
	// ErrIndex reports a coordinate outside the grid it was used on.
	ErrIndex = errors.New("position out of range")
	// ErrOccupied reports a destination that already holds a piece of the same kind.
	ErrOccupied = errors.New("position occupied")
	// ErrNegation reports a stone placement next to an occupied cell.
	ErrNegation = errors.New("stone touches an occupied cell")
	// ErrBlocked reports a stone that cannot slide even one step.
	ErrBlocked = errors.New("slide blocked")
	// ErrEmpty reports a move of a piece that is not there.
	ErrEmpty = errors.New("no piece to move")
	// ErrNoAttackers reports a fire with nothing in range to shoot.
	ErrNoAttackers = errors.New("no attackers in range")

	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
)
