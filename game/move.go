package game

import "fmt"

// MoveChecker steps a checker onto an adjacent empty cell.
type MoveChecker struct {
	From Vec2
	To   Vec2
}

// FireChecker attacks the checker on Target with everything in range.
type FireChecker struct {
	Target Vec2
}

// PlaceStone puts one of the player's stones on Target.
type PlaceStone struct {
	Target Vec2
}

// SlideStone slides the stone on From as far as it goes in Dir.
type SlideStone struct {
	From Vec2
	Dir  Direction
}

func (MoveChecker) move() {}
func (FireChecker) move() {}
func (PlaceStone) move()  {}
func (SlideStone) move()  {}

func (MoveChecker) IsStochastic() bool { return false }
func (FireChecker) IsStochastic() bool { return true }
func (PlaceStone) IsStochastic() bool  { return false }
func (SlideStone) IsStochastic() bool  { return false }

func (m MoveChecker) String() string { return fmt.Sprintf("move %v->%v", m.From, m.To) }
func (m FireChecker) String() string { return fmt.Sprintf("fire %v", m.Target) }
func (m PlaceStone) String() string  { return fmt.Sprintf("place %v", m.Target) }
func (m SlideStone) String() string  { return fmt.Sprintf("slide %v %s", m.From, m.Dir) }
