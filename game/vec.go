package game

import "fmt"

// Vec2 is a position on either the cell grid or the node grid.
type Vec2 struct {
	X int
	Y int
}

var (
	up    = Vec2{X: 0, Y: -1}
	down  = Vec2{X: 0, Y: 1}
	left  = Vec2{X: -1, Y: 0}
	right = Vec2{X: 1, Y: 0}
)

func V(x, y int) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(k int) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

func (v Vec2) Up() Vec2    { return v.Add(up) }
func (v Vec2) Down() Vec2  { return v.Add(down) }
func (v Vec2) Left() Vec2  { return v.Add(left) }
func (v Vec2) Right() Vec2 { return v.Add(right) }

func (v Vec2) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Direction is one of the four directions a stone can slide in.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every slide direction in move generation order.
var Directions = []Direction{Up, Down, Left, Right}

// Unit returns the one-step offset for the direction.
func (d Direction) Unit() Vec2 {
	switch d {
	case Up:
		return up
	case Down:
		return down
	case Left:
		return left
	case Right:
		return right
	default:
		return Vec2{}
	}
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// compass holds the eight unit offsets around a cell, cardinals first.
var compass = []Vec2{
	up, down, left, right,
	{X: -1, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: 1},
}
