package game

import (
	"fmt"
	"ironclad/utils"
)

// Checkers live on a width x height grid of cells. Stones live on the
// (width+1) x (height+1) grid of nodes at the cell corners, so node (x, y) is
// the top-left corner of cell (x, y).

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) validCell(pos Vec2) bool {
	return pos.X >= 0 && pos.X < b.width && pos.Y >= 0 && pos.Y < b.height
}

func (b *Board) validNode(pos Vec2) bool {
	return pos.X >= 0 && pos.X <= b.width && pos.Y >= 0 && pos.Y <= b.height
}

func (b *Board) cellIndex(pos Vec2) int { return pos.Y*b.width + pos.X }
func (b *Board) nodeIndex(pos Vec2) int { return pos.Y*(b.width+1) + pos.X }

// CellIndex returns the row-major index of a cell.
func (b *Board) CellIndex(pos Vec2) (int, error) {
	if !b.validCell(pos) {
		return 0, fmt.Errorf("cell %v: %w", pos, ErrIndex)
	}
	return b.cellIndex(pos), nil
}

// NodeIndex returns the row-major index of a node.
func (b *Board) NodeIndex(pos Vec2) (int, error) {
	if !b.validNode(pos) {
		return 0, fmt.Errorf("node %v: %w", pos, ErrIndex)
	}
	return b.nodeIndex(pos), nil
}

// CellPosition is the inverse of CellIndex.
func (b *Board) CellPosition(idx int) (Vec2, error) {
	if idx < 0 || idx >= len(b.checkers) {
		return Vec2{}, fmt.Errorf("cell index %d: %w", idx, ErrIndex)
	}
	return Vec2{X: idx % b.width, Y: idx / b.width}, nil
}

// NodePosition is the inverse of NodeIndex.
func (b *Board) NodePosition(idx int) (Vec2, error) {
	if idx < 0 || idx >= len(b.stones) {
		return Vec2{}, fmt.Errorf("node index %d: %w", idx, ErrIndex)
	}
	return Vec2{X: idx % (b.width + 1), Y: idx / (b.width + 1)}, nil
}

// CellsAroundNode returns the up to four cells sharing the node as a corner.
func (b *Board) CellsAroundNode(pos Vec2) []Vec2 {
	if !b.validNode(pos) {
		return nil
	}
	candidates := []Vec2{
		{X: pos.X - 1, Y: pos.Y - 1},
		{X: pos.X, Y: pos.Y - 1},
		{X: pos.X - 1, Y: pos.Y},
		pos,
	}
	return utils.Filter(candidates, b.validCell)
}

// NodesAroundCell returns the corner nodes of a cell.
func (b *Board) NodesAroundCell(pos Vec2) []Vec2 {
	if !b.validCell(pos) {
		return nil
	}
	candidates := []Vec2{
		pos,
		{X: pos.X + 1, Y: pos.Y},
		{X: pos.X, Y: pos.Y + 1},
		{X: pos.X + 1, Y: pos.Y + 1},
	}
	return utils.Filter(candidates, b.validNode)
}

// CellNeighbors returns the up to eight cells touching a cell.
func (b *Board) CellNeighbors(pos Vec2) []Vec2 {
	candidates := make([]Vec2, 0, len(compass))
	for _, u := range compass {
		candidates = append(candidates, pos.Add(u))
	}
	return utils.Filter(candidates, b.validCell)
}

// NodeNeighbors returns the up to four nodes one step up, down, left or right.
func (b *Board) NodeNeighbors(pos Vec2) []Vec2 {
	candidates := make([]Vec2, 0, len(Directions))
	for _, d := range Directions {
		candidates = append(candidates, pos.Add(d.Unit()))
	}
	return utils.Filter(candidates, b.validNode)
}
