package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"time"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

const (
	DefaultWidth  = 8
	DefaultHeight = 6

	minSide = 4
)

// Board owns both grids and the dice. Every mutation goes through it.
type Board struct {
	width    int
	height   int
	checkers []Checker // Indexed by cellIndex
	stones   []Stone   // Indexed by nodeIndex
	rules    Rules
	rng      *rand.Rand
}

type Option func(b *Board)

func WithSize(width, height int) Option {
	return func(b *Board) {
		b.width = width
		b.height = height
	}
}

// WithSeed makes combat reproducible.
func WithSeed(seed uint64) Option {
	return func(b *Board) {
		b.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRules(rules Rules) Option {
	return func(b *Board) {
		if rules != nil {
			b.rules = rules
		}
	}
}

func NewBoard(options ...Option) *Board {
	b := &Board{ // Default values
		width:  DefaultWidth,
		height: DefaultHeight,
		rules:  NewStandardRules(),
	}
	for _, option := range options {
		option(b)
	}
	if b.width < minSide || b.height < minSide {
		panic(fmt.Sprintf("board must be at least %dx%d, got %dx%d", minSide, minSide, b.width, b.height))
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(EntropySeed()))
	}
	b.checkers = make([]Checker, b.width*b.height)
	b.stones = make([]Stone, (b.width+1)*(b.height+1))
	b.placeStartPieces()
	return b
}

// EntropySeed draws a seed from the operating system, falling back to the clock.
func EntropySeed() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// Reset clears both grids and puts the starting checkers back.
func (b *Board) Reset() {
	b.clear()
	b.placeStartPieces()
}

func (b *Board) clear() {
	for i := range b.checkers {
		b.checkers[i] = Checker{}
	}
	for i := range b.stones {
		b.stones[i] = Stone{}
	}
}

// StartingCheckers returns the opening layout for a board size. Player A
// starts on the right edge and player B mirrors it on the left.
func StartingCheckers(width, height int) map[Vec2]Checker {
	mid := height / 2
	return map[Vec2]Checker{
		{X: width - 2, Y: mid - 1}: NewChecker(PlayerA, 1),
		{X: width - 2, Y: mid}:     NewChecker(PlayerA, 1),
		{X: width - 1, Y: mid - 2}: NewChecker(PlayerA, 2),
		{X: width - 1, Y: mid + 1}: NewChecker(PlayerA, 2),
		{X: width - 1, Y: mid - 1}: NewChecker(PlayerA, 3),
		{X: width - 1, Y: mid}:     NewChecker(PlayerA, 3),

		{X: 1, Y: mid - 1}: NewChecker(PlayerB, 1),
		{X: 1, Y: mid}:     NewChecker(PlayerB, 1),
		{X: 0, Y: mid - 2}: NewChecker(PlayerB, 2),
		{X: 0, Y: mid + 1}: NewChecker(PlayerB, 2),
		{X: 0, Y: mid - 1}: NewChecker(PlayerB, 3),
		{X: 0, Y: mid}:     NewChecker(PlayerB, 3),
	}
}

func (b *Board) placeStartPieces() {
	for pos, checker := range StartingCheckers(b.width, b.height) {
		b.checkers[b.cellIndex(pos)] = checker
	}
}

// Clone returns an independent copy. The copy rolls its own dice, seeded from
// this board's stream.
func (b *Board) Clone() *Board {
	checkers := make([]Checker, len(b.checkers))
	copy(checkers, b.checkers)
	stones := make([]Stone, len(b.stones))
	copy(stones, b.stones)

	return &Board{
		width:    b.width,
		height:   b.height,
		checkers: checkers,
		stones:   stones,
		rules:    b.rules, // Rules are immutable
		rng:      rand.New(rand.NewSource(b.rng.Uint64())),
	}
}

func (b *Board) CheckerAt(pos Vec2) (Checker, error) {
	if !b.validCell(pos) {
		return Checker{}, fmt.Errorf("checker at %v: %w", pos, ErrIndex)
	}
	return b.checkers[b.cellIndex(pos)], nil
}

func (b *Board) StoneAt(pos Vec2) (Stone, error) {
	if !b.validNode(pos) {
		return Stone{}, fmt.Errorf("stone at %v: %w", pos, ErrIndex)
	}
	return b.stones[b.nodeIndex(pos)], nil
}

// PlaceCheckerAt overwrites a cell. Placing an empty checker always succeeds,
// which is how cells get cleared. The checker is normalised first, so a stack
// without height or owner clears the cell and heights are capped at MaxHeight.
func (b *Board) PlaceCheckerAt(pos Vec2, checker Checker) error {
	if !b.validCell(pos) {
		return fmt.Errorf("cannot place checker at %v: %w", pos, ErrIndex)
	}
	checker = NewChecker(checker.Owner, checker.Height)
	idx := b.cellIndex(pos)
	if !b.checkers[idx].IsEmpty() && !checker.IsEmpty() {
		return fmt.Errorf("cannot place checker at %v: %w", pos, ErrOccupied)
	}
	b.checkers[idx] = checker
	return nil
}

// PlaceStoneAt puts a stone on an empty node that touches no checker.
func (b *Board) PlaceStoneAt(pos Vec2, stone Stone) error {
	if !b.validNode(pos) {
		return fmt.Errorf("cannot place stone at %v: %w", pos, ErrIndex)
	}
	idx := b.nodeIndex(pos)
	if !b.stones[idx].IsEmpty() {
		return fmt.Errorf("cannot place stone at %v: %w", pos, ErrOccupied)
	}
	if b.touchesChecker(pos) {
		return fmt.Errorf("cannot place stone at %v: %w", pos, ErrNegation)
	}
	b.stones[idx] = stone
	return nil
}

func (b *Board) touchesChecker(node Vec2) bool {
	for _, cell := range b.CellsAroundNode(node) {
		if !b.checkers[b.cellIndex(cell)].IsEmpty() {
			return true
		}
	}
	return false
}

// MoveChecker swaps the contents of two cells when the destination is empty.
func (b *Board) MoveChecker(from, to Vec2) error {
	if !b.validCell(from) || !b.validCell(to) {
		return fmt.Errorf("cannot move checker from %v to %v: %w", from, to, ErrIndex)
	}
	fromIdx, toIdx := b.cellIndex(from), b.cellIndex(to)
	if b.checkers[fromIdx].IsEmpty() {
		return fmt.Errorf("cannot move checker from %v to %v: %w", from, to, ErrEmpty)
	}
	if !b.checkers[toIdx].IsEmpty() {
		return fmt.Errorf("cannot move checker from %v to %v: %w", from, to, ErrOccupied)
	}
	b.checkers[fromIdx], b.checkers[toIdx] = b.checkers[toIdx], b.checkers[fromIdx]
	return nil
}

// SlideStone moves the stone at from as far as it can go in dir and returns
// where it landed.
func (b *Board) SlideStone(from Vec2, dir Direction) (Vec2, error) {
	if b.validNode(from) && b.stones[b.nodeIndex(from)].IsEmpty() {
		return Vec2{}, fmt.Errorf("cannot slide stone from %v: %w", from, ErrEmpty)
	}
	landing, err := b.slideLanding(from, dir, from)
	if err != nil {
		return Vec2{}, err
	}
	fromIdx, toIdx := b.nodeIndex(from), b.nodeIndex(landing)
	b.stones[fromIdx], b.stones[toIdx] = b.stones[toIdx], b.stones[fromIdx]
	return landing, nil
}

// SlideStoneResult reports where SlideStone would land without moving anything.
func (b *Board) SlideStoneResult(from Vec2, dir Direction) (Vec2, error) {
	return b.slideLanding(from, dir, from)
}

// slideLanding walks from the origin in dir while nodes are on the grid and
// empty. Vacated nodes count as empty.
func (b *Board) slideLanding(from Vec2, dir Direction, vacated ...Vec2) (Vec2, error) {
	if !b.validNode(from) {
		return Vec2{}, fmt.Errorf("cannot slide stone from %v: %w", from, ErrIndex)
	}
	if !slices.Contains(Directions, dir) {
		return Vec2{}, fmt.Errorf("cannot slide stone from %v in direction %d: %w", from, int(dir), ErrIndex)
	}
	step := dir.Unit()
	landing := from.Add(step)
	if !b.freeNode(landing, vacated...) {
		return Vec2{}, fmt.Errorf("cannot slide stone from %v %s: %w", from, dir, ErrBlocked)
	}
	for next := landing.Add(step); b.freeNode(next, vacated...); next = next.Add(step) {
		landing = next
	}
	return landing, nil
}

func (b *Board) freeNode(pos Vec2, vacated ...Vec2) bool {
	if !b.validNode(pos) {
		return false
	}
	return slices.Contains(vacated, pos) || b.stones[b.nodeIndex(pos)].IsEmpty()
}

// CheckersFor lists the cells owned by player in row-major order. NoPlayer
// lists the empty cells.
func (b *Board) CheckersFor(player PlayerID) []Vec2 {
	var cells []Vec2
	for idx, checker := range b.checkers {
		if checker.Owner == player {
			cells = append(cells, Vec2{X: idx % b.width, Y: idx / b.width})
		}
	}
	return cells
}

// StonesFor lists the nodes owned by player in row-major order. NoPlayer lists
// the empty nodes.
func (b *Board) StonesFor(player PlayerID) []Vec2 {
	var nodes []Vec2
	for idx, stone := range b.stones {
		if stone.Owner == player {
			nodes = append(nodes, Vec2{X: idx % (b.width + 1), Y: idx / (b.width + 1)})
		}
	}
	return nodes
}

// Hash digests both grids.
func (b *Board) Hash() uint64 {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(b.width))
	binary.Write(hasher, binary.LittleEndian, int64(b.height))
	for _, checker := range b.checkers {
		binary.Write(hasher, binary.LittleEndian, int64(checker.Owner))
		binary.Write(hasher, binary.LittleEndian, int64(checker.Height))
	}
	for _, stone := range b.stones {
		binary.Write(hasher, binary.LittleEndian, int64(stone.Owner))
	}

	return hasher.Sum64()
}
