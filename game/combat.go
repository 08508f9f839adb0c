package game

import "fmt"

// CombatResult describes how a fire action resolved.
type CombatResult struct {
	Target    Vec2
	Attackers []Vec2
	Terrain   int   // Stones on the target's corner nodes
	Rolls     []int // One roll per attacker
	Damage    int
	Checker   Checker // The target after damage
}

// CanFireCheckerAt reports how many checkers could fire at pos without
// rolling any dice.
func (b *Board) CanFireCheckerAt(pos Vec2) (int, error) {
	attackers, err := b.attackersOf(pos)
	if err != nil {
		return 0, err
	}
	return len(attackers), nil
}

// FireCheckerAt has every enemy checker in range roll one die against the
// checker at pos. Each roll that is not absorbed by terrain removes one level
// from the stack; a stack reduced to zero leaves the cell empty.
func (b *Board) FireCheckerAt(pos Vec2) (CombatResult, error) {
	attackers, err := b.attackersOf(pos)
	if err != nil {
		return CombatResult{}, err
	}

	terrain := b.terrainBonus(pos)
	rolls := b.rollDice(len(attackers))
	damage := b.rules.DetermineDamage(rolls, terrain)

	idx := b.cellIndex(pos)
	target := b.checkers[idx]
	height := max(0, target.Height-damage)
	b.checkers[idx] = NewChecker(target.Owner, height)

	return CombatResult{
		Target:    pos,
		Attackers: attackers,
		Terrain:   terrain,
		Rolls:     rolls,
		Damage:    damage,
		Checker:   b.checkers[idx],
	}, nil
}

func (b *Board) attackersOf(pos Vec2) ([]Vec2, error) {
	if !b.validCell(pos) {
		return nil, fmt.Errorf("cannot fire at %v: %w", pos, ErrIndex)
	}
	target := b.checkers[b.cellIndex(pos)]
	if target.IsEmpty() {
		return nil, fmt.Errorf("cannot fire at empty cell %v: %w", pos, ErrNoAttackers)
	}

	var attackers []Vec2
	for _, u := range compass {
		for _, k := range b.rules.AttackRanges() {
			cell := pos.Add(u.Scale(k))
			if !b.validCell(cell) {
				continue
			}
			occupant := b.checkers[b.cellIndex(cell)]
			if !occupant.IsEmpty() && occupant.Owner != target.Owner {
				attackers = append(attackers, cell)
			}
		}
	}
	if len(attackers) == 0 {
		return nil, fmt.Errorf("cannot fire at %v: %w", pos, ErrNoAttackers)
	}
	return attackers, nil
}

func (b *Board) terrainBonus(pos Vec2) int {
	bonus := 0
	for _, node := range b.NodesAroundCell(pos) {
		if !b.stones[b.nodeIndex(node)].IsEmpty() {
			bonus++
		}
	}
	return bonus
}

func (b *Board) rollDice(num int) []int {
	rolls := make([]int, num)
	for i := 0; i < num; i++ {
		rolls[i] = b.rng.Intn(b.rules.Sides()) + 1
	}
	return rolls
}
