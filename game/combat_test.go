package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fixedRules lands every roll, or none of them.
type fixedRules struct {
	hits bool
}

func (r fixedRules) AttackRanges() []int { return []int{1, 2} }
func (r fixedRules) Sides() int          { return 6 }
func (r fixedRules) DetermineDamage(rolls []int, terrain int) int {
	if r.hits {
		return len(rolls)
	}
	return 0
}

// skirmish puts an A stack of height 3 on (4,2) with B checkers in range on
// (3,2), (2,2) and (4,4), and one B checker out of line on (2,3).
func skirmish(options ...Option) *Board {
	b := emptyBoard(options...)
	b.checkers[b.cellIndex(V(4, 2))] = NewChecker(PlayerA, 3)
	b.checkers[b.cellIndex(V(3, 2))] = NewChecker(PlayerB, 1)
	b.checkers[b.cellIndex(V(2, 2))] = NewChecker(PlayerB, 2)
	b.checkers[b.cellIndex(V(4, 4))] = NewChecker(PlayerB, 1)
	b.checkers[b.cellIndex(V(2, 3))] = NewChecker(PlayerB, 3)
	return b
}

func TestCanFireCheckerAt(t *testing.T) {
	t.Run("counting attackers in line within two cells", func(t *testing.T) {
		b := skirmish()
		n, err := b.CanFireCheckerAt(V(4, 2))

		require.NoError(t, err)
		require.Equal(t, 3, n, "Checkers on (3,2), (2,2) and (4,4) are in range")
	})

	t.Run("own checkers do not attack", func(t *testing.T) {
		b := skirmish()
		b.checkers[b.cellIndex(V(5, 2))] = NewChecker(PlayerA, 1)
		n, err := b.CanFireCheckerAt(V(4, 2))

		require.NoError(t, err)
		require.Equal(t, 3, n)
	})

	t.Run("diagonals count", func(t *testing.T) {
		b := skirmish()
		b.checkers[b.cellIndex(V(6, 0))] = NewChecker(PlayerB, 1)
		n, err := b.CanFireCheckerAt(V(4, 2))

		require.NoError(t, err)
		require.Equal(t, 4, n, "A checker two cells away on a diagonal is in range")
	})

	t.Run("nothing in range", func(t *testing.T) {
		b := NewBoard(WithSeed(1))
		_, err := b.CanFireCheckerAt(V(0, 1))
		require.ErrorIs(t, err, ErrNoAttackers)
	})

	t.Run("empty target", func(t *testing.T) {
		b := skirmish()
		_, err := b.CanFireCheckerAt(V(3, 3))
		require.ErrorIs(t, err, ErrNoAttackers)
	})

	t.Run("off the grid", func(t *testing.T) {
		b := skirmish()
		_, err := b.CanFireCheckerAt(V(8, 2))
		require.ErrorIs(t, err, ErrIndex)
	})

	t.Run("does not change the board", func(t *testing.T) {
		b := skirmish()
		before := b.String()
		_, _ = b.CanFireCheckerAt(V(4, 2))
		require.Equal(t, before, b.String())
	})
}

func TestFireCheckerAt(t *testing.T) {
	t.Run("every roll hits", func(t *testing.T) {
		b := skirmish(WithRules(fixedRules{hits: true}))
		b.checkers[b.cellIndex(V(4, 4))] = Checker{}

		result, err := b.FireCheckerAt(V(4, 2))
		require.NoError(t, err)
		require.Len(t, result.Attackers, 2)
		require.Len(t, result.Rolls, 2, "One die per attacker")
		require.Equal(t, 2, result.Damage)
		require.Equal(t, NewChecker(PlayerA, 1), result.Checker, "Stack should lose one level per hit")

		checker, _ := b.CheckerAt(V(4, 2))
		require.Equal(t, NewChecker(PlayerA, 1), checker)
	})

	t.Run("destroying a stack clears the cell", func(t *testing.T) {
		b := skirmish(WithRules(fixedRules{hits: true}))

		result, err := b.FireCheckerAt(V(4, 2))
		require.NoError(t, err)
		require.Equal(t, 3, result.Damage)
		require.True(t, result.Checker.IsEmpty())

		checker, _ := b.CheckerAt(V(4, 2))
		require.Equal(t, Checker{}, checker, "Owner should be cleared with the last level")
	})

	t.Run("damage floors at zero", func(t *testing.T) {
		b := skirmish(WithRules(fixedRules{hits: true}))
		b.checkers[b.cellIndex(V(4, 2))] = NewChecker(PlayerA, 1)

		result, err := b.FireCheckerAt(V(4, 2))
		require.NoError(t, err)
		require.Equal(t, 3, result.Damage)
		require.Equal(t, 0, result.Checker.Height)
	})

	t.Run("every roll absorbed", func(t *testing.T) {
		b := skirmish(WithRules(fixedRules{hits: false}))

		result, err := b.FireCheckerAt(V(4, 2))
		require.NoError(t, err)
		require.Equal(t, 0, result.Damage)
		require.Equal(t, NewChecker(PlayerA, 3), result.Checker)
	})

	t.Run("terrain counts stones on the target's corners", func(t *testing.T) {
		b := skirmish(WithRules(fixedRules{hits: false}))
		setStone(b, V(4, 2), PlayerA)
		setStone(b, V(5, 3), PlayerB)
		setStone(b, V(6, 3), PlayerB)

		result, err := b.FireCheckerAt(V(4, 2))
		require.NoError(t, err)
		require.Equal(t, 2, result.Terrain, "Stones of either owner on a corner count; (6,3) is not a corner")
	})

	t.Run("no attackers", func(t *testing.T) {
		b := NewBoard(WithSeed(1))
		before := b.String()

		_, err := b.FireCheckerAt(V(7, 2))
		require.ErrorIs(t, err, ErrNoAttackers)
		require.Equal(t, before, b.String(), "Failed fire should not change the board")
	})

	t.Run("height never goes below zero and damage never exceeds attackers", func(t *testing.T) {
		for seed := uint64(1); seed <= 200; seed++ {
			b := skirmish(WithSeed(seed))
			setStone(b, V(4, 2), PlayerA)
			setStone(b, V(5, 2), PlayerA)

			result, err := b.FireCheckerAt(V(4, 2))
			require.NoError(t, err)
			require.LessOrEqual(t, result.Damage, len(result.Attackers), "seed %d", seed)
			require.Equal(t, max(0, 3-result.Damage), result.Checker.Height, "seed %d", seed)
			if result.Checker.Height == 0 {
				require.Equal(t, NoPlayer, result.Checker.Owner, "seed %d", seed)
			} else {
				require.Equal(t, PlayerA, result.Checker.Owner, "seed %d", seed)
			}
			for _, roll := range result.Rolls {
				require.GreaterOrEqual(t, roll, 1)
				require.LessOrEqual(t, roll, 6)
			}
		}
	})

	t.Run("same seed, same outcome", func(t *testing.T) {
		first, err := skirmish(WithSeed(42)).FireCheckerAt(V(4, 2))
		require.NoError(t, err)
		second, err := skirmish(WithSeed(42)).FireCheckerAt(V(4, 2))
		require.NoError(t, err)

		require.Equal(t, first, second, "Seeded boards should replay combat exactly")
	})
}

func TestStandardRulesDetermineDamage(t *testing.T) {
	rules := NewStandardRules()
	rolls := []int{1, 2, 3, 4, 5, 6}

	require.Equal(t, 6, rules.DetermineDamage(rolls, 0), "No terrain absorbs nothing")
	require.Equal(t, 6, rules.DetermineDamage(rolls, 1), "Rolls below 1 do not exist")
	require.Equal(t, 4, rules.DetermineDamage(rolls, 3), "Rolls strictly below the bonus are absorbed")
	require.Equal(t, 3, rules.DetermineDamage(rolls, 4))
	require.Equal(t, 0, rules.DetermineDamage(nil, 4))
}
