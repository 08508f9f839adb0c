package game

type StandardRules struct {
	Ranges   []int
	DieSides int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Ranges:   []int{1, 2},
		DieSides: 6,
	}
}

func (sr *StandardRules) AttackRanges() []int {
	return sr.Ranges
}

func (sr *StandardRules) Sides() int {
	return sr.DieSides
}

// DetermineDamage counts one point per roll; rolls strictly below the terrain
// bonus are absorbed.
func (sr *StandardRules) DetermineDamage(rolls []int, terrain int) (damage int) {
	for _, roll := range rolls {
		if roll < terrain {
			continue
		}
		damage++
	}
	return
}
