package game

// Rules decides how a fire action resolves once the dice are rolled.
type Rules interface {
	// AttackRanges are the multiples of each compass direction checked for attackers.
	AttackRanges() []int
	Sides() int
	DetermineDamage(rolls []int, terrain int) int
}
