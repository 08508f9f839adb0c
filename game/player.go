package game

// Player tracks how many stones a side still has in hand.
type Player struct {
	ID        PlayerID
	Stones    int
	MaxStones int
}

func NewPlayer(id PlayerID, maxStones int) *Player {
	return &Player{
		ID:        id,
		Stones:    maxStones,
		MaxStones: maxStones,
	}
}

// TakeStone removes a stone from the player's hand. It does nothing and
// returns false once the hand is empty.
func (p *Player) TakeStone() bool {
	if p.Stones <= 0 {
		return false
	}
	p.Stones--
	return true
}

func (p *Player) Reset() {
	p.Stones = p.MaxStones
}
