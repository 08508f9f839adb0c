package game

// breakthroughWinner returns the owner of a checker standing on the far edge
// column: column 0 for player A, the last column for player B.
func (g *Game) breakthroughWinner() PlayerID {
	b := g.Board
	last := b.width - 1
	for y := 0; y < b.height; y++ {
		if b.checkers[b.cellIndex(Vec2{X: 0, Y: y})].Owner == PlayerA {
			return PlayerA
		}
		if b.checkers[b.cellIndex(Vec2{X: last, Y: y})].Owner == PlayerB {
			return PlayerB
		}
	}
	return NoPlayer
}

// circularityWinner catches a player sliding a stone out and straight back to
// where it started over their last two moves. The opponent wins; the board is
// left as it is. Player A is checked first.
func (g *Game) circularityWinner() PlayerID {
	for _, player := range Players {
		if g.slidBack(player) {
			return player.Opponent()
		}
	}
	return NoPlayer
}

// slidBack reports whether the player's last two moves slid one stone out and
// back onto its origin.
func (g *Game) slidBack(player PlayerID) bool {
	older, newer, ok := g.historyOf(player).slides()
	if !ok {
		return false
	}
	first := older.move.(SlideStone)
	second := newer.move.(SlideStone)
	// Both slides must have moved the same stone, and it must be home again.
	if second.From != older.landing || newer.landing != first.From {
		return false
	}

	// Replay both hops with the stone lifted off the board.
	origin, current := first.From, newer.landing
	hop, err := g.Board.slideLanding(origin, first.Dir, origin, current)
	if err != nil {
		return false
	}
	back, err := g.Board.slideLanding(hop, second.Dir, origin, current)
	if err != nil {
		return false
	}
	return back == origin
}

// connectionWinner returns the first player whose stones link row 0 of the
// node grid to the last row.
func (g *Game) connectionWinner() PlayerID {
	for _, player := range Players {
		if g.connects(player) {
			return player
		}
	}
	return NoPlayer
}

// Just BFS
func (g *Game) connects(player PlayerID) bool {
	b := g.Board
	visited := make(map[Vec2]bool)
	queue := []Vec2{}
	for x := 0; x <= b.width; x++ {
		node := Vec2{X: x, Y: 0}
		if b.stones[b.nodeIndex(node)].Owner == player {
			queue = append(queue, node)
			visited[node] = true
		}
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.Y == b.height {
			return true
		}
		for _, next := range b.NodeNeighbors(current) {
			if visited[next] || b.stones[b.nodeIndex(next)].Owner != player {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return false
}
