package game

// EvaluateMaterial compares the total checker height of each side to produce a
// score between -1 and 1 from player's perspective.
func EvaluateMaterial(g *Game, player PlayerID) float64 {
	if score, over := decidedScore(g, player); over {
		return score
	}
	return g.calculateMaterialScore(player)
}

// EvaluateProgress considers how far each side's checkers have advanced and
// how far each side's stones reach across the board, in addition to material.
func EvaluateProgress(g *Game, player PlayerID) float64 {
	if score, over := decidedScore(g, player); over {
		return score
	}
	material := g.calculateMaterialScore(player)
	advance := g.calculateAdvanceScore(player)
	reach := g.calculateReachScore(player)

	return (material + advance + reach) / 3
}

func decidedScore(g *Game, player PlayerID) (float64, bool) {
	if !g.IsOver() {
		return 0, false
	}
	if g.Winner() == player {
		return 1, true
	}
	return -1, true
}

func (g *Game) calculateMaterialScore(player PlayerID) float64 {
	heights := make(map[PlayerID]float64)
	for _, checker := range g.Board.checkers {
		if !checker.IsEmpty() {
			heights[checker.Owner] += float64(checker.Height)
		}
	}
	return normalize(heights[player], heights[player.Opponent()])
}

// calculateAdvanceScore compares the columns gained by each side's most
// advanced checker.
func (g *Game) calculateAdvanceScore(player PlayerID) float64 {
	advance := make(map[PlayerID]float64)
	last := g.Board.width - 1
	for idx, checker := range g.Board.checkers {
		x := idx % g.Board.width
		var gained int
		switch checker.Owner {
		case PlayerA:
			gained = last - x
		case PlayerB:
			gained = x
		default:
			continue
		}
		advance[checker.Owner] = max(advance[checker.Owner], float64(gained))
	}
	return normalize(advance[player], advance[player.Opponent()])
}

// calculateReachScore compares the number of node rows spanned by each side's
// largest group of connected stones.
func (g *Game) calculateReachScore(player PlayerID) float64 {
	reach := make(map[PlayerID]float64)
	for _, p := range []PlayerID{player, player.Opponent()} {
		visited := make(map[Vec2]bool)
		for _, node := range g.Board.StonesFor(p) {
			if visited[node] {
				continue
			}
			top, bottom := node.Y, node.Y
			g.dfs(node, p, visited, &top, &bottom)
			reach[p] = max(reach[p], float64(bottom-top+1))
		}
	}
	return normalize(reach[player], reach[player.Opponent()])
}

// dfs walks a group of player's stones, widening [top, bottom] to the rows it
// covers.
func (g *Game) dfs(node Vec2, player PlayerID, visited map[Vec2]bool, top, bottom *int) {
	if visited[node] {
		return
	}
	visited[node] = true
	*top = min(*top, node.Y)
	*bottom = max(*bottom, node.Y)

	for _, next := range g.Board.NodeNeighbors(node) {
		if g.Board.stones[g.Board.nodeIndex(next)].Owner == player {
			g.dfs(next, player, visited, top, bottom)
		}
	}
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}
