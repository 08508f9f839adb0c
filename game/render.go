package game

import "strings"

var (
	checkerGlyphs = map[PlayerID][MaxHeight + 1]rune{
		PlayerA: {'.', '░', '▒', '▓'},
		PlayerB: {'.', '▁', '▃', '▇'},
	}
	stoneGlyphs = map[PlayerID]rune{
		PlayerA: 'a',
		PlayerB: 'b',
	}
)

const (
	emptyCell = '.'
	emptyNode = '+'
)

// String renders the board in its canonical text form: a node row, then a
// cell row, for every row of cells, closed by the last node row.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y <= b.height; y++ {
		b.writeNodeRow(&sb, y)
		if y < b.height {
			b.writeCellRow(&sb, y)
		}
	}
	return sb.String()
}

func (b *Board) writeNodeRow(sb *strings.Builder, y int) {
	for x := 0; x <= b.width; x++ {
		if x > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(stoneGlyph(b.stones[b.nodeIndex(Vec2{X: x, Y: y})]))
	}
	sb.WriteByte('\n')
}

func (b *Board) writeCellRow(sb *strings.Builder, y int) {
	for x := 0; x < b.width; x++ {
		sb.WriteByte(' ')
		sb.WriteRune(checkerGlyph(b.checkers[b.cellIndex(Vec2{X: x, Y: y})]))
	}
	sb.WriteByte('\n')
}

func stoneGlyph(s Stone) rune {
	if g, ok := stoneGlyphs[s.Owner]; ok {
		return g
	}
	return emptyNode
}

func checkerGlyph(c Checker) rune {
	glyphs, ok := checkerGlyphs[c.Owner]
	if !ok || c.Height < 0 || c.Height > MaxHeight {
		return emptyCell
	}
	return glyphs[c.Height]
}
