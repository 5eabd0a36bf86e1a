package othello

import "termreversi/types"

// directions is the fixed scan order, row-major around a cell.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// LegalMoves finds every move available to color. Destinations are left
// Marked on the board and returned in the order they were first reached,
// scanning origin cells row-major and directions in a fixed order, so the
// result is reproducible for a given position. An empty result means color
// must pass.
func (b *Board) LegalMoves(color types.Cell) []Move {
	b.ClearMarks()
	opponent := color.Opponent()
	var moves []Move
	index := make(map[types.Position]int)

	for i := 0; i < types.Size; i++ {
		for j := 0; j < types.Size; j++ {
			if b.cells[i][j] != color {
				continue
			}
			origin := types.Position{Row: i, Col: j}
			for _, d := range directions {
				p := types.Position{Row: i + d[0], Col: j + d[1]}
				if !p.InBounds() || b.Cell(p) != opponent {
					continue
				}
				for p = step(p, d[0], d[1]); p.InBounds(); p = step(p, d[0], d[1]) {
					cell := b.Cell(p)
					if cell == opponent {
						continue
					}
					// Own color means the line closes without a gap: nothing to record.
					switch cell {
					case types.Empty:
						b.cells[p.Row][p.Col] = types.Marked
						index[p] = len(moves)
						moves = append(moves, Move{To: p, From: []types.Position{origin}})
					case types.Marked:
						k := index[p]
						moves[k].From = append(moves[k].From, origin)
					}
					break
				}
			}
		}
	}
	return moves
}

// Flipped returns the cells m would capture, origin by origin.
func (m Move) Flipped() []types.Position {
	var cells []types.Position
	for _, from := range m.From {
		dr, dc := sign(m.To.Row-from.Row), sign(m.To.Col-from.Col)
		for p := step(from, dr, dc); p != m.To; p = step(p, dr, dc) {
			cells = append(cells, p)
		}
	}
	return cells
}

// Destinations lists the To field of each move, keeping their order.
func Destinations(moves []Move) []types.Position {
	out := make([]types.Position, len(moves))
	for i, m := range moves {
		out[i] = m.To
	}
	return out
}

func step(p types.Position, dr, dc int) types.Position {
	return types.Position{Row: p.Row + dr, Col: p.Col + dc}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
