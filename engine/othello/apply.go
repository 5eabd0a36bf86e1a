package othello

import "termreversi/types"

// applyCapture sets every cell strictly between each origin and to to color,
// moving one point from the opponent to color per cell. Undo reuses it with
// the opposite color.
func (b *Board) applyCapture(to types.Position, from []types.Position, color types.Cell) {
	m := Move{To: to, From: from}
	for _, p := range m.Flipped() {
		b.cells[p.Row][p.Col] = color
		if color == types.Black {
			b.scoreBlack++
			b.scoreWhite--
		} else {
			b.scoreWhite++
			b.scoreBlack--
		}
	}
}

// Commit plays m for color and records it for Undo. m must come from
// LegalMoves(color) on the current position.
func (b *Board) Commit(m Move, color types.Cell) {
	b.applyCapture(m.To, m.From, color)
	b.cells[m.To.Row][m.To.Col] = color
	if color == types.Black {
		b.scoreBlack++
	} else {
		b.scoreWhite++
	}
	b.history = append(b.history, m)
}

// Undo takes back the most recent committed move. The mover is read from the
// destination cell.
func (b *Board) Undo() error {
	if len(b.history) == 0 {
		return ErrEmptyHistory
	}
	m := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]

	color := b.Cell(m.To)
	b.applyCapture(m.To, m.From, color.Opponent())
	b.cells[m.To.Row][m.To.Col] = types.Empty
	if color == types.Black {
		b.scoreBlack--
	} else {
		b.scoreWhite--
	}
	return nil
}
