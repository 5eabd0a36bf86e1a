package othello

import (
	"fmt"

	"termreversi/types"
)

// noReply is the value of the opponent's best reply when it has none.
const noReply = -999999999

// Tier is the strength of the computer player.
type Tier int

const (
	Easy Tier = iota
	Hard
)

func (t Tier) String() string {
	if t == Hard {
		return "hard"
	}
	return "easy"
}

// Advanced reports whether the tier looks one ply ahead.
func (t Tier) Advanced() bool {
	return t == Hard
}

// MoveValue scores m for color: the destination's edge bonus plus the corner
// weight of every captured cell. When advanced, the best immediate reply of
// the opponent is subtracted; m is committed and taken back to find it, and
// any marks on the board are cleared.
func (b *Board) MoveValue(m Move, color types.Cell, advanced bool) float64 {
	value := m.To.EdgeBonus()
	for _, p := range m.Flipped() {
		value += float64(p.CornerWeight())
	}
	if !advanced {
		return value
	}

	b.Commit(m, color)
	replies := b.LegalMoves(color.Opponent())
	b.ClearMarks()
	if err := b.Undo(); err != nil {
		panic(fmt.Sprintf("take back lookahead move %s: %v", m.To, err))
	}

	best := float64(noReply)
	for _, r := range replies {
		if v := b.MoveValue(r, color.Opponent(), false); v > best {
			best = v
		}
	}
	return value - best
}

// ChooseBestMove returns the highest valued move. Ties keep the move that
// comes first in moves.
func (b *Board) ChooseBestMove(moves []Move, color types.Cell, advanced bool) (Move, error) {
	if len(moves) == 0 {
		return Move{}, ErrNoLegalMove
	}
	best := moves[0]
	bestValue := b.MoveValue(best, color, advanced)
	for _, m := range moves[1:] {
		if v := b.MoveValue(m, color, advanced); v > bestValue {
			best, bestValue = m, v
		}
	}
	return best, nil
}
