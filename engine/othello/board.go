// Package othello implements the 8x8 Reversi rules: board state, move
// generation, capture, undo and the move heuristic used by the computer.
package othello

import (
	"errors"
	"fmt"
	"strings"

	"termreversi/types"
)

var (
	// ErrEmptyHistory is returned by Undo when no move has been committed since the last reset.
	ErrEmptyHistory = errors.New("undo history is empty")
	// ErrNoLegalMove is returned by ChooseBestMove when given no candidates.
	ErrNoLegalMove = errors.New("no legal move")
)

// Move is a destination and the same-color cells from which an unbroken line
// of opponent stones runs to it.
type Move struct {
	To   types.Position
	From []types.Position
}

// Board holds the cells, both running scores and the undo history.
// A Board is owned by a single game and is not safe for concurrent use.
type Board struct {
	cells      [types.Size][types.Size]types.Cell
	scoreBlack int
	scoreWhite int
	history    []Move
}

// NewBoard returns a board in the starting position.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset prepares the board for a new game.
func (b *Board) Reset() {
	for i := range b.cells {
		for j := range b.cells[i] {
			b.cells[i][j] = types.Empty
		}
	}
	mid := types.Size / 2
	b.cells[mid-1][mid-1] = types.White
	b.cells[mid-1][mid] = types.Black
	b.cells[mid][mid-1] = types.Black
	b.cells[mid][mid] = types.White
	b.scoreBlack = 2
	b.scoreWhite = 2
	b.history = b.history[:0]
}

// ClearMarks turns every Marked cell back into Empty.
func (b *Board) ClearMarks() {
	for i := range b.cells {
		for j := range b.cells[i] {
			if b.cells[i][j] == types.Marked {
				b.cells[i][j] = types.Empty
			}
		}
	}
}

// Cell returns the content of p.
func (b *Board) Cell(p types.Position) types.Cell {
	return b.cells[p.Row][p.Col]
}

// Scores returns the black and white stone counts.
func (b *Board) Scores() (black, white int) {
	return b.scoreBlack, b.scoreWhite
}

// Score returns the stone count of color.
func (b *Board) Score(color types.Cell) int {
	if color == types.Black {
		return b.scoreBlack
	}
	return b.scoreWhite
}

// HistoryLen returns the number of moves that Undo can take back.
func (b *Board) HistoryLen() int {
	return len(b.history)
}

// LastMove returns the destination of the most recent committed move.
func (b *Board) LastMove() (types.Position, bool) {
	if len(b.history) == 0 {
		return types.NoMove, false
	}
	return b.history[len(b.history)-1].To, true
}

// Snapshot copies the board for display.
func (b *Board) Snapshot() *types.BoardState {
	last, _ := b.LastMove()
	return &types.BoardState{
		MoveNumber: len(b.history),
		Phase:      types.PhasePlaying,
		Board:      b.cells,
		ScoreBlack: b.scoreBlack,
		ScoreWhite: b.scoreWhite,
		LastMove:   last,
	}
}

// ParseBoard builds a position from eight rows of eight characters, top rank
// first. '.' or '-' is empty, 'B'/'X' black and 'W'/'O' white. Scores are
// counted from the cells and the history starts empty.
func ParseBoard(rows ...string) (*Board, error) {
	if len(rows) != types.Size {
		return nil, fmt.Errorf("expected %d rows, got %d", types.Size, len(rows))
	}
	b := &Board{}
	for i, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		if len(row) != types.Size {
			return nil, fmt.Errorf("row %d: expected %d cells, got %d", i+1, types.Size, len(row))
		}
		for j, ch := range strings.ToUpper(row) {
			switch ch {
			case '.', '-':
				b.cells[i][j] = types.Empty
			case 'B', 'X':
				b.cells[i][j] = types.Black
				b.scoreBlack++
			case 'W', 'O':
				b.cells[i][j] = types.White
				b.scoreWhite++
			default:
				return nil, fmt.Errorf("row %d: invalid cell %q", i+1, ch)
			}
		}
	}
	return b, nil
}

// String renders the board with '.' empty, 'B' black, 'W' white and '*' marks.
func (b *Board) String() string {
	var sb strings.Builder
	for i := range b.cells {
		for _, c := range b.cells[i] {
			switch c {
			case types.Black:
				sb.WriteByte('B')
			case types.White:
				sb.WriteByte('W')
			case types.Marked:
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
