// Package record keeps an in-memory transcript of a Reversi game.
package record

import (
	"fmt"
	"strings"

	"termreversi/engine/othello"
	"termreversi/types"
)

// Entry is one committed move.
type Entry types.PlayedMove

func (e Entry) String() string {
	c := "B"
	if e.Color == types.White {
		c = "W"
	}
	return c + " " + e.Pos.String()
}

// Transcript tracks the moves of a game in progress.
type Transcript struct {
	Result  string
	entries []Entry
}

// NewTranscript returns an empty transcript with an unknown result.
func NewTranscript() *Transcript {
	return &Transcript{Result: "?"}
}

// AddMove appends a move.
func (t *Transcript) AddMove(color types.Cell, p types.Position) {
	t.entries = append(t.entries, Entry{Color: color, Pos: p})
}

// UndoMoves removes the last n moves.
func (t *Transcript) UndoMoves(n int) {
	if n > len(t.entries) {
		n = len(t.entries)
	}
	t.entries = t.entries[:len(t.entries)-n]
}

// Len returns the number of moves recorded.
func (t *Transcript) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the recorded moves.
func (t *Transcript) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Played returns the recorded moves for a board snapshot.
func (t *Transcript) Played() []types.PlayedMove {
	out := make([]types.PlayedMove, len(t.entries))
	for i, e := range t.entries {
		out[i] = types.PlayedMove(e)
	}
	return out
}

// SetResult records the outcome from the final scores, e.g. "B+12", "W+4" or "Draw".
func (t *Transcript) SetResult(black, white int) {
	t.Result = FormatResult(black, white)
}

// FormatResult formats scores as a result string.
func FormatResult(black, white int) string {
	switch {
	case black > white:
		return fmt.Sprintf("B+%d", black-white)
	case white > black:
		return fmt.Sprintf("W+%d", white-black)
	}
	return "Draw"
}

// String returns the moves in algebraic notation separated by spaces.
func (t *Transcript) String() string {
	parts := make([]string, len(t.entries))
	for i, e := range t.entries {
		parts[i] = e.Pos.String()
	}
	return strings.Join(parts, " ")
}

// Parse reads a move list such as "f5 d6 c3" or "f5d6c3".
func Parse(s string) ([]types.Position, error) {
	s = strings.Join(strings.Fields(s), "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("move list has odd length %d", len(s))
	}
	moves := make([]types.Position, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		p, err := types.ParsePosition(s[i : i+2])
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i/2+1, err)
		}
		moves = append(moves, p)
	}
	return moves, nil
}

// Replay plays moves onto b starting with Black, passing automatically for a
// side without a legal move. It returns the transcript of what was played and
// the color to move next.
func Replay(b *othello.Board, moves []types.Position) (*Transcript, types.Cell, error) {
	t := NewTranscript()
	color := types.Black
	for i, p := range moves {
		legal := b.LegalMoves(color)
		if len(legal) == 0 {
			color = color.Opponent()
			legal = b.LegalMoves(color)
		}
		m, ok := find(legal, p)
		if !ok {
			b.ClearMarks()
			return t, color, fmt.Errorf("move %d: %s is not legal for %s", i+1, p, color)
		}
		b.Commit(m, color)
		t.AddMove(color, p)
		color = color.Opponent()
	}
	b.ClearMarks()
	return t, color, nil
}

func find(moves []othello.Move, p types.Position) (othello.Move, bool) {
	for _, m := range moves {
		if m.To == p {
			return m, true
		}
	}
	return othello.Move{}, false
}
