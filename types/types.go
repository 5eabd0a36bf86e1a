// Package types contains shared data structures for termreversi.
package types

import (
	"fmt"
	"strings"
)

// Size is the width and height of the board.
const Size = 8

// Cell is the content of one board square.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
	// Marked is a legal destination found by the last move scan.
	Marked
)

// Opponent returns the other stone color. Empty and Marked map to themselves.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return c
}

func (c Cell) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	case Marked:
		return "Marked"
	}
	return "Empty"
}

// ParseColor accepts "black"/"b" or "white"/"w".
func ParseColor(s string) (Cell, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	}
	return Empty, fmt.Errorf("invalid color: %q", s)
}

// Position is a board coordinate. Row 0 is the top rank (8), Col 0 is file a.
type Position struct {
	Row int
	Col int
}

// InBounds reports whether p lies on the board.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// CornerWeight is the value of capturing the stone at p: 2 on the outer ring, 1 elsewhere.
func (p Position) CornerWeight() int {
	if p.Row == 0 || p.Row == Size-1 || p.Col == 0 || p.Col == Size-1 {
		return 2
	}
	return 1
}

// EdgeBonus is the value of playing a stone onto p.
func (p Position) EdgeBonus() float64 {
	rowEdge := p.Row == 0 || p.Row == Size-1
	colEdge := p.Col == 0 || p.Col == Size-1
	switch {
	case rowEdge && colEdge:
		return 0.8
	case rowEdge || colEdge:
		return 0.4
	}
	return 0
}

// String formats p in algebraic notation, e.g. (0,0) -> "a8", (7,7) -> "h1".
func (p Position) String() string {
	return fmt.Sprintf("%c%d", 'a'+rune(p.Col), Size-p.Row)
}

// ParsePosition converts algebraic notation back to a Position.
func ParsePosition(s string) (Position, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Position{}, fmt.Errorf("invalid position: %q", s)
	}
	col := int(s[0] - 'a')
	rank := int(s[1] - '0')
	if col < 0 || col >= Size || rank < 1 || rank > Size {
		return Position{}, fmt.Errorf("position out of bounds: %q", s)
	}
	return Position{Row: Size - rank, Col: col}, nil
}

// Phase of a game as seen by the UI.
const (
	PhasePlaying  = "playing"
	PhaseFinished = "finished"
)

// BoardState is an immutable copy of a board handed to the presentation layer.
type BoardState struct {
	GameID       string
	MoveNumber   int
	PlayerToMove Cell
	Phase        string
	Board        [Size][Size]Cell
	ScoreBlack   int
	ScoreWhite   int
	LastMove     Position // {-1, -1} before the first move
	History      []PlayedMove
	Outcome      string
}

// PlayedMove is one entry of a game's move list.
type PlayedMove struct {
	Color Cell
	Pos   Position
}

// Finished returns true if the game is over.
func (b *BoardState) Finished() bool {
	return b.Phase == PhaseFinished
}

// At returns the cell at p.
func (b *BoardState) At(p Position) Cell {
	return b.Board[p.Row][p.Col]
}

// NoMove is the LastMove value of a fresh board.
var NoMove = Position{Row: -1, Col: -1}
