// Package console is a line-oriented front end: it prints the board and
// numbered options and reads one answer per line.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"termreversi/engine"
	"termreversi/types"
)

// Console implements engine.Collaborator and engine.ModeSelector over a
// reader and a writer.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a console reading answers from r and printing to w.
func New(r io.Reader, w io.Writer) *Console {
	return &Console{in: bufio.NewScanner(r), out: w}
}

// readLine returns the next trimmed line; ok is false at end of input.
func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// SelectMode prints the mode menu with each mode's record.
func (c *Console) SelectMode(scores engine.HighScores) (engine.Mode, bool) {
	for {
		fmt.Fprintln(c.out, "Choose a game mode:")
		for i, m := range engine.Modes {
			fmt.Fprintf(c.out, "%d. %-22s record: %d\n", i+1, m.Title(), scores.For(m))
		}
		fmt.Fprintln(c.out, "0. Quit")
		line, ok := c.readLine()
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		switch {
		case err == nil && n == 0:
			return 0, false
		case err == nil && n >= 1 && n <= len(engine.Modes):
			return engine.Modes[n-1], true
		}
		if mode, err := engine.ParseMode(line); err == nil {
			return mode, true
		}
		fmt.Fprintln(c.out, "Error! No such option")
	}
}

func (c *Console) NotifyTurn(color types.Cell, state *types.BoardState) {
	c.printState(fmt.Sprintf("%s to move", color), state)
}

// RequestMoveChoice lists the moves from 1, 0 for undo and -1 for the menu.
// A move may also be typed in notation, e.g. "d3". End of input aborts.
func (c *Console) RequestMoveChoice(color types.Cell, moves []types.Position, undoAvailable bool) engine.Choice {
	fmt.Fprintln(c.out, "Enter the number of your move:")
	for i, p := range moves {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, p)
	}
	if undoAvailable {
		fmt.Fprintln(c.out, "0. Take back your last move")
	}
	fmt.Fprintln(c.out, "-1. Back to menu")

	line, ok := c.readLine()
	if !ok {
		return engine.Abort()
	}
	if n, err := strconv.Atoi(line); err == nil {
		switch {
		case n == -1:
			return engine.Abort()
		case n == 0:
			return engine.Undo()
		}
		return engine.Pick(n - 1)
	}
	if p, err := types.ParsePosition(line); err == nil {
		for i, m := range moves {
			if m == p {
				return engine.Pick(i)
			}
		}
	}
	return engine.Pick(-1)
}

func (c *Console) NotifyInvalidChoice(engine.Choice) {
	fmt.Fprintln(c.out, "Error! No such option")
}

func (c *Console) NotifyComputerMove(color types.Cell, to types.Position) {
	fmt.Fprintf(c.out, "Computer (%s) plays %s\n", color, to)
}

func (c *Console) NotifyGameResult(winner types.Cell, state *types.BoardState) {
	msg := "Draw!"
	if winner != types.Empty {
		msg = fmt.Sprintf("%s wins!", winner)
	}
	c.printState(msg, state)
	if len(state.History) > 0 {
		moves := make([]string, len(state.History))
		for i, m := range state.History {
			moves[i] = m.Pos.String()
		}
		fmt.Fprintf(c.out, "Moves (%d): %s\n", len(moves), strings.Join(moves, " "))
	}
	if state.Outcome != "" {
		fmt.Fprintf(c.out, "Result: %s\n", state.Outcome)
	}
}

func (c *Console) NotifyNewHighScore(mode engine.Mode, score int) {
	fmt.Fprintf(c.out, "New high score for %s: %d!\n", mode.Title(), score)
}

// printState writes message, the scores and the grid, rank 8 on top.
func (c *Console) printState(message string, state *types.BoardState) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\nBlack: %d  White: %d", message, state.ScoreBlack, state.ScoreWhite)
	for i := 0; i < types.Size; i++ {
		fmt.Fprintf(&b, "\n%d", types.Size-i)
		for j := 0; j < types.Size; j++ {
			b.WriteByte(' ')
			b.WriteByte(cellByte(state.Board[i][j]))
		}
	}
	b.WriteString("\n ")
	for j := 0; j < types.Size; j++ {
		b.WriteByte(' ')
		b.WriteByte(byte('a' + j))
	}
	fmt.Fprintln(c.out, b.String())
}

func cellByte(c types.Cell) byte {
	switch c {
	case types.Black:
		return 'X'
	case types.White:
		return 'O'
	case types.Marked:
		return '*'
	}
	return '-'
}
