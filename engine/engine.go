// Package engine runs Reversi games: it alternates turns, asks a
// Collaborator for human choices, lets the computer pick its moves and keeps
// the high scores of each mode.
package engine

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"termreversi/engine/othello"
	"termreversi/types"
)

// ErrInvalidMode is returned for a Mode outside the known set.
var ErrInvalidMode = errors.New("invalid game mode")

// Collaborator is the presentation layer. Every call is made from the
// goroutine running the game.
type Collaborator interface {
	// NotifyTurn is called before color acts, with the legal destinations Marked.
	NotifyTurn(color types.Cell, state *types.BoardState)

	// RequestMoveChoice blocks until the human playing color picks one of
	// moves by index, asks to undo (only honored when undoAvailable) or
	// aborts back to the menu.
	RequestMoveChoice(color types.Cell, moves []types.Position, undoAvailable bool) Choice

	// NotifyInvalidChoice reports a choice that was rejected. The choice is requested again.
	NotifyInvalidChoice(choice Choice)

	// NotifyComputerMove reports the destination the computer played.
	NotifyComputerMove(color types.Cell, to types.Position)

	// NotifyGameResult announces the winner, or types.Empty for a draw.
	NotifyGameResult(winner types.Cell, state *types.BoardState)

	// NotifyNewHighScore reports a new record for mode.
	NotifyNewHighScore(mode Mode, score int)
}

// ChoiceKind distinguishes the answers to RequestMoveChoice.
type ChoiceKind int

const (
	ChoiceMove ChoiceKind = iota
	ChoiceUndo
	ChoiceAbort
)

// Choice is the answer to RequestMoveChoice. Index is only meaningful for ChoiceMove.
type Choice struct {
	Kind  ChoiceKind
	Index int
}

// Pick chooses the move at index i.
func Pick(i int) Choice { return Choice{Kind: ChoiceMove, Index: i} }

// Undo takes back the last two moves.
func Undo() Choice { return Choice{Kind: ChoiceUndo} }

// Abort leaves the game and returns to mode selection.
func Abort() Choice { return Choice{Kind: ChoiceAbort} }

func (c Choice) String() string {
	switch c.Kind {
	case ChoiceUndo:
		return "undo"
	case ChoiceAbort:
		return "abort"
	}
	return fmt.Sprintf("move %d", c.Index)
}

// Mode is a game mode with its own high score.
type Mode int

const (
	ModeEasy Mode = iota
	ModeHard
	ModePVP
)

// Modes lists every mode in menu order.
var Modes = []Mode{ModeEasy, ModeHard, ModePVP}

func (m Mode) String() string {
	switch m {
	case ModeEasy:
		return "easy"
	case ModeHard:
		return "hard"
	case ModePVP:
		return "pvp"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Title is the menu label of m.
func (m Mode) Title() string {
	switch m {
	case ModeEasy:
		return "vs Computer (easy)"
	case ModeHard:
		return "vs Computer (hard)"
	case ModePVP:
		return "Player vs Player"
	}
	return m.String()
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m >= ModeEasy && m <= ModePVP
}

// Tier returns the computer strength of m. ok is false for human-vs-human.
func (m Mode) Tier() (tier othello.Tier, ok bool) {
	switch m {
	case ModeEasy:
		return othello.Easy, true
	case ModeHard:
		return othello.Hard, true
	}
	return othello.Easy, false
}

// ParseMode accepts "easy", "hard" or "pvp".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return ModeEasy, nil
	case "hard":
		return ModeHard, nil
	case "pvp":
		return ModePVP, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// ModeSelector picks the next mode to play. ok is false when the user quits.
type ModeSelector interface {
	SelectMode(scores HighScores) (mode Mode, ok bool)
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	Mode       Mode
	HumanColor types.Cell     // side of the human in computer modes; Black moves first
	Start      *othello.Board // nil for the standard opening
	// Opening is replayed onto the start position before play, Black first,
	// and becomes the beginning of the game's transcript.
	Opening []types.Position
	Logger  *log.Logger // nil discards
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		Mode:       ModeEasy,
		HumanColor: types.Black,
	}
}
