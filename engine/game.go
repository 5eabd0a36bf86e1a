package engine

import (
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"termreversi/engine/othello"
	"termreversi/record"
	"termreversi/types"
)

// State of a game.
type State int

const (
	InProgress State = iota
	Finished
)

// Outcome is the result of Game.Play.
type Outcome struct {
	GameID     string
	Mode       Mode
	Aborted    bool
	Winner     types.Cell // types.Empty for a draw
	ScoreBlack int
	ScoreWhite int
	Transcript string
}

// WinningScore returns the winner's stone count, or 0 for a draw or an aborted game.
func (o Outcome) WinningScore() int {
	if o.Aborted {
		return 0
	}
	switch o.Winner {
	case types.Black:
		return o.ScoreBlack
	case types.White:
		return o.ScoreWhite
	}
	return 0
}

// Game is one match. It owns its board and is driven by a single goroutine.
type Game struct {
	ID         string
	mode       Mode
	board      *othello.Board
	transcript *record.Transcript
	collab     Collaborator
	computer   map[types.Cell]othello.Tier
	toMove     types.Cell
	state      State
	debugLog   *log.Logger
}

// NewGame prepares a game from cfg.
func NewGame(cfg GameConfig, c Collaborator) (*Game, error) {
	if !cfg.Mode.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(cfg.Mode))
	}
	board := cfg.Start
	if board == nil {
		board = othello.NewBoard()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	g := &Game{
		ID:         uuid.NewString(),
		mode:       cfg.Mode,
		board:      board,
		transcript: record.NewTranscript(),
		collab:     c,
		computer:   make(map[types.Cell]othello.Tier),
		toMove:     types.Black,
		debugLog:   logger,
	}
	if len(cfg.Opening) > 0 {
		tr, next, err := record.Replay(board, cfg.Opening)
		if err != nil {
			return nil, fmt.Errorf("opening: %w", err)
		}
		g.transcript, g.toMove = tr, next
	}
	if tier, ok := cfg.Mode.Tier(); ok {
		human := cfg.HumanColor
		if human != types.White {
			human = types.Black
		}
		g.computer[human.Opponent()] = tier
	}
	return g, nil
}

// Mode returns the mode the game is played in.
func (g *Game) Mode() Mode {
	return g.mode
}

// State returns whether the game is still running.
func (g *Game) State() State {
	return g.state
}

// Play runs the game until both sides pass in a row or a human aborts.
func (g *Game) Play() (Outcome, error) {
	g.debugLog.Printf("game %s: start mode=%s opening=%v", g.ID, g.mode, g.transcript.Entries())
	skips := 0
	color := g.toMove
	for skips < 2 {
		acted, aborted, err := g.turn(color)
		if err != nil {
			return Outcome{}, err
		}
		if aborted {
			g.debugLog.Printf("game %s: aborted by %s after %d moves", g.ID, color, g.board.HistoryLen())
			return Outcome{GameID: g.ID, Mode: g.mode, Aborted: true, Transcript: g.transcript.String()}, nil
		}
		if acted {
			skips = 0
		} else {
			g.debugLog.Printf("game %s: %s passes", g.ID, color)
			skips++
		}
		color = color.Opponent()
	}
	return g.finish(), nil
}

// turn lets color act once. acted is false when color has no legal move.
func (g *Game) turn(color types.Cell) (acted, aborted bool, err error) {
	for {
		moves := g.board.LegalMoves(color)
		if len(moves) == 0 {
			return false, false, nil
		}
		g.collab.NotifyTurn(color, g.snapshot(color))

		if tier, ok := g.computer[color]; ok {
			m, err := g.board.ChooseBestMove(moves, color, tier.Advanced())
			if err != nil {
				return false, false, fmt.Errorf("computer turn for %s: %w", color, err)
			}
			g.collab.NotifyComputerMove(color, m.To)
			g.commit(m, color)
			return true, false, nil
		}

		choice := g.requestChoice(color, moves)
		switch choice.Kind {
		case ChoiceAbort:
			g.board.ClearMarks()
			return false, true, nil
		case ChoiceUndo:
			if err := g.undo(); err != nil {
				return false, false, err
			}
			continue
		}
		g.commit(moves[choice.Index], color)
		return true, false, nil
	}
}

// undoAvailable reports whether a take-back of two plies is possible.
func (g *Game) undoAvailable() bool {
	return g.board.HistoryLen() >= 2
}

// requestChoice asks until the collaborator returns a choice that can be honored.
func (g *Game) requestChoice(color types.Cell, moves []othello.Move) Choice {
	canUndo := g.undoAvailable()
	dests := othello.Destinations(moves)
	for {
		c := g.collab.RequestMoveChoice(color, dests, canUndo)
		switch {
		case c.Kind == ChoiceAbort:
			return c
		case c.Kind == ChoiceUndo && canUndo:
			return c
		case c.Kind == ChoiceMove && c.Index >= 0 && c.Index < len(moves):
			return c
		}
		g.debugLog.Printf("game %s: invalid choice %s from %s", g.ID, c, color)
		g.collab.NotifyInvalidChoice(c)
	}
}

// undo reverts the opponent's last move and the mover's previous one.
func (g *Game) undo() error {
	for i := 0; i < 2; i++ {
		if err := g.board.Undo(); err != nil {
			return fmt.Errorf("take back: %w", err)
		}
	}
	g.board.ClearMarks()
	g.transcript.UndoMoves(2)
	g.debugLog.Printf("game %s: took back two moves, history=%d", g.ID, g.board.HistoryLen())
	return nil
}

func (g *Game) commit(m othello.Move, color types.Cell) {
	g.board.Commit(m, color)
	g.board.ClearMarks()
	g.transcript.AddMove(color, m.To)
	black, white := g.board.Scores()
	g.debugLog.Printf("game %s: %s plays %s flipping %d (B %d, W %d)", g.ID, color, m.To, len(m.Flipped()), black, white)
}

func (g *Game) finish() Outcome {
	g.state = Finished
	black, white := g.board.Scores()
	winner := types.Empty
	switch {
	case black > white:
		winner = types.Black
	case white > black:
		winner = types.White
	}
	g.transcript.SetResult(black, white)

	state := g.snapshot(types.Empty)
	state.Phase = types.PhaseFinished
	state.Outcome = g.transcript.Result
	g.collab.NotifyGameResult(winner, state)
	g.debugLog.Printf("game %s: finished %s", g.ID, g.transcript.Result)

	return Outcome{
		GameID:     g.ID,
		Mode:       g.mode,
		Winner:     winner,
		ScoreBlack: black,
		ScoreWhite: white,
		Transcript: g.transcript.String(),
	}
}

func (g *Game) snapshot(toMove types.Cell) *types.BoardState {
	s := g.board.Snapshot()
	s.GameID = g.ID
	s.PlayerToMove = toMove
	s.History = g.transcript.Played()
	return s
}
