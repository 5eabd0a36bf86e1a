// Package ui provides custom controls for tview to play Reversi in the terminal.
package ui

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termreversi/config"
	"termreversi/engine"
	"termreversi/types"
)

// BoardUI draws the board and implements engine.Collaborator for the tview
// front end. The engine calls its Notify and Request methods from the game
// goroutine; they hand state to the UI goroutine through queue.
type BoardUI struct {
	Box    *tview.Box
	hint   *tview.TextView
	panel  *InfoPanel
	cfg    *config.Config
	styles []tcell.Color
	queue  func(func())

	// Owned by the UI goroutine.
	mode     engine.Mode
	state    *types.BoardState
	moves    []types.Position
	toMove   types.Cell
	canUndo  bool
	waiting  bool
	finished bool
	status   string
	selRow   int
	selCol   int

	// Owned by the game goroutine.
	resultShown bool

	choices   chan engine.Choice
	dismissed chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// digitPicks is how many of the offered moves the digit keys can choose.
const digitPicks = 9

const (
	styleBoard = iota
	styleBoardAlt
	styleBlack
	styleWhite
	styleMark
	styleLine
	styleCursor
	styleLastPlayed
)

// NewBoard creates a board bound to app. hint receives the status lines.
func NewBoard(app *tview.Application, c *config.Config, hint *tview.TextView) *BoardUI {
	return newBoard(func(f func()) { app.QueueUpdateDraw(f) }, c, hint)
}

func newBoard(queue func(func()), c *config.Config, hint *tview.TextView) *BoardUI {
	b := &BoardUI{
		queue:     queue,
		Box:       tview.NewBox(),
		hint:      hint,
		selRow:    -1,
		selCol:    -1,
		choices:   make(chan engine.Choice, 1),
		dismissed: make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
	b.SetConfig(c)
	b.Box.SetDrawFunc(b.draw)
	b.Box.SetInputCapture(b.HandleKey)
	return b
}

// SetConfig applies the theme in c.
func (b *BoardUI) SetConfig(c *config.Config) {
	col := c.Theme.Colors
	b.styles = []tcell.Color{
		tcell.PaletteColor(col.BoardColor),
		tcell.PaletteColor(col.BoardColorAlt),
		tcell.PaletteColor(col.BlackColor),
		tcell.PaletteColor(col.WhiteColor),
		tcell.PaletteColor(col.MarkColor),
		tcell.PaletteColor(col.LineColor),
		tcell.PaletteColor(col.CursorColorBG),
		tcell.PaletteColor(col.LastPlayedColorBG),
	}
	b.cfg = c
}

// Close releases a game goroutine blocked on the board. Pending move
// requests return Abort.
func (b *BoardUI) Close() {
	b.closeOnce.Do(func() { close(b.done) })
}

// StartGame clears the board for a new game of mode.
func (b *BoardUI) StartGame(mode engine.Mode) {
	b.mode = mode
	b.state = nil
	b.moves = nil
	b.waiting = false
	b.finished = false
	b.status = ""
	b.ResetSelection()
	b.refresh()
}

func (b *BoardUI) NotifyTurn(color types.Cell, state *types.BoardState) {
	b.queue(func() {
		b.state = state
		b.toMove = color
		b.waiting = false
		b.moves = nil
		b.refresh()
	})
}

func (b *BoardUI) RequestMoveChoice(color types.Cell, moves []types.Position, undoAvailable bool) engine.Choice {
	b.queue(func() {
		b.toMove = color
		b.moves = moves
		b.canUndo = undoAvailable
		b.waiting = true
		if !b.onBoard() && len(moves) > 0 {
			b.selRow, b.selCol = moves[0].Row, moves[0].Col
		}
		b.refresh()
	})
	select {
	case c := <-b.choices:
		return c
	case <-b.done:
		return engine.Abort()
	}
}

func (b *BoardUI) NotifyInvalidChoice(c engine.Choice) {
	msg := "Not a legal move"
	if c.Kind == engine.ChoiceUndo {
		msg = "Nothing to take back yet"
	}
	b.queue(func() {
		b.status = msg
		b.refresh()
	})
}

func (b *BoardUI) NotifyComputerMove(color types.Cell, to types.Position) {
	b.queue(func() {
		b.status = fmt.Sprintf("Computer (%s) played %s", color, to)
		b.refresh()
	})
}

func (b *BoardUI) NotifyGameResult(winner types.Cell, state *types.BoardState) {
	b.resultShown = true
	msg := "Draw!"
	if winner != types.Empty {
		msg = fmt.Sprintf("%s wins!", winner)
	}
	b.queue(func() {
		b.state = state
		b.moves = nil
		b.waiting = false
		b.finished = true
		b.status = msg
		b.ResetSelection()
		b.refresh()
	})
}

func (b *BoardUI) NotifyNewHighScore(mode engine.Mode, score int) {
	b.queue(func() {
		b.status += fmt.Sprintf("  New %s record: %d", mode, score)
		b.refresh()
	})
}

// waitDismissed blocks the game goroutine until the player leaves the result
// screen of the last game, if one is showing.
func (b *BoardUI) waitDismissed() {
	if !b.resultShown {
		return
	}
	b.resultShown = false
	select {
	case <-b.dismissed:
	case <-b.done:
	}
}

// submit hands c to a waiting RequestMoveChoice. Keys pressed while nobody
// waits are dropped.
func (b *BoardUI) submit(c engine.Choice) {
	if !b.waiting {
		return
	}
	select {
	case b.choices <- c:
		b.waiting = false
		b.status = ""
		b.refresh()
	default:
	}
}

// HandleKey is the input capture of the board box.
func (b *BoardUI) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	if b.finished {
		if event.Key() == tcell.KeyEnter || event.Key() == tcell.KeyEsc ||
			(event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			select {
			case b.dismissed <- struct{}{}:
			default:
			}
			return nil
		}
		return event
	}
	switch event.Key() {
	case tcell.KeyUp:
		b.MoveSelection(-1, 0)
	case tcell.KeyDown:
		b.MoveSelection(1, 0)
	case tcell.KeyLeft:
		b.MoveSelection(0, -1)
	case tcell.KeyRight:
		b.MoveSelection(0, 1)
	case tcell.KeyEnter:
		b.submit(engine.Pick(b.selectedIndex()))
	case tcell.KeyEsc:
		b.submit(engine.Abort())
	case tcell.KeyRune:
		switch r := event.Rune(); {
		case r == 'h':
			b.MoveSelection(0, -1)
		case r == 'j':
			b.MoveSelection(1, 0)
		case r == 'k':
			b.MoveSelection(-1, 0)
		case r == 'l':
			b.MoveSelection(0, 1)
		case r == 'u':
			b.submit(engine.Undo())
		case r == 'q':
			b.submit(engine.Abort())
		case r >= '1' && r < '1'+digitPicks:
			b.submit(engine.Pick(int(r - '1')))
		default:
			return event
		}
	default:
		return event
	}
	return nil
}

// selectedIndex is the index of the cursor square in the offered moves, or -1.
func (b *BoardUI) selectedIndex() int {
	for i, p := range b.moves {
		if p.Row == b.selRow && p.Col == b.selCol {
			return i
		}
	}
	return -1
}

func (b *BoardUI) onBoard() bool {
	return types.Position{Row: b.selRow, Col: b.selCol}.InBounds()
}

// MoveSelection moves the cursor by dr rows and dc columns, placing it on the
// last move or the centre first if there is no cursor.
func (b *BoardUI) MoveSelection(dr, dc int) {
	if !b.onBoard() {
		b.selRow, b.selCol = types.Size/2-1, types.Size/2-1
		if b.state != nil && b.state.LastMove.InBounds() {
			b.selRow, b.selCol = b.state.LastMove.Row, b.state.LastMove.Col
		}
		b.refresh()
		return
	}
	next := types.Position{Row: b.selRow + dr, Col: b.selCol + dc}
	if !next.InBounds() {
		return
	}
	b.selRow, b.selCol = next.Row, next.Col
	b.refresh()
}

func (b *BoardUI) ResetSelection() {
	b.selRow = -1
	b.selCol = -1
}

func (b *BoardUI) isOffered(row, col int) bool {
	for _, p := range b.moves {
		if p.Row == row && p.Col == col {
			return true
		}
	}
	return false
}

// cellLook returns the rune and style of one square.
func (b *BoardUI) cellLook(row, col int) (rune, tcell.Style) {
	bg := b.styles[styleBoard]
	if (row+col)%2 == 1 {
		bg = b.styles[styleBoardAlt]
	}
	theme := b.cfg.Theme
	r, fg := theme.Symbols.BoardSquare, b.styles[styleLine]
	switch b.state.Board[row][col] {
	case types.Black:
		r, fg = theme.Symbols.BlackStone, b.styles[styleBlack]
	case types.White:
		r, fg = theme.Symbols.WhiteStone, b.styles[styleWhite]
	default:
		if theme.ShowLegalMoves && b.waiting && b.isOffered(row, col) {
			r, fg = theme.Symbols.Mark, b.styles[styleMark]
		}
	}
	last := b.state.LastMove
	switch {
	case row == b.selRow && col == b.selCol && theme.DrawCursorBackground:
		bg = b.styles[styleCursor]
	case row == last.Row && col == last.Col && theme.DrawLastPlayedBackground:
		bg = b.styles[styleLastPlayed]
	}
	return r, tcell.StyleDefault.Background(bg).Foreground(fg)
}

func (b *BoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if b.state == nil {
		return x, y, width, height
	}
	// 2 characters per cell, ranks in the first 3 columns
	left := x + 3
	for row := 0; row < types.Size; row++ {
		for col := 0; col < types.Size; col++ {
			r, style := b.cellLook(row, col)
			screen.SetContent(left+col*2, y+row, r, nil, style)
			screen.SetContent(left+col*2+1, y+row, ' ', nil, style)
		}
	}
	b.drawCoordinates(screen, x, y)
	return x, y, types.Size*2 + 3, types.Size + 1
}

func (b *BoardUI) drawCoordinates(screen tcell.Screen, x, y int) {
	plain := tcell.StyleDefault
	cursor := tcell.StyleDefault.Background(b.styles[styleCursor])
	for i := 0; i < types.Size; i++ {
		style := plain
		if i == b.selCol {
			style = cursor
		}
		screen.SetContent(x+3+i*2, y+types.Size, rune('a'+i), nil, style)

		style = plain
		if i == b.selRow {
			style = cursor
		}
		screen.SetContent(x+1, y+i, rune('0'+types.Size-i), nil, style)
	}
}

func (b *BoardUI) refresh() {
	if b.panel != nil {
		b.panel.Set(b.mode, b.state, b.moves, b.waiting)
	}
	if b.hint == nil {
		return
	}
	b.hint.SetText(b.hintText())
}

func (b *BoardUI) hintText() string {
	switch {
	case b.finished:
		return fmt.Sprintf("  %s\n  q/⏎ · back to menu", b.status)
	case b.state == nil:
		return ""
	case !b.waiting:
		return fmt.Sprintf("  ◌ Thinking...  %s", b.status)
	}
	controls := "hjkl/↑↓←→ move · ⏎ play · 1-9 pick"
	if b.canUndo {
		controls += " · u undo"
	}
	return fmt.Sprintf("  ● %s to move  %s\n  %s · q menu", b.toMove, b.status, controls)
}
