package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"termreversi/config"
	"termreversi/engine"
	"termreversi/engine/othello"
	"termreversi/types"
)

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// testBoard returns a board whose queued updates are run by the test
// goroutine via the returned channel.
func testBoard(t *testing.T) (*BoardUI, chan func()) {
	t.Helper()
	cfg := config.DefaultConfig
	updates := make(chan func(), 8)
	b := newBoard(func(f func()) { updates <- f }, &cfg, nil)
	return b, updates
}

var opening = []types.Position{{Row: 3, Col: 2}, {Row: 2, Col: 3}, {Row: 5, Col: 4}, {Row: 4, Col: 5}}

// request starts a move request on a game goroutine, applies its UI update
// and returns the channel the answer arrives on.
func request(b *BoardUI, updates chan func(), undo bool) chan engine.Choice {
	res := make(chan engine.Choice, 1)
	go func() {
		res <- b.RequestMoveChoice(types.Black, opening, undo)
	}()
	(<-updates)()
	return res
}

func TestBoardEnterPlaysCursorSquare(t *testing.T) {
	b, updates := testBoard(t)
	res := request(b, updates, false)
	if b.selRow != 3 || b.selCol != 2 {
		t.Fatalf("cursor at %d,%d, want the first offered move", b.selRow, b.selCol)
	}
	b.HandleKey(key(tcell.KeyEnter))
	if c := <-res; c != engine.Pick(0) {
		t.Fatalf("got %v, want move 0", c)
	}

	res = request(b, updates, false)
	b.HandleKey(runeKey('l'))
	b.HandleKey(key(tcell.KeyEnter))
	if c := <-res; c != engine.Pick(-1) {
		t.Fatalf("got %v for an unmarked square, want move -1", c)
	}
}

func TestBoardShortcutKeys(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want engine.Choice
	}{
		{runeKey('3'), engine.Pick(2)},
		{runeKey('u'), engine.Undo()},
		{runeKey('q'), engine.Abort()},
		{key(tcell.KeyEsc), engine.Abort()},
	}
	for _, tt := range tests {
		b, updates := testBoard(t)
		res := request(b, updates, true)
		if b.HandleKey(tt.ev) != nil {
			t.Errorf("%v should be consumed", tt.want)
		}
		if c := <-res; c != tt.want {
			t.Errorf("got %v, want %v", c, tt.want)
		}
	}
}

func TestBoardDropsKeysWhileNotAsked(t *testing.T) {
	b, _ := testBoard(t)
	b.HandleKey(key(tcell.KeyEnter))
	b.HandleKey(runeKey('1'))
	if len(b.choices) != 0 {
		t.Fatal("choice queued without a pending request")
	}
}

func TestBoardSecondKeyIsNotQueued(t *testing.T) {
	b, updates := testBoard(t)
	res := request(b, updates, false)
	b.HandleKey(runeKey('1'))
	b.HandleKey(runeKey('2'))
	if c := <-res; c != engine.Pick(0) {
		t.Fatalf("got %v", c)
	}
	if len(b.choices) != 0 {
		t.Fatal("second key should be dropped")
	}
}

func TestBoardCloseAborts(t *testing.T) {
	cfg := config.DefaultConfig
	b := newBoard(func(func()) {}, &cfg, nil)
	b.Close()
	b.Close()
	if c := b.RequestMoveChoice(types.Black, opening, false); c != engine.Abort() {
		t.Fatalf("got %v, want abort", c)
	}
}

func TestBoardResultDismiss(t *testing.T) {
	b, updates := testBoard(t)
	state := othello.NewBoard().Snapshot()
	state.Phase = types.PhaseFinished
	b.NotifyGameResult(types.White, state)
	(<-updates)()
	if !b.finished || b.status != "White wins!" {
		t.Fatalf("finished=%v status=%q", b.finished, b.status)
	}
	if b.HandleKey(runeKey('u')) == nil {
		t.Fatal("keys other than dismiss should pass through")
	}
	if b.HandleKey(runeKey('q')) != nil {
		t.Fatal("q should dismiss the result")
	}
	b.waitDismissed()
	if b.resultShown {
		t.Fatal("result should be dismissed")
	}
}

func TestBoardMessages(t *testing.T) {
	b, updates := testBoard(t)
	b.NotifyComputerMove(types.White, types.Position{Row: 5, Col: 3})
	(<-updates)()
	if b.status != "Computer (White) played d3" {
		t.Fatalf("status = %q", b.status)
	}
	b.NotifyInvalidChoice(engine.Undo())
	(<-updates)()
	if b.status != "Nothing to take back yet" {
		t.Fatalf("status = %q", b.status)
	}
}

func TestBoardHint(t *testing.T) {
	b, updates := testBoard(t)
	b.state = othello.NewBoard().Snapshot()
	res := request(b, updates, false)
	if strings.Contains(b.hintText(), "undo") {
		t.Fatalf("undo offered too early: %q", b.hintText())
	}
	b.canUndo = true
	if !strings.Contains(b.hintText(), "u undo") || !strings.Contains(b.hintText(), "Black to move") {
		t.Fatalf("hint = %q", b.hintText())
	}
	b.HandleKey(runeKey('q'))
	<-res
}

func TestBoardMoveSelection(t *testing.T) {
	b, _ := testBoard(t)
	b.MoveSelection(1, 0)
	if b.selRow != 3 || b.selCol != 3 {
		t.Fatalf("first move should place the cursor at d5, got %d,%d", b.selRow, b.selCol)
	}
	b.selRow, b.selCol = 0, 0
	b.MoveSelection(-1, 0)
	b.MoveSelection(0, -1)
	if b.selRow != 0 || b.selCol != 0 {
		t.Fatal("cursor left the board")
	}
}

func TestBoardDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(30, 10)

	b, _ := testBoard(t)
	b.state = othello.NewBoard().Snapshot()
	b.moves = []types.Position{{Row: 2, Col: 3}}
	b.waiting = true
	b.Box.SetRect(0, 0, 30, 10)
	b.Box.Draw(screen)

	sym := config.DefaultTheme.Symbols
	tests := []struct {
		x, y int
		want rune
	}{
		{1, 0, '8'},
		{1, 7, '1'},
		{3, 8, 'a'},
		{17, 8, 'h'},
		{3 + 3*2, 3, sym.WhiteStone},
		{3 + 4*2, 3, sym.BlackStone},
		{3 + 3*2, 2, sym.Mark},
		{3, 0, sym.BoardSquare},
	}
	for _, tt := range tests {
		if got, _, _, _ := screen.GetContent(tt.x, tt.y); got != tt.want {
			t.Errorf("(%d,%d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}
