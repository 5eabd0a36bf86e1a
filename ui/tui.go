package ui

import (
	"fmt"
	"io"
	"log"

	"github.com/rivo/tview"

	"termreversi/config"
	"termreversi/engine"
	"termreversi/types"
)

const (
	pageMenu   = "menu"
	pageGame   = "game"
	pageColors = "colors"
)

// TUI is the full-screen front end. It runs a Session on its own goroutine,
// acting as the session's mode selector and, through its board, as the
// collaborator of every game.
type TUI struct {
	app      *tview.Application
	pages    *tview.Pages
	board    *BoardUI
	menu     *ModeMenu
	picks    chan engine.Mode
	preset   *engine.Mode
	debugLog *log.Logger
}

// NewTUI builds the menu and game pages. A nil logger discards.
func NewTUI(cfg *config.Config, base engine.GameConfig, logger *log.Logger) *TUI {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	t := &TUI{
		app:      tview.NewApplication(),
		pages:    tview.NewPages(),
		picks:    make(chan engine.Mode, 1),
		debugLog: logger,
	}
	t.pages.SetBorder(true).SetTitle(" ● termreversi ")

	hint := tview.NewTextView()
	hint.SetBorder(true)
	hint.SetBorderPadding(0, 0, 1, 1)
	hint.SetTitle(" Status ")
	hint.SetTitleAlign(tview.AlignLeft)
	t.board = NewBoard(t.app, cfg, hint)
	gameFrame := CreateGameLayout(t.board, hint)

	picker := NewThemePicker(cfg, func(saved bool, err error) {
		if err != nil {
			t.debugLog.Printf("ui: saving theme: %s", err)
		}
		if saved {
			t.board.SetConfig(cfg)
		}
		t.pages.SwitchToPage(pageMenu)
		t.app.SetFocus(t.menu)
	})
	t.menu = NewModeMenu(base.Mode, t.pick, func() {
		picker.Reset()
		t.pages.SwitchToPage(pageColors)
		t.app.SetFocus(picker.Flex())
	}, t.app.Stop)
	human := base.HumanColor
	if human != types.White {
		human = types.Black
	}
	t.menu.SetHumanColor(fmt.Sprintf("you play %s", human))

	t.pages.AddPage(pageMenu, Centered(t.menu, 52, 16), true, true)
	t.pages.AddPage(pageGame, gameFrame, true, false)
	t.pages.AddPage(pageColors, picker.Flex(), true, false)
	return t
}

// Preselect makes the first SelectMode return mode without showing the menu.
func (t *TUI) Preselect(mode engine.Mode) {
	t.preset = &mode
}

// pick runs on the UI goroutine when the player starts a game from the menu.
func (t *TUI) pick(mode engine.Mode) {
	select {
	case t.picks <- mode:
		t.showGame(mode)
	default:
	}
}

func (t *TUI) showGame(mode engine.Mode) {
	t.debugLog.Printf("ui: starting %s", mode)
	t.board.StartGame(mode)
	t.pages.SwitchToPage(pageGame)
	t.app.SetFocus(t.board.Box)
}

// SelectMode waits for the result screen to be dismissed, then shows the menu
// and blocks until the player starts a game or quits.
func (t *TUI) SelectMode(scores engine.HighScores) (engine.Mode, bool) {
	t.board.waitDismissed()
	if t.preset != nil {
		mode := *t.preset
		t.preset = nil
		t.app.QueueUpdateDraw(func() { t.showGame(mode) })
		return mode, true
	}
	t.app.QueueUpdateDraw(func() {
		if len(t.picks) > 0 {
			// picked before the menu was shown again
			return
		}
		t.menu.SetHighScores(scores)
		t.pages.SwitchToPage(pageMenu)
		t.app.SetFocus(t.menu)
	})
	select {
	case mode := <-t.picks:
		return mode, true
	case <-t.board.done:
		return 0, false
	}
}

// Run plays games in s until the player quits and returns the first error of
// either the session or the terminal.
func (t *TUI) Run(s *engine.Session, base engine.GameConfig) error {
	errs := make(chan error, 1)
	go func() {
		errs <- s.Run(t, t.board, base)
		t.app.Stop()
	}()
	runErr := t.app.SetRoot(t.pages, true).SetFocus(t.menu).Run()
	t.board.Close()
	select {
	case err := <-errs:
		if err != nil {
			return err
		}
	default:
	}
	return runErr
}
