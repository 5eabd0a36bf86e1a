package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termreversi/engine"
)

// ModeMenu is the start screen: a card listing the game modes with their
// records, and Start/Colors/Quit buttons.
type ModeMenu struct {
	*MenuCard
	modes   *RadioSelect
	buttons []*MenuButton
	focus   int // 0 is the mode list, i > 0 is buttons[i-1]
	onStart func(engine.Mode)
}

// NewModeMenu creates the menu. onStart receives the highlighted mode.
func NewModeMenu(initial engine.Mode, onStart func(engine.Mode), onColors, onQuit func()) *ModeMenu {
	m := &ModeMenu{
		MenuCard: NewMenuCard("REVERSI"),
		onStart:  onStart,
	}
	options := make([]RadioOption, len(engine.Modes))
	selected := 0
	for i, mode := range engine.Modes {
		options[i] = RadioOption{Label: mode.Title(), Note: "record 0"}
		if mode == initial {
			selected = i
		}
	}
	m.modes = NewRadioSelect("Game mode", options, selected, nil)
	m.buttons = []*MenuButton{
		NewMenuButton("Start", true, m.start),
		NewMenuButton("Colors", false, onColors),
		NewMenuButton("Quit", false, onQuit),
	}
	m.setFocus(0)
	return m
}

// SetHighScores refreshes the record shown next to each mode.
func (m *ModeMenu) SetHighScores(scores engine.HighScores) {
	for i, mode := range engine.Modes {
		m.modes.SetNote(i, fmt.Sprintf("record %d", scores.For(mode)))
	}
}

// SetHumanColor updates the hint on the computer modes.
func (m *ModeMenu) SetHumanColor(desc string) {
	for i, mode := range engine.Modes {
		if _, ok := mode.Tier(); ok {
			m.modes.options[i].Description = desc
		} else {
			m.modes.options[i].Description = ""
		}
	}
}

// Selected returns the highlighted mode.
func (m *ModeMenu) Selected() engine.Mode {
	return engine.Modes[m.modes.Selected()]
}

func (m *ModeMenu) start() {
	if m.onStart != nil {
		m.onStart(m.Selected())
	}
}

func (m *ModeMenu) setFocus(i int) {
	n := len(m.buttons) + 1
	m.focus = (i%n + n) % n
	m.modes.SetFocused(m.focus == 0)
	for j, b := range m.buttons {
		b.SetFocused(m.focus == j+1)
	}
}

// HandleKey processes a key and reports whether it was used.
func (m *ModeMenu) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyTab:
		m.setFocus(m.focus + 1)
		return true
	case tcell.KeyBacktab:
		m.setFocus(m.focus - 1)
		return true
	case tcell.KeyLeft, tcell.KeyRight:
		if m.focus > 0 {
			if event.Key() == tcell.KeyLeft {
				m.setFocus(m.focus - 1)
			} else {
				m.setFocus(m.focus + 1)
			}
			return true
		}
	case tcell.KeyEnter:
		if m.focus == 0 {
			m.start()
			return true
		}
	case tcell.KeyEsc:
		return m.buttons[len(m.buttons)-1].HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	case tcell.KeyRune:
		if event.Rune() == 'q' {
			return m.HandleKey(tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone))
		}
	}
	if m.focus == 0 {
		if event.Key() == tcell.KeyRune && event.Rune() >= '1' && event.Rune() <= '9' {
			if m.modes.HandleKey(event) {
				m.start()
			}
			return true
		}
		return m.modes.HandleKey(event)
	}
	return m.buttons[m.focus-1].HandleKey(event)
}

// Draw renders the card, the mode list, the buttons and a key hint.
func (m *ModeMenu) Draw(screen tcell.Screen) {
	row := m.drawFrame(screen)
	if row < 0 {
		return
	}
	x, y, width, height := m.GetInnerRect()
	row += m.modes.Draw(screen, x+3, row, width-6) + 1

	col := x + 3
	for _, b := range m.buttons {
		col += b.Draw(screen, col, row) + 2
	}
	drawText(screen, x+3, y+height-2, "tab switch · ⏎ select · 1-3 start · q quit", cardStyle(MenuColors.Hint))
}

func (m *ModeMenu) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return m.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		m.HandleKey(event)
	})
}

// Centered places p in the middle of the screen with a fixed size.
func Centered(p tview.Primitive, width, height int) *tview.Flex {
	row := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(nil, 0, 1, false).
		AddItem(p, width, 0, true).
		AddItem(nil, 0, 1, false)
	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(row, height, 0, true).
		AddItem(nil, 0, 1, false)
}
