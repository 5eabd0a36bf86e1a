package ui

import (
	"github.com/gdamore/tcell/v2"
)

// MenuButton is a one-line button drawn inside a card.
type MenuButton struct {
	label    string
	primary  bool
	focused  bool
	onSelect func()
}

func NewMenuButton(label string, primary bool, onSelect func()) *MenuButton {
	return &MenuButton{
		label:    label,
		primary:  primary,
		onSelect: onSelect,
	}
}

func (b *MenuButton) SetFocused(focused bool) {
	b.focused = focused
}

// HandleKey fires the button on Enter or space.
func (b *MenuButton) HandleKey(event *tcell.EventKey) bool {
	if event.Key() == tcell.KeyEnter || (event.Key() == tcell.KeyRune && event.Rune() == ' ') {
		if b.onSelect != nil {
			b.onSelect()
		}
		return true
	}
	return false
}

func (b *MenuButton) text() string {
	if b.primary {
		return "▶ " + b.label
	}
	return b.label
}

// Draw renders the button at (x, y) and returns its width.
// A focused button is a filled pill, otherwise the label sits in brackets.
func (b *MenuButton) Draw(screen tcell.Screen, x, y int) int {
	label := b.text()
	width := b.Width()
	if b.focused {
		style := tcell.StyleDefault.Foreground(MenuColors.ButtonText).Background(MenuColors.ButtonFocus)
		for i := 0; i < width; i++ {
			screen.SetContent(x+i, y, ' ', nil, style)
		}
		drawText(screen, x+1, y, label, style)
		return width
	}
	bracket := cardStyle(MenuColors.Border)
	screen.SetContent(x, y, '[', nil, bracket)
	end := drawText(screen, x+1, y, label, cardStyle(MenuColors.Hint))
	screen.SetContent(end, y, ']', nil, bracket)
	return width
}

// Width is the number of columns Draw uses.
func (b *MenuButton) Width() int {
	return len([]rune(b.text())) + 2
}
