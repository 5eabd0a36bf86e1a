package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// MenuCard is a box with rounded borders, a centred title and a divider under it.
type MenuCard struct {
	*tview.Box
	title string
}

// NewMenuCard creates a card titled title. The title is letter-spaced when drawn.
func NewMenuCard(title string) *MenuCard {
	return &MenuCard{
		Box:   tview.NewBox(),
		title: title,
	}
}

// drawFrame fills the card and draws its frame. It returns the first free row
// below the divider, or -1 if the card is too small to hold anything.
func (c *MenuCard) drawFrame(screen tcell.Screen) int {
	c.Box.DrawForSubclass(screen, c)

	x, y, width, height := c.GetInnerRect()
	if width < 12 || height < 7 {
		return -1
	}
	border := cardStyle(MenuColors.Border)
	if c.HasFocus() {
		border = cardStyle(MenuColors.BorderFocus)
	}
	bg := cardStyle(MenuColors.CardBG)

	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, bg)
		}
	}
	c.hline(screen, y, '╭', '╮', border)
	c.hline(screen, y+height-1, '╰', '╯', border)
	for row := y + 1; row < y+height-1; row++ {
		screen.SetContent(x, row, '│', nil, border)
		screen.SetContent(x+width-1, row, '│', nil, border)
	}

	spaced := letterSpace(c.title)
	titleX := x + (width-len([]rune(spaced))-3)/2
	screen.SetContent(titleX, y+2, '●', nil, cardStyle(MenuColors.TitleAccent))
	drawText(screen, titleX+3, y+2, spaced, cardStyle(MenuColors.Title).Bold(true))
	c.hline(screen, y+4, '├', '┤', border)
	return y + 6
}

// Draw renders the empty card.
func (c *MenuCard) Draw(screen tcell.Screen) {
	c.drawFrame(screen)
}

func (c *MenuCard) hline(screen tcell.Screen, row int, left, right rune, style tcell.Style) {
	x, _, width, _ := c.GetInnerRect()
	screen.SetContent(x, row, left, nil, style)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, row, '─', nil, style)
	}
	screen.SetContent(x+width-1, row, right, nil, style)
}

func letterSpace(s string) string {
	out := make([]rune, 0, len(s)*2)
	for i, r := range []rune(s) {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, r)
	}
	return string(out)
}
