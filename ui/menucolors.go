package ui

import "github.com/gdamore/tcell/v2"

// MenuColors is the palette of the menu card, picked to sit next to the green board.
var MenuColors = struct {
	Border      tcell.Color
	BorderFocus tcell.Color
	CardBG      tcell.Color
	Title       tcell.Color
	TitleAccent tcell.Color // the disc in front of the title
	Label       tcell.Color
	Hint        tcell.Color
	Selected    tcell.Color
	Unselected  tcell.Color
	Record      tcell.Color // high score next to each mode
	ButtonFocus tcell.Color
	ButtonText  tcell.Color
}{
	Border:      tcell.PaletteColor(65),
	BorderFocus: tcell.PaletteColor(108),
	CardBG:      tcell.PaletteColor(235),
	Title:       tcell.PaletteColor(255),
	TitleAccent: tcell.PaletteColor(28),
	Label:       tcell.PaletteColor(250),
	Hint:        tcell.PaletteColor(244),
	Selected:    tcell.PaletteColor(114),
	Unselected:  tcell.PaletteColor(244),
	Record:      tcell.PaletteColor(179),
	ButtonFocus: tcell.PaletteColor(28),
	ButtonText:  tcell.PaletteColor(255),
}

func cardStyle(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(MenuColors.CardBG)
}

// drawText writes s from (x, y) and returns the column after the last rune.
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
