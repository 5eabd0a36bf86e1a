package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termreversi/config"
)

type paletteEntry struct {
	code int
	name string
}

// Felt-like tones for the two square colors.
var squareColors = []paletteEntry{
	{22, "Dark Green"},
	{28, "Green"},
	{29, "Sea Green"},
	{34, "Bright Green"},
	{64, "Olive"},
	{65, "Moss"},
	{23, "Teal"},
	{24, "Deep Cyan"},
	{17, "Navy"},
	{52, "Maroon"},
	{94, "Brown"},
	{130, "Rust"},
	{236, "Charcoal"},
	{240, "Slate"},
}

// ThemePicker edits the two board square colors with a live preview.
// Tab switches between the colors, Enter saves, Esc cancels.
type ThemePicker struct {
	flex    *tview.Flex
	list    *tview.List
	preview *tview.Box
	cfg     *config.Config
	onDone  func(saved bool, err error)

	board     int
	boardAlt  int
	editAlt   bool
	populated bool
}

// NewThemePicker creates the picker. onDone is called after Enter or Esc.
func NewThemePicker(cfg *config.Config, onDone func(saved bool, err error)) *ThemePicker {
	p := &ThemePicker{
		cfg:    cfg,
		onDone: onDone,
	}
	p.list = tview.NewList()
	p.list.SetBorder(true)
	p.list.ShowSecondaryText(false)
	p.list.SetChangedFunc(func(index int, _, _ string, _ rune) {
		if !p.populated || index < 0 || index >= len(squareColors) {
			return
		}
		if p.editAlt {
			p.boardAlt = squareColors[index].code
		} else {
			p.board = squareColors[index].code
		}
	})
	p.list.SetSelectedFunc(func(int, string, string, rune) {
		p.apply()
	})
	p.list.SetInputCapture(p.HandleKey)

	p.preview = tview.NewBox()
	p.preview.SetBorder(true)
	p.preview.SetTitle(" Preview ")
	p.preview.SetDrawFunc(p.drawPreview)

	p.flex = tview.NewFlex().
		AddItem(p.list, 30, 0, true).
		AddItem(p.preview, 0, 1, false)
	p.Reset()
	return p
}

// Reset loads the colors of the current theme.
func (p *ThemePicker) Reset() {
	p.board = p.cfg.Theme.Colors.BoardColor
	p.boardAlt = p.cfg.Theme.Colors.BoardColorAlt
	p.editAlt = false
	p.populate()
}

func (p *ThemePicker) populate() {
	p.populated = false
	p.list.Clear()
	current := p.board
	title := " Squares (Tab: alternate) "
	if p.editAlt {
		current = p.boardAlt
		title = " Alternate squares (Tab: squares) "
	}
	p.list.SetTitle(title)
	for i, c := range squareColors {
		p.list.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)", tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range squareColors {
		if c.code == current {
			p.list.SetCurrentItem(i)
			break
		}
	}
	p.populated = true
}

// HandleKey is the input capture of the color list.
func (p *ThemePicker) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	switch {
	case event.Key() == tcell.KeyTab:
		p.editAlt = !p.editAlt
		p.populate()
		return nil
	case event.Key() == tcell.KeyEsc, event.Key() == tcell.KeyRune && event.Rune() == 'q':
		p.Reset()
		p.onDone(false, nil)
		return nil
	}
	return event
}

// apply stores the picked colors in the config and saves it.
func (p *ThemePicker) apply() {
	p.cfg.Theme.Colors.BoardColor = p.board
	p.cfg.Theme.Colors.BoardColorAlt = p.boardAlt
	_, err := p.cfg.Save()
	p.onDone(true, err)
}

func (p *ThemePicker) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	// inside the border
	x, y, width, height = x+1, y+1, width-2, height-2
	if width < 20 || height < 10 {
		return x, y, width, height
	}
	colors := p.cfg.Theme.Colors
	symbols := p.cfg.Theme.Symbols
	discs := map[[2]int]tcell.Color{
		{3, 3}: tcell.PaletteColor(colors.WhiteColor),
		{4, 4}: tcell.PaletteColor(colors.WhiteColor),
		{3, 4}: tcell.PaletteColor(colors.BlackColor),
		{4, 3}: tcell.PaletteColor(colors.BlackColor),
	}
	left, top := x+2, y+1
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			bg := tcell.PaletteColor(p.board)
			if (row+col)%2 == 1 {
				bg = tcell.PaletteColor(p.boardAlt)
			}
			r, fg := symbols.BoardSquare, tcell.PaletteColor(colors.LineColor)
			if c, ok := discs[[2]int{row, col}]; ok {
				r, fg = symbols.BlackStone, c
				if row == col {
					r = symbols.WhiteStone
				}
			} else if row == 2 && col == 3 {
				r, fg = symbols.Mark, tcell.PaletteColor(colors.MarkColor)
			}
			style := tcell.StyleDefault.Background(bg).Foreground(fg)
			screen.SetContent(left+col*2, top+row, r, nil, style)
			screen.SetContent(left+col*2+1, top+row, ' ', nil, style)
		}
	}
	drawText(screen, left, top+9, fmt.Sprintf("Squares: %d  Alternate: %d", p.board, p.boardAlt), tcell.StyleDefault)
	return x, y, width, height
}

// Flex returns the picker layout.
func (p *ThemePicker) Flex() *tview.Flex {
	return p.flex
}
