package ui

import (
	"github.com/gdamore/tcell/v2"
)

// RadioOption is one entry of a RadioSelect. Description is drawn dimmed after
// the label, Note right-aligned in the record color.
type RadioOption struct {
	Label       string
	Description string
	Note        string
}

// RadioSelect is a vertical radio group. Digits 1-9 jump to an option.
type RadioSelect struct {
	label    string
	options  []RadioOption
	selected int
	focused  bool
	onChange func(int)
}

func NewRadioSelect(label string, options []RadioOption, initial int, onChange func(int)) *RadioSelect {
	return &RadioSelect{
		label:    label,
		options:  options,
		selected: initial,
		onChange: onChange,
	}
}

func (r *RadioSelect) SetFocused(focused bool) {
	r.focused = focused
}

// HandleKey moves the selection. Returns true if the key was used.
func (r *RadioSelect) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyUp:
		r.SetSelected(r.selected - 1)
		return true
	case tcell.KeyDown:
		r.SetSelected(r.selected + 1)
		return true
	case tcell.KeyRune:
		switch ch := event.Rune(); {
		case ch == 'k':
			r.SetSelected(r.selected - 1)
			return true
		case ch == 'j':
			r.SetSelected(r.selected + 1)
			return true
		case ch >= '1' && ch <= '9' && int(ch-'1') < len(r.options):
			r.SetSelected(int(ch - '1'))
			return true
		}
	}
	return false
}

// Draw renders the group in width columns and returns the rows used.
func (r *RadioSelect) Draw(screen tcell.Screen, x, y, width int) int {
	selectedStyle := cardStyle(MenuColors.Selected)
	unselectedStyle := cardStyle(MenuColors.Unselected)
	hintStyle := cardStyle(MenuColors.Hint)

	screen.SetContent(x, y, '◈', nil, cardStyle(MenuColors.TitleAccent))
	drawText(screen, x+2, y, r.label, cardStyle(MenuColors.Label))

	for i, opt := range r.options {
		row := y + 1 + i
		if r.focused && i == r.selected {
			screen.SetContent(x+2, row, '▸', nil, selectedStyle)
		}
		style, bullet := unselectedStyle, '○'
		if i == r.selected {
			style, bullet = selectedStyle, '●'
		}
		screen.SetContent(x+4, row, bullet, nil, style)
		col := drawText(screen, x+6, row, opt.Label, style)
		if opt.Description != "" {
			drawText(screen, col+1, row, opt.Description, hintStyle)
		}
		if opt.Note != "" {
			drawText(screen, x+width-len([]rune(opt.Note)), row, opt.Note, cardStyle(MenuColors.Record))
		}
	}
	return len(r.options) + 1
}

func (r *RadioSelect) Selected() int {
	return r.selected
}

// SetSelected moves the selection to index if it exists.
func (r *RadioSelect) SetSelected(index int) {
	if index < 0 || index >= len(r.options) || index == r.selected {
		return
	}
	r.selected = index
	if r.onChange != nil {
		r.onChange(r.selected)
	}
}

// SetNote replaces the note of option index.
func (r *RadioSelect) SetNote(index int, note string) {
	if index >= 0 && index < len(r.options) {
		r.options[index].Note = note
	}
}
