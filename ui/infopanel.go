package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"termreversi/engine"
	"termreversi/types"
)

// maxListed is how many entries of each move list the panel shows.
const maxListed = 12

// InfoPanel shows scores, numbered legal moves and the move list next to the board.
type InfoPanel struct {
	box *tview.TextView
}

func NewInfoPanel() *InfoPanel {
	p := &InfoPanel{box: tview.NewTextView()}
	p.box.SetDynamicColors(true)
	p.box.SetBorder(false)
	p.box.SetTextAlign(tview.AlignLeft)
	return p
}

// Box returns the underlying tview component.
func (p *InfoPanel) Box() *tview.TextView {
	return p.box
}

// Set redraws the panel for state. moves are listed only while a player is choosing.
func (p *InfoPanel) Set(mode engine.Mode, state *types.BoardState, moves []types.Position, choosing bool) {
	p.box.SetText(panelText(mode, state, moves, choosing))
}

func panelText(mode engine.Mode, state *types.BoardState, moves []types.Position, choosing bool) string {
	if state == nil {
		return ""
	}
	var sb strings.Builder
	section := func(title string) {
		fmt.Fprintf(&sb, "[white::b]%s[-:-:-]\n[dimgray]──────────────────────[-:-:-]\n", title)
	}

	section("Game Info")
	fmt.Fprintf(&sb, "[white]Mode:[-:-:-]  %s\n", mode.Title())
	if len(state.GameID) >= 8 {
		fmt.Fprintf(&sb, "[white]Game:[-:-:-]  %s\n", state.GameID[:8])
	}
	fmt.Fprintf(&sb, "[white]Move:[-:-:-]  %d\n", state.MoveNumber)
	fmt.Fprintf(&sb, "[white]Black:[-:-:-] %d\n", state.ScoreBlack)
	fmt.Fprintf(&sb, "[white]White:[-:-:-] %d\n", state.ScoreWhite)
	if state.Finished() {
		fmt.Fprintf(&sb, "[white]Result:[-:-:-] %s\n", state.Outcome)
	}

	if choosing && len(moves) > 0 {
		sb.WriteString("\n")
		section("Legal moves")
		for i, m := range moves {
			if i == maxListed {
				fmt.Fprintf(&sb, "[dimgray]  ··· %d more[-]\n", len(moves)-maxListed)
				break
			}
			if i < digitPicks {
				fmt.Fprintf(&sb, "[dimgray]%3d.[-] %s\n", i+1, m)
			} else {
				// beyond the digit keys, reachable with the cursor only
				fmt.Fprintf(&sb, "[dimgray]   ·[-] %s\n", m)
			}
		}
	}

	if len(state.History) > 0 {
		sb.WriteString("\n")
		section("Moves")
		start := 0
		if len(state.History) > maxListed {
			start = len(state.History) - maxListed
		}
		for i := start; i < len(state.History); i++ {
			m := state.History[i]
			marker := " "
			if i == len(state.History)-1 {
				marker = "[white]>[-]"
			}
			color := "[white]B[-]"
			if m.Color == types.White {
				color = "[dimgray]W[-]"
			}
			fmt.Fprintf(&sb, "%s[dimgray]%3d.[-] %s %s\n", marker, i+1, color, m.Pos)
		}
		if start > 0 {
			fmt.Fprintf(&sb, "[dimgray]  ··· %d earlier[-]\n", start)
		}
	}
	return sb.String()
}

// CreateGameLayout puts the board and a new info panel above the status bar.
func CreateGameLayout(board *BoardUI, hint *tview.TextView) *tview.Flex {
	panel := NewInfoPanel()
	board.panel = panel

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(panel.Box(), 26, 0, false)

	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(boardRow, 0, 1, true)
	mainFlex.AddItem(hint, 4, 0, false)
	return mainFlex
}
