package console

import (
	"strings"
	"testing"

	"termreversi/engine"
	"termreversi/types"
)

func run(t *testing.T, input string) string {
	t.Helper()
	var out strings.Builder
	c := New(strings.NewReader(input), &out)
	if err := engine.NewSession(nil).Run(c, c, engine.DefaultConfig()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestQuitImmediately(t *testing.T) {
	out := run(t, "0\n")
	for _, want := range []string{"1. vs Computer (easy)", "2. vs Computer (hard)", "3. Player vs Player", "0. Quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu missing %q:\n%s", want, out)
		}
	}
}

func TestEndOfInputQuits(t *testing.T) {
	out := run(t, "")
	if !strings.Contains(out, "Choose a game mode") {
		t.Fatalf("menu not shown:\n%s", out)
	}
}

func TestInvalidMenuOption(t *testing.T) {
	out := run(t, "7\nfoo\n0\n")
	if n := strings.Count(out, "Error! No such option"); n != 2 {
		t.Fatalf("got %d errors, want 2:\n%s", n, out)
	}
}

func TestPlayerVsPlayerAbort(t *testing.T) {
	out := run(t, "3\n-1\n0\n")
	if !strings.Contains(out, "Black to move") {
		t.Fatalf("turn alert missing:\n%s", out)
	}
	if !strings.Contains(out, "1. c5") || !strings.Contains(out, "4. f4") {
		t.Fatalf("opening moves not listed:\n%s", out)
	}
	if strings.Contains(out, "0. Take back") {
		t.Fatalf("undo offered on the first move:\n%s", out)
	}
	if strings.Count(out, "Choose a game mode") != 2 {
		t.Fatalf("abort should return to the menu:\n%s", out)
	}
}

func TestInvalidMoveReprompts(t *testing.T) {
	out := run(t, "pvp\n9\nzz\n0\nd6\n-1\n0\n")
	if n := strings.Count(out, "Error! No such option"); n != 3 {
		t.Fatalf("got %d errors, want 3:\n%s", n, out)
	}
	if !strings.Contains(out, "White to move") {
		t.Fatalf("d6 should have been played:\n%s", out)
	}
}

func TestEasyGameComputerReplies(t *testing.T) {
	out := run(t, "1\n1\n-1\n0\n")
	if !strings.Contains(out, "Computer (White) plays") {
		t.Fatalf("computer move missing:\n%s", out)
	}
	if !strings.Contains(out, "0. Take back your last move") {
		t.Fatalf("undo should be offered after two moves:\n%s", out)
	}
}

func TestPrintState(t *testing.T) {
	var out strings.Builder
	c := New(strings.NewReader(""), &out)
	state := &types.BoardState{ScoreBlack: 2, ScoreWhite: 2}
	state.Board[3][3] = types.White
	state.Board[3][4] = types.Black
	state.Board[2][3] = types.Marked
	c.NotifyGameResult(types.Empty, state)
	want := "Draw!\nBlack: 2  White: 2\n" +
		"8 - - - - - - - -\n" +
		"7 - - - - - - - -\n" +
		"6 - - - * - - - -\n" +
		"5 - - - O X - - -\n" +
		"4 - - - - - - - -\n" +
		"3 - - - - - - - -\n" +
		"2 - - - - - - - -\n" +
		"1 - - - - - - - -\n" +
		"  a b c d e f g h\n"
	if out.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestGameResultListsMoves(t *testing.T) {
	var out strings.Builder
	c := New(strings.NewReader(""), &out)
	state := &types.BoardState{ScoreBlack: 4, ScoreWhite: 1, Outcome: "B+3"}
	state.History = []types.PlayedMove{
		{Color: types.Black, Pos: types.Position{Row: 3, Col: 2}},
		{Color: types.White, Pos: types.Position{Row: 2, Col: 2}},
		{Color: types.Black, Pos: types.Position{Row: 2, Col: 3}},
	}
	c.NotifyGameResult(types.Black, state)
	got := out.String()
	if !strings.HasPrefix(got, "Black wins!\n") {
		t.Fatalf("got:\n%s", got)
	}
	if !strings.HasSuffix(got, "  a b c d e f g h\nMoves (3): c5 c6 d6\nResult: B+3\n") {
		t.Fatalf("move list missing:\n%s", got)
	}
}
