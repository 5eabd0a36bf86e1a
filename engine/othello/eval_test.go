package othello

import (
	"errors"
	"testing"

	"termreversi/types"
)

func TestMoveValueBase(t *testing.T) {
	b := NewBoard()
	for _, m := range b.LegalMoves(types.Black) {
		if v := b.MoveValue(m, types.Black, false); v != 1 {
			t.Errorf("opening move %s value = %v, want 1", m.To, v)
		}
	}
}

func TestMoveValueEdgeAndCorner(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want float64
	}{
		{
			name: "edge destination, edge capture",
			rows: []string{"BW......", "........", "........", "........", "........", "........", "........", "........"},
			want: 0.4 + 2,
		},
		{
			name: "corner destination, edge capture",
			rows: []string{".WB.....", "........", "........", "........", "........", "........", "........", "........"},
			want: 0.8 + 2,
		},
		{
			name: "interior destination, two interior captures",
			rows: []string{"........", ".B......", "..W.....", "...W....", "........", "........", "........", "........"},
			want: 0 + 1 + 1,
		},
	}
	for _, tt := range tests {
		b := mustParse(t, tt.rows...)
		moves := b.LegalMoves(types.Black)
		if len(moves) != 1 {
			t.Fatalf("%s: got %d moves, want 1", tt.name, len(moves))
		}
		if got := b.MoveValue(moves[0], types.Black, false); got != tt.want {
			t.Errorf("%s: value = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMoveValueAdvancedNoReply(t *testing.T) {
	b := mustParse(t,
		"BW......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	m := b.LegalMoves(types.Black)[0]
	base := b.MoveValue(m, types.Black, false)
	advanced := b.MoveValue(m, types.Black, true)
	if advanced != base+999999999 {
		t.Fatalf("advanced value = %v, want %v", advanced, base+999999999)
	}
}

func TestMoveValueAdvancedSubtractsBestReply(t *testing.T) {
	b := NewBoard()
	m := b.LegalMoves(types.Black)[0]

	probe := NewBoard()
	probe.Commit(m, types.Black)
	best := float64(noReply)
	for _, r := range probe.LegalMoves(types.White) {
		if v := probe.MoveValue(r, types.White, false); v > best {
			best = v
		}
	}

	got := b.MoveValue(m, types.Black, true)
	if want := 1 - best; got != want {
		t.Fatalf("advanced value = %v, want %v", got, want)
	}
}

func TestMoveValueAdvancedRestoresBoard(t *testing.T) {
	b := NewBoard()
	moves := b.LegalMoves(types.Black)
	b.ClearMarks()
	before := b.String()
	for _, m := range moves {
		b.MoveValue(m, types.Black, true)
		if b.String() != before {
			t.Fatalf("board changed after evaluating %s", m.To)
		}
	}
	if b.HistoryLen() != 0 {
		t.Fatal("evaluation left moves in the history")
	}
	if black, white := b.Scores(); black != 2 || white != 2 {
		t.Fatalf("scores = (%d, %d) after evaluation", black, white)
	}
}

func TestMoveValueAdvancedKeepsHistory(t *testing.T) {
	b := NewBoard()
	b.Commit(b.LegalMoves(types.Black)[0], types.Black)
	b.Commit(b.LegalMoves(types.White)[0], types.White)
	last, _ := b.LastMove()
	moves := b.LegalMoves(types.Black)
	b.ClearMarks()
	for _, m := range moves {
		b.MoveValue(m, types.Black, true)
	}
	if got, _ := b.LastMove(); b.HistoryLen() != 2 || got != last {
		t.Fatalf("history = %d, last = %s; want 2, %s", b.HistoryLen(), got, last)
	}
	// Both earlier moves can still be taken back.
	for i := 0; i < 2; i++ {
		if err := b.Undo(); err != nil {
			t.Fatalf("Undo %d: %v", i, err)
		}
	}
}

func TestChooseBestMoveTieKeepsFirst(t *testing.T) {
	b := NewBoard()
	moves := b.LegalMoves(types.Black)
	for i := 0; i < 5; i++ {
		best, err := b.ChooseBestMove(moves, types.Black, false)
		if err != nil {
			t.Fatalf("ChooseBestMove: %v", err)
		}
		if best.To != moves[0].To {
			t.Fatalf("best = %s, want first enumerated %s", best.To, moves[0].To)
		}
	}
}

func TestChooseBestMovePrefersHigherValue(t *testing.T) {
	// e2 and c3 each capture one interior stone; a3 takes an edge stone and
	// comes last in scan order.
	b := mustParse(t,
		"........",
		"........",
		"B.......",
		".W......",
		"..B.....",
		"...WB...",
		"W.......",
		"B.......",
	)
	moves := b.LegalMoves(types.Black)
	got := Destinations(moves)
	if len(got) != 3 || got[0].String() != "e2" || got[1].String() != "c3" || got[2].String() != "a3" {
		t.Fatalf("moves = %v, want [e2 c3 a3]", got)
	}
	best, err := b.ChooseBestMove(moves, types.Black, false)
	if err != nil {
		t.Fatalf("ChooseBestMove: %v", err)
	}
	if best.To.String() != "a3" {
		t.Fatalf("best = %s, want a3", best.To)
	}
}

func TestChooseBestMoveHardDeterministic(t *testing.T) {
	b := NewBoard()
	b.Commit(b.LegalMoves(types.Black)[0], types.Black)
	moves := b.LegalMoves(types.White)
	first, err := b.ChooseBestMove(moves, types.White, true)
	if err != nil {
		t.Fatalf("ChooseBestMove: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, _ := b.ChooseBestMove(moves, types.White, true)
		if again.To != first.To {
			t.Fatalf("run %d chose %s, first run chose %s", i, again.To, first.To)
		}
	}
}

func TestChooseBestMoveEmpty(t *testing.T) {
	b := NewBoard()
	if _, err := b.ChooseBestMove(nil, types.White, true); !errors.Is(err, ErrNoLegalMove) {
		t.Fatalf("got %v, want ErrNoLegalMove", err)
	}
}

func TestTier(t *testing.T) {
	if Easy.Advanced() || !Hard.Advanced() {
		t.Fatal("only the hard tier looks ahead")
	}
	if Easy.String() != "easy" || Hard.String() != "hard" {
		t.Fatalf("tier names = %q, %q", Easy, Hard)
	}
}
