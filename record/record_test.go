package record

import (
	"testing"

	"termreversi/engine/othello"
	"termreversi/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"c5 c6", "c5 c6"},
		{"c5c6", "c5 c6"},
		{"  C5\tc6 ", "c5 c6"},
		{"", ""},
	}
	for _, tt := range tests {
		moves, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.input, err)
			continue
		}
		tr := NewTranscript()
		for _, p := range moves {
			tr.AddMove(types.Black, p)
		}
		if got := tr.String(); got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, s := range []string{"c", "c5c", "z9", "c5 i1"} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) should fail", s)
		}
	}
}

func TestUndoMoves(t *testing.T) {
	tr := NewTranscript()
	for _, s := range []string{"c5", "c6", "d6"} {
		p, _ := types.ParsePosition(s)
		tr.AddMove(types.Black, p)
	}
	tr.UndoMoves(2)
	if tr.Len() != 1 || tr.String() != "c5" {
		t.Fatalf("after undo: %q (len %d)", tr.String(), tr.Len())
	}
	tr.UndoMoves(5)
	if tr.Len() != 0 {
		t.Fatalf("undo past start should leave empty transcript, got %d", tr.Len())
	}
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		black, white int
		want         string
	}{
		{40, 24, "B+16"},
		{20, 44, "W+24"},
		{32, 32, "Draw"},
	}
	for _, tt := range tests {
		if got := FormatResult(tt.black, tt.white); got != tt.want {
			t.Errorf("FormatResult(%d, %d) = %q, want %q", tt.black, tt.white, got, tt.want)
		}
	}
	tr := NewTranscript()
	if tr.Result != "?" {
		t.Fatalf("new transcript result = %q", tr.Result)
	}
	tr.SetResult(10, 3)
	if tr.Result != "B+7" {
		t.Fatalf("result = %q", tr.Result)
	}
}

func TestReplay(t *testing.T) {
	moves, err := Parse("c5 c6")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b := othello.NewBoard()
	tr, next, err := Replay(b, moves)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if next != types.Black {
		t.Fatalf("next = %v, want Black", next)
	}
	entries := tr.Entries()
	if len(entries) != 2 || entries[0].Color != types.Black || entries[1].Color != types.White {
		t.Fatalf("entries = %v", entries)
	}
	if b.HistoryLen() != 2 {
		t.Fatalf("board history = %d, want 2", b.HistoryLen())
	}
	black, white := b.Scores()
	if black != 3 || white != 3 {
		t.Fatalf("scores = (%d, %d), want (3, 3)", black, white)
	}
	if tr.Entries()[1].String() != "W c6" {
		t.Fatalf("entry = %q", tr.Entries()[1].String())
	}
}

func TestReplayIllegal(t *testing.T) {
	moves, _ := Parse("c5 a1")
	b := othello.NewBoard()
	tr, _, err := Replay(b, moves)
	if err == nil {
		t.Fatal("expected error for illegal move")
	}
	if tr.Len() != 1 || b.HistoryLen() != 1 {
		t.Fatalf("replay should stop after the last legal move, got %d/%d", tr.Len(), b.HistoryLen())
	}
}
