package types

import "testing"

func TestPositionString(t *testing.T) {
	tests := []struct {
		p    Position
		want string
	}{
		{Position{0, 0}, "a8"},
		{Position{7, 7}, "h1"},
		{Position{3, 3}, "d5"},
		{Position{2, 4}, "e6"},
		{Position{7, 0}, "a1"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestParsePositionRoundTrip(t *testing.T) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			p := Position{row, col}
			got, err := ParsePosition(p.String())
			if err != nil {
				t.Fatalf("ParsePosition(%q): %v", p.String(), err)
			}
			if got != p {
				t.Errorf("ParsePosition(%q) = %+v, want %+v", p.String(), got, p)
			}
		}
	}
}

func TestParsePositionInvalid(t *testing.T) {
	for _, s := range []string{"", "a", "a9", "i1", "a0", "zz", "a10"} {
		if _, err := ParsePosition(s); err == nil {
			t.Errorf("ParsePosition(%q) should fail", s)
		}
	}
	if p, err := ParsePosition(" D3 "); err != nil || p != (Position{5, 3}) {
		t.Errorf("ParsePosition(\" D3 \") = %+v, %v", p, err)
	}
}

func TestCornerWeight(t *testing.T) {
	tests := []struct {
		p    Position
		want int
	}{
		{Position{0, 0}, 2},
		{Position{0, 4}, 2},
		{Position{5, 7}, 2},
		{Position{1, 1}, 1},
		{Position{3, 4}, 1},
	}
	for _, tt := range tests {
		if got := tt.p.CornerWeight(); got != tt.want {
			t.Errorf("%+v.CornerWeight() = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestEdgeBonus(t *testing.T) {
	tests := []struct {
		p    Position
		want float64
	}{
		{Position{0, 0}, 0.8},
		{Position{7, 0}, 0.8},
		{Position{0, 7}, 0.8},
		{Position{7, 7}, 0.8},
		{Position{0, 3}, 0.4},
		{Position{4, 7}, 0.4},
		{Position{3, 3}, 0},
		{Position{1, 6}, 0},
	}
	for _, tt := range tests {
		if got := tt.p.EdgeBonus(); got != tt.want {
			t.Errorf("%+v.EdgeBonus() = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestOpponent(t *testing.T) {
	if Black.Opponent() != White || White.Opponent() != Black {
		t.Fatal("black and white should be opponents")
	}
	if Empty.Opponent() != Empty {
		t.Fatal("empty has no opponent")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Cell
		ok   bool
	}{
		{"black", Black, true},
		{"B", Black, true},
		{"white", White, true},
		{"w", White, true},
		{"red", Empty, false},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseColor(%q) = %v, %v", tt.in, got, err)
		}
	}
}
