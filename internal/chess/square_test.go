package chess

import "testing"

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in      string
		want    Square
		wantErr bool
	}{
		{"a1", Sq(0, 0), false},
		{"h8", Sq(7, 7), false},
		{"e4", Sq(4, 3), false},
		{"i1", NoSquare, true},
		{"a9", NoSquare, true},
		{"a", NoSquare, true},
		{"e44", NoSquare, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSquare(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSquare(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %v; want %v", tt.in, got, tt.want)
			}
			if !tt.wantErr && got.String() != tt.in {
				t.Errorf("String() = %q; want %q", got.String(), tt.in)
			}
		})
	}
}

func TestSquareIndexRoundTrip(t *testing.T) {
	for i := 0; i < NumSquares; i++ {
		if got := SquareFromIndex(i).Index(); got != i {
			t.Fatalf("SquareFromIndex(%d).Index() = %d", i, got)
		}
	}
}

func TestVectorIsMultipleOf(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		dir  Vector
		want bool
	}{
		{"same direction", Vector{3, 3}, NorthEast, true},
		{"reverse direction", Vector{-2, -2}, NorthEast, true},
		{"orthogonal", Vector{0, -5}, North, true},
		{"off line", Vector{1, 2}, NorthEast, false},
		{"other diagonal", Vector{1, -1}, NorthEast, false},
		{"zero vector", Vector{}, North, false},
		{"zero direction", Vector{1, 0}, Vector{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsMultipleOf(tt.dir); got != tt.want {
				t.Errorf("%v.IsMultipleOf(%v) = %v; want %v", tt.v, tt.dir, got, tt.want)
			}
		})
	}
}

func TestVectorUnit(t *testing.T) {
	from := MustParseSquare("a1")
	to := MustParseSquare("h8")
	if got := to.Sub(from).Unit(); got != NorthEast {
		t.Errorf("Unit() = %v; want %v", got, NorthEast)
	}
	if got := from.Sub(MustParseSquare("a5")).Unit(); got != South {
		t.Errorf("Unit() = %v; want %v", got, South)
	}
}

func TestAbs(t *testing.T) {
	for _, tt := range []struct{ in, want int }{{-2, 2}, {0, 0}, {7, 7}} {
		if got := Abs(tt.in); got != tt.want {
			t.Errorf("Abs(%d) = %d; want %d", tt.in, got, tt.want)
		}
	}
	if got := Abs(int8(-8)); got != 8 {
		t.Errorf("Abs(int8(-8)) = %d; want 8", got)
	}
}

func TestSquareIsLight(t *testing.T) {
	if MustParseSquare("a1").IsLight() {
		t.Error("a1 reported light")
	}
	if !MustParseSquare("h1").IsLight() {
		t.Error("h1 reported dark")
	}
}

func TestCastlingRightsString(t *testing.T) {
	tests := []struct {
		rights CastlingRights
		want   string
	}{
		{AllCastling, "KQkq"},
		{NoCastling, "-"},
		{WhiteQueenside | BlackKingside, "Qk"},
		{AllCastling.Without(WhiteKingside | WhiteQueenside), "kq"},
	}
	for _, tt := range tests {
		if got := tt.rights.String(); got != tt.want {
			t.Errorf("CastlingRights(%04b).String() = %q; want %q", tt.rights, got, tt.want)
		}
	}
}

func TestMoveUCI(t *testing.T) {
	m := Move{From: MustParseSquare("e7"), To: MustParseSquare("e8"), Kind: PromotionMove, Promotion: Knight}
	if got := m.UCI(); got != "e7e8n" {
		t.Errorf("UCI() = %q; want e7e8n", got)
	}
	m = Move{From: MustParseSquare("e1"), To: MustParseSquare("g1"), Kind: CastleMove, Side: Kingside}
	if got := m.UCI(); got != "e1g1" {
		t.Errorf("UCI() = %q; want e1g1", got)
	}
}
