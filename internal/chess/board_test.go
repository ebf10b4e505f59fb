package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("initial state", func(t *testing.T) {
		if b.ToMove != White {
			t.Errorf("ToMove = %v; want White", b.ToMove)
		}
		if b.MoveNumber != 1 {
			t.Errorf("MoveNumber = %d; want 1", b.MoveNumber)
		}
		if b.EnPassant {
			t.Error("EnPassant = true; want false")
		}
		if b.HalfmoveClock != 0 {
			t.Errorf("HalfmoveClock = %d; want 0", b.HalfmoveClock)
		}
		if b.Castling.Any() {
			t.Errorf("Castling = %+v; want no rights", b.Castling)
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for col := Col('a'); col <= 'h'; col++ {
			for rank := Rank('1'); rank <= '8'; rank++ {
				if got := b.Get(col, rank); got != Empty {
					t.Errorf("Get(%c, %c) = %v; want Empty", col, rank, got)
				}
			}
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	tests := []struct {
		name  string
		col   Col
		rank  Rank
		piece Piece
	}{
		// White back rank
		{"white rook a1", 'a', '1', W(Rook)},
		{"white knight b1", 'b', '1', W(Knight)},
		{"white bishop c1", 'c', '1', W(Bishop)},
		{"white queen d1", 'd', '1', W(Queen)},
		{"white king e1", 'e', '1', W(King)},
		{"white bishop f1", 'f', '1', W(Bishop)},
		{"white knight g1", 'g', '1', W(Knight)},
		{"white rook h1", 'h', '1', W(Rook)},
		// Pawns
		{"white pawn a2", 'a', '2', W(Pawn)},
		{"white pawn e2", 'e', '2', W(Pawn)},
		{"black pawn e7", 'e', '7', B(Pawn)},
		{"black pawn h7", 'h', '7', B(Pawn)},
		// Black back rank
		{"black rook a8", 'a', '8', B(Rook)},
		{"black queen d8", 'd', '8', B(Queen)},
		{"black king e8", 'e', '8', B(King)},
		{"black knight g8", 'g', '8', B(Knight)},
		// Empty squares
		{"empty e3", 'e', '3', Empty},
		{"empty d4", 'd', '4', Empty},
		{"empty c6", 'c', '6', Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Get(tt.col, tt.rank)
			if got != tt.piece {
				t.Errorf("Get(%c, %c) = %v; want %v", tt.col, tt.rank, got, tt.piece)
			}
		})
	}

	t.Run("piece count", func(t *testing.T) {
		if got := len(b.Pieces()); got != 32 {
			t.Errorf("len(Pieces()) = %d; want 32", got)
		}
		if got := b.Count(W(Pawn)); got != 8 {
			t.Errorf("Count(white pawn) = %d; want 8", got)
		}
		if got := b.Count(B(King)); got != 1 {
			t.Errorf("Count(black king) = %d; want 1", got)
		}
	})

	t.Run("castling rights", func(t *testing.T) {
		if b.Castling != AllCastlingRights {
			t.Errorf("Castling = %+v; want all rights", b.Castling)
		}
	})
}

func TestBoardGetSet(t *testing.T) {
	tests := []struct {
		name  string
		sq    string
		piece Piece
	}{
		{"white pawn on e4", "e4", W(Pawn)},
		{"black knight on f6", "f6", B(Knight)},
		{"white queen on d1", "d1", W(Queen)},
		{"black king on e8", "e8", B(King)},
		{"empty square", "a1", Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			sq := MustSquare(tt.sq)
			b.Put(sq, tt.piece)
			if got := b.At(sq); got != tt.piece {
				t.Errorf("after Put(%s, %v), At() = %v; want %v", tt.sq, tt.piece, got, tt.piece)
			}
			if got := b.Get(sq.Col, sq.Rank); got != tt.piece {
				t.Errorf("Get(%c, %c) = %v; want %v", sq.Col, sq.Rank, got, tt.piece)
			}
		})
	}

	t.Run("invalid coordinates return Off", func(t *testing.T) {
		b := NewBoard()
		if got := b.Get('i', '1'); got != Off {
			t.Errorf("Get('i', '1') = %v; want Off", got)
		}
		if got := b.Get('a', '9'); got != Off {
			t.Errorf("Get('a', '9') = %v; want Off", got)
		}
		if got := b.At(NoSquare); got != Off {
			t.Errorf("At(NoSquare) = %v; want Off", got)
		}
	})

	t.Run("Set with invalid coordinates is no-op", func(t *testing.T) {
		b := NewBoard()
		b.SetupInitialPosition()
		before := *b
		b.Set('z', '9', W(Queen))
		if *b != before {
			t.Error("board changed after Set on an invalid square")
		}
	})
}

func TestBoardCopy(t *testing.T) {
	original := NewBoard()
	original.SetupInitialPosition()
	original.ToMove = Black
	original.MoveNumber = 5
	original.EnPassant = true
	original.EPSquare = Sq('e', '3')

	copied := original.Copy()

	t.Run("copies all state", func(t *testing.T) {
		if *copied != *original {
			t.Errorf("copy differs from original")
		}
	})

	t.Run("modifications are independent", func(t *testing.T) {
		copied.Set('e', '4', W(Pawn))
		copied.ToMove = White
		copied.Castling.ClearColour(White)

		if got := original.Get('e', '4'); got != Empty {
			t.Errorf("original Get('e', '4') = %v after copy modification; want Empty", got)
		}
		if original.ToMove != Black {
			t.Errorf("original ToMove = %v after copy modification; want Black", original.ToMove)
		}
		if !original.Castling.WhiteKingside {
			t.Error("original lost castling right after copy modification")
		}
	})
}

func TestCastlingRights(t *testing.T) {
	rights := AllCastlingRights
	rights.Clear(White, true)
	if rights.Has(White, true) {
		t.Error("Has(White, kingside) = true after Clear")
	}
	if !rights.Has(White, false) || !rights.Has(Black, true) || !rights.Has(Black, false) {
		t.Errorf("Clear(White, kingside) removed other rights: %+v", rights)
	}
	rights.ClearColour(Black)
	if rights.Has(Black, true) || rights.Has(Black, false) {
		t.Errorf("ClearColour(Black) left rights: %+v", rights)
	}
	rights.Clear(White, false)
	if rights.Any() {
		t.Errorf("Any() = true; want false for %+v", rights)
	}
}

func TestSquare(t *testing.T) {
	tests := []struct {
		text  string
		valid bool
		index int
	}{
		{"a1", true, 0},
		{"h1", true, 7},
		{"e4", true, 28},
		{"h8", true, 63},
		{"E2", true, 12},
		{"i1", false, -1},
		{"a0", false, -1},
		{"a10", false, -1},
		{"", false, -1},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			sq, ok := ParseSquare(tt.text)
			if ok != tt.valid {
				t.Fatalf("ParseSquare(%q) ok = %v; want %v", tt.text, ok, tt.valid)
			}
			if !ok {
				return
			}
			if got := sq.Index(); got != tt.index {
				t.Errorf("Index() = %d; want %d", got, tt.index)
			}
			if back := SquareFromIndex(sq.Index()); back != sq {
				t.Errorf("SquareFromIndex(%d) = %v; want %v", sq.Index(), back, sq)
			}
		})
	}

	t.Run("round trip all squares", func(t *testing.T) {
		for i := 0; i < 64; i++ {
			sq := SquareFromIndex(i)
			parsed, ok := ParseSquare(sq.String())
			if !ok || parsed != sq {
				t.Errorf("ParseSquare(%q) = %v, %v; want %v", sq.String(), parsed, ok, sq)
			}
		}
	})

	t.Run("colours", func(t *testing.T) {
		if MustSquare("a1").IsLight() {
			t.Error("a1 reported light")
		}
		if !MustSquare("h1").IsLight() {
			t.Error("h1 reported dark")
		}
	})
}

func TestColouredPieces(t *testing.T) {
	for _, colour := range []Colour{White, Black} {
		for p := Pawn; p <= King; p++ {
			cp := MakeColouredPiece(colour, p)
			if ExtractColour(cp) != colour || ExtractPiece(cp) != p {
				t.Errorf("round trip of %v %v = %v %v", colour, p, ExtractColour(cp), ExtractPiece(cp))
			}
			if !IsOccupied(cp) {
				t.Errorf("IsOccupied(%v %v) = false", colour, p)
			}
		}
	}
	if IsOccupied(Empty) || IsOccupied(Off) {
		t.Error("Empty or Off reported as occupied")
	}
}

func TestMoveString(t *testing.T) {
	m := NewMove(MustSquare("e2"), MustSquare("e4"))
	if got := m.String(); got != "e2e4" {
		t.Errorf("String() = %q; want e2e4", got)
	}
	m = Move{From: MustSquare("e7"), To: MustSquare("e8"), Promotion: Queen}
	if got := m.String(); got != "e7e8q" {
		t.Errorf("String() = %q; want e7e8q", got)
	}
}
