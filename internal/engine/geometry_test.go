package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestReachable(t *testing.T) {
	const open = "4k3/8/8/8/8/8/8/4K3 w - - 0 1"
	const crowded = "4k3/8/8/2p1p3/3Q4/2P1P3/8/4K3 w - - 0 1"

	tests := []struct {
		name   string
		fen    string
		piece  chess.Piece
		colour chess.Colour
		from   string
		to     string
		want   bool
	}{
		{"rook along file", open, chess.Rook, chess.White, "d4", "d8", true},
		{"rook along rank", open, chess.Rook, chess.White, "d4", "a4", true},
		{"rook diagonal", open, chess.Rook, chess.White, "d4", "e5", false},
		{"bishop diagonal", open, chess.Bishop, chess.White, "c1", "h6", true},
		{"bishop file", open, chess.Bishop, chess.White, "c1", "c4", false},
		{"bishop not quite diagonal", open, chess.Bishop, chess.White, "c1", "e4", false},
		{"queen diagonal", open, chess.Queen, chess.White, "d4", "a7", true},
		{"queen orthogonal", open, chess.Queen, chess.White, "d4", "h4", true},
		{"queen knight jump", open, chess.Queen, chess.White, "d4", "e6", false},
		{"queen captures first blocker", crowded, chess.Queen, chess.White, "d4", "e5", true},
		{"queen stops at blocker", crowded, chess.Queen, chess.White, "d4", "f6", false},
		{"queen blocked by own piece", crowded, chess.Queen, chess.White, "d4", "b2", false},
		{"queen open file", crowded, chess.Queen, chess.White, "d4", "d7", true},
		{"knight jumps over pieces", InitialFEN, chess.Knight, chess.White, "g1", "f3", true},
		{"knight from corner", open, chess.Knight, chess.White, "a1", "b3", true},
		{"knight straight", open, chess.Knight, chess.White, "a1", "a3", false},
		{"king one step", open, chess.King, chess.White, "e1", "d2", true},
		{"king two steps", open, chess.King, chess.White, "e1", "e3", false},
		{"pawn push", InitialFEN, chess.Pawn, chess.White, "e2", "e3", true},
		{"pawn double push", InitialFEN, chess.Pawn, chess.White, "e2", "e4", true},
		{"black pawn push", InitialFEN, chess.Pawn, chess.Black, "e7", "e5", true},
		{"black pawn backwards", InitialFEN, chess.Pawn, chess.Black, "e7", "e8", false},
		{"pawn diagonal to empty", InitialFEN, chess.Pawn, chess.White, "e2", "d3", false},
		{"pawn captures", crowded, chess.Pawn, chess.White, "c3", "d4", false},
		{"same square", open, chess.Rook, chess.White, "a1", "a1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			got := Reachable(board, tt.piece, tt.colour, chess.MustSquare(tt.from), chess.MustSquare(tt.to))
			if got != tt.want {
				t.Errorf("Reachable(%v %v, %s, %s) = %v; want %v", tt.colour, tt.piece, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestReachable_PawnCapturesAndEnPassant(t *testing.T) {
	board := mustBoard(t, enPassantFEN)

	tests := []struct {
		to   string
		want bool
	}{
		{"f6", true},  // en passant target
		{"d6", false}, // empty, not the target
		{"e6", true},  // push
	}
	for _, tt := range tests {
		got := Reachable(board, chess.Pawn, chess.White, chess.MustSquare("e5"), chess.MustSquare(tt.to))
		if got != tt.want {
			t.Errorf("Reachable(pawn e5 -> %s) = %v; want %v", tt.to, got, tt.want)
		}
	}

	capture := mustBoard(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	if !Reachable(capture, chess.Pawn, chess.White, chess.MustSquare("e4"), chess.MustSquare("d5")) {
		t.Error("pawn e4 cannot capture on d5")
	}
	if Reachable(capture, chess.Pawn, chess.White, chess.MustSquare("e4"), chess.MustSquare("f5")) {
		t.Error("pawn e4 reaches empty f5")
	}
}

func TestAttacks_Pawn(t *testing.T) {
	board := mustBoard(t, InitialFEN)
	e2 := chess.MustSquare("e2")

	if !Attacks(board, chess.Pawn, chess.White, e2, chess.MustSquare("d3")) {
		t.Error("white pawn e2 does not attack empty d3")
	}
	if Attacks(board, chess.Pawn, chess.White, e2, chess.MustSquare("e3")) {
		t.Error("white pawn e2 attacks e3 straight ahead")
	}
	if !Attacks(board, chess.Pawn, chess.Black, chess.MustSquare("d7"), chess.MustSquare("c6")) {
		t.Error("black pawn d7 does not attack c6")
	}
}
