package engine

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestEvaluate_Sequences(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []chess.Move
		want  chess.Status
	}{
		{
			name:  "initial position",
			fen:   InitialFEN,
			moves: nil,
			want:  chess.Ongoing,
		},
		{
			name: "scholar's mate",
			fen:  InitialFEN,
			moves: []chess.Move{
				mv("e2", "e4"), mv("e7", "e5"),
				mv("f1", "c4"), mv("b8", "c6"),
				mv("d1", "h5"), mv("g8", "f6"),
				mv("h5", "f7"),
			},
			want: chess.Checkmate,
		},
		{
			name: "fool's mate",
			fen:  InitialFEN,
			moves: []chess.Move{
				mv("f2", "f3"), mv("e7", "e5"),
				mv("g2", "g4"), mv("d8", "h4"),
			},
			want: chess.Checkmate,
		},
		{
			name:  "back-rank mate",
			fen:   "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1",
			moves: []chess.Move{mv("a1", "a8")},
			want:  chess.Checkmate,
		},
		{
			name:  "check with a block available",
			fen:   InitialFEN,
			moves: []chess.Move{mv("e2", "e4"), mv("f7", "f6"), mv("d1", "h5")},
			want:  chess.Check,
		},
		{
			name:  "stalemate",
			fen:   "7k/8/6K1/8/8/8/8/5Q2 w - - 0 1",
			moves: []chess.Move{mv("f1", "f7")},
			want:  chess.Stalemate,
		},
		{
			name:  "checkmate beats the seventy-five-move rule",
			fen:   "6k1/5ppp/8/8/8/8/8/R5K1 w - - 149 120",
			moves: []chess.Move{mv("a1", "a8")},
			want:  chess.Checkmate,
		},
		{
			name:  "capture down to bare kings",
			fen:   "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1",
			moves: []chess.Move{mv("e1", "e2")},
			want:  chess.Draw,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := play(t, mustBoard(t, tt.fen), tt.moves...)
			got, err := Evaluate(board)
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Evaluate() = %v; want %v (%s)", got, tt.want, BoardToFEN(board))
			}
			if tt.want == chess.Checkmate || tt.want == chess.Stalemate {
				if n := len(LegalMoves(board)); n != 0 {
					t.Errorf("len(LegalMoves()) = %d; want 0", n)
				}
			}
		})
	}
}

func TestEvaluate_Draws(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want chess.Status
	}{
		{"bare kings", "8/8/4k3/8/8/3K4/8/8 w - - 0 1", chess.Draw},
		{"king and knight", "8/8/4k3/8/8/3KN3/8/8 w - - 0 1", chess.Draw},
		{"same colour bishops", "5b2/8/4k3/8/8/3K4/8/2B5 w - - 0 1", chess.Draw},
		{"opposite colour bishops", "2b5/8/4k3/8/8/3K4/8/2B5 w - - 0 1", chess.Ongoing},
		{"seventy-five-move rule", "8/8/4k3/8/8/3K4/8/R7 w - - 150 100", chess.Draw},
		{"one ply short of seventy-five", "8/8/4k3/8/8/3K4/8/R7 w - - 149 100", chess.Ongoing},
		{"fifty-move rule is only a claim", "8/8/4k3/8/8/3K4/8/R7 w - - 100 100", chess.Ongoing},
		{"knight check in a dead position", "8/8/4k3/8/3N4/3K4/8/8 b - - 0 1", chess.Draw},
		{"check on the seventy-fifth move", "8/8/4k3/8/8/3K4/8/4R3 b - - 150 100", chess.Draw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(mustBoard(t, tt.fen))
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Evaluate() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_MissingKing(t *testing.T) {
	board := chess.NewBoard()
	board.Put(chess.MustSquare("e8"), chess.B(chess.King))

	_, err := Evaluate(board)
	if !stderrors.Is(err, errors.ErrCorruptPosition) {
		t.Errorf("Evaluate() error = %v; want ErrCorruptPosition", err)
	}
}

func TestIsCheckmateIsStalemate(t *testing.T) {
	mate := mustBoard(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if !IsCheckmate(mate) || IsStalemate(mate) {
		t.Errorf("fool's mate: IsCheckmate = %v, IsStalemate = %v", IsCheckmate(mate), IsStalemate(mate))
	}

	stale := mustBoard(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if IsCheckmate(stale) || !IsStalemate(stale) {
		t.Errorf("stalemate: IsCheckmate = %v, IsStalemate = %v", IsCheckmate(stale), IsStalemate(stale))
	}
}
