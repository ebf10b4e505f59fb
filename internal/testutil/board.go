package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// MustBoard parses a FEN position and calls t.Fatal if it is invalid.
func MustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error = %v", fen, err)
	}
	return board
}

// MustMove parses long algebraic text such as "e2e4" or "e7e8q" and calls
// t.Fatal if it is malformed.
func MustMove(t testing.TB, text string) chess.Move {
	t.Helper()
	if len(text) != 4 && len(text) != 5 {
		t.Fatalf("move %q: want 4 or 5 characters", text)
	}
	from, ok1 := chess.ParseSquare(text[:2])
	to, ok2 := chess.ParseSquare(text[2:4])
	if !ok1 || !ok2 {
		t.Fatalf("move %q: invalid square", text)
	}
	move := chess.NewMove(from, to)
	if len(text) == 5 {
		move.Promotion = chess.PieceFromLetter(text[4])
		if move.Promotion == chess.Empty {
			t.Fatalf("move %q: invalid promotion letter", text)
		}
	}
	return move
}

// PlayMoves applies each move in turn with engine.Play and returns the final
// position. It calls t.Fatal on the first illegal move.
func PlayMoves(t testing.TB, board *chess.Board, moves ...string) *chess.Board {
	t.Helper()
	for _, text := range moves {
		next, _, err := engine.Play(board, MustMove(t, text))
		if err != nil {
			t.Fatalf("Play(%s) on %s error = %v", text, engine.BoardToFEN(board), err)
		}
		board = next
	}
	return board
}

// QuietConfig returns the default configuration with logging switched off.
func QuietConfig() *config.Config {
	return config.NewConfigBuilder().WithVerbosity(0).Build()
}

// AssertFEN compares a board with the expected FEN and shows the difference
// field by field.
func AssertFEN(t testing.TB, got *chess.Board, want string, msgAndArgs ...interface{}) {
	t.Helper()
	AssertEqual(t, strings.Fields(engine.BoardToFEN(got)), strings.Fields(want), msgAndArgs...)
}
