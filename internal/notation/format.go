package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// FormatBoard renders the board as text, rank 8 at the top, with white
// pieces in upper case and empty squares as dots.
func FormatBoard(board *chess.Board) string {
	var sb strings.Builder
	for rank := chess.Rank(chess.LastRank); rank >= chess.FirstRank; rank-- {
		sb.WriteByte(byte(rank))
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			sb.WriteByte(' ')
			piece := board.Get(col, rank)
			if piece == chess.Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(engine.ColouredPieceToFENLetter(piece))
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(" ")
	for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte(col))
	}
	sb.WriteByte('\n')
	return sb.String()
}

// FormatOutcome describes the result of a move attempt in one line.
func FormatOutcome(out game.Outcome) string {
	if !out.Applied {
		return fmt.Sprintf("Illegal move: %s", out.Reason)
	}
	switch out.Status {
	case chess.Check:
		return fmt.Sprintf("%s: check", out.Move.Move)
	case chess.Checkmate:
		return fmt.Sprintf("%s: checkmate", out.Move.Move)
	case chess.Stalemate:
		return fmt.Sprintf("%s: stalemate", out.Move.Move)
	case chess.Draw:
		return fmt.Sprintf("%s: draw", out.Move.Move)
	default:
		return out.Move.Move.String()
	}
}

// FormatResult describes a finished game, e.g. "1-0 (checkmate)".
func FormatResult(result game.Result, termination game.Termination) string {
	if result == game.Undecided {
		return result.String()
	}
	return fmt.Sprintf("%s (%s)", result, termination)
}
