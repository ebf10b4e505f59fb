package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Castling files.
const (
	kingStartCol     chess.Col = 'e'
	kingsideKingCol  chess.Col = 'g'
	kingsideRookCol  chess.Col = 'h'
	kingsideRookTo   chess.Col = 'f'
	queensideKingCol chess.Col = 'c'
	queensideRookCol chess.Col = 'a'
	queensideRookTo  chess.Col = 'd'
)

// isCastlingAttempt reports whether a king move is a two-file step along
// its home rank from the e-file.
func isCastlingAttempt(colour chess.Colour, from, to chess.Square) bool {
	home := chess.HomeRank(colour)
	return from == chess.Sq(kingStartCol, home) &&
		to.Rank == home &&
		(to.Col == kingsideKingCol || to.Col == queensideKingCol)
}

// castleRookSquares returns where the castling rook starts and ends.
func castleRookSquares(colour chess.Colour, kingside bool) (chess.Square, chess.Square) {
	home := chess.HomeRank(colour)
	if kingside {
		return chess.Sq(kingsideRookCol, home), chess.Sq(kingsideRookTo, home)
	}
	return chess.Sq(queensideRookCol, home), chess.Sq(queensideRookTo, home)
}

// validateCastle checks every castling condition and fills in the rook relocation.
func validateCastle(board *chess.Board, lm *chess.LegalMove) errors.Reason {
	colour := lm.Colour()
	kingside := lm.To.Col == kingsideKingCol
	rookFrom, rookTo := castleRookSquares(colour, kingside)

	if !board.Castling.Has(colour, kingside) || board.At(rookFrom) != chess.MakeColouredPiece(colour, chess.Rook) {
		return errors.CastlingRightLost
	}

	step := sign(int(rookFrom.Col) - int(lm.From.Col))
	for sq := lm.From.Offset(step, 0); sq != rookFrom; sq = sq.Offset(step, 0) {
		if !board.IsEmpty(sq) {
			return errors.GeometryViolation
		}
	}

	// The king may not castle out of, through or into check.
	enemy := colour.Opposite()
	for sq := lm.From; ; sq = sq.Offset(step, 0) {
		if IsSquareAttacked(board, sq, enemy) {
			return errors.CastlingThroughAttackedSquare
		}
		if sq == lm.To {
			break
		}
	}

	if kingside {
		lm.Class = chess.KingsideCastle
	} else {
		lm.Class = chess.QueensideCastle
	}
	lm.RookFrom = rookFrom
	lm.RookTo = rookTo
	return errors.ReasonNone
}

// updateCastlingRights removes rights lost when a piece leaves or is captured
// on sq. Only the king's and rooks' original squares matter.
func updateCastlingRights(rights *chess.CastlingRights, sq chess.Square) {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		home := chess.HomeRank(colour)
		if sq.Rank != home {
			continue
		}
		switch sq.Col {
		case kingStartCol:
			rights.ClearColour(colour)
		case kingsideRookCol:
			rights.Clear(colour, true)
		case queensideRookCol:
			rights.Clear(colour, false)
		}
	}
}
