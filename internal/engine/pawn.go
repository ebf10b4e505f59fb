package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// pawnReachable applies pawn movement rules: pushes onto empty squares,
// the double step from the start rank, and diagonal steps onto an enemy
// piece or the en passant target.
func pawnReachable(board *chess.Board, colour chess.Colour, from, to chess.Square) bool {
	direction := chess.ColourOffset(colour)
	colDiff := int(to.Col) - int(from.Col)
	rankDiff := int(to.Rank) - int(from.Rank)

	switch {
	case colDiff == 0 && rankDiff == direction:
		return board.IsEmpty(to)
	case colDiff == 0 && rankDiff == 2*direction:
		return from.Rank == chess.PawnRank(colour) &&
			board.IsEmpty(from.Offset(0, direction)) &&
			board.IsEmpty(to)
	case abs(colDiff) == 1 && rankDiff == direction:
		target := board.At(to)
		if chess.IsOccupied(target) {
			return chess.ExtractColour(target) != colour
		}
		ep, ok := board.EnPassantTarget()
		return ok && ep == to
	}
	return false
}

// pawnAttacks reports whether a pawn on from attacks to.
func pawnAttacks(colour chess.Colour, from, to chess.Square) bool {
	direction := chess.ColourOffset(colour)
	return int(to.Rank)-int(from.Rank) == direction && abs(int(to.Col)-int(from.Col)) == 1
}

// classifyPawnMove checks a pawn move and fills in its class and, for
// en passant, the captured pawn and its square.
func classifyPawnMove(board *chess.Board, lm *chess.LegalMove) errors.Reason {
	colour := lm.Colour()
	direction := chess.ColourOffset(colour)
	from, to := lm.From, lm.To
	colDiff := int(to.Col) - int(from.Col)
	rankDiff := int(to.Rank) - int(from.Rank)

	// A diagonal step onto an empty square can only be en passant.
	if abs(colDiff) == 1 && rankDiff == direction && board.IsEmpty(to) {
		ep, ok := board.EnPassantTarget()
		victimSq := to.Offset(0, -direction)
		victim := board.At(victimSq)
		if !ok || ep != to || victim != chess.MakeColouredPiece(colour.Opposite(), chess.Pawn) {
			return errors.EnPassantNotAvailable
		}
		lm.Class = chess.EnPassantPawnMove
		lm.Captured = victim
		lm.CaptureSquare = victimSq
		return errors.ReasonNone
	}

	if !pawnReachable(board, colour, from, to) {
		return errors.GeometryViolation
	}

	switch {
	case to.Rank == chess.PromotionRank(colour):
		lm.Class = chess.PawnMoveWithPromotion
	case abs(rankDiff) == 2:
		lm.Class = chess.PawnDoubleStep
	default:
		lm.Class = chess.PawnMove
	}
	return errors.ReasonNone
}

// checkPromotion validates the promotion piece of a move that reaches the last rank.
func checkPromotion(promotion chess.Piece) errors.Reason {
	switch {
	case promotion == chess.Empty, promotion == chess.Off:
		return errors.MissingPromotion
	case !promotion.IsPromotionPiece():
		return errors.InvalidPromotion
	}
	return errors.ReasonNone
}
