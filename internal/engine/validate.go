package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Validate decides whether move is legal for the side to move on board.
// Checks run in a fixed order and the first failure is reported as a
// *errors.MoveError. A board missing the mover's king, or a move onto the
// opposing king, yields an error wrapping errors.ErrCorruptPosition instead. The board is never modified.
func Validate(board *chess.Board, move chess.Move) (chess.LegalMove, error) {
	colour := board.ToMove
	if _, err := KingSquare(board, colour); err != nil {
		return chess.LegalMove{}, err
	}

	reject := func(reason errors.Reason) (chess.LegalMove, error) {
		return chess.LegalMove{}, errors.NewMoveError(reason, move)
	}

	moving := board.At(move.From)
	if !chess.IsOccupied(moving) || chess.ExtractColour(moving) != colour {
		return reject(errors.NoPieceOrWrongTurn)
	}
	target := board.At(move.To)
	if chess.IsOccupied(target) && chess.ExtractColour(target) == colour {
		return reject(errors.CaptureOwnPiece)
	}
	if chess.ExtractPiece(target) == chess.King {
		return chess.LegalMove{}, errors.Wrapf(errors.ErrCorruptPosition, "%s king can be captured", colour.Opposite())
	}
	if !move.To.Valid() {
		return reject(errors.GeometryViolation)
	}

	lm := chess.LegalMove{
		Move:          chess.NewMove(move.From, move.To),
		Class:         chess.PieceMove,
		Piece:         moving,
		Captured:      target,
		CaptureSquare: move.To,
	}

	reason := errors.ReasonNone
	switch piece := chess.ExtractPiece(moving); {
	case piece == chess.King && isCastlingAttempt(colour, move.From, move.To):
		reason = validateCastle(board, &lm)
	case piece == chess.Pawn:
		reason = classifyPawnMove(board, &lm)
	default:
		if !Reachable(board, piece, colour, move.From, move.To) {
			reason = errors.GeometryViolation
		}
	}
	if reason != errors.ReasonNone {
		return reject(reason)
	}

	if leavesKingInCheck(board, lm) {
		return reject(errors.LeavesKingInCheck)
	}

	if lm.IsPromotion() {
		if reason := checkPromotion(move.Promotion); reason != errors.ReasonNone {
			return reject(reason)
		}
		lm.Promotion = move.Promotion
	}
	return lm, nil
}

// IsLegal reports whether move is legal on board.
func IsLegal(board *chess.Board, move chess.Move) bool {
	_, err := Validate(board, move)
	return err == nil
}

// leavesKingInCheck plays lm on a scratch copy and tests the mover's king.
func leavesKingInCheck(board *chess.Board, lm chess.LegalMove) bool {
	colour := lm.Colour()
	next := Apply(board, lm)
	kingSq, err := KingSquare(next, colour)
	if err != nil {
		return true
	}
	return IsSquareAttacked(next, kingSq, colour.Opposite())
}
