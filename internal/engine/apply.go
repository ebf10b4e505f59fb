package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Apply plays a validated move and returns the resulting position.
// The input board is left untouched.
func Apply(board *chess.Board, lm chess.LegalMove) *chess.Board {
	next := board.Copy()
	colour := chess.ExtractColour(lm.Piece)

	switch lm.Class {
	case chess.KingsideCastle, chess.QueensideCastle:
		applyCastle(next, lm)
	case chess.PawnMove, chess.PawnDoubleStep, chess.PawnMoveWithPromotion, chess.EnPassantPawnMove:
		applyPawnMove(next, lm)
	default:
		applyPieceMove(next, lm)
	}

	updateCastlingRights(&next.Castling, lm.From)
	if lm.IsCapture() {
		updateCastlingRights(&next.Castling, lm.CaptureSquare)
	}

	next.EnPassant = false
	next.EPSquare = chess.NoSquare
	if lm.Class == chess.PawnDoubleStep {
		next.EnPassant = true
		next.EPSquare = lm.From.Offset(0, chess.ColourOffset(colour))
	}

	if lm.IsCapture() || chess.ExtractPiece(lm.Piece) == chess.Pawn {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}
	if colour == chess.Black {
		next.MoveNumber++
	}
	next.ToMove = colour.Opposite()
	return next
}

// applyCastle moves the king two files and the rook to the square it crossed.
func applyCastle(board *chess.Board, lm chess.LegalMove) {
	rook := board.At(lm.RookFrom)
	board.Put(lm.From, chess.Empty)
	board.Put(lm.RookFrom, chess.Empty)
	board.Put(lm.To, lm.Piece)
	board.Put(lm.RookTo, rook)
}

// applyPawnMove handles the en passant victim and promotion.
func applyPawnMove(board *chess.Board, lm chess.LegalMove) {
	if lm.Class == chess.EnPassantPawnMove {
		board.Put(lm.CaptureSquare, chess.Empty)
	}

	board.Put(lm.From, chess.Empty)
	if lm.Class == chess.PawnMoveWithPromotion {
		promoted := lm.Promotion
		if !promoted.IsPromotionPiece() {
			promoted = chess.Queen // Default to queen
		}
		board.Put(lm.To, chess.MakeColouredPiece(lm.Colour(), promoted))
		return
	}
	board.Put(lm.To, lm.Piece)
}

// applyPieceMove moves a knight, bishop, rook, queen or king.
func applyPieceMove(board *chess.Board, lm chess.LegalMove) {
	board.Put(lm.From, chess.Empty)
	board.Put(lm.To, lm.Piece)
}

// Play validates and applies move in one step.
func Play(board *chess.Board, move chess.Move) (*chess.Board, chess.LegalMove, error) {
	lm, err := Validate(board, move)
	if err != nil {
		return nil, chess.LegalMove{}, err
	}
	return Apply(board, lm), lm, nil
}
