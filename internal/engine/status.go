package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Evaluate reports the status of the side to move. Checkmate and stalemate
// are decided by whether any legal move exists. A position that is not
// mate is a draw when neither side can mate or the seventy-five-move limit
// has been reached, even when the king is in check. The only error is a
// missing king.
func Evaluate(board *chess.Board) (chess.Status, error) {
	kingSq, err := KingSquare(board, board.ToMove)
	if err != nil {
		return chess.Ongoing, err
	}
	inCheck := IsSquareAttacked(board, kingSq, board.ToMove.Opposite())
	hasMoves := HasLegalMoves(board)

	switch {
	case inCheck && !hasMoves:
		return chess.Checkmate, nil
	case !hasMoves:
		return chess.Stalemate, nil
	case HasInsufficientMaterial(board), IsSeventyFiveMoveDraw(board):
		return chess.Draw, nil
	case inCheck:
		return chess.Check, nil
	}
	return chess.Ongoing, nil
}

// IsCheckmate returns true if the side to move is checkmated.
func IsCheckmate(board *chess.Board) bool {
	status, err := Evaluate(board)
	return err == nil && status == chess.Checkmate
}

// IsStalemate returns true if the side to move has no legal moves and is not in check.
func IsStalemate(board *chess.Board) bool {
	status, err := Evaluate(board)
	return err == nil && status == chess.Stalemate
}
