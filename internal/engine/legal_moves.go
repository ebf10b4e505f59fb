package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns every legal move for the side to move, ordered by
// source square then destination square (a1 first), with promotions
// listed queen, rook, bishop, knight.
func LegalMoves(board *chess.Board) []chess.LegalMove {
	var moves []chess.LegalMove
	forEachCandidate(board, func(move chess.Move) bool {
		if lm, err := Validate(board, move); err == nil {
			moves = append(moves, lm)
		}
		return true
	})
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board) bool {
	found := false
	forEachCandidate(board, func(move chess.Move) bool {
		if IsLegal(board, move) {
			found = true
			return false
		}
		return true
	})
	return found
}

// LegalMovesFrom returns the legal moves of the piece on from.
func LegalMovesFrom(board *chess.Board, from chess.Square) []chess.LegalMove {
	var moves []chess.LegalMove
	for _, lm := range LegalMoves(board) {
		if lm.From == from {
			moves = append(moves, lm)
		}
	}
	return moves
}

// forEachCandidate calls fn with every (own piece, destination, promotion)
// combination until fn returns false.
func forEachCandidate(board *chess.Board, fn func(chess.Move) bool) {
	colour := board.ToMove
	for i := 0; i < chess.BoardSize*chess.BoardSize; i++ {
		from := chess.SquareFromIndex(i)
		piece := board.At(from)
		if !chess.IsOccupied(piece) || chess.ExtractColour(piece) != colour {
			continue
		}
		promotes := chess.ExtractPiece(piece) == chess.Pawn
		for j := 0; j < chess.BoardSize*chess.BoardSize; j++ {
			to := chess.SquareFromIndex(j)
			if promotes && to.Rank == chess.PromotionRank(colour) {
				for _, p := range chess.PromotionPieces {
					if !fn(chess.Move{From: from, To: to, Promotion: p}) {
						return
					}
				}
				continue
			}
			if !fn(chess.NewMove(from, to)) {
				return
			}
		}
	}
}
