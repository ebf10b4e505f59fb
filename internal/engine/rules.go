// Package engine implements the rules of chess: move geometry, attack
// detection, move validation, move application and game status.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Halfmove clock limits.
const (
	// FiftyMoveLimit is the clock value at which a draw may be claimed.
	FiftyMoveLimit = 100

	// SeventyFiveMoveLimit is the clock value at which the game is drawn.
	SeventyFiveMoveLimit = 150
)

// IsSeventyFiveMoveDraw returns true once 75 moves by each side have been
// made without a pawn move or capture.
func IsSeventyFiveMoveDraw(board *chess.Board) bool {
	return board.HalfmoveClock >= SeventyFiveMoveLimit
}

// CanClaimFiftyMoveDraw returns true once 50 moves by each side have been
// made without a pawn move or capture.
func CanClaimFiftyMoveDraw(board *chess.Board) bool {
	return board.HalfmoveClock >= FiftyMoveLimit
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Piece
	var whiteBishopOnLight, blackBishopOnLight bool

	for _, p := range board.Pieces() {
		switch p.Piece {
		case chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		}

		if p.Colour == chess.White {
			whitePieces = append(whitePieces, p.Piece)
			if p.Piece == chess.Bishop {
				whiteBishopOnLight = p.Square.IsLight()
			}
		} else {
			blackPieces = append(blackPieces, p.Piece)
			if p.Piece == chess.Bishop {
				blackBishopOnLight = p.Square.IsLight()
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return isMinorPiece(blackPieces[0])
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return isMinorPiece(whitePieces[0])
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

func isMinorPiece(p chess.Piece) bool {
	return p == chess.Bishop || p == chess.Knight
}
