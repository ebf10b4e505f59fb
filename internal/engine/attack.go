package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// IsInCheck returns true if the given colour's king is attacked.
// A board without that king is never in check; use KingSquare to detect it.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, err := KingSquare(board, colour)
	if err != nil {
		return false
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite())
}

// KingSquare finds the king of the given colour.
func KingSquare(board *chess.Board, colour chess.Colour) (chess.Square, error) {
	king := chess.MakeColouredPiece(colour, chess.King)
	for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
		for rank := chess.Rank(chess.FirstRank); rank <= chess.LastRank; rank++ {
			if board.Get(col, rank) == king {
				return chess.Sq(col, rank), nil
			}
		}
	}
	return chess.NoSquare, errors.Wrapf(errors.ErrCorruptPosition, "no %s king", colour)
}

// IsSquareAttacked returns true if any piece of byColour attacks sq.
// The scan runs outward from sq, so the piece on sq itself is irrelevant.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	if !sq.Valid() {
		return false
	}

	// Pawns of byColour attack from one rank behind, relative to their direction.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	back := -chess.ColourOffset(byColour)
	if board.At(sq.Offset(-1, back)) == pawn || board.At(sq.Offset(1, back)) == pawn {
		return true
	}

	if attackedByLeaper(board, sq, knightOffsets, chess.MakeColouredPiece(byColour, chess.Knight)) {
		return true
	}
	if attackedByLeaper(board, sq, kingOffsets, chess.MakeColouredPiece(byColour, chess.King)) {
		return true
	}

	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	if attackedBySlider(board, sq, diagonalDirs, chess.MakeColouredPiece(byColour, chess.Bishop), queen) {
		return true
	}
	return attackedBySlider(board, sq, orthogonalDirs, chess.MakeColouredPiece(byColour, chess.Rook), queen)
}

// Attackers lists the squares of every byColour piece attacking sq.
func Attackers(board *chess.Board, sq chess.Square, byColour chess.Colour) []chess.Square {
	var squares []chess.Square
	for _, p := range board.Pieces() {
		if p.Colour != byColour {
			continue
		}
		if Attacks(board, p.Piece, p.Colour, p.Square, sq) {
			squares = append(squares, p.Square)
		}
	}
	return squares
}

func attackedByLeaper(board *chess.Board, sq chess.Square, offsets [][2]int, piece chess.Piece) bool {
	for _, o := range offsets {
		if board.At(sq.Offset(o[0], o[1])) == piece {
			return true
		}
	}
	return false
}

func attackedBySlider(board *chess.Board, sq chess.Square, dirs [][2]int, piece, queen chess.Piece) bool {
	for _, d := range dirs {
		for s := sq.Offset(d[0], d[1]); s.Valid(); s = s.Offset(d[0], d[1]) {
			p := board.At(s)
			if p == chess.Empty {
				continue
			}
			if p == piece || p == queen {
				return true
			}
			break // Blocked
		}
	}
	return false
}
