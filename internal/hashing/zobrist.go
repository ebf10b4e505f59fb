package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x5a0b7157

var (
	pieceKeys     [2][chess.NumPieceValues][chess.BoardSize * chess.BoardSize]uint64
	sideKey       uint64
	castlingKeys  [4]uint64
	enPassantKeys [chess.BoardSize]uint64
)

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for colour := range pieceKeys {
		for piece := chess.Pawn; piece <= chess.King; piece++ {
			for sq := range pieceKeys[colour][piece] {
				pieceKeys[colour][piece][sq] = r.Uint64()
			}
		}
	}
	sideKey = r.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = r.Uint64()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = r.Uint64()
	}
}

// GenerateZobristHash hashes everything that makes two positions the same
// for the repetition rules: piece placement, side to move, castling rights
// and an en passant capture that can actually be made.
func GenerateZobristHash(board *chess.Board) chess.HashCode {
	var h uint64
	for _, p := range board.Pieces() {
		h ^= pieceKeys[p.Colour][p.Piece][p.Square.Index()]
	}
	if board.ToMove == chess.Black {
		h ^= sideKey
	}
	rights := []bool{
		board.Castling.WhiteKingside,
		board.Castling.WhiteQueenside,
		board.Castling.BlackKingside,
		board.Castling.BlackQueenside,
	}
	for i, set := range rights {
		if set {
			h ^= castlingKeys[i]
		}
	}
	if ep, ok := board.EnPassantTarget(); ok && canCaptureEnPassant(board, ep) {
		h ^= enPassantKeys[chess.ColConvert(ep.Col)]
	}
	return chess.HashCode(h)
}

// canCaptureEnPassant reports whether the side to move has a legal en
// passant capture onto ep. A target nobody can use does not distinguish
// positions.
func canCaptureEnPassant(board *chess.Board, ep chess.Square) bool {
	colour := board.ToMove
	pawn := chess.MakeColouredPiece(colour, chess.Pawn)
	behind := -chess.ColourOffset(colour)
	for _, dc := range []int{-1, 1} {
		from := ep.Offset(dc, behind)
		if board.At(from) == pawn && engine.IsLegal(board, chess.NewMove(from, ep)) {
			return true
		}
	}
	return false
}

// WeakHash is a cheap material signature used to double-check Zobrist matches.
func WeakHash(board *chess.Board) chess.HashCode {
	var h chess.HashCode
	for _, p := range board.Pieces() {
		h += chess.HashCode(chess.MakeColouredPiece(p.Colour, p.Piece)) * chess.HashCode(p.Square.Index()+1)
	}
	return h
}
