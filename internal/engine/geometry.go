package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Direction and offset tables, as (file, rank) deltas.
var (
	orthogonalDirs = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirs   = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	allDirs        = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightOffsets  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets    = allDirs
)

// movement describes how a non-pawn piece moves: along rays or by fixed leaps.
type movement struct {
	dirs   [][2]int
	slides bool
}

// movements is indexed by piece type. Pawns are handled separately.
var movements = [chess.NumPieceValues]movement{
	chess.Knight: {dirs: knightOffsets},
	chess.Bishop: {dirs: diagonalDirs, slides: true},
	chess.Rook:   {dirs: orthogonalDirs, slides: true},
	chess.Queen:  {dirs: allDirs, slides: true},
	chess.King:   {dirs: kingOffsets},
}

// Reachable reports whether a piece of the given type and colour standing on
// from could move to to, taking blocking and pawn occupancy rules into
// account but not checks, castling or whose turn it is.
func Reachable(board *chess.Board, piece chess.Piece, colour chess.Colour, from, to chess.Square) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}
	if piece == chess.Pawn {
		return pawnReachable(board, colour, from, to)
	}
	return pieceReaches(board, piece, from, to)
}

// Attacks reports whether a piece on from attacks to. It differs from
// Reachable only for pawns, which attack both forward diagonals whatever
// stands there and never attack straight ahead.
func Attacks(board *chess.Board, piece chess.Piece, colour chess.Colour, from, to chess.Square) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}
	if piece == chess.Pawn {
		return pawnAttacks(colour, from, to)
	}
	return pieceReaches(board, piece, from, to)
}

// pieceReaches handles knights, bishops, rooks, queens and kings.
func pieceReaches(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	if piece <= chess.Pawn || piece >= chess.NumPieceValues {
		return false
	}
	m := movements[piece]
	if !m.slides {
		for _, d := range m.dirs {
			if from.Offset(d[0], d[1]) == to {
				return true
			}
		}
		return false
	}

	colDiff := int(to.Col) - int(from.Col)
	rankDiff := int(to.Rank) - int(from.Rank)
	dir := [2]int{sign(colDiff), sign(rankDiff)}
	if colDiff != 0 && rankDiff != 0 && abs(colDiff) != abs(rankDiff) {
		return false
	}
	if !hasDir(m.dirs, dir) {
		return false
	}
	return isPathClear(board, from, to, dir)
}

// hasDir reports whether dir is one of dirs.
func hasDir(dirs [][2]int, dir [2]int) bool {
	for _, d := range dirs {
		if d == dir {
			return true
		}
	}
	return false
}

// isPathClear checks that every square strictly between from and to,
// stepping by dir, is empty.
func isPathClear(board *chess.Board, from, to chess.Square, dir [2]int) bool {
	sq := from.Offset(dir[0], dir[1])
	for sq != to {
		if !sq.Valid() {
			return false
		}
		if board.At(sq) != chess.Empty {
			return false
		}
		sq = sq.Offset(dir[0], dir[1])
	}
	return true
}
