// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece type.
type Piece int

const (
	Off   Piece = iota // Off the board
	Empty              // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Off", "Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', ' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceFromLetter converts a piece letter (either case) to a piece type.
// Returns Empty for anything else.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'P', 'p':
		return Pawn
	default:
		return Empty
	}
}

// IsPromotionPiece reports whether a pawn may promote to p.
func (p Piece) IsPromotionPiece() bool {
	switch p {
	case Queen, Rook, Bishop, Knight:
		return true
	default:
		return false
	}
}

// PromotionPieces lists the kinds a pawn may promote to, strongest first.
var PromotionPieces = [...]Piece{Queen, Rook, Bishop, Knight}

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	PieceMove MoveClass = iota
	PawnMove
	PawnDoubleStep
	PawnMoveWithPromotion
	EnPassantPawnMove
	KingsideCastle
	QueensideCastle
)

// String returns the name of a move class.
func (c MoveClass) String() string {
	switch c {
	case PieceMove:
		return "PieceMove"
	case PawnMove:
		return "PawnMove"
	case PawnDoubleStep:
		return "PawnDoubleStep"
	case PawnMoveWithPromotion:
		return "PawnMoveWithPromotion"
	case EnPassantPawnMove:
		return "EnPassantPawnMove"
	case KingsideCastle:
		return "KingsideCastle"
	case QueensideCastle:
		return "QueensideCastle"
	}
	return "Unknown"
}

// Status is the state of play for the side to move.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
	Draw
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case Draw:
		return "Draw"
	default:
		return "Ongoing"
	}
}

// IsTerminal reports whether no further moves can be played.
func (s Status) IsTerminal() bool {
	return s == Checkmate || s == Stalemate || s == Draw
}

// Rank represents a chess rank (row) - '1' to '8'.
type Rank byte

// Col represents a chess file (column) - 'a' to 'h'.
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)

// RankConvert converts a rank character to a board array index, or -1.
func RankConvert(rank Rank) int {
	if rank >= FirstRank && rank <= LastRank {
		return int(rank - RankBase)
	}
	return -1
}

// ColConvert converts a column character to a board array index, or -1.
func ColConvert(col Col) int {
	if col >= FirstCol && col <= LastCol {
		return int(col - ColBase)
	}
	return -1
}

// ToRank converts a board array index back to a rank character.
func ToRank(r int) Rank {
	return Rank(r + int(RankBase))
}

// ToCol converts a board array index back to a column character.
func ToCol(c int) Col {
	return Col(c + int(ColBase))
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank of the given colour.
func HomeRank(colour Colour) Rank {
	if colour == White {
		return FirstRank
	}
	return LastRank
}

// PawnRank returns the rank the given colour's pawns start on.
func PawnRank(colour Colour) Rank {
	if colour == White {
		return FirstRank + 1
	}
	return LastRank - 1
}

// PromotionRank returns the rank on which the given colour's pawns promote.
func PromotionRank(colour Colour) Rank {
	return HomeRank(colour.Opposite())
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// IsOccupied reports whether p is a real coloured piece rather than Empty or Off.
func IsOccupied(p Piece) bool {
	return p != Empty && p != Off
}

// HashCode is the type for position hashing.
type HashCode uint64
