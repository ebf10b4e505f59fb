package chess

// Move is a candidate move as supplied by a caller: two squares and an
// optional promotion piece. Empty and the zero value Off both mean none.
type Move struct {
	From      Square
	To        Square
	Promotion Piece
}

// NewMove creates a move without a promotion piece.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to, Promotion: Empty}
}

// String returns the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion.IsPromotionPiece() {
		s += string(rune(m.Promotion.Letter() + ('a' - 'A')))
	}
	return s
}

// LegalMove is a move that has passed validation. It carries everything
// needed to apply it without re-deriving intent.
type LegalMove struct {
	Move

	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	// The coloured piece being moved.
	Piece Piece

	// The coloured piece captured (Empty if no capture).
	Captured Piece

	// Where the captured piece stands. Differs from To only for en passant.
	CaptureSquare Square

	// Rook relocation for castling moves.
	RookFrom Square
	RookTo   Square
}

// IsCapture returns true if this move is a capture.
func (m LegalMove) IsCapture() bool {
	return m.Captured != Empty
}

// IsPromotion returns true if this move is a pawn promotion.
func (m LegalMove) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

// IsCastle returns true if this move is a castling move.
func (m LegalMove) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// Colour returns the colour of the side making the move.
func (m LegalMove) Colour() Colour {
	return ExtractColour(m.Piece)
}
