package chess

// CastlingRights records which castling options are still available.
// Rights are only ever cleared once a game is under way.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights is the set of rights at the start of a game.
var AllCastlingRights = CastlingRights{true, true, true, true}

// Has reports whether the given colour may still castle on the given side.
func (c CastlingRights) Has(colour Colour, kingside bool) bool {
	switch {
	case colour == White && kingside:
		return c.WhiteKingside
	case colour == White:
		return c.WhiteQueenside
	case kingside:
		return c.BlackKingside
	default:
		return c.BlackQueenside
	}
}

// Clear removes one castling right.
func (c *CastlingRights) Clear(colour Colour, kingside bool) {
	switch {
	case colour == White && kingside:
		c.WhiteKingside = false
	case colour == White:
		c.WhiteQueenside = false
	case kingside:
		c.BlackKingside = false
	default:
		c.BlackQueenside = false
	}
}

// ClearColour removes both castling rights of a colour.
func (c *CastlingRights) ClearColour(colour Colour) {
	c.Clear(colour, true)
	c.Clear(colour, false)
}

// Any reports whether any castling right remains.
func (c CastlingRights) Any() bool {
	return c.WhiteKingside || c.WhiteQueenside || c.BlackKingside || c.BlackQueenside
}

// Board represents a chess board with all state needed for the game.
// Board is a value type: copying it copies the whole position, and two
// boards compare equal with == exactly when the positions are identical.
type Board struct {
	// The board squares, indexed [col][rank] with a1 at [0][0].
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// The current move number.
	MoveNumber uint

	// Remaining castling rights.
	Castling CastlingRights

	// Is EnPassant capture possible? If so then EPSquare is the square
	// the capturing pawn moves to.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
	b.clear()
	return b
}

func (b *Board) clear() {
	for col := 0; col < BoardSize; col++ {
		for rank := 0; rank < BoardSize; rank++ {
			b.Squares[col][rank] = Empty
		}
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.clear()

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[col][0] = W(backRank[col])
		b.Squares[col][1] = W(Pawn)
		b.Squares[col][6] = B(Pawn)
		b.Squares[col][7] = B(backRank[col])
	}

	b.Castling = AllCastlingRights
	b.ToMove = White
	b.MoveNumber = 1
	b.EnPassant = false
	b.EPSquare = NoSquare
	b.HalfmoveClock = 0
}

// Get returns the piece at the given coordinates (using char coords 'a'-'h', '1'-'8').
func (b *Board) Get(col Col, rank Rank) Piece {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c < 0 || r < 0 {
		return Off
	}
	return b.Squares[c][r]
}

// Set places a piece at the given coordinates.
func (b *Board) Set(col Col, rank Rank, piece Piece) {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c >= 0 && r >= 0 {
		b.Squares[c][r] = piece
	}
}

// At returns the piece on a square, Off when the square is not on the board.
func (b *Board) At(sq Square) Piece {
	return b.Get(sq.Col, sq.Rank)
}

// Put places a piece on a square.
func (b *Board) Put(sq Square, piece Piece) {
	b.Set(sq.Col, sq.Rank, piece)
}

// IsEmpty reports whether sq is on the board and unoccupied.
func (b *Board) IsEmpty(sq Square) bool {
	return b.At(sq) == Empty
}

// EnPassantTarget returns the en passant target square, if any.
func (b *Board) EnPassantTarget() (Square, bool) {
	if !b.EnPassant {
		return NoSquare, false
	}
	return b.EPSquare, true
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// PlacedPiece is a coloured piece together with the square it stands on.
type PlacedPiece struct {
	Square Square
	Colour Colour
	Piece  Piece
}

// Pieces lists every piece on the board, rank 8 to rank 1, file a to file h.
func (b *Board) Pieces() []PlacedPiece {
	var pieces []PlacedPiece
	for rank := Rank(LastRank); rank >= FirstRank; rank-- {
		for col := Col(FirstCol); col <= LastCol; col++ {
			p := b.Get(col, rank)
			if !IsOccupied(p) {
				continue
			}
			pieces = append(pieces, PlacedPiece{
				Square: Sq(col, rank),
				Colour: ExtractColour(p),
				Piece:  ExtractPiece(p),
			})
		}
	}
	return pieces
}

// Count returns how many of the given coloured piece are on the board.
func (b *Board) Count(colouredPiece Piece) int {
	n := 0
	for col := 0; col < BoardSize; col++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b.Squares[col][rank] == colouredPiece {
				n++
			}
		}
	}
	return n
}
