package chess

// Square identifies a board square by file and rank characters ('a'-'h', '1'-'8').
// The zero value is not on the board.
type Square struct {
	Col  Col
	Rank Rank
}

// NoSquare is the zero Square.
var NoSquare = Square{}

// Sq builds a square from its file and rank characters.
func Sq(col Col, rank Rank) Square {
	return Square{Col: col, Rank: rank}
}

// ParseSquare converts algebraic text such as "e4" into a square.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	col := s[0]
	if col >= 'A' && col <= 'H' {
		col += 'a' - 'A'
	}
	sq := Square{Col: Col(col), Rank: Rank(s[1])}
	if !sq.Valid() {
		return NoSquare, false
	}
	return sq, true
}

// MustSquare is ParseSquare for literals known to be valid. It panics otherwise.
func MustSquare(s string) Square {
	sq, ok := ParseSquare(s)
	if !ok {
		panic("chess: invalid square " + s)
	}
	return sq
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Col >= FirstCol && s.Col <= LastCol && s.Rank >= FirstRank && s.Rank <= LastRank
}

// Offset returns the square dc files and dr ranks away. The result may be off the board.
func (s Square) Offset(dc, dr int) Square {
	return Square{Col: Col(int(s.Col) + dc), Rank: Rank(int(s.Rank) + dr)}
}

// IsLight reports whether the square is a light square.
func (s Square) IsLight() bool {
	return (int(s.Col-FirstCol)+int(s.Rank-FirstRank))%2 == 1
}

// Index returns a 0-63 index with a1 = 0 and h8 = 63, or -1 when off the board.
func (s Square) Index() int {
	if !s.Valid() {
		return -1
	}
	return RankConvert(s.Rank)*BoardSize + ColConvert(s.Col)
}

// SquareFromIndex is the inverse of Index.
func SquareFromIndex(i int) Square {
	return Square{Col: ToCol(i % BoardSize), Rank: ToRank(i / BoardSize)}
}

// String returns the algebraic name of the square, or "-" when off the board.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(s.Col), byte(s.Rank)})
}
