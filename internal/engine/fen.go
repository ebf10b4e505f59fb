package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ColouredPieceToFENLetter returns the FEN letter for a coloured piece:
// upper case for White, lower case for Black.
func ColouredPieceToFENLetter(colouredPiece chess.Piece) byte {
	letter := chess.ExtractPiece(colouredPiece).Letter()
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN creates a board from a FEN string. The piece placement
// field is required; missing trailing fields take their initial values.
// Positions without exactly one king per side, or where the side that just
// moved is still in check, are rejected.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 || len(parts) > 6 {
		return nil, fmt.Errorf("expected 1 to 6 fields, got %d: %w", len(parts), errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts); err != nil {
		return nil, err
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := board.Count(chess.MakeColouredPiece(colour, chess.King)); n != 1 {
			return nil, fmt.Errorf("%d %s kings: %w", n, colour, errors.ErrInvalidFEN)
		}
	}
	if IsInCheck(board, board.ToMove.Opposite()) {
		return nil, fmt.Errorf("%s is in check but not to move: %w", board.ToMove.Opposite(), errors.ErrInvalidFEN)
	}
	return board, nil
}

// MustBoardFromFEN is NewBoardFromFEN for positions known to be valid.
// It panics otherwise.
func MustBoardFromFEN(fen string) *chess.Board {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return board
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for i, text := range ranks {
		rank := chess.Rank(chess.LastRank - i)
		col := chess.Col(chess.FirstCol)
		prevDigit := false
		for _, c := range text {
			switch {
			case c >= '1' && c <= '8':
				if prevDigit {
					return fmt.Errorf("rank %c has consecutive digits: %w", rank, errors.ErrInvalidFEN)
				}
				col += chess.Col(c - '0')
				if col > chess.LastCol+1 {
					return fmt.Errorf("rank %c overflows: %w", rank, errors.ErrInvalidFEN)
				}
				prevDigit = true
			default:
				piece := chess.PieceFromLetter(byte(c))
				if piece == chess.Empty {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if col > chess.LastCol {
					return fmt.Errorf("rank %c overflows: %w", rank, errors.ErrInvalidFEN)
				}
				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Set(col, rank, chess.MakeColouredPiece(colour, piece))
				col++
				prevDigit = false
			}
		}
		if col != chess.LastCol+1 {
			return fmt.Errorf("rank %c has %d files: %w", rank, int(col-chess.FirstCol), errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
// A right whose king or rook is not on its original square is dropped.
func parseCastlingRights(board *chess.Board, parts []string) error {
	board.Castling = chess.CastlingRights{}
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			board.Castling.WhiteKingside = true
		case 'Q':
			board.Castling.WhiteQueenside = true
		case 'k':
			board.Castling.BlackKingside = true
		case 'q':
			board.Castling.BlackQueenside = true
		default:
			return fmt.Errorf("invalid castling availability: %s: %w", parts[2], errors.ErrInvalidFEN)
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		home := chess.HomeRank(colour)
		if board.Get(kingStartCol, home) != chess.MakeColouredPiece(colour, chess.King) {
			board.Castling.ClearColour(colour)
			continue
		}
		rook := chess.MakeColouredPiece(colour, chess.Rook)
		if board.Get(kingsideRookCol, home) != rook {
			board.Castling.Clear(colour, true)
		}
		if board.Get(queensideRookCol, home) != rook {
			board.Castling.Clear(colour, false)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, parts []string) error {
	board.EnPassant = false
	board.EPSquare = chess.NoSquare
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(parts[3])
	if !ok {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	// The target lies just in front of the start rank of the side that moved last.
	mover := board.ToMove.Opposite()
	if sq.Rank != chess.Sq(sq.Col, chess.PawnRank(mover)).Offset(0, chess.ColourOffset(mover)).Rank {
		return fmt.Errorf("en passant square %s on wrong rank: %w", sq, errors.ErrInvalidFEN)
	}
	board.EnPassant = true
	board.EPSquare = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.ParseUint(parts[4], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
		board.HalfmoveClock = uint(n)
	}
	if len(parts) >= 6 {
		n, err := strconv.ParseUint(parts[5], 10, 32)
		if err != nil || n == 0 {
			return fmt.Errorf("invalid move number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
		board.MoveNumber = uint(n)
	}
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.Rank(chess.LastRank); rank >= chess.FirstRank; rank-- {
		emptyCount := 0
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToFENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > chess.FirstRank {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	if !board.Castling.Any() {
		sb.WriteByte('-')
		return
	}
	if board.Castling.WhiteKingside {
		sb.WriteByte('K')
	}
	if board.Castling.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if board.Castling.BlackKingside {
		sb.WriteByte('k')
	}
	if board.Castling.BlackQueenside {
		sb.WriteByte('q')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if ep, ok := board.EnPassantTarget(); ok {
		sb.WriteString(ep.String())
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}
