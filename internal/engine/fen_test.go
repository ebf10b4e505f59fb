package engine

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		wantErr bool
		checkFn func(*chess.Board) bool
	}{
		{
			name:    "initial position",
			fen:     InitialFEN,
			wantErr: false,
			checkFn: func(b *chess.Board) bool {
				return b.Get('e', '1') == chess.W(chess.King) &&
					b.Get('e', '8') == chess.B(chess.King) &&
					b.Get('e', '2') == chess.W(chess.Pawn) &&
					b.Get('e', '7') == chess.B(chess.Pawn) &&
					b.ToMove == chess.White &&
					b.Castling == chess.AllCastlingRights
			},
		},
		{
			name:    "after 1.e4",
			fen:     "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			wantErr: false,
			checkFn: func(b *chess.Board) bool {
				return b.Get('e', '4') == chess.W(chess.Pawn) &&
					b.Get('e', '2') == chess.Empty &&
					b.ToMove == chess.Black &&
					b.EnPassant &&
					b.EPSquare == chess.Sq('e', '3')
			},
		},
		{
			name:    "sicilian defense",
			fen:     "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
			wantErr: false,
			checkFn: func(b *chess.Board) bool {
				return b.Get('c', '5') == chess.B(chess.Pawn) &&
					b.Get('e', '4') == chess.W(chess.Pawn) &&
					b.ToMove == chess.White &&
					b.MoveNumber == 2
			},
		},
		{
			name:    "no castling rights",
			fen:     "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			wantErr: false,
			checkFn: func(b *chess.Board) bool {
				return !b.Castling.Any()
			},
		},
		{
			name:    "castling right without rook is dropped",
			fen:     "r3k3/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			wantErr: false,
			checkFn: func(b *chess.Board) bool {
				return b.Castling == chess.CastlingRights{WhiteKingside: true, WhiteQueenside: true, BlackQueenside: true}
			},
		},
		{
			name:    "placement only",
			fen:     "4k3/8/8/8/8/8/8/4K3",
			wantErr: false,
			checkFn: func(b *chess.Board) bool {
				return b.ToMove == chess.White && b.MoveNumber == 1 && b.HalfmoveClock == 0
			},
		},
		{
			name:    "clocks",
			fen:     "4k3/8/8/8/8/8/8/4K3 b - - 37 52",
			wantErr: false,
			checkFn: func(b *chess.Board) bool {
				return b.HalfmoveClock == 37 && b.MoveNumber == 52
			},
		},
		{name: "empty string", fen: "", wantErr: true},
		{name: "seven ranks", fen: "4k3/8/8/8/8/8/4K3 w - - 0 1", wantErr: true},
		{name: "short rank", fen: "4k3/7/8/8/8/8/8/4K3 w - - 0 1", wantErr: true},
		{name: "long rank", fen: "4k3/9/8/8/8/8/8/4K3 w - - 0 1", wantErr: true},
		{name: "bad piece letter", fen: "4k3/8/8/8/8/8/8/4X3 w - - 0 1", wantErr: true},
		{name: "bad side to move", fen: "4k3/8/8/8/8/8/8/4K3 x - - 0 1", wantErr: true},
		{name: "bad castling letter", fen: "4k3/8/8/8/8/8/8/4K3 w Z - 0 1", wantErr: true},
		{name: "bad en passant square", fen: "4k3/8/8/8/8/8/8/4K3 w - z9 0 1", wantErr: true},
		{name: "en passant on wrong rank", fen: "4k3/8/8/8/8/8/8/4K3 w - e3 0 1", wantErr: true},
		{name: "negative clock", fen: "4k3/8/8/8/8/8/8/4K3 w - - -1 1", wantErr: true},
		{name: "zero move number", fen: "4k3/8/8/8/8/8/8/4K3 w - - 0 0", wantErr: true},
		{name: "missing king", fen: "8/8/8/8/8/8/8/4K3 w - - 0 1", wantErr: true},
		{name: "two kings", fen: "4k3/8/8/8/8/8/8/3KK3 w - - 0 1", wantErr: true},
		{name: "too many fields", fen: InitialFEN + " extra", wantErr: true},
		{name: "rank wraps around", fen: "4k3/" + strings.Repeat("8", 33) + "/8/8/8/8/8/4K3 w - - 0 1", wantErr: true},
		{name: "consecutive digits", fen: "4k3/44/8/8/8/8/8/4K3 w - - 0 1", wantErr: true},
		{name: "black in check with white to move", fen: "4k3/8/8/8/8/8/8/4R1K1 w - - 0 1", wantErr: true},
		{name: "white in check with black to move", fen: "4k3/8/8/8/8/8/8/r5K1 b - - 0 1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewBoardFromFEN() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !stderrors.Is(err, errors.ErrInvalidFEN) {
					t.Errorf("error %v does not wrap ErrInvalidFEN", err)
				}
				return
			}
			if tt.checkFn != nil && !tt.checkFn(board) {
				t.Errorf("NewBoardFromFEN() board check failed for %s", BoardToFEN(board))
			}
		})
	}
}

func TestBoardToFEN(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"4k3/8/8/8/8/8/8/4K3 b - - 99 120",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			board := mustBoard(t, fen)
			if got := BoardToFEN(board); got != fen {
				t.Errorf("BoardToFEN() = %q; want %q", got, fen)
			}
		})
	}
}

func TestNewInitialBoard(t *testing.T) {
	board := NewInitialBoard()
	if got := BoardToFEN(board); got != InitialFEN {
		t.Errorf("BoardToFEN(NewInitialBoard()) = %q; want %q", got, InitialFEN)
	}
	if *board != *mustBoard(t, InitialFEN) {
		t.Error("NewInitialBoard differs from the parsed initial FEN")
	}
}

func TestColouredPieceToFENLetter(t *testing.T) {
	tests := []struct {
		piece chess.Piece
		want  byte
	}{
		{chess.W(chess.King), 'K'},
		{chess.B(chess.Queen), 'q'},
		{chess.W(chess.Knight), 'N'},
		{chess.B(chess.Pawn), 'p'},
	}
	for _, tt := range tests {
		if got := ColouredPieceToFENLetter(tt.piece); got != tt.want {
			t.Errorf("ColouredPieceToFENLetter(%v) = %c; want %c", tt.piece, got, tt.want)
		}
	}
}

func TestMustBoardFromFEN_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustBoardFromFEN did not panic on an invalid FEN")
		}
	}()
	MustBoardFromFEN("not a fen")
}
