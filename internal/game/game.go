// Package game tracks one game of chess from the initial position to its
// result: accepted moves, undo history, repetitions and draws.
//
// A Game is not safe for concurrent use; registry.Registry serializes access
// when games are shared.
package game

import (
	"log"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// FivefoldLimit is the number of occurrences that draws a game automatically.
const FivefoldLimit = 5

// ThreefoldLimit is the number of occurrences that lets a player claim a draw.
const ThreefoldLimit = 3

// Outcome reports what happened to a proposed move. When Applied is false the
// game is unchanged and Reason says why the move was refused.
type Outcome struct {
	Applied bool
	Board   chess.Board
	Status  chess.Status
	Reason  errors.Reason
	Move    chess.LegalMove
}

// Ply is one accepted move together with the position it was played from.
type Ply struct {
	Move   chess.LegalMove
	Before chess.Board
}

// Game is a single game in progress or finished.
type Game struct {
	cfg    *config.Config
	logger *log.Logger

	startFEN    string
	board       *chess.Board
	history     []Ply
	repetitions *hashing.RepetitionTable

	status      chess.Status
	result      Result
	termination Termination
}

// New creates a game at the configured start position. A nil cfg uses the
// defaults.
func New(cfg *config.Config) (*Game, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	fen := cfg.Game.StartFEN
	if fen == "" {
		fen = engine.InitialFEN
	}
	return NewFromFEN(cfg, fen)
}

// NewFromFEN creates a game starting from the given position.
func NewFromFEN(cfg *config.Config, fen string) (*Game, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	g := &Game{
		cfg:         cfg,
		logger:      cfg.Logger("game: "),
		startFEN:    fen,
		repetitions: hashing.NewRepetitionTable(),
	}
	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Start discards the game and returns to the start position.
func (g *Game) Start() error {
	return g.reset()
}

func (g *Game) reset() error {
	board, err := engine.NewBoardFromFEN(g.startFEN)
	if err != nil {
		return err
	}
	status, err := engine.Evaluate(board)
	if err != nil {
		return err
	}
	g.board = board
	g.history = nil
	g.repetitions.Reset()
	g.repetitions.Record(board)
	g.result = Undecided
	g.termination = NotTerminated
	g.settle(status, 1)
	if g.cfg.Verbose(1) {
		g.logger.Printf("new game from %s", g.startFEN)
	}
	return nil
}

// Play validates the move for the side to move and applies it when legal.
// Illegal moves and moves after the game has ended are reported through the
// Outcome; the error is only set for a corrupt position.
func (g *Game) Play(from, to chess.Square, promotion chess.Piece) (Outcome, error) {
	move := chess.Move{From: from, To: to, Promotion: promotion}
	if g.result != Undecided {
		g.logRejection(move, errors.GameOver)
		return g.rejected(errors.GameOver), nil
	}

	next, lm, err := engine.Play(g.board, move)
	if err != nil {
		if reason := errors.ReasonOf(err); reason != errors.ReasonNone {
			g.logRejection(move, reason)
			return g.rejected(reason), nil
		}
		return Outcome{}, &errors.GameError{Err: err, PlyNum: len(g.history) + 1, MoveText: move.String()}
	}
	status, err := engine.Evaluate(next)
	if err != nil {
		return Outcome{}, &errors.GameError{Err: err, PlyNum: len(g.history) + 1, MoveText: move.String()}
	}

	g.pushHistory(Ply{Move: lm, Before: *g.board})
	g.board = next
	occurrences := g.repetitions.Record(next)
	g.settle(status, occurrences)

	if g.cfg.Verbose(2) {
		g.logger.Printf("ply %d: %s %s (%s)", len(g.history), lm.Colour(), lm.Move, g.status)
	}
	g.logEnd()

	return Outcome{
		Applied: true,
		Board:   *g.board,
		Status:  g.status,
		Move:    lm,
	}, nil
}

// settle records the status of the current position and ends the game when
// it is decided.
func (g *Game) settle(status chess.Status, occurrences int) {
	if status == chess.Draw && !g.cfg.Game.AutomaticDraws {
		status = chess.Ongoing
		if engine.IsInCheck(g.board, g.board.ToMove) {
			status = chess.Check
		}
	}
	if g.cfg.Game.AutomaticDraws && occurrences >= FivefoldLimit && !status.IsTerminal() {
		status = chess.Draw
		g.finish(Drawn, FivefoldRepetition)
	}
	g.status = status

	switch status {
	case chess.Checkmate:
		winner := WhiteWins
		if g.board.ToMove == chess.White {
			winner = BlackWins
		}
		g.finish(winner, Checkmate)
	case chess.Stalemate:
		g.finish(Drawn, Stalemate)
	case chess.Draw:
		if g.termination != NotTerminated {
			return
		}
		if engine.HasInsufficientMaterial(g.board) {
			g.finish(Drawn, InsufficientMaterial)
		} else {
			g.finish(Drawn, SeventyFiveMoveRule)
		}
	}
}

func (g *Game) finish(result Result, termination Termination) {
	g.result = result
	g.termination = termination
}

func (g *Game) rejected(reason errors.Reason) Outcome {
	return Outcome{Board: *g.board, Status: g.status, Reason: reason}
}

func (g *Game) logRejection(move chess.Move, reason errors.Reason) {
	if g.cfg.Verbose(2) {
		g.logger.Printf("rejected %s: %s", move, reason)
	}
}

func (g *Game) logEnd() {
	if g.result != Undecided && g.cfg.Verbose(1) {
		g.logger.Printf("game over: %s by %s after %d plies", g.result, g.termination, len(g.history))
	}
}

// Board returns a copy of the current position.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// Pieces lists the pieces on the board.
func (g *Game) Pieces() []chess.PlacedPiece {
	return g.board.Pieces()
}

// LegalMoves lists the moves available to the side to move. A finished game
// has none.
func (g *Game) LegalMoves() []chess.LegalMove {
	if g.result != Undecided {
		return nil
	}
	return engine.LegalMoves(g.board)
}

// Status returns the status of the current position.
func (g *Game) Status() chess.Status {
	return g.status
}

// Result returns the score, Undecided while the game is in progress.
func (g *Game) Result() Result {
	return g.result
}

// Termination returns how the game ended.
func (g *Game) Termination() Termination {
	return g.termination
}

// IsOver reports whether the game has a result.
func (g *Game) IsOver() bool {
	return g.result != Undecided
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.board.ToMove
}

// FEN returns the current position in Forsyth-Edwards Notation.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board)
}

// Repetitions returns how often the current position has occurred.
func (g *Game) Repetitions() int {
	return g.repetitions.Count(g.board)
}
