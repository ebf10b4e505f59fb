// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidSquare indicates square text that does not name a board square.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidCommand indicates move text that could not be understood.
	ErrInvalidCommand = errors.New("invalid command")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrCorruptPosition indicates a board the engine can never produce,
	// such as one missing the king of the side to move.
	ErrCorruptPosition = errors.New("corrupt position")

	// ErrGameOver indicates an operation on a game that has finished.
	ErrGameOver = errors.New("game is over")

	// ErrGameNotFound indicates an unknown game id.
	ErrGameNotFound = errors.New("game not found")

	// ErrNothingToUndo indicates an undo request beyond the recorded history.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrDrawNotClaimable indicates a draw claim with neither the fifty-move
	// rule nor threefold repetition satisfied.
	ErrDrawNotClaimable = errors.New("draw cannot be claimed")
)

// Reason explains why a move was rejected.
type Reason int

const (
	ReasonNone Reason = iota
	NoPieceOrWrongTurn
	CaptureOwnPiece
	GeometryViolation
	CastlingRightLost
	CastlingThroughAttackedSquare
	EnPassantNotAvailable
	LeavesKingInCheck
	MissingPromotion
	InvalidPromotion
	GameOver
)

var reasonNames = map[Reason]string{
	ReasonNone:                    "none",
	NoPieceOrWrongTurn:            "no piece of the side to move on the source square",
	CaptureOwnPiece:               "destination holds a piece of the same colour",
	GeometryViolation:             "piece cannot move that way",
	CastlingRightLost:             "castling right has been lost",
	CastlingThroughAttackedSquare: "king would castle out of, through or into check",
	EnPassantNotAvailable:         "en passant capture is not available",
	LeavesKingInCheck:             "move would leave the king in check",
	MissingPromotion:              "promotion piece required",
	InvalidPromotion:              "pawn cannot promote to that piece",
	GameOver:                      "game is over",
}

// String returns a short human-readable description of the reason.
func (r Reason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

// MoveError is the rejection of a candidate move. It unwraps to ErrIllegalMove.
type MoveError struct {
	Reason Reason
	Move   chess.Move
}

// NewMoveError creates a rejection for the given move.
func NewMoveError(reason Reason, move chess.Move) *MoveError {
	return &MoveError{Reason: reason, Move: move}
}

// Error returns the move and the reason it was rejected.
func (e *MoveError) Error() string {
	return fmt.Sprintf("%s %s: %s", ErrIllegalMove, e.Move, e.Reason)
}

// Unwrap returns ErrIllegalMove so callers can test with errors.Is().
func (e *MoveError) Unwrap() error {
	return ErrIllegalMove
}

// ReasonOf extracts the rejection reason from err, or ReasonNone if err is
// not a move rejection.
func ReasonOf(err error) Reason {
	var me *MoveError
	if errors.As(err, &me) {
		return me.Reason
	}
	return ReasonNone
}

// GameError wraps errors with game context, including game id,
// ply position, and move information. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	GameID   string // Registry id of the game (if known)
	PlyNum   int    // Ply number where error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.GameID != "" {
		parts = append(parts, fmt.Sprintf("game %s", e.GameID))
	}

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
