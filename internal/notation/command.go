// Package notation converts between text and the engine's moves and boards.
package notation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// DrawOffer is the suffix that turns a move into a draw by agreement.
const DrawOffer = "draw?"

// CommandKind distinguishes moves from resignations.
type CommandKind int

const (
	MoveCommand CommandKind = iota
	ResignCommand
)

// Command is a parsed line of move text.
type Command struct {
	Kind      CommandKind
	Move      chess.Move
	DrawOffer bool
}

// moveTokens are the whitespace-separated fields of a move line.
type moveTokens struct {
	From      string `validate:"required,square"`
	To        string `validate:"required,square"`
	Promotion string `validate:"omitempty,oneof=Q R B N q r b n"`
	Suffix    string `validate:"omitempty,eq=draw?"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("square", func(fl validator.FieldLevel) bool {
		_, ok := chess.ParseSquare(fl.Field().String())
		return ok
	})
	return v
}

// ParseCommand parses "resign", "e2 e4", "e7 e8 Q" or any move followed by
// "draw?". The promotion letter is optional here; the engine decides whether
// the move needs one.
func ParseCommand(text string) (Command, error) {
	fields := strings.Fields(text)
	if len(fields) == 1 && strings.EqualFold(fields[0], "resign") {
		return Command{Kind: ResignCommand}, nil
	}
	if len(fields) < 2 || len(fields) > 4 {
		return Command{}, errors.Wrapf(errors.ErrInvalidCommand, "%q: want two squares", text)
	}

	tokens := moveTokens{From: fields[0], To: fields[1]}
	rest := fields[2:]
	if n := len(rest); n > 0 && rest[n-1] == DrawOffer {
		tokens.Suffix = DrawOffer
		rest = rest[:n-1]
	}
	switch len(rest) {
	case 0:
	case 1:
		tokens.Promotion = rest[0]
	default:
		return Command{}, errors.Wrapf(errors.ErrInvalidCommand, "%q: unexpected %q", text, rest[1])
	}

	if err := validate.Struct(tokens); err != nil {
		return Command{}, describe(text, err)
	}

	from, _ := chess.ParseSquare(tokens.From)
	to, _ := chess.ParseSquare(tokens.To)
	cmd := Command{
		Kind:      MoveCommand,
		Move:      chess.NewMove(from, to),
		DrawOffer: tokens.Suffix != "",
	}
	if tokens.Promotion != "" {
		cmd.Move.Promotion = chess.PieceFromLetter(tokens.Promotion[0])
	}
	return cmd, nil
}

func describe(text string, err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return errors.Wrapf(errors.ErrInvalidCommand, "%q: %v", text, err)
	}
	e := verrs[0]
	switch e.Tag() {
	case "square":
		return errors.Wrapf(errors.ErrInvalidSquare, "%q: %s square %q", text, strings.ToLower(e.Field()), e.Value())
	case "oneof":
		return errors.Wrapf(errors.ErrInvalidCommand, "%q: promotion must be one of Q, R, B, N", text)
	default:
		return errors.Wrapf(errors.ErrInvalidCommand, "%q: %s failed %s", text, e.Field(), e.Tag())
	}
}

// FormatMove writes a move as two squares and an optional promotion letter,
// the same shape ParseCommand accepts.
func FormatMove(m chess.Move) string {
	s := fmt.Sprintf("%s %s", m.From, m.To)
	if m.Promotion.IsPromotionPiece() {
		s += " " + string(m.Promotion.Letter())
	}
	return s
}
