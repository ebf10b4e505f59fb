package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/perft"
)

const helpText = `Moves:
  e2 e4          move a piece
  e7 e8 Q        promote (Q, R, B or N)
  e2 e4 draw?    move and agree a draw
  resign         resign for the side to move
Commands:
  board          show the board
  new            start again from the start position
  fen [FEN]      show the position, or start a new game from FEN
  moves          list legal moves
  undo [N]       take back N plies (default 1)
  claim          claim a draw by threefold repetition or the fifty-move rule
  perft N        count leaf nodes N plies deep, per root move
  help           show this help
  quit           leave
`

// Session is one interactive game at the terminal.
type Session struct {
	cfg  *config.Config
	game *game.Game
	out  io.Writer
}

// NewSession creates a session with a fresh game.
func NewSession(cfg *config.Config, out io.Writer) (*Session, error) {
	g, err := game.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Session{cfg: cfg, game: g, out: out}, nil
}

// Prompt names the side to move, or the result once the game is over.
func (s *Session) Prompt() string {
	if s.game.IsOver() {
		return fmt.Sprintf("chess [%s]> ", s.game.Result())
	}
	return fmt.Sprintf("chess [%s]> ", s.game.ToMove())
}

// Execute runs one line of input. It returns true when the user asks to quit.
func (s *Session) Execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	var err error
	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprint(s.out, helpText)
	case "board":
		s.printBoard()
	case "new":
		err = s.game.Start()
		if err == nil {
			s.printBoard()
		}
	case "fen":
		err = s.fen(fields[1:])
	case "moves":
		s.moves()
	case "undo":
		err = s.undo(fields[1:])
	case "claim":
		err = s.game.ClaimDraw()
		if err == nil {
			s.printResult()
		}
	case "perft":
		err = s.perft(fields[1:])
	default:
		err = s.play(line)
	}

	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
	return false
}

func (s *Session) play(line string) error {
	cmd, err := notation.ParseCommand(line)
	if err != nil {
		return err
	}
	if cmd.Kind == notation.ResignCommand {
		if err := s.game.Resign(s.game.ToMove()); err != nil {
			return err
		}
		s.printResult()
		return nil
	}

	out, err := s.game.Play(cmd.Move.From, cmd.Move.To, cmd.Move.Promotion)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, notation.FormatOutcome(out))
	if !out.Applied {
		return nil
	}
	if cmd.DrawOffer && !s.game.IsOver() {
		if err := s.game.AgreeDraw(); err != nil {
			return err
		}
	}
	s.printBoard()
	if s.game.IsOver() {
		s.printResult()
	}
	return nil
}

func (s *Session) fen(args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(s.out, s.game.FEN())
		return nil
	}
	g, err := game.NewFromFEN(s.cfg, strings.Join(args, " "))
	if err != nil {
		return err
	}
	s.game = g
	s.printBoard()
	return nil
}

func (s *Session) moves() {
	legal := s.game.LegalMoves()
	texts := make([]string, len(legal))
	for i, lm := range legal {
		texts[i] = notation.FormatMove(lm.Move)
	}
	sort.Strings(texts)
	fmt.Fprintf(s.out, "%d legal moves\n", len(texts))
	for _, t := range texts {
		fmt.Fprintln(s.out, t)
	}
}

func (s *Session) undo(args []string) error {
	n := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.Wrapf(errors.ErrInvalidCommand, "undo count %q", args[0])
		}
		n = v
	}
	if err := s.game.Undo(n); err != nil {
		return err
	}
	s.printBoard()
	return nil
}

func (s *Session) perft(args []string) error {
	if len(args) != 1 {
		return errors.Wrap(errors.ErrInvalidCommand, "usage: perft N")
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 || depth > s.cfg.Perft.MaxDepth {
		return errors.Wrapf(errors.ErrInvalidCommand, "perft depth must be 1 to %d", s.cfg.Perft.MaxDepth)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	entries, total, err := perft.Divide(ctx, s.game.Board(), depth, s.cfg.Perft.Workers)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(s.out, "%s: %d\n", e.Move.Move, e.Nodes)
	}
	fmt.Fprintf(s.out, "Total: %d\n", total)
	return nil
}

func (s *Session) printBoard() {
	fmt.Fprint(s.out, notation.FormatBoard(s.game.Board()))
}

func (s *Session) printResult() {
	fmt.Fprintln(s.out, notation.FormatResult(s.game.Result(), s.game.Termination()))
}
