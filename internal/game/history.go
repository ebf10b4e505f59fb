package game

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

func (g *Game) pushHistory(p Ply) {
	g.history = append(g.history, p)
	if limit := g.cfg.Game.HistoryLimit; limit > 0 && len(g.history) > limit {
		g.history = append([]Ply(nil), g.history[len(g.history)-limit:]...)
	}
}

// History returns the accepted moves still held for undo, oldest first.
func (g *Game) History() []chess.LegalMove {
	moves := make([]chess.LegalMove, len(g.history))
	for i, p := range g.history {
		moves[i] = p.Move
	}
	return moves
}

// Undo takes back the last n plies and reopens the game if it had ended.
func (g *Game) Undo(n int) error {
	if n < 1 || n > len(g.history) {
		return errors.Wrapf(errors.ErrNothingToUndo, "cannot undo %d plies: %d available", n, len(g.history))
	}
	for i := 0; i < n; i++ {
		last := g.history[len(g.history)-1]
		g.repetitions.Remove(g.board)
		before := last.Before
		g.board = &before
		g.history = g.history[:len(g.history)-1]
	}

	status, err := engine.Evaluate(g.board)
	if err != nil {
		return err
	}
	g.result = Undecided
	g.termination = NotTerminated
	g.settle(status, g.repetitions.Count(g.board))
	if g.cfg.Verbose(1) {
		g.logger.Printf("undid %d plies", n)
	}
	return nil
}
