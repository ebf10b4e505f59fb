package game

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Resign ends the game with a win for the opponent of colour.
func (g *Game) Resign(colour chess.Colour) error {
	if g.result != Undecided {
		return errors.ErrGameOver
	}
	result := WhiteWins
	if colour == chess.White {
		result = BlackWins
	}
	g.finish(result, Resignation)
	if g.cfg.Verbose(1) {
		g.logger.Printf("%s resigns", colour)
	}
	g.logEnd()
	return nil
}

// AgreeDraw ends the game as a draw by agreement.
func (g *Game) AgreeDraw() error {
	if g.result != Undecided {
		return errors.ErrGameOver
	}
	g.finish(Drawn, Agreement)
	g.logEnd()
	return nil
}

// CanClaimDraw reports which draw the side to move could claim, or
// NotTerminated when none.
func (g *Game) CanClaimDraw() Termination {
	if g.result != Undecided {
		return NotTerminated
	}
	if g.repetitions.Count(g.board) >= ThreefoldLimit {
		return ThreefoldClaim
	}
	if engine.CanClaimFiftyMoveDraw(g.board) {
		return FiftyMoveClaim
	}
	return NotTerminated
}

// ClaimDraw ends the game when the position has occurred three times or
// fifty moves have passed without a capture or pawn move.
func (g *Game) ClaimDraw() error {
	if g.result != Undecided {
		return errors.ErrGameOver
	}
	claim := g.CanClaimDraw()
	if claim == NotTerminated {
		return errors.ErrDrawNotClaimable
	}
	g.finish(Drawn, claim)
	g.status = chess.Draw
	g.logEnd()
	return nil
}
