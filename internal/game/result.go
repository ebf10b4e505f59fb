package game

import "fmt"

// Result is the final score of a game.
type Result int

const (
	Undecided Result = iota
	WhiteWins
	BlackWins
	Drawn
)

// String returns the result in score notation.
func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Drawn:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// Termination says how a game ended.
type Termination int

const (
	NotTerminated Termination = iota
	Checkmate
	Stalemate
	Resignation
	Agreement
	InsufficientMaterial
	SeventyFiveMoveRule
	FivefoldRepetition
	FiftyMoveClaim
	ThreefoldClaim
)

var terminationNames = map[Termination]string{
	NotTerminated:        "in progress",
	Checkmate:            "checkmate",
	Stalemate:            "stalemate",
	Resignation:          "resignation",
	Agreement:            "draw by agreement",
	InsufficientMaterial: "insufficient material",
	SeventyFiveMoveRule:  "seventy-five-move rule",
	FivefoldRepetition:   "fivefold repetition",
	FiftyMoveClaim:       "fifty-move rule claimed",
	ThreefoldClaim:       "threefold repetition claimed",
}

func (t Termination) String() string {
	if s, ok := terminationNames[t]; ok {
		return s
	}
	return fmt.Sprintf("termination(%d)", int(t))
}

// IsDraw reports whether the termination ends the game level.
func (t Termination) IsDraw() bool {
	switch t {
	case NotTerminated, Checkmate, Resignation:
		return false
	default:
		return true
	}
}
