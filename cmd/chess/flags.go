// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Game options
	startFEN    = flag.String("fen", "", "Start position in FEN (default: standard initial position)")
	noAutoDraws = flag.Bool("noautodraws", false, "Don't end games on insufficient material, 75 moves or fivefold repetition")
	historyMax  = flag.Int("history", 0, "Maximum plies kept for undo (0 = unlimited)")

	// Perft options
	perftWorkers  = flag.Int("workers", 4, "Goroutines used by the perft command")
	perftMaxDepth = flag.Int("maxdepth", 6, "Deepest perft the perft command will run")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 game events, 2 every move")
	logFile   = flag.String("l", "", "Write log to file (default: stderr)")
	appendLog = flag.String("L", "", "Append log to file")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies command-line flags into cfg.
func applyFlags(cfg *config.Config) {
	cfg.Game.StartFEN = *startFEN
	cfg.Game.AutomaticDraws = !*noAutoDraws
	cfg.Game.HistoryLimit = *historyMax
	cfg.Perft.Workers = *perftWorkers
	cfg.Perft.MaxDepth = *perftMaxDepth
	cfg.Log.Verbosity = *verbosity
}
