// Package config provides configuration for games, perft runs and the command line front end.
package config

import (
	"io"
	"log"
	"os"
)

// Config holds all program configuration.
type Config struct {
	Log   *LogConfig   `validate:"required"`
	Game  *GameConfig  `validate:"required"`
	Perft *PerftConfig `validate:"required"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Log:   NewLogConfig(),
		Game:  NewGameConfig(),
		Perft: NewPerftConfig(),
	}
}

// Logger returns a logger writing to the configured output. Verbosity 0
// discards everything.
func (c *Config) Logger(prefix string) *log.Logger {
	if c.Log.Verbosity == 0 || c.Log.Output == nil {
		return log.New(io.Discard, prefix, 0)
	}
	return log.New(c.Log.Output, prefix, log.LstdFlags)
}

// Verbose reports whether messages at level should be logged.
func (c *Config) Verbose(level int) bool {
	return c.Log.Verbosity >= level
}

// LogConfig holds settings for diagnostic output.
type LogConfig struct {
	// Output is where log lines are written
	Output io.Writer

	// Verbosity is 0 for nothing, 1 for game events, 2 for every move
	Verbosity int `validate:"min=0,max=2"`
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Output:    os.Stderr,
		Verbosity: 1,
	}
}

// GameConfig holds settings that shape how a game is played out.
type GameConfig struct {
	// StartFEN is the position new games start from; empty means the standard position
	StartFEN string `validate:"omitempty,fen"`

	// AutomaticDraws ends the game on insufficient material, the
	// seventy-five-move rule and fivefold repetition
	AutomaticDraws bool

	// HistoryLimit caps how many plies can be undone; 0 means unlimited
	HistoryLimit int `validate:"min=0"`
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		AutomaticDraws: true,
	}
}

// PerftConfig holds settings for perft runs.
type PerftConfig struct {
	// Workers is the number of goroutines searching root moves
	Workers int `validate:"min=1,max=64"`

	// MaxDepth bounds the depth accepted from the command line
	MaxDepth int `validate:"min=1,max=10"`
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers:  4,
		MaxDepth: 6,
	}
}
