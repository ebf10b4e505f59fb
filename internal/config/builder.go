package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithLogOutput sets the log writer.
func (b *ConfigBuilder) WithLogOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Log.Output = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Log.Verbosity = level
	return b
}

// WithStartFEN sets the position new games start from.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Game.StartFEN = fen
	return b
}

// WithAutomaticDraws controls whether dead and long-drawn positions end the game.
func (b *ConfigBuilder) WithAutomaticDraws(enabled bool) *ConfigBuilder {
	b.cfg.Game.AutomaticDraws = enabled
	return b
}

// WithHistoryLimit caps the undo history.
func (b *ConfigBuilder) WithHistoryLimit(plies int) *ConfigBuilder {
	b.cfg.Game.HistoryLimit = plies
	return b
}

// WithPerftWorkers sets the number of perft worker goroutines.
func (b *ConfigBuilder) WithPerftWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithPerftMaxDepth bounds perft depth.
func (b *ConfigBuilder) WithPerftMaxDepth(depth int) *ConfigBuilder {
	b.cfg.Perft.MaxDepth = depth
	return b
}
