// Package registry holds many games at once and serializes access to each.
package registry

import (
	"log"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// entry guards one game. Moves in the same game never interleave.
type entry struct {
	mu   sync.Mutex
	game *game.Game
}

// Snapshot is a consistent copy of a game's state.
type Snapshot struct {
	ID          string
	FEN         string
	Board       chess.Board
	Status      chess.Status
	Result      game.Result
	Termination game.Termination
	Plies       int
}

// Registry maps game ids to games.
type Registry struct {
	cfg    *config.Config
	logger *log.Logger

	mu    sync.RWMutex
	games map[string]*entry
}

// New creates an empty registry. Every game it creates uses cfg.
func New(cfg *config.Config) *Registry {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Registry{
		cfg:    cfg,
		logger: cfg.Logger("registry: "),
		games:  make(map[string]*entry),
	}
}

// Create starts a game at the configured start position and returns its id.
func (r *Registry) Create() (string, error) {
	g, err := game.New(r.cfg)
	if err != nil {
		return "", err
	}
	return r.add(g), nil
}

// CreateFromFEN starts a game from the given position and returns its id.
func (r *Registry) CreateFromFEN(fen string) (string, error) {
	g, err := game.NewFromFEN(r.cfg, fen)
	if err != nil {
		return "", err
	}
	return r.add(g), nil
}

func (r *Registry) add(g *game.Game) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Ensure UUID uniqueness
	id := uuid.New().String()
	for r.games[id] != nil {
		id = uuid.New().String()
	}
	r.games[id] = &entry{game: g}
	if r.cfg.Verbose(1) {
		r.logger.Printf("created game %s", id)
	}
	return id
}

func (r *Registry) lookup(id string) (*entry, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, &errors.GameError{Err: errors.ErrGameNotFound, GameID: id}
	}
	r.mu.RLock()
	e, ok := r.games[id]
	r.mu.RUnlock()
	if !ok {
		return nil, &errors.GameError{Err: errors.ErrGameNotFound, GameID: id}
	}
	return e, nil
}

// With runs fn with exclusive access to the game.
func (r *Registry) With(id string, fn func(*game.Game) error) error {
	e, err := r.lookup(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := fn(e.game); err != nil {
		return &errors.GameError{Err: err, GameID: id}
	}
	return nil
}

// Play plays a move in the game with the given id.
func (r *Registry) Play(id string, from, to chess.Square, promotion chess.Piece) (game.Outcome, error) {
	var out game.Outcome
	err := r.With(id, func(g *game.Game) error {
		var err error
		out, err = g.Play(from, to, promotion)
		return err
	})
	return out, err
}

// Resign resigns the game for colour.
func (r *Registry) Resign(id string, colour chess.Colour) error {
	return r.With(id, func(g *game.Game) error {
		return g.Resign(colour)
	})
}

// Snapshot returns a copy of the game's current state.
func (r *Registry) Snapshot(id string) (Snapshot, error) {
	var s Snapshot
	err := r.With(id, func(g *game.Game) error {
		s = Snapshot{
			ID:          id,
			FEN:         g.FEN(),
			Board:       *g.Board(),
			Status:      g.Status(),
			Result:      g.Result(),
			Termination: g.Termination(),
			Plies:       len(g.History()),
		}
		return nil
	})
	return s, err
}

// Remove deletes the game.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.games[id]; !ok {
		return &errors.GameError{Err: errors.ErrGameNotFound, GameID: id}
	}
	delete(r.games, id)
	if r.cfg.Verbose(1) {
		r.logger.Printf("removed game %s", id)
	}
	return nil
}

// IDs returns the ids of all games in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	ids := maps.Keys(r.games)
	r.mu.RUnlock()
	slices.Sort(ids)
	return ids
}

// Len returns the number of games.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}
