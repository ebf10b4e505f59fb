// Package perft counts the leaf nodes of the legal move tree. The counts are
// compared against published figures to verify move generation.
package perft

import (
	"context"
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// cacheMinDepth is the smallest subtree worth caching. Shallower subtrees
// cost less to count than to hash.
const cacheMinDepth = 2

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.LegalMove
	Nodes uint64
}

// Count returns the number of leaf nodes depth plies below board.
func Count(board *chess.Board, depth int) uint64 {
	return count(context.Background(), board, depth, nil)
}

// CountCached is Count with subtree counts shared through cache.
func CountCached(board *chess.Board, depth int, cache *hashing.NodeCache) uint64 {
	return count(context.Background(), board, depth, cache)
}

// count stops expanding interior nodes once ctx is done. A partial count is
// never stored in cache.
func count(ctx context.Context, board *chess.Board, depth int, cache *hashing.NodeCache) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := engine.LegalMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}
	if ctx.Err() != nil {
		return 0
	}
	if cache != nil && depth >= cacheMinDepth {
		if n, ok := cache.Lookup(board, depth); ok {
			return n
		}
	}
	var nodes uint64
	for _, lm := range moves {
		nodes += count(ctx, engine.Apply(board, lm), depth-1, cache)
	}
	if ctx.Err() != nil {
		return 0
	}
	if cache != nil && depth >= cacheMinDepth {
		cache.Store(board, depth, nodes)
	}
	return nodes
}

// Divide counts the nodes below each root move, spreading the root moves
// across a worker pool. Entries are sorted by move text. Cancelling ctx stops
// the search and returns the context's error.
func Divide(ctx context.Context, board *chess.Board, depth, workers int) ([]DivideEntry, uint64, error) {
	if depth < 1 {
		return nil, 0, errors.Wrapf(errors.ErrInvalidCommand, "perft depth %d must be positive", depth)
	}
	moves := engine.LegalMoves(board)
	if len(moves) == 0 {
		return nil, 0, nil
	}

	cache := hashing.NewNodeCache(0)
	pool := worker.NewPoolWithOptions(func(item worker.WorkItem) worker.ProcessResult {
		if err := ctx.Err(); err != nil {
			return worker.ProcessResult{Move: item.Move, Index: item.Index, Error: err}
		}
		nodes := count(ctx, item.Board, item.Depth, cache)
		if err := ctx.Err(); err != nil {
			return worker.ProcessResult{Move: item.Move, Index: item.Index, Error: err}
		}
		return worker.ProcessResult{Move: item.Move, Index: item.Index, Nodes: nodes}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)))
	pool.Start()

	go func() {
		defer pool.Close()
		for i, lm := range moves {
			item := worker.WorkItem{Board: engine.Apply(board, lm), Move: lm, Depth: depth - 1, Index: i}
			if err := pool.SubmitContext(ctx, item); err != nil {
				pool.Stop()
				return
			}
		}
	}()

	entries := make([]DivideEntry, len(moves))
	var total uint64
	var firstErr error
	for result := range pool.Results() {
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		entries[result.Index] = DivideEntry{Move: result.Move, Nodes: result.Nodes}
		total += result.Nodes
	}
	if firstErr == nil {
		firstErr = ctx.Err()
	}
	if firstErr != nil {
		return nil, 0, firstErr
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.String() < entries[j].Move.String()
	})
	return entries, total, nil
}
