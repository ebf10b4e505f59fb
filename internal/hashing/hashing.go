// Package hashing provides position hashing and repetition tracking.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// RepetitionTable counts how often each position has occurred in a game.
type RepetitionTable struct {
	// hashTable stores the signatures seen under each Zobrist hash
	hashTable map[chess.HashCode][]PositionSignature
	// maxCount is the highest occurrence count recorded so far
	maxCount int
}

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the Zobrist hash of the position
	Hash chess.HashCode
	// WeakHash is a fast hash for quick comparison
	WeakHash chess.HashCode
	// Count is the number of times the position has occurred
	Count int
}

// NewRepetitionTable creates an empty repetition table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{
		hashTable: make(map[chess.HashCode][]PositionSignature),
	}
}

// Record adds an occurrence of board's position and returns how many times
// the position has now occurred.
func (r *RepetitionTable) Record(board *chess.Board) int {
	sig := signatureOf(board)
	sigs := r.hashTable[sig.Hash]
	for i := range sigs {
		if signaturesMatch(sigs[i], sig) {
			sigs[i].Count++
			r.noteCount(sigs[i].Count)
			return sigs[i].Count
		}
	}
	sig.Count = 1
	r.hashTable[sig.Hash] = append(sigs, sig)
	r.noteCount(1)
	return 1
}

// Remove takes back one occurrence of board's position, as when a move is undone.
func (r *RepetitionTable) Remove(board *chess.Board) {
	sig := signatureOf(board)
	sigs := r.hashTable[sig.Hash]
	for i := range sigs {
		if !signaturesMatch(sigs[i], sig) {
			continue
		}
		sigs[i].Count--
		if sigs[i].Count == 0 {
			sigs = append(sigs[:i], sigs[i+1:]...)
		}
		if len(sigs) == 0 {
			delete(r.hashTable, sig.Hash)
		} else {
			r.hashTable[sig.Hash] = sigs
		}
		r.recomputeMax()
		return
	}
}

// Count returns how many times board's position has occurred.
func (r *RepetitionTable) Count(board *chess.Board) int {
	sig := signatureOf(board)
	for _, s := range r.hashTable[sig.Hash] {
		if signaturesMatch(s, sig) {
			return s.Count
		}
	}
	return 0
}

// MaxCount returns the highest occurrence count of any position.
func (r *RepetitionTable) MaxCount() int {
	return r.maxCount
}

// UniqueCount returns the number of distinct positions recorded.
func (r *RepetitionTable) UniqueCount() int {
	count := 0
	for _, sigs := range r.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the table.
func (r *RepetitionTable) Reset() {
	r.hashTable = make(map[chess.HashCode][]PositionSignature)
	r.maxCount = 0
}

func (r *RepetitionTable) noteCount(n int) {
	if n > r.maxCount {
		r.maxCount = n
	}
}

func (r *RepetitionTable) recomputeMax() {
	r.maxCount = 0
	for _, sigs := range r.hashTable {
		for _, s := range sigs {
			r.noteCount(s.Count)
		}
	}
}

func signatureOf(board *chess.Board) PositionSignature {
	return PositionSignature{
		Hash:     GenerateZobristHash(board),
		WeakHash: WeakHash(board),
	}
}

// signaturesMatch checks if two position signatures match.
func signaturesMatch(a, b PositionSignature) bool {
	return a.Hash == b.Hash && a.WeakHash == b.WeakHash
}
