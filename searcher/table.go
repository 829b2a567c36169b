package searcher

import (
	"sync"

	"github.com/andjf/quoridor/game"
)

// Transposition table for the minimax searcher: board hash -> best known
// result with the depth it was searched to and whether the score is exact or
// an alpha/beta bound. Cleared between top-level calls to keep memory flat
// across a long game.

type boundKind uint8

const (
	exactBound boundKind = iota
	lowerBound
	upperBound
)

type tableEntry struct {
	score int
	depth int
	kind  boundKind
	move  game.Move
}

type table struct {
	mu      sync.RWMutex
	entries map[uint64]tableEntry
}

func newTable() *table {
	return &table{entries: make(map[uint64]tableEntry)}
}

func (t *table) reset() {
	t.mu.Lock()
	t.entries = make(map[uint64]tableEntry)
	t.mu.Unlock()
}

func (t *table) lookup(key uint64) (tableEntry, bool) {
	t.mu.RLock()
	entry, ok := t.entries[key]
	t.mu.RUnlock()
	return entry, ok
}

func (t *table) store(key uint64, entry tableEntry) {
	t.mu.Lock()
	t.entries[key] = entry
	t.mu.Unlock()
}
