package engine

import "gomoku_exe/internal/domain/gomoku"

type tableKey struct {
	board    gomoku.Snapshot
	depth    int8
	maximize bool
}

// tableEntry holds the proven bounds of a node: lower == upper is an exact value.
type tableEntry struct {
	move  int
	lower int
	upper int
}

var unknownBounds = tableEntry{move: gomoku.NoCell, lower: -Infinity, upper: Infinity}

// transpositionTable lives for one decision and is never shared.
type transpositionTable struct {
	entries map[tableKey]tableEntry
}

func newTranspositionTable() *transpositionTable {
	return &transpositionTable{entries: make(map[tableKey]tableEntry, 1<<12)}
}

func (t *transpositionTable) lookup(key tableKey) (tableEntry, bool) {
	e, ok := t.entries[key]
	return e, ok
}

func (t *transpositionTable) store(key tableKey, e tableEntry) {
	t.entries[key] = e
}

func (t *transpositionTable) size() int {
	return len(t.entries)
}
