package engine

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"gomoku_exe/internal/domain/gomoku"
)

// MaxDepth bounds the configurable search depth.
const MaxDepth = 12

type Option func(*AlphaBeta)

// WithMTD switches the engine to iterative deepening driven by MTD(f).
func WithMTD(enabled bool) Option {
	return func(a *AlphaBeta) {
		a.useMTD = enabled
	}
}

func WithLogger(log *zap.SugaredLogger) Option {
	return func(a *AlphaBeta) {
		if log != nil {
			a.log = log
		}
	}
}

// AlphaBeta is the search engine. It holds configuration only; every
// decision runs on its own table and buffers, so one AlphaBeta may serve
// concurrent callers as long as each passes its own board.
type AlphaBeta struct {
	maxDepth int
	useMTD   bool
	log      *zap.SugaredLogger
}

func NewAlphaBeta(maxDepth int, opts ...Option) (*AlphaBeta, error) {
	if maxDepth < 1 || maxDepth > MaxDepth {
		return nil, fmt.Errorf("search depth %d: must be between 1 and %d", maxDepth, MaxDepth)
	}
	a := &AlphaBeta{
		maxDepth: maxDepth,
		log:      zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

func (a *AlphaBeta) Depth() int   { return a.maxDepth }
func (a *AlphaBeta) UsesMTD() bool { return a.useMTD }

type Stats struct {
	Nodes       int64
	TableHits   int64
	TableMisses int64
	TableSize   int
	Passes      int
	Duration    time.Duration
}

type Decision struct {
	Move  int
	Score int
	Depth int
	Stats Stats
}

func (a *AlphaBeta) SelectMove(b *gomoku.Board) int {
	return a.Decide(b).Move
}

// Decide picks a move for the side to move on b, which must still be in play.
// b is mutated during the search and restored before Decide returns.
func (a *AlphaBeta) Decide(b *gomoku.Board) Decision {
	start := time.Now()
	if b.IsEmpty() {
		return Decision{Move: RandomCell(b), Depth: 0, Stats: Stats{Duration: time.Since(start)}}
	}

	s := newSearcher(b, a.maxDepth)
	var score, move int
	if a.useMTD {
		score, move = s.iterativeDeepening(a.maxDepth, func(depth, score, move int) {
			a.log.Debugf("mtd depth %d: score %d move %d, table %d hits %d misses, %d nodes",
				depth, score, move, s.stats.TableHits, s.stats.TableMisses, s.stats.Nodes)
		})
	} else {
		score, move = s.memoSearch(a.maxDepth, true, -Infinity, Infinity, gomoku.NoCell)
	}
	if move == gomoku.NoCell {
		panic("engine: search finished without a move on a board in play")
	}

	s.stats.TableSize = s.table.size()
	s.stats.Duration = time.Since(start)
	return Decision{Move: move, Score: score, Depth: a.maxDepth, Stats: s.stats}
}

// searcher carries the private state of one decision.
type searcher struct {
	board *gomoku.Board
	table *transpositionTable
	gen   *moveGen
	stats Stats
}

func newSearcher(b *gomoku.Board, maxDepth int) *searcher {
	return &searcher{
		board: b,
		table: newTranspositionTable(),
		gen:   newMoveGen(maxDepth),
	}
}

// memoSearch wraps search with the transposition table. The side to move
// maximizes when maximize is set.
func (s *searcher) memoSearch(depth int, maximize bool, alpha, beta, guess int) (int, int) {
	key := tableKey{board: s.board.Snapshot(), depth: int8(depth), maximize: maximize}
	entry, ok := s.table.lookup(key)
	if ok {
		s.stats.TableHits++
		if entry.lower >= beta {
			return entry.lower, entry.move
		}
		if entry.upper <= alpha {
			return entry.upper, entry.move
		}
		alpha = max(alpha, entry.lower)
		beta = min(beta, entry.upper)
		if entry.move != gomoku.NoCell {
			guess = entry.move
		}
	} else {
		s.stats.TableMisses++
		entry = unknownBounds
	}

	score, move := s.search(depth, maximize, alpha, beta, guess)

	switch {
	case score <= alpha:
		entry.upper = score
	case score >= beta:
		entry.lower = score
	default:
		entry.lower, entry.upper = score, score
	}
	// keep only moves that are proven to reach the stored bound
	if move != gomoku.NoCell && ((maximize && score > alpha) || (!maximize && score < beta)) {
		entry.move = move
	}
	s.table.store(key, entry)
	return score, move
}

func (s *searcher) search(depth int, maximize bool, alpha, beta, guess int) (int, int) {
	s.stats.Nodes++
	if score, ok := evaluate(s.board, depth, !maximize); ok {
		return score, gomoku.NoCell
	}

	moves := s.gen.candidates(s.board, depth, guess)
	if len(moves) == 0 {
		if s.board.IsFull() {
			return 0, gomoku.NoCell
		}
		panic("engine: no candidate moves on a board still in play")
	}

	bestMove := gomoku.NoCell
	if maximize {
		best := -Infinity
		for _, cell := range moves {
			if score := s.explore(cell, depth-1, false, alpha, beta); score > best {
				best, bestMove = score, cell
			}
			alpha = max(alpha, best)
			if alpha >= beta {
				break
			}
		}
		return best, bestMove
	}

	best := Infinity
	for _, cell := range moves {
		if score := s.explore(cell, depth-1, true, alpha, beta); score < best {
			best, bestMove = score, cell
		}
		beta = min(beta, best)
		if alpha >= beta {
			break
		}
	}
	return best, bestMove
}

// explore scores the child reached by playing cell. The board is restored on
// every way out, including a panic further down.
func (s *searcher) explore(cell, depth int, maximize bool, alpha, beta int) (score int) {
	s.board.Try(cell, func() {
		score, _ = s.memoSearch(depth, maximize, alpha, beta, gomoku.NoCell)
	})
	return score
}
