package engine

import "gomoku_exe/internal/domain/gomoku"

// mtdf converges on the value of the root at depth through null-window
// searches around a moving guess. The move returned comes from the last pass
// that failed high, which is the one proving the final lower bound.
func (s *searcher) mtdf(first, depth, guess int) (int, int) {
	g := first
	lower, upper := -Infinity, Infinity
	move := gomoku.NoCell
	for lower < upper {
		beta := g
		if g == lower {
			beta = g + 1
		}
		var m int
		g, m = s.memoSearch(depth, true, beta-1, beta, guess)
		s.stats.Passes++
		if g < beta {
			upper = g
		} else {
			lower = g
			move = m
		}
		if m != gomoku.NoCell {
			guess = m
		}
	}
	return g, move
}

// iterativeDeepening runs mtdf for every depth up to maxDepth, seeding each
// round with the previous score and move.
func (s *searcher) iterativeDeepening(maxDepth int, report func(depth, score, move int)) (int, int) {
	score, move := 0, gomoku.NoCell
	for depth := 1; depth <= maxDepth; depth++ {
		score, move = s.mtdf(score, depth, move)
		if report != nil {
			report(depth, score, move)
		}
	}
	return score, move
}
