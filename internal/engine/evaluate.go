package engine

import "gomoku_exe/internal/domain/gomoku"

const (
	// WinScore is the base value of a won position. Remaining depth is added
	// on top, which stays far below the gap to any heuristic score.
	WinScore = 10000

	// Infinity bounds the search window and is never a real score.
	Infinity = 1 << 30

	// deadLine caps the steps heuristic for a stone whose lines are all blocked.
	deadLine = gomoku.WinLength
)

// evaluate returns the definite value of the node, if it has one. The stone
// being judged is the last one placed; justMovedMax tells whether the side
// that placed it is the maximizing one.
func evaluate(b *gomoku.Board, depth int, justMovedMax bool) (int, bool) {
	last, ok := b.LastMove()
	if !ok {
		panic("engine: evaluate called on a board without stones")
	}
	own := b.LastMover()
	steps := gomoku.StepsToWin(last, b.Grid(), own, own.Opponent())

	if steps == 0 {
		score := WinScore + depth
		if justMovedMax {
			return score, true
		}
		return -score, true
	}
	if depth <= 0 {
		// fewer steps to win is better for the one who just moved
		steps = min(steps, deadLine)
		if justMovedMax {
			return -steps, true
		}
		return steps, true
	}
	return 0, false
}

// IsWinScore reports whether a search score comes from a forced win or loss.
func IsWinScore(score int) bool {
	return score >= WinScore || score <= -WinScore
}
