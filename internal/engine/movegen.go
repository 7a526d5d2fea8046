package engine

import "gomoku_exe/internal/domain/gomoku"

// moveGen collects candidate moves: the empty neighbours of every stone.
// Each remaining search depth owns one buffer, so generating children for a
// node never clobbers the list its ancestors are still iterating.
type moveGen struct {
	buffers [][]int
	seen    [gomoku.Size]uint32
	stamp   uint32
}

func newMoveGen(maxDepth int) *moveGen {
	g := &moveGen{buffers: make([][]int, maxDepth+1)}
	for i := range g.buffers {
		g.buffers[i] = make([]int, 0, 64)
	}
	return g
}

// candidates returns the moves to explore at a node with the given remaining
// depth. guess, when still empty, is placed first.
func (g *moveGen) candidates(b *gomoku.Board, depth int, guess int) []int {
	g.stamp++
	if g.stamp == 0 {
		g.seen = [gomoku.Size]uint32{}
		g.stamp = 1
	}
	out := g.buffers[depth][:0]

	if guess != gomoku.NoCell && !b.IsOccupied(guess) {
		out = append(out, guess)
		g.seen[guess] = g.stamp
	}

	p1, p2 := b.Occupied()
	for _, stones := range [2][]int{p1, p2} {
		for _, cell := range stones {
			for _, n := range gomoku.Neighbors(cell) {
				if g.seen[n] == g.stamp || b.IsOccupied(n) {
					continue
				}
				g.seen[n] = g.stamp
				out = append(out, n)
			}
		}
	}

	g.buffers[depth] = out
	return out
}

// CandidateMoves is the allocation-heavy form of the generator, for callers outside a search.
func CandidateMoves(b *gomoku.Board, guess int) []int {
	g := newMoveGen(0)
	moves := g.candidates(b, 0, guess)
	out := make([]int, len(moves))
	copy(out, moves)
	return out
}
