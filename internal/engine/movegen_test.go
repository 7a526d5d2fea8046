package engine

import (
	"sort"
	"testing"

	"github.com/matryer/is"

	"gomoku_exe/internal/domain/gomoku"
)

func sorted(cells []int) []int {
	out := append([]int(nil), cells...)
	sort.Ints(out)
	return out
}

func TestCandidateMovesCorner(t *testing.T) {
	is := is.New(t)
	b := gomoku.New([]int{0}, nil)
	is.Equal(sorted(CandidateMoves(b, gomoku.NoCell)), []int{1, 25, 26})
}

func TestCandidateMovesDeduplicates(t *testing.T) {
	is := is.New(t)
	b := gomoku.New([]int{0}, []int{1})
	is.Equal(sorted(CandidateMoves(b, gomoku.NoCell)), []int{2, 25, 26, 27})
}

func TestCandidateMovesGuessFirst(t *testing.T) {
	is := is.New(t)
	b := gomoku.New([]int{0}, []int{1})

	moves := CandidateMoves(b, 300)
	is.Equal(moves[0], 300)
	is.Equal(len(moves), 5)

	moves = CandidateMoves(b, 26)
	is.Equal(moves[0], 26)
	is.Equal(len(moves), 4) // the guess is not repeated

	moves = CandidateMoves(b, 0)
	is.Equal(len(moves), 4) // an occupied guess is dropped
	for _, cell := range moves {
		is.True(!b.IsOccupied(cell))
	}
}

func TestCandidateBuffersPerDepth(t *testing.T) {
	is := is.New(t)
	b := gomoku.New([]int{gomoku.Pos(12, 12)}, nil)
	g := newMoveGen(2)

	outer := g.candidates(b, 2, gomoku.NoCell)
	want := append([]int(nil), outer...)

	b.Apply(outer[0])
	inner := g.candidates(b, 1, gomoku.NoCell)
	b.Undo()

	is.True(len(inner) > len(outer))
	is.Equal(outer, want) // a deeper call does not touch the parent list
}
