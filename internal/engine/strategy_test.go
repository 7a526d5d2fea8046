package engine

import (
	"testing"

	"github.com/matryer/is"

	"gomoku_exe/internal/domain/gomoku"
)

func TestRandomPickerAvoidsStones(t *testing.T) {
	is := is.New(t)
	taken := make([]int, 0, gomoku.Size-1)
	for cell := 0; cell < gomoku.Size-1; cell++ {
		taken = append(taken, cell)
	}
	b := gomoku.New(taken[:len(taken)/2], taken[len(taken)/2:])

	is.Equal(RandomPicker{}.SelectMove(b), gomoku.Size-1)
}

func TestRandomCellFullBoardPanics(t *testing.T) {
	is := is.New(t)
	all := make([]int, gomoku.Size)
	for i := range all {
		all[i] = i
	}
	b := gomoku.New(all[:gomoku.Size/2+1], all[gomoku.Size/2+1:])
	defer func() {
		is.True(recover() != nil)
	}()
	RandomCell(b)
}

func TestNewNeighborWalkerRejectsOffsets(t *testing.T) {
	is := is.New(t)
	for _, off := range [][2]int{{0, 0}, {2, 0}, {0, -2}, {3, 3}} {
		_, err := NewNeighborWalker(off[0], off[1])
		is.True(err != nil)
	}
	for _, d := range Directions {
		_, err := NewNeighborWalker(d[0], d[1])
		is.NoErr(err)
	}
}

func TestNeighborWalkerFollowsDirection(t *testing.T) {
	is := is.New(t)
	w, err := NewNeighborWalker(1, 1)
	is.NoErr(err)

	b := gomoku.New(nil, nil)
	first := w.SelectMove(b)
	b.Apply(first)

	row, col := gomoku.RowCol(first)
	if next, ok := gomoku.Step(first, 1, 1); ok {
		is.Equal(w.SelectMove(b), next)
	} else {
		// off the board: the walker has to start over somewhere free
		is.True(row == gomoku.Rows-1 || col == gomoku.Rows-1)
		is.True(!b.IsOccupied(w.SelectMove(b)))
	}
}

func TestNeighborWalkerResamplesWhenBlocked(t *testing.T) {
	is := is.New(t)
	w, err := NewNeighborWalker(0, 1)
	is.NoErr(err)
	w.last = gomoku.Pos(3, 3)

	b := gomoku.New([]int{gomoku.Pos(3, 3)}, []int{gomoku.Pos(3, 4)})
	cell := w.SelectMove(b)
	is.True(cell != gomoku.Pos(3, 4))
	is.True(!b.IsOccupied(cell))

	w.last = gomoku.Pos(3, gomoku.Rows-1)
	cell = w.SelectMove(b)
	is.True(!b.IsOccupied(cell))
	is.Equal(w.last, cell)
}

func TestStrategiesShareContract(t *testing.T) {
	is := is.New(t)
	walker, err := NewNeighborWalker(-1, 0)
	is.NoErr(err)
	engine, err := NewAlphaBeta(2)
	is.NoErr(err)

	b := gomoku.New([]int{gomoku.Pos(12, 12)}, nil)
	for _, s := range []Strategy{RandomPicker{}, walker, engine} {
		before := b.Snapshot()
		cell := s.SelectMove(b)
		is.True(gomoku.InRange(cell))
		is.True(!b.IsOccupied(cell))
		is.Equal(b.Snapshot(), before)
	}
}
