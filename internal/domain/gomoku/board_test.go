package gomoku

import (
	"sort"
	"testing"

	"github.com/matryer/is"
)

func TestEmptyBoard(t *testing.T) {
	is := is.New(t)
	b := New(nil, nil)
	_, ok := b.LastMove()
	is.True(!ok)
	is.Equal(b.LastMover(), Player2)
	is.Equal(b.NextMover(), Player1)
	is.Equal(b.Status(), Playing)
	is.True(b.IsEmpty())
}

func TestApplyAndUndo(t *testing.T) {
	is := is.New(t)
	b := New(nil, nil)

	b.Apply(5)
	last, _ := b.LastMove()
	is.Equal(last, 5)
	is.Equal(b.LastMover(), Player1)
	is.Equal(b.At(5), Player1)

	b.Apply(6)
	last, _ = b.LastMove()
	is.Equal(last, 6)
	is.Equal(b.LastMover(), Player2)
	is.Equal(b.At(6), Player2)

	b.Undo()
	last, _ = b.LastMove()
	is.Equal(last, 5)
	is.Equal(b.LastMover(), Player1)
	is.Equal(b.At(6), Empty)

	b.Undo()
	_, ok := b.LastMove()
	is.True(!ok)
	is.Equal(b.LastMover(), Player2)
	is.Equal(b.At(5), Empty)
}

func TestApplyUndoRestoresEverything(t *testing.T) {
	is := is.New(t)
	p1 := []int{Pos(3, 3), Pos(3, 4), Pos(10, 10)}
	p2 := []int{Pos(4, 4), Pos(4, 5)}
	b := New(p1, p2)

	for cell := 0; cell < Size; cell++ {
		if b.IsOccupied(cell) {
			continue
		}
		before, snap := *b.Grid(), b.Snapshot()
		b.Apply(cell)
		b.Undo()
		is.Equal(*b.Grid(), before)
		is.Equal(b.Snapshot(), snap)
	}
	is.Equal(b.Moves(Player1), p1)
	is.Equal(b.Moves(Player2), p2)
}

func TestTryUndoesOnPanic(t *testing.T) {
	is := is.New(t)
	b := New([]int{0}, nil)
	snap := b.Snapshot()

	func() {
		defer func() { _ = recover() }()
		b.Try(1, func() {
			is.Equal(b.At(1), Player2)
			panic("boom")
		})
	}()
	is.Equal(b.Snapshot(), snap)
	is.Equal(b.At(1), Empty)
}

func TestReconstruct(t *testing.T) {
	is := is.New(t)

	// the player moved first and holds one stone more
	b := Reconstruct([]int{1, 2}, []int{30})
	is.Equal(b.At(1), Player1)
	is.Equal(b.At(30), Player2)
	is.Equal(b.NextMover(), Player2)

	// equal counts: the opponent opened the game
	b = Reconstruct([]int{1}, []int{30})
	is.Equal(b.At(30), Player1)
	is.Equal(b.At(1), Player2)
	is.Equal(b.NextMover(), Player1)
	is.Equal(b.At(b.Moves(b.NextMover())[0]), Player1)
}

func TestStatus(t *testing.T) {
	is := is.New(t)

	row := []int{Pos(7, 0), Pos(7, 1), Pos(7, 2), Pos(7, 3), Pos(7, 4)}
	b := New(row, []int{Pos(9, 0), Pos(9, 1), Pos(9, 2), Pos(9, 3)})
	is.Equal(b.Status(), Finished)
	is.Equal(b.Status().String(), "Finished")

	b.Undo()
	is.Equal(b.Status(), Playing)
}

func TestFullBoardIsDraw(t *testing.T) {
	is := is.New(t)
	all := make([]int, Size)
	for i := range all {
		all[i] = i
	}
	// a full board is a draw even when the last stone completes a line
	b := New(all[:Size/2+1], all[Size/2+1:])
	is.True(b.IsFull())
	is.Equal(b.Status(), Draw)
	is.Equal(b.Status().String(), "Draw")
}

func TestSnapshotIgnoresIdentity(t *testing.T) {
	is := is.New(t)
	a := New([]int{1, 2}, []int{3})
	b := New([]int{1, 2}, []int{3})
	is.Equal(a.Snapshot(), b.Snapshot())

	seen := map[Snapshot]bool{a.Snapshot(): true}
	is.True(seen[b.Snapshot()])

	// same stones, different last move
	c := New([]int{2, 1}, []int{3})
	is.True(a.Snapshot() != c.Snapshot())
}

func TestBoardString(t *testing.T) {
	is := is.New(t)
	s := New([]int{0}, []int{1}).String()
	is.Equal(s[:3], "XO.")
	is.Equal(len(s), Size+Rows)
}

func TestNeighbors(t *testing.T) {
	is := is.New(t)
	is.Equal(Neighbors(0), []int{25, 26, 1})
	is.Equal(Neighbors(80), []int{105, 106, 81, 56, 55, 54, 79, 104})

	corner := append([]int(nil), Neighbors(Size-1)...)
	sort.Ints(corner)
	is.Equal(corner, []int{Size - Rows - 2, Size - Rows - 1, Size - 2})
}

func TestStep(t *testing.T) {
	is := is.New(t)
	next, ok := Step(Pos(3, 3), 1, -1)
	is.True(ok)
	is.Equal(next, Pos(4, 2))

	_, ok = Step(Pos(0, 24), 0, 1)
	is.True(!ok)
	_, ok = Step(Pos(0, 0), -1, 0)
	is.True(!ok)
}
