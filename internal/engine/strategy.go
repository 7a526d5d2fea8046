package engine

import (
	"fmt"

	"lukechampine.com/frand"

	"gomoku_exe/internal/domain/gomoku"
)

// Strategy picks the next cell for whoever is to move on b.
// b is left exactly as it was passed in.
type Strategy interface {
	SelectMove(b *gomoku.Board) int
}

// RandomCell returns a uniformly random empty cell. b must not be full.
func RandomCell(b *gomoku.Board) int {
	if b.StoneCount() >= gomoku.Size {
		panic("engine: no empty cell left")
	}
	for {
		if cell := frand.Intn(gomoku.Size); !b.IsOccupied(cell) {
			return cell
		}
	}
}

// RandomPicker plays uniformly random empty cells.
type RandomPicker struct{}

func (RandomPicker) SelectMove(b *gomoku.Board) int {
	return RandomCell(b)
}

// Directions lists the eight offsets a NeighborWalker can follow.
var Directions = [8][2]int{
	{0, 1},
	{1, 1},
	{1, 0},
	{1, -1},
	{-1, -1},
	{-1, 1},
	{-1, 0},
	{0, -1},
}

// NeighborWalker repeats a fixed offset from its own previous move and falls
// back to a random cell when the next one is taken or off the board.
type NeighborWalker struct {
	rowInc, colInc int
	last           int
}

func NewNeighborWalker(rowInc, colInc int) (*NeighborWalker, error) {
	if rowInc < -1 || rowInc > 1 || colInc < -1 || colInc > 1 || (rowInc == 0 && colInc == 0) {
		return nil, fmt.Errorf("walker offset (%d, %d): increments must be -1, 0 or 1 and not both zero", rowInc, colInc)
	}
	return &NeighborWalker{rowInc: rowInc, colInc: colInc, last: gomoku.NoCell}, nil
}

func (w *NeighborWalker) SelectMove(b *gomoku.Board) int {
	cell := gomoku.NoCell
	if w.last != gomoku.NoCell {
		if next, ok := gomoku.Step(w.last, w.rowInc, w.colInc); ok && !b.IsOccupied(next) {
			cell = next
		}
	}
	if cell == gomoku.NoCell {
		cell = RandomCell(b)
	}
	w.last = cell
	return cell
}
