package gomoku

import (
	"strings"
)

type Stone uint8

const (
	Empty Stone = iota
	Player1
	Player2
)

func (s Stone) Opponent() Stone {
	switch s {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return Empty
	}
}

func (s Stone) String() string {
	switch s {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	default:
		return "Empty"
	}
}

type Status int

const (
	Playing Status = iota
	Draw
	Finished
)

func (s Status) String() string {
	switch s {
	case Draw:
		return "Draw"
	case Finished:
		return "Finished"
	default:
		return "Playing"
	}
}

type Grid [Size]Stone

const bitsetWords = (Size + 63) / 64

type bitset [bitsetWords]uint64

func (b *bitset) set(cell int)   { b[cell>>6] |= 1 << uint(cell&63) }
func (b *bitset) unset(cell int) { b[cell>>6] &^= 1 << uint(cell&63) }

// Snapshot is a comparable image of a board: the occupancy of both players
// plus the most recent move. Equal boards always produce equal snapshots.
type Snapshot struct {
	stones   [2]bitset
	lastMove int16
}

// Board is the game position: the grid and each player's moves in play order.
// Player1 always moves first. A Board is not safe for concurrent use.
type Board struct {
	grid   Grid
	moves  [2][]int
	stones [2]bitset
}

// New builds a board from the move histories of the first and the second player.
// The input is assumed to be well formed (see Validate).
func New(p1, p2 []int) *Board {
	b := &Board{}
	b.moves[0] = make([]int, 0, len(p1)+8)
	b.moves[1] = make([]int, 0, len(p2)+8)
	for _, cell := range p1 {
		b.place(Player1, cell)
	}
	for _, cell := range p2 {
		b.place(Player2, cell)
	}
	return b
}

// Reconstruct builds the board for a move request, where player and opponent
// are the two sides' stones and the opponent is the one to move next. The side
// holding more stones moved first; on equal counts the opponent did.
func Reconstruct(player, opponent []int) *Board {
	if len(player) > len(opponent) {
		return New(player, opponent)
	}
	return New(opponent, player)
}

func (b *Board) place(p Stone, cell int) {
	idx := int(p) - 1
	b.grid[cell] = p
	b.moves[idx] = append(b.moves[idx], cell)
	b.stones[idx].set(cell)
}

func (b *Board) At(cell int) Stone {
	return b.grid[cell]
}

// Grid exposes the cells for read-only scanning.
func (b *Board) Grid() *Grid {
	return &b.grid
}

func (b *Board) IsOccupied(cell int) bool {
	return b.grid[cell] != Empty
}

// LastMover is Player2 whenever both players have made the same number of
// moves, including the empty board, so that the first move goes to Player1.
func (b *Board) LastMover() Stone {
	if len(b.moves[0]) == len(b.moves[1]) {
		return Player2
	}
	return Player1
}

func (b *Board) NextMover() Stone {
	return b.LastMover().Opponent()
}

func (b *Board) LastMove() (int, bool) {
	moves := b.moves[b.LastMover()-1]
	if len(moves) == 0 {
		return NoCell, false
	}
	return moves[len(moves)-1], true
}

// Moves returns a copy of the player's moves in play order.
func (b *Board) Moves(p Stone) []int {
	src := b.moves[p-1]
	out := make([]int, len(src))
	copy(out, src)
	return out
}

// Occupied returns the stones of both players without copying. Callers must not modify the slices.
func (b *Board) Occupied() (p1, p2 []int) {
	return b.moves[0], b.moves[1]
}

func (b *Board) StoneCount() int {
	return len(b.moves[0]) + len(b.moves[1])
}

func (b *Board) IsEmpty() bool {
	return b.StoneCount() == 0
}

func (b *Board) IsFull() bool {
	for _, s := range b.grid {
		if s == Empty {
			return false
		}
	}
	return true
}

// Status reports Draw for a full board before looking at the last move, so a
// full board that also completes a line is a Draw.
func (b *Board) Status() Status {
	if b.IsFull() {
		return Draw
	}
	if last, ok := b.LastMove(); ok && CheckWinningStep(&b.grid, last, b.LastMover()) {
		return Finished
	}
	return Playing
}

// Apply places a stone on cell for the player to move.
func (b *Board) Apply(cell int) {
	b.place(b.NextMover(), cell)
}

// Undo removes the most recent move.
func (b *Board) Undo() {
	idx := b.LastMover() - 1
	moves := b.moves[idx]
	cell := moves[len(moves)-1]
	b.moves[idx] = moves[:len(moves)-1]
	b.stones[idx].unset(cell)
	b.grid[cell] = Empty
}

// Try applies cell, runs fn and undoes the move however fn returns.
func (b *Board) Try(cell int, fn func()) {
	b.Apply(cell)
	defer b.Undo()
	fn()
}

func (b *Board) Snapshot() Snapshot {
	last, _ := b.LastMove()
	return Snapshot{stones: b.stones, lastMove: int16(last)}
}

// String draws the grid with X for Player1 and O for Player2.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(Size + Rows)
	for row := 0; row < Rows; row++ {
		for col := 0; col < Rows; col++ {
			switch b.grid[Pos(row, col)] {
			case Player1:
				sb.WriteByte('X')
			case Player2:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
