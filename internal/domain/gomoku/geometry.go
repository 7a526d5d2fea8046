package gomoku

const (
	Rows = 25
	Size = Rows * Rows

	// WinLength is the number of stones in an unbroken line that wins the game.
	WinLength = 5
)

// NoCell marks an absent cell index.
const NoCell = -1

// neighborOffsets are row/col increments of the eight surrounding cells.
var neighborOffsets = [8][2]int{
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
	{-1, 0},
	{-1, -1},
	{0, -1},
	{1, -1},
}

var neighborTable [Size][]int

func init() {
	for cell := 0; cell < Size; cell++ {
		row, col := RowCol(cell)
		for _, off := range neighborOffsets {
			if Inside(row+off[0], col+off[1]) {
				neighborTable[cell] = append(neighborTable[cell], Pos(row+off[0], col+off[1]))
			}
		}
	}
}

func RowCol(cell int) (int, int) {
	return cell / Rows, cell % Rows
}

func Pos(row, col int) int {
	return row*Rows + col
}

func Inside(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Rows
}

func InRange(cell int) bool {
	return cell >= 0 && cell < Size
}

// Step moves from cell by the given increments. ok is false when the result leaves the board.
func Step(cell, rowInc, colInc int) (int, bool) {
	row, col := RowCol(cell)
	row, col = row+rowInc, col+colInc
	if !Inside(row, col) {
		return NoCell, false
	}
	return Pos(row, col), true
}

// Neighbors returns the on-board cells surrounding cell. The slice is shared and must not be modified.
func Neighbors(cell int) []int {
	return neighborTable[cell]
}
