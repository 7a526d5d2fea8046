package gomoku

import "math"

// Unreachable is returned by StepsToWin when every line through the cell is blocked.
const Unreachable = math.MaxInt32

// axes are the horizontal, vertical and the two diagonal line directions.
var axes = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// StepsToWin returns the minimum number of additional stones player needs to
// complete five in a row through cell, or Unreachable. grid[cell] must hold
// player's stone.
func StepsToWin(cell int, grid *Grid, player, opponent Stone) int {
	if grid[cell] != player {
		panic("gomoku: steps to win asked for a cell the player does not hold")
	}
	best := Unreachable
	for _, axis := range axes {
		if steps := stepsOnAxis(cell, grid, player, opponent, axis[0], axis[1]); steps < best {
			best = steps
		}
	}
	return best
}

func stepsOnAxis(cell int, grid *Grid, player, opponent Stone, rowInc, colInc int) int {
	row, col := RowCol(cell)
	back := 0
	for back < WinLength-1 && Inside(row-rowInc, col-colInc) {
		row, col = row-rowInc, col-colInc
		back++
	}

	var line [2*WinLength - 1]Stone
	n := 0
	for n < back+WinLength && Inside(row, col) {
		pos := Pos(row, col)
		if pos == cell {
			line[n] = player
		} else {
			line[n] = grid[pos]
		}
		n++
		row, col = row+rowInc, col+colInc
	}

	best := Unreachable
	taken, toTake, start := 0, 0, 0
	for i := 0; i < n; i++ {
		switch line[i] {
		case opponent:
			// a window holding an opponent stone can never become five
			taken, toTake, start = 0, 0, i+1
			continue
		case player:
			taken++
		default:
			toTake++
		}
		if taken+toTake == WinLength {
			best = min(best, toTake)
			if line[start] == player {
				taken--
			} else {
				toTake--
			}
			start++
		}
	}
	return best
}

// CheckWinningStep reports whether the stone on cell completes five in a row for player.
func CheckWinningStep(grid *Grid, cell int, player Stone) bool {
	return StepsToWin(cell, grid, player, player.Opponent()) == 0
}
