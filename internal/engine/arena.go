package engine

import (
	"fmt"

	"gomoku_exe/internal/domain/gomoku"
)

type MatchResult struct {
	Winner gomoku.Stone
	Status gomoku.Status
	Rounds int
	Board  *gomoku.Board
}

// PlayMatch plays first (Player1) against second (Player2) from an empty
// board for at most maxRounds rounds of one move each. A strategy that
// answers with a taken or off-board cell ends the match with an error.
func PlayMatch(first, second Strategy, maxRounds int) (MatchResult, error) {
	b := gomoku.New(nil, nil)
	players := [2]Strategy{first, second}
	res := MatchResult{Board: b}

	for res.Rounds < maxRounds {
		res.Rounds++
		for _, p := range players {
			mover := b.NextMover()
			cell := p.SelectMove(b)
			if !gomoku.InRange(cell) || b.IsOccupied(cell) {
				return res, fmt.Errorf("round %d: %s chose unavailable cell %d", res.Rounds, mover, cell)
			}
			b.Apply(cell)

			res.Status = b.Status()
			if res.Status == gomoku.Finished {
				res.Winner = mover
			}
			if res.Status != gomoku.Playing {
				return res, nil
			}
		}
	}
	return res, nil
}
