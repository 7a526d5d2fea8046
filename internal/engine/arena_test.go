package engine

import (
	"fmt"
	"testing"

	"github.com/matryer/is"

	"gomoku_exe/internal/domain/gomoku"
)

const (
	arenaDepth  = 4
	arenaRounds = 30
	randomRuns  = 4
)

// engineWins plays opponent first and the engine second and requires the
// engine to finish the game within arenaRounds.
func engineWins(t *testing.T, opponent Strategy, mtd bool) {
	t.Helper()
	is := is.NewRelaxed(t)
	res, err := PlayMatch(opponent, newEngine(t, arenaDepth, mtd), arenaRounds)
	is.NoErr(err)
	if res.Status != gomoku.Finished || res.Winner != gomoku.Player2 {
		t.Fatalf("engine did not win: status %s, winner %s after %d rounds\n%s",
			res.Status, res.Winner, res.Rounds, res.Board)
	}
}

func TestEngineBeatsNeighborWalker(t *testing.T) {
	if testing.Short() {
		t.Skip("full games are slow")
	}
	for _, d := range Directions {
		t.Run(fmt.Sprintf("walker %d,%d", d[0], d[1]), func(t *testing.T) {
			t.Parallel()
			walker, err := NewNeighborWalker(d[0], d[1])
			if err != nil {
				t.Fatal(err)
			}
			engineWins(t, walker, false)
		})
	}
}

func TestEngineBeatsRandomPicker(t *testing.T) {
	if testing.Short() {
		t.Skip("full games are slow")
	}
	for i := 0; i < randomRuns; i++ {
		t.Run(fmt.Sprintf("trial %d", i), func(t *testing.T) {
			t.Parallel()
			engineWins(t, RandomPicker{}, true)
		})
	}
}

func TestWalkerBeatsRandomPicker(t *testing.T) {
	for _, d := range Directions {
		t.Run(fmt.Sprintf("walker %d,%d", d[0], d[1]), func(t *testing.T) {
			walker, err := NewNeighborWalker(d[0], d[1])
			if err != nil {
				t.Fatal(err)
			}
			res, err := PlayMatch(RandomPicker{}, walker, 300)
			if err != nil {
				t.Fatal(err)
			}
			if res.Status == gomoku.Finished && res.Winner != gomoku.Player2 {
				// a random player finishing a line first is possible but rare
				t.Skipf("random player won after %d rounds", res.Rounds)
			}
		})
	}
}

type fixedStrategy int

func (f fixedStrategy) SelectMove(*gomoku.Board) int { return int(f) }

func TestPlayMatchRejectsTakenCell(t *testing.T) {
	is := is.New(t)
	_, err := PlayMatch(fixedStrategy(7), fixedStrategy(7), 3)
	is.True(err != nil)

	_, err = PlayMatch(fixedStrategy(gomoku.Size), RandomPicker{}, 3)
	is.True(err != nil)
}

func TestPlayMatchRoundLimit(t *testing.T) {
	is := is.New(t)
	res, err := PlayMatch(RandomPicker{}, RandomPicker{}, 2)
	is.NoErr(err)
	is.Equal(res.Rounds, 2)
	is.Equal(res.Status, gomoku.Playing)
	is.Equal(res.Winner, gomoku.Empty)
	is.Equal(res.Board.StoneCount(), 4)
}
