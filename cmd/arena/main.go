package main

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gomoku_exe/internal/bootstrap"
	"gomoku_exe/internal/domain/gomoku"
	"gomoku_exe/internal/engine"
)

type match struct {
	name     string
	opponent func() (engine.Strategy, error)
	result   engine.MatchResult
}

func main() {
	depth := flag.Int("depth", 0, "search depth (defaults to SEARCH_DEPTH)")
	mtd := flag.Bool("mtd", true, "use the MTD(f) driver")
	rounds := flag.Int("rounds", 0, "round limit per match (defaults to MATCH_PLIES)")
	trials := flag.Int("trials", 4, "matches against the random baseline")
	engineFirst := flag.Bool("engine-first", false, "let the engine open every match")
	flag.Parse()

	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		panic("failed to setup configuration: " + err.Error())
	}
	logger, err := bootstrap.NewLogger(cfg.LogLevel)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	if *depth == 0 {
		*depth = cfg.SearchDepth
	}
	if *rounds == 0 {
		*rounds = cfg.MatchRounds
	}

	matches := make([]*match, 0, len(engine.Directions)+*trials)
	for _, dir := range engine.Directions {
		matches = append(matches, &match{
			name: fmt.Sprintf("walker(%d,%d)", dir[0], dir[1]),
			opponent: func() (engine.Strategy, error) {
				return engine.NewNeighborWalker(dir[0], dir[1])
			},
		})
	}
	for i := 0; i < *trials; i++ {
		matches = append(matches, &match{
			name:     fmt.Sprintf("random#%d", i+1),
			opponent: func() (engine.Strategy, error) { return engine.RandomPicker{}, nil },
		})
	}

	engineStone := gomoku.Player2
	if *engineFirst {
		engineStone = gomoku.Player1
	}

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for _, m := range matches {
		g.Go(func() error {
			ab, err := engine.NewAlphaBeta(*depth, engine.WithMTD(*mtd))
			if err != nil {
				return err
			}
			opponent, err := m.opponent()
			if err != nil {
				return err
			}

			first, second := opponent, engine.Strategy(ab)
			if *engineFirst {
				first, second = second, first
			}
			m.result, err = engine.PlayMatch(first, second, *rounds)
			if err != nil {
				return fmt.Errorf("%s: %w", m.name, err)
			}
			logger.Debugf("%s final position:\n%s", m.name, m.result.Board)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Fatalw("arena failed", zap.Error(err))
	}

	for _, m := range matches {
		logger.Infof("%-14s %-8s winner %-7s after %d rounds", m.name, m.result.Status, m.result.Winner, m.result.Rounds)
	}
	wins := lo.CountBy(matches, func(m *match) bool { return m.result.Winner == engineStone })
	losses := lo.CountBy(matches, func(m *match) bool { return m.result.Winner == engineStone.Opponent() })
	logger.Infof("engine (%s, depth %d, mtd %t): %d wins, %d losses, %d unfinished of %d",
		engineStone, *depth, *mtd, wins, losses, len(matches)-wins-losses, len(matches))
}
