package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gomoku_exe/internal/bootstrap"
	"gomoku_exe/internal/domain"
	"gomoku_exe/internal/domain/gomoku"
	"gomoku_exe/internal/engine"
	errs "gomoku_exe/internal/errors"
)

// EngineRepository runs the search in the calling process. Every call builds
// its own engine state, so concurrent calls never share a table.
type EngineRepository struct {
	cfg *bootstrap.Config
	log *zap.SugaredLogger
}

func NewEngineRepository(cfg *bootstrap.Config, log *zap.SugaredLogger) *EngineRepository {
	return &EngineRepository{
		cfg: cfg,
		log: log,
	}
}

// GenerateMove picks the opponent's next cell. A zero depth in req falls back
// to the configured one.
func (e *EngineRepository) GenerateMove(ctx context.Context, req domain.EngineRequest) (domain.EngineMove, error) {
	if err := ctx.Err(); err != nil {
		return domain.EngineMove{}, err
	}
	if err := gomoku.Validate(req.PlayerCells, req.OpponentCells); err != nil {
		return domain.EngineMove{}, err
	}

	b := gomoku.Reconstruct(req.PlayerCells, req.OpponentCells)
	if st := b.Status(); st != gomoku.Playing {
		return domain.EngineMove{}, fmt.Errorf("game status %s: %w", st, errs.ErrGameNotPlaying)
	}

	depth := req.Depth
	if depth == 0 {
		depth = e.cfg.SearchDepth
	}
	searcher, err := engine.NewAlphaBeta(depth, engine.WithMTD(req.UseMTD), engine.WithLogger(e.log))
	if err != nil {
		return domain.EngineMove{}, fmt.Errorf("%s: %w", err.Error(), errs.ErrInvalidDepth)
	}

	d := searcher.Decide(b)
	e.log.Infof("decided cell %d (score %d, depth %d, mtd %t) in %s: %d nodes, table %d hits %d misses",
		d.Move, d.Score, d.Depth, req.UseMTD, d.Stats.Duration, d.Stats.Nodes, d.Stats.TableHits, d.Stats.TableMisses)

	return domain.EngineMove{
		Cell:  d.Move,
		Score: d.Score,
		Depth: d.Depth,
		Nodes: d.Stats.Nodes,
	}, nil
}
