package move

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gomoku_exe/internal/bootstrap"
	"gomoku_exe/internal/domain"
	"gomoku_exe/internal/domain/gomoku"
	"gomoku_exe/internal/domain/sgf"
	errs "gomoku_exe/internal/errors"
)

type Engine interface {
	GenerateMove(ctx context.Context, req domain.EngineRequest) (domain.EngineMove, error)
}

type DecisionCache interface {
	Get(ctx context.Context, key string) (domain.Decision, bool, error)
	Set(ctx context.Context, key string, d domain.Decision) error
}

type DecisionArchive interface {
	Save(ctx context.Context, d domain.Decision) error
	Get(ctx context.Context, id string) (domain.Decision, error)
}

type MoveUseCase struct {
	cfg     bootstrap.Config
	log     *zap.SugaredLogger
	engine  Engine
	cache   DecisionCache
	archive DecisionArchive
}

// NewMoveUseCase accepts a nil cache or archive; the matching step is then skipped.
func NewMoveUseCase(cfg bootstrap.Config, log *zap.SugaredLogger, engine Engine, cache DecisionCache, archive DecisionArchive) *MoveUseCase {
	return &MoveUseCase{
		cfg:     cfg,
		log:     log,
		engine:  engine,
		cache:   cache,
		archive: archive,
	}
}

// NextMove answers with the opponent's move and the status of the board once
// that move is on it.
func (u *MoveUseCase) NextMove(ctx context.Context, req domain.NextMoveRequest) (domain.NextMoveResponse, error) {
	if err := gomoku.Validate(req.PlayerCells, req.OpponentCells); err != nil {
		return domain.NextMoveResponse{}, err
	}

	b := gomoku.Reconstruct(req.PlayerCells, req.OpponentCells)
	if st := b.Status(); st != gomoku.Playing {
		return domain.NextMoveResponse{}, fmt.Errorf("game status %s: %w", st, errs.ErrGameNotPlaying)
	}

	// opening moves are random and never cached
	cacheable := u.cache != nil && !b.IsEmpty()
	key := u.cacheKey(req)
	if cached, ok := u.lookup(ctx, cacheable, key); ok {
		return response(cached), nil
	}

	start := time.Now()
	move, err := u.engine.GenerateMove(ctx, domain.EngineRequest{
		PlayerCells:   req.PlayerCells,
		OpponentCells: req.OpponentCells,
		Depth:         u.cfg.SearchDepth,
		UseMTD:        u.cfg.UseMTD,
	})
	if err != nil {
		return domain.NextMoveResponse{}, fmt.Errorf("generate move: %w", err)
	}
	elapsed := time.Since(start)

	if !gomoku.InRange(move.Cell) || b.IsOccupied(move.Cell) {
		return domain.NextMoveResponse{}, fmt.Errorf("engine answered unavailable cell %d: %w", move.Cell, errs.ErrInternal)
	}
	b.Apply(move.Cell)
	status := b.Status()

	decision := domain.Decision{
		ID:            uuid.New().String(),
		PlayerCells:   req.PlayerCells,
		OpponentCells: req.OpponentCells,
		Move:          move.Cell,
		Status:        status.String(),
		Score:         move.Score,
		Depth:         move.Depth,
		UseMTD:        u.cfg.UseMTD,
		Nodes:         move.Nodes,
		DurationMs:    elapsed.Milliseconds(),
		SGF:           sgf.FromBoard(b, players(b.At(move.Cell))).String(),
		CreatedAt:     time.Now().UTC(),
	}
	u.log.Infof("decision %s: cell %d, status %s, score %d in %s", decision.ID, decision.Move, decision.Status, decision.Score, elapsed)

	u.store(ctx, cacheable, key, decision)
	return response(decision), nil
}

func (u *MoveUseCase) GetDecision(ctx context.Context, id string) (domain.Decision, error) {
	if u.archive == nil {
		return domain.Decision{}, fmt.Errorf("decision %s: archive disabled: %w", id, errs.ErrDecisionNotFound)
	}
	return u.archive.Get(ctx, id)
}

// cacheKey identifies a request under the current engine settings.
func (u *MoveUseCase) cacheKey(req domain.NextMoveRequest) string {
	raw, _ := json.Marshal(struct {
		Player   []int `json:"p"`
		Opponent []int `json:"o"`
		Depth    int   `json:"d"`
		MTD      bool  `json:"m"`
	}{req.PlayerCells, req.OpponentCells, u.cfg.SearchDepth, u.cfg.UseMTD})
	sum := sha1.Sum(raw)
	return hex.EncodeToString(sum[:])
}

func (u *MoveUseCase) lookup(ctx context.Context, cacheable bool, key string) (domain.Decision, bool) {
	if !cacheable {
		return domain.Decision{}, false
	}
	d, ok, err := u.cache.Get(ctx, key)
	if err != nil {
		u.log.Warnf("decision cache get: %v", err)
		return domain.Decision{}, false
	}
	if ok {
		u.log.Debugf("decision cache hit %s", key)
	}
	return d, ok
}

func (u *MoveUseCase) store(ctx context.Context, cacheable bool, key string, d domain.Decision) {
	if u.archive != nil {
		if err := u.archive.Save(ctx, d); err != nil {
			u.log.Errorf("archive decision %s: %v", d.ID, err)
		}
	}
	if cacheable {
		if err := u.cache.Set(ctx, key, d); err != nil {
			u.log.Warnf("decision cache set: %v", err)
		}
	}
}

// players names the SGF sides; Player1 plays black.
func players(engine gomoku.Stone) map[string]string {
	if engine == gomoku.Player1 {
		return map[string]string{"PB": "engine", "PW": "player"}
	}
	return map[string]string{"PB": "player", "PW": "engine"}
}

func response(d domain.Decision) domain.NextMoveResponse {
	move := d.Move
	return domain.NextMoveResponse{
		Status:     d.Status,
		NextMove:   &move,
		DecisionID: d.ID,
	}
}
