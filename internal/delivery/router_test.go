package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gomoku_exe/internal/bootstrap"
	moveDelivery "gomoku_exe/internal/delivery/move"
	playDelivery "gomoku_exe/internal/delivery/play"
	"gomoku_exe/internal/domain"
	"gomoku_exe/internal/engine"
	"gomoku_exe/internal/usecase/move"
	"gomoku_exe/microservices/repository"
)

type panickingEngine struct{}

func (panickingEngine) GenerateMove(context.Context, domain.EngineRequest) (domain.EngineMove, error) {
	panic("candidate buffer exhausted")
}

func newHandlers(engineImpl move.Engine) *Handlers {
	cfg := bootstrap.Config{SearchDepth: 2, UseMTD: true}
	log := zap.NewNop().Sugar()
	if engineImpl == nil {
		engineImpl = repository.NewEngineRepository(&cfg, log)
	}
	return &Handlers{
		Move: moveDelivery.NewMoveHandler(cfg, log, move.NewMoveUseCase(cfg, log, engineImpl, nil, nil)),
		Play: playDelivery.NewPlayHandler(cfg, log, func() (engine.Strategy, error) {
			return engine.NewAlphaBeta(cfg.SearchDepth)
		}),
	}
}

func TestRouterNextMove(t *testing.T) {
	r := newHandlers(nil).Router(zap.NewNop().Sugar(), false)

	body := `{"player_cells":[312,313,314,315],"opponent_cells":[311,287,288]}`
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/next-move", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp domain.NextMoveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.NextMove)
	assert.Equal(t, 316, *resp.NextMove, "four must be blocked")
	assert.Equal(t, "Playing", resp.Status)
	assert.NotEmpty(t, resp.DecisionID)
}

func TestRouterRejectsFinishedGame(t *testing.T) {
	r := newHandlers(nil).Router(zap.NewNop().Sugar(), false)

	body := `{"player_cells":[0,1,2,3,4],"opponent_cells":[100,101,102,103]}`
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/next-move", strings.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Finished")
}

func TestRouterDecisionWithoutArchive(t *testing.T) {
	r := newHandlers(nil).Router(zap.NewNop().Sugar(), false)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/decisions/whatever", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouterHealth(t *testing.T) {
	r := newHandlers(nil).Router(zap.NewNop().Sugar(), true)
	for _, path := range []string{"/", "/health", "/healthz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.JSONEq(t, `{"healthy":true}`, rec.Body.String())
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestRouterCorsPreflight(t *testing.T) {
	preflight := func(localCors bool) *httptest.ResponseRecorder {
		r := newHandlers(nil).Router(zap.NewNop().Sugar(), localCors)
		req := httptest.NewRequest(http.MethodOptions, "/api/next-move", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	rec := preflight(true)
	assert.Less(t, rec.Code, 300)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	assert.Empty(t, rec.Body.String(), "preflight never reaches the handler")

	rec = preflight(false)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterRecoversEnginePanic(t *testing.T) {
	r := newHandlers(panickingEngine{}).Router(zap.NewNop().Sugar(), false)

	body := `{"player_cells":[312],"opponent_cells":[]}`
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/next-move", strings.NewReader(body)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code, "server keeps serving")
}
