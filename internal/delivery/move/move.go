package move

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"gomoku_exe/internal/bootstrap"
	"gomoku_exe/internal/domain"
	"gomoku_exe/internal/httpresponse"
	"gomoku_exe/internal/utils"
)

type MoveUseCase interface {
	NextMove(ctx context.Context, req domain.NextMoveRequest) (domain.NextMoveResponse, error)
	GetDecision(ctx context.Context, id string) (domain.Decision, error)
}

type MoveHandler struct {
	cfg    bootstrap.Config
	log    *zap.SugaredLogger
	moveUC MoveUseCase
}

func NewMoveHandler(cfg bootstrap.Config, log *zap.SugaredLogger, moveUC MoveUseCase) *MoveHandler {
	return &MoveHandler{
		cfg:    cfg,
		log:    log,
		moveUC: moveUC,
	}
}

func (h *MoveHandler) HandleNextMove(w http.ResponseWriter, r *http.Request) {
	var req domain.NextMoveRequest
	if err := utils.DecodeJSONRequest(r, &req); err != nil {
		httpresponse.WriteJSONError(h.log, w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.moveUC.NextMove(r.Context(), req)
	if err != nil {
		httpresponse.WriteError(h.log, w, err)
		return
	}

	httpresponse.WriteJSON(h.log, w, http.StatusOK, resp)
}

func (h *MoveHandler) HandleGetDecision(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	decision, err := h.moveUC.GetDecision(r.Context(), id)
	if err != nil {
		httpresponse.WriteError(h.log, w, err)
		return
	}
	httpresponse.WriteJSON(h.log, w, http.StatusOK, decision)
}

type HealthResponse struct {
	Healthy bool `json:"healthy"`
}

func (h *MoveHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	httpresponse.WriteJSON(h.log, w, http.StatusOK, HealthResponse{Healthy: true})
}
