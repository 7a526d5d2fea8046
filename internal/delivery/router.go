package delivery

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	moveDelivery "gomoku_exe/internal/delivery/move"
	playDelivery "gomoku_exe/internal/delivery/play"
	ownMiddleware "gomoku_exe/internal/middleware"
)

// localCors opens the API to any origin; only meant for local frontends.
var localCors = cors.Options{
	AllowedOrigins: []string{"*"},
	AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
	MaxAge:         300,
}

type Handlers struct {
	Move *moveDelivery.MoveHandler
	Play *playDelivery.PlayHandler
}

func (h *Handlers) Router(log *zap.SugaredLogger, isLocalCors bool) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(ownMiddleware.AccessLog(log))
	if isLocalCors {
		r.Use(cors.Handler(localCors))
	}

	r.Get("/", h.Move.HandleHealth)
	r.Get("/health", h.Move.HandleHealth)
	r.Get("/healthz", h.Move.HandleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/next-move", h.Move.HandleNextMove)
		r.Get("/decisions/{id}", h.Move.HandleGetDecision)
	})
	r.Get("/ws/play/ai", h.Play.HandlePlayAI)
	return r
}
