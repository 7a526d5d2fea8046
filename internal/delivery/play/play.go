package play

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"lukechampine.com/frand"

	"gomoku_exe/internal/bootstrap"
	"gomoku_exe/internal/domain"
	"gomoku_exe/internal/domain/gomoku"
	"gomoku_exe/internal/engine"
	errs "gomoku_exe/internal/errors"
	"gomoku_exe/internal/httpresponse"
	playuc "gomoku_exe/internal/usecase/play"
)

// StrategyFactory builds the opponent for one connection.
type StrategyFactory func() (engine.Strategy, error)

type PlayHandler struct {
	cfg         bootstrap.Config
	log         *zap.SugaredLogger
	newStrategy StrategyFactory
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func NewPlayHandler(cfg bootstrap.Config, log *zap.SugaredLogger, newStrategy StrategyFactory) *PlayHandler {
	return &PlayHandler{
		cfg:         cfg,
		log:         log,
		newStrategy: newStrategy,
	}
}

// HandlePlayAI runs one game per connection. The first query parameter
// decides who opens; a coin flip decides when it is absent.
func (p *PlayHandler) HandlePlayAI(w http.ResponseWriter, r *http.Request) {
	first := frand.Intn(2) == 1
	if raw := r.URL.Query().Get("first"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			httpresponse.WriteJSONError(p.log, w, http.StatusBadRequest, "first must be true or false")
			return
		}
		first = parsed
	}

	strategy, err := p.newStrategy()
	if err != nil {
		p.log.Errorf("create strategy: %v", err)
		httpresponse.WriteInternalErrorResponse(w)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		p.log.Errorf("upgrade error: %v", err)
		return
	}
	defer conn.Close()

	session := playuc.NewSession(strategy, first)
	if err := conn.WriteJSON(domain.GameFound{GameFound: true, First: first}); err != nil {
		p.log.Errorf("write error: %v", err)
		return
	}
	if !first {
		if !p.respond(conn, session) {
			return
		}
	}

	for {
		var req domain.StepRequest
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				p.log.Debugf("read error: %v", err)
			}
			return
		}

		if req.Undo {
			if !p.undo(conn, session) {
				return
			}
			continue
		}
		if req.Cell == nil {
			if !p.send(conn, domain.GameStep{Valid: false}) {
				return
			}
			continue
		}

		st, err := session.Take(*req.Cell)
		if err != nil {
			p.log.Debugf("rejected step %d: %v", *req.Cell, err)
			if !p.send(conn, domain.GameStep{Valid: false, Status: session.Status().String()}) {
				return
			}
			continue
		}
		step := domain.GameStep{Cell: req.Cell, Status: st.String(), Valid: true}
		if st != gomoku.Playing {
			step.SGF = session.SGF()
			p.send(conn, step)
			return
		}
		if !p.send(conn, step) || !p.respond(conn, session) {
			return
		}
	}
}

// respond lets the engine move and reports it; false means the connection is done.
func (p *PlayHandler) respond(conn *websocket.Conn, session *playuc.Session) bool {
	cell, st, err := session.Respond()
	if err != nil {
		p.log.Errorf("engine move: %v", err)
		return false
	}
	step := domain.GameStep{Cell: &cell, Opponent: true, Status: st.String(), Valid: true}
	if st != gomoku.Playing {
		step.SGF = session.SGF()
	}
	return p.send(conn, step)
}

func (p *PlayHandler) undo(conn *websocket.Conn, session *playuc.Session) bool {
	engineCell, humanCell, err := session.UndoRound()
	if errors.Is(err, errs.ErrNothingToUndo) {
		return p.send(conn, domain.GameStep{Undo: true, Valid: false, Status: session.Status().String()})
	}
	if err != nil {
		p.log.Errorf("undo: %v", err)
		return false
	}
	status := session.Status().String()
	return p.send(conn, domain.GameStep{Cell: &engineCell, Opponent: true, Undo: true, Valid: true, Status: status}) &&
		p.send(conn, domain.GameStep{Cell: &humanCell, Undo: true, Valid: true, Status: status})
}

func (p *PlayHandler) send(conn *websocket.Conn, step domain.GameStep) bool {
	if err := conn.WriteJSON(step); err != nil {
		p.log.Errorf("write error: %v", err)
		return false
	}
	return true
}
