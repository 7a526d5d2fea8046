package play

import (
	"fmt"

	"gomoku_exe/internal/domain/gomoku"
	"gomoku_exe/internal/domain/sgf"
	"gomoku_exe/internal/engine"
	errs "gomoku_exe/internal/errors"
)

// Session is one game between a human and a strategy. It is owned by a
// single connection and is not safe for concurrent use.
type Session struct {
	board    *gomoku.Board
	strategy engine.Strategy
	human    gomoku.Stone
}

// NewSession starts an empty game; humanFirst gives the human Player1.
func NewSession(strategy engine.Strategy, humanFirst bool) *Session {
	human := gomoku.Player2
	if humanFirst {
		human = gomoku.Player1
	}
	return &Session{
		board:    gomoku.New(nil, nil),
		strategy: strategy,
		human:    human,
	}
}

func (s *Session) Status() gomoku.Status {
	return s.board.Status()
}

func (s *Session) HumanToMove() bool {
	return s.board.NextMover() == s.human
}

// Take plays the human's cell.
func (s *Session) Take(cell int) (gomoku.Status, error) {
	if err := s.playable(); err != nil {
		return s.Status(), err
	}
	if !s.HumanToMove() {
		return s.Status(), fmt.Errorf("not the player's turn: %w", errs.ErrInvalidStep)
	}
	if !gomoku.InRange(cell) || s.board.IsOccupied(cell) {
		return s.Status(), fmt.Errorf("cell %d is not free: %w", cell, errs.ErrInvalidStep)
	}
	s.board.Apply(cell)
	return s.board.Status(), nil
}

// Respond lets the strategy move.
func (s *Session) Respond() (int, gomoku.Status, error) {
	if err := s.playable(); err != nil {
		return gomoku.NoCell, s.Status(), err
	}
	if s.HumanToMove() {
		return gomoku.NoCell, s.Status(), fmt.Errorf("not the engine's turn: %w", errs.ErrInvalidStep)
	}
	cell := s.strategy.SelectMove(s.board)
	if !gomoku.InRange(cell) || s.board.IsOccupied(cell) {
		return gomoku.NoCell, s.Status(), fmt.Errorf("strategy chose unavailable cell %d: %w", cell, errs.ErrInternal)
	}
	s.board.Apply(cell)
	return cell, s.board.Status(), nil
}

// UndoRound takes back the engine's last move and the human move before it.
func (s *Session) UndoRound() (engineCell, humanCell int, err error) {
	if !s.HumanToMove() {
		return gomoku.NoCell, gomoku.NoCell, fmt.Errorf("engine has not answered yet: %w", errs.ErrNothingToUndo)
	}
	if len(s.board.Moves(s.human)) == 0 {
		return gomoku.NoCell, gomoku.NoCell, errs.ErrNothingToUndo
	}

	engineCell, _ = s.board.LastMove()
	s.board.Undo()
	humanCell, _ = s.board.LastMove()
	s.board.Undo()
	return engineCell, humanCell, nil
}

func (s *Session) SGF() string {
	props := map[string]string{"PB": "player", "PW": "engine"}
	if s.human == gomoku.Player2 {
		props = map[string]string{"PB": "engine", "PW": "player"}
	}
	return sgf.FromBoard(s.board, props).String()
}

func (s *Session) playable() error {
	if st := s.board.Status(); st != gomoku.Playing {
		return fmt.Errorf("game status %s: %w", st, errs.ErrGameNotPlaying)
	}
	return nil
}
