package errors

import (
	"errors"
	"strings"
)

var (
	ErrCellOutOfRange    = errors.New("cell index is outside the board")
	ErrCellCountMismatch = errors.New("invalid number of cells per player")
	ErrDuplicateCell     = errors.New("cell is listed more than once")
	ErrCellsOverlap      = errors.New("player and opponent cells overlap")
	ErrGameNotPlaying    = errors.New("game is not in progress")
	ErrInvalidStep       = errors.New("invalid step")
	ErrInvalidDepth      = errors.New("search depth is out of range")
	ErrNothingToUndo     = errors.New("nothing to undo")
	ErrDecisionNotFound  = errors.New("decision was not found")
	ErrInternal          = errors.New("internal error")
)

// IsInvalidRequest reports whether err is caused by the caller's input rather than the server.
func IsInvalidRequest(err error) bool {
	for _, target := range requestErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

var requestErrors = []error{
	ErrCellOutOfRange,
	ErrCellCountMismatch,
	ErrDuplicateCell,
	ErrCellsOverlap,
	ErrGameNotPlaying,
	ErrInvalidStep,
	ErrInvalidDepth,
}

// FromMessage finds the request sentinel whose text appears in msg, or nil.
// It recovers the cause of an error that crossed a process boundary as text.
func FromMessage(msg string) error {
	for _, err := range requestErrors {
		if strings.Contains(msg, err.Error()) {
			return err
		}
	}
	return nil
}
