package gomoku

import (
	"fmt"

	"github.com/samber/lo"

	errs "gomoku_exe/internal/errors"
)

// Validate checks a move request before a board is reconstructed from it.
// The board itself never validates its input.
func Validate(player, opponent []int) error {
	if cell, found := lo.Find(player, func(c int) bool { return !InRange(c) }); found {
		return fmt.Errorf("player cell %d: %w", cell, errs.ErrCellOutOfRange)
	}
	if cell, found := lo.Find(opponent, func(c int) bool { return !InRange(c) }); found {
		return fmt.Errorf("opponent cell %d: %w", cell, errs.ErrCellOutOfRange)
	}

	if diff := len(player) - len(opponent); diff != 0 && diff != 1 {
		return fmt.Errorf("%d player cells vs %d opponent cells: %w", len(player), len(opponent), errs.ErrCellCountMismatch)
	}

	if dups := lo.FindDuplicates(player); len(dups) > 0 {
		return fmt.Errorf("player cells %v: %w", dups, errs.ErrDuplicateCell)
	}
	if dups := lo.FindDuplicates(opponent); len(dups) > 0 {
		return fmt.Errorf("opponent cells %v: %w", dups, errs.ErrDuplicateCell)
	}

	if both := lo.Intersect(player, opponent); len(both) > 0 {
		return fmt.Errorf("cells %v: %w", both, errs.ErrCellsOverlap)
	}
	return nil
}
