package entity

import (
	"fmt"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	PlayerX = "X"
	PlayerO = "O"

	// PlayerTie is recorded as the winner of a drawn game.
	PlayerTie = "-"
)

// Players is the ordered list of markers. Turns follow the list order and wrap around.
type Players []string

func (that Players) Validate() error {
	if len(that) == 0 {
		return apperror.ErrNoPlayers
	}

	seen := make(map[string]struct{}, len(that))
	for _, marker := range that {
		if utf8.RuneCountInString(marker) != 1 || marker == EmptyCell || marker == PlayerTie {
			return fmt.Errorf("%w: %q", apperror.ErrInvalidMarker, marker)
		}

		if _, ok := seen[marker]; ok {
			return fmt.Errorf("%w: %q", apperror.ErrDuplicateMarker, marker)
		}
		seen[marker] = struct{}{}
	}

	return nil
}

// Next - marker playing after current. An unknown marker hands the turn to the first player.
func (that Players) Next(current string) string {
	for i, marker := range that {
		if marker == current {
			return that[(i+1)%len(that)]
		}
	}

	return that[0]
}
