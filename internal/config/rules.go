package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// DefaultFiftyMoveLimit is the number of qualifying half-moves after which
// the fifty-move rule applies.
const DefaultFiftyMoveLimit = 50

// Rules holds the tunable parts of the rules engine.
type Rules struct {
	// FiftyMoveLimit is the halfmove clock value at which the game is
	// reported as drawn by the fifty-move rule.
	FiftyMoveLimit uint32 `yaml:"fifty_move_limit"`

	// PawnMoveResetsClock resets the halfmove clock on every pawn move,
	// not only on captures.
	PawnMoveResetsClock bool `yaml:"pawn_move_resets_clock"`
}

// NewRules creates Rules with default values.
func NewRules() Rules {
	return Rules{
		FiftyMoveLimit:      DefaultFiftyMoveLimit,
		PawnMoveResetsClock: true,
	}
}

// Validate checks that the rules are usable.
func (r Rules) Validate() error {
	if r.FiftyMoveLimit == 0 {
		return fmt.Errorf("fifty_move_limit must be positive: %w", errors.ErrInvalidConfig)
	}
	return nil
}
