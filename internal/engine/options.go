package engine

import (
	"go.uber.org/zap"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for applied and rejected moves and status
// transitions. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) {
		if logger == nil {
			logger = zap.NewNop()
		}
		g.logger = logger
	}
}

// WithRules sets the tunable rules. Invalid rules are ignored.
func WithRules(rules config.Rules) Option {
	return func(g *Game) {
		if rules.Validate() == nil {
			g.rules = rules
		}
	}
}
