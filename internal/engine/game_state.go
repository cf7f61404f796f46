package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsCheckmate returns the checkmated colour: the colour in check when it has
// no legal move.
func IsCheckmate(g *Game) (colour chess.Colour, ok bool) {
	c, inCheck := IsCheck(g)
	if !inCheck || HasLegalMoves(g, c) {
		return c, false
	}
	return c, true
}

// IsStalemate reports whether the side to move is not in check but has no
// legal move.
func IsStalemate(g *Game) bool {
	if IsColourInCheck(g, g.CurrentMove) {
		return false
	}
	return !HasLegalMoves(g, g.CurrentMove)
}

// IsFiftyMoveRule reports whether the halfmove clock reached the limit.
func IsFiftyMoveRule(g *Game) bool {
	return g.HalfmoveClock >= g.Rules().FiftyMoveLimit
}
