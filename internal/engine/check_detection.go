package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// IsColourInCheck reports whether any opposing piece attacks colour's king.
// A colour without a king is never in check.
func IsColourInCheck(g *Game, colour chess.Colour) bool {
	king, ok := g.Board.FindKing(colour)
	if !ok {
		return false
	}
	return isAttacked(g, king.Position, colour.Opposite())
}

// isAttacked reports whether a piece of colour by could capture on pos.
func isAttacked(g *Game, pos chess.Position, by chess.Colour) bool {
	for _, p := range g.Board.PiecesOf(by) {
		if slices.Contains(pseudoMoves(g, p, false), pos) {
			return true
		}
	}
	return false
}

// IsCheck returns the colour in check. If both kings are attacked, which no
// reachable position allows, the side to move is reported.
func IsCheck(g *Game) (chess.Colour, bool) {
	white := IsColourInCheck(g, chess.White)
	black := IsColourInCheck(g, chess.Black)
	switch {
	case white && black:
		return g.CurrentMove, true
	case white:
		return chess.White, true
	case black:
		return chess.Black, true
	default:
		return chess.White, false
	}
}
