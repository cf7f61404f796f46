package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns the destinations of piece that do not leave its own
// king in check. Each candidate is played on a copy of the game.
func LegalMoves(g *Game, piece chess.Piece) []chess.Position {
	var legal []chess.Position
	for _, dest := range PseudoMoves(g, piece) {
		sim := g.Copy()
		sim.apply(piece, dest, Classify(g, piece, dest))
		if !IsColourInCheck(sim, piece.Colour) {
			legal = append(legal, dest)
		}
	}
	return legal
}

// HasLegalMoves reports whether any piece of colour has a legal move.
func HasLegalMoves(g *Game, colour chess.Colour) bool {
	for _, p := range g.Board.PiecesOf(colour) {
		if len(LegalMoves(g, p)) > 0 {
			return true
		}
	}
	return false
}

// AllLegalMoves returns the legal destinations of every piece of colour,
// keyed by the piece's square.
func AllLegalMoves(g *Game, colour chess.Colour) map[chess.Position][]chess.Position {
	moves := make(map[chess.Position][]chess.Position)
	for _, p := range g.Board.PiecesOf(colour) {
		if dests := LegalMoves(g, p); len(dests) > 0 {
			moves[p.Position] = dests
		}
	}
	return moves
}
