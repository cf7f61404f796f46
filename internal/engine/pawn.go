package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMoves returns a pawn's pushes and captures. The double step needs an
// unmoved pawn and an empty square in front of it.
func pawnMoves(g *Game, pawn chess.Piece) []chess.Position {
	var moves []chess.Position
	fwd := chess.Pos(0, pawn.Colour.Forward())

	one := pawn.Position.Add(fwd)
	if Classify(g, pawn, one) == Regular {
		moves = append(moves, one)
		two := one.Add(fwd)
		if !pawn.HasMoved() && Classify(g, pawn, two) == Regular {
			moves = append(moves, two)
		}
	}

	for _, dx := range []int{-1, 1} {
		dest := pawn.Position.Add(chess.Pos(dx, fwd.Y))
		switch Classify(g, pawn, dest) {
		case Attack, EnPassant:
			moves = append(moves, dest)
		}
	}
	return moves
}
