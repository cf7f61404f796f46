package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castleSide describes one castling direction by file.
type castleSide struct {
	rookFile int
	rookTo   int
	kingTo   int
	between  []int // files that must be empty
	path     []int // files the king crosses or lands on
}

const kingFile = 4

var castleSides = []castleSide{
	{rookFile: 7, rookTo: 5, kingTo: 6, between: []int{5, 6}, path: []int{5, 6}},
	{rookFile: 0, rookTo: 3, kingTo: 2, between: []int{1, 2, 3}, path: []int{3, 2}},
}

// castlingMoves returns the king's castling destinations.
func castlingMoves(g *Game, king chess.Piece) []chess.Position {
	rank := king.Colour.BackRank()
	if king.HasMoved() || king.Position != chess.Pos(kingFile, rank) {
		return nil
	}
	if IsColourInCheck(g, king.Colour) {
		return nil
	}

	var moves []chess.Position
	for _, side := range castleSides {
		if canCastle(g, king, side) {
			moves = append(moves, chess.Pos(side.kingTo, rank))
		}
	}
	return moves
}

func canCastle(g *Game, king chess.Piece, side castleSide) bool {
	rank := king.Position.Y
	rook, ok := g.Board.Get(chess.Pos(side.rookFile, rank))
	if !ok || rook.Type != chess.Rook || rook.Colour != king.Colour || rook.HasMoved() {
		return false
	}
	for _, x := range side.between {
		if !g.Board.IsEmpty(chess.Pos(x, rank)) {
			return false
		}
	}
	for _, x := range side.path {
		sim := g.Copy()
		sim.Board.Relocate(king.Position, chess.Pos(x, rank))
		if IsColourInCheck(sim, king.Colour) {
			return false
		}
	}
	return true
}

// castlingRookMove returns the rook's squares for a castling king move.
func castlingRookMove(kingFrom, kingTo chess.Position) (from, to chess.Position) {
	rank := kingFrom.Y
	if kingTo.X > kingFrom.X {
		return chess.Pos(7, rank), chess.Pos(5, rank)
	}
	return chess.Pos(0, rank), chess.Pos(3, rank)
}
