package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// mustGame loads fen or fails the test.
func mustGame(t testing.TB, fen string, opts ...Option) *Game {
	t.Helper()
	g, err := NewGameFromFEN(fen, opts...)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error: %v", fen, err)
	}
	return g
}

// pieceAt returns the piece at (x, y) or fails the test.
func pieceAt(t testing.TB, g *Game, x, y int) chess.Piece {
	t.Helper()
	p, ok := g.PieceAt(chess.Pos(x, y))
	if !ok {
		t.Fatalf("no piece at %v", chess.Pos(x, y))
	}
	return p
}

// mustMove plays a move and fails the test if it is rejected.
func mustMove(t testing.TB, g *Game, from, to string) MoveType {
	t.Helper()
	mt := g.MovePiece(chess.MustParsePosition(from), chess.MustParsePosition(to))
	if mt == Invalid {
		t.Fatalf("MovePiece(%s, %s) = Invalid in %s", from, to, g.FEN())
	}
	return mt
}
