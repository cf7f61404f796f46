package testutil

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Well-known positions with published perft counts.
const (
	StartFEN    = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	EndgameFEN  = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
)

// Squares builds a list of positions from square names such as "E4".
// It panics on a malformed name.
func Squares(names ...string) []chess.Position {
	out := make([]chess.Position, 0, len(names))
	for _, n := range names {
		out = append(out, chess.MustParsePosition(n))
	}
	return out
}

// Coords builds a list of positions from (x, y) pairs.
func Coords(xy ...int) []chess.Position {
	out := make([]chess.Position, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, chess.Pos(xy[i], xy[i+1]))
	}
	return out
}
