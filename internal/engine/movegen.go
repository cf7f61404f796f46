package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

var (
	knightOffsets = []chess.Position{
		{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: -1}, {X: 1, Y: -2},
		{X: -1, Y: -2}, {X: -2, Y: -1}, {X: -2, Y: 1}, {X: -1, Y: 2},
	}
	diagonalDirs = []chess.Position{{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: -1}, {X: -1, Y: 1}}
	straightDirs = []chess.Position{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}}
	allDirs      = append(append([]chess.Position{}, straightDirs...), diagonalDirs...)
)

// PseudoMoves returns every destination the piece's movement rules allow,
// including castling, without regard to whether the move leaves its own
// king in check.
func PseudoMoves(g *Game, piece chess.Piece) []chess.Position {
	return pseudoMoves(g, piece, true)
}

// pseudoMoves generates pseudo-legal destinations. Attack detection passes
// withCastling=false: castling never captures, and generating it there
// would recurse through the castling path check.
func pseudoMoves(g *Game, piece chess.Piece, withCastling bool) []chess.Position {
	switch piece.Type {
	case chess.Pawn:
		return pawnMoves(g, piece)
	case chess.Knight:
		return stepMoves(g, piece, knightOffsets)
	case chess.Bishop:
		return slidingMoves(g, piece, diagonalDirs)
	case chess.Rook:
		return slidingMoves(g, piece, straightDirs)
	case chess.Queen:
		return slidingMoves(g, piece, allDirs)
	case chess.King:
		moves := stepMoves(g, piece, allDirs)
		if withCastling {
			moves = append(moves, castlingMoves(g, piece)...)
		}
		return moves
	default:
		return nil
	}
}

// stepMoves handles non-sliding pieces.
func stepMoves(g *Game, piece chess.Piece, offsets []chess.Position) []chess.Position {
	var moves []chess.Position
	for _, d := range offsets {
		dest := piece.Position.Add(d)
		if Classify(g, piece, dest) != Invalid {
			moves = append(moves, dest)
		}
	}
	return moves
}

// slidingMoves walks each direction until the edge or the first occupied
// square, which is included only when it holds an enemy piece.
func slidingMoves(g *Game, piece chess.Piece, dirs []chess.Position) []chess.Position {
	var moves []chess.Position
	for _, d := range dirs {
		for dest := piece.Position.Add(d); ; dest = dest.Add(d) {
			mt := Classify(g, piece, dest)
			if mt == Invalid {
				break
			}
			moves = append(moves, dest)
			if mt == Attack {
				break
			}
		}
	}
	return moves
}
