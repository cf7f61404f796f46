package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// MoveType classifies a destination square for a piece.
type MoveType int

const (
	Invalid MoveType = iota
	Regular
	Attack
	EnPassant
	Castling
)

// String returns the string representation of a move type.
func (m MoveType) String() string {
	switch m {
	case Regular:
		return "Regular"
	case Attack:
		return "Attack"
	case EnPassant:
		return "EnPassant"
	case Castling:
		return "Castling"
	default:
		return "Invalid"
	}
}

// Classify reports how piece could land on dest, ignoring the path to it
// and whether the move exposes its own king.
func Classify(g *Game, piece chess.Piece, dest chess.Position) MoveType {
	if !dest.Valid() {
		return Invalid
	}

	switch piece.Type {
	case chess.Pawn:
		if isEnPassant(g, piece, dest) {
			return EnPassant
		}
	case chess.King:
		if abs(dest.X-piece.Position.X) == 2 {
			return Castling
		}
	}

	colour, occupied := g.Board.ColourAt(dest)
	switch {
	case !occupied:
		return Regular
	case colour != piece.Colour:
		return Attack
	default:
		return Invalid
	}
}

// isEnPassant reports whether dest is the square behind an adjacent enemy
// pawn that has just double-stepped.
func isEnPassant(g *Game, pawn chess.Piece, dest chess.Position) bool {
	target, ok := g.EnPassantPiece()
	if !ok || target.Type != chess.Pawn || target.Colour == pawn.Colour {
		return false
	}
	if target.Position.Y != pawn.Position.Y || abs(target.Position.X-pawn.Position.X) != 1 {
		return false
	}
	behind := target.Position.Sub(chess.Pos(0, target.Colour.Forward()))
	return dest == behind && g.Board.IsEmpty(dest)
}
