package chess

import "fmt"

// Piece is a value entity describing one piece on the board.
// NumMovesMade counts how often this piece has been relocated and is the
// only record of whether it has moved.
type Piece struct {
	Colour       Colour
	Type         PieceType
	Position     Position
	NumMovesMade uint
}

// NewPiece creates an unmoved piece at the given position.
func NewPiece(colour Colour, pieceType PieceType, pos Position) Piece {
	return Piece{Colour: colour, Type: pieceType, Position: pos}
}

// IsEmpty reports whether the value stands for "no piece".
func (p Piece) IsEmpty() bool {
	return p.Type == Empty
}

// HasMoved reports whether the piece has been relocated at least once.
func (p Piece) HasMoved() bool {
	return p.NumMovesMade > 0
}

// Letter returns the board letter, uppercase for White and lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Type.Letter()
	if p.Colour == Black && p.Type != Empty {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a human-readable description, e.g. "White Knight on G1".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return fmt.Sprintf("%v %v on %v", p.Colour, p.Type, p.Position)
}
