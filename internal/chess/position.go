package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Position is a board coordinate: X is the file (0 = A) and Y the rank
// (0 = White's first rank). Values outside [0,7] are representable so move
// deltas can be added before bounds checking.
type Position struct {
	X int
	Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the vector sum of two positions.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the vector difference of two positions.
func (p Position) Sub(d Position) Position {
	return Position{X: p.X - d.X, Y: p.Y - d.Y}
}

// Valid reports whether the position lies on the board.
func (p Position) Valid() bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

// String returns the two-character square name, e.g. "E4".
// Off-board positions are formatted as their raw coordinates.
func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("(%d,%d)", p.X, p.Y)
	}
	return string([]byte{byte('A' + p.X), byte('1' + p.Y)})
}

// ParsePosition parses a two-character square name such as "E4" or "e4".
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidPosition)
	}
	file := s[0]
	if file >= 'a' && file <= 'h' {
		file -= 'a' - 'A'
	}
	rank := s[1]
	if file < 'A' || file > 'H' || rank < '1' || rank > '8' {
		return Position{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidPosition)
	}
	return Position{X: int(file - 'A'), Y: int(rank - '1')}, nil
}

// MustParsePosition is like ParsePosition but panics on malformed input.
func MustParsePosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}
