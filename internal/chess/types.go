// Package chess provides the core chess data model: colours, piece types,
// board coordinates, pieces and the board grid.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the rank direction a pawn of this colour advances in.
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// BackRank returns the rank index of the colour's first rank.
func (c Colour) BackRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank index pawns of this colour start on.
func (c Colour) PawnRank() int {
	return c.BackRank() + c.Forward()
}

// LastRank returns the rank index on which pawns of this colour promote.
func (c Colour) LastRank() int {
	return c.Opposite().BackRank()
}

// PieceType represents a chess piece kind. Empty is the zero value and
// marks a square without a piece.
type PieceType int

const (
	Empty PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{'_', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// IsPromotionTarget reports whether a pawn may be promoted to this type.
func (p PieceType) IsPromotionTarget() bool {
	switch p {
	case Queen, Rook, Bishop, Knight:
		return true
	default:
		return false
	}
}

// PieceTypeFromLetter converts a piece letter of either case to a piece type.
func PieceTypeFromLetter(c byte) (PieceType, bool) {
	switch c {
	case 'K', 'k':
		return King, true
	case 'Q', 'q':
		return Queen, true
	case 'R', 'r':
		return Rook, true
	case 'B', 'b':
		return Bishop, true
	case 'N', 'n':
		return Knight, true
	case 'P', 'p':
		return Pawn, true
	default:
		return Empty, false
	}
}

// BoardSize is the number of files and ranks on the board.
const BoardSize = 8
