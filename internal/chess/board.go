package chess

// Board is an 8x8 grid addressed as squares[x][y]. A cell holding a piece of
// type Empty is an empty square. Every occupied cell stores a piece whose
// Position equals the cell's coordinates; all mutators keep this true.
//
// Board has value semantics: assigning it copies the whole grid.
type Board struct {
	squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() Board {
	return Board{}
}

// Get returns the piece at pos. The boolean is false for empty or
// off-board squares.
func (b *Board) Get(pos Position) (Piece, bool) {
	if !pos.Valid() {
		return Piece{}, false
	}
	p := b.squares[pos.X][pos.Y]
	return p, !p.IsEmpty()
}

// IsEmpty reports whether pos is on the board and unoccupied.
func (b *Board) IsEmpty(pos Position) bool {
	return pos.Valid() && b.squares[pos.X][pos.Y].IsEmpty()
}

// Place stores the piece at its own Position, replacing any occupant.
// Pieces with an off-board position or an Empty type are ignored.
func (b *Board) Place(p Piece) {
	if !p.Position.Valid() || p.IsEmpty() {
		return
	}
	b.squares[p.Position.X][p.Position.Y] = p
}

// Remove clears pos and returns what was there.
func (b *Board) Remove(pos Position) (Piece, bool) {
	p, ok := b.Get(pos)
	if ok {
		b.squares[pos.X][pos.Y] = Piece{}
	}
	return p, ok
}

// Relocate moves the piece at from to to, overwriting any occupant of to,
// rewrites its Position and increments NumMovesMade. The moved piece is
// returned; ok is false if from was empty.
func (b *Board) Relocate(from, to Position) (moved Piece, ok bool) {
	if !to.Valid() {
		return Piece{}, false
	}
	moved, ok = b.Remove(from)
	if !ok {
		return Piece{}, false
	}
	moved.Position = to
	moved.NumMovesMade++
	b.squares[to.X][to.Y] = moved
	return moved, true
}

// SetType changes the type of the piece at pos in place.
func (b *Board) SetType(pos Position, t PieceType) bool {
	if _, ok := b.Get(pos); !ok || t == Empty {
		return false
	}
	b.squares[pos.X][pos.Y].Type = t
	return true
}

// ColourAt returns the colour of the piece at pos, if any.
func (b *Board) ColourAt(pos Position) (Colour, bool) {
	p, ok := b.Get(pos)
	return p.Colour, ok
}

// Pieces returns a snapshot of every piece on the board, ordered by rank
// then file.
func (b *Board) Pieces() []Piece {
	pieces := make([]Piece, 0, 32)
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if p := b.squares[x][y]; !p.IsEmpty() {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// PiecesOf returns a snapshot of the pieces of one colour.
func (b *Board) PiecesOf(colour Colour) []Piece {
	var pieces []Piece
	for _, p := range b.Pieces() {
		if p.Colour == colour {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// FindKing returns the king of the given colour.
func (b *Board) FindKing(colour Colour) (Piece, bool) {
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			p := b.squares[x][y]
			if p.Type == King && p.Colour == colour {
				return p, true
			}
		}
	}
	return Piece{}, false
}

// Clear removes every piece.
func (b *Board) Clear() {
	b.squares = [BoardSize][BoardSize]Piece{}
}

// Consistent reports whether every occupied cell stores a piece
// positioned at that cell.
func (b *Board) Consistent() bool {
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			p := b.squares[x][y]
			if !p.IsEmpty() && p.Position != Pos(x, y) {
				return false
			}
		}
	}
	return true
}
