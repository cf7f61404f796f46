package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN field names used in parse errors.
const (
	fieldPlacement = "placement"
	fieldSide      = "side to move"
	fieldCastling  = "castling"
	fieldEnPassant = "en passant"
	fieldHalfmove  = "halfmove clock"
	fieldFullmove  = "fullmove number"
)

// NewGameFromFEN creates a game from a FEN string. Only the placement field
// is required.
func NewGameFromFEN(fen string, opts ...Option) (*Game, error) {
	g := NewGame(opts...)
	if err := g.LoadFEN(fen); err != nil {
		return nil, err
	}
	return g, nil
}

// MustNewGameFromFEN is like NewGameFromFEN but panics on malformed input.
func MustNewGameFromFEN(fen string, opts ...Option) *Game {
	g, err := NewGameFromFEN(fen, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// NewInitialGame creates a game at the standard starting position.
func NewInitialGame(opts ...Option) *Game {
	return MustNewGameFromFEN(InitialFEN, opts...)
}

// LoadFEN replaces the position with the one described by fen. Missing
// trailing fields take their defaults. On error the game is unchanged.
func (g *Game) LoadFEN(fen string) error {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: fieldPlacement, Expected: "piece placement", Got: "empty string"}
	}
	if len(parts) > 6 {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Expected: "at most 6 fields", Got: strconv.Itoa(len(parts))}
	}

	next := *g
	next.Board = chess.NewBoard()
	next.CurrentMove = chess.White
	next.Status = Active()
	next.EnPassantTarget = chess.Piece{}
	next.HalfmoveClock = 0
	next.FullmoveNumber = 1

	if err := parsePlacement(&next.Board, fen, parts[0]); err != nil {
		return err
	}
	if len(parts) > 1 {
		if err := parseSideToMove(&next, fen, parts[1]); err != nil {
			return err
		}
	}
	if len(parts) > 2 {
		if err := parseCastlingRights(&next.Board, fen, parts[2]); err != nil {
			return err
		}
	}
	if len(parts) > 3 {
		if err := parseEnPassant(&next, fen, parts[3]); err != nil {
			return err
		}
	}
	if len(parts) > 4 {
		n, err := parseCounter(fen, fieldHalfmove, parts[4])
		if err != nil {
			return err
		}
		next.HalfmoveClock = n
	}
	if len(parts) > 5 {
		n, err := parseCounter(fen, fieldFullmove, parts[5])
		if err != nil {
			return err
		}
		next.FullmoveNumber = n
	}

	*g = next
	return nil
}

// parsePlacement parses the piece placement field. Ranks run from 8 down
// to 1. Pawns away from their starting rank are marked as having moved.
func parsePlacement(board *chess.Board, fen, placement string) error {
	fail := func(col int, expected, got string) error {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: fieldPlacement, Column: col, Expected: expected, Got: got}
	}

	y, x := chess.BoardSize-1, 0
	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			if x != chess.BoardSize {
				return fail(i+1, "8 squares in rank", strconv.Itoa(x))
			}
			y--
			x = 0
			if y < 0 {
				return fail(i+1, "8 ranks", "more")
			}
		case c >= '1' && c <= '8':
			x += int(c - '0')
			if x > chess.BoardSize {
				return fail(i+1, "8 squares in rank", strconv.Itoa(x))
			}
		default:
			pt, ok := chess.PieceTypeFromLetter(c)
			if !ok {
				return fail(i+1, "piece letter or digit", fmt.Sprintf("%q", c))
			}
			if x >= chess.BoardSize {
				return fail(i+1, "8 squares in rank", "more")
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			p := chess.NewPiece(colour, pt, chess.Pos(x, y))
			if pt == chess.Pawn && y != colour.PawnRank() {
				p.NumMovesMade = 1
			}
			board.Place(p)
			x++
		}
	}
	if y != 0 || x != chess.BoardSize {
		return fail(len(placement), "8 ranks of 8 squares", placement)
	}
	return nil
}

func parseSideToMove(g *Game, fen, side string) error {
	switch side {
	case "w":
		g.CurrentMove = chess.White
	case "b":
		g.CurrentMove = chess.Black
	default:
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: fieldSide, Expected: "w or b", Got: fmt.Sprintf("%q", side)}
	}
	return nil
}

// castlingRight ties a FEN castling letter to the rook it refers to.
type castlingRight struct {
	letter byte
	colour chess.Colour
	file   int
}

var castlingRights = []castlingRight{
	{'K', chess.White, 7},
	{'Q', chess.White, 0},
	{'k', chess.Black, 7},
	{'q', chess.Black, 0},
}

// parseCastlingRights applies the castling field. Castling is derived from
// move counts, so a missing right marks its rook as moved, and a colour
// with no rights at all also gets its king marked.
func parseCastlingRights(board *chess.Board, fen, field string) error {
	granted := make(map[byte]bool)
	if field != "-" {
		for i := 0; i < len(field); i++ {
			c := field[i]
			if !strings.ContainsRune("KQkq", rune(c)) || granted[c] {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: fieldCastling, Column: i + 1, Expected: "one of KQkq or -", Got: fmt.Sprintf("%q", c)}
			}
			granted[c] = true
		}
	}

	kept := map[chess.Colour]bool{}
	for _, r := range castlingRights {
		if granted[r.letter] {
			kept[r.colour] = true
			continue
		}
		markMoved(board, chess.Pos(r.file, r.colour.BackRank()), r.colour, chess.Rook)
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if !kept[colour] {
			markMoved(board, chess.Pos(kingFile, colour.BackRank()), colour, chess.King)
		}
	}
	return nil
}

func markMoved(board *chess.Board, pos chess.Position, colour chess.Colour, pt chess.PieceType) {
	p, ok := board.Get(pos)
	if !ok || p.Colour != colour || p.Type != pt || p.HasMoved() {
		return
	}
	p.NumMovesMade = 1
	board.Place(p)
}

// parseEnPassant applies the en passant field. The square named is the one
// the pawn skipped; the pawn itself must stand in front of it.
func parseEnPassant(g *Game, fen, field string) error {
	if field == "-" {
		return nil
	}
	fail := func(expected string) error {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: fieldEnPassant, Expected: expected, Got: fmt.Sprintf("%q", field)}
	}

	sq, err := chess.ParsePosition(field)
	if err != nil {
		return fail("square or -")
	}
	var colour chess.Colour
	switch sq.Y {
	case 2:
		colour = chess.White
	case 5:
		colour = chess.Black
	default:
		return fail("square on rank 3 or 6")
	}
	if colour == g.CurrentMove {
		return fail("square skipped by the side that just moved")
	}

	pawn, ok := g.Board.Get(sq.Add(chess.Pos(0, colour.Forward())))
	if !ok || pawn.Type != chess.Pawn || pawn.Colour != colour {
		return fail("square behind a pawn that just moved two squares")
	}
	g.EnPassantTarget = pawn
	return nil
}

func parseCounter(fen, field, s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: field, Expected: "non-negative integer", Got: fmt.Sprintf("%q", s)}
	}
	return uint32(n), nil
}

// FEN returns the position as a six-field FEN string. Castling rights are
// reported for every unmoved king and rook pair on their starting squares.
func (g *Game) FEN() string {
	var sb strings.Builder

	writePlacement(&sb, &g.Board)
	sb.WriteByte(' ')
	if g.CurrentMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, &g.Board)
	sb.WriteByte(' ')
	if target, ok := g.EnPassantPiece(); ok {
		sb.WriteString(strings.ToLower(target.Position.Sub(chess.Pos(0, target.Colour.Forward())).String()))
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " %d %d", g.HalfmoveClock, g.FullmoveNumber)

	return sb.String()
}

func writePlacement(sb *strings.Builder, board *chess.Board) {
	for y := chess.BoardSize - 1; y >= 0; y-- {
		empty := 0
		for x := 0; x < chess.BoardSize; x++ {
			p, ok := board.Get(chess.Pos(x, y))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if y > 0 {
			sb.WriteByte('/')
		}
	}
}

func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	written := false
	for _, r := range castlingRights {
		rank := r.colour.BackRank()
		king, ok := board.Get(chess.Pos(kingFile, rank))
		if !ok || king.Type != chess.King || king.Colour != r.colour || king.HasMoved() {
			continue
		}
		rook, ok := board.Get(chess.Pos(r.file, rank))
		if !ok || rook.Type != chess.Rook || rook.Colour != r.colour || rook.HasMoved() {
			continue
		}
		sb.WriteByte(r.letter)
		written = true
	}
	if !written {
		sb.WriteByte('-')
	}
}
