// Package engine implements the chess rules: move classification, move
// generation, the legality filter and the game state machine.
package engine

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Game is the aggregate rules state. A Game is a plain value: assigning or
// calling Copy yields an independent game that shares nothing mutable with
// the original, which is how hypothetical moves are evaluated. The zero
// Game is an empty board with White to move under the default rules.
type Game struct {
	Board       chess.Board
	CurrentMove chess.Colour
	Status      GameStatus

	// EnPassantTarget is the pawn that double-stepped on the previous
	// half-move, or an Empty piece when there is none.
	EnPassantTarget chess.Piece

	// HalfmoveClock counts half-moves since the last capture or, when the
	// rules say so, the last pawn move.
	HalfmoveClock uint32

	// FullmoveNumber starts at 1 and increments after each Black move.
	FullmoveNumber uint32

	rules  config.Rules
	logger *zap.Logger
}

// NewGame creates a game on an empty board with White to move.
func NewGame(opts ...Option) *Game {
	g := &Game{
		Board:          chess.NewBoard(),
		CurrentMove:    chess.White,
		Status:         Active(),
		FullmoveNumber: 1,
		rules:          config.NewRules(),
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Copy returns an independent copy of the game.
func (g *Game) Copy() *Game {
	c := *g
	return &c
}

// Rules returns the rules the game is played under. A Game built without
// NewGame plays under the default rules.
func (g *Game) Rules() config.Rules {
	if g.rules.FiftyMoveLimit == 0 {
		return config.NewRules()
	}
	return g.rules
}

func (g *Game) log() *zap.Logger {
	if g.logger == nil {
		return zap.NewNop()
	}
	return g.logger
}

// EnPassantPiece returns the pawn that may be captured en passant.
func (g *Game) EnPassantPiece() (chess.Piece, bool) {
	return g.EnPassantTarget, !g.EnPassantTarget.IsEmpty()
}

// Pieces returns a snapshot of every piece on the board.
func (g *Game) Pieces() []chess.Piece {
	return g.Board.Pieces()
}

// PieceAt returns the piece at pos, if any.
func (g *Game) PieceAt(pos chess.Position) (chess.Piece, bool) {
	return g.Board.Get(pos)
}

// ColourAt returns the colour of the piece at pos. It reports false for
// empty and off-board squares.
func (g *Game) ColourAt(pos chess.Position) (chess.Colour, bool) {
	return g.Board.ColourAt(pos)
}

// Place puts a piece on the board for square-by-square setup.
func (g *Game) Place(p chess.Piece) {
	g.Board.Place(p)
}

// MovePiece moves the piece on from to to if that is a legal move for the
// side to move, and returns the move's classification. Invalid is
// returned, with the game untouched, for an empty source square, a piece
// of the wrong colour, a pending promotion or an illegal destination.
func (g *Game) MovePiece(from, to chess.Position) MoveType {
	piece, ok := g.Board.Get(from)
	switch {
	case !ok:
		g.reject(from, to, "no piece on source square")
		return Invalid
	case piece.Colour != g.CurrentMove:
		g.reject(from, to, "not this colour's turn")
		return Invalid
	case g.Status.Kind == StatusPromotion:
		g.reject(from, to, "promotion pending")
		return Invalid
	case !slices.Contains(LegalMoves(g, piece), to):
		g.reject(from, to, "illegal destination")
		return Invalid
	}

	mt := Classify(g, piece, to)
	moved, captured := g.apply(piece, to, mt)

	if moved.Type == chess.Pawn && moved.Position.Y == moved.Colour.LastRank() {
		g.Status = Promotion(moved)
	}

	if captured || (moved.Type == chess.Pawn && g.Rules().PawnMoveResetsClock) {
		g.HalfmoveClock = 0
	} else {
		g.HalfmoveClock++
	}
	if g.CurrentMove == chess.Black {
		g.FullmoveNumber++
	}
	g.CurrentMove = g.CurrentMove.Opposite()

	g.log().Debug("move applied",
		zap.Stringer("piece", moved.Type),
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Stringer("type", mt),
		zap.Uint32("halfmove_clock", g.HalfmoveClock),
	)
	return mt
}

func (g *Game) reject(from, to chess.Position, reason string) {
	g.log().Debug("move rejected",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.String("reason", reason),
	)
}

// apply performs a classified move on the board, including the en passant
// capture and the castling rook, and maintains the en passant target. It
// never validates and never logs, so it is safe on simulated copies.
func (g *Game) apply(piece chess.Piece, to chess.Position, mt MoveType) (moved chess.Piece, captured bool) {
	target, hasTarget := g.EnPassantPiece()
	g.EnPassantTarget = chess.Piece{}

	switch mt {
	case Attack:
		captured = true
	case EnPassant:
		if hasTarget {
			g.Board.Remove(target.Position)
			captured = true
		}
	case Castling:
		rookFrom, rookTo := castlingRookMove(piece.Position, to)
		g.Board.Relocate(rookFrom, rookTo)
	}

	moved, _ = g.Board.Relocate(piece.Position, to)
	if moved.Type == chess.Pawn && abs(to.Y-piece.Position.Y) == 2 {
		g.EnPassantTarget = moved
	}
	return moved, captured
}

// Promote replaces the pawn awaiting promotion with a piece of type t and
// sets the status back to Active. Call UpdateGame afterwards.
func (g *Game) Promote(t chess.PieceType) error {
	if g.Status.Kind != StatusPromotion {
		return errors.ErrNoPromotionPending
	}
	if !t.IsPromotionTarget() {
		return fmt.Errorf("promote to %v: %w", t, errors.ErrInvalidPromotion)
	}

	pos := g.Status.Piece.Position
	if !g.Board.SetType(pos, t) {
		return fmt.Errorf("no pawn on %v: %w", pos, errors.ErrNoPromotionPending)
	}
	g.Status = Active()
	g.log().Debug("pawn promoted", zap.Stringer("square", pos), zap.Stringer("type", t))
	return nil
}

// UpdateGame recomputes and stores the game status. A pending promotion is
// left untouched. The order is checkmate, check, stalemate, then the
// fifty-move rule.
func (g *Game) UpdateGame() GameStatus {
	if g.Status.Kind == StatusPromotion {
		return g.Status
	}

	status := Active()
	if c, ok := IsCheckmate(g); ok {
		status = Checkmate(c)
	} else if c, ok := IsCheck(g); ok {
		status = Check(c)
	} else if IsStalemate(g) {
		status = Stalemate()
	} else if IsFiftyMoveRule(g) {
		status = FiftyMoveRule()
	}

	if status != g.Status {
		g.log().Debug("status changed",
			zap.Stringer("from", g.Status),
			zap.Stringer("to", status),
		)
	}
	g.Status = status
	return status
}
