package main

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// parseMove parses coordinate notation such as "e2e4", "E2-E4" or "e7e8q".
// The returned promotion type is Empty when no suffix is given.
func parseMove(text string) (from, to chess.Position, promo chess.PieceType, err error) {
	s := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(text), "-", ""))
	if len(s) != 4 && len(s) != 5 {
		return from, to, promo, fmt.Errorf("expected a move like e2e4: %w", errors.ErrIllegalMove)
	}
	if from, err = chess.ParsePosition(s[0:2]); err != nil {
		return from, to, promo, err
	}
	if to, err = chess.ParsePosition(s[2:4]); err != nil {
		return from, to, promo, err
	}
	if len(s) == 5 {
		pt, ok := chess.PieceTypeFromLetter(s[4])
		if !ok || !pt.IsPromotionTarget() {
			return from, to, promo, fmt.Errorf("promotion piece %q: %w", s[4], errors.ErrInvalidPromotion)
		}
		promo = pt
	}
	return from, to, promo, nil
}

// playMoves applies moves in order, resolving promotions with the suffix
// letter or a queen, and refreshes the status after each one.
func playMoves(g *engine.Game, moves []string) error {
	for i, text := range moves {
		moveErr := func(err error) error {
			return &errors.MoveError{Err: err, Ply: i + 1, MoveText: text}
		}

		if g.Status.IsTerminal() {
			return moveErr(fmt.Errorf("game is over (%v): %w", g.Status, errors.ErrIllegalMove))
		}
		from, to, promo, err := parseMove(text)
		if err != nil {
			return moveErr(err)
		}
		if g.MovePiece(from, to) == engine.Invalid {
			return moveErr(errors.ErrIllegalMove)
		}

		if g.Status.Kind == engine.StatusPromotion {
			if promo == chess.Empty {
				promo = chess.Queen
			}
			if err := g.Promote(promo); err != nil {
				return moveErr(err)
			}
		} else if promo != chess.Empty {
			return moveErr(errors.ErrNoPromotionPending)
		}
		g.UpdateGame()
	}
	return nil
}

// splitMoves accepts moves separated by spaces or commas.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
}
