package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// StatusKind identifies which GameStatus variant holds.
type StatusKind int

const (
	StatusActive StatusKind = iota
	StatusCheck
	StatusCheckmate
	StatusStalemate
	StatusPromotion
	StatusFiftyMoveRule
)

// String returns the string representation of a status kind.
func (k StatusKind) String() string {
	names := []string{"Active", "Check", "Checkmate", "Stalemate", "Promotion", "FiftyMoveRule"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// GameStatus is the derived state of a game. Colour is meaningful for
// Check and Checkmate; Piece is the pawn awaiting promotion for Promotion.
type GameStatus struct {
	Kind   StatusKind
	Colour chess.Colour
	Piece  chess.Piece
}

// Active is the status of a game in progress with nobody in check.
func Active() GameStatus { return GameStatus{Kind: StatusActive} }

// Check is the status of a game where colour's king is attacked.
func Check(colour chess.Colour) GameStatus {
	return GameStatus{Kind: StatusCheck, Colour: colour}
}

// Checkmate is the status of a game that colour has lost.
func Checkmate(colour chess.Colour) GameStatus {
	return GameStatus{Kind: StatusCheckmate, Colour: colour}
}

// Stalemate is the status of a drawn game where the side to move cannot move.
func Stalemate() GameStatus { return GameStatus{Kind: StatusStalemate} }

// Promotion is the status of a game waiting for pawn to be promoted.
func Promotion(pawn chess.Piece) GameStatus {
	return GameStatus{Kind: StatusPromotion, Colour: pawn.Colour, Piece: pawn}
}

// FiftyMoveRule is the status of a game drawn by the halfmove clock.
func FiftyMoveRule() GameStatus { return GameStatus{Kind: StatusFiftyMoveRule} }

// IsTerminal reports whether the game is over.
func (s GameStatus) IsTerminal() bool {
	switch s.Kind {
	case StatusCheckmate, StatusStalemate, StatusFiftyMoveRule:
		return true
	default:
		return false
	}
}

// String returns e.g. "Active", "Check(White)" or "Promotion(White Pawn on C8)".
func (s GameStatus) String() string {
	switch s.Kind {
	case StatusCheck, StatusCheckmate:
		return fmt.Sprintf("%v(%v)", s.Kind, s.Colour)
	case StatusPromotion:
		return fmt.Sprintf("%v(%v)", s.Kind, s.Piece)
	default:
		return s.Kind.String()
	}
}
