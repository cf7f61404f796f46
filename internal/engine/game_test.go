package engine

import (
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestNewGame(t *testing.T) {
	g := NewGame()
	if g.CurrentMove != chess.White {
		t.Errorf("CurrentMove = %v, want White", g.CurrentMove)
	}
	if g.Status != Active() {
		t.Errorf("Status = %v, want Active", g.Status)
	}
	if got := len(g.Pieces()); got != 0 {
		t.Errorf("len(Pieces()) = %d, want 0", got)
	}
	if _, ok := g.EnPassantPiece(); ok {
		t.Error("new game has an en passant target")
	}
	testutil.AssertEqual(t, g.Rules(), config.NewRules())
}

func TestMovePiece_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
	}{
		{"empty source", "E4", "E5"},
		{"wrong colour", "E7", "E5"},
		{"illegal destination", "E2", "E5"},
		{"own piece on destination", "A1", "A2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewInitialGame()
			before := *g
			mt := g.MovePiece(chess.MustParsePosition(tt.from), chess.MustParsePosition(tt.to))
			if mt != Invalid {
				t.Fatalf("MovePiece(%s, %s) = %v, want Invalid", tt.from, tt.to, mt)
			}
			if g.Board != before.Board || g.CurrentMove != before.CurrentMove || g.HalfmoveClock != before.HalfmoveClock {
				t.Error("rejected move changed the game")
			}
		})
	}
}

func TestMovePiece_TurnAlternation(t *testing.T) {
	g := NewInitialGame()
	moves := [][2]string{{"E2", "E4"}, {"E7", "E5"}, {"G1", "F3"}, {"B8", "C6"}}
	want := chess.White
	for _, m := range moves {
		if g.CurrentMove != want {
			t.Fatalf("before %v CurrentMove = %v, want %v", m, g.CurrentMove, want)
		}
		if g.MovePiece(chess.MustParsePosition(m[0]), chess.MustParsePosition(m[1])) == Invalid {
			t.Fatalf("MovePiece(%v) rejected", m)
		}
		want = want.Opposite()
	}
	if g.FullmoveNumber != 3 {
		t.Errorf("FullmoveNumber = %d, want 3", g.FullmoveNumber)
	}
	if g.HalfmoveClock != 2 {
		t.Errorf("HalfmoveClock = %d, want 2 after two knight moves", g.HalfmoveClock)
	}
}

func TestMovePiece_Capture(t *testing.T) {
	g := mustGame(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 7 20")
	if mt := mustMove(t, g, "E4", "D5"); mt != Attack {
		t.Fatalf("MovePiece(E4, D5) = %v, want Attack", mt)
	}
	if g.HalfmoveClock != 0 {
		t.Errorf("HalfmoveClock = %d, want 0 after a capture", g.HalfmoveClock)
	}
	if got := len(g.Board.PiecesOf(chess.Black)); got != 1 {
		t.Errorf("black has %d pieces, want 1", got)
	}
}

func TestEnPassant(t *testing.T) {
	g := NewGame()
	g.Place(chess.Piece{Colour: chess.White, Type: chess.Pawn, Position: chess.Pos(3, 4), NumMovesMade: 2})
	g.Place(chess.NewPiece(chess.Black, chess.Pawn, chess.Pos(4, 6)))
	g.CurrentMove = chess.Black

	if mt := g.MovePiece(chess.Pos(4, 6), chess.Pos(4, 4)); mt != Regular {
		t.Fatalf("double step = %v, want Regular", mt)
	}
	target, ok := g.EnPassantPiece()
	if !ok || target.Position != chess.Pos(4, 4) {
		t.Fatalf("EnPassantTarget = %v, %v; want the pawn on E5", target, ok)
	}

	moves := LegalMoves(g, pieceAt(t, g, 3, 4))
	testutil.AssertPositions(t, moves, testutil.Coords(3, 5, 4, 5))

	if mt := g.MovePiece(chess.Pos(3, 4), chess.Pos(4, 5)); mt != EnPassant {
		t.Fatalf("MovePiece(D5, E6) = %v, want EnPassant", mt)
	}
	if !g.Board.IsEmpty(chess.Pos(4, 4)) {
		t.Error("captured pawn still on E5")
	}
	if _, ok := g.EnPassantPiece(); ok {
		t.Error("en passant target not cleared")
	}
	if g.HalfmoveClock != 0 {
		t.Errorf("HalfmoveClock = %d, want 0", g.HalfmoveClock)
	}
}

func TestEnPassant_ExpiresAfterOneMove(t *testing.T) {
	g := mustGame(t, "rnbqkbnr/ppp1pppp/3p4/3P4/8/8/PPP1PPPP/RNBQKBNR")
	g.CurrentMove = chess.Black
	mustMove(t, g, "E7", "E5")
	testutil.AssertPositions(t, LegalMoves(g, pieceAt(t, g, 3, 4)), testutil.Coords(4, 5))

	mustMove(t, g, "A2", "A3")
	mustMove(t, g, "A7", "A6")
	if got := LegalMoves(g, pieceAt(t, g, 3, 4)); len(got) != 0 {
		t.Errorf("LegalMoves(D5) = %v after the target expired, want none", got)
	}
}

func TestEnPassant_AfterSinglePush(t *testing.T) {
	g := mustGame(t, "rnbqkbnr/pppp1ppp/8/8/4p3/8/PPPPPPPP/RNBQKBNR")
	mustMove(t, g, "D2", "D3")
	testutil.AssertPositions(t, LegalMoves(g, pieceAt(t, g, 4, 3)), testutil.Coords(4, 2, 3, 2))
}

func TestPromotion(t *testing.T) {
	g := mustGame(t, "7k/2P5/8/8/8/8/8/7K")
	if got := g.UpdateGame(); got != Active() {
		t.Fatalf("UpdateGame() = %v, want Active", got)
	}

	mustMove(t, g, "C7", "C8")
	want := Promotion(pieceAt(t, g, 2, 7))
	if got := g.UpdateGame(); got != want {
		t.Fatalf("UpdateGame() = %v, want %v", got, want)
	}
	if g.CurrentMove != chess.Black {
		t.Errorf("CurrentMove = %v, want Black", g.CurrentMove)
	}

	if mt := g.MovePiece(chess.Pos(7, 7), chess.Pos(6, 7)); mt != Invalid {
		t.Errorf("MovePiece during pending promotion = %v, want Invalid", mt)
	}

	testutil.AssertErrorIs(t, g.Promote(chess.King), chesserrors.ErrInvalidPromotion)
	testutil.AssertErrorIs(t, g.Promote(chess.Pawn), chesserrors.ErrInvalidPromotion)

	testutil.AssertNoError(t, g.Promote(chess.Queen))
	if p := pieceAt(t, g, 2, 7); p.Type != chess.Queen || p.Colour != chess.White {
		t.Errorf("C8 = %v, want a white queen", p)
	}
	if g.Status != Active() {
		t.Errorf("Status after Promote = %v, want Active", g.Status)
	}
	if got := g.UpdateGame(); got != Check(chess.Black) {
		t.Errorf("UpdateGame() = %v, want Check(Black)", got)
	}
}

func TestPromote_NothingPending(t *testing.T) {
	g := NewInitialGame()
	err := g.Promote(chess.Queen)
	if !errors.Is(err, chesserrors.ErrNoPromotionPending) {
		t.Errorf("Promote() error = %v, want ErrNoPromotionPending", err)
	}
}

func TestPromotion_Capture(t *testing.T) {
	g := mustGame(t, "1r5k/P7/8/8/8/8/8/7K w - - 3 40")
	if mt := mustMove(t, g, "A7", "B8"); mt != Attack {
		t.Fatalf("MovePiece(A7, B8) = %v, want Attack", mt)
	}
	if g.Status.Kind != StatusPromotion {
		t.Fatalf("Status = %v, want Promotion", g.Status)
	}
	testutil.AssertNoError(t, g.Promote(chess.Knight))
	if p := pieceAt(t, g, 1, 7); p.Type != chess.Knight {
		t.Errorf("B8 = %v, want a knight", p)
	}
}

func TestUpdateGame_Checkmate(t *testing.T) {
	g := mustGame(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	mustMove(t, g, "A1", "A8")

	if got := g.UpdateGame(); got != Checkmate(chess.Black) {
		t.Fatalf("UpdateGame() = %v, want Checkmate(Black)", got)
	}
	for _, p := range g.Board.PiecesOf(chess.Black) {
		if moves := LegalMoves(g, p); len(moves) != 0 {
			t.Errorf("LegalMoves(%v) = %v, want none", p, moves)
		}
	}
	if !g.Status.IsTerminal() {
		t.Error("checkmate not terminal")
	}
}

func TestUpdateGame_Idempotent(t *testing.T) {
	g := mustGame(t, "rnb1kbnr/pp1ppppp/8/q1p5/4P3/3P4/PPP2PPP/RNBQKBNR")
	first := g.UpdateGame()
	if first != Check(chess.White) {
		t.Fatalf("UpdateGame() = %v, want Check(White)", first)
	}
	before := *g
	if second := g.UpdateGame(); second != first {
		t.Errorf("second UpdateGame() = %v, want %v", second, first)
	}
	if g.Board != before.Board || g.CurrentMove != before.CurrentMove {
		t.Error("UpdateGame changed the position")
	}
}

func TestUpdateGame_Stalemate(t *testing.T) {
	g := mustGame(t, "k7/2K5/8/8/8/8/8/1Q6 w - - 0 1")
	if got := g.UpdateGame(); got != Active() {
		t.Fatalf("UpdateGame() = %v, want Active", got)
	}
	mustMove(t, g, "B1", "B6")
	if got := g.UpdateGame(); got != Stalemate() {
		t.Errorf("UpdateGame() = %v, want Stalemate", got)
	}
	if !g.Status.IsTerminal() {
		t.Error("stalemate not terminal")
	}
}

func TestUpdateGame_FiftyMoveRule(t *testing.T) {
	g := mustGame(t, "7k/8/8/8/8/8/8/R6K w - - 0 1")
	cycle := [][2]string{{"A1", "A2"}, {"H8", "G8"}, {"A2", "A1"}, {"G8", "H8"}}

	for i := 0; i < int(config.DefaultFiftyMoveLimit); i++ {
		m := cycle[i%len(cycle)]
		mustMove(t, g, m[0], m[1])
		got := g.UpdateGame()
		if i < int(config.DefaultFiftyMoveLimit)-1 && got != Active() {
			t.Fatalf("after half-move %d UpdateGame() = %v, want Active", i+1, got)
		}
	}
	if g.Status != FiftyMoveRule() {
		t.Errorf("Status = %v, want FiftyMoveRule", g.Status)
	}
}

func TestHalfmoveClock_PawnReset(t *testing.T) {
	const fen = "4k3/8/8/8/8/8/4P3/4K3 w - - 5 10"

	g := mustGame(t, fen)
	mustMove(t, g, "E2", "E4")
	if g.HalfmoveClock != 0 {
		t.Errorf("HalfmoveClock = %d, want 0 after a pawn move", g.HalfmoveClock)
	}

	g = mustGame(t, fen, WithRules(config.Rules{FiftyMoveLimit: 50, PawnMoveResetsClock: false}))
	mustMove(t, g, "E2", "E4")
	if g.HalfmoveClock != 6 {
		t.Errorf("HalfmoveClock = %d, want 6 when pawn moves do not reset", g.HalfmoveClock)
	}
}

func TestLegalMoves_NeverLeaveKingInCheck(t *testing.T) {
	fens := []string{
		InitialFEN,
		testutil.KiwipeteFEN,
		testutil.EndgameFEN,
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			g := mustGame(t, fen)
			for _, p := range g.Board.PiecesOf(g.CurrentMove) {
				for _, dest := range LegalMoves(g, p) {
					sim := g.Copy()
					if sim.MovePiece(p.Position, dest) == Invalid {
						t.Fatalf("legal move %v-%v rejected", p.Position, dest)
					}
					if IsColourInCheck(sim, p.Colour) {
						t.Errorf("%v-%v leaves %v in check", p.Position, dest, p.Colour)
					}
					if !sim.Board.Consistent() {
						t.Errorf("%v-%v broke board consistency", p.Position, dest)
					}
				}
			}
		})
	}
}

func TestCopy_IsIndependent(t *testing.T) {
	g := NewInitialGame()
	c := g.Copy()
	mustMove(t, c, "E2", "E4")

	if _, ok := g.PieceAt(chess.MustParsePosition("E2")); !ok {
		t.Error("original lost its E2 pawn")
	}
	if g.CurrentMove != chess.White {
		t.Error("original changed turn")
	}
}

func TestConcurrentAnalysisOfCopies(t *testing.T) {
	g := mustGame(t, testutil.KiwipeteFEN)
	want := len(AllLegalMoves(g, chess.White))

	var wg sync.WaitGroup
	results := make([]int, 8)
	for i := range results {
		wg.Add(1)
		go func(i int, snapshot *Game) {
			defer wg.Done()
			results[i] = len(AllLegalMoves(snapshot, chess.White))
		}(i, g.Copy())
	}
	wg.Wait()

	for i, got := range results {
		if got != want {
			t.Errorf("worker %d saw %d movable pieces, want %d", i, got, want)
		}
	}
}

func TestGame_Logging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	g := MustNewGameFromFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", WithLogger(zap.New(core)))

	g.MovePiece(chess.MustParsePosition("A1"), chess.MustParsePosition("B2"))
	mustMove(t, g, "A1", "A8")
	g.UpdateGame()

	for _, msg := range []string{"move rejected", "move applied", "status changed"} {
		if got := logs.FilterMessage(msg).Len(); got != 1 {
			t.Errorf("%q logged %d times, want 1", msg, got)
		}
	}
	applied := logs.FilterMessage("move applied").All()[0]
	if got := applied.ContextMap()["to"]; got != "A8" {
		t.Errorf("applied move field to = %v, want A8", got)
	}
}

func TestWithLogger_Nil(t *testing.T) {
	g := NewGame(WithLogger(nil))
	g.Place(chess.NewPiece(chess.White, chess.King, chess.Pos(4, 0)))
	g.MovePiece(chess.Pos(4, 0), chess.Pos(4, 1))
}

func TestWithRules_InvalidIgnored(t *testing.T) {
	g := NewGame(WithRules(config.Rules{}))
	testutil.AssertEqual(t, g.Rules(), config.NewRules())
}

func TestZeroValueGame(t *testing.T) {
	var g Game
	g.CurrentMove = chess.White
	g.Place(chess.NewPiece(chess.White, chess.King, chess.Pos(4, 0)))
	g.Place(chess.NewPiece(chess.Black, chess.King, chess.Pos(4, 7)))

	testutil.AssertEqual(t, g.Rules(), config.NewRules())
	testutil.AssertFalse(t, IsFiftyMoveRule(&g), "fifty-move rule on a fresh zero-value game")
	testutil.AssertEqual(t, g.UpdateGame(), Active())

	if got := g.MovePiece(chess.Pos(4, 0), chess.Pos(4, 1)); got != Regular {
		t.Fatalf("MovePiece(E1, E2) = %v, want Regular", got)
	}
	if got := g.MovePiece(chess.Pos(4, 1), chess.Pos(4, 5)); got != Invalid {
		t.Errorf("MovePiece out of turn = %v, want Invalid", got)
	}
	testutil.AssertEqual(t, g.UpdateGame(), Active())

	g.HalfmoveClock = config.DefaultFiftyMoveLimit
	testutil.AssertEqual(t, g.UpdateGame(), FiftyMoveRule())
}
