package worker

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Analyse returns a ProcessFunc that loads each FEN into a fresh game,
// refreshes its status and counts the legal moves of the side to move.
func Analyse(opts ...engine.Option) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		res := ProcessResult{Index: item.Index, FEN: item.FEN}
		g, err := engine.NewGameFromFEN(item.FEN, opts...)
		if err != nil {
			res.Error = err
			return res
		}
		res.Game = g
		res.Status = g.UpdateGame()
		res.LegalMoves = countLegalMoves(g, g.CurrentMove)
		return res
	}
}

func countLegalMoves(g *engine.Game, colour chess.Colour) int {
	n := 0
	for _, dests := range engine.AllLegalMoves(g, colour) {
		n += len(dests)
	}
	return n
}

// AnalyseAll analyses fens on a pool and returns the results in input order.
// A pool stopped by WithStopOnError returns only the results produced
// before it stopped.
func AnalyseAll(fens []string, process ProcessFunc, opts ...PoolOption) []ProcessResult {
	pool := NewPool(process, opts...)
	pool.Start()

	go func() {
		for i, fen := range fens {
			if pool.IsStopped() {
				break
			}
			pool.Submit(WorkItem{Index: i, FEN: fen})
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(fens))
	for r := range pool.Results() {
		results = append(results, r)
	}
	slices.SortFunc(results, func(a, b ProcessResult) bool { return a.Index < b.Index })
	return results
}
