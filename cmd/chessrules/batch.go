package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// readFENs reads one position per line, skipping blank lines and lines
// starting with '#'.
func readFENs(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	return fens, scanner.Err()
}

func openBatch(name string, stdin io.Reader) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(stdin), nil
	}
	return os.Open(name) //nolint:gosec // G304: path comes from the command line
}

// runBatch analyses every position in the batch file and writes one report
// per position in input order. It returns the number of positions that
// could not be loaded. With -fail-fast the batch stops at the first one.
func runBatch(cfg *config.Config, opts []engine.Option, in io.Reader, w output.ReportWriter, logger *zap.Logger) (int, error) {
	fens, err := readFENs(in)
	if err != nil {
		return 0, err
	}

	results := worker.AnalyseAll(fens, worker.Analyse(opts...),
		worker.WithWorkers(cfg.Workers),
		worker.WithStopOnError(*failFast),
	)

	failed := 0
	for _, r := range results {
		if err := w.WriteReport(toReport(r)); err != nil {
			return failed, err
		}
		if r.Error != nil {
			failed++
			logger.Warn("position rejected", zap.Int("index", r.Index), zap.Error(r.Error))
		}
	}
	if err := w.Close(); err != nil {
		return failed, err
	}

	logger.Info("batch complete",
		zap.Int("positions", len(fens)),
		zap.Int("analysed", len(results)),
		zap.Int("errors", failed),
		zap.Int("workers", cfg.Workers),
	)
	return failed, nil
}

func toReport(r worker.ProcessResult) output.Report {
	rep := output.Report{Index: r.Index, FEN: r.FEN}
	if r.Error != nil {
		rep.Error = r.Error.Error()
		return rep
	}
	rep.ToMove = r.Game.CurrentMove.String()
	rep.Status = r.Status.String()
	rep.LegalMoves = r.LegalMoves
	rep.Board = output.RenderString(&r.Game.Board)
	return rep
}
