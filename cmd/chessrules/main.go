// chessrules plays moves under the chess rules and reports the resulting
// position, or analyses a batch of positions in parallel.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/logging"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command using the parsed flags and returns the exit status.
func run(stdin io.Reader, stdout, stderr io.Writer) int {
	if *version {
		fmt.Fprintf(stdout, "chessrules version %s\n", programVersion)
		return 0
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	logger, err := logging.New(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	defer logger.Sync() //nolint:errcheck // nothing useful to do on failure

	logger = logger.With(zap.String("session", uuid.NewString()))
	opts := []engine.Option{engine.WithRules(cfg.Rules), engine.WithLogger(logger)}

	if *batchFile != "" {
		in, err := openBatch(*batchFile, stdin)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 2
		}
		defer in.Close()

		var w output.ReportWriter = output.NewTextWriter(stdout)
		if *jsonOutput {
			w = output.NewJSONWriter(stdout)
		}
		failed, err := runBatch(cfg, opts, in, w, logger)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 2
		}
		if failed > 0 {
			return 1
		}
		return 0
	}

	return runPlay(opts, stdout, stderr, logger)
}

func runPlay(opts []engine.Option, stdout, stderr io.Writer, logger *zap.Logger) int {
	colour, err := resolveColour(*colorMode, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	g, err := engine.NewGameFromFEN(*fenFlag, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	g.UpdateGame()

	status := 0
	if err := playMoves(g, splitMoves(*movesFlag)); err != nil {
		logger.Warn("move sequence stopped", zap.Error(err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		status = 1
	}

	renderer := output.NewBoardRenderer(stdout, output.WithColour(colour), output.WithCoordinates(*coordinates))
	if err := renderer.Render(&g.Board); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if err := output.WriteStatus(stdout, g); err != nil {
		return 2
	}
	fmt.Fprintln(stdout, g.FEN())
	return status
}
