// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

var (
	// Position and moves
	fenFlag   = flag.String("fen", engine.InitialFEN, "Starting position in FEN (placement-only is accepted)")
	movesFlag = flag.String("moves", "", "Moves to play in coordinate form, e.g. \"e2e4 e7e5 e7e8q\"")

	// Batch analysis
	batchFile  = flag.String("batch", "", "File of FEN positions to analyse, one per line (- for stdin)")
	workers    = flag.Int("workers", 0, "Number of analysis workers (0 = from config)")
	jsonOutput = flag.Bool("json", false, "Write batch results as JSON")
	failFast   = flag.Bool("fail-fast", false, "Stop the batch at the first position that cannot be loaded")

	// Configuration and logging
	configFile     = flag.String("config", "", "YAML configuration file")
	fiftyMoveLimit = flag.Uint("fifty-move-limit", 0, "Half-moves before the fifty-move rule applies (0 = from config)")
	clockReset     = flag.String("clock-reset", "", "What resets the halfmove clock: captures or pawn (overrides config)")
	logLevel   = flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	logFormat  = flag.String("log-format", "", "Log format: console or json (overrides config)")

	// Board display
	colorMode   = flag.String("color", "auto", "Colour the board: auto, always or never")
	coordinates = flag.Bool("coords", false, "Print rank and file labels around the board")

	version = flag.Bool("version", false, "Print version and exit")
	help    = flag.Bool("h", false, "Show help")
)

// loadConfig reads the configuration file, if any, and applies flag overrides.
func loadConfig() (*config.Config, error) {
	base := config.NewConfig()
	if *configFile != "" {
		loaded, err := config.Load(*configFile)
		if err != nil {
			return nil, err
		}
		base = loaded
	}
	b, err := applyFlags(config.NewConfigBuilderFrom(base))
	if err != nil {
		return nil, err
	}
	cfg := b.Build()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags applies command-line overrides to the configuration.
func applyFlags(b *config.ConfigBuilder) (*config.ConfigBuilder, error) {
	if *workers > 0 {
		b.WithWorkers(*workers)
	}
	if *logLevel != "" {
		b.WithLogLevel(*logLevel)
	}
	if *logFormat != "" {
		b.WithLogFormat(*logFormat)
	}
	if *fiftyMoveLimit > 0 {
		b.WithFiftyMoveLimit(uint32(*fiftyMoveLimit))
	}
	switch strings.ToLower(*clockReset) {
	case "":
	case "captures":
		b.WithPawnMoveResetsClock(false)
	case "pawn":
		b.WithPawnMoveResetsClock(true)
	default:
		return nil, fmt.Errorf("unknown -clock-reset value %q", *clockReset)
	}
	return b, nil
}

// resolveColour decides whether to colour output written to w.
func resolveColour(mode string, w io.Writer) (bool, error) {
	switch strings.ToLower(mode) {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("unknown -color mode %q", mode)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play coordinate moves from a position and print the result,\n")
	fmt.Fprintf(os.Stderr, "or analyse a file of positions with -batch.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
