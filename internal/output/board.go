// Package output renders positions and analysis results for people and
// for other programs.
package output

import (
	"bufio"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// BoardRenderer prints a board rank by rank from rank 8 down to rank 1,
// one letter per square followed by a space: upper case for White, lower
// case for Black and '_' for an empty square.
type BoardRenderer struct {
	w           io.Writer
	coordinates bool
	white       *color.Color
	black       *color.Color
	empty       *color.Color
	label       *color.Color
}

// RendererOption configures a BoardRenderer.
type RendererOption func(*BoardRenderer)

// WithColour turns ANSI colouring of pieces on or off. It is off by default.
func WithColour(enabled bool) RendererOption {
	return func(r *BoardRenderer) {
		for _, c := range []*color.Color{r.white, r.black, r.empty, r.label} {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// WithCoordinates adds rank numbers on the left and file letters below.
func WithCoordinates(enabled bool) RendererOption {
	return func(r *BoardRenderer) {
		r.coordinates = enabled
	}
}

// NewBoardRenderer creates a renderer writing to w.
func NewBoardRenderer(w io.Writer, opts ...RendererOption) *BoardRenderer {
	r := &BoardRenderer{
		w:     w,
		white: color.New(color.FgHiWhite, color.Bold),
		black: color.New(color.FgRed, color.Bold),
		empty: color.New(color.FgHiBlack),
		label: color.New(color.FgCyan),
	}
	WithColour(false)(r)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes the board.
func (r *BoardRenderer) Render(board *chess.Board) error {
	bw := bufio.NewWriter(r.w)
	for y := chess.BoardSize - 1; y >= 0; y-- {
		if r.coordinates {
			r.label.Fprintf(bw, "%d ", y+1)
		}
		for x := 0; x < chess.BoardSize; x++ {
			p, ok := board.Get(chess.Pos(x, y))
			switch {
			case !ok:
				r.empty.Fprint(bw, "_")
			case p.Colour == chess.White:
				r.white.Fprintf(bw, "%c", p.Letter())
			default:
				r.black.Fprintf(bw, "%c", p.Letter())
			}
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}
	if r.coordinates {
		r.label.Fprint(bw, "  a b c d e f g h")
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// RenderString returns the board as it would be rendered without colour.
func RenderString(board *chess.Board) string {
	var sb strings.Builder
	NewBoardRenderer(&sb).Render(board) //nolint:errcheck // writes to memory
	return sb.String()
}
