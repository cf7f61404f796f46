package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// WriteStatus writes the side to move and the derived status of g, e.g.
// "White to move: Check(White)".
func WriteStatus(w io.Writer, g *engine.Game) error {
	_, err := fmt.Fprintf(w, "%v to move: %v\n", g.CurrentMove, g.Status)
	return err
}
