package model

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

const (
	gridPosAlive = 'O'
	gridPosDead  = '.'
)

// TerminalRenderer prints grids as text, one line per row
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{Out: out}
}

// Display renders the grid under a header line
func (r *TerminalRenderer) Display(header string, g *Grid) error {
	w := bufio.NewWriter(r.Out)
	w.WriteString(header)
	w.WriteByte('\n')
	for y := range g.height {
		for x := range g.width {
			if g.cells[g.Index(x, y)] == Alive {
				w.WriteByte(gridPosAlive)
			} else {
				w.WriteByte(gridPosDead)
			}
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "[Display] failed to render %q", header)
	}
	return nil
}
