package board

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gameoflife/model"
	"github.com/sheikhrachel/gameoflife/utils"
)

// SaveBoard writes the live cells of g to path, replacing any existing file
func SaveBoard(path string, g *model.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return &utils.FatalError{
			Kind:  utils.KindOpen,
			Check: "could not open final state file",
			Err:   errors.Wrapf(err, "[SaveBoard] failed to create file: %+v", path),
		}
	}

	if err = WriteBoard(f, g); err != nil {
		f.Close()
		return err
	}

	if err = f.Close(); err != nil {
		return &utils.FatalError{
			Kind:  utils.KindWrite,
			Check: "could not write final state file",
			Err:   errors.Wrapf(err, "[SaveBoard] failed to close file: %+v", path),
		}
	}
	return nil
}

// WriteBoard writes one "x y 1" line per live cell, scanning row-major
func WriteBoard(w io.Writer, g *model.Grid) error {
	bw := bufio.NewWriter(w)
	for _, c := range g.LiveCells() {
		fmt.Fprintf(bw, "%d %d %d\n", c.X, c.Y, int(model.Alive))
	}

	if err := bw.Flush(); err != nil {
		return &utils.FatalError{
			Kind:  utils.KindWrite,
			Check: "could not write final state file",
			Err:   errors.Wrap(err, "[WriteBoard] flush failed"),
		}
	}
	return nil
}
