// Package board reads and writes the text resources a run works from: the
// grid dimensions and the sparse lists of live cells.
package board

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gameoflife/utils"
)

// MaxCells caps width*height so both buffers of a run fit in memory
const MaxCells = 1 << 26

// Params are the grid dimensions
type Params struct {
	Width  int
	Height int
}

// LoadParams reads the dimensions from the params file at path
func LoadParams(path string) (Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return Params{}, &utils.FatalError{
			Kind:  utils.KindOpen,
			Check: "could not open params file",
			Err:   errors.Wrapf(err, "[LoadParams] failed to open file: %+v", path),
		}
	}
	defer f.Close()

	return ReadParams(f)
}

// ReadParams reads two whitespace-separated positive integers, nx then ny,
// whose product is at most MaxCells. Anything after ny is ignored.
func ReadParams(r io.Reader) (Params, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	width, err := readDimension(sc, "nx")
	if err != nil {
		return Params{}, err
	}
	height, err := readDimension(sc, "ny")
	if err != nil {
		return Params{}, err
	}
	if width > MaxCells/height {
		return Params{}, utils.NewFatalError(utils.KindMalformed, "could not read params file: ny",
			"%dx%d board exceeds %d cells", width, height, MaxCells)
	}

	return Params{Width: width, Height: height}, nil
}

func readDimension(sc *bufio.Scanner, name string) (int, error) {
	check := "could not read params file: " + name

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, &utils.FatalError{
				Kind:  utils.KindMalformed,
				Check: check,
				Err:   errors.Wrap(err, "[ReadParams] scan failed"),
			}
		}
		return 0, utils.NewFatalError(utils.KindMalformed, check, "missing value")
	}

	n, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, &utils.FatalError{
			Kind:  utils.KindMalformed,
			Check: check,
			Err:   errors.Wrapf(err, "[ReadParams] invalid %s", name),
		}
	}
	if n <= 0 {
		return 0, utils.NewFatalError(utils.KindMalformed, check, "%s must be positive, got %d", name, n)
	}

	return n, nil
}
