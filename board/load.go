package board

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gameoflife/model"
	"github.com/sheikhrachel/gameoflife/utils"
)

const (
	checkFieldCount = "expected 3 values per line in input file"
	checkXRange     = "input x-coord out of range"
	checkYRange     = "input y-coord out of range"
	checkAliveValue = "alive value should be 1"
)

// LoadBoard marks the cells listed in the file at path as alive in g
func LoadBoard(path string, g *model.Grid) error {
	f, err := os.Open(path)
	if err != nil {
		return &utils.FatalError{
			Kind:  utils.KindOpen,
			Check: "could not open input file",
			Err:   errors.Wrapf(err, "[LoadBoard] failed to open file: %+v", path),
		}
	}
	defer f.Close()

	return ReadBoard(f, g)
}

// ReadBoard reads "x y 1" lines and marks each (x, y) alive in g.
// Blank lines are skipped; any other line must hold exactly three integers
// with x and y inside the grid and the state equal to 1.
func ReadBoard(r io.Reader, g *model.Grid) error {
	sc := bufio.NewScanner(r)

	for lineNo := 1; sc.Scan(); lineNo++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		x, y, s, err := parseLine(fields, lineNo)
		if err != nil {
			return err
		}

		switch {
		case x < 0 || x >= g.GetWidth():
			return utils.NewFatalError(utils.KindMalformed, checkXRange,
				"line %d: x=%d not in [0, %d)", lineNo, x, g.GetWidth())
		case y < 0 || y >= g.GetHeight():
			return utils.NewFatalError(utils.KindMalformed, checkYRange,
				"line %d: y=%d not in [0, %d)", lineNo, y, g.GetHeight())
		case s != int(model.Alive):
			return utils.NewFatalError(utils.KindMalformed, checkAliveValue,
				"line %d: got %d", lineNo, s)
		}

		g.Set(x, y, model.Alive)
	}

	if err := sc.Err(); err != nil {
		return &utils.FatalError{
			Kind:  utils.KindMalformed,
			Check: "could not read input file",
			Err:   errors.Wrap(err, "[ReadBoard] scan failed"),
		}
	}
	return nil
}

func parseLine(fields []string, lineNo int) (x, y, s int, err error) {
	if len(fields) != 3 {
		return 0, 0, 0, utils.NewFatalError(utils.KindMalformed, checkFieldCount,
			"line %d: got %d values", lineNo, len(fields))
	}

	var values [3]int
	for i, field := range fields {
		if values[i], err = strconv.Atoi(field); err != nil {
			return 0, 0, 0, &utils.FatalError{
				Kind:  utils.KindMalformed,
				Check: checkFieldCount,
				Err:   errors.Wrapf(err, "[ReadBoard] line %d", lineNo),
			}
		}
	}

	return values[0], values[1], values[2], nil
}
