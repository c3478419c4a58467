package model

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gameoflife/rules"
)

// NextGeneration writes the generation following g into next.
// next must be a distinct grid of the same size; every cell of next is
// overwritten and g is only read.
func (g *Grid) NextGeneration(next *Grid) {
	g.checkTarget(next)
	g.stepRows(next, 0, g.height)
}

// NextGenerationParallel computes the same result as NextGeneration, splitting
// the rows into contiguous bands processed by up to workers goroutines.
// workers <= 0 uses one worker per CPU.
func (g *Grid) NextGenerationParallel(next *Grid, workers int) error {
	g.checkTarget(next)

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, g.height)

	var (
		eg            errgroup.Group
		rowsPerWorker = (g.height + workers - 1) / workers // Ceiling division
	)
	eg.SetLimit(workers)

	for startRow := 0; startRow < g.height; startRow += rowsPerWorker {
		endRow := min(startRow+rowsPerWorker, g.height)
		eg.Go(func() error {
			g.stepRows(next, startRow, endRow)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return errors.Wrapf(err, "[NextGenerationParallel] failed with %d workers", workers)
	}
	return nil
}

// stepRows applies the rules to rows [startRow, endRow) of g, writing into next.
// Rows wrap using the height and columns wrap using the width.
func (g *Grid) stepRows(next *Grid, startRow, endRow int) {
	w, h := g.width, g.height

	for i := startRow; i < endRow; i++ {
		up := (i + 1) % h
		down := i - 1
		if i == 0 {
			down = h - 1
		}

		for j := range w {
			right := (j + 1) % w
			left := j - 1
			if j == 0 {
				left = w - 1
			}

			neighbours := g.alive(i, left) + g.alive(up, left) + g.alive(down, left) +
				g.alive(i, right) + g.alive(up, right) + g.alive(down, right) +
				g.alive(up, j) + g.alive(down, j)

			idx := i*w + j
			if rules.ApplyConwayRules(neighbours, g.cells[idx] == Alive) {
				next.cells[idx] = Alive
			} else {
				next.cells[idx] = Dead
			}
		}
	}
}

func (g *Grid) alive(row, col int) int {
	if g.cells[row*g.width+col] == Alive {
		return 1
	}
	return 0
}

func (g *Grid) checkTarget(next *Grid) {
	if next == g {
		panic("model: next generation cannot be written into its own input")
	}
	if !g.SameSize(next) {
		panic(fmt.Sprintf("model: grid size mismatch %dx%d -> %dx%d",
			g.width, g.height, next.width, next.height))
	}
}
