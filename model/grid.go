package model

import (
	"fmt"
	"math"
)

// CellState is the state of a single cell
type CellState uint8

const (
	Dead  CellState = 0
	Alive CellState = 1
)

func (s CellState) String() string {
	switch s {
	case Dead:
		return "dead"
	case Alive:
		return "alive"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Cell is a column/row coordinate on the grid
type Cell struct {
	X, Y int
}

// Grid is a fixed-size toroidal board stored row-major in a flat slice.
// The cell at column x, row y lives at offset y*width + x.
type Grid struct {
	width  int
	height int
	cells  []CellState
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 || width > math.MaxInt/height {
		panic(fmt.Sprintf("model: invalid grid dimensions %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]CellState, width*height),
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Index returns the flat offset of (x, y)
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// InBounds reports whether (x, y) addresses a cell of the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Clear sets every cell to dead
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
}

// Set sets the state of a cell. Coordinates outside the grid are ignored.
func (g *Grid) Set(x, y int, state CellState) {
	if g.InBounds(x, y) {
		g.cells[g.Index(x, y)] = state
	}
}

// Get returns the state of a cell, dead for coordinates outside the grid
func (g *Grid) Get(x, y int) CellState {
	if !g.InBounds(x, y) {
		return Dead
	}
	return g.cells[g.Index(x, y)]
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		if c == Alive {
			count++
		}
	}
	return
}

// LiveCells returns the coordinates of every living cell in row-major order
func (g *Grid) LiveCells() []Cell {
	cells := make([]Cell, 0)
	for y := range g.height {
		for x := range g.width {
			if g.cells[g.Index(x, y)] == Alive {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// SameSize reports whether both grids have identical dimensions
func (g *Grid) SameSize(other *Grid) bool {
	return g.width == other.width && g.height == other.height
}
