package model

import (
	"math/rand"
	"testing"
)

func gridWith(w, h int, alive ...Cell) *Grid {
	g := NewGrid(w, h)
	for _, c := range alive {
		g.Set(c.X, c.Y, Alive)
	}
	return g
}

func randomGrid(w, h int, seed int64) *Grid {
	rng := rand.New(rand.NewSource(seed))
	g := NewGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.Intn(3) == 0 {
				g.Set(x, y, Alive)
			}
		}
	}
	return g
}

func assertAlive(t *testing.T, g *Grid, expects map[[2]int]bool) {
	t.Helper()
	for y := 0; y < g.GetHeight(); y++ {
		for x := 0; x < g.GetWidth(); x++ {
			alive := g.Get(x, y) == Alive
			if expects[[2]int{x, y}] != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, !alive)
			}
		}
	}
}

func assertEqualGrids(t *testing.T, got, want *Grid) {
	t.Helper()
	if !got.SameSize(want) {
		t.Fatalf("size %dx%d, expected %dx%d", got.GetWidth(), got.GetHeight(), want.GetWidth(), want.GetHeight())
	}
	for y := 0; y < want.GetHeight(); y++ {
		for x := 0; x < want.GetWidth(); x++ {
			if got.Get(x, y) != want.Get(x, y) {
				t.Fatalf("cell (%d,%d) is %v, expected %v", x, y, got.Get(x, y), want.Get(x, y))
			}
		}
	}
}
