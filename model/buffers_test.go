package model

import "testing"

func TestBufferPairSwap(t *testing.T) {
	pair := NewBufferPair(3, 2)
	tick, tock := pair.Current(), pair.Next()
	if tick == tock {
		t.Fatal("buffers must be distinct")
	}

	pair.Swap()
	if pair.Current() != tock || pair.Next() != tick {
		t.Fatal("Swap did not exchange buffers")
	}
}

func TestBufferPairAdvance(t *testing.T) {
	for _, workers := range []int{1, 4} {
		pair := NewBufferPair(5, 5)
		for _, c := range []Cell{{1, 2}, {2, 2}, {3, 2}} {
			pair.Current().Set(c.X, c.Y, Alive)
		}

		if err := pair.Advance(workers); err != nil {
			t.Fatal(err)
		}
		assertAlive(t, pair.Current(), map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true})

		if err := pair.Advance(workers); err != nil {
			t.Fatal(err)
		}
		assertAlive(t, pair.Current(), map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true})
	}
}
