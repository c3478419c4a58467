package model

// BufferPair holds the two equally sized grids of a double-buffered run.
// Current is read by the kernel, Next is written, and Swap exchanges their
// roles once a generation is complete.
type BufferPair struct {
	tick *Grid
	tock *Grid
}

// NewBufferPair allocates two all-dead grids of the given size
func NewBufferPair(width, height int) *BufferPair {
	return &BufferPair{
		tick: NewGrid(width, height),
		tock: NewGrid(width, height),
	}
}

// Current returns the grid holding the latest generation
func (b *BufferPair) Current() *Grid {
	return b.tick
}

// Next returns the grid the following generation is written into
func (b *BufferPair) Next() *Grid {
	return b.tock
}

// Swap makes the next grid current
func (b *BufferPair) Swap() {
	b.tick, b.tock = b.tock, b.tick
}

// Advance computes one generation into the next grid and swaps.
// workers > 1 (or <= 0 for one per CPU) uses the row-parallel kernel.
// On error the buffers are not swapped.
func (b *BufferPair) Advance(workers int) error {
	if workers == 1 {
		b.tick.NextGeneration(b.tock)
	} else if err := b.tick.NextGenerationParallel(b.tock, workers); err != nil {
		return err
	}
	b.Swap()
	return nil
}
