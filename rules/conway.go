package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A live cell survives with two or three live neighbours, a dead cell is born with
exactly three, and every other cell is dead in the next generation.
*/
func ApplyConwayRules(neighbours int, alive bool) bool {
	return (alive && neighbours == 2) || neighbours == 3
}
