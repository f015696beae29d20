package gridpath

import "github.com/pdrpinto/gridpath/grid"

// offset is one of the eight moves out of a cell.
type offset struct {
	dx, dy   int
	diagonal bool
}

var neighborOffsets = [8]offset{
	{dx: 1, dy: 0},
	{dx: 1, dy: -1, diagonal: true},
	{dx: 0, dy: -1},
	{dx: -1, dy: -1, diagonal: true},
	{dx: -1, dy: 0},
	{dx: -1, dy: 1, diagonal: true},
	{dx: 0, dy: 1},
	{dx: 1, dy: 1, diagonal: true},
}

func (c Config) stepCost(o offset) int {
	if o.diagonal {
		return c.DiagonalCost
	}
	return c.OrthogonalCost
}

// octile is the cost of the cheapest obstacle-free route between two cells.
func (c Config) octile(from, to grid.Cell) int {
	dx, dy := abs(from.X-to.X), abs(from.Y-to.Y)
	diagonalSteps, straightSteps := min(dx, dy), abs(dx-dy)
	return diagonalSteps*c.DiagonalCost + straightSteps*c.OrthogonalCost
}

// heuristic is the octile distance plus ObstacleSurcharge per remaining move.
func (c Config) heuristic(from, to grid.Cell) int {
	moves := max(abs(from.X-to.X), abs(from.Y-to.Y))
	return c.octile(from, to) + moves*c.ObstacleSurcharge
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
