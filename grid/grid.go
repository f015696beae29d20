// Package grid provides an immutable 2-D occupancy field for path searches.
package grid

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

var (
	ErrInvalidDimensions = errors.New("grid: width and height must be positive")
	ErrOccupancyMismatch = errors.New("grid: occupancy length does not match width*height")
	ErrRaggedRows        = errors.New("grid: rows have different lengths")
	ErrUnknownGlyph      = errors.New("grid: unknown glyph")
)

const (
	ObstacleGlyph = '#'
	OpenGlyph     = '.'
)

// Cell is a coordinate on the grid.
type Cell struct {
	X, Y int
}

func (c Cell) String() string { return fmt.Sprintf("%d,%d", c.X, c.Y) }

// Grid is safe to share between goroutines: nothing mutates it after construction.
type Grid struct {
	width     int
	height    int
	obstacles []bool
}

// New builds a grid from external occupancy data, where true marks an obstacle.
// The slice is copied.
func New(width, height int, occupancy []bool) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(occupancy) != width*height {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrOccupancyMismatch, len(occupancy), width*height)
	}
	obstacles := make([]bool, len(occupancy))
	copy(obstacles, occupancy)
	return &Grid{width: width, height: height, obstacles: obstacles}, nil
}

// Generate fills a width x height grid where every cell becomes an obstacle
// with probability 1/3. The result is a pure function of its arguments.
func Generate(width, height int, seed uint64) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	obstacles := make([]bool, width*height)
	for i := range obstacles {
		obstacles[i] = rng.Uint32()%3 == 0
	}
	return &Grid{width: width, height: height, obstacles: obstacles}, nil
}

// MustGenerate is like Generate but panics on invalid dimensions.
func MustGenerate(width, height int, seed uint64) *Grid {
	g, err := Generate(width, height, seed)
	if err != nil {
		panic(err)
	}
	return g
}

// Parse reads rows of '#' (obstacle) and '.' (open). Leading and trailing
// blank lines are ignored.
func Parse(text string) (*Grid, error) {
	rows := strings.Split(strings.Trim(text, "\r\n"), "\n")
	width := 0
	occupancy := make([]bool, 0, len(text))
	for y, row := range rows {
		row = strings.TrimRight(row, "\r")
		if y == 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, y, len(row), width)
		}
		for x, r := range row {
			switch r {
			case ObstacleGlyph:
				occupancy = append(occupancy, true)
			case OpenGlyph:
				occupancy = append(occupancy, false)
			default:
				return nil, fmt.Errorf("%w: %q at %d,%d", ErrUnknownGlyph, r, x, y)
			}
		}
	}
	return New(width, len(rows), occupancy)
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Len is the number of cells.
func (g *Grid) Len() int { return len(g.obstacles) }

// Index maps a coordinate to its linear index. Callers must check InBounds first.
func (g *Grid) Index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid: coordinate %d,%d out of range %dx%d", x, y, g.width, g.height))
	}
	return y*g.width + x
}

// Coords is the inverse of Index.
func (g *Grid) Coords(index int) (x, y int) {
	return index % g.width, index / g.width
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *Grid) IsOpen(index int) bool     { return !g.obstacles[index] }
func (g *Grid) IsObstacle(index int) bool { return g.obstacles[index] }

// OpenAt reports whether x,y is inside the grid and not an obstacle.
func (g *Grid) OpenAt(x, y int) bool {
	return g.InBounds(x, y) && !g.obstacles[y*g.width+x]
}

// Contains reports whether the cell lies inside the grid.
func (g *Grid) Contains(c Cell) bool { return g.InBounds(c.X, c.Y) }

// Occupancy returns a copy of the obstacle flags in row-major order.
func (g *Grid) Occupancy() []bool {
	out := make([]bool, len(g.obstacles))
	copy(out, g.obstacles)
	return out
}

// OpenCells lists the indices of every open cell in ascending order.
func (g *Grid) OpenCells() []int {
	out := make([]int, 0, len(g.obstacles))
	for i, blocked := range g.obstacles {
		if !blocked {
			out = append(out, i)
		}
	}
	return out
}
