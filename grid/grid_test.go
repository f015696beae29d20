package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsDeterministic(t *testing.T) {
	a, err := Generate(40, 25, 42)
	require.NoError(t, err)
	b, err := Generate(40, 25, 42)
	require.NoError(t, err)

	assert.Equal(t, a.Occupancy(), b.Occupancy())

	c := MustGenerate(40, 25, 43)
	assert.NotEqual(t, a.Occupancy(), c.Occupancy(), "different seeds should give different maps")
}

func TestGenerateObstacleRatio(t *testing.T) {
	g := MustGenerate(200, 200, 7)
	blocked := g.Len() - len(g.OpenCells())
	ratio := float64(blocked) / float64(g.Len())
	assert.InDelta(t, 1.0/3.0, ratio, 0.02)
}

func TestInvalidDimensions(t *testing.T) {
	for _, tc := range []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 3},
		{"zero height", 3, 0},
		{"negative", -1, 5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Generate(tc.width, tc.height, 1)
			assert.ErrorIs(t, err, ErrInvalidDimensions)
			_, err = New(tc.width, tc.height, nil)
			assert.ErrorIs(t, err, ErrInvalidDimensions)
		})
	}
	assert.Panics(t, func() { MustGenerate(0, 0, 1) })
}

func TestNewCopiesOccupancy(t *testing.T) {
	occ := []bool{false, true, false, false}
	g, err := New(2, 2, occ)
	require.NoError(t, err)

	occ[0] = true
	assert.True(t, g.IsOpen(0), "grid must not alias caller data")

	out := g.Occupancy()
	out[3] = true
	assert.True(t, g.IsOpen(3), "Occupancy must return a copy")

	_, err = New(2, 2, []bool{true})
	assert.ErrorIs(t, err, ErrOccupancyMismatch)
}

func TestIndexAndBounds(t *testing.T) {
	g := MustGenerate(10, 3, 1)

	seen := make(map[int]bool)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			i := g.Index(x, y)
			assert.False(t, seen[i], "index %d reused", i)
			seen[i] = true
			cx, cy := g.Coords(i)
			assert.Equal(t, x, cx)
			assert.Equal(t, y, cy)
		}
	}
	assert.Len(t, seen, 30)
	assert.Equal(t, 29, g.Index(9, 2))

	assert.True(t, g.InBounds(0, 0))
	assert.True(t, g.InBounds(9, 2))
	assert.False(t, g.InBounds(-1, 0))
	assert.False(t, g.InBounds(0, -1))
	assert.False(t, g.InBounds(10, 0))
	assert.False(t, g.InBounds(0, 3))
	assert.False(t, g.OpenAt(10, 0))
	assert.Panics(t, func() { g.Index(10, 0) })
}

func TestParse(t *testing.T) {
	g, err := Parse(`
.#.
...
`)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.True(t, g.IsObstacle(g.Index(1, 0)))
	assert.True(t, g.OpenAt(1, 1))
	assert.Equal(t, []int{0, 2, 3, 4, 5}, g.OpenCells())

	_, err = Parse("..\n.")
	assert.ErrorIs(t, err, ErrRaggedRows)

	_, err = Parse(".x")
	assert.ErrorIs(t, err, ErrUnknownGlyph)

	_, err = Parse("")
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "9,2", Cell{X: 9, Y: 2}.String())
}
