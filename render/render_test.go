package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type indexSet map[int]bool

func (s indexSet) Contains(i int) bool { return s[i] }

func TestRenderMapOnly(t *testing.T) {
	text := ".#..\n..#.\n"
	g, err := grid.Parse(text)
	require.NoError(t, err)

	assert.Equal(t, text, String(g, nil))
}

func TestRenderPathAndGlyphs(t *testing.T) {
	g, err := grid.Parse(".#..\n..#.\n")
	require.NoError(t, err)

	path := indexSet{0: true, 4: true, 5: true}
	assert.Equal(t, "*#..\n**#.\n", String(g, path))
	assert.Equal(t, "o100\noo10\n", String(g, path, WithGlyphs(Glyphs{Obstacle: '1', Path: 'o', Empty: '0'})))
}

func TestRenderSearchResult(t *testing.T) {
	g, err := grid.New(10, 3, make([]bool, 30))
	require.NoError(t, err)
	res, err := gridpath.Search(context.Background(), g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 9, Y: 2})
	require.NoError(t, err)

	out := String(g, res)
	assert.Equal(t, 10, bytes.Count([]byte(out), []byte("*")))
	assert.Equal(t, byte('*'), out[0])
}

func TestTrace(t *testing.T) {
	g, err := grid.Parse("...\n")
	require.NoError(t, err)

	found, err := gridpath.Search(context.Background(), g, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 2, Y: 0})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Trace(&buf, found))
	assert.Equal(t, "0,0\n1,0\n2,0\nlength: 2\n", buf.String())

	blocked, err := grid.Parse(".#.\n")
	require.NoError(t, err)
	failed, err := gridpath.Search(context.Background(), blocked, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 2, Y: 0})
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, Trace(&buf, failed))
	assert.Equal(t, "0,0\nFAIL!   0\n", buf.String())
}
