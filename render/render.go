// Package render draws grids and search results as text.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/grid"
)

// PathSet answers path membership by linear cell index.
type PathSet interface {
	Contains(index int) bool
}

// Glyphs are the characters used for each kind of cell.
type Glyphs struct {
	Obstacle rune
	Path     rune
	Empty    rune
}

var DefaultGlyphs = Glyphs{Obstacle: '#', Path: '*', Empty: '.'}

type Option func(*Glyphs)

func WithGlyphs(g Glyphs) Option {
	return func(dst *Glyphs) { *dst = g }
}

// Render writes one line per grid row. path may be nil.
func Render(w io.Writer, g *grid.Grid, path PathSet, options ...Option) error {
	glyphs := DefaultGlyphs
	for _, o := range options {
		o(&glyphs)
	}

	bw := bufio.NewWriter(w)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			i := g.Index(x, y)
			switch {
			case path != nil && path.Contains(i):
				bw.WriteRune(glyphs.Path)
			case g.IsObstacle(i):
				bw.WriteRune(glyphs.Obstacle)
			default:
				bw.WriteRune(glyphs.Empty)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// String is Render into a string.
func String(g *grid.Grid, path PathSet, options ...Option) string {
	var sb strings.Builder
	_ = Render(&sb, g, path, options...)
	return sb.String()
}

// Trace prints every path cell as "x,y" followed by a summary line:
// "length: N" when the goal was reached, "FAIL!   N" otherwise.
func Trace(w io.Writer, res gridpath.Result) error {
	bw := bufio.NewWriter(w)
	for _, c := range res.Path {
		fmt.Fprintln(bw, c)
	}
	if res.Found() {
		fmt.Fprintf(bw, "length: %d\n", res.Steps())
	} else {
		fmt.Fprintf(bw, "FAIL!   %d\n", res.Steps())
	}
	return bw.Flush()
}
