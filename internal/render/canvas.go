package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"flo/internal/geom"
)

// dots maps a micro-pixel inside a cell (row, column) to its braille bit.
var dots = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

type cell struct {
	mask  uint8
	fg    colorful.Color
	bg    colorful.Color
	hasFg bool
	hasBg bool
}

// Canvas is a grid of braille cells, each holding 2x4 micro-pixels. A cell
// carries one foreground colour for its dots and an optional background
// shade.
type Canvas struct {
	w, h  int // in cells
	cells [][]cell
}

func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	cells := make([][]cell, h)
	for i := range cells {
		cells[i] = make([]cell, w)
	}
	return &Canvas{w: w, h: h, cells: cells}
}

// Bounds is the drawable area in micro-pixels. Micro-pixels are roughly
// square on a terminal, so geometry is laid out directly in these units.
func (c *Canvas) Bounds() geom.Rect {
	return geom.R(0, 0, float64(c.w*2), float64(c.h*4))
}

func (c *Canvas) Size() (w, h int) { return c.w, c.h }

func (c *Canvas) at(mx, my int) (*cell, uint8, bool) {
	if mx < 0 || my < 0 {
		return nil, 0, false
	}
	cx, cy := mx/2, my/4
	if cx >= c.w || cy >= c.h {
		return nil, 0, false
	}
	return &c.cells[cy][cx], dots[my%4][mx%2], true
}

// Set raises the dot at micro coords and colours its cell.
func (c *Canvas) Set(mx, my int, col colorful.Color) {
	cl, bit, ok := c.at(mx, my)
	if !ok {
		return
	}
	cl.mask |= bit
	cl.fg, cl.hasFg = col, true
}

// Shade paints the background of the cell holding micro coords.
func (c *Canvas) Shade(mx, my int, col colorful.Color) {
	cl, _, ok := c.at(mx, my)
	if !ok {
		return
	}
	cl.bg, cl.hasBg = col, true
}

// Mask returns the raised dots of a cell.
func (c *Canvas) Mask(cx, cy int) uint8 {
	if cx < 0 || cy < 0 || cx >= c.w || cy >= c.h {
		return 0
	}
	return c.cells[cy][cx].mask
}

// Background returns the shade of a cell and whether one was painted.
func (c *Canvas) Background(cx, cy int) (colorful.Color, bool) {
	if cx < 0 || cy < 0 || cx >= c.w || cy >= c.h {
		return colorful.Color{}, false
	}
	cl := c.cells[cy][cx]
	return cl.bg, cl.hasBg
}

// Line draws a one dot wide line on the microgrid using Bresenham.
func (c *Canvas) Line(x0, y0, x1, y1 int, col colorful.Color) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Lines returns the plain braille rows without colour.
func (c *Canvas) Lines() []string {
	out := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		row := make([]rune, c.w)
		for x := 0; x < c.w; x++ {
			row[x] = glyph(c.cells[y][x].mask)
		}
		out[y] = string(row)
	}
	return out
}

// String renders the canvas with colours. Neighbouring cells sharing the
// same colours are styled as one run.
func (c *Canvas) String() string {
	out := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		var b strings.Builder
		row := c.cells[y]
		for x := 0; x < c.w; {
			end := x + 1
			for end < c.w && sameStyle(row[x], row[end]) {
				end++
			}
			run := make([]rune, 0, end-x)
			for _, cl := range row[x:end] {
				run = append(run, glyph(cl.mask))
			}
			b.WriteString(styleFor(row[x]).Render(string(run)))
			x = end
		}
		out[y] = b.String()
	}
	return strings.Join(out, "\n")
}

func glyph(mask uint8) rune {
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}

func sameStyle(a, b cell) bool {
	fgA, fgB := a.hasFg && a.mask != 0, b.hasFg && b.mask != 0
	if fgA != fgB || a.hasBg != b.hasBg {
		return false
	}
	if fgA && a.fg != b.fg {
		return false
	}
	return !a.hasBg || a.bg == b.bg
}

func styleFor(cl cell) lipgloss.Style {
	s := lipgloss.NewStyle()
	if cl.hasFg && cl.mask != 0 {
		s = s.Foreground(lipgloss.Color(cl.fg.Clamped().Hex()))
	}
	if cl.hasBg {
		s = s.Background(lipgloss.Color(cl.bg.Clamped().Hex()))
	}
	return s
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
