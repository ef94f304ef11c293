package render

import (
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"

	"flo/internal/geom"
)

// Paint picks the colour of the micro-pixel centred at p.
type Paint func(p geom.Point) colorful.Color

// Solid paints every pixel with one colour.
func Solid(c colorful.Color) Paint {
	return func(geom.Point) colorful.Color { return c }
}

// Gradient blends from one colour to another along the gradient axis.
func Gradient(g geom.LinearGradient, from, to colorful.Color) Paint {
	return func(p geom.Point) colorful.Color { return from.BlendRgb(to, g.At(p)) }
}

// flattenStep is the longest chord, in micro-pixels, used for arcs.
const flattenStep = 0.5

// scan visits every micro-pixel whose centre lies inside the path using
// the even-odd rule. Open subpaths are closed implicitly.
func (c *Canvas) scan(p geom.Path, visit func(mx, my int)) {
	var edges [][2]geom.Point
	for _, pl := range p.Flatten(flattenStep) {
		n := len(pl.Points)
		if n < 3 {
			continue
		}
		for i := 0; i < n; i++ {
			edges = append(edges, [2]geom.Point{pl.Points[i], pl.Points[(i+1)%n]})
		}
	}
	if len(edges) == 0 {
		return
	}
	bb, ok := p.Bounds()
	if !ok {
		return
	}
	_, h := c.Size()
	y0 := max(0, int(math.Floor(bb.MinY)))
	y1 := min(h*4-1, int(math.Ceil(bb.MaxY)))
	var xs []float64
	for my := y0; my <= y1; my++ {
		yc := float64(my) + 0.5
		xs = xs[:0]
		for _, e := range edges {
			a, b := e[0], e[1]
			if a.Y == b.Y { // horizontal edge: skip
				continue
			}
			if (yc >= a.Y && yc < b.Y) || (yc >= b.Y && yc < a.Y) {
				t := (yc - a.Y) / (b.Y - a.Y)
				xs = append(xs, a.X+t*(b.X-a.X))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			start := int(math.Ceil(xs[i] - 0.5))
			end := int(math.Floor(xs[i+1] - 0.5))
			for mx := max(0, start); mx <= end; mx++ {
				visit(mx, my)
			}
		}
	}
}

// FillPath raises every dot inside the path.
func (c *Canvas) FillPath(p geom.Path, paint Paint) {
	c.scan(p, func(mx, my int) {
		c.Set(mx, my, paint(center(mx, my)))
	})
}

// ShadePath paints the background of every cell touched by the path.
func (c *Canvas) ShadePath(p geom.Path, paint Paint) {
	c.scan(p, func(mx, my int) {
		c.Shade(mx, my, paint(center(mx, my)))
	})
}

// StrokePath outlines every subpath with lines of the given width.
func (c *Canvas) StrokePath(p geom.Path, width float64, col colorful.Color) {
	for _, pl := range p.Flatten(flattenStep) {
		pts := pl.Points
		for i := 0; i+1 < len(pts); i++ {
			c.Stroke(geom.Segment{A: pts[i], B: pts[i+1]}, width, col)
		}
		if pl.Closed && len(pts) > 2 {
			c.Stroke(geom.Segment{A: pts[len(pts)-1], B: pts[0]}, width, col)
		}
	}
}

// Stroke draws a segment with round caps. Hairlines fall back to a plain
// Bresenham line.
func (c *Canvas) Stroke(s geom.Segment, width float64, col colorful.Color) {
	if width <= 1.5 {
		c.Line(pixel(s.A.X), pixel(s.A.Y), pixel(s.B.X), pixel(s.B.Y), col)
		return
	}
	r := width / 2
	if l := s.Length(); l > 0 {
		nx, ny := -(s.B.Y-s.A.Y)/l*r, (s.B.X-s.A.X)/l*r
		var quad geom.Path
		quad.MoveTo(geom.Pt(s.A.X+nx, s.A.Y+ny))
		quad.LineTo(geom.Pt(s.B.X+nx, s.B.Y+ny))
		quad.LineTo(geom.Pt(s.B.X-nx, s.B.Y-ny))
		quad.LineTo(geom.Pt(s.A.X-nx, s.A.Y-ny))
		quad.Close()
		c.FillPath(quad, Solid(col))
	}
	c.FillCircle(geom.Circle{Center: s.A, Radius: r}, Solid(col))
	c.FillCircle(geom.Circle{Center: s.B, Radius: r}, Solid(col))
}

// FillCircle raises the dots whose centres lie within the circle. A circle
// smaller than a dot still marks the dot under its centre.
func (c *Canvas) FillCircle(circle geom.Circle, paint Paint) {
	cx, cy, r := circle.Center.X, circle.Center.Y, circle.Radius
	if r < 0.75 {
		mx, my := int(math.Floor(cx)), int(math.Floor(cy))
		c.Set(mx, my, paint(center(mx, my)))
		return
	}
	for my := int(math.Floor(cy - r)); my <= int(math.Ceil(cy+r)); my++ {
		for mx := int(math.Floor(cx - r)); mx <= int(math.Ceil(cx+r)); mx++ {
			p := center(mx, my)
			if math.Hypot(p.X-cx, p.Y-cy) <= r {
				c.Set(mx, my, paint(p))
			}
		}
	}
}

func center(mx, my int) geom.Point {
	return geom.Pt(float64(mx)+0.5, float64(my)+0.5)
}

// pixel is the micro-pixel holding coordinate v.
func pixel(v float64) int { return int(math.Floor(v)) }
