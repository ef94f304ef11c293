package geom

import "math"

// Screen convention used throughout: y grows downward, angles are radians
// measured from the positive x axis, and a clockwise sweep increases the
// angle.

type Point struct {
	X float64
	Y float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Lerp returns the point a fraction t of the way from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// ScaleAbout scales p by s around the center c.
func (p Point) ScaleAbout(c Point, s float64) Point {
	return Point{X: c.X + (p.X-c.X)*s, Y: c.Y + (p.Y-c.Y)*s}
}

// Polar returns the point at radius r and angle a around c.
func Polar(c Point, r, a float64) Point {
	return Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
}

// Rect is the caller supplied drawing area.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

func R(x, y, w, h float64) Rect { return Rect{X: x, Y: y, W: w, H: h} }

func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MaxY() float64 { return r.Y + r.H }
func (r Rect) MidX() float64 { return r.X + r.W/2 }
func (r Rect) MidY() float64 { return r.Y + r.H/2 }
func (r Rect) Center() Point { return Point{X: r.MidX(), Y: r.MidY()} }
func (r Rect) Empty() bool   { return !(r.W > 0 && r.H > 0) }
func (r Rect) Side() float64 { return math.Min(r.W, r.H) }
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }
func (r Rect) Corner() Point { return Point{X: r.MaxX(), Y: r.MaxY()} }

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Extend grows b to include p. The first point seeds the box when ok is false.
func (b BBox) Extend(p Point, ok bool) BBox {
	if !ok {
		return BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
	}
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
	return b
}

func (b BBox) Rect() Rect {
	return Rect{X: b.MinX, Y: b.MinY, W: b.MaxX - b.MinX, H: b.MaxY - b.MinY}
}

// Segment is a straight stroke from A to B.
type Segment struct {
	A Point
	B Point
}

func (s Segment) Length() float64 { return math.Hypot(s.B.X-s.A.X, s.B.Y-s.A.Y) }

type Circle struct {
	Center Point
	Radius float64
}

func (c Circle) Path() Path {
	var p Path
	p.Arc(Arc{Center: c.Center, Radius: c.Radius, Start: 0, End: 2 * math.Pi, Clockwise: true})
	p.Close()
	return p
}

// Arc is a single circular arc descriptor.
type Arc struct {
	Center    Point
	Radius    float64
	Start     float64
	End       float64
	Clockwise bool
}

// Sweep returns the signed angle the arc travels: positive clockwise,
// negative counterclockwise. An arc whose end is a full turn or more from
// its start is a whole circle.
func (a Arc) Sweep() float64 {
	d := a.End - a.Start
	if a.Clockwise {
		if d >= 2*math.Pi {
			return 2 * math.Pi
		}
		return ClockwiseSweep(a.Start, a.End)
	}
	if d <= -2*math.Pi {
		return -2 * math.Pi
	}
	return -ClockwiseSweep(a.End, a.Start)
}

func (a Arc) From() Point { return Polar(a.Center, a.Radius, a.Start) }
func (a Arc) To() Point   { return Polar(a.Center, a.Radius, a.Start+a.Sweep()) }

// ClockwiseSweep is the clockwise angular distance from start to end,
// in [0, 2π).
func ClockwiseSweep(start, end float64) float64 {
	d := math.Mod(end-start, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d
}

// Band is an annular sector: the area between Outer and Inner radii swept
// clockwise from Start to End.
type Band struct {
	Center Point
	Outer  float64
	Inner  float64
	Start  float64
	End    float64
}

func (b Band) Sweep() float64 { return ClockwiseSweep(b.Start, b.End) }

// Path traces the outer arc clockwise, the inner arc back counterclockwise
// and closes the outline.
func (b Band) Path() Path {
	var p Path
	p.Arc(Arc{Center: b.Center, Radius: b.Outer, Start: b.Start, End: b.End, Clockwise: true})
	p.Arc(Arc{Center: b.Center, Radius: b.Inner, Start: b.End, End: b.Start, Clockwise: false})
	p.Close()
	return p
}

type RoundedRect struct {
	Rect   Rect
	Radius float64
}

func (rr RoundedRect) Path() Path {
	r := math.Max(0, math.Min(rr.Radius, rr.Rect.Side()/2))
	x, y, mx, my := rr.Rect.X, rr.Rect.Y, rr.Rect.MaxX(), rr.Rect.MaxY()
	var p Path
	p.MoveTo(Pt(x+r, y))
	p.Arc(Arc{Center: Pt(mx-r, y+r), Radius: r, Start: 3 * math.Pi / 2, End: 2 * math.Pi, Clockwise: true})
	p.Arc(Arc{Center: Pt(mx-r, my-r), Radius: r, Start: 0, End: math.Pi / 2, Clockwise: true})
	p.Arc(Arc{Center: Pt(x+r, my-r), Radius: r, Start: math.Pi / 2, End: math.Pi, Clockwise: true})
	p.Arc(Arc{Center: Pt(x+r, y+r), Radius: r, Start: math.Pi, End: 3 * math.Pi / 2, Clockwise: true})
	p.Close()
	return p
}

// LinearGradient is the axis of a two-stop gradient. Colours are supplied
// by the renderer.
type LinearGradient struct {
	Start Point
	End   Point
}

// At projects p onto the gradient axis and returns its position in [0, 1].
func (g LinearGradient) At(p Point) float64 {
	dx, dy := g.End.X-g.Start.X, g.End.Y-g.Start.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return 0
	}
	t := ((p.X-g.Start.X)*dx + (p.Y-g.Start.Y)*dy) / l2
	return math.Max(0, math.Min(1, t))
}
