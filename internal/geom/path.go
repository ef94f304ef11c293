package geom

import "math"

type Op int

const (
	MoveTo Op = iota
	LineTo
	ArcTo
	ClosePath
)

// Element is one drawing instruction. To is set for MoveTo and LineTo,
// Arc for ArcTo.
type Element struct {
	Op  Op
	To  Point
	Arc Arc
}

// Path is a vector path in the style of a bezier path object: an arc
// appended after a current point is joined to it by a straight line.
type Path struct {
	Elements []Element
}

func (p *Path) MoveTo(pt Point) { p.Elements = append(p.Elements, Element{Op: MoveTo, To: pt}) }
func (p *Path) LineTo(pt Point) { p.Elements = append(p.Elements, Element{Op: LineTo, To: pt}) }
func (p *Path) Arc(a Arc)       { p.Elements = append(p.Elements, Element{Op: ArcTo, Arc: a}) }
func (p *Path) Close()          { p.Elements = append(p.Elements, Element{Op: ClosePath}) }

func (p Path) Empty() bool { return len(p.Elements) == 0 }

// Polyline is a flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// Flatten converts the path into polylines. Arcs are subdivided so that no
// chord is longer than step.
func (p Path) Flatten(step float64) []Polyline {
	if step <= 0 {
		step = 1
	}
	var out []Polyline
	var cur *Polyline
	start := func(pt Point) {
		out = append(out, Polyline{Points: []Point{pt}})
		cur = &out[len(out)-1]
	}
	for _, e := range p.Elements {
		switch e.Op {
		case MoveTo:
			start(e.To)
		case LineTo:
			if cur == nil {
				start(e.To)
				continue
			}
			cur.Points = append(cur.Points, e.To)
		case ArcTo:
			a := e.Arc
			if cur == nil {
				start(a.From())
			} else {
				cur.Points = append(cur.Points, a.From())
			}
			sweep := a.Sweep()
			n := int(math.Ceil(math.Abs(sweep) * a.Radius / step))
			for i := 1; i <= n; i++ {
				cur.Points = append(cur.Points, Polar(a.Center, a.Radius, a.Start+sweep*float64(i)/float64(n)))
			}
		case ClosePath:
			if cur != nil {
				cur.Closed = true
				cur = nil
			}
		}
	}
	return out
}

// Bounds returns the bounding box of the flattened path and false when the
// path has no points.
func (p Path) Bounds() (BBox, bool) {
	var b BBox
	ok := false
	for _, pl := range p.Flatten(1) {
		for _, pt := range pl.Points {
			b = b.Extend(pt, ok)
			ok = true
		}
	}
	return b, ok
}
