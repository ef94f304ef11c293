// Package graph lays out the weekly intake graph: one point per day joined
// by a line, a marker on every point, three horizontal reference lines and
// the gradient filled area under the line.
package graph

import (
	"errors"

	"flo/internal/geom"
)

var (
	// ErrInsufficientSamples is returned for fewer than two samples, where
	// the horizontal spacing is undefined.
	ErrInsufficientSamples = errors.New("graph: need at least two samples")
	// ErrBoundsTooSmall is returned when the margins and borders leave no
	// plot area.
	ErrBoundsTooSmall = errors.New("graph: bounds too small for layout")
)

// Layout holds the fixed spacing of the graph inside its bounds.
type Layout struct {
	Margin         float64
	TopBorder      float64
	BottomBorder   float64
	CircleDiameter float64
	CornerRadius   float64
	LineWidth      float64
}

func DefaultLayout() Layout {
	return Layout{Margin: 20, TopBorder: 60, BottomBorder: 50, CircleDiameter: 5, CornerRadius: 8, LineWidth: 2}
}

// Scaled returns the layout with every length multiplied by k.
func (l Layout) Scaled(k float64) Layout {
	l.Margin *= k
	l.TopBorder *= k
	l.BottomBorder *= k
	l.CircleDiameter *= k
	l.CornerRadius *= k
	l.LineWidth *= k
	return l
}

type Geometry struct {
	Bounds  geom.Rect
	Points  []geom.Point
	Line    geom.Path
	Markers []geom.Circle

	// LineWidth is the stroke width of Line.
	LineWidth float64

	// GridLines are ordered top (max), middle, bottom (zero).
	GridLines [3]geom.Segment

	// Fill is the closed area under the line down to the bottom of the
	// bounds, painted with FillGradient.
	Fill         geom.Path
	FillGradient geom.LinearGradient

	Background         geom.RoundedRect
	BackgroundGradient geom.LinearGradient

	MaxValue     int
	AverageValue int
}

type plot struct {
	bounds  geom.Rect
	layout  Layout
	spacing float64
	height  float64
	scale   float64
}

func (p plot) x(i int) float64 {
	return p.bounds.X + p.layout.Margin + 2 + float64(i)*p.spacing
}

func (p plot) y(v int) float64 {
	return p.bounds.Y + p.height + p.layout.TopBorder - float64(v)/p.scale*p.height
}

// Compute lays out samples inside bounds. The samples slice is only read.
// When no sample is above zero the value scale is taken as 1 so every point
// sits on the bottom line.
func Compute(bounds geom.Rect, samples []int, layout Layout) (Geometry, error) {
	n := len(samples)
	if n < 2 {
		return Geometry{}, ErrInsufficientSamples
	}
	width := bounds.W - layout.Margin*2 - 4
	height := bounds.H - layout.TopBorder - layout.BottomBorder
	if width <= 0 || height <= 0 {
		return Geometry{}, ErrBoundsTooSmall
	}

	maxValue, sum := samples[0], 0
	for _, v := range samples {
		if v > maxValue {
			maxValue = v
		}
		sum += v
	}
	scale := float64(maxValue)
	if maxValue <= 0 {
		scale = 1
	}
	p := plot{
		bounds:  bounds,
		layout:  layout,
		spacing: width / float64(n-1),
		height:  height,
		scale:   scale,
	}

	g := Geometry{
		Bounds:       bounds,
		Points:       make([]geom.Point, n),
		Markers:      make([]geom.Circle, n),
		LineWidth:    layout.LineWidth,
		MaxValue:     maxValue,
		AverageValue: sum / n,
	}
	for i, v := range samples {
		pt := geom.Pt(p.x(i), p.y(v))
		g.Points[i] = pt
		g.Markers[i] = geom.Circle{Center: pt, Radius: layout.CircleDiameter / 2}
		if i == 0 {
			g.Line.MoveTo(pt)
		} else {
			g.Line.LineTo(pt)
		}
	}

	left, right := p.x(0), p.x(n-1)
	top, bottom := p.y(maxValue), p.y(0)
	mid := (top + bottom) / 2
	for i, y := range [3]float64{top, mid, bottom} {
		g.GridLines[i] = geom.Segment{A: geom.Pt(left, y), B: geom.Pt(right, y)}
	}

	g.Fill.Elements = append(g.Fill.Elements, g.Line.Elements...)
	g.Fill.LineTo(geom.Pt(right, bounds.MaxY()))
	g.Fill.LineTo(geom.Pt(left, bounds.MaxY()))
	g.Fill.Close()
	g.FillGradient = geom.LinearGradient{
		Start: geom.Pt(bounds.X+layout.Margin, top),
		End:   geom.Pt(bounds.X+layout.Margin, bounds.MaxY()),
	}

	g.Background = geom.RoundedRect{Rect: bounds, Radius: layout.CornerRadius}
	g.BackgroundGradient = geom.LinearGradient{Start: bounds.Origin(), End: geom.Pt(bounds.X, bounds.MaxY())}
	return g, nil
}
