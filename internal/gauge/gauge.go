// Package gauge computes the geometry of the segmented circular intake
// gauge: an outer band covering every segment, an inner band covering the
// filled segments, and a notch at each segment boundary.
package gauge

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"

	"flo/internal/geom"
)

// DefaultSegments is the number of glasses in a full day.
const DefaultSegments = 8

const (
	startDegrees = 135.0
	sweepDegrees = 360.0 - 90.0
)

var (
	// ErrInvalidSegmentCount is returned for a segment count below one.
	ErrInvalidSegmentCount = errors.New("gauge: segment count must be positive")
	// ErrBoundsTooSmall is returned when the line width leaves no radius.
	ErrBoundsTooSmall = errors.New("gauge: bounds too small for line width")
)

type Style struct {
	LineWidth        float64
	ArcWidthFraction float64
	NotchLength      float64
}

func DefaultStyle() Style {
	return Style{LineWidth: 5, ArcWidthFraction: 0.6, NotchLength: 8}
}

// Scaled returns the style with every length multiplied by k.
func (s Style) Scaled(k float64) Style {
	s.LineWidth *= k
	s.NotchLength *= k
	return s
}

type Geometry struct {
	Center geom.Point
	Radius float64
	Total  int
	Filled int

	Outer      geom.Band
	FilledBand geom.Band
	OuterPath  geom.Path
	FilledPath geom.Path
	Notches    []geom.Segment
}

// AngleFor returns the boundary angle in radians of segment index for a gauge
// of total segments. Boundaries split a 270 degree clockwise sweep from 135
// degrees evenly; the sweep wraps through 0 and ends at 45 degrees. Indices
// below zero resolve to the start angle and indices past total to the end.
func AngleFor(index, total int) (float64, error) {
	if total <= 0 {
		return 0, ErrInvalidSegmentCount
	}
	return angles(total)[clampIndex(index, total)], nil
}

// angles builds the boundary table for total segments: total+1 angles.
func angles(total int) []float64 {
	table := floats.Span(make([]float64, total+1), startDegrees, startDegrees+sweepDegrees)
	for i, deg := range table {
		if deg >= 360 {
			deg -= 360
		}
		table[i] = deg * math.Pi / 180
	}
	return table
}

func clampIndex(index, total int) int {
	if index < 0 {
		return 0
	}
	if index > total {
		return total
	}
	return index
}

// Compute lays out the gauge inside bounds. filled is clamped to
// [0, total].
func Compute(bounds geom.Rect, total, filled int, style Style) (Geometry, error) {
	if total <= 0 {
		return Geometry{}, ErrInvalidSegmentCount
	}
	radius := math.Min(bounds.W/2, bounds.H/2) - style.LineWidth
	if radius <= 0 {
		return Geometry{}, ErrBoundsTooSmall
	}
	table := angles(total)
	filled = clampIndex(filled, total)
	center := bounds.Center()
	arcWidth := radius * style.ArcWidthFraction

	g := Geometry{
		Center: center,
		Radius: radius,
		Total:  total,
		Filled: filled,
		Outer:  band(center, radius, arcWidth, table[0], table[total]),
	}
	g.FilledBand = band(center, radius-style.LineWidth/2, arcWidth-style.LineWidth, table[0], table[filled])
	g.OuterPath = g.Outer.Path()
	g.FilledPath = g.FilledBand.Path()

	g.Notches = make([]geom.Segment, 0, total)
	for i := 1; i <= total; i++ {
		g.Notches = append(g.Notches, geom.Segment{
			A: notchPoint(center, table[i], radius),
			B: notchPoint(center, table[i], radius-style.NotchLength),
		})
	}
	return g, nil
}

func band(center geom.Point, radius, width, start, end float64) geom.Band {
	return geom.Band{Center: center, Outer: radius, Inner: radius - width, Start: start, End: end}
}

// notchPoint places a point at radius r and angle a by measuring the angle
// from the nearest horizontal axis and picking the quadrant signs.
func notchPoint(center geom.Point, a, r float64) geom.Point {
	left := a > math.Pi/2 && a < 3*math.Pi/2
	above := a > math.Pi
	axis := 0.0
	switch {
	case left:
		axis = math.Pi
	case above:
		axis = 2 * math.Pi
	}
	diff := math.Abs(axis - a)
	dx, dy := r*math.Cos(diff), r*math.Sin(diff)
	if left {
		dx = -dx
	}
	if above {
		dy = -dy
	}
	return geom.Point{X: center.X + dx, Y: center.Y + dy}
}
