// Package button builds the round push button: a filled circle with a white
// plus or minus symbol on top. Pressing and switching symbols are plain
// functions of a progress value so any host can drive them from its own
// clock.
package button

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"flo/internal/geom"
)

type Kind int

const (
	Plus Kind = iota
	Minus
	// Oval is the bare circle with no symbol.
	Oval
)

func (k Kind) String() string {
	switch k {
	case Plus:
		return "plus"
	case Minus:
		return "minus"
	case Oval:
		return "oval"
	}
	return "unknown"
}

var ErrUnknownKind = errors.New("button: unknown kind")

// ParseKind reads a kind by name.
func ParseKind(s string) (Kind, error) {
	for _, k := range []Kind{Plus, Minus, Oval} {
		if strings.EqualFold(strings.TrimSpace(s), k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w %q (want plus, minus or oval)", ErrUnknownKind, s)
}

type Style struct {
	PlusSize     float64
	LineWidth    float64
	PressedScale float64
}

func DefaultStyle() Style {
	return Style{PlusSize: 40, LineWidth: 6, PressedScale: 0.9}
}

// Scaled returns the style with its lengths multiplied by k.
func (s Style) Scaled(k float64) Style {
	s.PlusSize *= k
	s.LineWidth *= k
	return s
}

type Geometry struct {
	Body geom.Circle
	// Bars holds the symbol strokes: the horizontal bar first, then the
	// vertical one when present.
	Bars      []geom.Segment
	LineWidth float64
}

// Compute returns the button for kind with the press applied. progress 0 is
// at rest and 1 is fully pressed, shrinking the button to PressedScale about
// its center.
func Compute(bounds geom.Rect, kind Kind, progress float64, style Style) Geometry {
	h, v := barLengths(kind, style)
	scale := 1 - (1-style.PressedScale)*clamp01(progress)
	return build(bounds, h, v, scale, style)
}

// Morph returns the unpressed button part way from one symbol to another.
// Bar lengths are interpolated linearly, so a plus collapses its vertical
// bar into a minus.
func Morph(bounds geom.Rect, from, to Kind, t float64, style Style) Geometry {
	t = clamp01(t)
	fh, fv := barLengths(from, style)
	th, tv := barLengths(to, style)
	return build(bounds, fh+(th-fh)*t, fv+(tv-fv)*t, 1, style)
}

func barLengths(kind Kind, style Style) (h, v float64) {
	switch kind {
	case Plus:
		return style.PlusSize, style.PlusSize
	case Minus:
		return style.PlusSize, 0
	}
	return 0, 0
}

func build(bounds geom.Rect, h, v, scale float64, style Style) Geometry {
	c := bounds.Center()
	g := Geometry{
		Body:      geom.Circle{Center: c, Radius: bounds.Side() / 2 * scale},
		LineWidth: style.LineWidth * scale,
	}
	if h > 0 {
		g.Bars = append(g.Bars, geom.Segment{
			A: geom.Pt(c.X-h/2, c.Y).ScaleAbout(c, scale),
			B: geom.Pt(c.X+h/2, c.Y).ScaleAbout(c, scale),
		})
	}
	if v > 0 {
		g.Bars = append(g.Bars, geom.Segment{
			A: geom.Pt(c.X, c.Y-v/2).ScaleAbout(c, scale),
			B: geom.Pt(c.X, c.Y+v/2).ScaleAbout(c, scale),
		})
	}
	return g
}

func clamp01(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return math.Max(0, math.Min(1, x))
}
