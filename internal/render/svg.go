package render

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
	colorful "github.com/lucasb-eyer/go-colorful"

	"flo/internal/button"
	"flo/internal/gauge"
	"flo/internal/geom"
	"flo/internal/graph"
)

// f64s formats a coordinate with at most three decimals.
func f64s(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func hex(c colorful.Color) string { return c.Clamped().Hex() }

// PathData converts a path to SVG path data. Screen y grows downward, so a
// clockwise arc uses sweep-flag 1. Full circles are emitted as two halves
// since a single arc command cannot end where it starts.
func PathData(p geom.Path) string {
	var parts []string
	add := func(s ...string) { parts = append(parts, s...) }
	pt := func(op string, q geom.Point) { add(op, f64s(q.X), f64s(q.Y)) }
	open := false
	for _, e := range p.Elements {
		switch e.Op {
		case geom.MoveTo:
			pt("M", e.To)
			open = true
		case geom.LineTo:
			if open {
				pt("L", e.To)
			} else {
				pt("M", e.To)
				open = true
			}
		case geom.ArcTo:
			a := e.Arc
			if open {
				pt("L", a.From())
			} else {
				pt("M", a.From())
				open = true
			}
			sweep := a.Sweep()
			if math.Abs(sweep) < 1e-9 {
				continue
			}
			flag := "0"
			if sweep > 0 {
				flag = "1"
			}
			r := f64s(a.Radius)
			if math.Abs(sweep) >= 2*math.Pi-1e-9 {
				mid, from := geom.Polar(a.Center, a.Radius, a.Start+sweep/2), a.From()
				add("A", r, r, "0", "0", flag, f64s(mid.X), f64s(mid.Y))
				add("A", r, r, "0", "0", flag, f64s(from.X), f64s(from.Y))
				continue
			}
			large := "0"
			if math.Abs(sweep) > math.Pi {
				large = "1"
			}
			to := a.To()
			add("A", r, r, "0", large, flag, f64s(to.X), f64s(to.Y))
		case geom.ClosePath:
			if open {
				add("Z")
				open = false
			}
		}
	}
	return strings.Join(parts, " ")
}

func segmentsData(segs []geom.Segment) string {
	var p geom.Path
	for _, s := range segs {
		p.MoveTo(s.A)
		p.LineTo(s.B)
	}
	return PathData(p)
}

func strokeStyle(c colorful.Color, width float64) string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%s", hex(c), f64s(width))
}

func fillStyle(c colorful.Color) string { return "fill:" + hex(c) }

// document buffers one SVG so write errors surface once, at the end.
func document(w io.Writer, width, height int, draw func(canvas *svg.SVG)) error {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height)
	draw(canvas)
	canvas.End()
	_, err := buf.WriteTo(w)
	return err
}

// WriteGauge writes the counter as an SVG document.
func WriteGauge(w io.Writer, width, height int, g gauge.Geometry, style gauge.Style, p Palette) error {
	return document(w, width, height, func(canvas *svg.SVG) {
		canvas.Gid("gauge")
		canvas.Path(PathData(g.OuterPath), fillStyle(p.Counter))
		canvas.Path(PathData(g.FilledPath), strokeStyle(p.Outline, style.LineWidth))
		canvas.Path(segmentsData(g.Notches), strokeStyle(p.Outline, style.LineWidth))
		canvas.Gend()
	})
}

// WriteGraph writes the graph as an SVG document. Both gradients share
// one definition: the background and the area under the line each span
// their own bounding box top to bottom.
func WriteGraph(w io.Writer, width, height int, g graph.Geometry, p Palette) error {
	stops := []svg.Offcolor{
		{Offset: 0, Color: hex(p.GraphStart), Opacity: 1},
		{Offset: 100, Color: hex(p.GraphEnd), Opacity: 1},
	}
	grid := fmt.Sprintf("%s;stroke-opacity:%s", strokeStyle(p.GraphLine, 1), f64s(p.GridAlpha))
	return document(w, width, height, func(canvas *svg.SVG) {
		canvas.Def()
		canvas.LinearGradient("intake", 0, 0, 0, 100, stops)
		canvas.DefEnd()
		canvas.Gid("graph")
		canvas.Path(PathData(g.Background.Path()), "fill:url(#intake)")
		canvas.Path(PathData(g.Fill), "fill:url(#intake)")
		for _, l := range g.GridLines {
			canvas.Path(segmentsData([]geom.Segment{l}), grid)
		}
		canvas.Path(PathData(g.Line), strokeStyle(p.GraphLine, g.LineWidth))
		for _, m := range g.Markers {
			canvas.Path(PathData(m.Path()), fillStyle(p.GraphLine))
		}
		canvas.Gend()
	})
}

// WriteButton writes the push button as an SVG document.
func WriteButton(w io.Writer, width, height int, g button.Geometry, kind button.Kind, p Palette) error {
	return document(w, width, height, func(canvas *svg.SVG) {
		canvas.Gid("button")
		canvas.Path(PathData(g.Body.Path()), fillStyle(p.ButtonFill(kind)))
		if len(g.Bars) > 0 {
			canvas.Path(segmentsData(g.Bars), strokeStyle(p.Symbol, g.LineWidth))
		}
		canvas.Gend()
	})
}
