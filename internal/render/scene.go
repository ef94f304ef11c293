package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"flo/internal/button"
	"flo/internal/gauge"
	"flo/internal/graph"
)

// DrawGauge paints the counter: the outer band filled, the filled band and
// the notches outlined.
func DrawGauge(c *Canvas, g gauge.Geometry, style gauge.Style, p Palette) {
	c.FillPath(g.OuterPath, Solid(p.Counter))
	c.StrokePath(g.FilledPath, style.LineWidth, p.Outline)
	for _, n := range g.Notches {
		c.Stroke(n, style.LineWidth, p.Outline)
	}
}

// DrawGraph paints the graph back to front: background shade, the area
// under the line, reference lines, the line and its markers.
func DrawGraph(c *Canvas, g graph.Geometry, p Palette) {
	bg := Gradient(g.BackgroundGradient, p.GraphStart, p.GraphEnd)
	c.ShadePath(g.Background.Path(), bg)
	c.FillPath(g.Fill, Gradient(g.FillGradient, p.GraphStart, p.GraphEnd))
	for _, l := range g.GridLines {
		c.Stroke(l, 1, bg(l.A).BlendRgb(p.GraphLine, p.GridAlpha))
	}
	c.StrokePath(g.Line, g.LineWidth, p.GraphLine)
	for _, m := range g.Markers {
		c.FillCircle(m, Solid(p.GraphLine))
	}
}

// DrawButton shades the button body and raises the symbol dots on top.
func DrawButton(c *Canvas, g button.Geometry, kind button.Kind, p Palette) {
	c.ShadePath(g.Body.Path(), Solid(p.ButtonFill(kind)))
	for _, b := range g.Bars {
		c.Stroke(b, g.LineWidth, p.Symbol)
	}
}

// ButtonFill is the body colour for a button kind.
func (p Palette) ButtonFill(kind button.Kind) colorful.Color {
	if kind == button.Minus {
		return p.Minus
	}
	return p.Plus
}
