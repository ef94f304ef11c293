package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"flo/internal/button"
	"flo/internal/gauge"
	"flo/internal/geom"
	"flo/internal/graph"
	"flo/internal/intake"
)

// View names one of the drawings a Reading can be rendered as.
type View string

const (
	GaugeView  View = "gauge"
	GraphView  View = "graph"
	ButtonView View = "button"
)

// Reference sides the default styles are sized for. Canvas drawings scale
// the styles by the ratio of the canvas side to these.
const (
	ReferenceSide = 230.0
	ButtonSide    = 100.0
)

var ErrUnknownView = errors.New("render: unknown view")

func ParseView(s string) (View, error) {
	switch v := View(strings.ToLower(strings.TrimSpace(s))); v {
	case GaugeView, GraphView, ButtonView:
		return v, nil
	}
	return "", fmt.Errorf("%w %q (want gauge, graph or button)", ErrUnknownView, s)
}

// Scene bundles the styles and colours a Reading is drawn with.
type Scene struct {
	Gauge   gauge.Style
	Graph   graph.Layout
	Button  button.Style
	Palette Palette

	// Frame poses the button. The zero Frame is at rest.
	Frame ButtonFrame
}

// ButtonFrame is one still of the button animation.
type ButtonFrame struct {
	// Press runs from 0 at rest to 1 fully pressed.
	Press float64
	// From, when set, is the symbol being switched away from and Morph the
	// progress toward the current one. A switching button is drawn unpressed.
	From  *button.Kind
	Morph float64
}

func (f ButtonFrame) geometry(bounds geom.Rect, kind button.Kind, style button.Style) button.Geometry {
	if f.From != nil {
		return button.Morph(bounds, *f.From, kind, f.Morph, style)
	}
	return button.Compute(bounds, kind, f.Press, style)
}

func DefaultScene() Scene {
	return Scene{
		Gauge:   gauge.DefaultStyle(),
		Graph:   graph.DefaultLayout(),
		Button:  button.DefaultStyle(),
		Palette: DefaultPalette(),
	}
}

// AddKind is the symbol on the add button: a plus until the goal is met,
// then a bare oval.
func AddKind(r intake.Reading) button.Kind {
	if r.Count >= r.Goal {
		return button.Oval
	}
	return button.Plus
}

// RemoveKind is the symbol on the remove button: a minus while there is
// something to take back.
func RemoveKind(r intake.Reading) button.Kind {
	if r.Count <= 0 {
		return button.Oval
	}
	return button.Minus
}

// Draw paints r on c as view v, scaling the styles to the canvas.
func (s Scene) Draw(c *Canvas, v View, r intake.Reading) error {
	bounds := c.Bounds()
	switch v {
	case GaugeView:
		style := s.Gauge.Scaled(bounds.Side() / ReferenceSide)
		g, err := gauge.Compute(bounds, r.Goal, r.Count, style)
		if err != nil {
			return err
		}
		DrawGauge(c, g, style, s.Palette)
		return nil
	case GraphView:
		g, err := graph.Compute(bounds, r.Series(), s.Graph.Scaled(bounds.Side()/ReferenceSide))
		if err != nil {
			return err
		}
		DrawGraph(c, g, s.Palette)
		return nil
	case ButtonView:
		kind := AddKind(r)
		g := s.Frame.geometry(bounds, kind, s.Button.Scaled(bounds.Side()/ButtonSide))
		DrawButton(c, g, kind, s.Palette)
		return nil
	}
	return fmt.Errorf("%w %q", ErrUnknownView, v)
}

// Write renders r as a width x height SVG document of view v. Styles are
// used as given, in SVG user units.
func (s Scene) Write(w io.Writer, v View, width, height int, r intake.Reading) error {
	bounds := boundsFor(width, height)
	switch v {
	case GaugeView:
		g, err := gauge.Compute(bounds, r.Goal, r.Count, s.Gauge)
		if err != nil {
			return err
		}
		return WriteGauge(w, width, height, g, s.Gauge, s.Palette)
	case GraphView:
		g, err := graph.Compute(bounds, r.Series(), s.Graph)
		if err != nil {
			return err
		}
		return WriteGraph(w, width, height, g, s.Palette)
	case ButtonView:
		kind := AddKind(r)
		return WriteButton(w, width, height, s.Frame.geometry(bounds, kind, s.Button), kind, s.Palette)
	}
	return fmt.Errorf("%w %q", ErrUnknownView, v)
}

func boundsFor(width, height int) geom.Rect {
	return geom.R(0, 0, float64(width), float64(height))
}
