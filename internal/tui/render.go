package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"flo/internal/button"
	"flo/internal/geom"
	"flo/internal/graph"
	"flo/internal/intake"
	"flo/internal/render"
)

// Button canvas size in cells. Braille dots are close to square, so 8x4
// cells give a 16x16 dot drawing.
const (
	buttonCellsW = 8
	buttonCellsH = 4
)

// renderDrawing paints the current view into a w x h cell area.
func (m Model) renderDrawing(w, h int) string {
	r := m.reading()
	cw, ch := w, h
	if !m.showGraph {
		cw, ch = squareCells(w, h)
	}
	c := render.NewCanvas(cw, ch)
	if err := m.scene.Draw(c, m.view(), r); err != nil {
		return dimStyle.Render(err.Error())
	}
	return c.String()
}

// caption is the line under the drawing.
func (m Model) caption() string {
	r := m.reading()
	if !m.showGraph {
		return fmt.Sprintf("%d / %d glasses", r.Count, r.Goal)
	}
	hi, avg, ok := graphLabels(r)
	if !ok {
		return "water drunk"
	}
	return fmt.Sprintf("water drunk  max %d  avg %d", hi, avg)
}

// graphLabels returns the graph's max and average labels at the
// reference layout.
func graphLabels(r intake.Reading) (hi, avg int, ok bool) {
	g, err := graph.Compute(geom.R(0, 0, 300, 250), r.Series(), graph.DefaultLayout())
	if err != nil {
		return 0, 0, false
	}
	return g.MaxValue, g.AverageValue, true
}

// renderButtons draws the remove and add buttons side by side.
func (m Model) renderButtons() string {
	r := m.reading()
	remove := m.renderButton(false, render.RemoveKind(r))
	add := m.renderButton(true, render.AddKind(r))
	return lipgloss.JoinHorizontal(lipgloss.Top, remove, "    ", add)
}

// renderButton draws one button at rest. The body colour follows the
// button, not its current symbol.
func (m Model) renderButton(add bool, kind button.Kind) string {
	c := render.NewCanvas(buttonCellsW, buttonCellsH)
	bounds := c.Bounds()
	g := button.Compute(bounds, kind, 0, m.scene.Button.Scaled(bounds.Side()/render.ButtonSide))
	fill := button.Plus
	if !add {
		fill = button.Minus
	}
	render.DrawButton(c, g, fill, m.scene.Palette)
	return c.String()
}
