package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flo/internal/button"
	"flo/internal/gauge"
	"flo/internal/graph"
	"flo/internal/intake"
)

func TestParseView(t *testing.T) {
	tests := []struct {
		in      string
		want    View
		wantErr bool
	}{
		{in: "gauge", want: GaugeView},
		{in: " Graph ", want: GraphView},
		{in: "BUTTON", want: ButtonView},
		{in: "pie", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := ParseView(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownView)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestButtonKinds(t *testing.T) {
	tests := []struct {
		count       int
		add, remove button.Kind
	}{
		{0, button.Plus, button.Oval},
		{3, button.Plus, button.Minus},
		{8, button.Oval, button.Minus},
	}
	for _, tt := range tests {
		r := intake.Reading{Count: tt.count, Goal: 8}
		assert.Equal(t, tt.add, AddKind(r), "count %d", tt.count)
		assert.Equal(t, tt.remove, RemoveKind(r), "count %d", tt.count)
	}
}

func TestSceneDraw(t *testing.T) {
	s := DefaultScene()
	r := intake.NewTracker().Reading()
	for _, v := range []View{GaugeView, GraphView, ButtonView} {
		t.Run(string(v), func(t *testing.T) {
			c := NewCanvas(40, 20)
			require.NoError(t, s.Draw(c, v, r))
			blank := true
			for _, l := range c.Lines() {
				if strings.TrimSpace(l) != "" {
					blank = false
				}
			}
			_, shaded := c.Background(20, 10)
			assert.True(t, !blank || shaded)
		})
	}

	err := s.Draw(NewCanvas(4, 4), View("pie"), r)
	assert.ErrorIs(t, err, ErrUnknownView)
}

func TestSceneDrawErrors(t *testing.T) {
	s := DefaultScene()
	// an empty history plots today alone
	err := s.Draw(NewCanvas(10, 10), GraphView, intake.Reading{Goal: 8})
	assert.ErrorIs(t, err, graph.ErrInsufficientSamples)

	err = s.Draw(NewCanvas(10, 10), GaugeView, intake.Reading{Goal: 0})
	assert.ErrorIs(t, err, gauge.ErrInvalidSegmentCount)
}

func TestSceneWrite(t *testing.T) {
	s := DefaultScene()
	r := intake.Reading{Count: 8, Goal: 8, History: []int{1, 2, 3}}

	var buf bytes.Buffer
	require.NoError(t, s.Write(&buf, ButtonView, 100, 100, r))
	// a full counter shows the bare oval
	assert.Equal(t, 1, strings.Count(buf.String(), "<path "))

	buf.Reset()
	require.NoError(t, s.Write(&buf, GaugeView, 230, 230, r))
	assert.Contains(t, buf.String(), `<g id="gauge">`)

	buf.Reset()
	require.NoError(t, s.Write(&buf, GraphView, 300, 250, r))
	assert.Contains(t, buf.String(), `<g id="graph">`)

	assert.ErrorIs(t, s.Write(&buf, View("pie"), 10, 10, r), ErrUnknownView)
}

func TestSceneWriteFrame(t *testing.T) {
	r := intake.Reading{Count: 2, Goal: 8}
	bounds := boundsFor(100, 100)
	style := button.DefaultStyle()
	minus := button.Minus

	tests := []struct {
		name  string
		frame ButtonFrame
		want  button.Geometry
	}{
		{name: "rest", want: button.Compute(bounds, button.Plus, 0, style)},
		{name: "pressed", frame: ButtonFrame{Press: 1}, want: button.Compute(bounds, button.Plus, 1, style)},
		{name: "switch start", frame: ButtonFrame{From: &minus}, want: button.Compute(bounds, button.Minus, 0, style)},
		{name: "switch half", frame: ButtonFrame{From: &minus, Morph: 0.5}, want: button.Morph(bounds, button.Minus, button.Plus, 0.5, style)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultScene()
			s.Frame = tt.frame
			var got, want bytes.Buffer
			require.NoError(t, s.Write(&got, ButtonView, 100, 100, r))
			require.NoError(t, WriteButton(&want, 100, 100, tt.want, button.Plus, s.Palette))
			assert.Equal(t, want.String(), got.String())
		})
	}

	// a pressed button is smaller than one at rest
	s := DefaultScene()
	s.Frame.Press = 1
	c := NewCanvas(50, 25)
	require.NoError(t, s.Draw(c, ButtonView, r))
	assert.Less(t, s.Frame.geometry(c.Bounds(), button.Plus, s.Button).Body.Radius,
		ButtonFrame{}.geometry(c.Bounds(), button.Plus, s.Button).Body.Radius)
}
