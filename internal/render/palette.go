package render

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette holds the colours shared by the terminal and SVG renderers.
type Palette struct {
	Outline    colorful.Color
	Counter    colorful.Color
	GraphStart colorful.Color
	GraphEnd   colorful.Color
	GraphLine  colorful.Color
	GridAlpha  float64
	Plus       colorful.Color
	Minus      colorful.Color
	Symbol     colorful.Color
}

// PaletteHex is the textual form of a Palette, as found in config files.
type PaletteHex struct {
	Outline    string  `toml:"outline"`
	Counter    string  `toml:"counter"`
	GraphStart string  `toml:"graph_start"`
	GraphEnd   string  `toml:"graph_end"`
	GraphLine  string  `toml:"graph_line"`
	GridAlpha  float64 `toml:"grid_alpha"`
	Plus       string  `toml:"plus"`
	Minus      string  `toml:"minus"`
	Symbol     string  `toml:"symbol"`
}

func DefaultPaletteHex() PaletteHex {
	return PaletteHex{
		Outline:    "#226e64",
		Counter:    "#57dad5",
		GraphStart: "#fae9de",
		GraphEnd:   "#fc4f08",
		GraphLine:  "#ffffff",
		GridAlpha:  0.3,
		Plus:       "#57dad5",
		Minus:      "#ee4d4d",
		Symbol:     "#ffffff",
	}
}

func DefaultPalette() Palette {
	p, err := DefaultPaletteHex().Parse()
	if err != nil {
		panic(err)
	}
	return p
}

// Parse decodes every colour, naming the first one that is not a valid
// #rrggbb value.
func (h PaletteHex) Parse() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *colorful.Color
	}{
		{"outline", h.Outline, &p.Outline},
		{"counter", h.Counter, &p.Counter},
		{"graph_start", h.GraphStart, &p.GraphStart},
		{"graph_end", h.GraphEnd, &p.GraphEnd},
		{"graph_line", h.GraphLine, &p.GraphLine},
		{"plus", h.Plus, &p.Plus},
		{"minus", h.Minus, &p.Minus},
		{"symbol", h.Symbol, &p.Symbol},
	}
	for _, f := range fields {
		c, err := colorful.Hex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("colour %s %q: %w", f.name, f.hex, err)
		}
		*f.dst = c
	}
	if h.GridAlpha < 0 || h.GridAlpha > 1 {
		return Palette{}, fmt.Errorf("colour grid_alpha %v: outside [0, 1]", h.GridAlpha)
	}
	p.GridAlpha = h.GridAlpha
	return p, nil
}
