// Package config holds the flo settings: counter goal, history, drawing
// styles and colours. Settings are read from flo.toml, found in the working
// directory or the user and system config folders.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shibukawa/configdir"

	"flo/internal/button"
	"flo/internal/gauge"
	"flo/internal/graph"
	"flo/internal/intake"
	"flo/internal/render"
)

// FileName is the name of the config file.
const FileName = "flo.toml"

// LogFileName is the name of the log file in the cache folder.
const LogFileName = "flo.log"

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	Goal        int    `toml:"goal"`
	History     []int  `toml:"history"`
	HistoryFile string `toml:"history_file"`
	Days        int    `toml:"days"`
	HelpVisible bool   `toml:"help_visible"`
	ExportDir   string `toml:"export_dir"`
	LogFile     string `toml:"log_file"`
	Debug       bool   `toml:"debug"`

	Gauge  GaugeStyle        `toml:"gauge"`
	Graph  GraphLayout       `toml:"graph"`
	Button ButtonStyle       `toml:"button"`
	Colors render.PaletteHex `toml:"colors"`

	// Unknown holds the keys in the file that no setting matched.
	Unknown []string `toml:"-"`
}

type GaugeStyle struct {
	LineWidth        float64 `toml:"line_width"`
	ArcWidthFraction float64 `toml:"arc_width_fraction"`
	NotchLength      float64 `toml:"notch_length"`
}

type GraphLayout struct {
	Margin         float64 `toml:"margin"`
	TopBorder      float64 `toml:"top_border"`
	BottomBorder   float64 `toml:"bottom_border"`
	CircleDiameter float64 `toml:"circle_diameter"`
	CornerRadius   float64 `toml:"corner_radius"`
	LineWidth      float64 `toml:"line_width"`
}

type ButtonStyle struct {
	PlusSize     float64 `toml:"plus_size"`
	LineWidth    float64 `toml:"line_width"`
	PressedScale float64 `toml:"pressed_scale"`
}

func Default() Config {
	gs := gauge.DefaultStyle()
	gl := graph.DefaultLayout()
	bs := button.DefaultStyle()
	return Config{
		Goal:        intake.DefaultGoal,
		History:     append([]int(nil), intake.DefaultHistory...),
		Days:        7,
		HelpVisible: true,
		ExportDir:   ".",
		LogFile:     DefaultLogPath(),
		Gauge: GaugeStyle{
			LineWidth:        gs.LineWidth,
			ArcWidthFraction: gs.ArcWidthFraction,
			NotchLength:      gs.NotchLength,
		},
		Graph: GraphLayout{
			Margin:         gl.Margin,
			TopBorder:      gl.TopBorder,
			BottomBorder:   gl.BottomBorder,
			CircleDiameter: gl.CircleDiameter,
			CornerRadius:   gl.CornerRadius,
			LineWidth:      gl.LineWidth,
		},
		Button: ButtonStyle{
			PlusSize:     bs.PlusSize,
			LineWidth:    bs.LineWidth,
			PressedScale: bs.PressedScale,
		},
		Colors: render.DefaultPaletteHex(),
	}
}

func configDir() configdir.ConfigDir {
	cd := configdir.New("", "flo")
	cd.LocalPath, _ = filepath.Abs(".")
	return cd
}

// DefaultLogPath is flo.log in the user cache folder.
func DefaultLogPath() string {
	return filepath.Join(configDir().QueryCacheFolder().Path, LogFileName)
}

// Find returns the first flo.toml in the working directory, the user
// config folder or the system config folders, or "" when there is none.
func Find() string {
	folder := configDir().QueryFolderContainsFile(FileName)
	if folder == nil {
		return ""
	}
	return filepath.Join(folder.Path, FileName)
}

// Load reads the config file at path over the defaults. An empty path
// searches the usual folders and falls back to the defaults when no file
// exists.
func Load(path string) (Config, string, error) {
	if path == "" {
		path = Find()
		if path == "" {
			return Default(), "", nil
		}
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, path, err
	}
	conf, err := Read(bytes.NewReader(b))
	if err != nil {
		return Config{}, path, fmt.Errorf("%s: %w", path, err)
	}
	return conf, path, nil
}

// Read decodes TOML over the defaults and validates the result. Unknown
// keys are ignored and listed in Unknown so the caller can report them
// once logging is set up.
func Read(r io.Reader) (Config, error) {
	conf := Default()
	md, err := toml.NewDecoder(r).Decode(&conf)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for _, k := range md.Undecoded() {
		conf.Unknown = append(conf.Unknown, k.String())
	}
	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// Validate reports every setting that cannot be drawn with.
func (c Config) Validate() error {
	var bad []string
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			bad = append(bad, fmt.Sprintf(format, args...))
		}
	}
	check(c.Goal >= 1, "goal %d must be at least 1", c.Goal)
	check(len(c.History) >= 2, "history needs at least two days, got %d", len(c.History))
	for _, v := range c.History {
		check(v >= 0, "history value %d is negative", v)
	}
	check(c.Days == 0 || c.Days >= 2, "days %d must be 0 or at least 2", c.Days)
	check(c.Gauge.LineWidth > 0, "gauge.line_width %v must be positive", c.Gauge.LineWidth)
	check(c.Gauge.ArcWidthFraction > 0 && c.Gauge.ArcWidthFraction <= 1,
		"gauge.arc_width_fraction %v must be in (0, 1]", c.Gauge.ArcWidthFraction)
	check(c.Gauge.NotchLength >= 0, "gauge.notch_length %v is negative", c.Gauge.NotchLength)
	check(c.Graph.Margin >= 0 && c.Graph.TopBorder >= 0 && c.Graph.BottomBorder >= 0,
		"graph margins must not be negative")
	check(c.Graph.CircleDiameter >= 0 && c.Graph.CornerRadius >= 0 && c.Graph.LineWidth > 0,
		"graph line_width must be positive and circle_diameter, corner_radius not negative")
	check(c.Button.PlusSize >= 0 && c.Button.LineWidth > 0, "button sizes must be positive")
	check(c.Button.PressedScale > 0 && c.Button.PressedScale <= 1,
		"button.pressed_scale %v must be in (0, 1]", c.Button.PressedScale)
	if _, err := c.Colors.Parse(); err != nil {
		bad = append(bad, err.Error())
	}
	if len(bad) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(bad, "; "))
	}
	return nil
}

// Write saves the config as TOML. An empty path writes flo.toml to the user
// config folder. It returns the path written.
func (c Config) Write(path string) (string, error) {
	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		return "", err
	}
	var dir *configdir.Config
	file := FileName
	if path == "" {
		ds := configDir().QueryFolders(configdir.Global)
		if len(ds) == 0 {
			return "", fmt.Errorf("error locating config folders")
		}
		dir = ds[0]
	} else {
		dir = &configdir.Config{Path: filepath.Dir(path)}
		file = filepath.Base(path)
	}
	if err := dir.CreateParentDir(file); err != nil {
		return "", err
	}
	if err := dir.WriteFile(file, buf.Bytes()); err != nil {
		return "", err
	}
	return filepath.Join(dir.Path, file), nil
}

// Encode writes the config as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

func (c Config) GaugeStyle() gauge.Style {
	return gauge.Style{
		LineWidth:        c.Gauge.LineWidth,
		ArcWidthFraction: c.Gauge.ArcWidthFraction,
		NotchLength:      c.Gauge.NotchLength,
	}
}

func (c Config) GraphLayout() graph.Layout {
	return graph.Layout{
		Margin:         c.Graph.Margin,
		TopBorder:      c.Graph.TopBorder,
		BottomBorder:   c.Graph.BottomBorder,
		CircleDiameter: c.Graph.CircleDiameter,
		CornerRadius:   c.Graph.CornerRadius,
		LineWidth:      c.Graph.LineWidth,
	}
}

func (c Config) ButtonStyle() button.Style {
	return button.Style{
		PlusSize:     c.Button.PlusSize,
		LineWidth:    c.Button.LineWidth,
		PressedScale: c.Button.PressedScale,
	}
}

// Palette decodes the colours. The config has been validated, so an error
// here only arises for hand-built values.
func (c Config) Palette() (render.Palette, error) {
	return c.Colors.Parse()
}

// Tracker builds the counter from the configured goal and the most recent
// Days of history.
func (c Config) Tracker() *intake.Tracker {
	return intake.NewTrackerWith(c.Goal, intake.LastDays(c.History, c.Days))
}

// Scene bundles the drawing styles and colours for the renderers.
func (c Config) Scene() (render.Scene, error) {
	p, err := c.Palette()
	if err != nil {
		return render.Scene{}, err
	}
	return render.Scene{
		Gauge:   c.GaugeStyle(),
		Graph:   c.GraphLayout(),
		Button:  c.ButtonStyle(),
		Palette: p,
	}, nil
}
