package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"flo/internal/config"
	"flo/internal/intake"
	"flo/internal/render"
)

type Model struct {
	width  int
	height int

	tracker   *intake.Tracker
	scene     render.Scene
	days      int
	exportDir string

	showGraph   bool
	helpVisible bool
	status      string

	// history file picker
	showPicker bool
	cwd        string
	l          list.Model

	// history table
	showHistory bool
	tbl         table.Model

	keys keyMap
	help help.Model
}

func New(cfg config.Config) (Model, error) {
	scene, err := cfg.Scene()
	if err != nil {
		return Model{}, err
	}
	m := Model{
		tracker:     cfg.Tracker(),
		scene:       scene,
		days:        cfg.Days,
		exportDir:   cfg.ExportDir,
		helpVisible: cfg.HelpVisible,
		status:      "flo ready",
		keys:        defaultKeys(),
		help:        help.New(),
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "History files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	return m, nil
}

// NewWithPath preloads a history file at launch.
func NewWithPath(cfg config.Config, path string) (Model, error) {
	m, err := New(cfg)
	if err != nil {
		return m, err
	}
	if path != "" {
		if err := m.loadPath(path); err != nil {
			return m, err
		}
	}
	return m, nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) reading() intake.Reading { return m.tracker.Reading() }

func (m Model) view() render.View {
	if m.showGraph {
		return render.GraphView
	}
	return render.GaugeView
}
