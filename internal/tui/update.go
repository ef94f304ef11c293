package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"flo/internal/intake"
	"flo/internal/log"
	"flo/internal/render"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.showPicker {
			m.l.SetSize(sidebarWidth-2, m.height-headerHeight-footerHeight-2)
		}
	case tea.KeyMsg:
		if m.showPicker {
			return m.updatePicker(msg)
		}
		if m.showHistory {
			switch msg.String() {
			case "esc", "t":
				m.showHistory = false
				return m, nil
			case "up", "down", "k", "j", "pgup", "pgdown", "home", "end":
				var cmd tea.Cmd
				m.tbl, cmd = m.tbl.Update(msg)
				return m, cmd
			}
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Add):
			return m.count(true)
		case key.Matches(msg, m.keys.Remove):
			return m.count(false)
		case key.Matches(msg, m.keys.Flip):
			m.showGraph = !m.showGraph
			m.status = "view: " + string(m.view())
			log.Debugw("flip", "view", m.view())
		case key.Matches(msg, m.keys.History):
			m.showHistory = !m.showHistory
			if m.showHistory {
				m.refreshHistory()
			}
		case key.Matches(msg, m.keys.Open):
			m.showPicker = true
			m.refreshDir()
			m.l.SetSize(sidebarWidth-2, m.height-headerHeight-footerHeight-2)
		case key.Matches(msg, m.keys.Export):
			m.export()
		case key.Matches(msg, m.keys.Help):
			m.helpVisible = !m.helpVisible
		}
	}
	return m, nil
}

// updatePicker routes keys to the file list while it is open.
func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// while filtering every key belongs to the list
	if m.l.FilterState() != list.Filtering {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc", "o":
			m.showPicker = false
			return m, nil
		case "enter":
			if it, ok := m.l.SelectedItem().(fileItem); ok {
				if m.loadPath(it.path) == nil {
					m.showPicker = false
				}
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.l, cmd = m.l.Update(msg)
	return m, cmd
}

// count adds or removes a glass. Both keys return to the gauge, even when
// the count is already at the goal or at zero.
func (m Model) count(add bool) (tea.Model, tea.Cmd) {
	m.showGraph = false
	var changed bool
	if add {
		changed = m.tracker.Add()
	} else {
		changed = m.tracker.Remove()
	}
	r := m.reading()
	if !changed {
		if add {
			m.status = fmt.Sprintf("goal reached: %d / %d", r.Count, r.Goal)
		} else {
			m.status = "nothing to remove"
		}
		return m, nil
	}
	m.status = fmt.Sprintf("%d / %d glasses", r.Count, r.Goal)
	log.Debugw("count", "count", r.Count, "goal", r.Goal, "add", add)
	return m, nil
}

// export writes the current view as an SVG file in the export folder.
func (m *Model) export() {
	v := m.view()
	w, h := 230, 230
	if v == render.GraphView {
		w, h = 300, 250
	}
	path := filepath.Join(m.exportDir, fmt.Sprintf("flo-%s.svg", v))
	if err := writeSVG(path, m.scene, v, w, h, m.reading()); err != nil {
		m.status = "export error: " + err.Error()
		log.Errorw("export failed", "path", path, "error", err)
		return
	}
	m.status = "exported: " + path
	log.Infow("exported", "path", path, "view", v)
}

func writeSVG(path string, s render.Scene, v render.View, w, h int, r intake.Reading) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return s.Write(f, v, w, h, r)
}
