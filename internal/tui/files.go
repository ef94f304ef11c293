package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"flo/internal/intake"
	"flo/internal/log"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.ToLower(filepath.Ext(name)) != ".csv" {
			continue
		}
		items = append(items, fileItem{title: name, desc: "csv", path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no csv files in current directory"
	}
}

// loadPath replaces the history with the one in the CSV file at p. The
// counter is kept.
func (m *Model) loadPath(p string) error {
	h, err := intake.LoadHistoryCSV(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		log.Warnw("history not loaded", "path", p, "error", err)
		return err
	}
	h = intake.LastDays(h, m.days)
	m.tracker.SetHistory(h)
	m.status = fmt.Sprintf("loaded: %s  days=%d", filepath.Base(p), len(h))
	log.Infow("history loaded", "path", p, "days", len(h))
	if m.showHistory {
		m.refreshHistory()
	}
	return nil
}
