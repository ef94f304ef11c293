package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flo/internal/config"
)

func newModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	cfg.ExportDir = t.TempDir()
	m, err := New(cfg)
	require.NoError(t, err)
	m.cwd = t.TempDir()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func TestCountKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
		want int
	}{
		{name: "plus", keys: []tea.Msg{runes("+")}, want: 1},
		{name: "equals", keys: []tea.Msg{runes("="), runes("=")}, want: 2},
		{name: "minus", keys: []tea.Msg{runes("+"), runes("-")}, want: 0},
		{name: "underscore at zero", keys: []tea.Msg{runes("_")}, want: 0},
		{name: "stops at goal", keys: []tea.Msg{
			runes("+"), runes("+"), runes("+"), runes("+"), runes("+"),
			runes("+"), runes("+"), runes("+"), runes("+"), runes("+"),
		}, want: 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := send(t, newModel(t), tt.keys...)
			assert.Equal(t, tt.want, m.reading().Count)
		})
	}
}

func TestCountStatus(t *testing.T) {
	m := newModel(t)
	m, _ = send(t, m, runes("+"))
	assert.Equal(t, "1 / 8 glasses", m.status)

	m, _ = send(t, m, runes("-"), runes("-"))
	assert.Equal(t, "nothing to remove", m.status)

	m.tracker = config.Default().Tracker()
	for i := 0; i < 8; i++ {
		m, _ = send(t, m, runes("+"))
	}
	m, _ = send(t, m, runes("+"))
	assert.Equal(t, "goal reached: 8 / 8", m.status)
}

func TestFlip(t *testing.T) {
	m := newModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.showGraph)
	assert.Equal(t, "view: graph", m.status)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, m.showGraph)

	// counting returns to the gauge
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("+"))
	assert.False(t, m.showGraph)
	assert.Equal(t, 1, m.reading().Count)

	// a refused count still returns to the gauge
	m, _ = send(t, m, runes("-"), tea.KeyMsg{Type: tea.KeyTab}, runes("-"))
	assert.False(t, m.showGraph)
	assert.Equal(t, "nothing to remove", m.status)

	m.tracker = config.Default().Tracker()
	for i := 0; i < 8; i++ {
		m, _ = send(t, m, runes("+"))
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("+"))
	assert.False(t, m.showGraph)
	assert.Equal(t, 8, m.reading().Count)
}

func TestQuit(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := send(t, newModel(t), k)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestHelpToggle(t *testing.T) {
	m := newModel(t)
	require.True(t, m.helpVisible)
	assert.Contains(t, m.View(), "add glass")

	m, _ = send(t, m, runes("h"))
	assert.False(t, m.helpVisible)
	assert.NotContains(t, m.View(), "add glass")
}

func TestExport(t *testing.T) {
	m := newModel(t)
	m, _ = send(t, m, runes("+"), runes("e"))
	path := filepath.Join(m.exportDir, "flo-gauge.svg")
	assert.Equal(t, "exported: "+path, m.status)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `<g id="gauge">`)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("e"))
	b, err = os.ReadFile(filepath.Join(m.exportDir, "flo-graph.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(b), `<g id="graph">`)

	m.exportDir = filepath.Join(m.exportDir, "missing")
	m, _ = send(t, m, runes("e"))
	assert.True(t, strings.HasPrefix(m.status, "export error: "))
}

func TestOpenHistory(t *testing.T) {
	m := newModel(t)
	csv := "day,glasses\nmon,1\ntue,2\nwed,3\n"
	require.NoError(t, os.WriteFile(filepath.Join(m.cwd, "week.csv"), []byte(csv), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(m.cwd, "notes.txt"), []byte("x"), 0o644))

	m, _ = send(t, m, runes("o"))
	require.True(t, m.showPicker)
	require.Len(t, m.l.Items(), 1)

	// keys go to the picker, not the counter
	m, _ = send(t, m, runes("+"))
	assert.Zero(t, m.reading().Count)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.showPicker)
	assert.Equal(t, []int{1, 2, 3}, m.reading().History)
	assert.Equal(t, "loaded: week.csv  days=3", m.status)
}

func TestOpenEmptyDir(t *testing.T) {
	m, _ := send(t, newModel(t), runes("o"))
	assert.Equal(t, "no csv files in current directory", m.status)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.showPicker)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showPicker)
}

func TestNewWithPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "h.csv")
	require.NoError(t, os.WriteFile(path, []byte("water\n1\n2\n3\n4\n5\n6\n7\n8\n9\n"), 0o644))

	m, err := NewWithPath(config.Default(), path)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5, 6, 7, 8, 9}, m.reading().History)

	_, err = NewWithPath(config.Default(), filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}

func TestHistoryTable(t *testing.T) {
	m := newModel(t)
	m, _ = send(t, m, runes("+"), runes("+"), runes("t"))
	require.True(t, m.showHistory)

	rows := m.tbl.Rows()
	require.Len(t, rows, 7)
	assert.Equal(t, "6 days ago", rows[0][0])
	assert.Equal(t, "yesterday", rows[5][0])
	assert.Equal(t, "4", rows[0][1])
	assert.Equal(t, "today", rows[6][0])
	assert.Equal(t, "2", rows[6][1])
	assert.Equal(t, strings.Repeat("█", 16), rows[5][2])

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showHistory)
}

func TestView(t *testing.T) {
	m := newModel(t)
	out := m.View()
	assert.Contains(t, out, "flo")
	assert.Contains(t, out, "0 / 8 glasses")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Contains(t, m.View(), "water drunk  max 8  avg 3")

	assert.Empty(t, Model{}.View())
}

func TestSquareCells(t *testing.T) {
	tests := []struct {
		w, h, cw, ch int
	}{
		{w: 100, h: 20, cw: 40, ch: 20},
		{w: 20, h: 100, cw: 20, ch: 10},
		{w: 0, h: 0, cw: 1, ch: 1},
	}
	for _, tt := range tests {
		cw, ch := squareCells(tt.w, tt.h)
		assert.Equal(t, tt.cw, cw)
		assert.Equal(t, tt.ch, ch)
	}
}

func TestBar(t *testing.T) {
	assert.Equal(t, "", bar(0, 8))
	assert.Equal(t, "", bar(3, 0))
	assert.Equal(t, strings.Repeat("█", 8), bar(4, 8))
	assert.Equal(t, "█", bar(1, 100))
}
