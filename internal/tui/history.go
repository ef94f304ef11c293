package tui

import (
	"strconv"
	"strings"

	table "github.com/charmbracelet/bubbles/table"
)

const barWidth = 16

// refreshHistory rebuilds the table from the current reading, oldest day
// first and today last.
func (m *Model) refreshHistory() {
	r := m.reading()
	series := r.Series()
	top := r.Goal
	for _, v := range series {
		top = max(top, v)
	}
	cols := []table.Column{
		{Title: "Day", Width: 12},
		{Title: "Glasses", Width: 7},
		{Title: "", Width: barWidth},
	}
	rows := make([]table.Row, 0, len(series))
	for i, v := range series {
		ago := len(series) - 1 - i
		day := "today"
		switch {
		case ago == 1:
			day = "yesterday"
		case ago > 1:
			day = strconv.Itoa(ago) + " days ago"
		}
		rows = append(rows, table.Row{day, strconv.Itoa(v), bar(v, top)})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
	m.tbl.GotoBottom()
}

// bar draws v against top in barWidth block characters.
func bar(v, top int) string {
	if top <= 0 || v <= 0 {
		return ""
	}
	n := v * barWidth / top
	return strings.Repeat("█", max(1, n))
}
