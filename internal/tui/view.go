package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Layout sizes in cells.
const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
	captionLines = 1
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)

	// Header
	header := titleStyle.Render(" flo ─ water intake ")
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	mainWidth := contentWidth
	if m.showPicker {
		m.l.SetSize(sidebarWidth-2, contentHeight-2)
		sidebar = boxStyle.Width(sidebarWidth - 2).Render(m.l.View())
		mainWidth = max(10, contentWidth-sidebarWidth-1)
	}

	// Drawing area: the view on top, its caption, then the buttons
	var mainView string
	if m.showHistory {
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(mainWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(contentHeight-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		mainView = lipgloss.Place(mainWidth, contentHeight, lipgloss.Center, lipgloss.Center, box)
	} else {
		drawH := max(2, contentHeight-captionLines-buttonCellsH)
		drawing := lipgloss.Place(mainWidth, drawH, lipgloss.Center, lipgloss.Center, m.renderDrawing(mainWidth, drawH))
		caption := lipgloss.PlaceHorizontal(mainWidth, lipgloss.Center, captionStyle.Render(m.caption()))
		buttons := lipgloss.PlaceHorizontal(mainWidth, lipgloss.Center, m.renderButtons())
		mainView = lipgloss.JoinVertical(lipgloss.Left, drawing, caption, buttons)
	}
	mainView = lipgloss.NewStyle().Width(mainWidth).Height(contentHeight).Render(mainView)

	// Body row
	body := mainView
	if m.showPicker {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mainView)
	}

	// Footer / help
	status := dimStyle.Render(" " + m.status + " ")
	help := ""
	if m.helpVisible {
		help = "  " + m.help.View(m.keys)
	}
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, status, help))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}
