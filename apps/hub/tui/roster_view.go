package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ultraship/employeehub/core/directory"
)

func (m Model) rosterPanel() string {
	var b strings.Builder
	b.WriteString(headerRowStyle.Render("Employees"))
	b.WriteString("  ")
	if m.mode == modeGrid {
		b.WriteString(dimStyle.Render("[grid]"))
	} else {
		b.WriteString(dimStyle.Render("[tiles]"))
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Search"))
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	switch {
	case m.rosterLoading:
		b.WriteString(dimStyle.Render("Loading employees..."))
	case m.rosterErr:
		b.WriteString(errStyle.Render("Could not load employees."))
	default:
		emps := m.visibleEmployees()
		if len(emps) == 0 {
			b.WriteString(dimStyle.Render("No employees match."))
		} else if m.mode == modeGrid {
			b.WriteString(m.rosterGrid(emps))
		} else {
			b.WriteString(m.rosterTiles(emps))
		}
	}

	body := b.String()
	if m.selected != nil {
		body += "\n\n" + m.detailCard(*m.selected)
	}

	style := panelStyle
	if m.focus == focusRoster || m.focus == focusSearch {
		style = focusedPanelStyle
	}
	return style.Render(body)
}

func (m Model) rosterGrid(emps []directory.Employee) string {
	var b strings.Builder
	header := fmt.Sprintf("%-20s %-8s %-24s %10s  %-8s", "Name", "Class", "Subjects", "Attendance", "Status")
	b.WriteString(headerRowStyle.Render(header))
	b.WriteString("\n")

	editing := m.deps.Sync.EditingID()
	for i, e := range emps {
		row := fmt.Sprintf("%-20s %-8s %-24s %9.1f%%  %-8s",
			trunc(e.Name, 20), trunc(e.ClassName, 8),
			trunc(strings.Join(e.Subjects, ", "), 24),
			e.AttendancePercent, trunc(e.Status, 8))
		if e.ID == editing {
			row += " *"
		}
		if i == m.cursor {
			row = cursorRowStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) rosterTiles(emps []directory.Employee) string {
	tiles := make([]string, 0, len(emps))
	for i, e := range emps {
		var t strings.Builder
		t.WriteString(headerRowStyle.Render(e.Name))
		t.WriteString("\n")
		t.WriteString(dimStyle.Render(e.Email))
		t.WriteString("\n")
		t.WriteString(fmt.Sprintf("Class %s • %s", e.ClassName, e.Status))
		t.WriteString("\n")
		t.WriteString(fmt.Sprintf("%.1f%% attendance", e.AttendancePercent))

		style := tileStyle
		if i == m.cursor {
			style = cursorTileStyle
		}
		tiles = append(tiles, style.Render(t.String()))
	}

	// two tiles per row
	rows := make([]string, 0, (len(tiles)+1)/2)
	for i := 0; i < len(tiles); i += 2 {
		end := i + 2
		if end > len(tiles) {
			end = len(tiles)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) detailCard(e directory.Employee) string {
	var b strings.Builder
	b.WriteString(headerRowStyle.Render(e.Name))
	b.WriteString("\n")
	write := func(label, value string) {
		if value == "" {
			value = "-"
		}
		b.WriteString(labelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}
	write("Email", e.Email)
	write("Role", e.Role)
	write("Class", e.ClassName)
	write("Subjects", strings.Join(e.Subjects, ", "))
	write("Attendance", fmt.Sprintf("%.1f%%", e.AttendancePercent))
	write("Phone", e.Phone)
	write("Location", e.Location)
	write("Status", e.Status)
	return focusedPanelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func trunc(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
