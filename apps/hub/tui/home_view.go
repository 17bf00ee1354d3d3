package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) homeView() string {
	profile := m.profilePanel()
	if !m.isAdmin() {
		return profile
	}

	roster := m.rosterPanel()
	edit := m.editPanel()

	right := lipgloss.JoinVertical(lipgloss.Left, profile, edit)
	return lipgloss.JoinHorizontal(lipgloss.Top, roster, " ", right)
}

func (m Model) profilePanel() string {
	var b strings.Builder
	b.WriteString(headerRowStyle.Render("My Profile"))
	b.WriteString("\n")

	if m.profile == nil {
		b.WriteString(dimStyle.Render("Loading profile..."))
		return panelStyle.Render(b.String())
	}

	p := m.profile
	writeField := func(label, value string) {
		if value == "" {
			value = "-"
		}
		b.WriteString(labelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}
	writeField("Name", p.Name)
	writeField("Email", p.Email)
	writeField("Role", p.Role)
	writeField("Birth date", p.DateOfBirth)
	writeField("Classes", strings.Join(p.ClassNames, ", "))
	writeField("Subjects", strings.Join(p.Subjects, ", "))
	if p.AttendancePercent != nil {
		writeField("Attendance", fmt.Sprintf("%.1f%%", *p.AttendancePercent))
	} else {
		writeField("Attendance", "-")
	}
	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}
