package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if !m.authed {
		return m.authView()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Employee Hub"))
	b.WriteString("  ")
	b.WriteString(m.tabBar())
	b.WriteString("\n\n")

	switch m.tab {
	case tabHome:
		b.WriteString(m.homeView())
	case tabClasses:
		b.WriteString(dimStyle.Render("Classes: coming soon."))
	case tabSettings:
		b.WriteString(dimStyle.Render("Settings: coming soon."))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))
	return b.String()
}

func (m Model) tabBar() string {
	names := []string{"1 Home", "2 Classes", "3 Settings"}
	tabs := make([]string, len(names))
	for i, name := range names {
		if navTab(i) == m.tab {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) helpLine() string {
	if m.selected != nil {
		return "esc close • ctrl+c quit"
	}
	if m.isAdmin() && m.tab == tabHome {
		return "tab focus • / search • v grid/tiles • e edit • r reload • space toggle • enter open/save • ctrl+o sign out • ctrl+c quit"
	}
	return "1/2/3 tabs • ctrl+o sign out • ctrl+c quit"
}

func (m Model) authView() string {
	var b strings.Builder

	heading := "Sign in"
	if m.auth.mode == authSignup {
		heading = "Create account"
	}
	b.WriteString(titleStyle.Render("Employee Hub"))
	b.WriteString("\n\n")
	b.WriteString(headerRowStyle.Render(heading))
	b.WriteString("\n\n")

	labels := map[int]string{
		fieldName:     "Name",
		fieldDOB:      "Birth date",
		fieldEmail:    "Email",
		fieldPassword: "Password",
	}
	for _, idx := range m.auth.fields() {
		b.WriteString(labelStyle.Render(labels[idx]))
		b.WriteString(m.auth.inputs[idx].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.auth.loading:
		b.WriteString(dimStyle.Render("Signing in..."))
	case m.auth.errMsg != "":
		b.WriteString(errStyle.Render(m.auth.errMsg))
	}
	b.WriteString("\n\n")

	toggle := "ctrl+t sign up instead"
	if m.auth.mode == authSignup {
		toggle = "ctrl+t sign in instead"
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("enter submit • tab next field • %s • ctrl+c quit", toggle)))
	return b.String()
}
