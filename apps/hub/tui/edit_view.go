package tui

import (
	"strings"
)

// editPanel renders the admin assignment editor for the current edit target:
// the class picker, one checkbox per known subject, and the save button.
func (m Model) editPanel() string {
	var b strings.Builder
	b.WriteString(headerRowStyle.Render("Edit assignments"))
	b.WriteString("\n")

	id := m.deps.Sync.EditingID()
	emp, ok := m.deps.Roster.Find(id)
	if id == "" || !ok {
		b.WriteString(dimStyle.Render("Press e on an employee to edit."))
		return panelStyle.Render(b.String())
	}

	sel := m.deps.Sync.Selection()
	b.WriteString(labelStyle.Render("Editing"))
	b.WriteString(emp.Name)
	b.WriteString("\n\n")

	b.WriteString(m.classPicker(sel.ClassText))
	b.WriteString("\n")
	b.WriteString(m.subjectChecklist(sel.SubjectIDs, sel.SubjectsText))
	b.WriteString("\n")

	switch {
	case m.saving:
		b.WriteString(buttonStyle.Render("Saving..."))
	case m.focus == focusSave:
		b.WriteString(activeButtonStyle.Render("Save"))
	default:
		b.WriteString(buttonStyle.Render("Save"))
	}
	if m.saveFailed {
		b.WriteString("  ")
		b.WriteString(errStyle.Render("Save failed."))
	}

	style := panelStyle
	if m.focus == focusClass || m.focus == focusSubjects || m.focus == focusSave {
		style = focusedPanelStyle
	}
	return style.Render(b.String())
}

func (m Model) classPicker(classText string) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Class"))

	classes := m.deps.Cache.Classes()
	value := classText
	if value == "" {
		value = "(none)"
	}
	if m.focus == focusClass {
		b.WriteString(cursorRowStyle.Render(" " + value + " "))
		b.WriteString(dimStyle.Render("  ↑/↓ change"))
	} else {
		b.WriteString(value)
	}
	b.WriteString("\n")

	switch {
	case classes.Loading:
		b.WriteString(labelStyle.Render(""))
		b.WriteString(dimStyle.Render("Loading classes..."))
		b.WriteString("\n")
	case classes.Err != "":
		b.WriteString(labelStyle.Render(""))
		b.WriteString(errStyle.Render(classes.Err))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) subjectChecklist(selected map[string]bool, subjectsText string) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Subjects"))

	subjects := m.deps.Cache.Subjects()
	switch {
	case subjects.Loading:
		b.WriteString(dimStyle.Render("Loading subjects..."))
		b.WriteString("\n")
		return b.String()
	case subjects.Err != "":
		b.WriteString(errStyle.Render(subjects.Err))
		b.WriteString("\n")
		return b.String()
	case !subjects.Ready:
		// no option list yet: show the free-text rendering as-is
		if subjectsText == "" {
			subjectsText = "-"
		}
		b.WriteString(subjectsText)
		b.WriteString("\n")
		return b.String()
	}

	if len(subjects.Items) == 0 {
		b.WriteString(dimStyle.Render("No subjects available."))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString("\n")

	for i, it := range subjects.Items {
		mark := "[ ]"
		if selected[it.ID] {
			mark = okStyle.Render("[x]")
		}
		line := mark + " " + it.Name
		if m.focus == focusSubjects && i == m.subjectCursor {
			line = cursorRowStyle.Render(line)
		}
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
