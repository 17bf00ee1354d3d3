package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ultraship/employeehub/core/directory"
	"github.com/ultraship/employeehub/core/session"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.authed {
			return m.updateAuth(msg)
		}
		return m.updateMain(msg)

	case authResultMsg:
		return m.applyAuthResult(msg)

	case rosterMsg:
		m.rosterLoading = false
		if msg.err != nil {
			m.rosterErr = true
			m.deps.Log.Warn("roster fetch failed", "error", msg.err)
			return m, nil
		}
		m.rosterErr = false
		first := m.deps.Roster.ApplyPage(msg.page)
		if m.deps.Sync.EditingID() == "" && first != "" {
			m.deps.Sync.SetTarget(first)
		} else {
			m.deps.Sync.Recompute()
		}
		m.clampCursor()
		return m, nil

	case classesMsg:
		if msg.err != nil {
			m.deps.Log.Warn("classes fetch failed", "error", msg.err)
		}
		m.deps.Cache.SetClasses(msg.items, msg.err)
		m.deps.Sync.Recompute()
		return m, nil

	case subjectsMsg:
		if msg.err != nil {
			m.deps.Log.Warn("subjects fetch failed", "error", msg.err)
		}
		m.deps.Cache.SetSubjects(msg.items, msg.err)
		m.deps.Sync.Recompute()
		m.clampSubjectCursor()
		return m, nil

	case profileMsg:
		if msg.err != nil {
			// keep the placeholder built from the session user
			m.deps.Log.Warn("profile fetch failed", "error", msg.err)
			return m, nil
		}
		p := directory.ProfileFrom(msg.raw)
		m.profile = &p
		return m, nil

	case saveDoneMsg:
		m.saving = false
		if msg.err != nil {
			m.saveFailed = true
			m.deps.Log.Error("save failed", "error", msg.err, "employee", msg.id)
			return m, nil
		}
		m.saveFailed = false
		m.deps.Sync.ApplyCommit(msg.id, msg.updated)
		return m, nil
	}

	// pass anything else (blink ticks etc.) to whichever input has focus
	if !m.authed {
		cmd := m.auth.updateFocused(msg)
		return m, cmd
	}
	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// --- auth screen ---

func (m Model) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.auth.cycleFocus(false)
		return m, nil
	case "shift+tab", "up":
		m.auth.cycleFocus(true)
		return m, nil
	case "ctrl+t":
		m.auth.toggleMode()
		return m, nil
	case "enter":
		return m.submitAuth()
	}
	cmd := m.auth.updateFocused(msg)
	return m, cmd
}

func (m Model) submitAuth() (tea.Model, tea.Cmd) {
	if m.auth.loading {
		return m, nil
	}
	if m.auth.mode == authSignup {
		form := session.SignUpForm{
			Name:     m.auth.value(fieldName),
			DOB:      m.auth.value(fieldDOB),
			Email:    m.auth.value(fieldEmail),
			Password: m.auth.value(fieldPassword),
		}
		if err := form.Validate(m.validate); err != nil {
			m.auth.errMsg = validationText(err, m.trans)
			return m, nil
		}
		m.auth.errMsg = ""
		m.auth.loading = true
		return m, m.signUpCmd(form)
	}

	form := session.LoginForm{
		Email:    m.auth.value(fieldEmail),
		Password: m.auth.value(fieldPassword),
	}
	if err := form.Validate(m.validate); err != nil {
		m.auth.errMsg = validationText(err, m.trans)
		return m, nil
	}
	m.auth.errMsg = ""
	m.auth.loading = true
	return m, m.loginCmd(form)
}

func (m Model) applyAuthResult(msg authResultMsg) (tea.Model, tea.Cmd) {
	m.auth.loading = false
	if msg.err != nil {
		m.auth.errMsg = msg.err.Error()
		return m, nil
	}
	var (
		sess session.Session
		err  error
	)
	if msg.signup {
		sess, err = m.deps.Sessions.EstablishSignUp(msg.res)
	} else {
		sess, err = m.deps.Sessions.EstablishLogin(msg.res)
	}
	if err != nil {
		m.auth.errMsg = err.Error()
		return m, nil
	}

	m.authed = true
	m.auth.reset()
	p := directory.PlaceholderProfile(sess.User.ID, sess.User.Name, sess.User.Email, sess.User.Role)
	m.profile = &p
	return m, tea.Batch(m.bootCmds()...)
}

// --- signed-in shell ---

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+o" {
		return m.signOut()
	}

	// the search box swallows plain keys while focused
	if m.focus == focusSearch {
		switch key {
		case "enter", "esc":
			m.search.Blur()
			m.focus = focusRoster
			m.clampCursor()
			return m, nil
		case "tab":
			m.search.Blur()
			return m.cycleMainFocus(false), nil
		case "shift+tab":
			m.search.Blur()
			return m.cycleMainFocus(true), nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.clampCursor()
		return m, cmd
	}

	switch key {
	case "1":
		m.tab = tabHome
		return m, nil
	case "2":
		m.tab = tabClasses
		return m, nil
	case "3":
		m.tab = tabSettings
		return m, nil
	}

	if m.tab != tabHome || !m.isAdmin() {
		return m, nil
	}

	switch key {
	case "v":
		if m.mode == modeGrid {
			m.mode = modeTiles
		} else {
			m.mode = modeGrid
		}
		return m, nil
	case "/":
		m.focus = focusSearch
		return m, m.search.Focus()
	case "tab":
		return m.cycleMainFocus(false), nil
	case "shift+tab":
		return m.cycleMainFocus(true), nil
	case "r":
		if !m.rosterLoading {
			m.rosterLoading = true
			return m, m.fetchRosterCmd()
		}
		return m, nil
	case "up", "k":
		return m.moveUp(), nil
	case "down", "j":
		return m.moveDown(), nil
	case " ":
		if m.focus == focusSubjects {
			m.toggleSubjectUnderCursor()
		}
		return m, nil
	case "e":
		if m.focus == focusRoster {
			if emp, ok := m.employeeUnderCursor(); ok {
				m.deps.Sync.SetTarget(emp.ID)
				m.selected = nil
			}
		}
		return m, nil
	case "enter":
		return m.mainEnter()
	case "esc":
		m.selected = nil
		return m, nil
	}
	return m, nil
}

func (m Model) mainEnter() (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusRoster:
		if emp, ok := m.employeeUnderCursor(); ok {
			e := emp
			m.selected = &e
		}
		return m, nil
	case focusSubjects:
		m.toggleSubjectUnderCursor()
		return m, nil
	case focusSave:
		return m.submitSave()
	}
	return m, nil
}

// submitSave kicks off the update request for the edit target. Only one save
// runs at a time; the button is inert while one is in flight.
func (m Model) submitSave() (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	id, input, err := m.deps.Sync.CommitInput()
	if err != nil {
		return m, nil
	}
	m.saving = true
	m.saveFailed = false
	return m, m.saveCmd(id, input)
}

func (m Model) signOut() (tea.Model, tea.Cmd) {
	if err := m.deps.Sessions.SignOut(); err != nil {
		m.deps.Log.Warn("sign-out persistence failed", "error", err)
	}
	m.deps.Roster.Reset()
	m.deps.Cache.Reset()
	m.deps.Sync.Reset()
	m.deps.Cache.Activate(false)

	m.authed = false
	m.auth.reset()
	m.profile = nil
	m.selected = nil
	m.cursor = 0
	m.subjectCursor = 0
	m.focus = focusRoster
	m.tab = tabHome
	m.search.SetValue("")
	m.search.Blur()
	m.rosterLoading = false
	m.rosterErr = false
	m.saving = false
	m.saveFailed = false
	return m, nil
}

// focusOrder is the tab cycle on the admin home view.
var focusOrder = []focusArea{focusRoster, focusSearch, focusClass, focusSubjects, focusSave}

func (m Model) cycleMainFocus(backwards bool) Model {
	pos := 0
	for i, f := range focusOrder {
		if f == m.focus {
			pos = i
			break
		}
	}
	if backwards {
		pos = (pos - 1 + len(focusOrder)) % len(focusOrder)
	} else {
		pos = (pos + 1) % len(focusOrder)
	}
	m.focus = focusOrder[pos]
	if m.focus == focusSearch {
		m.search.Focus()
	} else {
		m.search.Blur()
	}
	return m
}

func (m Model) moveUp() Model {
	switch m.focus {
	case focusRoster:
		if m.cursor > 0 {
			m.cursor--
		}
	case focusClass:
		m.cycleClass(-1)
	case focusSubjects:
		if m.subjectCursor > 0 {
			m.subjectCursor--
		}
	}
	return m
}

func (m Model) moveDown() Model {
	switch m.focus {
	case focusRoster:
		if m.cursor < len(m.visibleEmployees())-1 {
			m.cursor++
		}
	case focusClass:
		m.cycleClass(1)
	case focusSubjects:
		if m.subjectCursor < len(m.deps.Cache.Subjects().Items)-1 {
			m.subjectCursor++
		}
	}
	return m
}

// cycleClass steps the class picker through "no class" plus every loaded
// class, wrapping at both ends.
func (m *Model) cycleClass(step int) {
	items := m.deps.Cache.Classes().Items
	if len(items) == 0 {
		return
	}
	// slot 0 is "no class", slots 1..n are the items
	pos := 0
	curr := m.deps.Sync.Selection().ClassID
	for i, it := range items {
		if it.ID == curr {
			pos = i + 1
			break
		}
	}
	n := len(items) + 1
	pos = (pos + step + n) % n
	if pos == 0 {
		m.deps.Sync.SelectClass("")
	} else {
		m.deps.Sync.SelectClass(items[pos-1].ID)
	}
}

func (m *Model) toggleSubjectUnderCursor() {
	items := m.deps.Cache.Subjects().Items
	if m.subjectCursor < 0 || m.subjectCursor >= len(items) {
		return
	}
	it := items[m.subjectCursor]
	checked := m.deps.Sync.Selection().SubjectIDs[it.ID]
	m.deps.Sync.ToggleSubject(it.ID, !checked)
}

func (m *Model) employeeUnderCursor() (directory.Employee, bool) {
	emps := m.visibleEmployees()
	if m.cursor < 0 || m.cursor >= len(emps) {
		return directory.Employee{}, false
	}
	return emps[m.cursor], true
}
