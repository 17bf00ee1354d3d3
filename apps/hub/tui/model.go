// Package tui is the terminal shell of Employee Hub: the auth screen, the
// profile panel, the roster in grid and tile modes, the detail view, and the
// admin edit panel. All state transitions run on the bubbletea event loop;
// network calls run as commands and come back as messages.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/ultraship/employeehub/core"
	"github.com/ultraship/employeehub/core/directory"
	"github.com/ultraship/employeehub/core/editsync"
	"github.com/ultraship/employeehub/core/lookup"
	"github.com/ultraship/employeehub/core/session"
)

type (
	navTab    int
	viewMode  int
	focusArea int
)

const (
	tabHome navTab = iota
	tabClasses
	tabSettings
)

const (
	modeGrid viewMode = iota
	modeTiles
)

const (
	focusRoster focusArea = iota
	focusSearch
	focusClass
	focusSubjects
	focusSave
)

// Deps are the wired services the shell drives.
type Deps struct {
	Cfg      *core.Config
	Log      core.Logger
	Auth     session.Client
	Sessions *session.Service
	Roster   *directory.Service
	Cache    *lookup.Cache
	Sync     *editsync.Synchronizer
	Lookups  lookup.Client
}

type Model struct {
	deps     Deps
	validate *validator.Validate
	trans    ut.Translator

	authed bool
	auth   authForm

	tab  navTab
	mode viewMode

	cursor        int
	selected      *directory.Employee
	search        textinput.Model
	focus         focusArea
	subjectCursor int

	profile *directory.Profile

	rosterLoading bool
	rosterErr     bool
	saving        bool
	saveFailed    bool

	width  int
	height int
}

func New(deps Deps) Model {
	validate, trans := core.NewValidator()

	search := textinput.New()
	search.Placeholder = "Search by name or email"
	search.CharLimit = 64

	m := Model{
		deps:     deps,
		validate: validate,
		trans:    trans,
		auth:     newAuthForm(),
		search:   search,
	}

	if sess, ok := deps.Sessions.Restore(); ok {
		m.authed = true
		p := directory.PlaceholderProfile(sess.User.ID, sess.User.Name, sess.User.Email, sess.User.Role)
		m.profile = &p
		// Init fires the fetch; the flag has to be set here so it survives
		// the value-receiver Init call
		m.rosterLoading = sess.User.IsAdmin()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.authed {
		cmds = append(cmds, m.bootCmds()...)
	}
	return tea.Batch(cmds...)
}

// bootCmds are the fetches a fresh session kicks off: the profile query for
// everyone; the roster page and, on the admin transition, the two lookup
// fetches for admins.
func (m *Model) bootCmds() []tea.Cmd {
	sess, ok := m.deps.Sessions.Current()
	if !ok {
		return nil
	}
	cmds := []tea.Cmd{m.fetchProfileCmd(sess.User.ID)}
	if sess.User.IsAdmin() {
		m.rosterLoading = true
		cmds = append(cmds, m.fetchRosterCmd())
		if m.deps.Cache.Activate(true) {
			cmds = append(cmds, m.fetchClassesCmd(), m.fetchSubjectsCmd())
		}
	}
	return cmds
}

func (m *Model) isAdmin() bool {
	return m.deps.Sessions.IsAdmin()
}

// visibleEmployees is the roster filtered by the current search term.
func (m *Model) visibleEmployees() []directory.Employee {
	return m.deps.Roster.Search(m.search.Value())
}

func (m *Model) clampCursor() {
	if n := len(m.visibleEmployees()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) clampSubjectCursor() {
	if n := len(m.deps.Cache.Subjects().Items); m.subjectCursor >= n {
		m.subjectCursor = n - 1
	}
	if m.subjectCursor < 0 {
		m.subjectCursor = 0
	}
}
