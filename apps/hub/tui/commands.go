package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ultraship/employeehub/core/directory"
	"github.com/ultraship/employeehub/core/session"
)

// Commands run off the event loop and only touch the network clients; every
// state mutation happens back in Update when their message arrives.

func (m Model) requestCtx() (context.Context, context.CancelFunc) {
	timeout := m.deps.Cfg.API.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}

func (m Model) loginCmd(form session.LoginForm) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestCtx()
		defer cancel()
		res, err := m.deps.Auth.Login(ctx, form.Email, form.Password)
		return authResultMsg{res: res, err: err}
	}
}

func (m Model) signUpCmd(form session.SignUpForm) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestCtx()
		defer cancel()
		res, err := m.deps.Auth.SignUp(ctx, form.Name, form.Email, form.Password, form.DOB)
		return authResultMsg{res: res, signup: true, err: err}
	}
}

func (m Model) fetchRosterCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestCtx()
		defer cancel()
		page, err := m.deps.Roster.FetchPage(ctx)
		return rosterMsg{page: page, err: err}
	}
}

func (m Model) fetchClassesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestCtx()
		defer cancel()
		items, err := m.deps.Lookups.Classes(ctx)
		return classesMsg{items: items, err: err}
	}
}

func (m Model) fetchSubjectsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestCtx()
		defer cancel()
		items, err := m.deps.Lookups.Subjects(ctx)
		return subjectsMsg{items: items, err: err}
	}
}

func (m Model) fetchProfileCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestCtx()
		defer cancel()
		raw, err := m.deps.Roster.FetchProfile(ctx, id)
		return profileMsg{raw: raw, err: err}
	}
}

func (m Model) saveCmd(id string, input directory.UpdateInput) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.requestCtx()
		defer cancel()
		updated, err := m.deps.Roster.SubmitUpdate(ctx, id, input)
		return saveDoneMsg{id: id, updated: updated, err: err}
	}
}
