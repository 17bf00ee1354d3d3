package tui

import (
	"github.com/ultraship/employeehub/core/directory"
	"github.com/ultraship/employeehub/core/lookup"
	"github.com/ultraship/employeehub/core/session"
)

// Messages carry network completions back onto the event loop. They are
// applied in arrival order; a stale response landing after a newer one
// simply wins last.

type (
	authResultMsg struct {
		res    session.AuthResult
		signup bool
		err    error
	}

	rosterMsg struct {
		page directory.Page
		err  error
	}

	classesMsg struct {
		items []lookup.Item
		err   error
	}

	subjectsMsg struct {
		items []lookup.Item
		err   error
	}

	profileMsg struct {
		raw directory.RawEmployee
		err error
	}

	saveDoneMsg struct {
		id      string
		updated directory.RawEmployee
		err     error
	}
)
