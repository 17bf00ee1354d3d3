package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/ultraship/employeehub/core"
)

type authMode int

const (
	authLogin authMode = iota
	authSignup
)

// field indexes into authForm.inputs
const (
	fieldName = iota
	fieldDOB
	fieldEmail
	fieldPassword
	fieldCount
)

// authForm is the dual-mode login/signup entry.
type authForm struct {
	mode    authMode
	inputs  []textinput.Model
	focus   int
	errMsg  string
	loading bool
}

func newAuthForm() authForm {
	inputs := make([]textinput.Model, fieldCount)

	name := textinput.New()
	name.Placeholder = "Full name"
	inputs[fieldName] = name

	dob := textinput.New()
	dob.Placeholder = "YYYY-MM-DD"
	dob.CharLimit = 10
	inputs[fieldDOB] = dob

	email := textinput.New()
	email.Placeholder = "you@school.org"
	inputs[fieldEmail] = email

	password := textinput.New()
	password.Placeholder = "Password"
	password.EchoMode = textinput.EchoPassword
	inputs[fieldPassword] = password

	f := authForm{mode: authLogin, inputs: inputs}
	f.setFocus(f.fields()[0])
	return f
}

// fields returns the input indexes active in the current mode.
func (f *authForm) fields() []int {
	if f.mode == authSignup {
		return []int{fieldName, fieldDOB, fieldEmail, fieldPassword}
	}
	return []int{fieldEmail, fieldPassword}
}

func (f *authForm) setFocus(idx int) {
	f.focus = idx
	for i := range f.inputs {
		if i == idx {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

func (f *authForm) cycleFocus(backwards bool) {
	fields := f.fields()
	pos := 0
	for i, idx := range fields {
		if idx == f.focus {
			pos = i
			break
		}
	}
	if backwards {
		pos = (pos - 1 + len(fields)) % len(fields)
	} else {
		pos = (pos + 1) % len(fields)
	}
	f.setFocus(fields[pos])
}

func (f *authForm) toggleMode() {
	if f.mode == authLogin {
		f.mode = authSignup
	} else {
		f.mode = authLogin
	}
	f.errMsg = ""
	f.setFocus(f.fields()[0])
}

func (f *authForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.errMsg = ""
	f.loading = false
	f.mode = authLogin
	f.setFocus(f.fields()[0])
}

func (f *authForm) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *authForm) value(idx int) string { return f.inputs[idx].Value() }

// validationText renders a validation failure the way the form shows it.
func validationText(err error, trans ut.Translator) string {
	switch verr := err.(type) {
	case validator.ValidationErrors:
		parts := make([]string, 0, len(verr))
		for _, fe := range verr {
			parts = append(parts, fe.Field()+": "+fe.Translate(trans))
		}
		return strings.Join(parts, "; ")
	case *core.ValidationError:
		if len(verr.Fields) > 0 {
			parts := make([]string, 0, len(verr.Fields))
			for _, fe := range verr.Fields {
				parts = append(parts, fe.Field+": "+fe.Error)
			}
			return strings.Join(parts, "; ")
		}
		return verr.Error()
	default:
		return err.Error()
	}
}
