package session

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ultraship/employeehub/core"
)

// Storage keys, shared with any other tool pointed at the same state file.
const (
	TokenKey = "authToken"
	UserKey  = "currentUser"
)

// User is the identity carried by an authenticated session.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// IsAdmin reports whether the user's role unlocks the admin surfaces.
// The check is a case-insensitive substring test on the role string.
func (u User) IsAdmin() bool {
	return strings.Contains(strings.ToUpper(u.Role), "ADMIN")
}

// Session pairs an API token with the user it belongs to.
// Token and User are always both present or both absent.
type Session struct {
	Token string
	User  User
}

// LoginForm contains the credentials needed to sign in.
type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (f *LoginForm) Validate(validate *validator.Validate) error {
	f.Email = core.CleanString(f.Email, true /* lower */)
	return validate.Struct(f)
}

// SignUpForm contains the information needed to create an employee account.
// Admins remain invite-only; new accounts start as employees.
type SignUpForm struct {
	Name     string `json:"name" validate:"required"`
	DOB      string `json:"dob" validate:"required,datetime=2006-01-02"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (f *SignUpForm) Validate(validate *validator.Validate) error {
	f.Name = core.CleanString(f.Name)
	f.Email = core.CleanString(f.Email, true /* lower */)
	f.DOB = core.CleanString(f.DOB)

	if err := validate.Struct(f); err != nil {
		return err
	}
	if dob, err := time.Parse("2006-01-02", f.DOB); err == nil && dob.After(nowFunc()) {
		return core.NewValidationError(nil, core.FieldError{Field: "dob", Error: "date of birth cannot be in the future"})
	}
	return nil
}
