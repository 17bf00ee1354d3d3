package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/ultraship/employeehub/core/session"
)

var errUsage = errors.New("usage: hubctl <login|whoami|signout> [flags]")

// readPasswordFunc is swapped out in tests.
var readPasswordFunc = func() ([]byte, error) {
	return term.ReadPassword(syscall.Stdin)
}

// commandLine runs the non-interactive session commands: sign in and persist
// the session, print the signed-in user, or clear the persisted session.
type commandLine struct {
	sessions *session.Service
	timeout  func() (context.Context, context.CancelFunc)
	out      io.Writer
}

func (c *commandLine) Run(args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "login":
		return c.login(args[1:])
	case "whoami":
		return c.whoami()
	case "signout":
		return c.signout()
	default:
		return errUsage
	}
}

func (c *commandLine) login(args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(c.out)
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("login: -email is required")
	}

	fmt.Fprint(c.out, "Password: ")
	pwd, err := readPasswordFunc()
	fmt.Fprintln(c.out)
	if err != nil {
		return errors.Wrap(err, "reading password")
	}

	ctx, cancel := c.timeout()
	defer cancel()
	sess, err := c.sessions.Login(ctx, *email, string(pwd))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Signed in as %s <%s>\n", sess.User.Name, sess.User.Email)
	return nil
}

func (c *commandLine) whoami() error {
	sess, ok := c.sessions.Restore()
	if !ok {
		return errors.New("not signed in")
	}
	fmt.Fprintf(c.out, "%s <%s> (%s)\n", sess.User.Name, sess.User.Email, sess.User.Role)
	return nil
}

func (c *commandLine) signout() error {
	if err := c.sessions.SignOut(); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Signed out.")
	return nil
}
