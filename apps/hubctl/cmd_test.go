package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/ultraship/employeehub/core/session"
	localstore "github.com/ultraship/employeehub/storage/local"
	testutil "github.com/ultraship/employeehub/tests"
)

func setup(client session.Client) (*commandLine, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cli := &commandLine{
		sessions: session.NewService(client, localstore.NewDummy()),
		timeout:  func() (context.Context, context.CancelFunc) { return context.WithCancel(context.Background()) },
		out:      out,
	}
	return cli, out
}

func Test_commandLine_usage(t *testing.T) {
	cli, _ := setup(nil)

	if err := cli.Run(nil); err != errUsage {
		t.Errorf("Run() error = %v; want usage", err)
	}
	if err := cli.Run([]string{"bogus"}); err != errUsage {
		t.Errorf("Run(bogus) error = %v; want usage", err)
	}
}

func Test_commandLine_login(t *testing.T) {
	admin := session.User{ID: "u1", Email: "ada@x.com", Name: "Ada", Role: "ADMIN"}

	origReadPassword := readPasswordFunc
	defer func() { readPasswordFunc = origReadPassword }()
	readPasswordFunc = func() ([]byte, error) { return []byte("pw"), nil }

	t.Run("signs in and prints the user", func(t *testing.T) {
		client := &testutil.FakeAuthClient{Res: session.AuthResult{Token: "tok", Employee: &admin}}
		cli, out := setup(client)

		if err := cli.Run([]string{"login", "-email", "ada@x.com"}); err != nil {
			t.Fatalf("Run(login) error = %v", err)
		}
		if !strings.Contains(out.String(), "Signed in as Ada <ada@x.com>") {
			t.Errorf("output = %q", out.String())
		}
		if want := []string{"ada@x.com", "pw"}; client.LoginArgs[0] != want[0] || client.LoginArgs[1] != want[1] {
			t.Errorf("login args = %v; want %v", client.LoginArgs, want)
		}
	})

	t.Run("email is required", func(t *testing.T) {
		cli, _ := setup(nil)
		err := cli.Run([]string{"login"})
		if err == nil || !strings.Contains(err.Error(), "-email is required") {
			t.Errorf("Run(login) error = %v", err)
		}
	})

	t.Run("failed login propagates", func(t *testing.T) {
		client := &testutil.FakeAuthClient{Res: session.AuthResult{}}
		cli, _ := setup(client)

		if err := cli.Run([]string{"login", "-email", "ada@x.com"}); err != session.ErrLoginFailed {
			t.Errorf("Run(login) error = %v; want ErrLoginFailed", err)
		}
	})
}

func Test_commandLine_whoami(t *testing.T) {
	admin := session.User{ID: "u1", Email: "ada@x.com", Name: "Ada", Role: "ADMIN"}

	t.Run("not signed in", func(t *testing.T) {
		cli, _ := setup(nil)
		err := cli.Run([]string{"whoami"})
		if err == nil || err.Error() != "not signed in" {
			t.Errorf("Run(whoami) error = %v", err)
		}
	})

	t.Run("prints the restored user", func(t *testing.T) {
		origReadPassword := readPasswordFunc
		defer func() { readPasswordFunc = origReadPassword }()
		readPasswordFunc = func() ([]byte, error) { return []byte("pw"), nil }

		client := &testutil.FakeAuthClient{Res: session.AuthResult{Token: "tok", Employee: &admin}}
		cli, out := setup(client)
		if err := cli.Run([]string{"login", "-email", "ada@x.com"}); err != nil {
			t.Fatal(err)
		}
		out.Reset()

		if err := cli.Run([]string{"whoami"}); err != nil {
			t.Fatalf("Run(whoami) error = %v", err)
		}
		if !strings.Contains(out.String(), "Ada <ada@x.com> (ADMIN)") {
			t.Errorf("output = %q", out.String())
		}
	})
}

func Test_commandLine_signout(t *testing.T) {
	cli, out := setup(nil)

	if err := cli.Run([]string{"signout"}); err != nil {
		t.Fatalf("Run(signout) error = %v", err)
	}
	if !strings.Contains(out.String(), "Signed out.") {
		t.Errorf("output = %q", out.String())
	}
	if err := cli.Run([]string{"whoami"}); err == nil {
		t.Error("whoami after signout reported a session")
	}
}
