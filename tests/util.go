package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/ultraship/employeehub/core/directory"
	"github.com/ultraship/employeehub/core/lookup"
	"github.com/ultraship/employeehub/core/session"
)

// --- fixtures ---

func Assignment(class, subject string) directory.TeachingAssignment {
	return directory.TeachingAssignment{ClassName: class, SubjectName: subject}
}

func Attendance(pct float64) *directory.AttendanceSummary {
	return &directory.AttendanceSummary{Percentage: &pct}
}

func RawEmployee(id, name, email, role string, assignments ...directory.TeachingAssignment) directory.RawEmployee {
	return directory.RawEmployee{
		ID:                  id,
		Name:                name,
		Email:               email,
		Role:                role,
		TeachingAssignments: assignments,
	}
}

// Items builds a lookup list from id, name pairs.
func Items(t *testing.T, pairs ...string) []lookup.Item {
	t.Helper()
	if len(pairs)%2 != 0 {
		t.Fatal("Items wants id, name pairs")
	}
	items := make([]lookup.Item, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		items = append(items, lookup.Item{ID: pairs[i], Name: pairs[i+1]})
	}
	return items
}

// Token signs a throwaway JWT with the given expiry; exp zero means no
// expiry claim.
func Token(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.StandardClaims{}
	if !exp.IsZero() {
		claims.ExpiresAt = exp.Unix()
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return tok
}

// --- fake clients ---

// FakeAuthClient returns canned auth results.
type FakeAuthClient struct {
	Res       session.AuthResult
	Err       error
	LoginArgs []string
}

var _ session.Client = (*FakeAuthClient)(nil)

func (c *FakeAuthClient) Login(_ context.Context, email, password string) (session.AuthResult, error) {
	c.LoginArgs = append(c.LoginArgs, email, password)
	return c.Res, c.Err
}

func (c *FakeAuthClient) SignUp(_ context.Context, _, _, _, _ string) (session.AuthResult, error) {
	return c.Res, c.Err
}

// FakeDirectoryClient serves canned pages and records updates.
type FakeDirectoryClient struct {
	PageRes   directory.Page
	PageErr   error
	ByIDRes   directory.RawEmployee
	ByIDErr   error
	UpdateRes directory.RawEmployee
	UpdateErr error

	Updates []directory.UpdateInput
}

var _ directory.Client = (*FakeDirectoryClient)(nil)

func (c *FakeDirectoryClient) EmployeesPage(_ context.Context, _ *directory.Filter, _ directory.Sort, _, _ int) (directory.Page, error) {
	return c.PageRes, c.PageErr
}

func (c *FakeDirectoryClient) EmployeeByID(_ context.Context, _ string) (directory.RawEmployee, error) {
	return c.ByIDRes, c.ByIDErr
}

func (c *FakeDirectoryClient) UpdateEmployee(_ context.Context, _ string, input directory.UpdateInput) (directory.RawEmployee, error) {
	c.Updates = append(c.Updates, input)
	return c.UpdateRes, c.UpdateErr
}

// FakeLookupClient serves canned lookup lists.
type FakeLookupClient struct {
	ClassItems   []lookup.Item
	ClassErr     error
	SubjectItems []lookup.Item
	SubjectErr   error
}

var _ lookup.Client = (*FakeLookupClient)(nil)

func (c *FakeLookupClient) Classes(context.Context) ([]lookup.Item, error) {
	return c.ClassItems, c.ClassErr
}

func (c *FakeLookupClient) Subjects(context.Context) ([]lookup.Item, error) {
	return c.SubjectItems, c.SubjectErr
}
