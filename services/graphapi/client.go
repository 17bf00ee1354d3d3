// Package graphapi talks to the faculty GraphQL endpoint, covering both the
// auth mutations and the employee directory operations.
package graphapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/machinebox/graphql"

	"github.com/ultraship/employeehub/core/directory"
	"github.com/ultraship/employeehub/core/session"
)

// TokenFunc supplies the current session token; "" means unauthenticated.
type TokenFunc func() string

type Client struct {
	gql   *graphql.Client
	token TokenFunc
}

var (
	_ session.Client   = (*Client)(nil) // interface compliance checks
	_ directory.Client = (*Client)(nil)
)

func NewClient(baseURL string, httpClient *http.Client, token TokenFunc) *Client {
	endpoint := strings.TrimRight(baseURL, "/") + "/graphql"
	opts := []graphql.ClientOption{}
	if httpClient != nil {
		opts = append(opts, graphql.WithHTTPClient(httpClient))
	}
	return &Client{
		gql:   graphql.NewClient(endpoint, opts...),
		token: token,
	}
}

// run attaches the bearer token, if any, and executes the request.
func (c *Client) run(ctx context.Context, req *graphql.Request, resp interface{}) error {
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return c.gql.Run(ctx, req, resp)
}

// Auth operations.
// Errors are returned unwrapped so their message can be shown verbatim.

func (c *Client) Login(ctx context.Context, email, password string) (session.AuthResult, error) {
	req := graphql.NewRequest(loginDoc)
	req.Var("input", map[string]string{"email": email, "password": password})

	var resp struct {
		Login session.AuthResult `json:"login"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return session.AuthResult{}, err
	}
	return resp.Login, nil
}

func (c *Client) SignUp(ctx context.Context, name, email, password, dob string) (session.AuthResult, error) {
	req := graphql.NewRequest(signUpDoc)
	req.Var("input", map[string]string{
		"name":        name,
		"email":       email,
		"password":    password,
		"dateOfBirth": dob,
	})

	var resp struct {
		SignUp session.AuthResult `json:"signUp"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return session.AuthResult{}, err
	}
	return resp.SignUp, nil
}

// Directory operations.

func (c *Client) EmployeesPage(
	ctx context.Context,
	filter *directory.Filter,
	sort directory.Sort,
	page, pageSize int,
) (directory.Page, error) {
	req := graphql.NewRequest(employeesPageDoc)
	if filter != nil {
		req.Var("filter", filter)
	} else {
		req.Var("filter", nil)
	}
	req.Var("sort", sort)
	req.Var("page", page)
	req.Var("pageSize", pageSize)

	var resp struct {
		EmployeesPage directory.Page `json:"employeesPage"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return directory.Page{}, err
	}
	return resp.EmployeesPage, nil
}

func (c *Client) EmployeeByID(ctx context.Context, id string) (directory.RawEmployee, error) {
	req := graphql.NewRequest(employeeByIDDoc)
	req.Var("id", id)

	var resp struct {
		Employee directory.RawEmployee `json:"employee"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return directory.RawEmployee{}, err
	}
	return resp.Employee, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id string, input directory.UpdateInput) (directory.RawEmployee, error) {
	req := graphql.NewRequest(updateEmployeeDoc)
	req.Var("id", id)
	req.Var("input", input)

	var resp struct {
		UpdateEmployee directory.RawEmployee `json:"updateEmployee"`
	}
	if err := c.run(ctx, req, &resp); err != nil {
		return directory.RawEmployee{}, err
	}
	return resp.UpdateEmployee, nil
}
