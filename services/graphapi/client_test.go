package graphapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ultraship/employeehub/core/directory"
	"github.com/ultraship/employeehub/services/graphapi"
)

// gqlServer answers every POST with the given data payload and captures the
// last request body and headers.
type gqlServer struct {
	srv       *httptest.Server
	lastBody  map[string]interface{}
	lastAuth  string
	dataJSON  string
	errorJSON string
}

func newGQLServer(t *testing.T, dataJSON string) *gqlServer {
	t.Helper()
	g := &gqlServer{dataJSON: dataJSON}
	g.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &g.lastBody)
		g.lastAuth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		if g.errorJSON != "" {
			io.WriteString(w, `{"errors":[`+g.errorJSON+`]}`)
			return
		}
		io.WriteString(w, `{"data":`+g.dataJSON+`}`)
	}))
	t.Cleanup(g.srv.Close)
	return g
}

func (g *gqlServer) query() string {
	q, _ := g.lastBody["query"].(string)
	return q
}

func (g *gqlServer) variables() map[string]interface{} {
	v, _ := g.lastBody["variables"].(map[string]interface{})
	return v
}

func TestClientLogin(t *testing.T) {
	t.Run("decodes token and employee", func(t *testing.T) {
		g := newGQLServer(t, `{"login":{"token":"tok","employee":{"id":"u1","name":"Ada","email":"a@x.com","role":"ADMIN"}}}`)
		client := graphapi.NewClient(g.srv.URL, g.srv.Client(), func() string { return "" })

		res, err := client.Login(context.Background(), "a@x.com", "pw")
		require.NoError(t, err)
		assert.Equal(t, "tok", res.Token)
		require.NotNil(t, res.Employee)
		assert.Equal(t, "u1", res.Employee.ID)
		assert.Equal(t, "ADMIN", res.Employee.Role)

		input, _ := g.variables()["input"].(map[string]interface{})
		assert.Equal(t, "a@x.com", input["email"])
		assert.Equal(t, "pw", input["password"])
		assert.Contains(t, g.query(), "login")
		assert.Empty(t, g.lastAuth, "no auth header before sign-in")
	})

	t.Run("server errors surface verbatim", func(t *testing.T) {
		g := newGQLServer(t, `{}`)
		g.errorJSON = `{"message":"Invalid credentials"}`
		client := graphapi.NewClient(g.srv.URL, g.srv.Client(), func() string { return "" })

		_, err := client.Login(context.Background(), "a@x.com", "bad")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid credentials")
	})
}

func TestClientSignUp(t *testing.T) {
	g := newGQLServer(t, `{"signUp":{"token":"tok","employee":{"id":"u2","name":"Bo","email":"b@x.com","role":"Teacher"}}}`)
	client := graphapi.NewClient(g.srv.URL, g.srv.Client(), func() string { return "" })

	res, err := client.SignUp(context.Background(), "Bo", "b@x.com", "pw", "1990-12-10")
	require.NoError(t, err)
	assert.Equal(t, "tok", res.Token)
	require.NotNil(t, res.Employee)
	assert.Equal(t, "u2", res.Employee.ID)

	input, _ := g.variables()["input"].(map[string]interface{})
	assert.Equal(t, "1990-12-10", input["dateOfBirth"])
}

func TestClientEmployeesPage(t *testing.T) {
	g := newGQLServer(t, `{"employeesPage":{"items":[{"id":"E1","name":"Ada","email":"a@x.com","role":"Teacher","teachingAssignments":[{"className":"8A","subjectName":"Math"}],"attendanceSummary":{"percentage":92.5}}],"totalCount":1,"page":0,"pageSize":10}}`)
	client := graphapi.NewClient(g.srv.URL, g.srv.Client(), func() string { return "tok" })

	page, err := client.EmployeesPage(
		context.Background(), nil,
		directory.Sort{Field: directory.SortByName, Direction: directory.SortAscending},
		0, 10,
	)
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalCount)
	require.Len(t, page.Items, 1)

	item := page.Items[0]
	assert.Equal(t, "E1", item.ID)
	require.Len(t, item.TeachingAssignments, 1)
	require.NotNil(t, item.AttendanceSummary)
	require.NotNil(t, item.AttendanceSummary.Percentage)
	assert.Equal(t, 92.5, *item.AttendanceSummary.Percentage)

	assert.Equal(t, "Bearer tok", g.lastAuth)
	vars := g.variables()
	assert.Equal(t, float64(0), vars["page"])
	assert.Equal(t, float64(10), vars["pageSize"])
	sort, _ := vars["sort"].(map[string]interface{})
	assert.Equal(t, "NAME", sort["field"])
	assert.Equal(t, "ASC", sort["direction"])
}

func TestClientEmployeeByID(t *testing.T) {
	g := newGQLServer(t, `{"employee":{"id":"E1","name":"Ada","dateOfBirth":"1990-12-10"}}`)
	client := graphapi.NewClient(g.srv.URL, g.srv.Client(), func() string { return "tok" })

	raw, err := client.EmployeeByID(context.Background(), "E1")
	require.NoError(t, err)
	assert.Equal(t, "E1", raw.ID)
	assert.Equal(t, "1990-12-10", raw.DateOfBirth)
	assert.Equal(t, "E1", g.variables()["id"])
}

func TestClientUpdateEmployee(t *testing.T) {
	g := newGQLServer(t, `{"updateEmployee":{"id":"E1","role":"Lead","teachingAssignments":[{"className":"9C","subjectName":"Bio"}]}}`)
	client := graphapi.NewClient(g.srv.URL, g.srv.Client(), func() string { return "tok" })

	input := directory.UpdateInput{
		Name:  "Ada",
		Email: "a@x.com",
		Role:  "Teacher",
		SubjectAssignments: []directory.SubjectAssignment{
			{ClassID: "c2", SubjectID: "s3"},
		},
	}
	updated, err := client.UpdateEmployee(context.Background(), "E1", input)
	require.NoError(t, err)
	assert.Equal(t, "Lead", updated.Role)

	vars := g.variables()
	assert.Equal(t, "E1", vars["id"])
	sent, _ := vars["input"].(map[string]interface{})
	pairs, _ := sent["subjectAssignments"].([]interface{})
	require.Len(t, pairs, 1)
	assert.Equal(t, map[string]interface{}{"classId": "c2", "subjectId": "s3"}, pairs[0])
	assert.Equal(t, false, sent["deleteUser"])
}
