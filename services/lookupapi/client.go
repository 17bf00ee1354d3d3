// Package lookupapi fetches the class and subject reference lists from the
// two REST lookup endpoints.
package lookupapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"github.com/ultraship/employeehub/core/lookup"
)

// TokenFunc supplies the current session token; "" means unauthenticated.
type TokenFunc func() string

type Client struct {
	base  string
	http  *http.Client
	token TokenFunc
}

var _ lookup.Client = (*Client)(nil) // interface compliance check

func NewClient(baseURL string, httpClient *http.Client, token TokenFunc) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{base: baseURL, http: httpClient, token: token}
}

func (c *Client) Classes(ctx context.Context) ([]lookup.Item, error) {
	return c.get(ctx, "/lookup/classes")
}

func (c *Client) Subjects(ctx context.Context) ([]lookup.Item, error) {
	return c.get(ctx, "/lookup/subjects")
}

// get decodes a bare JSON list of items. A payload that is valid JSON but
// not such a list yields an empty list, not an error; transport and parse
// failures are errors.
func (c *Client) get(ctx context.Context, path string) ([]lookup.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "building GET %s", path)
	}
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", path)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, errors.Errorf("GET %s: unexpected status %s", path, res.Status)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s response", path)
	}

	var items []lookup.Item
	if err := json.Unmarshal(body, &items); err != nil {
		var v interface{}
		if json.Unmarshal(body, &v) == nil {
			return []lookup.Item{}, nil // malformed but parsable payload
		}
		return nil, errors.Wrapf(err, "decoding %s response", path)
	}
	if items == nil {
		items = []lookup.Item{}
	}
	return items, nil
}
