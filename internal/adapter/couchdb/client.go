package couchdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goydb/alldocs/pkg/model"
	"github.com/goydb/alldocs/pkg/port"
)

// Client talks to a CouchDB compatible server
type Client struct {
	BaseURL    *url.URL
	HTTPClient *http.Client
	Username   string
	Password   string
}

func NewClient(baseURL string) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid server url %q", baseURL)
	}

	c := &Client{
		BaseURL:    u,
		HTTPClient: http.DefaultClient,
	}
	if u.User != nil {
		c.Username = u.User.Username()
		c.Password, _ = u.User.Password()
		u.User = nil
	}
	return c, nil
}

// Database returns the remote database, the existence
// of the database isn't checked.
func (c *Client) Database(name string) *Database {
	return &Database{client: c, name: name}
}

func (c *Client) AllDbs(ctx context.Context) ([]string, error) {
	var names []string
	err := c.do(ctx, http.MethodGet, "/_all_dbs", nil, nil, &names)
	return names, err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := *c.BaseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	u.RawQuery = query.Encode()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Username != "" {
		req.SetBasicAuth(c.Username, c.Password)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return newError(resp)
	}

	if out == nil {
		return nil
	}
	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("failed to decode response of %s %s: %w", method, u.Path, err)
	}
	return nil
}

var _ port.PageSource = (*Database)(nil)

type Database struct {
	client *Client
	name   string
}

func (d *Database) Name() string {
	return d.name
}

// AllDocs requests one _all_docs page. Queries with keys are sent
// as POST request to allow large key lists.
func (d *Database) AllDocs(ctx context.Context, options model.AllDocsOptions) (*model.Page, error) {
	path := "/" + url.PathEscape(d.name) + "/_all_docs"
	query := options.Values()

	var page model.Page
	var err error
	if options.Keys != nil {
		query.Del("keys")
		err = d.client.do(ctx, http.MethodPost, path, query, keysRequest{Keys: options.Keys}, &page)
	} else {
		err = d.client.do(ctx, http.MethodGet, path, query, nil, &page)
	}
	if err != nil {
		return nil, err
	}
	if page.Rows == nil {
		page.Rows = []model.Row{}
	}

	return &page, nil
}

type keysRequest struct {
	Keys []string `json:"keys"`
}
