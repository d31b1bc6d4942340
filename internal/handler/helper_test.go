package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/goydb/alldocs/internal/adapter/storage"
	"github.com/goydb/alldocs/internal/handler"
	"github.com/goydb/alldocs/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testIDs = func() []string {
	ids := make([]string, 20)
	for i := range ids {
		ids[i] = fmt.Sprintf("%02d", i)
	}
	return ids
}()

type testServer struct {
	*httptest.Server
	Storage *storage.Storage
}

const testCookieSecret = "test"

// WithTestServer starts a server with the admin "admin" (password "secret")
// and the database "test" containing the documents "00".."19"
func WithTestServer(t *testing.T, fn func(ctx context.Context, srv *testServer)) {
	WithTestRouter(t, nil, fn)
}

// WithTestRouter is WithTestServer with a hook to change the router
func WithTestRouter(t *testing.T, configure func(router *handler.Router), fn func(ctx context.Context, srv *testServer)) {
	ctx := context.Background()

	s, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	db, err := s.CreateDatabase(ctx, "test")
	require.NoError(t, err)
	docs := make([]*model.Document, len(testIDs))
	for i, id := range testIDs {
		docs[i] = &model.Document{ID: id, Data: map[string]interface{}{"n": i}}
	}
	_, err = db.BulkDocs(ctx, docs)
	require.NoError(t, err)

	router := handler.Router{
		Storage:         s,
		SessionStore:    sessions.NewCookieStore([]byte(testCookieSecret)),
		Admins:          model.AdminUsers{{Username: "admin", Password: "secret"}},
		ExportBatchSize: 3,
	}
	if configure != nil {
		configure(&router)
	}
	r := mux.NewRouter()
	require.NoError(t, router.Build(r))

	srv := httptest.NewServer(r)
	defer srv.Close()

	fn(ctx, &testServer{Server: srv, Storage: s})
}

// Do sends an admin request, a body that isn't a
// string is send JSON encoded
func (s *testServer) Do(t *testing.T, method, path string, body interface{}) *http.Response {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = strings.NewReader(string(data))
	}

	req, err := http.NewRequest(method, s.URL+path, reader)
	require.NoError(t, err)
	req.SetBasicAuth("admin", "secret")
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	return resp
}

// JSON sends the request and decodes the response into out
func (s *testServer) JSON(t *testing.T, method, path string, body, out interface{}) int {
	resp := s.Do(t, method, path, body)
	defer resp.Body.Close()
	if out != nil {
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func rowIDs(rows []model.Row) []string {
	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	return ids
}
