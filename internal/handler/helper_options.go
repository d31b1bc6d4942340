package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/goydb/alldocs/pkg/model"
)

func intOption(name string, fallback int64, options url.Values) int64 {
	if len(options[name]) == 0 {
		return fallback
	}
	v, err := strconv.ParseInt(options[name][0], 10, 64)
	if err != nil {
		return fallback
	}
	return v
}

// allDocsOptions reads the options from the query string, a POST
// body may add the keys like CouchDB allows it.
func allDocsOptions(r *http.Request) (model.AllDocsOptions, error) {
	options, err := model.ParseAllDocsOptions(r.URL.Query())
	if err != nil {
		return options, err
	}

	if r.Method != http.MethodPost {
		return options, nil
	}

	var body struct {
		Keys []string `json:"keys"`
	}
	err = decodeBody(r, &body)
	if err != nil {
		return options, err
	}
	if body.Keys != nil {
		options.Keys = body.Keys
	}

	return options, options.Validate()
}

// queriesRequest is the body of multi query requests
type queriesRequest struct {
	Queries []map[string]interface{} `json:"queries"`
}

func (q queriesRequest) options() ([]model.AllDocsOptions, error) {
	options := make([]model.AllDocsOptions, len(q.Queries))
	for i, query := range q.Queries {
		var err error
		options[i], err = model.DecodeAllDocsOptions(query)
		if err != nil {
			return nil, fmt.Errorf("query %d: %w", i, err)
		}
	}
	return options, nil
}

// bodyQueries reads the queries of a {"queries": [...]} body
func bodyQueries(r *http.Request) ([]model.AllDocsOptions, error) {
	var req queriesRequest
	err := decodeBody(r, &req)
	if err != nil {
		return nil, err
	}
	return req.options()
}

func decodeBody(r *http.Request, v interface{}) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidOptions, err)
	}
	return nil
}
